// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dalemusser/placementhub/internal/app/system/mailer"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/joeshaw/envdecode"
	"go.uber.org/zap"
)

const (
	defaultMongoURI    = "mongodb://localhost:27017"
	defaultSMTPHost    = "localhost"
	defaultSMTPPort    = 1025
	defaultMailFrom    = "noreply@placementhub.local"
	defaultFrontendURL = "http://localhost:3000"
)

// appConfigKeys defines the configuration keys for Placement Hub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, admin_email, etc.
//   - Environment variables: PLACEMENTHUB_MONGO_URI, PLACEMENTHUB_ADMIN_EMAIL, etc.
//   - Command-line flags: --mongo_uri, --admin_email, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: defaultMongoURI, Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "placement_hub", Desc: "MongoDB database name"},

	// Email
	{Name: "mail_transport", Default: mailer.TransportSMTP, Desc: "Email transport: 'smtp', 'ses' or 'log'"},
	{Name: "mail_smtp_host", Default: defaultSMTPHost, Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: defaultSMTPPort, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username (blank disables auth)"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: defaultMailFrom, Desc: "From email address"},
	{Name: "mail_ses_region", Default: "us-east-1", Desc: "AWS region for the SES transport"},

	// Notification targets
	{Name: "admin_email", Default: "", Desc: "Address that receives new application alerts"},
	{Name: "frontend_url", Default: defaultFrontendURL, Desc: "Frontend base URL used in email links"},

	// Files
	{Name: "upload_dir", Default: "./uploads", Desc: "Directory holding uploaded CVs (served under /uploads)"},
	{Name: "frontend_dist", Default: "", Desc: "Built frontend bundle to serve; blank disables"},

	{Name: "apply_rate_limit", Default: 10, Desc: "Application submissions per minute per IP (0 disables)"},
	{Name: "trust_proxy_headers", Default: false, Desc: "Use X-Forwarded-For / X-Real-IP as the client IP (enable only behind a proxy that sets them)"},
}

// legacyEnv holds the unprefixed variable names used by earlier deployments.
type legacyEnv struct {
	MongoURI    string `env:"MONGO_URI"`
	SMTPHost    string `env:"SMTP_HOST"`
	SMTPPort    int    `env:"SMTP_PORT"`
	SMTPUser    string `env:"SMTP_USER"`
	SMTPPass    string `env:"SMTP_PASS"`
	SMTPFrom    string `env:"SMTP_FROM_EMAIL"`
	AdminEmail  string `env:"ADMIN_EMAIL"`
	FrontendURL string `env:"FRONTEND_URL"`
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// PLACEMENTHUB_* environment variables and flags (flags > env > files >
// defaults). Legacy unprefixed variables fill any value left at its default.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PLACEMENTHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		MailTransport: appValues.String("mail_transport"),
		MailSMTPHost:  appValues.String("mail_smtp_host"),
		MailSMTPPort:  appValues.Int("mail_smtp_port"),
		MailSMTPUser:  appValues.String("mail_smtp_user"),
		MailSMTPPass:  appValues.String("mail_smtp_pass"),
		MailFrom:      appValues.String("mail_from"),
		MailSESRegion: appValues.String("mail_ses_region"),

		AdminEmail:  appValues.String("admin_email"),
		FrontendURL: appValues.String("frontend_url"),

		UploadDir:    appValues.String("upload_dir"),
		FrontendDist: appValues.String("frontend_dist"),

		ApplyRateLimit:    appValues.Int("apply_rate_limit"),
		TrustProxyHeaders: appValues.Bool("trust_proxy_headers"),
	}

	var legacy legacyEnv
	if err := envdecode.Decode(&legacy); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, AppConfig{}, fmt.Errorf("read legacy environment: %w", err)
	}
	if n := applyLegacyEnv(&appCfg, legacy); n > 0 {
		logger.Info("applied legacy environment variables", zap.Int("count", n))
	}

	return coreCfg, appCfg, nil
}

// applyLegacyEnv copies each set legacy value whose prefixed counterpart is
// still at its default, and returns how many were applied.
func applyLegacyEnv(cfg *AppConfig, legacy legacyEnv) int {
	n := 0
	setString := func(dst *string, def, v string) {
		if v != "" && *dst == def {
			*dst = v
			n++
		}
	}
	setString(&cfg.MongoURI, defaultMongoURI, legacy.MongoURI)
	setString(&cfg.MailSMTPHost, defaultSMTPHost, legacy.SMTPHost)
	setString(&cfg.MailSMTPUser, "", legacy.SMTPUser)
	setString(&cfg.MailSMTPPass, "", legacy.SMTPPass)
	setString(&cfg.MailFrom, defaultMailFrom, legacy.SMTPFrom)
	setString(&cfg.AdminEmail, "", legacy.AdminEmail)
	setString(&cfg.FrontendURL, defaultFrontendURL, legacy.FrontendURL)
	if legacy.SMTPPort != 0 && cfg.MailSMTPPort == defaultSMTPPort {
		cfg.MailSMTPPort = legacy.SMTPPort
		n++
	}
	return n
}

// ValidateConfig performs app-specific config validation.
//
// Placement Hub validates the MongoDB URI, the mail transport and the
// configured addresses so that misconfiguration stops startup instead of
// surfacing as failed sends later.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch strings.ToLower(appCfg.MailTransport) {
	case mailer.TransportSMTP:
		if appCfg.MailSMTPHost == "" || appCfg.MailSMTPPort <= 0 {
			return errors.New("smtp transport requires mail_smtp_host and mail_smtp_port")
		}
	case mailer.TransportSES:
		if appCfg.MailSESRegion == "" {
			return errors.New("ses transport requires mail_ses_region")
		}
	case mailer.TransportLog:
	default:
		return fmt.Errorf("mail_transport must be smtp, ses or log (got %q)", appCfg.MailTransport)
	}

	if _, err := mail.ParseAddress(appCfg.MailFrom); err != nil {
		return fmt.Errorf("invalid mail_from %q: %w", appCfg.MailFrom, err)
	}
	if appCfg.AdminEmail == "" {
		logger.Warn("admin_email not set; new application alerts will not be sent")
	} else if _, err := mail.ParseAddress(appCfg.AdminEmail); err != nil {
		return fmt.Errorf("invalid admin_email %q: %w", appCfg.AdminEmail, err)
	}

	if appCfg.UploadDir == "" {
		return errors.New("upload_dir must not be empty")
	}
	if appCfg.ApplyRateLimit < 0 {
		return errors.New("apply_rate_limit must not be negative")
	}

	return nil
}
