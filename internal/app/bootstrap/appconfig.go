// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration (ports, TLS, log level).
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Email transport
	MailTransport string // "smtp", "ses" or "log"
	MailSMTPHost  string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort  int    // SMTP server port (e.g., 1025 for Mailpit, 587 for most relays)
	MailSMTPUser  string // SMTP username (empty disables auth)
	MailSMTPPass  string // SMTP password
	MailFrom      string // From address for every outbound email
	MailSESRegion string // AWS region when MailTransport is "ses"

	// Notification targets
	AdminEmail  string // receives new-application alerts
	FrontendURL string // base URL of the admin frontend, used for dashboard links

	// Files
	UploadDir    string // root of stored uploads, served under /uploads
	FrontendDist string // built SPA bundle; empty disables SPA serving

	// Abuse protection
	ApplyRateLimit    int  // submissions per minute per client IP; 0 disables
	TrustProxyHeaders bool // take the client IP from X-Forwarded-For / X-Real-IP
}
