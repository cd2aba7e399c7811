// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/placementhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// It applies timeout overrides, makes sure the CV directory exists and checks
// that the mail transport is reachable. A transport failure is logged only:
// the service still accepts applications and each send logs its own failure.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		t := timeouts.Current()
		logger.Info("timeouts overridden from environment",
			zap.Duration("ping", t.Ping),
			zap.Duration("short", t.Short),
			zap.Duration("medium", t.Medium),
			zap.Duration("send", t.Send))
	}

	if err := deps.CVs.EnsureDir(); err != nil {
		return fmt.Errorf("create cv upload directory under %s: %w", appCfg.UploadDir, err)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, timeouts.Send())
	defer cancel()
	if err := deps.Mailer.Verify(verifyCtx); err != nil {
		logger.Error("mail transport connection error", zap.String("transport", appCfg.MailTransport), zap.Error(err))
	} else {
		logger.Info("mail transport ready", zap.String("transport", appCfg.MailTransport))
	}
	return nil
}
