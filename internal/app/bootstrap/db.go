// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/placementhub/internal/app/system/indexes"
	"github.com/dalemusser/placementhub/internal/app/system/mailer"
	"github.com/dalemusser/placementhub/internal/app/system/notify"
	"github.com/dalemusser/placementhub/internal/app/system/ratelimit"
	"github.com/dalemusser/placementhub/internal/app/system/timeouts"
	"github.com/dalemusser/placementhub/internal/app/system/uploads"
	"github.com/dalemusser/placementhub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB and builds the other backends (CV storage,
// mail transport, notifier). Failing to reach MongoDB aborts startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(appCfg.MongoURI).
		SetAppName("placementhub"))
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("MongoDB connected", zap.String("database", appCfg.MongoDatabase))

	sender, err := mailer.New(ctx, mailer.Config{
		Transport: appCfg.MailTransport,
		SMTPHost:  appCfg.MailSMTPHost,
		SMTPPort:  appCfg.MailSMTPPort,
		SMTPUser:  appCfg.MailSMTPUser,
		SMTPPass:  appCfg.MailSMTPPass,
		SESRegion: appCfg.MailSESRegion,
		From:      appCfg.MailFrom,
	}, logger)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mail transport: %w", err)
	}

	dispatcher := notify.NewDispatcher(logger)

	deps := DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		CVs:           uploads.NewStore(uploads.NewOsFs(appCfg.UploadDir)),
		Mailer:        sender,
		Dispatcher:    dispatcher,
		Notifier:      notify.New(sender, dispatcher, appCfg.AdminEmail, appCfg.FrontendURL, logger),
	}
	if appCfg.ApplyRateLimit > 0 {
		deps.ApplyLimiter = ratelimit.New(appCfg.ApplyRateLimit)
	}
	return deps, nil
}

// EnsureSchema creates the collections with their JSON-schema validators and
// the indexes (including the unique program title). Both steps are idempotent.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure collection validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	logger.Info("schema ensured")
	return nil
}
