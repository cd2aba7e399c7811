// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/placementhub/internal/app/system/mailer"
	"github.com/dalemusser/placementhub/internal/app/system/notify"
	"github.com/dalemusser/placementhub/internal/app/system/ratelimit"
	"github.com/dalemusser/placementhub/internal/app/system/uploads"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// It is created in ConnectDB and passed to EnsureSchema, Startup,
// BuildHandler and Shutdown.
type DBDeps struct {
	// MongoDB client and database
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// CV storage on the upload directory
	CVs *uploads.Store

	// Outbound email and the background dispatch it runs on
	Mailer     mailer.Sender
	Dispatcher *notify.Dispatcher
	Notifier   *notify.Notifier

	// Per-IP limiter for POST /apply; nil when disabled
	ApplyLimiter *ratelimit.Limiter
}
