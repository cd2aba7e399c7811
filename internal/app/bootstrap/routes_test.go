package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/placementhub/internal/app/system/mailer"
	"github.com/dalemusser/placementhub/internal/app/system/notify"
	"github.com/dalemusser/placementhub/internal/app/system/ratelimit"
	"github.com/dalemusser/placementhub/internal/app/system/uploads"
	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// testDeps builds DBDeps without a reachable MongoDB; the driver connects
// lazily, so only routes that query the database would fail.
func testDeps(t *testing.T) (DBDeps, afero.Fs) {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("mongo.Connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	logger := zap.NewNop()
	fs := afero.NewMemMapFs()
	sender := mailer.NewLog(logger)
	dispatcher := notify.NewDispatcher(logger)
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database("placementhub_routes_test"),
		CVs:           uploads.NewStore(fs),
		Mailer:        sender,
		Dispatcher:    dispatcher,
		Notifier:      notify.New(sender, dispatcher, "", "", logger),
	}, fs
}

func TestBuildHandler_Routes(t *testing.T) {
	deps, fs := testDeps(t)
	if err := deps.CVs.EnsureDir(); err != nil {
		t.Fatal(err)
	}
	_ = afero.WriteFile(fs, "cvs/cv-1-2.pdf", []byte("%PDF-1.4"), 0o644)

	h, err := BuildHandler(nil, validAppConfig(), deps, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"uploaded cv", http.MethodGet, "/uploads/cvs/cv-1-2.pdf", http.StatusOK, "%PDF-1.4"},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "placementhub_applications_submitted_total"},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound, `"error":"Not found"`},
		{"malformed id never reaches the store", http.MethodGet, "/api/internship/not-an-id", http.StatusNotFound, "Application not found"},
		{"apply without multipart", http.MethodPost, "/api/internship/apply", http.StatusBadRequest, "First name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %q)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestBuildHandler_ApplyLimitIgnoresForwardedFor(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		wantSecond int
	}{
		{"proxy headers untrusted", false, http.StatusTooManyRequests},
		{"proxy headers trusted", true, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _ := testDeps(t)
			deps.ApplyLimiter = ratelimit.New(1)
			t.Cleanup(deps.ApplyLimiter.Stop)

			cfg := validAppConfig()
			cfg.TrustProxyHeaders = tt.trustProxy
			h, err := BuildHandler(nil, cfg, deps, zap.NewNop())
			if err != nil {
				t.Fatalf("BuildHandler: %v", err)
			}

			codes := make([]int, 0, 2)
			for _, xff := range []string{"203.0.113.1", "203.0.113.2"} {
				req := httptest.NewRequest(http.MethodPost, "/api/internship/apply", nil)
				req.RemoteAddr = "198.51.100.7:4000"
				req.Header.Set("X-Forwarded-For", xff)
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)
				codes = append(codes, rec.Code)
			}
			if codes[0] != http.StatusBadRequest || codes[1] != tt.wantSecond {
				t.Errorf("status codes = %v, want [400 %d]", codes, tt.wantSecond)
			}
		})
	}
}

func TestBuildHandler_CORSPreflight(t *testing.T) {
	deps, _ := testDeps(t)
	h, err := BuildHandler(nil, validAppConfig(), deps, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/internship/programs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestShutdown_WaitsForDispatcher(t *testing.T) {
	deps, _ := testDeps(t)
	done := make(chan struct{})
	deps.Dispatcher.Go("test", func(ctx context.Context) error {
		close(done)
		return nil
	})

	if err := Shutdown(context.Background(), nil, validAppConfig(), deps, zap.NewNop()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case <-done:
	default:
		t.Error("Shutdown returned before the queued task ran")
	}
}
