// Package spa serves the built single-page frontend and falls back to its
// index.html so client-side routes survive a reload.
package spa

import (
	"net/http"
	"path"
	"strings"

	apierrors "github.com/dalemusser/placementhub/internal/app/features/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// MissingBundleMessage is sent when index.html cannot be read.
const MissingBundleMessage = "Frontend assets not found. Ensure you have run 'npm run build' in the frontend folder."

// Handler serves files from the frontend dist directory.
type Handler struct {
	FS  afero.Fs
	Log *zap.Logger

	files http.Handler
}

// NewHandler serves the bundle found in fs, which should be rooted at the
// dist directory.
func NewHandler(fs afero.Fs, logger *zap.Logger) *Handler {
	return &Handler{
		FS:    fs,
		Log:   logger,
		files: http.FileServer(afero.NewHttpFs(fs).Dir("")),
	}
}

// Serve is installed as the router's NotFound handler, so it only sees
// requests no API route matched.
//
//   - an existing file in the bundle is served as is
//   - a GET outside /api that accepts HTML gets index.html
//   - anything else is a JSON 404
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		apierrors.RouteNotFound(w, r)
		return
	}

	if h.isFile(r.URL.Path) {
		h.files.ServeHTTP(w, r)
		return
	}

	if r.Method != http.MethodGet || isAPIPath(r.URL.Path) || !acceptsHTML(r) {
		apierrors.RouteNotFound(w, r)
		return
	}

	index, err := afero.ReadFile(h.FS, "index.html")
	if err != nil {
		h.Log.Error("spa: index.html unavailable", zap.Error(err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(MissingBundleMessage))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(index)
}

func (h *Handler) isFile(urlPath string) bool {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return false
	}
	fi, err := h.FS.Stat(name)
	return err == nil && !fi.IsDir()
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

// acceptsHTML mirrors content negotiation for a single type: a missing
// Accept header accepts anything.
func acceptsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	for _, part := range strings.Split(accept, ",") {
		mt := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch mt {
		case "text/html", "text/*", "*/*":
			return true
		}
	}
	return false
}
