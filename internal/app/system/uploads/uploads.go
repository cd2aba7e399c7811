// Package uploads accepts the applicant CV from multipart requests and keeps
// the stored files on an afero filesystem rooted at the upload directory.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const (
	// FieldName is the multipart field carrying the CV.
	FieldName = "cv"
	// MaxFileSize is the largest accepted CV.
	MaxFileSize = 5 << 20
	// URLPrefix is the public path prefix of stored files; stored paths start with it.
	URLPrefix = "uploads"
	// CVDir is the directory, relative to the upload root, holding CVs.
	CVDir = "cvs"

	// maxFormOverhead covers the text fields sent alongside the file.
	maxFormOverhead = 1 << 20
)

var (
	ErrInvalidType = errors.New("uploads: file type not allowed")
	ErrTooLarge    = errors.New("uploads: file too large")
	ErrTooMany     = errors.New("uploads: more than one file")
	ErrMalformed   = errors.New("uploads: malformed multipart body")
)

// clientMessages are the response texts for upload rejections.
var clientMessages = map[error]string{
	ErrInvalidType: "Only PDF, DOC, and DOCX files are allowed",
	ErrTooLarge:    "File too large",
	ErrTooMany:     "Only one CV file may be uploaded",
	ErrMalformed:   "Malformed multipart body",
}

var allowedExt = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var allowedMIME = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type ctxKey struct{}

// PathFrom returns the stored CV path attached by Middleware, or "" if the
// request carried no file.
func PathFrom(ctx context.Context) string {
	p, _ := ctx.Value(ctxKey{}).(string)
	return p
}

// WithPath returns ctx carrying the stored CV path.
func WithPath(ctx context.Context, p string) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Store saves and removes CV files.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store writing into fs, which should be rooted at the
// upload directory (see NewOsFs).
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOsFs returns an OS filesystem confined to root.
func NewOsFs(root string) afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), root)
}

// EnsureDir creates the CV directory if it does not exist.
func (s *Store) EnsureDir() error {
	return s.fs.MkdirAll(CVDir, 0o755)
}

// Accept reports whether a file with this name and declared content type may
// be stored. Both the extension and the MIME type must be allowed.
func Accept(filename, contentType string) bool {
	ext := strings.ToLower(path.Ext(filename))
	mt := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return allowedExt[ext] && allowedMIME[mt]
}

// Save validates fh and writes it under CVDir, returning the stored path
// ("uploads/cvs/cv-<millis>-<n>.<ext>").
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}
	if !Accept(fh.Filename, fh.Header.Get("Content-Type")) {
		return "", ErrInvalidType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("cv-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1e9), path.Ext(fh.Filename))
	rel := path.Join(CVDir, name)

	dst, err := s.fs.Create(rel)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", rel, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = s.fs.Remove(rel)
		return "", fmt.Errorf("write %s: %w", rel, err)
	}
	if err := dst.Close(); err != nil {
		_ = s.fs.Remove(rel)
		return "", fmt.Errorf("close %s: %w", rel, err)
	}
	return path.Join(URLPrefix, rel), nil
}

// Remove deletes a file previously returned by Save. Missing files are not an error.
func (s *Store) Remove(stored string) error {
	rel, ok := strings.CutPrefix(path.Clean(stored), URLPrefix+"/")
	if !ok || rel == "" || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("not an upload path: %q", stored)
	}
	if err := s.fs.Remove(rel); err != nil && !errors.Is(err, afero.ErrFileNotFound) {
		return err
	}
	return nil
}

// Middleware parses a multipart body, stores the file sent under FieldName and
// attaches its path to the request context. Upload errors are passed to onErr
// and the next handler does not run. Requests without a file, or that are not
// multipart, pass through untouched.
func (s *Store) Middleware(onErr func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize+maxFormOverhead)

			if err := r.ParseMultipartForm(MaxFileSize + maxFormOverhead); err != nil {
				var tooBig *http.MaxBytesError
				switch {
				case errors.Is(err, http.ErrNotMultipart):
					next.ServeHTTP(w, r)
				case errors.As(err, &tooBig):
					onErr(w, r, ErrTooLarge)
				default:
					onErr(w, r, fmt.Errorf("%w: %v", ErrMalformed, err))
				}
				return
			}
			defer r.MultipartForm.RemoveAll()

			files := r.MultipartForm.File[FieldName]
			switch len(files) {
			case 0:
				next.ServeHTTP(w, r)
				return
			case 1:
			default:
				onErr(w, r, ErrTooMany)
				return
			}

			stored, err := s.Save(files[0])
			if err != nil {
				onErr(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPath(r.Context(), stored)))
		})
	}
}

// ClientMessage returns the response text for an upload rejection, or false
// when err is not one.
func ClientMessage(err error) (string, bool) {
	for sentinel, msg := range clientMessages {
		if errors.Is(err, sentinel) {
			return msg, true
		}
	}
	return "", false
}

// FileServer serves stored files. Directory listings are not served.
func (s *Store) FileServer() http.Handler {
	fsrv := http.FileServer(afero.NewHttpFs(s.fs).Dir(""))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fsrv.ServeHTTP(w, r)
	})
}
