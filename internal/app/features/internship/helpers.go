// internal/app/features/internship/helpers.go
package internship

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	apierrors "github.com/dalemusser/placementhub/internal/app/features/errors"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxJSONBody = 1 << 20

// pathID parses the {id} URL parameter. A malformed id cannot name a stored
// record, so callers answer it with their not-found response.
func pathID(r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return oid, err == nil
}

// decodeJSON reads the request body into dst. An empty body decodes to the
// zero value. On failure it writes the 400 response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		apierrors.BadRequest(w, msgInvalidJSON)
		return false
	}
	return true
}

// interviewLayouts are accepted in order. Browsers send the last two from
// date and datetime-local inputs.
var interviewLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseInterviewDate decodes the raw interviewDate value. It reports
// (nil, true, nil) for an explicit null or empty string, which clears the date.
func parseInterviewDate(raw json.RawMessage) (t *time.Time, unset bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true, nil
	}
	for _, layout := range interviewLayouts {
		if parsed, perr := time.Parse(layout, s); perr == nil {
			parsed = parsed.UTC()
			return &parsed, false, nil
		}
	}
	return nil, false, errors.New("unrecognised date format")
}
