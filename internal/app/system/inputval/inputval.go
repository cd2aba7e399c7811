// Package inputval validates request input and domain records using struct tags.
//
// Rules come from `validate` tags (go-playground/validator). Human-facing
// messages come from an optional `msg` tag of the form
// `msg:"required=Title is required;max=Title is too long"`; a `{VALUE}`
// placeholder is replaced by the offending value. Fields without a matching
// msg entry fall back to a generic message built from the `label` tag.
//
// Validation never touches storage, so the same rules apply whichever
// persistence layer saves the record.
package inputval

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/dalemusser/placementhub/internal/domain/models"
	"github.com/go-playground/validator/v10"
)

// FieldError is one rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result holds the violations found for one value, in struct field order.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first violation message, or "" when valid.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// Messages returns every violation message.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}

// applicantEmailRe is the address shape accepted for applicants:
// word characters with single . or - separators, an @, and a 2-3 letter TLD.
var applicantEmailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("applicantemail", func(fl validator.FieldLevel) bool {
			return IsValidApplicantEmail(fl.Field().String())
		})
		_ = v.RegisterValidation("applicationstatus", func(fl validator.FieldLevel) bool {
			return models.IsValidStatus(fl.Field().String())
		})
	})
	return v
}

// IsValidApplicantEmail reports whether s matches the applicant address shape.
func IsValidApplicantEmail(s string) bool {
	return applicantEmailRe.MatchString(s)
}

// Validate checks s (a struct or pointer to struct) against its tags.
func Validate(s any) Result {
	err := instance().Struct(s)
	if err == nil {
		return Result{}
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		// Non-struct input is a programming error; surface it as one violation.
		return Result{Errors: []FieldError{{Rule: "invalid", Message: err.Error()}}}
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	res := Result{Errors: make([]FieldError, 0, len(ves))}
	for _, fe := range ves {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(t, fe),
		})
	}
	return res
}

func message(t reflect.Type, fe validator.FieldError) string {
	sf, ok := t.FieldByName(fe.StructField())
	label := fe.Field()
	if ok {
		if l := sf.Tag.Get("label"); l != "" {
			label = l
		}
		if m, found := lookupMsg(sf.Tag.Get("msg"), fe.Tag()); found {
			return strings.ReplaceAll(m, "{VALUE}", fmt.Sprint(fe.Value()))
		}
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// lookupMsg finds rule's entry in a `rule=message;rule=message` tag.
func lookupMsg(tag, rule string) (string, bool) {
	if tag == "" {
		return "", false
	}
	for _, part := range strings.Split(tag, ";") {
		k, m, ok := strings.Cut(part, "=")
		if ok && strings.TrimSpace(k) == rule {
			return m, true
		}
	}
	return "", false
}
