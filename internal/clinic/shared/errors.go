package shared

import (
	"errors"
	"sort"
	"strings"

	"github.com/vetclinic/vetclinic/internal/platform/httpx"
)

var (
	ErrNotFound   = httpx.ErrNotFound
	ErrValidation = httpx.ErrValidation
	ErrInvalidID  = httpx.ErrInvalidID
)

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Add records msg for field unless the field already has a message.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; ok {
		return
	}
	fe[field] = msg
}

// ValidationError carries every failing field of a submission.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FieldsOf extracts the field errors from err, or nil when err is not a
// validation failure.
func FieldsOf(err error) FieldErrors {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
