package validators

import (
	"errors"
	"sort"
	"strings"
)

var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldErrors maps a request field (its JSON name) to a client-facing
// message. Only the first failing rule of each field is reported.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
