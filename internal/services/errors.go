package services

import (
	"sort"
	"strings"
)

// ValidationErrors carries field-level messages back to the form. It is an
// error so the coordinator can return it through the normal error path, but
// handlers map it to 422 rather than 5xx.
type ValidationErrors struct {
	Fields map[string][]string
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make(map[string][]string)}
}

func (v *ValidationErrors) Add(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

func (v *ValidationErrors) Any() bool { return len(v.Fields) > 0 }

func (v *ValidationErrors) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for f := range v.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, f := range fields {
		for _, msg := range v.Fields[f] {
			b.WriteString(" ")
			b.WriteString(f)
			b.WriteString(" ")
			b.WriteString(msg)
			b.WriteString(";")
		}
	}
	return strings.TrimSuffix(b.String(), ";")
}
