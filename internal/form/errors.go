package form

import (
	"fmt"
	"sort"
	"strings"
)

// Field names used in ValidationError.
const (
	FieldGame      = "game"
	FieldCategory  = "category"
	FieldDate      = "date"
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid session: " + strings.Join(parts, "; ")
}

// Field returns the message for one field, or "".
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}
