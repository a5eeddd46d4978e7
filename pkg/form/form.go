// Package form carries the creation dialogs' schemas: default values,
// client-side validation and submission. Validation failures block
// submission before any network call; on success a form resets its fields to
// defaults and notifies its owner, which is responsible for refreshing
// whatever list it displays.
package form

import (
	"fmt"
	"strings"
	"time"
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the field-level validation result; it is nil-safe as an error.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

func (e *Errors) require(field, value, message string) {
	if value == "" {
		e.add(field, message)
	}
}

func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func daysFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// documentNumber mimics the dialogs' generated defaults, e.g. SO-2025-042.
func documentNumber(prefix string) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, time.Now().Year(), time.Now().UnixMilli()%1000)
}
