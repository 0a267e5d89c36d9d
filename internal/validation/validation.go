// Package validation implements field-level and cross-field validation for
// candidate entity payloads.
//
// A Collector accumulates every violation instead of failing on the first
// one, so a caller gets the complete list of problems in a single
// ValidationError.
//
// # Usage
//
//	v := validation.New()
//	v.Required("title", payload.Title)
//	v.IntRange("rate", payload.Rate, 1, 5)
//	if err := v.Err(); err != nil {
//		return err
//	}
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bookhive/bookhive/internal/errs"
)

// Collector gathers field violations for one payload.
type Collector struct {
	fields []errs.FieldError
}

// New creates an empty Collector.
func New() *Collector {
	return &Collector{}
}

// Add records a violation for the given field.
func (c *Collector) Add(field, message string) {
	c.fields = append(c.fields, errs.FieldError{Field: field, Message: message})
}

// Required records a violation when the value is empty.
func (c *Collector) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "is required")
	}
}

// MaxLen records a violation when the value exceeds max characters.
func (c *Collector) MaxLen(field, value string, max int) {
	if len(value) > max {
		c.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// IntRange records a violation when value is outside [min, max].
func (c *Collector) IntRange(field string, value, min, max int) {
	if value < min || value > max {
		c.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

// Min records a violation when value is below min.
func (c *Collector) Min(field string, value, min int) {
	if value < min {
		c.Add(field, fmt.Sprintf("must be at least %d", min))
	}
}

// OneOf records a violation when value is not one of the allowed choices.
// An empty value is left to Required.
func (c *Collector) OneOf(field, value string, choices []string) {
	if value == "" {
		return
	}
	for _, choice := range choices {
		if value == choice {
			return
		}
	}
	c.Add(field, "is not a valid choice")
}

// DateOrder records a violation when both dates are present and end precedes
// start. Either date being absent is fine.
func (c *Collector) DateOrder(field string, start, end *time.Time, startField string) {
	if start == nil || end == nil {
		return
	}
	if end.Before(*start) {
		c.Add(field, "must not be earlier than "+startField)
	}
}

// ExtensionMatches records a violation when the filename's extension does not
// equal want (compared case-insensitively, dot-prefixed). The check is
// skipped when either side is absent, tolerating partial updates.
func (c *Collector) ExtensionMatches(field, filename, want string) {
	if filename == "" || want == "" {
		return
	}
	got := strings.ToLower(filepath.Ext(filename))
	if got != strings.ToLower(want) {
		c.Add(field, fmt.Sprintf("file extension must be %q, got %q", strings.ToLower(want), got))
	}
}

// Ok reports whether no violations were recorded.
func (c *Collector) Ok() bool {
	return len(c.fields) == 0
}

// Err returns the accumulated ValidationError, or nil when the payload
// passed every check.
func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &errs.ValidationError{Fields: c.fields}
}
