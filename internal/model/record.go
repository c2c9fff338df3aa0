package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/timesheet/internal/clock"
)

var (
	ErrInvalidField     = errors.New("model: field is not editable")
	ErrBlankDescription = errors.New("model: description is required")
)

// Field names the columns a record exposes for in-place edits. Anything
// outside this set must be rejected before it gets anywhere near a query.
type Field string

const (
	FieldStart       Field = "start"
	FieldEnd         Field = "end"
	FieldDescription Field = "description"
	FieldPosted      Field = "posted"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldStart, FieldEnd, FieldDescription, FieldPosted:
		return true
	default:
		return false
	}
}

// ParseField maps external input onto the editable-field set.
func ParseField(s string) (Field, error) {
	f := Field(strings.TrimSpace(strings.ToLower(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, s)
	}
	return f, nil
}

// Record is one logged activity interval. Start and End are stored as raw
// "HH:MM" text and are not guaranteed to form a valid range; an invalid
// range surfaces as a computed-duration error, never as a write rejection.
type Record struct {
	ID          string
	Day         string
	Start       string
	End         string
	Description string
	Posted      bool
}

// Validate checks the invariants the store does enforce at write time. Time
// strings are deliberately not validated here.
func (r Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: record id is required")
	}
	if !clock.ValidDay(r.Day) {
		return fmt.Errorf("model: record day %q is not a dd/mm/yy date", r.Day)
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrBlankDescription
	}
	return nil
}
