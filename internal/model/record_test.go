package model

import (
	"errors"
	"testing"
)

func TestRecordValidateSuccess(t *testing.T) {
	rec := Record{
		ID:          "rec-1",
		Day:         "14/03/26",
		Start:       "09:00",
		End:         "10:30",
		Description: "Sprint planning",
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("expected valid record, got error: %v", err)
	}
}

func TestRecordValidateToleratesBadTimes(t *testing.T) {
	// Invalid ranges are legal data; they surface later as duration errors.
	rec := Record{
		ID:          "rec-1",
		Day:         "14/03/26",
		Start:       "banana",
		End:         "08:00",
		Description: "Still accepted",
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("bad time strings must not fail validation: %v", err)
	}
}

func TestRecordValidateBlankDescription(t *testing.T) {
	rec := Record{
		ID:          "rec-1",
		Day:         "14/03/26",
		Start:       "09:00",
		End:         "10:00",
		Description: "   ",
	}
	if err := rec.Validate(); !errors.Is(err, ErrBlankDescription) {
		t.Fatalf("expected ErrBlankDescription, got: %v", err)
	}
}

func TestRecordValidateBadDay(t *testing.T) {
	rec := Record{
		ID:          "rec-1",
		Day:         "2026-03-14",
		Start:       "09:00",
		End:         "10:00",
		Description: "Wrong day layout",
	}
	if err := rec.Validate(); err == nil {
		t.Fatal("expected error for non dd/mm/yy day")
	}
}

func TestParseField(t *testing.T) {
	for _, in := range []string{"start", "end", "description", "posted", " Posted "} {
		if _, err := ParseField(in); err != nil {
			t.Fatalf("ParseField(%q) rejected a valid field: %v", in, err)
		}
	}
	for _, in := range []string{"", "day", "id", "day; DROP TABLE records", "start_time"} {
		_, err := ParseField(in)
		if err == nil || !errors.Is(err, ErrInvalidField) {
			t.Fatalf("ParseField(%q) expected ErrInvalidField, got: %v", in, err)
		}
	}
}
