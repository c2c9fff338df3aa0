package timesheet

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/timesheet/internal/model"
)

func TestDurationSeconds(t *testing.T) {
	sec, err := DurationSeconds("09:00", "10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sec != 5400 {
		t.Fatalf("DurationSeconds = %d, want 5400", sec)
	}
}

func TestDurationSecondsUnparseable(t *testing.T) {
	for _, pair := range [][2]string{{"bad", "10:00"}, {"09:00", "bad"}, {"", ""}} {
		if _, err := DurationSeconds(pair[0], pair[1]); !errors.Is(err, ErrUnparseable) {
			t.Fatalf("DurationSeconds(%q, %q): expected ErrUnparseable, got %v", pair[0], pair[1], err)
		}
	}
}

func TestDurationSecondsNegativeRangePreserved(t *testing.T) {
	sec, err := DurationSeconds("10:00", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sec != -3600 {
		t.Fatalf("DurationSeconds = %d, want -3600", sec)
	}
}

func TestDurationCell(t *testing.T) {
	cases := []struct {
		start, end, want string
	}{
		{"09:00", "10:30", "1h 30m"},
		{"09:00", "09:00", "0h 0m"},
		{"10:00", "09:00", "-1h 0m"},
		{"garbage", "10:00", ErrorCell},
		{"09:00", "25:00", ErrorCell},
	}
	for _, tc := range cases {
		if got := DurationCell(tc.start, tc.end); got != tc.want {
			t.Fatalf("DurationCell(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestTotalForDaySkipsUnparseableRecords(t *testing.T) {
	records := []model.Record{
		{Start: "09:00", End: "10:00"},
		{Start: "bad", End: "10:00"},
		{Start: "10:00", End: "11:30"},
	}
	if got := TotalForDay(records); got != "2h 30m" {
		t.Fatalf("TotalForDay = %q, want \"2h 30m\"", got)
	}
}

func TestTotalForDayEmpty(t *testing.T) {
	if got := TotalForDay(nil); got != "0h 0m" {
		t.Fatalf("TotalForDay(nil) = %q", got)
	}
}

func TestTotalForDayIncludesNegativeContribution(t *testing.T) {
	records := []model.Record{
		{Start: "09:00", End: "11:00"},
		{Start: "10:00", End: "09:30"},
	}
	// 2h plus a -30m record.
	if got := TotalForDay(records); got != "1h 30m" {
		t.Fatalf("TotalForDay = %q, want \"1h 30m\"", got)
	}
}
