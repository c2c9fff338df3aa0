package timesheet

import (
	"errors"

	"github.com/sandeepkv93/timesheet/internal/clock"
	"github.com/sandeepkv93/timesheet/internal/model"
)

// ErrUnparseable marks a record whose start or end is not a valid "HH:MM"
// value. Aggregation skips these records; per-record display resolves them
// to ErrorCell.
var ErrUnparseable = errors.New("timesheet: unparseable clock value")

// ErrorCell is the literal marker shown in a duration cell when the record's
// times cannot be parsed.
const ErrorCell = "Erro"

// DurationSeconds computes end-start in seconds. The result may be negative
// when end precedes start; that stored quirk is kept observable rather than
// clamped or wrapped (see DESIGN.md).
func DurationSeconds(start, end string) (int, error) {
	s, ok := clock.ParseClock(start)
	if !ok {
		return 0, ErrUnparseable
	}
	e, ok := clock.ParseClock(end)
	if !ok {
		return 0, ErrUnparseable
	}
	return (e - s) * 60, nil
}

// DurationCell renders one record's duration for display: "Xh Ym", or the
// ErrorCell marker when either time is unparseable. Never panics.
func DurationCell(start, end string) string {
	sec, err := DurationSeconds(start, end)
	if err != nil {
		return ErrorCell
	}
	return clock.FormatDuration(sec)
}

// TotalForDay sums the durations of one day's records. Records with
// unparseable times are skipped; a bad record never aborts aggregation of
// the rest.
func TotalForDay(records []model.Record) string {
	total := 0
	for _, rec := range records {
		sec, err := DurationSeconds(rec.Start, rec.End)
		if err != nil {
			continue
		}
		total += sec
	}
	return clock.FormatDuration(total)
}
