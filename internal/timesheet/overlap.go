package timesheet

import (
	"github.com/sandeepkv93/timesheet/internal/clock"
	"github.com/sandeepkv93/timesheet/internal/model"
)

// Interval is the derived (start, end, row) triple used for one overlap
// pass. It is rebuilt from the displayed records every pass, never stored.
type Interval struct {
	StartMin int
	EndMin   int
	Row      int
}

// OverlapReport holds the display positions that participate in at least one
// overlapping pair.
type OverlapReport struct {
	Flagged map[int]bool
}

// Any reports whether any overlapping pair was found.
func (r OverlapReport) Any() bool {
	return len(r.Flagged) > 0
}

// Row reports whether the record at the given display position overlaps
// another one.
func (r OverlapReport) Row(pos int) bool {
	return r.Flagged[pos]
}

// Intervals derives the comparable intervals for one day's displayed
// records. Rows with unparseable times or a non-positive duration are left
// out entirely: they neither cause nor receive overlap flags.
func Intervals(records []model.Record) []Interval {
	out := make([]Interval, 0, len(records))
	for row, rec := range records {
		s, ok := clock.ParseClock(rec.Start)
		if !ok {
			continue
		}
		e, ok := clock.ParseClock(rec.End)
		if !ok {
			continue
		}
		if e <= s {
			continue
		}
		out = append(out, Interval{StartMin: s, EndMin: e, Row: row})
	}
	return out
}

// DetectOverlaps flags every pair of intervals that strictly overlap:
// start_i < end_j && start_j < end_i. Touching endpoints do not count.
// The pairwise scan is O(n²); per-day record counts are tens at most.
func DetectOverlaps(intervals []Interval) OverlapReport {
	report := OverlapReport{Flagged: make(map[int]bool)}
	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			a, b := intervals[i], intervals[j]
			if a.StartMin < b.EndMin && b.StartMin < a.EndMin {
				report.Flagged[a.Row] = true
				report.Flagged[b.Row] = true
			}
		}
	}
	return report
}

// DetectRecordOverlaps runs a full overlap pass over a day's displayed
// record set.
func DetectRecordOverlaps(records []model.Record) OverlapReport {
	return DetectOverlaps(Intervals(records))
}
