package export

import (
	"github.com/sandeepkv93/timesheet/internal/model"
	"github.com/sandeepkv93/timesheet/internal/timesheet"
)

// Line is one exported record with its computed duration cell.
type Line struct {
	Start       string
	End         string
	Duration    string
	Description string
	Posted      bool
}

// DayGroup is one day of the report with its records and worked total.
type DayGroup struct {
	Day   string
	Lines []Line
	Total string
}

// Report is the date-range projection consumed by spreadsheet/PDF renderers.
// The core produces the grouped data; file formats beyond CSV belong to the
// presentation side.
type Report struct {
	From   string
	To     string
	Groups []DayGroup
}

// Empty reports whether the range held no records.
func (r Report) Empty() bool {
	return len(r.Groups) == 0
}

// BuildReport groups a range query result by day, attaching per-record
// duration cells and a per-day total. The input is expected in
// (calendar day, start) order, as ListByDayRange returns it; groups are
// emitted in encounter order.
func BuildReport(from, to string, records []model.Record) Report {
	report := Report{From: from, To: to}
	var dayRecords []model.Record

	flush := func() {
		if len(dayRecords) == 0 {
			return
		}
		group := DayGroup{Day: dayRecords[0].Day, Total: timesheet.TotalForDay(dayRecords)}
		for _, rec := range dayRecords {
			group.Lines = append(group.Lines, Line{
				Start:       rec.Start,
				End:         rec.End,
				Duration:    timesheet.DurationCell(rec.Start, rec.End),
				Description: rec.Description,
				Posted:      rec.Posted,
			})
		}
		report.Groups = append(report.Groups, group)
		dayRecords = dayRecords[:0]
	}

	for _, rec := range records {
		if len(dayRecords) > 0 && rec.Day != dayRecords[0].Day {
			flush()
		}
		dayRecords = append(dayRecords, rec)
	}
	flush()
	return report
}
