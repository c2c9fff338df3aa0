package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

var csvHeader = []string{"Day", "Start", "End", "Duration", "Description", "Posted"}

// WriteCSV serializes a report as flat CSV rows followed by one total row
// per day.
func WriteCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, group := range report.Groups {
		for _, line := range group.Lines {
			posted := "no"
			if line.Posted {
				posted = "yes"
			}
			row := []string{group.Day, line.Start, line.End, line.Duration, line.Description, posted}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row for %s: %w", group.Day, err)
			}
		}
		if err := cw.Write([]string{group.Day, "", "", group.Total, "Total", ""}); err != nil {
			return fmt.Errorf("write total for %s: %w", group.Day, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FileName builds a report file name for a date range, with the day
// separators made filesystem-safe.
func FileName(from, to string) string {
	safe := func(day string) string {
		return strings.ReplaceAll(day, "/", "-")
	}
	return fmt.Sprintf("timesheet_%s_%s.csv", safe(from), safe(to))
}
