package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GridRow carries the display values of one record row. Overlap and
// Selected only influence styling.
type GridRow struct {
	Start       string
	End         string
	Duration    string
	Description string
	Posted      bool
	Overlap     bool
	Selected    bool
}

var (
	gridHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	overlapStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	postedStyle     = lipgloss.NewStyle().Faint(true)
	totalStyle      = lipgloss.NewStyle().Bold(true)
	elapsedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

// RenderGrid renders one day's records with duration cells, overlap
// highlighting and the worked total.
func RenderGrid(day string, rows []GridRow, total string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "records for %s\n", day)
	b.WriteString(gridHeaderStyle.Render(fmt.Sprintf("%-7s %-7s %-9s %-30s %s", "start", "end", "duration", "description", "posted")) + "\n")

	if len(rows) == 0 {
		b.WriteString("no records for this day\n")
	}
	for _, row := range rows {
		posted := ""
		if row.Posted {
			posted = "yes"
		}
		line := fmt.Sprintf("%-7s %-7s %-9s %-30s %s", row.Start, row.End, row.Duration, truncate(row.Description, 30), posted)
		switch {
		case row.Selected:
			line = selectedStyle.Render("> " + line)
		case row.Overlap:
			line = overlapStyle.Render("! " + line)
		case row.Posted:
			line = postedStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + totalStyle.Render("worked total: "+total))
	return b.String()
}

// RenderStopwatch renders the running elapsed display as hh:mm:ss.
func RenderStopwatch(running bool, elapsedSec int) string {
	state := "stopped"
	if running {
		state = "running"
	}
	clock := fmt.Sprintf("%02d:%02d:%02d", elapsedSec/3600, (elapsedSec%3600)/60, elapsedSec%60)
	return fmt.Sprintf("stopwatch (%s)\n%s", state, elapsedStyle.Render(clock))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
