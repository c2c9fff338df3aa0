package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/timesheet/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Edit.Active {
			return m.handleEditKey(typed)
		}
		if m.Form.Active {
			return m.handleFormKey(typed)
		}

		switch typed.String() {
		case m.Keys.Palette:
			m.openPalette()
			return m, nil
		case m.Keys.NewEntry:
			m.openForm()
			return m, nil
		case m.Keys.Stopwatch:
			return m.handleStopwatchToggle()
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleGridKey(typed)
	case StopwatchTickMsg:
		return m.onStopwatchTick()
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	rows := make([]views.GridRow, 0, len(m.Rows))
	for i, row := range m.Rows {
		rows = append(rows, views.GridRow{
			Start:       row.Start,
			End:         row.End,
			Duration:    row.Duration,
			Description: row.Description,
			Posted:      row.Posted,
			Overlap:     m.Overlap.Row(i),
			Selected:    i == m.Cursor,
		})
	}
	left := views.RenderGrid(m.Day, rows, m.Total)

	right := views.RenderStopwatch(m.Stopwatch.Running, m.Stopwatch.ElapsedSec)
	switch {
	case m.Palette.Active:
		right += "\n\ncommand: " + m.Palette.Input.View()
	case m.Edit.Active:
		right += fmt.Sprintf("\n\nedit %s: %s", m.Edit.Field, m.Edit.Input.View())
	case m.Form.Active:
		right += "\n\nnew record\n" +
			"  start: " + m.Form.Start.View() + "\n" +
			"  end: " + m.Form.End.View() + "\n" +
			"  description: " + m.Form.Description.View()
	}
	if m.HelpVisible {
		right += "\n\n" + views.RenderMarkdown(helpText)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("timesheet | day: %s | total: %s", m.Day, m.Total),
		LeftPane:   left,
		RightPane:  right,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s/%s day | %s today | space stopwatch | %s new | %s/%s/%s edit | %s posted | %s delete | / cmd | %s help | %s quit",
			m.Keys.PrevDay, m.Keys.NextDay, m.Keys.Today, m.Keys.NewEntry,
			m.Keys.EditStart, m.Keys.EditEnd, m.Keys.EditDescription,
			m.Keys.TogglePosted, m.Keys.DeleteRow, m.Keys.Help, m.Keys.Quit),
	})
}
