package update

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/timesheet/internal/commands"
	"github.com/sandeepkv93/timesheet/internal/config"
	"github.com/sandeepkv93/timesheet/internal/export"
)

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.Palette.Input.SetValue("")
	m.Palette.Input.Focus()
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		return m, nil
	case "enter":
		input := m.Palette.Input.Value()
		m.closePalette()
		m.runCommand(input)
		return m, nil
	}
	var cmd tea.Cmd
	m.Palette.Input, cmd = m.Palette.Input.Update(msg)
	return m, cmd
}

func (m *Model) runCommand(input string) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	result, err := commands.Execute(cmd, m.commandHandlers())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if result.Message != "" {
		m.Status = StatusBar{Text: result.Message, IsError: false}
	}
}

func (m *Model) commandHandlers() commands.Handlers {
	return commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			if err := m.addRecord(args.Start, args.End, args.Description); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "record added"}, nil
		},
		Day: func(args commands.DayArgs) (commands.Result, error) {
			m.Day = args.Day
			m.reloadGrid()
			return commands.Result{Message: "showing " + args.Day}, nil
		},
		Export: func(args commands.ExportArgs) (commands.Result, error) {
			return m.runExport(args.From, args.To)
		},
		Posted: func() (commands.Result, error) {
			m.togglePosted()
			return commands.Result{}, nil
		},
	}
}

// runExport projects a date range into a grouped-by-day report and writes
// it as CSV next to the previous export, remembering the directory.
func (m *Model) runExport(from, to string) (commands.Result, error) {
	records, err := m.repo.ListByDayRange(context.Background(), from, to)
	if err != nil {
		m.LastError = err
		return commands.Result{}, fmt.Errorf("query range: %w", err)
	}
	if len(records) == 0 {
		m.Status = StatusBar{Text: fmt.Sprintf("no records found between %s and %s", from, to), IsError: true}
		return commands.Result{}, nil
	}

	report := export.BuildReport(from, to, records)
	dir := m.settings.LastExportDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, export.FileName(from, to))

	f, err := os.Create(path)
	if err != nil {
		m.LastError = err
		return commands.Result{}, fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := export.WriteCSV(f, report); err != nil {
		m.LastError = err
		return commands.Result{}, fmt.Errorf("write report: %w", err)
	}

	m.settings.LastExportDir = dir
	if m.settingsPath != "" {
		if err := config.Save(m.settingsPath, m.settings); err != nil {
			// The export itself succeeded; a settings write failure is
			// only worth a status note.
			return commands.Result{Message: fmt.Sprintf("report exported to %s (settings not saved: %v)", path, err)}, nil
		}
	}
	return commands.Result{Message: "report exported to " + path}, nil
}
