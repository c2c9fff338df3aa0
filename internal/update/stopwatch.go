package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sandeepkv93/timesheet/internal/clock"
	"github.com/sandeepkv93/timesheet/internal/model"
)

// handleStopwatchToggle starts the stopwatch when idle and stops-and-logs
// when running. Starting twice is impossible: the same key stops a running
// stopwatch.
func (m Model) handleStopwatchToggle() (Model, tea.Cmd) {
	if !m.Stopwatch.Running {
		m.Stopwatch.Running = true
		m.Stopwatch.StartedAt = m.now()
		m.Stopwatch.ElapsedSec = 0
		m.Status = StatusBar{Text: "stopwatch started", IsError: false}
		return m, stopwatchTickCmd()
	}
	m.stopStopwatch()
	return m, nil
}

// onStopwatchTick only refreshes the in-memory elapsed display. No store
// access happens on the tick path.
func (m Model) onStopwatchTick() (tea.Model, tea.Cmd) {
	if !m.Stopwatch.Running {
		return m, nil
	}
	m.Stopwatch.ElapsedSec = int(m.now().Sub(m.Stopwatch.StartedAt) / time.Second)
	return m, stopwatchTickCmd()
}

// stopStopwatch logs the tracked interval: start is derived from now minus
// the elapsed time, end is now, both rendered as "HH:MM" on the filtered
// day.
func (m *Model) stopStopwatch() {
	end := m.now()
	elapsed := end.Sub(m.Stopwatch.StartedAt)
	start := end.Add(-elapsed)

	m.Stopwatch.Running = false
	m.Stopwatch.ElapsedSec = 0

	rec := model.Record{
		ID:          uuid.NewString(),
		Day:         m.Day,
		Start:       start.Format(clock.TimeLayout),
		End:         end.Format(clock.TimeLayout),
		Description: m.cfg.DefaultDescription,
	}
	if err := m.repo.Insert(context.Background(), rec); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("log tracked time failed: %v", err), IsError: true}
		return
	}
	m.Status = StatusBar{Text: "tracked time logged", IsError: false}
	m.reloadGrid()
}

func stopwatchTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return StopwatchTickMsg{} })
}
