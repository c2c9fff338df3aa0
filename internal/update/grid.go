package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/timesheet/internal/clock"
	"github.com/sandeepkv93/timesheet/internal/model"
	"github.com/sandeepkv93/timesheet/internal/timesheet"
)

const overlapWarning = "warning: overlapping records on this day"

// reloadGrid refreshes the displayed set from the store: rows with their
// record ids attached, the day total, and a fresh overlap pass. It runs
// under the refresh guard since it rewrites the surface edits observe.
func (m *Model) reloadGrid() {
	m.refreshing = true
	defer func() { m.refreshing = false }()

	records, err := m.repo.ListByDay(context.Background(), m.Day)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("load day failed: %v", err), IsError: true}
		return
	}

	rows := make([]GridRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, GridRow{
			ID:          rec.ID,
			Start:       rec.Start,
			End:         rec.End,
			Duration:    timesheet.DurationCell(rec.Start, rec.End),
			Description: rec.Description,
			Posted:      rec.Posted,
		})
	}
	m.Rows = rows
	m.Total = timesheet.TotalForDay(records)
	m.Overlap = timesheet.DetectRecordOverlaps(records)
	m.clampCursor()
	if m.Overlap.Any() {
		m.Status = StatusBar{Text: overlapWarning, IsError: true}
	}
}

func (m Model) handleGridKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Rows)-1 {
			m.Cursor++
		}
	case m.Keys.PrevDay, "h":
		m.shiftDay(-1)
	case m.Keys.NextDay, "l":
		m.shiftDay(1)
	case m.Keys.Today:
		m.Day = m.today()
		m.reloadGrid()
	case m.Keys.EditStart:
		m.beginEdit(model.FieldStart)
	case m.Keys.EditEnd:
		m.beginEdit(model.FieldEnd)
	case m.Keys.EditDescription:
		m.beginEdit(model.FieldDescription)
	case m.Keys.TogglePosted:
		m.togglePosted()
	case m.Keys.DeleteRow:
		m.deleteSelected()
	}
	return m, nil
}

func (m *Model) shiftDay(days int) {
	if next, ok := clock.ShiftDay(m.Day, days); ok {
		m.Day = next
		m.reloadGrid()
	}
}

func (m *Model) beginEdit(field model.Field) {
	row, ok := m.selectedRow()
	if !ok {
		return
	}
	m.Edit.Active = true
	m.Edit.Row = m.Cursor
	m.Edit.Field = field
	switch field {
	case model.FieldStart:
		m.Edit.Input.SetValue(row.Start)
	case model.FieldEnd:
		m.Edit.Input.SetValue(row.End)
	case model.FieldDescription:
		m.Edit.Input.SetValue(row.Description)
	}
	m.Edit.Input.CursorEnd()
	m.Edit.Input.Focus()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commitEdit()
		return m, nil
	case "esc":
		m.Edit.Active = false
		m.Edit.Input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.Edit.Input, cmd = m.Edit.Input.Update(msg)
	return m, cmd
}

// commitEdit is the Editing -> Persisting -> Recomputing leg of the edit
// protocol: exactly one field update per committed change, then (for time
// fields only) one duration recompute, one day-total recompute and one
// overlap pass. The refresh guard makes the write-back side of that
// recomputation invisible to this path.
func (m *Model) commitEdit() {
	if m.refreshing {
		return
	}
	defer func() {
		m.Edit.Active = false
		m.Edit.Input.Blur()
	}()

	if m.Edit.Row < 0 || m.Edit.Row >= len(m.Rows) {
		return
	}
	row := &m.Rows[m.Edit.Row]
	value := strings.TrimSpace(m.Edit.Input.Value())

	var current string
	switch m.Edit.Field {
	case model.FieldStart:
		current = row.Start
	case model.FieldEnd:
		current = row.End
	case model.FieldDescription:
		current = row.Description
	default:
		return
	}
	if value == current {
		return
	}

	if err := m.repo.UpdateField(context.Background(), row.ID, m.Edit.Field, value); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("update failed: %v", err), IsError: true}
		return
	}

	switch m.Edit.Field {
	case model.FieldStart:
		row.Start = value
	case model.FieldEnd:
		row.End = value
	case model.FieldDescription:
		row.Description = value
	}
	m.Status = StatusBar{Text: "record updated", IsError: false}

	if m.Edit.Field == model.FieldStart || m.Edit.Field == model.FieldEnd {
		m.recomputeAfterTimeEdit(m.Edit.Row)
	}
}

// recomputeAfterTimeEdit writes recomputed values back into the displayed
// surface under the refresh guard (set, mutate, unconditionally clear).
func (m *Model) recomputeAfterTimeEdit(rowIdx int) {
	m.refreshing = true
	defer func() { m.refreshing = false }()

	row := &m.Rows[rowIdx]
	row.Duration = timesheet.DurationCell(row.Start, row.End)

	records, err := m.repo.ListByDay(context.Background(), m.Day)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("recompute total failed: %v", err), IsError: true}
	} else {
		m.Total = timesheet.TotalForDay(records)
	}

	m.Overlap = timesheet.DetectRecordOverlaps(m.displayedRecords())
	if m.Overlap.Any() {
		m.Status = StatusBar{Text: overlapWarning, IsError: true}
	}
}

func (m *Model) togglePosted() {
	row, ok := m.selectedRow()
	if !ok {
		return
	}
	next := !row.Posted
	if err := m.repo.UpdateField(context.Background(), row.ID, model.FieldPosted, strconv.FormatBool(next)); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("toggle posted failed: %v", err), IsError: true}
		return
	}
	m.Rows[m.Cursor].Posted = next
	if next {
		m.Status = StatusBar{Text: "record marked as posted", IsError: false}
	} else {
		m.Status = StatusBar{Text: "record marked as not posted", IsError: false}
	}
}

func (m *Model) deleteSelected() {
	row, ok := m.selectedRow()
	if !ok {
		return
	}
	if err := m.repo.Delete(context.Background(), row.ID); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("delete failed: %v", err), IsError: true}
		return
	}
	m.Status = StatusBar{Text: "record deleted", IsError: false}
	m.reloadGrid()
}

func (m Model) today() string {
	return clock.Day(m.now())
}
