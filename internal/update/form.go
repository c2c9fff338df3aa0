package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sandeepkv93/timesheet/internal/model"
)

func (m *Model) openForm() {
	m.Form.Active = true
	m.Form.Focus = 0
	m.Form.Start.Focus()
	m.Form.End.Blur()
	m.Form.Description.Blur()
}

func (m *Model) closeForm() {
	m.Form.Active = false
	m.Form.Start.Blur()
	m.Form.End.Blur()
	m.Form.Description.Blur()
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = len(formInputs) - 1
		}
		m.Form.Focus = (m.Form.Focus + delta) % len(formInputs)
		m.focusFormInput()
		return m, nil
	case "enter":
		m.submitForm()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Form.Focus {
	case 0:
		m.Form.Start, cmd = m.Form.Start.Update(msg)
	case 1:
		m.Form.End, cmd = m.Form.End.Update(msg)
	case 2:
		m.Form.Description, cmd = m.Form.Description.Update(msg)
	}
	return m, cmd
}

var formInputs = [3]string{"start", "end", "description"}

func (m *Model) focusFormInput() {
	m.Form.Start.Blur()
	m.Form.End.Blur()
	m.Form.Description.Blur()
	switch m.Form.Focus {
	case 0:
		m.Form.Start.Focus()
	case 1:
		m.Form.End.Focus()
	case 2:
		m.Form.Description.Focus()
	}
}

// submitForm creates a record from the manual-entry form on the filtered
// day. A blank description is the one write-time validation: the record is
// not created and the message stays inline.
func (m *Model) submitForm() {
	err := m.addRecord(
		strings.TrimSpace(m.Form.Start.Value()),
		strings.TrimSpace(m.Form.End.Value()),
		strings.TrimSpace(m.Form.Description.Value()),
	)
	if err != nil {
		return
	}
	m.Form.Start.SetValue("")
	m.Form.End.SetValue("")
	m.Form.Description.SetValue("")
	m.Form.Focus = 0
	m.focusFormInput()
}

func (m *Model) addRecord(start, end, description string) error {
	rec := model.Record{
		ID:          uuid.NewString(),
		Day:         m.Day,
		Start:       start,
		End:         end,
		Description: description,
	}
	if err := m.repo.Insert(context.Background(), rec); err != nil {
		m.LastError = err
		if errors.Is(err, model.ErrBlankDescription) {
			m.Status = StatusBar{Text: "description is required", IsError: true}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("add record failed: %v", err), IsError: true}
		}
		return err
	}
	m.Status = StatusBar{Text: "record added", IsError: false}
	m.reloadGrid()
	return nil
}
