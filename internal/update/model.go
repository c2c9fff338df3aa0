package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/timesheet/internal/clock"
	"github.com/sandeepkv93/timesheet/internal/config"
	"github.com/sandeepkv93/timesheet/internal/model"
	"github.com/sandeepkv93/timesheet/internal/storage"
	"github.com/sandeepkv93/timesheet/internal/timesheet"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// GridRow is one displayed record. The record id travels with the row as a
// stable back-reference so edits never have to re-match rows to records by
// ordinal position.
type GridRow struct {
	ID          string
	Start       string
	End         string
	Duration    string
	Description string
	Posted      bool
}

type StopwatchState struct {
	Running    bool
	StartedAt  time.Time
	ElapsedSec int
}

type FormState struct {
	Active      bool
	Focus       int
	Start       textinput.Model
	End         textinput.Model
	Description textinput.Model
}

type EditState struct {
	Active bool
	Row    int
	Field  model.Field
	Input  textinput.Model
}

type PaletteState struct {
	Active bool
	Input  textinput.Model
}

type GlobalKeyMap struct {
	PrevDay         string
	NextDay         string
	Today           string
	NewEntry        string
	EditStart       string
	EditEnd         string
	EditDescription string
	TogglePosted    string
	DeleteRow       string
	Stopwatch       string
	Palette         string
	Help            string
	Quit            string
}

type StopwatchTickMsg struct{}

type Model struct {
	repo         storage.Repository
	cfg          RuntimeConfig
	settings     config.Settings
	settingsPath string
	now          func() time.Time

	Day     string
	Rows    []GridRow
	Cursor  int
	Total   string
	Overlap timesheet.OverlapReport

	Stopwatch StopwatchState
	Form      FormState
	Edit      EditState
	Palette   PaletteState

	// refreshing guards programmatic write-backs into the grid: while it is
	// set, the edit-commit path is suppressed so a refresh can never
	// re-trigger its own observer.
	refreshing bool

	Status      StatusBar
	HelpVisible bool
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
}

func NewModel(repo storage.Repository, settings config.Settings, settingsPath string, cfg RuntimeConfig) Model {
	m := Model{
		repo:         repo,
		cfg:          cfg,
		settings:     settings,
		settingsPath: settingsPath,
		now:          time.Now,
		Overlap:      timesheet.OverlapReport{Flagged: map[int]bool{}},
		Keys: GlobalKeyMap{
			PrevDay:         "left",
			NextDay:         "right",
			Today:           "t",
			NewEntry:        "n",
			EditStart:       "1",
			EditEnd:         "2",
			EditDescription: "3",
			TogglePosted:    "p",
			DeleteRow:       "x",
			Stopwatch:       " ",
			Palette:         "/",
			Help:            "?",
			Quit:            "q",
		},
	}
	m.Day = clock.Day(m.now())
	m.initInputs()
	m.reloadGrid()
	return m
}

func (m *Model) initInputs() {
	start := textinput.New()
	start.Placeholder = "HH:MM"
	start.CharLimit = 5
	start.Width = 7

	end := textinput.New()
	end.Placeholder = "HH:MM"
	end.CharLimit = 5
	end.Width = 7

	description := textinput.New()
	description.Placeholder = "activity description"
	description.Width = 40

	m.Form = FormState{Start: start, End: end, Description: description}

	edit := textinput.New()
	edit.Width = 40
	m.Edit = EditState{Input: edit}

	palette := textinput.New()
	palette.Placeholder = "add | day | export | posted"
	palette.Width = 48
	m.Palette = PaletteState{Input: palette}
}

func (m Model) selectedRow() (GridRow, bool) {
	if len(m.Rows) == 0 || m.Cursor < 0 || m.Cursor >= len(m.Rows) {
		return GridRow{}, false
	}
	return m.Rows[m.Cursor], true
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.Rows) {
		m.Cursor = len(m.Rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// displayedRecords rebuilds the record view of the grid for an overlap pass
// over exactly what is on screen.
func (m Model) displayedRecords() []model.Record {
	out := make([]model.Record, 0, len(m.Rows))
	for _, row := range m.Rows {
		out = append(out, model.Record{
			ID:          row.ID,
			Day:         m.Day,
			Start:       row.Start,
			End:         row.End,
			Description: row.Description,
			Posted:      row.Posted,
		})
	}
	return out
}
