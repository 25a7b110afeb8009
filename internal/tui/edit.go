package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/robby/cuelist/internal/domain"
)

// editFields holds the form values. The form writes through pointers into
// it, so it lives behind a pointer that survives EditModel copies.
type editFields struct {
	number string
	label  string
	notes  string
}

// EditModel edits one cue's number, label and notes with a huh form.
// It never touches the store: it reports the result with editSubmittedMsg
// or editCancelledMsg and the app applies it.
type EditModel struct {
	form   *huh.Form
	fields *editFields

	id    domain.CueID
	isNew bool
	width int
}

// NewEditModel creates an editor prefilled from cue. With isNew set the
// result is appended as a new cue instead of updating cue.ID.
func NewEditModel(cue domain.Cue, isNew bool) EditModel {
	fields := &editFields{
		label: cue.Label,
		notes: cue.Notes,
	}
	if !cue.Number.IsUnset() {
		fields.number = cue.Number.Dotted()
	}

	title := "Edit cue"
	if isNew {
		title = "New cue"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Number").
				Description("5, 5.3, or empty for none").
				Value(&fields.number).
				Validate(validateNumber),
			huh.NewInput().
				Title("Label").
				Value(&fields.label),
			huh.NewText().
				Title("Notes").
				Lines(3).
				Value(&fields.notes),
		).Title(title),
	).WithShowHelp(true)

	return EditModel{
		form:   form,
		fields: fields,
		id:     cue.ID,
		isNew:  isNew,
	}
}

func validateNumber(s string) error {
	_, err := domain.ParseCueNumber(s)
	return err
}

// Init initializes the form.
func (m EditModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages.
func (m EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.form = m.form.WithWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return editCancelledMsg{} }
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.submit
	case huh.StateAborted:
		return m, func() tea.Msg { return editCancelledMsg{} }
	}

	return m, cmd
}

// submit reports the form values. The number field is validated by the
// form, so a parse failure here is an error.
func (m EditModel) submit() tea.Msg {
	number, err := domain.ParseCueNumber(m.fields.number)
	if err != nil {
		return ErrorMsg{Err: err}
	}
	return editSubmittedMsg{
		id:     m.id,
		isNew:  m.isNew,
		number: number,
		label:  strings.TrimSpace(m.fields.label),
		notes:  strings.TrimRight(m.fields.notes, "\n"),
	}
}

// View renders the form.
func (m EditModel) View() string {
	var b strings.Builder
	if !m.isNew {
		b.WriteString(dimStyle.Render("id " + m.id.Short()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.View())
	b.WriteString(hintStyle.Render("esc cancel"))
	return b.String()
}
