package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/robby/cuelist/internal/config"
	"github.com/robby/cuelist/internal/domain"
	"github.com/robby/cuelist/internal/logging"
	"github.com/robby/cuelist/internal/store"
)

// AppScreen represents the different screens in the application flow.
type AppScreen int

const (
	ScreenList AppScreen = iota
	ScreenEdit
)

// AppModel is the root Bubble Tea model. It owns the store for the lifetime
// of the program and switches between the list and the cue editor.
type AppModel struct {
	// Dependencies
	store  *store.Store
	logger *log.Logger

	// Current state
	currentScreen AppScreen
	list          ListModel
	edit          EditModel
	width         int
	height        int
	err           error
}

// NewAppModel creates the app model over s.
func NewAppModel(s *store.Store, logger *log.Logger, cfg config.EditorConfig) AppModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return AppModel{
		store:         s,
		logger:        logger,
		currentScreen: ScreenList,
		list:          NewListModel(s, logger, cfg.DefaultLabel),
	}
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	return m.list.Init()
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// An error screen only waits for acknowledgement.
		if m.err != nil {
			m.err = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.list, cmd = m.updateList(msg)
		if m.currentScreen == ScreenEdit {
			model, _ := m.edit.Update(msg)
			m.edit = model.(EditModel)
		}
		return m, cmd

	case ErrorMsg:
		m.logger.Error("editor error", "err", msg.Err)
		m.err = msg.Err
		return m, nil

	case QuitMsg:
		m.logger.Debug("quit requested", "cues", m.store.Len())
		return m, tea.Quit

	case openEditMsg:
		cue := domain.Cue{Label: m.list.nextLabel()}
		if !msg.isNew {
			found, err := m.store.GetCue(msg.id)
			if err != nil {
				m.logger.Warn("cue to edit is gone", "cue", msg.id.Short())
				return m, nil
			}
			cue = found
		}
		m.currentScreen = ScreenEdit
		m.edit = NewEditModel(cue, msg.isNew)
		if m.width > 0 {
			model, _ := m.edit.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.edit = model.(EditModel)
		}
		return m, m.edit.Init()

	case editSubmittedMsg:
		m.currentScreen = ScreenList
		m.applyEdit(msg)
		return m, nil

	case editCancelledMsg:
		m.currentScreen = ScreenList
		return m, nil
	}

	// Delegate to current screen's model
	switch m.currentScreen {
	case ScreenEdit:
		model, cmd := m.edit.Update(msg)
		m.edit = model.(EditModel)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.list, cmd = m.updateList(msg)
		return m, cmd
	}
}

func (m AppModel) updateList(msg tea.Msg) (ListModel, tea.Cmd) {
	model, cmd := m.list.Update(msg)
	return model.(ListModel), cmd
}

// applyEdit writes the editor result to the store. A new cue is appended and
// then given the submitted number and notes; an edited cue is updated by
// identity, so it is a no-op if the cue was removed meanwhile.
func (m *AppModel) applyEdit(msg editSubmittedMsg) {
	id := msg.id
	if msg.isNew {
		id = m.store.Append(msg.label)
		m.list.created++
	}

	if !m.store.UpdateCue(id, msg.number, msg.label, msg.notes) && !msg.isNew {
		m.logger.Debug("edit made no change", "cue", id.Short())
		return
	}

	m.logger.Debug("applied edit", "cue", id.Short(), "number", msg.number.Dotted(), "new", msg.isNew)
	m.list.SelectCue(id)
	m.list.status = fmt.Sprintf("saved %s %q", msg.number.Dotted(), msg.label)
}

// Screen returns the active screen.
func (m AppModel) Screen() AppScreen {
	return m.currentScreen
}

// View renders the current screen.
func (m AppModel) View() string {
	// Show error if present
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress any key to continue, Ctrl+C to quit", m.err))
	}

	if m.currentScreen == ScreenEdit {
		return m.edit.View()
	}
	return m.list.View()
}
