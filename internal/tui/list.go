package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/wordwrap"
	"github.com/robby/cuelist/internal/domain"
	"github.com/robby/cuelist/internal/logging"
	"github.com/robby/cuelist/internal/store"
)

const (
	listChromeLines = 5 // header, overflow hint, detail, status, help
	minVisibleRows  = 3
)

// ListModel is the main cue list view. It reads the store to render and
// turns key presses into intents that name the selected cue by identity.
type ListModel struct {
	// Dependencies
	store  *store.Store
	logger *log.Logger

	// UI components
	keymap KeyMap
	help   HelpModel

	defaultLabel string

	// List state
	cursor  int // position of the selected cue
	offset  int // first visible row
	created int // running tally used for default labels

	// View state
	width    int
	height   int
	showHelp bool
	status   string
}

// NewListModel creates a list view over s. New cues added with the quick-add
// key are labelled "<defaultLabel> N".
func NewListModel(s *store.Store, logger *log.Logger, defaultLabel string) ListModel {
	if logger == nil {
		logger = logging.Discard()
	}
	if defaultLabel == "" {
		defaultLabel = "cue"
	}

	keymap := DefaultKeyMap()
	return ListModel{
		store:        s,
		logger:       logger,
		keymap:       keymap,
		help:         NewHelpModel(keymap),
		defaultLabel: defaultLabel,
		created:      s.Len(),
	}
}

// Init initializes the list.
func (m ListModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		(&m).adjustScroll()
		return m, nil

	case cueIntentMsg:
		(&m).applyIntent(msg)
		return m, nil

	case appendCueMsg:
		id := m.store.Append(msg.label)
		m.created++
		m.logger.Debug("appended cue", "id", id.Short(), "label", msg.label)
		m.status = fmt.Sprintf("added %q", msg.label)
		(&m).SelectCue(id)
		return m, nil

	case popBackMsg:
		if m.store.PopBack() {
			m.logger.Debug("removed last cue", "len", m.store.Len())
			m.status = "removed last cue"
		}
		(&m).clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m ListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help) || msg.String() == "q" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, func() tea.Msg { return QuitMsg{} }
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true

	// Navigation
	case key.Matches(msg, m.keymap.Up):
		(&m).moveCursor(-1)
	case key.Matches(msg, m.keymap.Down):
		(&m).moveCursor(1)
	case key.Matches(msg, m.keymap.Top):
		(&m).jumpTo(0)
	case key.Matches(msg, m.keymap.Bottom):
		(&m).jumpTo(m.store.Len() - 1)

	// List edits
	case key.Matches(msg, m.keymap.Append):
		label := m.nextLabel()
		return m, func() tea.Msg { return appendCueMsg{label: label} }
	case key.Matches(msg, m.keymap.AppendForm):
		return m, func() tea.Msg { return openEditMsg{isNew: true} }
	case key.Matches(msg, m.keymap.Edit):
		if cue, ok := m.selectedCue(); ok {
			return m, func() tea.Msg { return openEditMsg{id: cue.ID} }
		}
	case key.Matches(msg, m.keymap.Remove):
		return m, m.intent(opRemove)
	case key.Matches(msg, m.keymap.PopBack):
		return m, func() tea.Msg { return popBackMsg{} }

	// Positional moves
	case key.Matches(msg, m.keymap.MoveUp):
		return m, m.intent(opMoveUp)
	case key.Matches(msg, m.keymap.MoveDown):
		return m, m.intent(opMoveDown)
	case key.Matches(msg, m.keymap.MoveToFront):
		return m, m.intent(opMoveToFront)

	// Renumbering
	case key.Matches(msg, m.keymap.Increment):
		return m, m.intent(opIncrement)
	case key.Matches(msg, m.keymap.Decrement):
		return m, m.intent(opDecrement)
	case key.Matches(msg, m.keymap.IncrementSecondary):
		return m, m.intent(opIncrementSecondary)
	case key.Matches(msg, m.keymap.DecrementSecondary):
		return m, m.intent(opDecrementSecondary)
	}

	return m, nil
}

// nextLabel is the default label for the next new cue.
func (m ListModel) nextLabel() string {
	return fmt.Sprintf("%s %d", m.defaultLabel, m.created+1)
}

// intent captures the selected cue's identity now and delivers op for it later.
// It returns nil when the list is empty.
func (m ListModel) intent(op intentOp) tea.Cmd {
	cue, ok := m.selectedCue()
	if !ok {
		return nil
	}
	id := cue.ID
	return func() tea.Msg { return cueIntentMsg{op: op, id: id} }
}

// applyIntent resolves the intent's cue to its current position and applies op.
// The cursor follows the cue when it moves; a cue that no longer exists makes
// the intent a no-op.
func (m *ListModel) applyIntent(msg cueIntentMsg) {
	var changed bool
	switch msg.op {
	case opRemove:
		changed = m.store.RemoveCue(msg.id)
	case opMoveUp:
		changed = m.store.MoveCueUp(msg.id)
	case opMoveDown:
		changed = m.store.MoveCueDown(msg.id)
	case opMoveToFront:
		changed = m.store.MoveCueToFront(msg.id)
	case opIncrement:
		changed = m.store.IncrementCue(msg.id)
	case opDecrement:
		changed = m.store.DecrementCue(msg.id)
	case opIncrementSecondary:
		changed = m.store.IncrementCueSecondary(msg.id)
	case opDecrementSecondary:
		changed = m.store.DecrementCueSecondary(msg.id)
	}

	m.logger.Debug("applied intent", "op", msg.op, "cue", msg.id.Short(), "changed", changed)
	if changed {
		m.status = msg.op.String()
	}

	if !m.SelectCue(msg.id) {
		m.clampCursor()
	}
}

// SelectCue moves the cursor to the cue with the given identity.
// It reports false if the cue is not in the list.
func (m *ListModel) SelectCue(id domain.CueID) bool {
	i, ok := m.store.IndexOf(id)
	if !ok {
		return false
	}
	m.cursor = i
	m.adjustScroll()
	return true
}

// Cursor returns the position of the selected cue.
func (m ListModel) Cursor() int {
	return m.cursor
}

// selectedCue returns the cue under the cursor.
func (m ListModel) selectedCue() (domain.Cue, bool) {
	cue, err := m.store.Get(m.cursor)
	if err != nil {
		return domain.Cue{}, false
	}
	return cue, true
}

// moveCursor moves the selection up or down by delta.
func (m *ListModel) moveCursor(delta int) {
	m.jumpTo(m.cursor + delta)
}

// jumpTo selects position i, clamped to the list.
func (m *ListModel) jumpTo(i int) {
	m.cursor = i
	m.clampCursor()
}

func (m *ListModel) clampCursor() {
	if n := m.store.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScroll()
}

// visibleRows is the number of cue rows that fit on screen.
func (m ListModel) visibleRows() int {
	rows := m.height - listChromeLines
	if rows < minVisibleRows {
		rows = minVisibleRows
	}
	return rows
}

// adjustScroll ensures the selected cue is visible.
func (m *ListModel) adjustScroll() {
	visible := m.visibleRows()

	// Scroll up if needed
	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	// Scroll down if needed
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}

	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the list.
func (m ListModel) View() string {
	// Use sensible defaults if dimensions not yet set
	width := m.width
	if width == 0 {
		width = 80
	}

	if m.showHelp {
		return m.renderHeader(width) + "\n" + m.help.View(width)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")
	b.WriteString(m.renderRows(width))
	b.WriteString(m.renderDetail(width))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortView(width))
	return b.String()
}

// renderHeader renders a single header line with title on left and status on right.
func (m ListModel) renderHeader(width int) string {
	title := "Cue List"

	statusParts := []string{fmt.Sprintf("%d cues", m.store.Len())}
	if n := len(m.store.OutOfOrder()); n > 0 {
		statusParts = append(statusParts, fmt.Sprintf("%d out of order", n))
	}
	statusParts = append(statusParts, "[?]help")
	status := strings.Join(statusParts, " | ")

	// Calculate padding to right-align status
	padding := width - len(title) - len(status) - 2
	if padding < 1 {
		padding = 1
	}

	return titleStyle.Render(title) + strings.Repeat(" ", padding) + dimStyle.Render(status)
}

// renderRows renders the visible slice of the list.
func (m ListModel) renderRows(width int) string {
	cues := m.store.Cues()
	if len(cues) == 0 {
		return dimStyle.Render("  No cues. Press a to add one.") + "\n"
	}

	rows := rowsFor(cues, m.store.OutOfOrder())
	selected, _ := m.selectedCue()

	end := m.offset + m.visibleRows()
	if end > len(rows) {
		end = len(rows)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		b.WriteString(formatRow(rows[i], rows[i].ID == selected.ID, width))
		b.WriteString("\n")
	}
	if end < len(rows) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(rows)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetail renders the selected cue's identity and notes.
func (m ListModel) renderDetail(width int) string {
	cue, ok := m.selectedCue()
	if !ok {
		return ""
	}

	detail := fmt.Sprintf("#%d  %s  id %s", m.cursor+1, cue.Number.Dotted(), cue.ID.Short())
	if cue.Notes != "" {
		detail += "\n" + wordwrap.String(cue.Notes, width-4)
	}
	return dimStyle.Render(detail)
}
