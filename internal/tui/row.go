package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/robby/cuelist/internal/domain"
)

const (
	numberColumnWidth  = 8
	compactNumberWidth = 4
	positionWidth      = 5
	rowPrefixWidth     = 2 // cursor marker
	minLabelWidth      = 8

	// Below this width rows drop the position column, the secondary part and notes.
	compactRowWidth = 48
)

// Row is the display record for one cue: what a single line of the list shows.
type Row struct {
	ID     domain.CueID
	Index  int
	Number string // primary part only, "_" when unset
	Dotted string // both parts, e.g. "5.3"
	Label  string
	Notes  string

	// OutOfOrder is set by the list when this cue sorts before the one above it.
	OutOfOrder bool
}

// RowFor maps a cue at the given position to its display record.
func RowFor(cue domain.Cue, index int) Row {
	return Row{
		ID:     cue.ID,
		Index:  index,
		Number: domain.DisplayString(cue.Number),
		Dotted: cue.Number.Dotted(),
		Label:  cue.Label,
		Notes:  cue.Notes,
	}
}

// rowsFor maps the store view to rows, flagging out-of-order positions.
func rowsFor(cues []domain.Cue, outOfOrder []int) []Row {
	rows := make([]Row, len(cues))
	for i, cue := range cues {
		rows[i] = RowFor(cue, i)
	}
	for _, i := range outOfOrder {
		if i >= 0 && i < len(rows) {
			rows[i].OutOfOrder = true
		}
	}
	return rows
}

// formatRow renders a row into a single line no wider than width. Wide rows
// show the list position, the dotted number and the first line of notes;
// compact rows show only the primary number and the label.
func formatRow(row Row, selected bool, width int) string {
	prefix, style := "  ", rowStyle
	if selected {
		prefix, style = "> ", cursorRowStyle
	}

	compact := width < compactRowWidth

	var position, number string
	used := rowPrefixWidth + 2 // marker and gap
	if compact {
		number = formatNumber(row.Number, compactNumberWidth)
		used += compactNumberWidth
	} else {
		position = dimStyle.Render(fmt.Sprintf("%*d ", positionWidth-1, row.Index+1))
		number = formatNumber(row.Dotted, numberColumnWidth)
		used += positionWidth + numberColumnWidth
	}

	marker := " "
	if row.OutOfOrder {
		marker = outOfOrderMark
	}

	labelWidth := max(width-used, minLabelWidth)
	text := truncate.StringWithTail(row.Label, uint(labelWidth), "…")
	if notes := firstLine(row.Notes); notes != "" && !compact {
		room := labelWidth - len([]rune(text)) - 3
		if room > minLabelWidth {
			text += "   " + dimStyle.Render(truncate.StringWithTail(notes, uint(room), "…"))
		}
	}

	return style.Render(prefix) + position + number + marker + " " + style.Render(text)
}

// formatNumber pads a number cell to width and colours it by whether it is set.
func formatNumber(s string, width int) string {
	cell := fmt.Sprintf("%-*s", width, s)
	if s == "_" {
		return unsetStyle.Render(cell)
	}
	return numberStyle.Render(cell)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
