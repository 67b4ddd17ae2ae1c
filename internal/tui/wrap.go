package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cell addresses one target rune inside the wrapped text block.
type cell struct {
	line int
	col  int
}

// textLayout maps every target index, plus the end-of-text position, to a
// wrapped line and column. A space that triggers a soft wrap keeps the
// column one past the last rune of its line.
type textLayout struct {
	width     int
	lineCount int
	pos       []cell
}

// layoutTarget word-wraps target into lines at most width cells wide. Lines
// break at spaces; a word wider than a full line is hard-split.
func layoutTarget(target []rune, width int) textLayout {
	if width < 1 {
		width = 1
	}
	pos := make([]cell, len(target)+1)
	line, col := 0, 0
	for i := 0; i < len(target); i++ {
		if target[i] == ' ' {
			pos[i] = cell{line: line, col: col}
			if col+1+nextWordWidth(target, i+1) > width {
				line++
				col = 0
			} else {
				col++
			}
			continue
		}
		w := cellWidth(target[i])
		if col+w > width && col > 0 {
			line++
			col = 0
		}
		pos[i] = cell{line: line, col: col}
		col += w
	}
	pos[len(target)] = cell{line: line, col: col}
	return textLayout{width: width, lineCount: line + 1, pos: pos}
}

// caretCell returns the wrapped position for a flat target index.
func (l textLayout) caretCell(idx int) cell {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(l.pos) {
		idx = len(l.pos) - 1
	}
	return l.pos[idx]
}

func nextWordWidth(target []rune, start int) int {
	total := 0
	for i := start; i < len(target) && target[i] != ' '; i++ {
		total += cellWidth(target[i])
	}
	return total
}

func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// renderTextRows builds the visible band of wrapped target text, styling
// every character by comparing it against the typed buffer. The band starts
// at line top and always spans exactly rows entries; rows past the text are
// empty.
func renderTextRows(target, typed []rune, lay textLayout, top, rows int) []string {
	out := make([]string, rows)
	if rows <= 0 {
		return out
	}
	builders := make([]strings.Builder, rows)
	caret := len(typed)
	for i := 0; i < len(target); i++ {
		c := lay.pos[i]
		if c.line < top {
			continue
		}
		if c.line >= top+rows {
			break
		}
		if c.col >= lay.width {
			// A soft-wrapped space on an exactly full line has no cell
			// left to draw.
			continue
		}
		builders[c.line-top].WriteString(styledTargetRune(target, typed, i, caret))
	}
	for i := range builders {
		out[i] = builders[i].String()
	}
	return out
}

// styledTargetRune renders one target character: typed characters get the
// correct or incorrect style, untyped characters stay dim, and the caret
// marker is layered on whichever cell the caret occupies. A mistyped space
// shows a dot so the error has a visible glyph.
func styledTargetRune(target, typed []rune, i, caret int) string {
	displayed := target[i]
	style := pendingStyle
	if i < len(typed) {
		switch {
		case target[i] == ' ' && typed[i] != ' ':
			displayed = '•'
			style = incorrectStyle
		case typed[i] == target[i]:
			style = correctStyle
		default:
			style = incorrectStyle
		}
	}
	if i == caret {
		if displayed == ' ' {
			displayed = '_'
		}
		style = caretStyle
	}
	return style.Render(string(displayed))
}
