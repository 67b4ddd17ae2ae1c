package tui

import (
	"strings"
	"testing"
)

func TestLayoutTargetSoftWrap(t *testing.T) {
	lay := layoutTarget([]rune("aaa bbb"), 5)
	if lay.lineCount != 2 {
		t.Fatalf("expected 2 lines, got %d", lay.lineCount)
	}
	if got := lay.pos[4]; got != (cell{line: 1, col: 0}) {
		t.Fatalf("expected next word on fresh line, got %+v", got)
	}
	// The wrapped space keeps the end-of-line position.
	if got := lay.pos[3]; got != (cell{line: 0, col: 3}) {
		t.Fatalf("expected wrapped space at end of line, got %+v", got)
	}
}

func TestLayoutTargetSpaceFitsAtLineEnd(t *testing.T) {
	lay := layoutTarget([]rune("aaa b"), 5)
	if lay.lineCount != 1 {
		t.Fatalf("expected single line, got %d", lay.lineCount)
	}
	if got := lay.pos[4]; got != (cell{line: 0, col: 4}) {
		t.Fatalf("expected trailing word on same line, got %+v", got)
	}
}

func TestLayoutTargetHardSplitsLongWord(t *testing.T) {
	lay := layoutTarget([]rune("abcdefgh"), 3)
	if lay.lineCount != 3 {
		t.Fatalf("expected 3 lines, got %d", lay.lineCount)
	}
	if got := lay.pos[3]; got != (cell{line: 1, col: 0}) {
		t.Fatalf("expected hard split at width, got %+v", got)
	}
	if got := lay.pos[6]; got != (cell{line: 2, col: 0}) {
		t.Fatalf("expected second split, got %+v", got)
	}
}

func TestLayoutTargetOverlongWordWrapsAtSpace(t *testing.T) {
	// The space breaks the line even though the next word cannot fit
	// anywhere; the word then hard-splits from a fresh line.
	lay := layoutTarget([]rune("ab verylong"), 5)
	if got := lay.pos[2]; got != (cell{line: 0, col: 2}) {
		t.Fatalf("expected space at end of first line, got %+v", got)
	}
	if got := lay.pos[3]; got != (cell{line: 1, col: 0}) {
		t.Fatalf("expected overlong word to start a fresh line, got %+v", got)
	}
	if lay.lineCount != 3 {
		t.Fatalf("expected 3 lines, got %d", lay.lineCount)
	}
}

func TestLayoutTargetEndPosition(t *testing.T) {
	lay := layoutTarget([]rune("abc"), 10)
	end := cell{line: 0, col: 3}
	if got := lay.caretCell(3); got != end {
		t.Fatalf("expected end-of-text cell %+v, got %+v", end, got)
	}
	if got := lay.caretCell(99); got != end {
		t.Fatalf("expected clamp past end, got %+v", got)
	}
	if got := lay.caretCell(-1); got != (cell{line: 0, col: 0}) {
		t.Fatalf("expected clamp below zero, got %+v", got)
	}
}

func TestLayoutTargetPositionsMonotone(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and runs far away"
	lay := layoutTarget([]rune(text), 12)
	prev := cell{}
	for i, c := range lay.pos {
		if c.line < prev.line {
			t.Fatalf("line order regressed at %d: %+v after %+v", i, c, prev)
		}
		if c.line == prev.line && i > 0 && c.col < prev.col {
			t.Fatalf("column order regressed at %d: %+v after %+v", i, c, prev)
		}
		if c.col > lay.width {
			t.Fatalf("cell %d past line width: %+v", i, c)
		}
		prev = c
	}
}

func TestLayoutTargetEmpty(t *testing.T) {
	lay := layoutTarget(nil, 10)
	if lay.lineCount != 1 {
		t.Fatalf("expected 1 line for empty target, got %d", lay.lineCount)
	}
	if got := lay.caretCell(0); got != (cell{line: 0, col: 0}) {
		t.Fatalf("expected origin cell, got %+v", got)
	}
}

func TestRenderTextRowsStyles(t *testing.T) {
	target := []rune("ab cd")
	typed := []rune("ax")
	rows := renderTextRows(target, typed, layoutTarget(target, 10), 0, 2)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := correctStyle.Render("a") +
		incorrectStyle.Render("b") +
		caretStyle.Render("_") +
		pendingStyle.Render("c") +
		pendingStyle.Render("d")
	if rows[0] != want {
		t.Fatalf("unexpected styled row:\n got %q\nwant %q", rows[0], want)
	}
	if rows[1] != "" {
		t.Fatalf("expected empty padding row, got %q", rows[1])
	}
}

func TestRenderTextRowsWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	typed := []rune("ax")
	rows := renderTextRows(target, typed, layoutTarget(target, 10), 0, 1)
	if !strings.Contains(rows[0], incorrectStyle.Render("•")) {
		t.Fatalf("expected dot for mistyped space, got %q", rows[0])
	}
}

func TestRenderTextRowsCaretOnUntypedChar(t *testing.T) {
	target := []rune("abc")
	typed := []rune("a")
	rows := renderTextRows(target, typed, layoutTarget(target, 10), 0, 1)
	if !strings.Contains(rows[0], caretStyle.Render("b")) {
		t.Fatalf("expected caret marker on next char, got %q", rows[0])
	}
}

func TestRenderTextRowsBand(t *testing.T) {
	target := []rune("aa bb cc")
	lay := layoutTarget(target, 3)
	if lay.lineCount != 3 {
		t.Fatalf("expected 3 lines, got %d", lay.lineCount)
	}
	rows := renderTextRows(target, []rune("aa bb cc"), lay, 1, 1)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := correctStyle.Render("b") + correctStyle.Render("b") + correctStyle.Render(" ")
	if rows[0] != want {
		t.Fatalf("expected middle line only:\n got %q\nwant %q", rows[0], want)
	}
}
