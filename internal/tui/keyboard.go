package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// keyboardRows is the height of the on-screen keyboard.
const keyboardRows = 5

// keyboardLayout mirrors a US QWERTY board, one slice per physical row.
var keyboardLayout = [][]string{
	{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "Back"},
	{"Tab", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", `\`},
	{"Caps", "a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'", "Enter"},
	{"Shift", "z", "x", "c", "v", "b", "n", "m", ",", ".", "/", "Shift"},
	{"Space"},
}

// shiftedBase maps shifted symbols to the physical key that produces them.
var shiftedBase = map[rune]rune{
	'~': '`', '!': '1', '@': '2', '#': '3', '$': '4', '%': '5', '^': '6',
	'&': '7', '*': '8', '(': '9', ')': '0', '_': '-', '+': '=', '{': '[',
	'}': ']', '|': '\\', ':': ';', '"': '\'', '<': ',', '>': '.', '?': '/',
}

// keyTokens is the set of key caps to highlight for one keystroke.
type keyTokens map[string]struct{}

func tokens(names ...string) keyTokens {
	set := make(keyTokens, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// runeTokens maps a typed character to the caps that produce it. Shifted
// symbols and uppercase letters light their base key plus Shift.
func runeTokens(r rune) keyTokens {
	switch r {
	case ' ':
		return tokens("Space")
	case '\n', '\r':
		return tokens("Enter")
	case '\t':
		return tokens("Tab")
	}
	if unicode.IsUpper(r) {
		return tokens("Shift", string(unicode.ToLower(r)))
	}
	if base, ok := shiftedBase[r]; ok {
		return tokens("Shift", string(base))
	}
	return tokens(string(r))
}

// backspaceTokens highlights the backspace cap.
func backspaceTokens() keyTokens {
	return tokens("Back")
}

// renderKeyboard draws the keyboard centered in width, lighting the caps
// named in active. It always returns keyboardRows lines.
func renderKeyboard(width int, active keyTokens) []string {
	rows := make([]string, 0, keyboardRows)
	for _, row := range keyboardLayout {
		var b strings.Builder
		for i, name := range row {
			if i > 0 {
				b.WriteString(" ")
			}
			label := "[" + name + "]"
			if _, ok := active[name]; ok {
				b.WriteString(keyActiveStyle.Render(label))
			} else {
				b.WriteString(keyStyle.Render(label))
			}
		}
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String()))
	}
	return rows
}
