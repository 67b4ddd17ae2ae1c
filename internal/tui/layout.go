package tui

// Smallest terminal the UI will draw in. Below either limit the frame is
// replaced by a resize notice.
const (
	MinWidth  = 24
	MinHeight = 6
)

const (
	// textMargin is the blank column kept on each side of the text band.
	textMargin = 1
	// chromeRows is the fixed vertical overhead: title, one gap, status.
	chromeRows = 3
	// minTextRows is the smallest text band worth drawing.
	minTextRows = 3
	// keyboardMinWidth is the narrowest terminal that fits the widest
	// keyboard row.
	keyboardMinWidth = 60
)

// framePlan fixes the geometry of one frame.
type framePlan struct {
	tooSmall  bool
	textWidth int
	textRows  int
	keyboard  bool
}

// planFrame divides the terminal height between the text band and the
// optional keyboard. The keyboard is all-or-nothing: when the window cannot
// fit all of its rows plus a minimum text band, it disappears entirely.
func planFrame(width, height int, wantKeyboard bool) framePlan {
	if width < MinWidth || height < MinHeight {
		return framePlan{tooSmall: true}
	}
	plan := framePlan{textWidth: width - 2*textMargin}
	rows := height - chromeRows
	if wantKeyboard && width >= keyboardMinWidth && rows-(keyboardRows+1) >= minTextRows {
		plan.keyboard = true
		rows -= keyboardRows + 1
	}
	plan.textRows = rows
	return plan
}

// scrollTop advances the band's top line so the caret stays near the middle.
// While typing forward the top only grows. It backs up just far enough when
// the caret would leave the band above, and clamps to the text on resize.
func scrollTop(prev, caretLine, textRows, lineCount int) int {
	if textRows < 1 {
		return 0
	}
	top := prev
	if desired := caretLine - textRows/2; desired > top {
		top = desired
	}
	if maxTop := lineCount - textRows; top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	if caretLine < top {
		top = caretLine
	}
	if caretLine >= top+textRows {
		top = caretLine - textRows + 1
	}
	return top
}
