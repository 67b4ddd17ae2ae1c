package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"keydrill/internal/model"
	"keydrill/internal/session"
	"keydrill/internal/stats"
)

// sparkWidth caps the results sparkline length.
const sparkWidth = 32

// maxMissedKeys caps the missed-key summary on the results card.
const maxMissedKeys = 5

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	plan := planFrame(m.width, m.height, m.cfg.Keyboard)
	if plan.tooSmall {
		return renderTooSmall(m.width, m.height)
	}
	snap := m.eng.Snapshot(m.now)
	if snap.State == session.StateFinished {
		return m.renderResults(snap)
	}
	return m.renderPractice(plan, snap)
}

func (m *Model) renderPractice(plan framePlan, snap session.Snapshot) string {
	lay := layoutTarget(snap.Target, plan.textWidth)
	rows := renderTextRows(snap.Target, snap.Typed, lay, m.scroll, plan.textRows)

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")
	margin := strings.Repeat(" ", textMargin)
	for _, row := range rows {
		if row != "" {
			b.WriteString(margin)
			b.WriteString(row)
		}
		b.WriteString("\n")
	}
	if plan.keyboard {
		b.WriteString("\n")
		for _, row := range renderKeyboard(m.width, m.highlight) {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	b.WriteString(m.renderStatus(snap))
	return b.String()
}

func (m *Model) renderResults(snap session.Snapshot) string {
	met := snap.Metrics
	lines := []string{
		titleStyle.Render("Results"),
		"",
		fmt.Sprintf("WPM      %6.1f", met.WPM),
		fmt.Sprintf("Accuracy %5.1f%%", met.Accuracy*100),
		fmt.Sprintf("Time     %5.1fs", met.ElapsedSeconds),
	}
	if spark := m.wpmSparkline(); spark != "" {
		lines = append(lines, "", footerStyle.Render("wpm ")+spark)
	}
	if missed := m.missedSummary(); missed != "" {
		lines = append(lines, "", missed)
	}
	card := cardStyle.Render(strings.Join(lines, "\n"))

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, card))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(snap))
	return b.String()
}

func (m *Model) renderTitle() string {
	return " " + titleStyle.Render("keydrill") + "  " + m.help.View(m.activeKeys())
}

func (m *Model) renderStatus(snap session.Snapshot) string {
	segments := []string{fmt.Sprintf("Mode %s", m.cfg.Mode)}
	switch m.cfg.Mode {
	case model.ModeTime:
		left := m.eng.TimeLeft(m.now)
		segments = append(segments, fmt.Sprintf("Time %3ds", int((left+time.Second-1)/time.Second)))
	case model.ModeWords:
		segments = append(segments, fmt.Sprintf("Words %d/%d", m.eng.WordsTyped(), m.cfg.Words))
	}
	met := snap.Metrics
	segments = append(segments,
		fmt.Sprintf("WPM %5.1f", met.WPM),
		fmt.Sprintf("Acc %5.1f%%", met.Accuracy*100),
	)
	return " " + footerStyle.Render(strings.Join(segments, "  "))
}

// wpmSparkline smooths the per-tick WPM samples into a short trend line.
func (m *Model) wpmSparkline() string {
	if len(m.wpmSamples) < 2 {
		return ""
	}
	smoothed := stats.MovingAverage(m.wpmSamples, 5)
	return sparkStyle.Render(stats.Sparkline(stats.Resample(smoothed, sparkWidth)))
}

func (m *Model) missedSummary() string {
	missed := stats.TopMissed(m.eng.KeyTallies(), maxMissedKeys)
	if len(missed) == 0 {
		return ""
	}
	parts := make([]string, 0, len(missed))
	for _, km := range missed {
		parts = append(parts, fmt.Sprintf("%c ×%d", km.Char, km.Misses))
	}
	return footerStyle.Render("missed ") + incorrectStyle.Render(strings.Join(parts, "  "))
}

func renderTooSmall(width, height int) string {
	msg := fmt.Sprintf("terminal too small\nneed at least %dx%d", MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, warnStyle.Render(msg))
}
