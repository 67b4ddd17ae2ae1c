// Package stats contains pure metric calculations for typing sessions.
package stats

import (
	"math"
	"strings"
	"time"
)

const sparkChars = " .:-=+*#%@"

// minMinutes floors elapsed time at one millisecond when computing WPM.
const minMinutes = 1.0 / 60000.0

// WPM computes words per minute from correctly typed characters, using the
// five-characters-per-word convention.
func WPM(correct int, elapsed time.Duration) float64 {
	if correct <= 0 {
		return 0
	}
	minutes := elapsed.Minutes()
	if minutes < minMinutes {
		minutes = minMinutes
	}
	return float64(correct) / 5.0 / minutes
}

// Accuracy is the share of buffered characters that match the target. An
// empty buffer reports zero.
func Accuracy(correct, typed int) float64 {
	if typed < 1 {
		typed = 1
	}
	return float64(correct) / float64(typed)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Resample thins values down to at most n evenly spaced points.
func Resample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	if n == 1 {
		return []float64{values[len(values)-1]}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
