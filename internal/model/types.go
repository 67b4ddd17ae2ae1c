// Package model defines shared data structures.
package model

import "fmt"

// Mode selects how a practice session ends.
type Mode string

const (
	// ModeTime ends a session after a fixed number of seconds.
	ModeTime Mode = "time"
	// ModeWords ends a session after a fixed number of words.
	ModeWords Mode = "words"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTime, ModeWords:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode %q (must be %q or %q)", s, ModeTime, ModeWords)
	}
}

// Config defines practice settings. It is fixed once a session starts.
type Config struct {
	Mode        Mode
	Seconds     int
	Words       int
	Numbers     bool
	Punctuation bool
	Seed        *int64

	WordListPath string
	Keyboard     bool
	LogFile      string
}

// Metrics is a derived snapshot of session performance. Accuracy reflects
// the characters currently held in the buffer, so corrections raise it.
type Metrics struct {
	WPM            float64
	Accuracy       float64
	ElapsedSeconds float64
}

// KeyTally counts hits and misses for one target character.
type KeyTally struct {
	Hits   int
	Misses int
}

// KeyMiss ranks a target character by how often it was mistyped.
type KeyMiss struct {
	Char   rune
	Misses int
	Hits   int
}
