// Package session implements the typing practice state machine.
package session

import (
	"time"
	"unicode"

	"keydrill/internal/generator"
	"keydrill/internal/model"
	"keydrill/internal/stats"
)

// State is the engine lifecycle phase.
type State int

const (
	// StateNotStarted means no keystroke has arrived yet; the clock is idle.
	StateNotStarted State = iota
	// StateRunning means the clock started on the first keystroke.
	StateRunning
	// StateFinished is terminal. Only Restart produces a fresh session.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// extendBatch is how many tokens a time-mode target grows by when typing
// reaches its end.
const extendBatch = 50

// wordsPerMinuteEstimate sizes the initial time-mode target.
const wordsPerMinuteEstimate = 300

// Engine owns one practice session: target text, typed buffer, clock, and
// per-key tallies. It knows nothing about terminal geometry or rendering.
// All methods take the current time explicitly, so callers control the clock.
type Engine struct {
	cfg  model.Config
	pool []string
	gen  *generator.Generator

	target []rune
	typed  []rune

	state     State
	startedAt time.Time
	endedAt   time.Time

	correct int
	tallies map[rune]*model.KeyTally
}

// New builds an engine for cfg drawing words from pool. A configured seed
// reproduces the same target text on every run; without one the engine seeds
// itself from the clock.
func New(cfg model.Config, pool []string) *Engine {
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	e := &Engine{
		cfg:     cfg,
		pool:    append([]string(nil), pool...),
		gen:     generator.New(pool, seed),
		tallies: map[rune]*model.KeyTally{},
	}
	e.target = []rune(e.gen.Text(e.initialTokens()))
	return e
}

// initialTokens sizes the target. Words mode takes the configured count;
// time mode estimates enough words for the duration, extended on demand.
func (e *Engine) initialTokens() int {
	if e.cfg.Mode == model.ModeWords {
		if e.cfg.Words < 1 {
			return 1
		}
		return e.cfg.Words
	}
	est := e.cfg.Seconds * wordsPerMinuteEstimate / 60
	if est < extendBatch {
		est = extendBatch
	}
	return est
}

// Type handles one keystroke at time now. Enter is normalized to a space;
// unprintable input is ignored. The first accepted keystroke starts the
// clock. Keystrokes after the session finishes are dropped.
func (e *Engine) Type(r rune, now time.Time) {
	if e.state == StateFinished {
		return
	}
	if r == '\n' || r == '\r' {
		r = ' '
	}
	if r != ' ' && !unicode.IsPrint(r) {
		return
	}
	if e.state == StateNotStarted {
		e.state = StateRunning
		e.startedAt = now
	}
	if len(e.typed) < len(e.target) {
		pos := len(e.typed)
		expected := e.target[pos]
		e.typed = append(e.typed, r)
		if r == expected {
			e.correct++
		}
		if expected != ' ' {
			tally := e.tallies[expected]
			if tally == nil {
				tally = &model.KeyTally{}
				e.tallies[expected] = tally
			}
			if r == expected {
				tally.Hits++
			} else {
				tally.Misses++
			}
		}
	}
	e.ensureRoom(now)
	e.checkDone(now)
}

// Backspace removes the most recent typed character, if any. The clock keeps
// running even when the buffer empties. Per-key tallies are not rewound, so
// corrected mistakes still count toward the missed-keys report.
func (e *Engine) Backspace() {
	if e.state != StateRunning || len(e.typed) == 0 {
		return
	}
	last := len(e.typed) - 1
	if e.typed[last] == e.target[last] {
		e.correct--
	}
	e.typed = e.typed[:last]
}

// Tick re-evaluates time-mode expiry at now. It must be called periodically
// so a session can end without further keystrokes.
func (e *Engine) Tick(now time.Time) {
	e.checkDone(now)
}

// Finish ends a running session early, freezing its metrics at now.
func (e *Engine) Finish(now time.Time) {
	if e.state == StateRunning {
		e.finish(now)
	}
}

// Restart returns a fresh engine with the same configuration and pool. A
// configured seed reproduces the identical target text; otherwise a new
// random sequence is drawn.
func (e *Engine) Restart() *Engine {
	return New(e.cfg, e.pool)
}

// ensureRoom extends a time-mode target when typing has consumed it all and
// the clock has not expired. The extension continues the generator's stream,
// so a seeded session stays reproducible across extensions.
func (e *Engine) ensureRoom(now time.Time) {
	if e.cfg.Mode != model.ModeTime || e.state != StateRunning {
		return
	}
	if len(e.typed) < len(e.target) || e.expired(now) {
		return
	}
	e.target = append(e.target, ' ')
	e.target = append(e.target, []rune(e.gen.Text(extendBatch))...)
}

func (e *Engine) checkDone(now time.Time) {
	if e.state != StateRunning {
		return
	}
	switch e.cfg.Mode {
	case model.ModeWords:
		if len(e.typed) >= len(e.target) {
			e.finish(now)
		}
	case model.ModeTime:
		if e.expired(now) {
			e.finish(now)
		}
	}
}

func (e *Engine) expired(now time.Time) bool {
	if e.state != StateRunning {
		return false
	}
	return now.Sub(e.startedAt) >= time.Duration(e.cfg.Seconds)*time.Second
}

func (e *Engine) finish(now time.Time) {
	e.state = StateFinished
	e.endedAt = now
}

// Elapsed returns the session running time at now: zero before the first
// keystroke, frozen once the session finishes.
func (e *Engine) Elapsed(now time.Time) time.Duration {
	switch e.state {
	case StateNotStarted:
		return 0
	case StateFinished:
		return e.endedAt.Sub(e.startedAt)
	default:
		d := now.Sub(e.startedAt)
		if d < 0 {
			d = 0
		}
		return d
	}
}

// TimeLeft reports the remaining time-mode duration at now, clamped at zero.
func (e *Engine) TimeLeft(now time.Time) time.Duration {
	if e.cfg.Mode != model.ModeTime {
		return 0
	}
	left := time.Duration(e.cfg.Seconds)*time.Second - e.Elapsed(now)
	if left < 0 {
		left = 0
	}
	return left
}

// Metrics derives WPM, accuracy, and elapsed seconds at now. It never
// mutates state: calling it any number of times changes nothing.
func (e *Engine) Metrics(now time.Time) model.Metrics {
	elapsed := e.Elapsed(now)
	return model.Metrics{
		WPM:            stats.WPM(e.correct, elapsed),
		Accuracy:       stats.Accuracy(e.correct, len(e.typed)),
		ElapsedSeconds: elapsed.Seconds(),
	}
}

// WordsTyped counts fully passed words, for the words-mode status line.
func (e *Engine) WordsTyped() int {
	n := 0
	for i := 0; i < len(e.typed) && i < len(e.target); i++ {
		if e.target[i] == ' ' {
			n++
		}
	}
	if len(e.target) > 0 && len(e.typed) >= len(e.target) {
		n++
	}
	return n
}

// KeyTallies returns a copy of the cumulative per-character hit and miss
// counts. Spaces are never tallied.
func (e *Engine) KeyTallies() map[rune]model.KeyTally {
	out := make(map[rune]model.KeyTally, len(e.tallies))
	for ch, tally := range e.tallies {
		out[ch] = *tally
	}
	return out
}

// State returns the engine lifecycle phase.
func (e *Engine) State() State {
	return e.state
}

// Config returns the session configuration.
func (e *Engine) Config() model.Config {
	return e.cfg
}

// Seed returns the seed behind this session's target text.
func (e *Engine) Seed() int64 {
	return e.gen.Seed()
}

// Snapshot is a read-only view of engine state for rendering. The slices
// alias engine memory and must not be modified.
type Snapshot struct {
	State   State
	Target  []rune
	Typed   []rune
	Correct int
	Metrics model.Metrics
}

// Snapshot captures the renderable state at now.
func (e *Engine) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:   e.state,
		Target:  e.target,
		Typed:   e.typed,
		Correct: e.correct,
		Metrics: e.Metrics(now),
	}
}
