// Package selftest runs terminal-free sanity checks over the session engine.
package selftest

import (
	"fmt"
	"io"
	"time"

	"keydrill/internal/generator"
	"keydrill/internal/model"
	"keydrill/internal/session"
	"keydrill/internal/stats"
	"keydrill/internal/words"
)

// check pairs one named assertion with the function that evaluates it.
type check struct {
	name string
	fn   func() error
}

func checks() []check {
	return []check{
		{"word pool determinism", checkPoolDeterminism},
		{"stream batching invariance", checkStreamBatching},
		{"pool token mixing", checkPoolTokens},
		{"clock starts on first keystroke", checkClockStart},
		{"words mode completion", checkWordsCompletion},
		{"time mode expiry", checkTimeExpiry},
		{"typed buffer bounds", checkTypedBounds},
		{"metric computation", checkMetrics},
		{"seeded restart", checkSeededRestart},
	}
}

// Run executes every check, writing one line per passing check to out and
// failure detail to errOut. It never touches the terminal, so it works in
// pipes and CI. A non-nil error means a check failed or a report write
// failed.
func Run(out, errOut io.Writer) error {
	return run(out, errOut, checks())
}

func run(out, errOut io.Writer, checks []check) error {
	failed := 0
	for _, c := range checks {
		if err := c.fn(); err != nil {
			failed++
			if _, werr := fmt.Fprintf(errOut, "FAIL %s: %v\n", c.name, err); werr != nil {
				return werr
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "ok   %s\n", c.name); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	if _, err := fmt.Fprintf(out, "all %d checks passed\n", len(checks)); err != nil {
		return err
	}
	return nil
}

func seedPtr(s int64) *int64 {
	return &s
}

func checkPoolDeterminism() error {
	pool := words.Base()
	a := generator.New(pool, 42).Next(40)
	b := generator.New(pool, 42).Next(40)
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("sequences diverged at %d: %q vs %q", i, a[i], b[i])
		}
	}
	c := generator.New(pool, 43).Next(40)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		return fmt.Errorf("different seeds produced identical sequences")
	}
	return nil
}

func checkStreamBatching() error {
	pool := words.Base()
	batched := generator.New(pool, 7)
	got := append(batched.Next(5), batched.Next(5)...)
	want := generator.New(pool, 7).Next(10)
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("batched draw diverged at %d", i)
		}
	}
	return nil
}

func checkPoolTokens() error {
	pool := words.Pool(words.Base(), true, true)
	found := map[string]bool{}
	for _, tok := range pool {
		found[tok] = true
	}
	for _, tok := range []string{"3", "?", "the"} {
		if !found[tok] {
			return fmt.Errorf("expected token %q in mixed pool", tok)
		}
	}
	plain := words.Pool(words.Base(), false, false)
	for _, tok := range plain {
		if tok == "3" || tok == "?" {
			return fmt.Errorf("unexpected token %q in plain pool", tok)
		}
	}
	return nil
}

func checkClockStart() error {
	cfg := model.Config{Mode: model.ModeTime, Seconds: 1, Seed: seedPtr(1)}
	e := session.New(cfg, words.Base())
	t0 := time.Unix(1700000000, 0)

	e.Tick(t0.Add(time.Hour))
	if e.State() != session.StateNotStarted {
		return fmt.Errorf("session started without a keystroke")
	}
	m := e.Metrics(t0.Add(time.Hour))
	if m.WPM != 0 || m.Accuracy != 0 || m.ElapsedSeconds != 0 {
		return fmt.Errorf("expected zero metrics before start, got %+v", m)
	}

	e.Type(e.Snapshot(t0).Target[0], t0)
	if e.State() != session.StateRunning {
		return fmt.Errorf("first keystroke did not start the clock")
	}
	return nil
}

func checkWordsCompletion() error {
	cfg := model.Config{Mode: model.ModeWords, Words: 5, Seed: seedPtr(9)}
	e := session.New(cfg, words.Base())
	t0 := time.Unix(1700000000, 0)
	target := append([]rune(nil), e.Snapshot(t0).Target...)
	for _, r := range target {
		e.Type(r, t0.Add(5*time.Second))
	}
	if e.State() != session.StateFinished {
		return fmt.Errorf("typing the full target did not finish the session")
	}
	m := e.Metrics(t0.Add(time.Minute))
	if m.Accuracy != 1.0 {
		return fmt.Errorf("expected perfect accuracy, got %f", m.Accuracy)
	}
	if m.WPM <= 0 {
		return fmt.Errorf("expected positive WPM, got %f", m.WPM)
	}
	return nil
}

func checkTimeExpiry() error {
	cfg := model.Config{Mode: model.ModeTime, Seconds: 1, Seed: seedPtr(3)}
	e := session.New(cfg, words.Base())
	t0 := time.Unix(1700000000, 0)

	e.Type(e.Snapshot(t0).Target[0], t0)
	e.Tick(t0.Add(500 * time.Millisecond))
	if e.State() != session.StateRunning {
		return fmt.Errorf("session expired early")
	}
	e.Tick(t0.Add(1100 * time.Millisecond))
	if e.State() != session.StateFinished {
		return fmt.Errorf("session did not expire")
	}
	if e.Metrics(t0.Add(time.Hour)) != e.Metrics(t0.Add(2*time.Hour)) {
		return fmt.Errorf("metrics not frozen after finish")
	}
	return nil
}

func checkTypedBounds() error {
	cfg := model.Config{Mode: model.ModeWords, Words: 2, Seed: seedPtr(4)}
	e := session.New(cfg, words.Base())
	t0 := time.Unix(1700000000, 0)

	e.Backspace()
	if e.State() != session.StateNotStarted {
		return fmt.Errorf("backspace on empty buffer changed state")
	}

	target := append([]rune(nil), e.Snapshot(t0).Target...)
	for _, r := range target {
		e.Type(r, t0)
	}
	e.Type('x', t0)
	snap := e.Snapshot(t0)
	if len(snap.Typed) != len(snap.Target) {
		return fmt.Errorf("typed buffer overshot target: %d > %d", len(snap.Typed), len(snap.Target))
	}
	return nil
}

func checkMetrics() error {
	if got := stats.WPM(300, time.Minute); got != 60.0 {
		return fmt.Errorf("expected 60 WPM, got %f", got)
	}
	if got := stats.Accuracy(3, 4); got != 0.75 {
		return fmt.Errorf("expected 0.75 accuracy, got %f", got)
	}
	if got := stats.Accuracy(0, 0); got != 0 {
		return fmt.Errorf("expected zero accuracy for empty buffer, got %f", got)
	}

	// A miss then a corrected retype leaves a clean buffer.
	cfg := model.Config{Mode: model.ModeWords, Words: 3, Seed: seedPtr(6)}
	e := session.New(cfg, words.Base())
	t0 := time.Unix(1700000000, 0)
	first := e.Snapshot(t0).Target[0]
	e.Type(first+1, t0)
	if acc := e.Metrics(t0).Accuracy; acc != 0 {
		return fmt.Errorf("expected zero accuracy after miss, got %f", acc)
	}
	e.Backspace()
	e.Type(first, t0)
	if acc := e.Metrics(t0).Accuracy; acc != 1.0 {
		return fmt.Errorf("expected recovered accuracy, got %f", acc)
	}
	return nil
}

func checkSeededRestart() error {
	cfg := model.Config{Mode: model.ModeWords, Words: 8, Seed: seedPtr(12)}
	e := session.New(cfg, words.Base())
	t0 := time.Unix(1700000000, 0)
	target := string(e.Snapshot(t0).Target)

	e.Type('x', t0)
	fresh := e.Restart()
	if fresh.State() != session.StateNotStarted {
		return fmt.Errorf("restart did not reset state")
	}
	if string(fresh.Snapshot(t0).Target) != target {
		return fmt.Errorf("seeded restart changed the target text")
	}
	return nil
}
