package generator

import (
	"strings"
	"testing"
)

var testPool = []string{"alpha", "beta", "gamma", "delta", "epsilon"}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(testPool, 42)
	b := New(testPool, 42)

	wordsA := a.Next(20)
	wordsB := b.Next(20)
	if len(wordsA) != 20 {
		t.Fatalf("expected 20 tokens, got %d", len(wordsA))
	}
	for i := range wordsA {
		if wordsA[i] != wordsB[i] {
			t.Fatalf("expected identical sequences, diverged at %d: %q vs %q", i, wordsA[i], wordsB[i])
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(testPool, 1)
	b := New(testPool, 2)

	wordsA := a.Next(50)
	wordsB := b.Next(50)
	same := true
	for i := range wordsA {
		if wordsA[i] != wordsB[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different sequences")
	}
}

func TestBatchingDoesNotChangeStream(t *testing.T) {
	batched := New(testPool, 7)
	whole := New(testPool, 7)

	got := append(batched.Next(5), batched.Next(5)...)
	want := whole.Next(10)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected batch-independent stream, diverged at %d: %q vs %q", i, got[i], want[i])
		}
	}
}

func TestTextJoinsWithSingleSpaces(t *testing.T) {
	g := New(testPool, 3)
	text := g.Text(8)
	fields := strings.Fields(text)
	if len(fields) != 8 {
		t.Fatalf("expected 8 tokens, got %d", len(fields))
	}
	if strings.Contains(text, "  ") {
		t.Fatalf("expected single spaces, got %q", text)
	}
}

func TestNextDrawsFromPool(t *testing.T) {
	allowed := map[string]bool{}
	for _, w := range testPool {
		allowed[w] = true
	}
	g := New(testPool, 99)
	for _, tok := range g.Next(100) {
		if !allowed[tok] {
			t.Fatalf("token %q not in pool", tok)
		}
	}
}

func TestPoolIsCopied(t *testing.T) {
	pool := []string{"one", "two"}
	g := New(pool, 5)
	pool[0] = "mutated"
	for _, tok := range g.Next(50) {
		if tok == "mutated" {
			t.Fatal("expected generator to hold its own copy of the pool")
		}
	}
}

func TestNextEdgeCounts(t *testing.T) {
	g := New(testPool, 1)
	if got := g.Next(0); got != nil {
		t.Fatalf("expected nil for zero count, got %v", got)
	}
	if got := g.Next(-3); got != nil {
		t.Fatalf("expected nil for negative count, got %v", got)
	}
	if got := New(nil, 1).Next(4); got != nil {
		t.Fatalf("expected nil for empty pool, got %v", got)
	}
}
