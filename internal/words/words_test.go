package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBaseIsLowercase(t *testing.T) {
	dict := Base()
	if len(dict) < 200 {
		t.Fatalf("expected at least 200 base words, got %d", len(dict))
	}
	for _, w := range dict {
		if w != strings.ToLower(w) {
			t.Fatalf("expected lowercase word, got %q", w)
		}
		if strings.ContainsAny(w, " \t") {
			t.Fatalf("expected single token, got %q", w)
		}
	}
}

func TestBaseReturnsCopy(t *testing.T) {
	first := Base()
	first[0] = "mutated"
	if Base()[0] == "mutated" {
		t.Fatal("expected Base to return a fresh copy")
	}
}

func TestPool(t *testing.T) {
	dict := []string{"alpha", "beta"}

	plain := Pool(dict, false, false)
	if len(plain) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(plain))
	}

	full := Pool(dict, true, true)
	want := 2 + len(Digits()) + len(Punctuation())
	if len(full) != want {
		t.Fatalf("expected %d entries, got %d", want, len(full))
	}
	found := map[string]bool{}
	for _, tok := range full {
		found[tok] = true
	}
	for _, tok := range []string{"0", "9", "?", `\`} {
		if !found[tok] {
			t.Fatalf("expected pool to contain %q", tok)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	content := "Alpha\n\n  beta GAMMA  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp list: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write temp list: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty word list")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
