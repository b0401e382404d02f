package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeWordlist(t *testing.T, words []string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(p, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}
	return p
}

func genWords(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("word%03d", i)
	}
	return out
}

func TestLoadFile(t *testing.T) {
	words := genWords(80)
	p := writeWordlist(t, append([]string{"# comment", ""}, words...))
	got, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 80 || got[0] != "word000" || got[79] != "word079" {
		t.Fatalf("unexpected words: len=%d first=%q", len(got), got[0])
	}
}

func TestLoadFileRejectsSmallLists(t *testing.T) {
	p := writeWordlist(t, genWords(10))
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected error for a list below %d words", MinWords)
	}
}

func TestLoadFileRejectsDuplicates(t *testing.T) {
	words := genWords(80)
	words[50] = words[10]
	p := writeWordlist(t, words)
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestLoadFileRejectsWhitespaceWords(t *testing.T) {
	words := genWords(80)
	words[5] = "two\twords"
	p := writeWordlist(t, words)
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected whitespace error")
	}
}

func TestDefaultVocabulary(t *testing.T) {
	words := Default()
	if len(words) < MinWords {
		t.Fatalf("default vocabulary too small: %d", len(words))
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if strings.ContainsAny(w, " \t") {
			t.Fatalf("word %q contains whitespace", w)
		}
		if _, dup := seen[w]; dup {
			t.Fatalf("duplicate word %q", w)
		}
		seen[w] = struct{}{}
	}
	// Default returns a copy callers can mutate freely.
	words[0] = "mutated"
	if Default()[0] == "mutated" {
		t.Fatalf("Default must return a fresh copy")
	}
}
