// Package vocab supplies the word vocabulary backing the reference model:
// a built-in default list plus a loader for user-supplied wordlist files.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"stegod/internal/common/fsutil"
)

// MinWords is the smallest vocabulary the reference codec can work with;
// the widest candidate window must fit inside it.
const MinWords = 64

// LoadFile reads a wordlist file with one word per line. Blank lines and
// lines starting with '#' are skipped. Words must be unique and contain no
// whitespace so tokenization round-trips exactly.
func LoadFile(path string) ([]string, error) {
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	seen := make(map[string]struct{})
	var words []string
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if strings.ContainsAny(w, " \t") {
			return nil, fmt.Errorf("wordlist line %d: %q contains whitespace", line, w)
		}
		if _, dup := seen[w]; dup {
			return nil, fmt.Errorf("wordlist line %d: duplicate word %q", line, w)
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	if len(words) < MinWords {
		return nil, fmt.Errorf("wordlist needs at least %d words, got %d", MinWords, len(words))
	}
	return words, nil
}

// Default returns a copy of the built-in vocabulary.
func Default() []string {
	out := make([]string, len(defaultWords))
	copy(out, defaultWords)
	return out
}

var defaultWords = []string{
	"the", "of", "and", "to", "in", "a", "is", "that", "for", "it",
	"as", "was", "with", "be", "by", "on", "not", "he", "this", "are",
	"at", "but", "his", "they", "from", "she", "which", "or", "we", "an",
	"were", "her", "all", "there", "their", "one", "you", "had", "have", "has",
	"when", "who", "will", "more", "if", "no", "out", "so", "said", "what",
	"up", "its", "about", "into", "than", "them", "can", "only", "other", "new",
	"some", "could", "time", "these", "two", "may", "then", "do", "first", "any",
	"my", "now", "such", "like", "our", "over", "man", "me", "even", "most",
	"made", "after", "also", "did", "many", "before", "must", "through", "years", "where",
	"much", "your", "way", "well", "down", "should", "because", "each", "just", "those",
	"people", "how", "too", "little", "state", "good", "very", "make", "world", "still",
	"own", "see", "men", "work", "long", "get", "here", "between", "both", "life",
	"being", "under", "never", "day", "same", "another", "know", "while", "last", "might",
	"us", "great", "old", "year", "off", "come", "since", "against", "go", "came",
	"right", "used", "take", "three", "house", "again", "around", "small", "every", "home",
	"found", "thought", "went", "say", "part", "once", "high", "general", "upon", "school",
}
