// internal/words/words.go
//
// Provides word list management for the ladder engine.
//
// Responsibilities:
//   - Load dictionary and base word lists from files or fall back to embedded defaults.
//   - Normalize raw lines: lowercase, trim, drop blanks and anything non-alphabetic.
//   - Deduplicate while preserving first-seen order (stable graph builds).
//   - Supply lookup sets and per-length grouping for puzzle sampling.
//
// Word Lists:
//   - "dictionary": the full word universe used for path finding.
//   - "base": a curated subset used only as puzzle start/target endpoints.
//     Base words that are missing from the dictionary are filtered out on
//     load, since a word with no graph entry can never be pathed.
//
// Constraints:
//   • Words must be ASCII letters a–z after lowercasing; anything else is dropped.
//   • Unlike a fixed-size guessing game, any word length >= 2 is accepted.

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// --- embedded tiny defaults (ensures the tool runs even if no files configured) ---

//go:embed default_small_dictionary.txt
var embeddedDictionary string

//go:embed default_small_base.txt
var embeddedBase string

// minWordLen rejects stray single letters that occasionally appear in
// dictionary dumps; a one-letter ladder is not a meaningful puzzle.
const minWordLen = 2

// List holds a normalized, deduplicated word list in first-seen order
// together with a lookup set.
type List struct {
	Words []string
	set   map[string]struct{}
}

// Contains reports whether w (case-insensitive) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of distinct words in the list.
func (l *List) Len() int { return len(l.Words) }

// ByLength groups the list's words by length, preserving list order
// within each group.
func (l *List) ByLength() map[int][]string {
	out := make(map[int][]string)
	for _, w := range l.Words {
		out[len(w)] = append(out[len(w)], w)
	}
	return out
}

// Normalize converts raw lines into a List: lowercase, trim, keep only
// alphabetic words of usable length, dedupe preserving first occurrence.
func Normalize(lines []string) *List {
	l := &List{set: make(map[string]struct{}, len(lines))}
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) < minWordLen || !isAlpha(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.Words = append(l.Words, w)
	}
	return l
}

// ReadFile loads one word per line from path and normalizes the result.
func ReadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return Normalize(lines), nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
