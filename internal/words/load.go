// internal/words/load.go
//
// Loading entry point tying the two word lists together.
//
// Load behavior:
//   1. If both paths are non-empty, read the dictionary from the first and
//      the base words from the second.
//   2. If only a dictionary path is given, the dictionary doubles as the
//      base list (every word is an eligible endpoint).
//   3. If only a base path is given, it is read against the embedded
//      default dictionary.
//   4. If neither is set, fall back to small embedded defaults so the tool
//      works out of the box.
//
// The base list is always restricted to dictionary members.

package words

import (
	"errors"
	"strings"
)

// ErrEmptyDictionary is returned when normalization leaves no usable words.
var ErrEmptyDictionary = errors.New("words: dictionary is empty after normalization")

// Lists bundles the two word universes used by the engine.
type Lists struct {
	Dictionary *List // full universe for path finding
	Base       *List // curated endpoints, always ⊆ Dictionary
}

// Load reads and normalizes both lists according to the path rules above.
// It fails only when the dictionary ends up empty; an empty base list is
// reported later by the sampler, which is the component that needs it.
func Load(dictPath, basePath string) (*Lists, error) {
	var dict, base *List

	switch {
	case dictPath != "" && basePath != "":
		var err error
		if dict, err = ReadFile(dictPath); err != nil {
			return nil, err
		}
		if base, err = ReadFile(basePath); err != nil {
			return nil, err
		}

	case dictPath != "":
		var err error
		if dict, err = ReadFile(dictPath); err != nil {
			return nil, err
		}
		base = dict

	case basePath != "":
		var err error
		if base, err = ReadFile(basePath); err != nil {
			return nil, err
		}
		dict = Normalize(strings.Split(embeddedDictionary, "\n"))

	default:
		dict = Normalize(strings.Split(embeddedDictionary, "\n"))
		base = Normalize(strings.Split(embeddedBase, "\n"))
	}

	if dict.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	return &Lists{Dictionary: dict, Base: restrict(base, dict)}, nil
}

// restrict drops base words that are not dictionary members.
func restrict(base, dict *List) *List {
	out := &List{set: make(map[string]struct{}, base.Len())}
	for _, w := range base.Words {
		if !dict.Contains(w) {
			continue
		}
		out.set[w] = struct{}{}
		out.Words = append(out.Words, w)
	}
	return out
}
