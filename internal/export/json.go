// internal/export/json.go
//
// JSON rendering of puzzles for programmatic consumers. The wire shape is
// {start, end, path, difficulty}; batches are a JSON array.

package export

import (
	"encoding/json"

	"github.com/robalobadob/wordladder/internal/puzzle"
)

// jsonPuzzle is the external JSON shape; internal bookkeeping fields like
// the ID and step count stay out of this format.
type jsonPuzzle struct {
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Path       []string `json:"path"`
	Difficulty string   `json:"difficulty"`
}

// JSON renders one puzzle as an indented JSON object.
func JSON(p *puzzle.Puzzle) (string, error) {
	out, err := json.MarshalIndent(toJSON(p), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// JSONBatch renders puzzles as an indented JSON array.
func JSONBatch(puzzles []*puzzle.Puzzle) (string, error) {
	arr := make([]jsonPuzzle, len(puzzles))
	for i, p := range puzzles {
		arr[i] = toJSON(p)
	}
	out, err := json.MarshalIndent(arr, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func toJSON(p *puzzle.Puzzle) jsonPuzzle {
	return jsonPuzzle{Start: p.Start, End: p.Target, Path: p.Path, Difficulty: p.Difficulty}
}
