// internal/cli/verify.go
//
// `verify` checks an externally supplied ladder: comma-separated words in,
// pass/fail with step count and classification out. Exit status 1 on an
// invalid ladder so scripts can branch on the result.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordladder/internal/config"
	"github.com/robalobadob/wordladder/internal/puzzle"
)

func verifyCmd(cfg *config.Config) *cobra.Command {
	var sequence string

	c := &cobra.Command{
		Use:   "verify",
		Short: "Verify a comma-separated word ladder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := buildEngine(*cfg)
			if err != nil {
				return err
			}

			seq := puzzle.ParseSequence(sequence)
			res := puzzle.Verify(eng.graph, eng.bands, seq)

			if !res.Valid {
				switch res.Failure {
				case puzzle.FailTooShort:
					fmt.Println("Invalid: a puzzle needs at least 2 words")
				case puzzle.FailUnknownWord:
					fmt.Printf("Invalid: %q is not in the dictionary\n", res.BadWord)
				case puzzle.FailNotAdjacent:
					fmt.Printf("Invalid: %q -> %q (position %d) is not a one-letter change\n",
						seq[res.BadIndex], seq[res.BadIndex+1], res.BadIndex)
				}
				return fmt.Errorf("puzzle is invalid")
			}

			fmt.Printf("Valid ladder: %d steps, difficulty %s\n", res.Steps, res.Difficulty)
			if res.MinSteps > 0 && !res.Optimal {
				fmt.Printf("Note: a shorter ladder exists (%d steps)\n", res.MinSteps)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&sequence, "puzzle", "p", "", `ladder as comma-separated words, e.g. "cat,cot,cog,dog"`)
	_ = c.MarkFlagRequired("puzzle")
	return c
}
