// internal/cli/mobile.go
//
// `mobile` produces a balanced batch across difficulty bands for embedding
// in a mobile app, as a SQL script or directly as a SQLite database file
// (which also receives the dictionary table, so the app ships one file).

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordladder/internal/config"
	"github.com/robalobadob/wordladder/internal/export"
	"github.com/robalobadob/wordladder/internal/puzzledb"
)

func mobileCmd(cfg *config.Config) *cobra.Command {
	var (
		count      int
		output     string
		format     string
		ratios     []string
		withSchema bool
		batchSize  int
	)

	c := &cobra.Command{
		Use:   "mobile",
		Short: "Generate a balanced puzzle set for mobile apps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := buildEngine(*cfg)
			if err != nil {
				return err
			}

			weights, err := parseRatios(ratios, eng.bands.Labels())
			if err != nil {
				return err
			}

			res, err := eng.gen.Distribution(cmd.Context(), count, weights)
			if err != nil {
				return err
			}
			logShortfall(res, count)

			path, err := resolveOutputPath(output, eng.cfg.OutputDir, formatExt(format), "mobile_puzzles")
			if err != nil {
				return err
			}

			switch format {
			case "db":
				db, err := puzzledb.Open(path)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := db.InsertPuzzles(cmd.Context(), res.Puzzles); err != nil {
					return err
				}
				if err := db.InsertDictionary(cmd.Context(), eng.lists.Dictionary); err != nil {
					return err
				}
			default:
				sql := export.SQL(res.Puzzles, export.SQLConfig{BatchSize: batchSize, IncludeSchema: withSchema})
				if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
					return err
				}
			}

			fmt.Printf("Generated %d balanced puzzles and saved to %s\n", len(res.Puzzles), path)
			return nil
		},
	}

	c.Flags().IntVarP(&count, "count", "c", 1000, "total number of puzzles to generate")
	c.Flags().StringVarP(&output, "output", "o", "", "output file (defaults under the output dir)")
	c.Flags().StringVarP(&format, "format", "f", "sql", "output format: sql (script) or db (SQLite file)")
	c.Flags().StringSliceVar(&ratios, "ratio", []string{"easy=0.4", "medium=0.4", "hard=0.2"},
		"band proportions as label=weight (repeatable)")
	c.Flags().BoolVar(&withSchema, "include-schema", true, "include CREATE TABLE schema in SQL output")
	c.Flags().IntVar(&batchSize, "batch-size", 100, "rows per SQL INSERT statement")
	return c
}

// parseRatios turns label=weight strings into a weight map and checks the
// labels against the configured bands. Weights are used proportionally, so
// they need not sum to exactly 1.
func parseRatios(ratios, labels []string) (map[string]float64, error) {
	known := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		known[l] = struct{}{}
	}

	out := make(map[string]float64, len(ratios))
	var sum float64
	for _, r := range ratios {
		label, value, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("invalid ratio %q, want label=weight", r)
		}
		if _, exists := known[label]; !exists {
			return nil, fmt.Errorf("ratio names unknown band %q", label)
		}
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("invalid ratio weight %q", value)
		}
		out[label] = w
		sum += w
	}
	if sum <= 0 {
		return nil, fmt.Errorf("ratio weights sum to zero")
	}
	for label := range out {
		out[label] /= sum
	}
	return out, nil
}
