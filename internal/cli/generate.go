// internal/cli/generate.go
//
// `generate` covers two shapes, like the original tool:
//   - with --start/--end: one puzzle for that exact pair, printed or written.
//   - without: bulk generation, one output file per difficulty band.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordladder/internal/config"
	"github.com/robalobadob/wordladder/internal/export"
	"github.com/robalobadob/wordladder/internal/puzzle"
)

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		start      string
		end        string
		format     string
		output     string
		count      int
		withSchema bool
		batchSize  int
	)

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles (bulk per difficulty, or a single pair)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count > 0 {
				cfg.BulkCount = count
			}
			eng, err := buildEngine(*cfg)
			if err != nil {
				return err
			}

			if start == "" && end == "" {
				return generateBulk(cmd.Context(), eng, format, output, withSchema, batchSize)
			}
			if start == "" || end == "" {
				// One endpoint given: fill the other randomly.
				s, t, err := eng.gen.RandomPair()
				if err != nil {
					return err
				}
				if start == "" {
					start = s
				}
				if end == "" {
					end = t
				}
			}
			return generatePair(eng, strings.ToLower(start), strings.ToLower(end), format, output, withSchema, batchSize)
		},
	}

	c.Flags().StringVarP(&start, "start", "s", "", "starting word (random base word when omitted)")
	c.Flags().StringVarP(&end, "end", "e", "", "target word (random base word when omitted)")
	c.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, or sql")
	c.Flags().StringVarP(&output, "output", "o", "", "output file (defaults under the output dir)")
	c.Flags().IntVarP(&count, "count", "c", 0, "puzzles per difficulty for bulk generation")
	c.Flags().BoolVar(&withSchema, "include-schema", true, "include CREATE TABLE schema in SQL output")
	c.Flags().IntVar(&batchSize, "batch-size", 100, "rows per SQL INSERT statement")
	return c
}

// generatePair builds and emits one explicitly requested puzzle.
func generatePair(eng *engine, start, end, format, output string, withSchema bool, batchSize int) error {
	p, err := eng.gen.ForPair(start, end)
	if err != nil {
		if errors.Is(err, puzzle.ErrNoPath) {
			fmt.Printf("No path found between %s and %s\n", start, end)
			return nil
		}
		return err
	}

	switch format {
	case "json":
		out, err := export.JSON(p)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "sql":
		path, err := resolveOutputPath(output, eng.cfg.OutputDir, "sql", start+"_"+end)
		if err != nil {
			return err
		}
		sql := export.SQL([]*puzzle.Puzzle{p}, export.SQLConfig{BatchSize: batchSize, IncludeSchema: withSchema})
		if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
			return err
		}
		fmt.Printf("SQL puzzle exported to %s\n", path)
	default:
		fmt.Printf("Start: %s\n", p.Start)
		fmt.Printf("End: %s\n", p.Target)
		fmt.Printf("Path: %s\n", strings.Join(p.Path, " -> "))
		fmt.Printf("Steps: %d\n", p.MinSteps)
		fmt.Printf("Difficulty: %s\n", p.Difficulty)
	}
	return nil
}

// generateBulk fills every band and writes one file per band, or a single
// combined SQL script when the format is sql.
func generateBulk(ctx context.Context, eng *engine, format, output string, withSchema bool, batchSize int) error {
	if format == "sql" {
		var all []*puzzle.Puzzle
		for _, label := range eng.bands.Labels() {
			res, err := eng.gen.Batch(ctx, label, eng.cfg.BulkCount)
			if err != nil {
				return err
			}
			logShortfall(res, eng.cfg.BulkCount)
			all = append(all, res.Puzzles...)
		}
		path, err := resolveOutputPath(output, eng.cfg.OutputDir, "sql", "bulk_puzzles")
		if err != nil {
			return err
		}
		sql := export.SQL(all, export.SQLConfig{BatchSize: batchSize, IncludeSchema: withSchema})
		if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
			return err
		}
		fmt.Printf("Generated %d puzzles in SQL format to %s\n", len(all), path)
		return nil
	}

	for _, label := range eng.bands.Labels() {
		res, err := eng.gen.Batch(ctx, label, eng.cfg.BulkCount)
		if err != nil {
			return err
		}
		logShortfall(res, eng.cfg.BulkCount)

		var content string
		if format == "json" {
			if content, err = export.JSONBatch(res.Puzzles); err != nil {
				return err
			}
		} else {
			content = export.Text(res.Puzzles)
		}
		path, err := resolveOutputPath("", eng.cfg.OutputDir, formatExt(format), label)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
		fmt.Printf("Generated %d %s puzzles in %s\n", len(res.Puzzles), label, path)
	}
	return nil
}
