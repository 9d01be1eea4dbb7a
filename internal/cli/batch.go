// internal/cli/batch.go
//
// `batch` generates N puzzles of one difficulty and writes them to a file
// in text, JSON, or SQL form. A shortfall (budget exhausted before N) is
// reported, not fatal.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordladder/internal/config"
	"github.com/robalobadob/wordladder/internal/export"
)

func batchCmd(cfg *config.Config) *cobra.Command {
	var (
		count      int
		difficulty string
		format     string
		output     string
		withSchema bool
		batchSize  int
	)

	c := &cobra.Command{
		Use:   "batch",
		Short: "Generate multiple puzzles of one difficulty to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := buildEngine(*cfg)
			if err != nil {
				return err
			}

			res, err := eng.gen.Batch(cmd.Context(), difficulty, count)
			if err != nil {
				return err
			}
			logShortfall(res, count)

			path, err := resolveOutputPath(output, eng.cfg.OutputDir, formatExt(format), "batch_"+difficulty)
			if err != nil {
				return err
			}

			var content string
			switch format {
			case "sql":
				content = export.SQL(res.Puzzles, export.SQLConfig{BatchSize: batchSize, IncludeSchema: withSchema})
			case "json":
				if content, err = export.JSONBatch(res.Puzzles); err != nil {
					return err
				}
			default:
				content = export.Text(res.Puzzles)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
			fmt.Printf("Generated %d %s puzzles and saved to %s\n", len(res.Puzzles), difficulty, path)
			return nil
		},
	}

	c.Flags().IntVarP(&count, "count", "c", 10, "number of puzzles to generate")
	c.Flags().StringVar(&difficulty, "difficulty", "medium", "difficulty band label")
	c.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, or sql")
	c.Flags().StringVarP(&output, "output", "o", "", "output file (defaults under the output dir)")
	c.Flags().BoolVar(&withSchema, "include-schema", true, "include CREATE TABLE schema in SQL output")
	c.Flags().IntVar(&batchSize, "batch-size", 100, "rows per SQL INSERT statement")
	return c
}
