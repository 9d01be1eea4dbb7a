// internal/cli/exportdict.go
//
// `export-dict` renders the normalized dictionary as a SQL script or SQLite
// database. Pure list transformation; the word graph is never built.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordladder/internal/config"
	"github.com/robalobadob/wordladder/internal/export"
	"github.com/robalobadob/wordladder/internal/puzzledb"
	"github.com/robalobadob/wordladder/internal/words"
)

func exportDictCmd(cfg *config.Config) *cobra.Command {
	var (
		output     string
		format     string
		withSchema bool
		batchSize  int
	)

	c := &cobra.Command{
		Use:   "export-dict",
		Short: "Export the dictionary table for mobile lookups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lists, err := words.Load(cfg.DictionaryPath, cfg.BaseWordsPath)
			if err != nil {
				return err
			}

			path, err := resolveOutputPath(output, cfg.OutputDir, formatExt(format), "dictionary")
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
				if err := db.InsertDictionary(cmd.Context(), lists.Dictionary); err != nil {
					return err
				}
			default:
				sql := export.DictionarySQL(lists.Dictionary, export.SQLConfig{BatchSize: batchSize, IncludeSchema: withSchema})
				if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
					return err
				}
			}

			fmt.Printf("Exported %d dictionary words to %s\n", lists.Dictionary.Len(), path)
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "output file (defaults under the output dir)")
	c.Flags().StringVarP(&format, "format", "f", "sql", "output format: sql (script) or db (SQLite file)")
	c.Flags().BoolVar(&withSchema, "include-schema", true, "include CREATE TABLE schema in SQL output")
	c.Flags().IntVar(&batchSize, "batch-size", 100, "rows per SQL INSERT statement")
	return c
}
