// internal/cli/serve.go
//
// `serve` runs the read-only puzzle delivery API. Puzzles come either from
// a SQLite database produced by `mobile --format db`, or, when no database
// is given, from a fresh in-memory bulk generation at startup.

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordladder/internal/config"
	"github.com/robalobadob/wordladder/internal/httpserver"
	"github.com/robalobadob/wordladder/internal/puzzledb"
	"github.com/robalobadob/wordladder/internal/store"
)

func serveCmd(cfg *config.Config) *cobra.Command {
	var (
		dbPath string
		port   string
		count  int
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve puzzles over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := buildEngine(*cfg)
			if err != nil {
				return err
			}

			var st store.Store
			if dbPath != "" {
				db, err := puzzledb.Open(dbPath)
				if err != nil {
					return err
				}
				defer db.Close()
				st = db.Store()
				log.Info().Str("db", dbPath).Msg("serving from database")
			} else {
				st = store.NewMemory()
				for _, label := range eng.bands.Labels() {
					res, err := eng.gen.Batch(cmd.Context(), label, count)
					if err != nil {
						return err
					}
					logShortfall(res, count)
					if err := st.Put(cmd.Context(), res.Puzzles); err != nil {
						return err
					}
				}
				counts, _ := st.Counts(cmd.Context())
				log.Info().Interface("counts", counts).Msg("serving from in-memory generation")
			}

			if port == "" {
				port = eng.cfg.Port
			}
			srv := httpserver.New(st, eng.graph, eng.bands, eng.cfg.DailySalt)
			return srv.Start(":" + port)
		},
	}

	c.Flags().StringVar(&dbPath, "db", "", "SQLite puzzle database to serve from")
	c.Flags().StringVar(&port, "port", "", "listen port (defaults to PORT env or 5175)")
	c.Flags().IntVarP(&count, "count", "c", 25, "puzzles per difficulty for in-memory serving")
	return c
}
