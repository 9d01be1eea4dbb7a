// internal/cli/root.go
//
// Command-line surface of the ladder engine.
//
// Commands:
//   generate    - single pair or bulk per-difficulty generation
//   batch       - N puzzles of one difficulty to a file
//   mobile      - balanced distribution across difficulties, SQL/SQLite out
//   export-dict - dictionary table export, no path search involved
//   verify      - check a comma-separated ladder
//   serve       - read-only HTTP puzzle delivery

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordladder/internal/config"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.FromEnv()

	cmd := &cobra.Command{
		Use:          "wordladder",
		Short:        "Generate, verify, and serve word ladder puzzles",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&cfg.DictionaryPath, "dict", "d", cfg.DictionaryPath,
		"dictionary file, one word per line (embedded defaults when empty)")
	cmd.PersistentFlags().StringVarP(&cfg.BaseWordsPath, "base-words", "b", cfg.BaseWordsPath,
		"curated endpoint word file (dictionary doubles as base when empty)")
	cmd.PersistentFlags().StringVar(&cfg.BandsFile, "bands", cfg.BandsFile,
		"difficulty band YAML file (built-in easy/medium/hard when empty)")
	cmd.PersistentFlags().StringVarP(&cfg.OutputDir, "output-dir", "O", cfg.OutputDir,
		"directory for generated files")
	cmd.PersistentFlags().IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts,
		"sampling attempts allowed per requested puzzle")

	cmd.AddCommand(
		generateCmd(&cfg),
		batchCmd(&cfg),
		mobileCmd(&cfg),
		exportDictCmd(&cfg),
		verifyCmd(&cfg),
		serveCmd(&cfg),
	)
	return cmd
}
