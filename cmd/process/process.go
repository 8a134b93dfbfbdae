// Package process runs the full ingestion pipeline.
package process

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Hemanth4041/statement-loader/cmd/root"
	"github.com/Hemanth4041/statement-loader/internal/pipeline"
	"github.com/Hemanth4041/statement-loader/internal/store"
)

// Cmd represents the process command.
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Run the ingestion pipeline",
	Long: `Process statement files end to end: parse, validate, encrypt and load
them into the warehouse, then move each file to the archive or error
directory. With --input a single file is processed; otherwise the whole
pending directory is drained.`,
	Run: processFunc,
}

func buildPipeline(s *store.SQLiteStore) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Identity:     root.Identity(),
		Mapping:      root.Mapping(),
		ParseOptions: root.ParseOptions(),
		Schema:       root.Schema(),
		Encryptor:    root.Encryptor(),
		Tracker:      s,
		Loader:       s,
	}
}

func processFunc(cmd *cobra.Command, args []string) {
	s, err := store.Open(root.Cfg.Database.Path)
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			root.Log.Warnf("Error closing database: %v", err)
		}
	}()

	p := buildPipeline(s)
	ctx := context.Background()
	dirs := pipeline.Directories{
		Pending: root.Cfg.Directories.Pending,
		Archive: root.Cfg.Directories.Archive,
		Error:   root.Cfg.Directories.Error,
	}

	var results []pipeline.Result
	if root.SharedFlags.Input != "" {
		results = append(results, p.ProcessFile(ctx, root.SharedFlags.Input, dirs))
	} else {
		results, err = p.ProcessPending(ctx, dirs)
		if err != nil {
			root.Log.Fatalf("Error processing pending directory: %v", err)
		}
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			root.Log.Errorf("%s: %v (moved to %s)", result.Filename, result.Err, result.MovedTo)
			continue
		}
		root.Log.Infof("%s: loaded %d balances and %d transactions (run %s)",
			result.Filename, result.Balances, result.Transactions, result.RunID)
	}

	if failed > 0 {
		root.Log.Fatalf("%d of %d files failed", failed, len(results))
	}
	root.Log.Infof("Processed %d files successfully", len(results))
}
