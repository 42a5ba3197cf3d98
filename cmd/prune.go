package cmd

import (
	"fmt"

	"github.com/ODNZSL/nzsl-dictionary-scripts/core/config"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/database"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/logger"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pruneCmd removes asset ledger rows whose word no longer exists.
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete asset rows that reference missing words",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		deleted, err := dictionary.NewStore(db).PruneVideos()
		if err != nil {
			return err
		}

		l.Info("pruned dangling asset rows",
			zap.String("path", cfg.Database.Path),
			zap.Int64("deleted", deleted),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pruneCmd)
}
