package cmd

import (
	"context"
	"fmt"

	"github.com/ODNZSL/nzsl-dictionary-scripts/core/config"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/logger"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/storage"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd uploads the build artifacts to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the build artifacts to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage client: %w", err)
		}

		publisher := bundle.NewPublisher(client, cfg.Storage.Bucket, l)
		uploaded, err := publisher.Publish(context.Background(),
			cfg.Build.DatFile, cfg.Database.Path, cfg.Build.PicturesFolder)
		if err != nil {
			return err
		}

		l.Info("publish complete",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.Int("uploaded", uploaded),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
