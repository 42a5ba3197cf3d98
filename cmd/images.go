package cmd

import (
	"fmt"

	"github.com/ODNZSL/nzsl-dictionary-scripts/core/config"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/logger"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/images"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// imagesCmd runs the distribution image pass over an existing folder.
var imagesCmd = &cobra.Command{
	Use:   "images [folder]",
	Short: "Shave, thumbnail and compress a folder of images",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		folder := cfg.Build.PicturesFolder
		if len(args) > 0 {
			folder = args[0]
		}

		l.Info("preparing images for distribution", zap.String("folder", folder))
		return images.NewProcessor(cfg.Images, l).ProcessFolder(folder)
	},
}

func init() {
	RootCmd.AddCommand(imagesCmd)
}
