package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/ODNZSL/nzsl-dictionary-scripts/core/config"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/database"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/fetch"
	"github.com/ODNZSL/nzsl-dictionary-scripts/core/logger"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/freelex"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/images"
	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/signbank"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanupAfterBuild bool

// buildCmd is the parent command for the full pipeline runs.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full build pipeline from a content source",
	Long: `Fetches the dataset from a content source, reconciles it into the
SQLite store, downloads and processes images, and writes the nzsl.dat and
nzsl.db distribution artifacts.`,
}

// signbankBuildCmd builds from the Signbank CSV-export webapp.
var signbankBuildCmd = &cobra.Command{
	Use:   "signbank",
	Short: "Build from the Signbank CSV exports",
	RunE:  runSignbankBuild,
}

// freelexBuildCmd builds from the legacy Freelex XML dump.
var freelexBuildCmd = &cobra.Command{
	Use:   "freelex",
	Short: "Build from the legacy Freelex XML dump",
	RunE:  runFreelexBuild,
}

func init() {
	buildCmd.PersistentFlags().BoolVarP(&cleanupAfterBuild, "cleanup", "c", false,
		"Clean up exports, artifacts and folders after execution")
	buildCmd.AddCommand(signbankBuildCmd, freelexBuildCmd)
	RootCmd.AddCommand(buildCmd)
}

// buildEnv is the shared wiring every pipeline run needs.
type buildEnv struct {
	cfg     *config.Config
	log     *zap.Logger
	fetcher *fetch.Client
}

func newBuildEnv() (*buildEnv, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = l.With(zap.String("run_id", uuid.NewString()))

	return &buildEnv{
		cfg:     cfg,
		log:     l,
		fetcher: fetch.NewClient(cfg.Fetch, l),
	}, nil
}

func runSignbankBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := newBuildEnv()
	if err != nil {
		return err
	}
	cfg, l := env.cfg, env.log

	sb, err := signbank.NewClient(cfg.Signbank, l)
	if err != nil {
		return err
	}

	l.Info("Step 1: fetching the latest signs from Signbank")
	glossExport, err := sb.FetchGlossExport(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch gloss export: %w", err)
	}
	if err := os.WriteFile(cfg.Build.GlossExportFile, glossExport, 0o644); err != nil {
		return err
	}
	words, err := signbank.ParseGlossExport(bytes.NewReader(glossExport))
	if err != nil {
		return err
	}

	store, err := importWords(env, words)
	if err != nil {
		return err
	}

	l.Info("Step 3: fetching assets from Signbank")
	assetExport, err := sb.FetchAssetExport(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch asset export: %w", err)
	}
	if err := os.WriteFile(cfg.Build.AssetExportFile, assetExport, 0o644); err != nil {
		return err
	}
	assets, err := signbank.ParseAssetExport(bytes.NewReader(assetExport))
	if err != nil {
		return err
	}

	if err := linkAssets(ctx, env, store, assets); err != nil {
		return err
	}

	return finishBuild(env, store)
}

func runFreelexBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := newBuildEnv()
	if err != nil {
		return err
	}
	cfg, l := env.cfg, env.log

	fl := freelex.NewClient(cfg.Freelex, env.fetcher)

	l.Info("Step 1: fetching the latest signs from Freelex")
	dump, err := fl.FetchDump(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch freelex dump: %w", err)
	}
	if err := os.WriteFile(cfg.Build.DumpFile, dump, 0o644); err != nil {
		return err
	}

	export, err := fl.ParseDump(dump)
	if err != nil {
		return err
	}

	store, err := importWords(env, export.Words)
	if err != nil {
		return err
	}

	if err := linkAssets(ctx, env, store, export.Assets); err != nil {
		return err
	}

	return finishBuild(env, store)
}

// importWords recreates the store and runs the word-import pass.
func importWords(env *buildEnv, words []dictionary.WordInput) (*dictionary.Store, error) {
	env.log.Info("Step 2: writing the dictionary store", zap.String("path", env.cfg.Database.Path))

	db, err := database.Recreate(env.cfg.Database)
	if err != nil {
		return nil, err
	}

	store := dictionary.NewStore(db)
	if err := store.EnsureSchema(); err != nil {
		return nil, err
	}

	summary, err := dictionary.NewImporter(store, env.log).Run(words)
	if err != nil {
		return nil, fmt.Errorf("word import failed: %w", err)
	}
	env.log.Info("word import complete",
		zap.Int("created", summary.Created),
		zap.Int("skipped", summary.Skipped),
		zap.Int("partial", summary.Partial),
		zap.Int("malformed", summary.Malformed),
	)
	return store, nil
}

// linkAssets runs the asset-linking pass, then prunes dangling ledger rows.
func linkAssets(ctx context.Context, env *buildEnv, store *dictionary.Store, assets []dictionary.AssetInput) error {
	linker := dictionary.NewLinker(store, env.log)
	if env.cfg.Build.DownloadAssets {
		linker = linker.WithDownloads(env.fetcher, env.cfg.Build.AssetsFolder)
	}

	summary, err := linker.Run(ctx, assets)
	if err != nil {
		return fmt.Errorf("asset linking failed: %w", err)
	}
	env.log.Info("asset linking complete",
		zap.Int("linked", summary.Linked),
		zap.Int("skipped", summary.Skipped),
		zap.Int("downloaded", summary.Downloaded),
	)

	deleted, err := store.PruneVideos()
	if err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}
	env.log.Info("pruned dangling asset rows", zap.Int64("deleted", deleted))
	return nil
}

// finishBuild writes the flat file and runs the image pass.
func finishBuild(env *buildEnv, store *dictionary.Store) error {
	cfg, l := env.cfg, env.log

	l.Info("Step 4: writing the flat file", zap.String("path", cfg.Build.DatFile))
	if err := dictionary.WriteDatFileTo(store, cfg.Build.DatFile); err != nil {
		return err
	}

	l.Info("Step 5: merging images into one folder")
	if err := images.CopyImages(cfg.Build.AssetsFolder, cfg.Build.PicturesFolder); err != nil {
		return err
	}

	l.Info("Step 6: preparing images for distribution")
	if err := images.NewProcessor(cfg.Images, l).ProcessFolder(cfg.Build.PicturesFolder); err != nil {
		return err
	}

	if cleanupAfterBuild {
		l.Info("Step 7: cleanup")
		if err := cleanupBuild(cfg); err != nil {
			return err
		}
	} else {
		l.Info("Skipping cleanup (pass --cleanup to enable it)")
	}

	l.Info("Done")
	return nil
}

func cleanupBuild(cfg *config.Config) error {
	files := []string{
		cfg.Build.GlossExportFile,
		cfg.Build.AssetExportFile,
		cfg.Build.DumpFile,
		cfg.Build.DatFile,
		cfg.Database.Path,
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	for _, dir := range []string{cfg.Build.AssetsFolder, cfg.Build.PicturesFolder} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return nil
}
