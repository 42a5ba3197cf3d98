package dictionary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary/models"

	"go.uber.org/zap"
)

// finalExamplePattern matches the numbered example video types. The single
// trailing digit is a known scaling limit: the export only ever carries four
// numbered examples per word.
var finalExamplePattern = regexp.MustCompile(`^finalexample([1-4])$`)

// AssetInput is one raw record from the asset export. GlossKey is the
// composite "<text>:<type>:<id>" key; DisplayOrder is the source's version
// counter, kept verbatim.
type AssetInput struct {
	GlossKey     string
	VideoType    string
	Title        string
	URL          string
	DisplayOrder string
}

// Fetcher retrieves asset bytes by URL. Implementations are expected to
// retry transient failures internally and return a terminal error once the
// attempt budget is exhausted.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// LinkSummary reports what one asset-linking pass did.
type LinkSummary struct {
	Linked     int
	Skipped    int
	Downloaded int
}

// Linker associates asset export records with their owning words and appends
// them to the videos ledger. When a fetcher and assets directory are
// configured it also downloads image assets that are not yet present
// locally; the download is independent of the database updates.
type Linker struct {
	store     *Store
	log       *zap.Logger
	fetcher   Fetcher
	assetsDir string
}

// NewLinker creates a linker that only updates the store.
func NewLinker(store *Store, log *zap.Logger) *Linker {
	return &Linker{store: store, log: log}
}

// WithDownloads enables image downloads into dir using f.
func (l *Linker) WithDownloads(f Fetcher, dir string) *Linker {
	l.fetcher = f
	l.assetsDir = dir
	return l
}

// Run consumes the full asset export sequence. Records with malformed keys
// are reported and skipped; a failed download after retries aborts the run,
// since a database that references an asset we do not have is worse than a
// failed build.
func (l *Linker) Run(ctx context.Context, assets []AssetInput) (LinkSummary, error) {
	var summary LinkSummary

	if l.assetsDir != "" {
		if err := os.MkdirAll(l.assetsDir, 0o755); err != nil {
			return summary, fmt.Errorf("failed to create assets folder: %w", err)
		}
	}

	for _, asset := range assets {
		log := l.log.With(
			zap.String("gloss", asset.GlossKey),
			zap.String("video_type", asset.VideoType),
		)

		wordID, err := parseGlossKey(asset.GlossKey)
		if err != nil {
			summary.Skipped++
			log.Warn("skipping asset record", zap.Error(err))
			continue
		}

		basename := NormalizeFilename(asset.Title)
		if strings.HasSuffix(basename, ".webm") {
			summary.Skipped++
			log.Info("skipping webm video", zap.String("filename", basename))
			continue
		}

		downloaded, err := l.maybeDownload(ctx, basename, asset.URL)
		if err != nil {
			return summary, err
		}
		if downloaded {
			summary.Downloaded++
		}

		if asset.VideoType == "main" && strings.HasSuffix(basename, ".png") {
			if err := l.store.SetPicture(wordID, basename); err != nil {
				return summary, err
			}
			log.Info("assigned main picture", zap.String("filename", basename))
		}

		if asset.VideoType == "main" && strings.HasSuffix(basename, ".mp4") {
			if err := l.store.SetVideo(wordID, asset.URL); err != nil {
				return summary, err
			}
			log.Info("assigned main video", zap.String("url", asset.URL))
		}

		if m := finalExamplePattern.FindStringSubmatch(asset.VideoType); m != nil {
			displayOrder, _ := strconv.Atoi(m[1])
			if err := l.store.SetExampleVideo(wordID, displayOrder, asset.URL); err != nil {
				return summary, err
			}
			log.Info("assigned example video", zap.Int("display_order", displayOrder))
		}

		if _, err := l.store.InsertVideo(&models.Video{
			WordID:       wordID,
			VideoType:    asset.VideoType,
			Filename:     basename,
			URL:          asset.URL,
			DisplayOrder: asset.DisplayOrder,
		}); err != nil {
			return summary, err
		}
		summary.Linked++
	}

	return summary, nil
}

// maybeDownload fetches a png asset into the assets folder unless downloads
// are disabled or the file is already present.
func (l *Linker) maybeDownload(ctx context.Context, basename, url string) (bool, error) {
	if l.fetcher == nil || l.assetsDir == "" || !strings.HasSuffix(basename, ".png") {
		return false, nil
	}

	path := filepath.Join(l.assetsDir, basename)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	body, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return false, fmt.Errorf("failed to download asset %s: %w", basename, err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return false, fmt.Errorf("failed to write asset %s: %w", basename, err)
	}
	return true, nil
}

// parseGlossKey extracts the numeric word id from a composite
// "<text>:<type>:<id>" key.
func parseGlossKey(key string) (int64, error) {
	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return 0, errors.New("malformed gloss key: couldn't extract gloss ID")
	}
	id, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed gloss key: unparseable gloss ID %q", parts[len(parts)-1])
	}
	return id, nil
}
