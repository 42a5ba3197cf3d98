package images

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"go.uber.org/zap"
)

// Processor runs the distribution image pass over an assets folder: a 1px
// shave (some source images carry a border that looks bad in search
// results), search thumbnails, a size bound, palette reduction, and a
// best-compression PNG re-encode to keep the app bundle small.
type Processor struct {
	cfg Config
	log *zap.Logger
}

// NewProcessor creates an image processor.
func NewProcessor(cfg Config, log *zap.Logger) *Processor {
	if cfg.ThumbnailHeight <= 0 {
		cfg.ThumbnailHeight = 92
	}
	if cfg.ThumbnailPrefix == "" {
		cfg.ThumbnailPrefix = "50."
	}
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = 600
	}
	if cfg.PaletteSize <= 0 {
		cfg.PaletteSize = 4
	}
	return &Processor{cfg: cfg, log: log}
}

// ProcessFolder processes every png in dir in two passes: first shave +
// thumbnail per source image, then shrink + palette-reduce + re-encode
// everything, thumbnails included.
func (p *Processor) ProcessFolder(dir string) error {
	names, err := listPNGs(dir)
	if err != nil {
		return err
	}

	for _, name := range names {
		if strings.HasPrefix(name, p.cfg.ThumbnailPrefix) {
			// Re-run over a processed folder; don't thumbnail thumbnails.
			continue
		}
		if err := p.shaveAndThumbnail(dir, name); err != nil {
			return fmt.Errorf("failed to thumbnail %s: %w", name, err)
		}
	}

	// Rescan so newly created thumbnails get the compression pass too.
	names, err = listPNGs(dir)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := p.compress(dir, name); err != nil {
			return fmt.Errorf("failed to compress %s: %w", name, err)
		}
		p.log.Debug("processed image", zap.String("filename", name))
	}

	p.log.Info("image pass complete", zap.Int("images", len(names)), zap.String("folder", dir))
	return nil
}

// shaveAndThumbnail trims a 1px border off the image in place and writes the
// search thumbnail alongside it.
func (p *Processor) shaveAndThumbnail(dir, name string) error {
	path := filepath.Join(dir, name)
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if b.Dx() > 2 && b.Dy() > 2 {
		img = imaging.Crop(img, image.Rect(b.Min.X+1, b.Min.Y+1, b.Max.X-1, b.Max.Y-1))
	}
	if err := imaging.Save(img, path); err != nil {
		return err
	}

	thumb := imaging.Resize(img, 0, p.cfg.ThumbnailHeight, imaging.Lanczos)
	return imaging.Save(thumb, filepath.Join(dir, p.cfg.ThumbnailPrefix+name))
}

// compress bounds the image dimensions, reduces it to the configured
// palette, and re-encodes with best compression.
func (p *Processor) compress(dir, name string) error {
	path := filepath.Join(dir, name)
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if b.Dx() > p.cfg.MaxDimension || b.Dy() > p.cfg.MaxDimension {
		img = imaging.Fit(img, p.cfg.MaxDimension, p.cfg.MaxDimension, imaging.Lanczos)
	}

	quantizer := quantize.MedianCutQuantizer{}
	palette := quantizer.Quantize(make([]color.Color, 0, p.cfg.PaletteSize), img)
	paletted := image.NewPaletted(img.Bounds(), palette)
	draw.Draw(paletted, img.Bounds(), img, img.Bounds().Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(f, paletted); err != nil {
		return err
	}
	return f.Close()
}

// CopyImages replaces dst with a fresh folder containing every png from src.
func CopyImages(src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("failed to clear pictures folder: %w", err)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("failed to create pictures folder: %w", err)
	}

	names, err := listPNGs(src)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := copyFile(filepath.Join(src, name), filepath.Join(dst, name)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", name, err)
		}
	}
	return nil
}

func listPNGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
