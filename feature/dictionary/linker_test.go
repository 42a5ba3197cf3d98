package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.body, f.err
}

func linkerStoreWithWord(t *testing.T, id int64) *Store {
	t.Helper()
	store := newTestStore(t)
	_, err := store.InsertWord(&models.Word{ID: id, Gloss: "Cat"})
	require.NoError(t, err)
	return store
}

func TestLinkerAssignsMainPicture(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	linker := NewLinker(store, zap.NewNop())

	summary, err := linker.Run(context.Background(), []AssetInput{{
		GlossKey:     "CAT:main:42",
		VideoType:    "main",
		Title:        "Cat-Pic.PNG",
		URL:          "https://example.com/Cat-Pic.PNG",
		DisplayOrder: "1",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Linked)

	words, err := store.Words()
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "cat_pic.png", words[0].Picture)

	var ledger []models.Video
	require.NoError(t, store.db.Find(&ledger).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, "cat_pic.png", ledger[0].Filename)
}

func TestLinkerAssignsMainVideo(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	linker := NewLinker(store, zap.NewNop())

	_, err := linker.Run(context.Background(), []AssetInput{{
		GlossKey:  "CAT:main:42",
		VideoType: "main",
		Title:     "cat.mp4",
		URL:       "https://example.com/cat.mp4",
	}})
	require.NoError(t, err)

	words, err := store.Words()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cat.mp4", words[0].Video)
	assert.Empty(t, words[0].Picture)
}

func TestLinkerSkipsMalformedKey(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	linker := NewLinker(store, zap.NewNop())

	summary, err := linker.Run(context.Background(), []AssetInput{{
		GlossKey:  "CAT",
		VideoType: "main",
		Title:     "cat.png",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Linked)

	// No database mutation of any kind.
	words, err := store.Words()
	require.NoError(t, err)
	assert.Empty(t, words[0].Picture)

	var ledger []models.Video
	require.NoError(t, store.db.Find(&ledger).Error)
	assert.Empty(t, ledger)
}

func TestLinkerSkipsUnparseableID(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	linker := NewLinker(store, zap.NewNop())

	summary, err := linker.Run(context.Background(), []AssetInput{{
		GlossKey:  "CAT:main:notanumber",
		VideoType: "main",
		Title:     "cat.png",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
}

func TestLinkerBackfillsExampleVideo(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	_, err := store.InsertExample(&models.Example{WordID: 42, DisplayOrder: 2, Sentence: "sign a cat"})
	require.NoError(t, err)

	linker := NewLinker(store, zap.NewNop())
	_, err = linker.Run(context.Background(), []AssetInput{{
		GlossKey:  "CAT:finalexample2:42",
		VideoType: "finalexample2",
		Title:     "cat_ex2.mp4",
		URL:       "https://example.com/cat_ex2.mp4",
	}})
	require.NoError(t, err)

	var ex models.Example
	require.NoError(t, store.db.Where("word_id = ? AND display_order = ?", 42, 2).First(&ex).Error)
	assert.Equal(t, "https://example.com/cat_ex2.mp4", ex.Video)
}

func TestLinkerFinalExampleOutOfRange(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	_, err := store.InsertExample(&models.Example{WordID: 42, DisplayOrder: 1, Sentence: "sign a cat"})
	require.NoError(t, err)

	linker := NewLinker(store, zap.NewNop())
	summary, err := linker.Run(context.Background(), []AssetInput{{
		GlossKey:  "CAT:finalexample5:42",
		VideoType: "finalexample5",
		Title:     "cat_ex5.mp4",
		URL:       "https://example.com/cat_ex5.mp4",
	}})
	require.NoError(t, err)

	// Falls through to the generic ledger insert only.
	assert.Equal(t, 1, summary.Linked)

	var examples []models.Example
	require.NoError(t, store.db.Find(&examples).Error)
	for _, ex := range examples {
		assert.Empty(t, ex.Video)
	}

	var ledger []models.Video
	require.NoError(t, store.db.Find(&ledger).Error)
	assert.Len(t, ledger, 1)
}

func TestLinkerSkipsWebm(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	linker := NewLinker(store, zap.NewNop())

	summary, err := linker.Run(context.Background(), []AssetInput{{
		GlossKey:  "CAT:main:42",
		VideoType: "main",
		Title:     "cat.webm",
		URL:       "https://example.com/cat.webm",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)

	var ledger []models.Video
	require.NoError(t, store.db.Find(&ledger).Error)
	assert.Empty(t, ledger)
}

func TestLinkerDownloadsMissingImages(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	dir := t.TempDir()

	// Already-present image: no fetch for it.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "present.png"), []byte("png"), 0o644))

	fetcher := &stubFetcher{body: []byte("image-bytes")}
	linker := NewLinker(store, zap.NewNop()).WithDownloads(fetcher, dir)

	summary, err := linker.Run(context.Background(), []AssetInput{
		{GlossKey: "CAT:main:42", VideoType: "main", Title: "present.png", URL: "https://example.com/present.png"},
		{GlossKey: "CAT:variant:42", VideoType: "variant", Title: "Cat-New.PNG", URL: "https://example.com/Cat-New.PNG"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Downloaded)
	assert.Equal(t, []string{"https://example.com/Cat-New.PNG"}, fetcher.urls)

	body, err := os.ReadFile(filepath.Join(dir, "cat_new.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), body)
}

func TestLinkerDownloadFailureAbortsRun(t *testing.T) {
	store := linkerStoreWithWord(t, 42)
	fetcher := &stubFetcher{err: assert.AnError}
	linker := NewLinker(store, zap.NewNop()).WithDownloads(fetcher, t.TempDir())

	_, err := linker.Run(context.Background(), []AssetInput{{
		GlossKey:  "CAT:main:42",
		VideoType: "main",
		Title:     "cat.png",
		URL:       "https://example.com/cat.png",
	}})
	assert.Error(t, err)
}
