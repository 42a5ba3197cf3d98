package dictionary

import (
	"bytes"
	"testing"

	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDatFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.InsertWord(&models.Word{
		ID:        42,
		Gloss:     "Cat",
		Maori:     "Ngeru",
		Picture:   "cat_pic.png",
		Video:     "https://example.com/cat.mp4",
		Handshape: "1.1",
		Location:  "Wellington",
	})
	require.NoError(t, err)
	_, err = store.InsertWord(&models.Word{ID: 43, Gloss: "Dog"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDatFile(store, &buf))

	expected := "Cat\t\tNgeru\tcat_pic.png\thttps://example.com/cat.mp4\t1.1\tWellington\n" +
		"Dog\t\t\t\t\t\t\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteDatFileEmptyStore(t *testing.T) {
	store := newTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDatFile(store, &buf))
	assert.Empty(t, buf.String())
}
