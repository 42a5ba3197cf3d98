package dictionary

import (
	"testing"

	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleInputs() []WordInput {
	cat := WordInput{
		ID:            "42",
		Gloss:         "Cat",
		Maori:         "Ngeru",
		LocationName:  "07 - Wellington",
		SemanticField: "Animals; Nature",
	}
	cat.Examples[0] = ExampleInput{Sentence: "sign a cat", Translation: "a cat sign"}

	dog := WordInput{
		ID:            "43",
		Gloss:         "Dog",
		SemanticField: "Animals",
	}

	return []WordInput{cat, dog}
}

func TestImporterRun(t *testing.T) {
	store := newTestStore(t)
	im := NewImporter(store, zap.NewNop())

	summary, err := im.Run(sampleInputs())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Malformed)

	var examples []models.Example
	require.NoError(t, store.db.Find(&examples).Error)
	assert.Len(t, examples, 1)

	var topics []models.Topic
	require.NoError(t, store.db.Find(&topics).Error)
	assert.Len(t, topics, 2)

	var joins []models.WordTopic
	require.NoError(t, store.db.Find(&joins).Error)
	assert.Len(t, joins, 3)
}

func TestImporterIdempotent(t *testing.T) {
	store := newTestStore(t)
	im := NewImporter(store, zap.NewNop())

	_, err := im.Run(sampleInputs())
	require.NoError(t, err)

	summary, err := im.Run(sampleInputs())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 2, summary.Skipped)

	count, err := store.CountWords()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var examples []models.Example
	require.NoError(t, store.db.Find(&examples).Error)
	assert.Len(t, examples, 1)

	var joins []models.WordTopic
	require.NoError(t, store.db.Find(&joins).Error)
	assert.Len(t, joins, 3)
}

func TestImporterSelfHealsChildren(t *testing.T) {
	store := newTestStore(t)
	im := NewImporter(store, zap.NewNop())

	// Simulate a run interrupted after the word insert but before its
	// children were written.
	_, err := store.InsertWord(&models.Word{ID: 42, Gloss: "Cat"})
	require.NoError(t, err)

	summary, err := im.Run(sampleInputs())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Partial)

	var examples []models.Example
	require.NoError(t, store.db.Find(&examples).Error)
	assert.Len(t, examples, 1)
}

func TestImporterReportsMalformedAndContinues(t *testing.T) {
	store := newTestStore(t)
	im := NewImporter(store, zap.NewNop())

	inputs := append([]WordInput{{ID: "bogus", Gloss: "Broken"}}, sampleInputs()...)

	summary, err := im.Run(inputs)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Malformed)
	assert.Equal(t, 2, summary.Created)
}
