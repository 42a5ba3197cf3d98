package dictionary

import (
	"go.uber.org/zap"
)

// ImportSummary reports what one word-import pass did.
type ImportSummary struct {
	Created   int
	Skipped   int
	Partial   int
	Malformed int
}

// Importer drives the per-record transform + insert pass over a word export.
type Importer struct {
	store *Store
	log   *zap.Logger
}

// NewImporter creates an importer writing into store.
func NewImporter(store *Store, log *zap.Logger) *Importer {
	return &Importer{store: store, log: log}
}

// Run consumes the full sequence of raw word records from one export.
// A malformed record is reported and skipped; only store errors abort the
// run. Example and topic sub-inserts are attempted even when the word row
// already existed, so children self-heal after an interrupted run.
func (im *Importer) Run(inputs []WordInput) (ImportSummary, error) {
	var summary ImportSummary

	for _, in := range inputs {
		rec, err := Transform(in)
		if err != nil {
			summary.Malformed++
			im.log.Warn("skipping malformed word record",
				zap.String("gloss", in.Gloss),
				zap.Error(err),
			)
			continue
		}

		created, err := im.store.InsertWord(&rec.Word)
		if err != nil {
			return summary, err
		}

		childCreated := false
		for i := range rec.Examples {
			ok, err := im.store.InsertExample(&rec.Examples[i])
			if err != nil {
				return summary, err
			}
			childCreated = childCreated || ok
		}
		for _, topic := range rec.Topics {
			ok, err := im.store.InsertTopic(rec.Word.ID, topic)
			if err != nil {
				return summary, err
			}
			childCreated = childCreated || ok
		}

		outcome := "skipped"
		switch {
		case created:
			outcome = "created"
			summary.Created++
		case childCreated:
			// Word existed but some children were missing; a previous run
			// was likely interrupted between the word and its children.
			outcome = "partial"
			summary.Partial++
		default:
			summary.Skipped++
		}

		im.log.Info("imported word",
			zap.String("gloss", in.Gloss),
			zap.Int64("id", rec.Word.ID),
			zap.String("outcome", outcome),
		)
	}

	return summary, nil
}
