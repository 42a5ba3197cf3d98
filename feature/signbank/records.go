package signbank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary"
)

// Column names of the gloss export. The export is header-named with no
// guaranteed column order, so rows are mapped by header rather than index.
var glossColumns = []string{
	"id",
	"gloss_main",
	"gloss_secondary",
	"gloss_maori",
	"handshape",
	"location_name",
	"age_groups",
	"contains_numbers",
	"hint",
	"inflection_manner_and_degree",
	"inflection_plural",
	"inflection_temporal",
	"is_directional",
	"is_fingerspelling",
	"is_locatable",
	"one_or_two_handed",
	"related_to",
	"usage",
	"usage_notes",
	"word_classes",
	"semantic_field",
	"videoexample1",
	"videoexample1_translation",
	"videoexample2",
	"videoexample2_translation",
	"videoexample3",
	"videoexample3_translation",
	"videoexample4",
	"videoexample4_translation",
}

// Column names of the asset export.
var assetColumns = []string{
	"Gloss",
	"Video_type",
	"Title",
	"Videofile",
	"Version",
}

// header maps export column names to their positions and fails fast when a
// required column is missing, rather than deferring errors to point-of-use.
type header map[string]int

func newHeader(row []string, required []string) (header, error) {
	h := make(header, len(row))
	for i, name := range row {
		h[name] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := h[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("export is missing required columns: %s", strings.Join(missing, ", "))
	}
	return h, nil
}

// get returns the named column of row, or "" for a short row.
func (h header) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// ParseGlossExport reads the gloss CSV export into typed word records.
func ParseGlossExport(r io.Reader) ([]dictionary.WordInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headerRow, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read gloss export header: %w", err)
	}
	h, err := newHeader(headerRow, glossColumns)
	if err != nil {
		return nil, fmt.Errorf("gloss %w", err)
	}

	var words []dictionary.WordInput
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read gloss export row: %w", err)
		}

		word := dictionary.WordInput{
			ID:                        h.get(row, "id"),
			Gloss:                     h.get(row, "gloss_main"),
			Minor:                     h.get(row, "gloss_secondary"),
			Maori:                     h.get(row, "gloss_maori"),
			Handshape:                 h.get(row, "handshape"),
			LocationName:              h.get(row, "location_name"),
			AgeGroups:                 h.get(row, "age_groups"),
			ContainsNumbers:           h.get(row, "contains_numbers"),
			Hint:                      h.get(row, "hint"),
			InflectionMannerAndDegree: h.get(row, "inflection_manner_and_degree"),
			InflectionPlural:          h.get(row, "inflection_plural"),
			InflectionTemporal:        h.get(row, "inflection_temporal"),
			IsDirectional:             h.get(row, "is_directional"),
			IsFingerspelling:          h.get(row, "is_fingerspelling"),
			IsLocatable:               h.get(row, "is_locatable"),
			OneOrTwoHanded:            h.get(row, "one_or_two_handed"),
			RelatedTo:                 h.get(row, "related_to"),
			Usage:                     h.get(row, "usage"),
			UsageNotes:                h.get(row, "usage_notes"),
			WordClasses:               h.get(row, "word_classes"),
			SemanticField:             h.get(row, "semantic_field"),
		}
		for i := range word.Examples {
			column := fmt.Sprintf("videoexample%d", i+1)
			word.Examples[i] = dictionary.ExampleInput{
				Sentence:    h.get(row, column),
				Translation: h.get(row, column+"_translation"),
			}
		}
		words = append(words, word)
	}

	return words, nil
}

// ParseAssetExport reads the asset CSV export into typed asset records.
func ParseAssetExport(r io.Reader) ([]dictionary.AssetInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headerRow, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read asset export header: %w", err)
	}
	h, err := newHeader(headerRow, assetColumns)
	if err != nil {
		return nil, fmt.Errorf("asset %w", err)
	}

	var assets []dictionary.AssetInput
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read asset export row: %w", err)
		}

		assets = append(assets, dictionary.AssetInput{
			GlossKey:     h.get(row, "Gloss"),
			VideoType:    h.get(row, "Video_type"),
			Title:        h.get(row, "Title"),
			URL:          h.get(row, "Videofile"),
			DisplayOrder: h.get(row, "Version"),
		})
	}

	return assets, nil
}
