package dictionary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary/models"
)

// maxExamples is the number of numbered videoexample columns in the export.
const maxExamples = 4

// targetSeparator joins the normalized gloss fields into the composite
// search target column.
const targetSeparator = "|"

// locationCode matches the two-digit prefix Signbank puts on location names,
// e.g. "07 - Wellington".
var locationCode = regexp.MustCompile(`^\d{2} - `)

// ExampleInput is one numbered sentence/translation pair from the export.
type ExampleInput struct {
	Sentence    string
	Translation string
}

// WordInput is one raw word record from an export, already keyed by field
// rather than by header name. Boolean columns keep their source tokens;
// coercion happens during Transform.
type WordInput struct {
	ID                        string
	Gloss                     string
	Minor                     string
	Maori                     string
	Handshape                 string
	LocationName              string
	AgeGroups                 string
	ContainsNumbers           string
	Hint                      string
	InflectionMannerAndDegree string
	InflectionPlural          string
	InflectionTemporal        string
	IsDirectional             string
	IsFingerspelling          string
	IsLocatable               string
	OneOrTwoHanded            string
	RelatedTo                 string
	Usage                     string
	UsageNotes                string
	WordClasses               string
	SemanticField             string
	Examples                  [maxExamples]ExampleInput
}

// Record is a fully shaped word ready for storage: the word row, its example
// rows, and the topic names it should be associated with.
type Record struct {
	Word     models.Word
	Examples []models.Example
	Topics   []string
}

// Transform shapes one raw word record into a Record or fails with a reason
// suitable for a per-record skip report. It performs no I/O.
func Transform(in WordInput) (*Record, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(in.ID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable word id %q", in.ID)
	}

	glossNormalized := NormalizeText(in.Gloss)
	minorNormalized := NormalizeText(in.Minor)
	maoriNormalized := NormalizeText(in.Maori)

	word := models.Word{
		ID:                 id,
		Gloss:              in.Gloss,
		Minor:              in.Minor,
		Maori:              in.Maori,
		Handshape:          in.Handshape,
		Location:           locationCode.ReplaceAllString(in.LocationName, ""),
		LocationIdentifier: in.LocationName,
		Target: strings.Join(
			[]string{glossNormalized, minorNormalized, maoriNormalized},
			targetSeparator,
		),
		AgeGroups:                 in.AgeGroups,
		ContainsNumbers:           coerceBool(in.ContainsNumbers),
		Hint:                      in.Hint,
		InflectionMannerAndDegree: coerceBool(in.InflectionMannerAndDegree),
		InflectionPlural:          coerceBool(in.InflectionPlural),
		InflectionTemporal:        coerceBool(in.InflectionTemporal),
		IsDirectional:             coerceBool(in.IsDirectional),
		IsFingerspelling:          coerceBool(in.IsFingerspelling),
		IsLocatable:               coerceBool(in.IsLocatable),
		OneOrTwoHanded:            coerceBool(in.OneOrTwoHanded),
		RelatedTo:                 in.RelatedTo,
		Usage:                     in.Usage,
		UsageNotes:                in.UsageNotes,
		WordClasses:               in.WordClasses,
		GlossNormalized:           glossNormalized,
		MinorNormalized:           minorNormalized,
		MaoriNormalized:           maoriNormalized,
	}

	rec := &Record{Word: word}

	for i, ex := range in.Examples {
		if strings.TrimSpace(ex.Sentence) == "" {
			continue
		}
		rec.Examples = append(rec.Examples, models.Example{
			WordID:       id,
			DisplayOrder: i + 1,
			Sentence:     ex.Sentence,
			Translation:  ex.Translation,
		})
	}

	for _, topic := range strings.Split(in.SemanticField, "; ") {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		rec.Topics = append(rec.Topics, topic)
	}

	return rec, nil
}

// coerceBool maps the export's literal boolean tokens onto the storage
// representation. Any other value (including the empty string, which means
// "unknown") passes through verbatim.
func coerceBool(s string) string {
	switch s {
	case "True":
		return "1"
	case "False":
		return "0"
	default:
		return s
	}
}
