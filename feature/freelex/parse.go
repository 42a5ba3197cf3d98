package freelex

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path"

	"github.com/ODNZSL/nzsl-dictionary-scripts/feature/dictionary"
)

// entry mirrors one <entry> element of the Freelex dump. Only the fields the
// pipeline consumes are mapped; the dump carries many more.
type entry struct {
	ID             string `xml:"id,attr"`
	Headword       string `xml:"headword"`
	GlossSecondary string `xml:"glosssecondary"`
	GlossMaori     string `xml:"glossmaori"`
	Handshape      string `xml:"handshape"`
	Location       string `xml:"location"`
	Picture        string `xml:"ASSET>picture"`
	GlossMain      string `xml:"ASSET>glossmain"`
}

type dump struct {
	Entries []entry `xml:"entry"`
}

// Export is the Freelex dump reshaped into the pipeline's input records.
type Export struct {
	Words  []dictionary.WordInput
	Assets []dictionary.AssetInput
}

// ParseDump decodes a sanitized XML dump into word and asset records. Each
// entry yields one word record plus up to two asset records: its picture and
// its main video, both typed "main" so the linker applies the same rules as
// for the Signbank export.
func (c *Client) ParseDump(data []byte) (*Export, error) {
	var d dump
	decoder := xml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse freelex dump: %w", err)
	}

	export := &Export{}
	for _, e := range d.Entries {
		export.Words = append(export.Words, dictionary.WordInput{
			ID:           e.ID,
			Gloss:        e.Headword,
			Minor:        e.GlossSecondary,
			Maori:        e.GlossMaori,
			Handshape:    e.Handshape,
			LocationName: e.Location,
		})

		glossKey := fmt.Sprintf("%s:%s", e.Headword, e.ID)

		if e.Picture != "" {
			filename := path.Base(e.Picture)
			export.Assets = append(export.Assets, dictionary.AssetInput{
				GlossKey:  glossKey,
				VideoType: "main",
				Title:     filename,
				URL:       c.AssetURL(filename),
			})
		}

		if e.GlossMain != "" {
			filename := rewriteVideoExtension(path.Base(e.GlossMain))
			export.Assets = append(export.Assets, dictionary.AssetInput{
				GlossKey:  glossKey,
				VideoType: "main",
				Title:     filename,
				URL:       c.AssetURL(filename),
			})
		}
	}

	return export, nil
}
