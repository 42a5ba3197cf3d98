package freelex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFreelexClient() *Client {
	return NewClient(Config{Host: "https://freelex.example.com"}, nil)
}

func TestSanitize(t *testing.T) {
	in := []byte("a\x05b <-> c & d &#038; e")
	out := Sanitize(in)
	assert.Equal(t, "ab  c &#038; d &#038; e", string(out))
}

func TestSanitizeTrailingAmpersand(t *testing.T) {
	assert.Equal(t, "abc&#038;", string(Sanitize([]byte("abc&"))))
}

func TestParseDump(t *testing.T) {
	data := []byte(`<dnzsl>
		<entry id="42">
			<headword>cat</headword>
			<glosssecondary>moggy</glosssecondary>
			<glossmaori>ngeru</glossmaori>
			<handshape>1.1</handshape>
			<location>Wellington</location>
			<ASSET>
				<picture>cat.png</picture>
				<glossmain>cat.webm</glossmain>
			</ASSET>
		</entry>
		<entry id="43">
			<headword>dog</headword>
			<location>Auckland</location>
		</entry>
	</dnzsl>`)

	export, err := testFreelexClient().ParseDump(data)
	require.NoError(t, err)

	require.Len(t, export.Words, 2)
	assert.Equal(t, "42", export.Words[0].ID)
	assert.Equal(t, "cat", export.Words[0].Gloss)
	assert.Equal(t, "moggy", export.Words[0].Minor)
	assert.Equal(t, "ngeru", export.Words[0].Maori)
	assert.Equal(t, "Wellington", export.Words[0].LocationName)

	require.Len(t, export.Assets, 2)
	assert.Equal(t, "cat:42", export.Assets[0].GlossKey)
	assert.Equal(t, "main", export.Assets[0].VideoType)
	assert.Equal(t, "cat.png", export.Assets[0].Title)
	assert.Equal(t, "https://freelex.example.com/assets/cat.png", export.Assets[0].URL)

	// webm renditions are rewritten to the mp4 the apps play.
	assert.Equal(t, "cat.mp4", export.Assets[1].Title)
	assert.Equal(t, "https://freelex.example.com/assets/cat.mp4", export.Assets[1].URL)
}

func TestParseDumpAfterSanitize(t *testing.T) {
	// The legacy dump contains bare ampersands that only parse once
	// sanitized.
	raw := []byte(`<dnzsl><entry id="7"><headword>fish & chips</headword></entry></dnzsl>`)

	export, err := testFreelexClient().ParseDump(Sanitize(raw))
	require.NoError(t, err)
	require.Len(t, export.Words, 1)
	assert.Equal(t, "fish & chips", export.Words[0].Gloss)
}

func TestParseDumpMalformed(t *testing.T) {
	_, err := testFreelexClient().ParseDump([]byte("<dnzsl><entry></dnzsl>"))
	assert.Error(t, err)
}

func TestAssetURLEscapesFilenames(t *testing.T) {
	c := testFreelexClient()
	assert.Equal(t, "https://freelex.example.com/assets/my%20sign.png", c.AssetURL("my sign.png"))
}
