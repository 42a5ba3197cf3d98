package freelex

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/ODNZSL/nzsl-dictionary-scripts/core/fetch"
)

// Client fetches the legacy Freelex XML dump. The dump endpoint is public,
// so the shared retrying client is enough; there is no session to manage.
type Client struct {
	cfg     Config
	fetcher *fetch.Client
}

// NewClient creates a Freelex client using the shared fetcher.
func NewClient(cfg Config, fetcher *fetch.Client) *Client {
	return &Client{cfg: cfg, fetcher: fetcher}
}

// FetchDump retrieves and sanitizes the full XML dump.
func (c *Client) FetchDump(ctx context.Context) ([]byte, error) {
	body, err := c.fetcher.Fetch(ctx, c.cfg.Host+"/publicsearch?xmldump=1")
	if err != nil {
		return nil, err
	}
	return Sanitize(body), nil
}

// AssetURL returns the download URL for a named asset file.
func (c *Client) AssetURL(filename string) string {
	return c.cfg.Host + "/assets/" + url.PathEscape(filename)
}

// Sanitize repairs the dump enough for an XML parser to accept it: the
// stray 0x05 control bytes and literal "<->" tokens the legacy database
// contains are dropped, and bare ampersands are escaped. Ampersands already
// starting a numeric entity ("&#...") are left alone.
func Sanitize(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte{0x05}, nil)
	data = bytes.ReplaceAll(data, []byte("<->"), nil)

	var out bytes.Buffer
	out.Grow(len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '&' && (i+1 >= len(data) || data[i+1] != '#') {
			out.WriteString("&#038;")
			continue
		}
		out.WriteByte(data[i])
	}
	return out.Bytes()
}

// rewriteVideoExtension maps the webm files Freelex stores onto the mp4
// renditions the apps play.
func rewriteVideoExtension(name string) string {
	return strings.ReplaceAll(name, ".webm", ".mp4")
}
