package colornode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// maxFetchSize bounds remote tables; the largest stock tables are well
// under a megabyte.
var maxFetchSize int64 = 8 << 20

// cappedReader fails with ErrTableTooLarge once more than limit bytes have
// been read, so an oversized body never parses as a shorter table.
type cappedReader struct {
	r     io.Reader
	limit int64
}

func newCappedReader(r io.Reader, limit int64) *cappedReader {
	return &cappedReader{r: io.LimitReader(r, limit+1), limit: limit}
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.limit < 0 {
		return 0, ErrTableTooLarge
	}
	n, err := c.r.Read(p)
	c.limit -= int64(n)
	if c.limit < 0 {
		return 0, ErrTableTooLarge
	}
	return n, err
}

type parseFunc func(io.Reader, string) (*Node, error)

func parserFor(name string) (parseFunc, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".ctbl", ".txt":
		return ParseCtbl, nil
	case ".toml":
		return ParseTOML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path.Ext(name))
	}
}

// Load reads a color table file, choosing the parser by extension:
// .ctbl and .txt are color table text, .toml is TOML.
func Load(filename string) (*Node, error) {
	parse, err := parserFor(filename)
	if err != nil {
		return nil, &TableError{Op: "open", Source: filename, Err: err}
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, &TableError{Op: "open", Source: filename, Err: err}
	}
	defer f.Close()

	id := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	node, err := parse(f, id)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// Fetch downloads a color table over HTTP(S). The parser is chosen from the
// URL path extension. A nil client uses http.DefaultClient. Bodies over
// 8 MiB fail with ErrTableTooLarge.
func Fetch(ctx context.Context, client *http.Client, rawURL string) (*Node, error) {
	if client == nil {
		client = http.DefaultClient
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &TableError{Op: "fetch", Source: rawURL, Err: err}
	}

	parse, err := parserFor(u.Path)
	if err != nil {
		return nil, &TableError{Op: "fetch", Source: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TableError{Op: "fetch", Source: rawURL, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TableError{Op: "fetch", Source: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TableError{Op: "fetch", Source: rawURL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	id := strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path))
	node, err := parse(newCappedReader(resp.Body, maxFetchSize), id)
	if err != nil {
		return nil, err
	}
	node.typ = TypeRemote
	return node, nil
}
