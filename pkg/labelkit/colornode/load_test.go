package colornode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCtbl = `# Color table file labels.ctbl
# 4 values
0 Background 0 0 0 0
1 tissue 128 174 128 255

3 bone 241 214 145 255
`

const sampleTOML = `id = "GenericAnatomy"

[[color]]
index = 0
name = "Background"
rgba = [0.0, 0.0, 0.0, 0.0]

[[color]]
index = 1
name = "tissue"
rgba = [0.5, 0.68, 0.5]
`

func TestParseCtbl(t *testing.T) {
	n, err := ParseCtbl(strings.NewReader(sampleCtbl), "labels")
	if err != nil {
		t.Fatalf("ParseCtbl: %v", err)
	}

	if !n.NamesInitialised() {
		t.Error("parsed table must have names initialised")
	}
	if n.NumberOfColors() != 4 {
		t.Fatalf("NumberOfColors() = %d, want 4", n.NumberOfColors())
	}
	if n.ColorName(1) != "tissue" || n.ColorName(2) != "" || n.ColorName(3) != "bone" {
		t.Errorf("names = %q %q %q", n.ColorName(1), n.ColorName(2), n.ColorName(3))
	}
	if got := n.TableValue(1); got != [4]float64{128.0 / 255, 174.0 / 255, 128.0 / 255, 1} {
		t.Errorf("TableValue(1) = %v", got)
	}
	if n.ID() != "labels" || n.TypeString() != TypeFile {
		t.Errorf("ID, type = %q, %q", n.ID(), n.TypeString())
	}
}

func TestParseCtblErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		is    error
	}{
		{"too few fields", "0 Background 0 0 0", 1, ErrMalformedLine},
		{"bad index", "# header\nx Background 0 0 0 0", 2, ErrMalformedLine},
		{"bad channel", "1 tissue 12 red 0 255", 1, ErrMalformedLine},
		{"channel out of range", "1 tissue 300 0 0 255", 1, ErrInvalidColor},
		{"negative index", "-1 tissue 0 0 0 255", 1, ErrInvalidColor},
		{"index above limit", "0 Background 0 0 0 0\n65536 huge 0 0 0 255", 2, ErrInvalidColor},
		{"max int index", "9223372036854775807 huge 0 0 0 255", 1, ErrInvalidColor},
		{"index overflows int", "99999999999999999999 huge 0 0 0 255", 1, ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCtbl(strings.NewReader(tt.input), "bad")

			var tableErr *TableError
			if !errors.As(err, &tableErr) {
				t.Fatalf("err = %v, want *TableError", err)
			}
			if tableErr.Line != tt.line {
				t.Errorf("Line = %d, want %d", tableErr.Line, tt.line)
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestParseTOML(t *testing.T) {
	n, err := ParseTOML(strings.NewReader(sampleTOML), "fallback")
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}

	if n.ID() != "GenericAnatomy" {
		t.Errorf("ID() = %q", n.ID())
	}
	if n.NumberOfColors() != 2 || n.ColorName(1) != "tissue" {
		t.Fatalf("unexpected table: %d colors", n.NumberOfColors())
	}
	if got := n.TableValue(1); got != [4]float64{0.5, 0.68, 0.5, 1} {
		t.Errorf("three channel color = %v, want opaque", got)
	}
}

func TestParseCtblAcceptsLargestIndex(t *testing.T) {
	n, err := ParseCtbl(strings.NewReader("65535 last 1 2 3 255"), "sparse")
	if err != nil {
		t.Fatalf("ParseCtbl: %v", err)
	}
	if n.NumberOfColors() != MaxColorIndex+1 || n.ColorName(MaxColorIndex) != "last" {
		t.Errorf("NumberOfColors() = %d, last name = %q", n.NumberOfColors(), n.ColorName(MaxColorIndex))
	}
}

func TestParseTOMLErrors(t *testing.T) {
	_, err := ParseTOML(strings.NewReader("[[color]]\nindex = 0\nrgba = [1.0]\n"), "short")
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("short rgba: err = %v", err)
	}

	_, err = ParseTOML(strings.NewReader("[[color]]\nindex = 70000\nrgba = [1.0, 0.0, 0.0]\n"), "huge")
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("index above limit: err = %v", err)
	}

	_, err = ParseTOML(strings.NewReader("[[color]\n"), "broken")
	var tableErr *TableError
	if !errors.As(err, &tableErr) || tableErr.Op != "parse" {
		t.Errorf("syntax error: err = %v", err)
	}
}

func TestLoadDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	ctbl := filepath.Join(dir, "labels.ctbl")
	if err := os.WriteFile(ctbl, []byte(sampleCtbl), 0644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "anatomy.toml")
	if err := os.WriteFile(tomlPath, []byte(sampleTOML), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := Load(ctbl)
	if err != nil || n.ID() != "labels" || n.NumberOfColors() != 4 {
		t.Errorf("Load(ctbl) = %v, %v", n, err)
	}

	n, err = Load(tomlPath)
	if err != nil || n.ID() != "GenericAnatomy" {
		t.Errorf("Load(toml) = %v, %v", n, err)
	}

	if _, err := Load(filepath.Join(dir, "labels.json")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(json) err = %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.ctbl")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) err = %v", err)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tables/labels.ctbl":
			fmt.Fprint(w, sampleCtbl)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	n, err := Fetch(context.Background(), srv.Client(), srv.URL+"/tables/labels.ctbl")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if n.ID() != "labels" || n.TypeString() != TypeRemote || n.NumberOfColors() != 4 {
		t.Errorf("fetched node id=%q type=%q colors=%d", n.ID(), n.TypeString(), n.NumberOfColors())
	}

	_, err = Fetch(context.Background(), srv.Client(), srv.URL+"/tables/missing.ctbl")
	var tableErr *TableError
	if !errors.As(err, &tableErr) || tableErr.Op != "fetch" {
		t.Errorf("missing table err = %v", err)
	}

	if _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/tables/labels.xml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unsupported extension err = %v", err)
	}
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleCtbl)
	}))
	defer srv.Close()

	saved := maxFetchSize
	t.Cleanup(func() { maxFetchSize = saved })

	maxFetchSize = int64(len(sampleCtbl))
	if _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/labels.ctbl"); err != nil {
		t.Fatalf("body at the limit: %v", err)
	}

	// Cutting the body after the tissue line would still parse cleanly.
	maxFetchSize = int64(strings.Index(sampleCtbl, "\n3 bone"))
	n, err := Fetch(context.Background(), srv.Client(), srv.URL+"/labels.ctbl")
	if !errors.Is(err, ErrTableTooLarge) {
		t.Fatalf("body over the limit: node = %v, err = %v", n, err)
	}
	var tableErr *TableError
	if !errors.As(err, &tableErr) || tableErr.Op != "parse" {
		t.Errorf("err = %v, want a parse TableError", err)
	}
}

func TestFetchHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleCtbl)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Fetch(ctx, srv.Client(), srv.URL+"/labels.ctbl"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
