package colornode

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither color
	// table text nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported color table format")

	// ErrInvalidColor is returned for out of range indices or channels.
	ErrInvalidColor = errors.New("invalid color")

	// ErrMalformedLine is returned for color table lines that do not have
	// the index name r g b a layout.
	ErrMalformedLine = errors.New("malformed color table line")

	// ErrTableTooLarge is returned when a fetched table exceeds the size
	// limit.
	ErrTableTooLarge = errors.New("color table too large")
)

// TableError describes a failure to load a color table.
type TableError struct {
	Op     string // "open", "parse", "fetch"
	Source string // file path or URL
	Line   int    // 1-based, 0 when not line specific
	Err    error
}

func (e *TableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("colornode: %s %s:%d: %v", e.Op, e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("colornode: %s %s: %v", e.Op, e.Source, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
