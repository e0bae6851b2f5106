package colornode

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

type tomlTable struct {
	ID     string      `toml:"id"`
	Colors []tomlColor `toml:"color"`
}

type tomlColor struct {
	Index int       `toml:"index"`
	Name  string    `toml:"name"`
	RGBA  []float64 `toml:"rgba"`
}

// ParseTOML reads a color table in TOML form:
//
//	id = "GenericAnatomy"
//
//	[[color]]
//	index = 1
//	name = "tissue"
//	rgba = [0.5, 0.68, 0.5, 1.0]
//
// Channels are floats in [0,1]; a three element rgba is opaque. The table's
// id, when present, overrides source as the node ID.
func ParseTOML(r io.Reader, source string) (*Node, error) {
	var table tomlTable
	if _, err := toml.NewDecoder(r).Decode(&table); err != nil {
		return nil, &TableError{Op: "parse", Source: source, Err: err}
	}

	id := source
	if table.ID != "" {
		id = table.ID
	}

	node := New(id, TypeFile)
	node.BeginModify()
	defer node.EndModify()

	for _, c := range table.Colors {
		if err := checkIndex(c.Index); err != nil {
			return nil, &TableError{Op: "parse", Source: source, Err: err}
		}

		var rgba [4]float64
		switch len(c.RGBA) {
		case 3:
			copy(rgba[:], c.RGBA)
			rgba[3] = 1
		case 4:
			copy(rgba[:], c.RGBA)
		default:
			err := fmt.Errorf("%w: color %d has %d channels", ErrInvalidColor, c.Index, len(c.RGBA))
			return nil, &TableError{Op: "parse", Source: source, Err: err}
		}

		if err := node.SetColor(c.Index, c.Name, rgba[0], rgba[1], rgba[2], rgba[3]); err != nil {
			return nil, &TableError{Op: "parse", Source: source, Err: err}
		}
	}

	node.SetNamesInitialised(true)
	return node, nil
}
