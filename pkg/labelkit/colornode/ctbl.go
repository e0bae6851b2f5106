package colornode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCtbl reads a Slicer color table:
//
//	# comment
//	0 Background 0 0 0 0
//	1 tissue 128 174 128 255
//
// Channels are 0-255 integers. Indices may be sparse; gaps become unnamed
// transparent black entries. source names the table in errors and becomes
// the node ID.
func ParseCtbl(r io.Reader, source string) (*Node, error) {
	node := New(source, TypeFile)
	node.BeginModify()
	defer node.EndModify()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		index, name, rgba, err := parseCtblLine(line)
		if err != nil {
			return nil, &TableError{Op: "parse", Source: source, Line: lineNo, Err: err}
		}
		if err := node.SetColor(index, name, rgba[0], rgba[1], rgba[2], rgba[3]); err != nil {
			return nil, &TableError{Op: "parse", Source: source, Line: lineNo, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &TableError{Op: "parse", Source: source, Err: err}
	}

	node.SetNamesInitialised(true)
	return node, nil
}

func parseCtblLine(line string) (int, string, [4]float64, error) {
	var rgba [4]float64

	fields := strings.Fields(line)
	if len(fields) != 6 {
		return 0, "", rgba, fmt.Errorf("%w: want 6 fields, got %d", ErrMalformedLine, len(fields))
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", rgba, fmt.Errorf("%w: index %q", ErrMalformedLine, fields[0])
	}
	if err := checkIndex(index); err != nil {
		return 0, "", rgba, err
	}

	for i, raw := range fields[2:] {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, "", rgba, fmt.Errorf("%w: channel %q", ErrMalformedLine, raw)
		}
		if v < 0 || v > 255 {
			return 0, "", rgba, fmt.Errorf("%w: channel %d out of [0,255]", ErrInvalidColor, v)
		}
		rgba[i] = float64(v) / 255
	}

	return index, fields[1], rgba, nil
}
