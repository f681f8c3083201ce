package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sumseq/matrix"
)

// errInvalidInput marks input that is not a list (or matrix) of numbers.
var errInvalidInput = errors.New("invalid input")

// readSource returns args[0] when given, the contents of the named file when
// fromFile is set, or all of stdin.
func readSource(args []string, stdin io.Reader, fromFile bool) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		if fromFile {
			return os.ReadFile(args[0])
		}
		return []byte(args[0]), nil
	}

	return io.ReadAll(stdin)
}

// parseList decodes a YAML or JSON sequence of numbers, e.g. "[1, 2.5, 4]".
// A null element is rejected rather than dropped.
func parseList(data []byte) ([]float64, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("%w: empty", errInvalidInput)
	}
	var raw []*float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not a list", errInvalidInput)
	}

	values, bad := derefRow(raw)
	if bad >= 0 {
		return nil, fmt.Errorf("%w: element %d is null", errInvalidInput, bad)
	}

	return values, nil
}

// parseMatrix decodes a YAML or JSON sequence of numeric rows into a Dense
// matrix. ".inf" marks a missing edge; null cells and ragged rows are rejected.
func parseMatrix(data []byte) (*matrix.Dense, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("%w: empty", errInvalidInput)
	}
	var raw [][]*float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: not a list of rows", errInvalidInput)
	}

	rows := make([][]float64, len(raw))
	for i, r := range raw {
		row, bad := derefRow(r)
		if bad >= 0 {
			return nil, fmt.Errorf("%w: row %d, column %d is null", errInvalidInput, i, bad)
		}
		rows[i] = row
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidInput, err)
	}

	return m, nil
}

// derefRow unwraps decoded cells. It returns the index of the first null
// cell, or -1.
func derefRow(raw []*float64) ([]float64, int) {
	out := make([]float64, len(raw))
	for i, v := range raw {
		if v == nil {
			return nil, i
		}
		out[i] = *v
	}

	return out, -1
}

// formatNumber prints integral values without a fractional part.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
