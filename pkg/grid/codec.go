package grid

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// grid file parse states
const (
	PARSE_ROW_COUNT = iota
	PARSE_COL_COUNT = iota
	PARSE_DIAGONAL  = iota
	PARSE_WEIGHTS   = iota
)

// NewGridFromString parses the line oriented grid format: row count, column
// count, diagonal flag (0/1), then one line of weights per row. Empty lines
// and lines starting with '#' are skipped.
func NewGridFromString(data string) (*Grid, error) {
	scanner := bufio.NewScanner(strings.NewReader(data))

	rows, cols := 0, 0
	diagonal := false
	weights := make([][]float64, 0)

	parseState := PARSE_ROW_COUNT
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}

		switch parseState {
		case PARSE_ROW_COUNT:
			val, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("invalid row count %q: %w", line, err)
			}
			rows = val
			parseState = PARSE_COL_COUNT
		case PARSE_COL_COUNT:
			val, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("invalid column count %q: %w", line, err)
			}
			cols = val
			parseState = PARSE_DIAGONAL
		case PARSE_DIAGONAL:
			switch strings.TrimSpace(line) {
			case "0":
				diagonal = false
			case "1":
				diagonal = true
			default:
				return nil, fmt.Errorf("invalid diagonal flag %q, expected 0 or 1", line)
			}
			parseState = PARSE_WEIGHTS
		case PARSE_WEIGHTS:
			fields := strings.Fields(line)
			if len(fields) != cols {
				return nil, fmt.Errorf("row %d has %d weights, expected %d", len(weights), len(fields), cols)
			}
			row := make([]float64, len(fields))
			for i, field := range fields {
				weight, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf("invalid weight %q in row %d: %w", field, len(weights), err)
				}
				row[i] = weight
			}
			weights = append(weights, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if parseState != PARSE_WEIGHTS {
		return nil, fmt.Errorf("incomplete grid header")
	}
	if len(weights) != rows {
		return nil, fmt.Errorf("got %d weight rows, expected %d", len(weights), rows)
	}

	return New(weights, diagonal)
}

// NewGridFromFile reads a grid file.
func NewGridFromFile(filename string) (*Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewGridFromString(string(data))
}

// WriteGrid stores the grid in the same format NewGridFromString parses.
func WriteGrid(g *Grid, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(g.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}
