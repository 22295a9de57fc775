// Package level loads character-grid level files.
//
// A level file is plain text with one row per line and one character per
// cell. Blank lines are ignored and every remaining row must have the same
// width. Which characters become blocks is decided later by the symbol table.
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

//go:embed levels/demo.txt
var demoLevel []byte

// DemoName is the source name reported for the bundled demo level.
const DemoName = "demo"

var (
	// ErrNotFound is returned when the level path is not an existing file.
	// It matches fs.ErrNotExist.
	ErrNotFound = fmt.Errorf("level file not found: %w", fs.ErrNotExist)

	// ErrEmpty is returned when a level has no non-blank rows.
	ErrEmpty = errors.New("level has no rows")
)

// ValidationError reports a row whose width differs from the first row.
type ValidationError struct {
	Source string // File path or level name
	Line   int    // 1-based line number in the source
	Want   int    // Width of the first row
	Got    int    // Width of the offending row
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s:%d: row width %d, expected %d (all rows must have the same width)",
		e.Source, e.Line, e.Got, e.Want)
}

// Grid is a validated level: ordered rows of equal width.
type Grid struct {
	Source string
	Rows   []string
}

// Width returns the number of characters per row.
func (g Grid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return utf8.RuneCountInString(g.Rows[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.Rows)
}

// Load reads and validates the level file at path.
func Load(path string) (Grid, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Grid{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Grid{}, fmt.Errorf("reading level %s: %w", path, err)
	}

	return Parse(path, data)
}

// Demo returns the bundled demo level.
func Demo() (Grid, error) {
	return Parse(DemoName, demoLevel)
}

// LoadOrDemo loads the level at path, or the demo level if path is empty.
func LoadOrDemo(path string) (Grid, error) {
	if path == "" {
		return Demo()
	}
	return Load(path)
}

// Parse validates level text. Rows keep their characters verbatim apart from
// a trailing carriage return.
func Parse(source string, data []byte) (Grid, error) {
	grid := Grid{Source: source}
	width := -1

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := utf8.RuneCountInString(line)
		if width < 0 {
			width = n
		} else if n != width {
			return Grid{}, &ValidationError{Source: source, Line: i + 1, Want: width, Got: n}
		}
		grid.Rows = append(grid.Rows, line)
	}

	if len(grid.Rows) == 0 {
		return Grid{}, fmt.Errorf("%s: %w", source, ErrEmpty)
	}
	return grid, nil
}
