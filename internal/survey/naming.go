package survey

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CourseNamer resolves the display name for a rank column. Different survey
// exports label the same template differently, so the resolution strategy is
// pluggable: one variant parses a label row inside the sheet, the other uses
// a statically configured column table.
type CourseNamer interface {
	CourseName(table RawTable, col int) string
}

// LabelRowNamer derives course names from a label row within the sheet.
// Survey tools emit labels like "ACC 521 - Financial Reporting"; the true
// course name is whatever follows the last occurrence of the delimiter.
type LabelRowNamer struct {
	// Row is the zero-based label row index.
	Row int
	// Delimiter separates the course code from the description. When empty,
	// the whole label is used.
	Delimiter string
}

// CourseName returns the trimmed name for the column, or "" when the label
// cell is absent. An empty name is still a valid, if degenerate, course
// identity.
func (n LabelRowNamer) CourseName(table RawTable, col int) string {
	label := table.Cell(n.Row, col)
	if n.Delimiter != "" {
		if idx := strings.LastIndex(label, n.Delimiter); idx >= 0 {
			label = label[idx+len(n.Delimiter):]
		}
	}
	return strings.TrimSpace(label)
}

// StaticNamer maps zero-based column indexes to configured course names,
// for survey exports whose label row is unusable.
type StaticNamer struct {
	names map[int]string
}

// NewStaticNamer builds a StaticNamer from a spreadsheet-letter → name
// table (e.g. "L" → "Financial Reporting").
func NewStaticNamer(columns map[string]string) (*StaticNamer, error) {
	names := make(map[int]string, len(columns))
	for letter, name := range columns {
		num, err := excelize.ColumnNameToNumber(strings.ToUpper(strings.TrimSpace(letter)))
		if err != nil {
			return nil, fmt.Errorf("invalid column letter %q: %w", letter, err)
		}
		names[num-1] = name
	}
	return &StaticNamer{names: names}, nil
}

// CourseName returns the configured name for the column, or "" when the
// column has no entry.
func (n *StaticNamer) CourseName(_ RawTable, col int) string {
	return n.names[col]
}
