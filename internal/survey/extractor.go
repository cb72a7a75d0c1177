package survey

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "surveyrank/internal/errors"
)

// Layout fixes the geometry of one spreadsheet template: which row labels
// the courses, where respondent data begins, and which contiguous column
// band carries the rank values. Nothing in the extractor hard-codes offsets;
// pointing the same logic at a different template is a config change.
type Layout struct {
	// LabelRow is the zero-based row holding course labels.
	LabelRow int
	// DataStartRow is the zero-based index of the first respondent row.
	// Rows before it are excluded from value extraction regardless of
	// content.
	DataStartRow int
	// ColumnStart and ColumnEnd bound the rank-column band, inclusive, in
	// spreadsheet letters ("L", "S").
	ColumnStart string
	ColumnEnd   string
	// DropBlankRows removes respondent rows where every rank column is
	// absent before counting.
	DropBlankRows bool
}

// Extractor turns a RawTable into a RankTable under a layout policy and a
// course-identity strategy. Malformed cells degrade to absent values; the
// only error path is a layout whose column band cannot be resolved.
type Extractor struct {
	layout Layout
	namer  CourseNamer
	logger *slog.Logger
}

// NewExtractor creates an extractor for the given layout and naming
// strategy. A nil logger falls back to slog.Default().
func NewExtractor(layout Layout, namer CourseNamer, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{layout: layout, namer: namer, logger: logger}
}

// Extract selects the rank-column band, derives one CourseColumn per
// selected column, and collects each respondent's optional rank per course.
// The returned Audit reports the pre-drop respondent row count and how many
// all-blank rows were removed; those counts are observational only.
func (e *Extractor) Extract(table RawTable) (*RankTable, Audit, error) {
	startCol, endCol, err := e.columnBand()
	if err != nil {
		return nil, Audit{}, err
	}

	rt := &RankTable{}
	for col := startCol; col <= endCol; col++ {
		rt.Courses = append(rt.Courses, CourseColumn{
			Name:           e.namer.CourseName(table, col),
			SourcePosition: col,
		})
	}
	rt.Ranks = make([][]*float64, len(rt.Courses))

	audit := Audit{}
	for row := e.layout.DataStartRow; row < len(table); row++ {
		audit.RowsSeen++

		values := make([]*float64, len(rt.Courses))
		blank := true
		for i, course := range rt.Courses {
			v := parseRank(table.Cell(row, course.SourcePosition))
			values[i] = v
			if v != nil {
				blank = false
			}
		}

		if blank && e.layout.DropBlankRows {
			audit.RowsDropped++
			e.logger.Debug("dropped blank respondent row", slog.Int("row", row))
			continue
		}

		for i := range rt.Courses {
			rt.Ranks[i] = append(rt.Ranks[i], values[i])
		}
	}

	e.logger.Info("extracted rank table",
		slog.Int("courses", len(rt.Courses)),
		slog.Int("rows_seen", audit.RowsSeen),
		slog.Int("rows_dropped", audit.RowsDropped))
	for i, course := range rt.Courses {
		e.logger.Debug("course extracted",
			slog.String("course", course.Name),
			slog.Int("source_position", course.SourcePosition),
			slog.Int("n", rt.PresentCount(i)))
	}

	return rt, audit, nil
}

// columnBand resolves the letter band into zero-based column indexes.
func (e *Extractor) columnBand() (int, int, error) {
	start, err := excelize.ColumnNameToNumber(strings.ToUpper(e.layout.ColumnStart))
	if err != nil {
		return 0, 0, apperrors.NewConfigError("invalid column_start "+strconv.Quote(e.layout.ColumnStart), err)
	}
	end, err := excelize.ColumnNameToNumber(strings.ToUpper(e.layout.ColumnEnd))
	if err != nil {
		return 0, 0, apperrors.NewConfigError("invalid column_end "+strconv.Quote(e.layout.ColumnEnd), err)
	}
	if start > end {
		return 0, 0, apperrors.NewConfigError("column_start is after column_end", nil)
	}
	return start - 1, end - 1, nil
}

// parseRank coerces one cell to a rank value. Empty cells, non-numeric text,
// and non-finite numbers all yield nil; a parse failure is data, not an
// error.
func parseRank(cell string) *float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
