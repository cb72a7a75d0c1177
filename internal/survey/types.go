package survey

// RawTable is the spreadsheet as read: rows of string cells with no header
// interpretation. Rows may be ragged; missing cells read as empty strings.
type RawTable [][]string

// Cell returns the trimmed-nothing raw cell at (row, col), or "" when the
// table is too short or the row too narrow.
func (t RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t) {
		return ""
	}
	if col < 0 || col >= len(t[row]) {
		return ""
	}
	return t[row][col]
}

// CourseColumn identifies one surveyed course.
type CourseColumn struct {
	// Name is the derived display name. It may legitimately be empty when
	// the label cell is absent; SourcePosition still makes the identity
	// unique.
	Name string

	// SourcePosition is the zero-based column index in the raw table.
	SourcePosition int
}

// RankTable holds, per course, one optional rank value per respondent row.
// Course order is the column order encountered in the source. All rank
// sequences have equal length; a nil entry is an absent response.
type RankTable struct {
	Courses []CourseColumn
	Ranks   [][]*float64 // Ranks[i][j]: course i, respondent j
}

// Respondents returns the number of respondent rows in the table.
func (t *RankTable) Respondents() int {
	if len(t.Ranks) == 0 {
		return 0
	}
	return len(t.Ranks[0])
}

// PresentCount returns how many respondents gave a valid rank for course i.
func (t *RankTable) PresentCount(i int) int {
	n := 0
	for _, v := range t.Ranks[i] {
		if v != nil {
			n++
		}
	}
	return n
}

// Audit carries the observational counts emitted during extraction. The
// counts never affect the extracted table; they exist so a run's printout
// can be reconciled against the source sheet.
type Audit struct {
	// RowsSeen is the respondent row count before any blank-row dropping.
	RowsSeen int
	// RowsDropped is how many all-blank rows were removed.
	RowsDropped int
}
