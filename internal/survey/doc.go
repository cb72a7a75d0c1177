// Package survey extracts rank-order responses from a fixed-layout survey
// spreadsheet.
//
// # Architecture
//
// The package has three parts:
//
// 1. Reader: loads an .xlsx or .csv source into a RawTable with no header
// interpretation.
//
// 2. CourseNamer: resolves each rank column to a course identity, either by
// parsing a label row inside the sheet or from a static column table.
//
// 3. Extractor: applies a Layout policy to the RawTable, coercing each cell
// tolerantly (parse failures become absent values, never errors) and
// reporting audit counts.
//
// # Usage
//
//	table, err := survey.ReadTable("exit_survey.xlsx", "")
//	if err != nil {
//	    return err
//	}
//	ex := survey.NewExtractor(layout, survey.LabelRowNamer{Row: 1, Delimiter: " - "}, logger)
//	rankTable, audit, err := ex.Extract(table)
package survey
