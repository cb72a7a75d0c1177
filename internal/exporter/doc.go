// Package exporter writes the report artifacts for a rank-order run.
//
// This package contains three sinks:
//
// CSVWriter: the course_rankings.csv summary, with UTF-8 BOM for Excel
// compatibility and a ReadSummary counterpart for reconciliation.
//
// ChartRenderer: the horizontal bar chart of mean rank per course, final
// rank 1 at the top.
//
// WriteReflection: the static reflection-questions Markdown file, whose
// content is configuration rather than computation.
package exporter
