package exporter

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "surveyrank/internal/errors"
	"surveyrank/internal/ranking"
)

// barColor matches the report's house style for the ranking chart.
var barColor = color.RGBA{R: 0x4C, G: 0x78, B: 0xA8, A: 0xFF}

// ChartRenderer renders the mean-rank bar chart artifact.
type ChartRenderer struct {
	title  string
	logger *slog.Logger
}

// NewChartRenderer creates a renderer with the given chart title.
func NewChartRenderer(title string, logger *slog.Logger) *ChartRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartRenderer{title: title, logger: logger}
}

// Render draws a horizontal bar chart of mean rank per course and saves it
// to path. Courses appear in final-rank order with rank 1 at the top.
// Courses with no responses have no defined mean and are left off the
// chart. Any failure is an OUTPUT_WRITE error naming the path.
func (r *ChartRenderer) Render(path string, summaries []ranking.CourseSummary) error {
	var names []string
	var values plotter.Values

	// NominalY lays names out bottom-to-top, so walk in reverse final-rank
	// order to put rank 1 at the top.
	for i := len(summaries) - 1; i >= 0; i-- {
		s := summaries[i]
		if math.IsNaN(s.MeanRank) {
			r.logger.Warn("course has no responses, omitting from chart",
				slog.String("course", s.CourseName))
			continue
		}
		names = append(names, s.CourseName)
		values = append(values, s.MeanRank)
	}

	p := plot.New()
	p.Title.Text = r.title
	p.X.Label.Text = "Mean Rank"
	p.Y.Label.Text = "Course"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return apperrors.NewOutputWriteError(path, fmt.Errorf("failed to build bar chart: %w", err))
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(names...)
	p.Add(plotter.NewGrid())

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewOutputWriteError(path, fmt.Errorf("failed to create directory: %w", err))
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return apperrors.NewOutputWriteError(path, err)
	}

	r.logger.Info("rendered ranking chart",
		slog.String("path", path),
		slog.Int("bars", len(values)))

	return nil
}
