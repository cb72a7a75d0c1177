package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"surveyrank/internal/config"
	apperrors "surveyrank/internal/errors"
	"surveyrank/internal/exporter"
	"surveyrank/internal/ranking"
	"surveyrank/internal/survey"
)

// App wires the report pipeline: read the source, extract the rank table,
// aggregate, write the artifacts. One instance serves one run.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates the application with the given configuration and logger.
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, logger: logger}
}

// Run executes the whole pipeline in one sequential pass. Audit lines go to
// stdout for the operator; diagnostics go to the logger. The two fatal
// boundaries are reading the source and writing the artifacts; everything
// between degrades into the data model instead of failing.
func (a *App) Run(ctx context.Context, inputPath, outDir string) error {
	a.logger.InfoContext(ctx, "starting rank-order report run",
		slog.String("input", inputPath),
		slog.String("outdir", outDir))

	table, err := survey.ReadTable(inputPath, a.cfg.Survey.Sheet)
	if err != nil {
		return err
	}

	namer, err := a.courseNamer()
	if err != nil {
		return err
	}

	ex := survey.NewExtractor(survey.Layout{
		LabelRow:      a.cfg.Survey.LabelRow,
		DataStartRow:  a.cfg.Survey.DataStartRow,
		ColumnStart:   a.cfg.Survey.ColumnStart,
		ColumnEnd:     a.cfg.Survey.ColumnEnd,
		DropBlankRows: a.cfg.Survey.DropBlankRows,
	}, namer, a.logger)

	rt, audit, err := ex.Extract(table)
	if err != nil {
		return err
	}

	fmt.Printf("Audit: respondent rows seen = %d\n", audit.RowsSeen)
	if a.cfg.Survey.DropBlankRows {
		fmt.Printf("Audit: blank rows dropped = %d\n", audit.RowsDropped)
	}
	for i, course := range rt.Courses {
		fmt.Printf("Audit: %s n = %d\n", course.Name, rt.PresentCount(i))
	}

	summarizer := ranking.NewSummarizer(a.logger, ranking.EmptyCoursePolicy(a.cfg.Survey.EmptyCoursePolicy))
	summaries := summarizer.Summarize(ctx, rt)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return apperrors.NewOutputWriteError(outDir, fmt.Errorf("failed to create output directory: %w", err))
	}

	csvPath := filepath.Join(outDir, a.cfg.Output.SummaryFile)
	if err := exporter.NewCSVWriter(a.logger).WriteSummary(csvPath, summaries); err != nil {
		return err
	}
	fmt.Printf("Saved: %s\n", csvPath)

	chartPath := filepath.Join(outDir, a.cfg.Output.ChartFile)
	renderer := exporter.NewChartRenderer(a.cfg.Output.ChartTitle, a.logger)
	if err := renderer.Render(chartPath, summaries); err != nil {
		return err
	}
	fmt.Printf("Saved: %s\n", chartPath)

	reflectionPath := filepath.Join(outDir, a.cfg.Output.ReflectionFile)
	if err := exporter.WriteReflection(reflectionPath, a.cfg.Output.ReflectionPrompts); err != nil {
		return err
	}
	fmt.Printf("Saved: %s\n", reflectionPath)

	a.logger.InfoContext(ctx, "run complete",
		slog.Int("courses", len(summaries)),
		slog.Int("respondents", rt.Respondents()))

	return nil
}

// courseNamer builds the configured course-identity strategy.
func (a *App) courseNamer() (survey.CourseNamer, error) {
	switch a.cfg.Survey.NameSource {
	case "static":
		columns := make(map[string]string, len(a.cfg.Survey.StaticColumns))
		for _, sc := range a.cfg.Survey.StaticColumns {
			columns[sc.Column] = sc.Name
		}
		namer, err := survey.NewStaticNamer(columns)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid static column table", err)
		}
		return namer, nil
	default:
		return survey.LabelRowNamer{
			Row:       a.cfg.Survey.LabelRow,
			Delimiter: a.cfg.Survey.LabelDelimiter,
		}, nil
	}
}
