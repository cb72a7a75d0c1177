package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	apperrors "surveyrank/internal/errors"
	"surveyrank/internal/ranking"
)

var summaryHeader = []string{"course_name", "n", "mean_rank", "final_rank"}

// CSVWriter writes the course-ranking summary as a CSV artifact.
type CSVWriter struct {
	logger *slog.Logger
	// BOMPrefix adds a UTF-8 BOM so Excel opens the file correctly.
	BOMPrefix bool
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger, BOMPrefix: true}
}

// WriteSummary writes one row per course, in final-rank order, under the
// header course_name,n,mean_rank,final_rank. The mean is formatted so a
// re-read reproduces the value exactly; an undefined mean (n=0) renders as
// NaN. Any failure is an OUTPUT_WRITE error naming the path.
func (w *CSVWriter) WriteSummary(path string, summaries []ranking.CourseSummary) error {
	w.logger.Info("writing summary CSV",
		slog.String("path", path),
		slog.Int("courses", len(summaries)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewOutputWriteError(path, fmt.Errorf("failed to create directory: %w", err))
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewOutputWriteError(path, err)
	}
	defer file.Close()

	if w.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return apperrors.NewOutputWriteError(path, fmt.Errorf("failed to write BOM: %w", err))
		}
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(summaryHeader); err != nil {
		return apperrors.NewOutputWriteError(path, fmt.Errorf("failed to write header: %w", err))
	}

	for _, s := range summaries {
		row := []string{
			s.CourseName,
			strconv.Itoa(s.N),
			strconv.FormatFloat(s.MeanRank, 'g', -1, 64),
			strconv.Itoa(s.FinalRank),
		}
		if err := writer.Write(row); err != nil {
			return apperrors.NewOutputWriteError(path, fmt.Errorf("failed to write row for %q: %w", s.CourseName, err))
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewOutputWriteError(path, err)
	}

	return nil
}

// ReadSummary reads a summary CSV written by WriteSummary back into course
// summaries, in file order.
func ReadSummary(path string) ([]ranking.CourseSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewInputNotFoundError(path, err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary CSV %s: %w", path, err)
	}

	var summaries []ranking.CourseSummary
	for i, record := range records {
		if i == 0 { // header
			continue
		}
		if len(record) < 4 {
			return nil, fmt.Errorf("summary CSV %s: row %d has %d fields, want 4", path, i, len(record))
		}

		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("summary CSV %s: row %d: invalid n: %w", path, i, err)
		}
		mean, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("summary CSV %s: row %d: invalid mean_rank: %w", path, i, err)
		}
		finalRank, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("summary CSV %s: row %d: invalid final_rank: %w", path, i, err)
		}

		summaries = append(summaries, ranking.CourseSummary{
			CourseName: record[0],
			N:          n,
			MeanRank:   mean,
			FinalRank:  finalRank,
		})
	}

	return summaries, nil
}
