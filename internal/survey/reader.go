package survey

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "surveyrank/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTable loads the spreadsheet at path into a RawTable. The source format
// is chosen by extension: .csv reads as CSV, everything else goes through
// excelize. sheet names the worksheet to read; empty means the workbook's
// first sheet (ignored for CSV).
//
// A missing or unreadable source is the run's only extraction-time failure;
// it surfaces as an INPUT_NOT_FOUND error naming the path.
func ReadTable(path, sheet string) (RawTable, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewInputNotFoundError(path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSV(path)
	}
	return readExcel(path, sheet)
}

func readExcel(path, sheet string) (RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewInputNotFoundError(path, fmt.Errorf("failed to open workbook: %w", err))
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewInputNotFoundError(path, fmt.Errorf("workbook has no sheets"))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewInputNotFoundError(path, fmt.Errorf("failed to read sheet %q: %w", sheet, err))
	}

	return RawTable(rows), nil
}

func readCSV(path string) (RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewInputNotFoundError(path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewInputNotFoundError(path, fmt.Errorf("failed to parse CSV: %w", err))
	}

	return RawTable(records), nil
}
