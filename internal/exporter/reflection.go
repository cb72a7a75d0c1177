package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "surveyrank/internal/errors"
)

// WriteReflection writes the fixed reflection prompts as a Markdown bullet
// list. The prompt set comes from configuration; nothing here is computed
// from the survey data.
func WriteReflection(path string, prompts []string) error {
	var b strings.Builder
	for _, prompt := range prompts {
		fmt.Fprintf(&b, "- %s\n", prompt)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewOutputWriteError(path, fmt.Errorf("failed to create directory: %w", err))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return apperrors.NewOutputWriteError(path, err)
	}

	return nil
}
