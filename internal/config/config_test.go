package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Survey.LabelRow)
	assert.Equal(t, 3, cfg.Survey.DataStartRow)
	assert.Equal(t, "L", cfg.Survey.ColumnStart)
	assert.Equal(t, "S", cfg.Survey.ColumnEnd)
	assert.Equal(t, " - ", cfg.Survey.LabelDelimiter)
	assert.Equal(t, "label_row", cfg.Survey.NameSource)
	assert.True(t, cfg.Survey.DropBlankRows)
	assert.Equal(t, "rank_last", cfg.Survey.EmptyCoursePolicy)

	assert.Equal(t, "course_rankings.csv", cfg.Output.SummaryFile)
	assert.Equal(t, "rank_order.png", cfg.Output.ChartFile)
	assert.Equal(t, "reflection.md", cfg.Output.ReflectionFile)
	assert.Equal(t, DefaultReflectionPrompts, cfg.Output.ReflectionPrompts)

	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
survey:
  label_row: 0
  data_start_row: 2
  column_start: B
  column_end: E
  drop_blank_rows: false
  empty_course_policy: exclude
output:
  chart_title: Custom Title
  reflection_prompts:
    - First prompt
    - Second prompt
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Survey.LabelRow)
	assert.Equal(t, 2, cfg.Survey.DataStartRow)
	assert.Equal(t, "B", cfg.Survey.ColumnStart)
	assert.Equal(t, "E", cfg.Survey.ColumnEnd)
	assert.False(t, cfg.Survey.DropBlankRows)
	assert.Equal(t, "exclude", cfg.Survey.EmptyCoursePolicy)
	assert.Equal(t, "Custom Title", cfg.Output.ChartTitle)
	assert.Equal(t, []string{"First prompt", "Second prompt"}, cfg.Output.ReflectionPrompts)

	// Keys the file omits keep their defaults.
	assert.Equal(t, " - ", cfg.Survey.LabelDelimiter)
	assert.Equal(t, "course_rankings.csv", cfg.Output.SummaryFile)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RANKORDER_SURVEY_COLUMN_START", "C")
	t.Setenv("RANKORDER_SURVEY_COLUMN_END", "F")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "C", cfg.Survey.ColumnStart)
	assert.Equal(t, "F", cfg.Survey.ColumnEnd)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "data start before label row",
			content: `
survey:
  label_row: 5
  data_start_row: 2
`,
		},
		{
			name: "bad empty course policy",
			content: `
survey:
  empty_course_policy: drop_silently
`,
		},
		{
			name: "static source without columns",
			content: `
survey:
  name_source: static
`,
		},
		{
			name: "non alpha column",
			content: `
survey:
  column_start: "7"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_StaticColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
survey:
  name_source: static
  static_columns:
    - column: L
      name: Financial Reporting
    - column: M
      name: Audit
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Survey.StaticColumns, 2)
	assert.Equal(t, "L", cfg.Survey.StaticColumns[0].Column)
	assert.Equal(t, "Financial Reporting", cfg.Survey.StaticColumns[0].Name)
}
