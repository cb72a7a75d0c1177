package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Survey  SurveyConfig  `yaml:"survey" envconfig:"SURVEY"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stderr" validate:"oneof=stderr stdout file"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/rankorder.log"`
}

// SurveyConfig describes the fixed spreadsheet template: where the course
// labels live, where respondent data begins, and which column band holds
// the rank values. Indices are zero-based; columns use spreadsheet letters.
type SurveyConfig struct {
	// Sheet is the worksheet holding the rank-order question. Empty means
	// the workbook's first sheet. Ignored for CSV sources.
	Sheet string `yaml:"sheet" envconfig:"SHEET"`

	// LabelRow is the row carrying the course labels (zero-based).
	LabelRow int `yaml:"label_row" envconfig:"LABEL_ROW" default:"1" validate:"gte=0"`

	// DataStartRow is the first respondent row (zero-based). Rows before it,
	// including the label row, never contribute rank values.
	DataStartRow int `yaml:"data_start_row" envconfig:"DATA_START_ROW" default:"3" validate:"gte=0,gtfield=LabelRow"`

	// ColumnStart and ColumnEnd bound the contiguous band of rank columns,
	// inclusive, in spreadsheet column letters.
	ColumnStart string `yaml:"column_start" envconfig:"COLUMN_START" default:"L" validate:"required,alpha"`
	ColumnEnd   string `yaml:"column_end" envconfig:"COLUMN_END" default:"S" validate:"required,alpha"`

	// LabelDelimiter separates a course code from its description inside a
	// label cell ("ACC 200 - Audit"). The derived name is the part after the
	// last occurrence.
	LabelDelimiter string `yaml:"label_delimiter" envconfig:"LABEL_DELIMITER" default:" - "`

	// NameSource selects the course-identity strategy: "label_row" derives
	// names from the label row, "static" uses StaticColumns.
	NameSource string `yaml:"name_source" envconfig:"NAME_SOURCE" default:"label_row" validate:"oneof=label_row static"`

	// StaticColumns maps column letters to course names when NameSource is
	// "static". Order is irrelevant; column order in the sheet governs.
	StaticColumns []StaticColumn `yaml:"static_columns" ignored:"true"`

	// DropBlankRows removes respondent rows where every rank column is
	// absent before counting.
	DropBlankRows bool `yaml:"drop_blank_rows" envconfig:"DROP_BLANK_ROWS" default:"true"`

	// EmptyCoursePolicy decides what happens to a course with zero present
	// responses: "rank_last" keeps it, sorted after every real mean;
	// "exclude" omits it from the summary entirely.
	EmptyCoursePolicy string `yaml:"empty_course_policy" envconfig:"EMPTY_COURSE_POLICY" default:"rank_last" validate:"oneof=rank_last exclude"`
}

// StaticColumn binds one spreadsheet column letter to a course name.
type StaticColumn struct {
	Column string `yaml:"column" validate:"required,alpha"`
	Name   string `yaml:"name" validate:"required"`
}

// OutputConfig names the emitted artifacts and their presentation text.
type OutputConfig struct {
	SummaryFile    string `yaml:"summary_file" envconfig:"SUMMARY_FILE" default:"course_rankings.csv" validate:"required"`
	ChartFile      string `yaml:"chart_file" envconfig:"CHART_FILE" default:"rank_order.png" validate:"required"`
	ReflectionFile string `yaml:"reflection_file" envconfig:"REFLECTION_FILE" default:"reflection.md" validate:"required"`

	ChartTitle string `yaml:"chart_title" envconfig:"CHART_TITLE" default:"Course Benefit Ranking: mean rank (1 = most beneficial, lower is better)"`

	// ReflectionPrompts is the fixed set of open-ended questions written to
	// ReflectionFile. Content is configuration, not computed.
	ReflectionPrompts []string `yaml:"reflection_prompts" ignored:"true"`
}

// DefaultReflectionPrompts are written when the config file supplies none.
var DefaultReflectionPrompts = []string{
	"What changed from Project 1 to this workflow?",
	"Where is the control now?",
	"What would you do next if you had one more week?",
	"Identify one accounting application of this workflow from another class you have taken or are taking. Be specific.",
}

// Load loads configuration from struct-tag defaults, RANKORDER_* environment
// variables, and an optional YAML file, in that order of precedence (the
// file wins, since it is named explicitly per run). configPath may be empty,
// in which case only defaults and env apply.
func Load(configPath string) (*Config, error) {
	var cfg Config

	// Struct-tag defaults via envconfig, before any file overlay.
	if err := envconfig.Process("RANKORDER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configPath != "" {
		// Unmarshal the file over the defaulted struct so omitted keys keep
		// their defaults. The file is named explicitly per run, so its
		// values win over the environment.
		if err := loadFromFile(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if len(cfg.Output.ReflectionPrompts) == 0 {
		cfg.Output.ReflectionPrompts = DefaultReflectionPrompts
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays a YAML config file onto cfg. Keys the file omits
// keep whatever cfg already holds.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// validate checks the configuration with struct tags plus the cross-field
// rules the tags cannot express.
func (c *Config) validate() error {
	v := validator.New()

	// Use YAML tag names in error messages so they match the config file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.Struct(c); err != nil {
		return err
	}

	if c.Survey.NameSource == "static" && len(c.Survey.StaticColumns) == 0 {
		return fmt.Errorf("name_source is %q but static_columns is empty", c.Survey.NameSource)
	}

	return nil
}
