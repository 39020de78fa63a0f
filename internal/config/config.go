package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"surveyscope/domain/survey"
	"surveyscope/internal/errors"
)

// Config is the validated run configuration loaded from YAML.
type Config struct {
	DataSource    DataSourceConfig
	Columns       ColumnsConfig
	Categories    survey.Schema
	CommentFields []survey.CommentField
	LikertMapping survey.LikertMapping
	Analysis      AnalysisConfig
	Output        OutputConfig
}

// DataSourceConfig locates the response table.
type DataSourceConfig struct {
	FilePath  string
	SheetName string
}

// ColumnsConfig names the two mandatory grouping columns.
type ColumnsConfig struct {
	TeamColumn     string
	LocationColumn string
}

// AnalysisConfig holds the numeric thresholds with defaults applied.
type AnalysisConfig struct {
	SignificantDifferenceThreshold float64
	SimilarThreshold               float64
	MaxIndividualResponses         int
}

// OutputConfig holds report output settings with defaults applied.
type OutputConfig struct {
	Directory        string
	IncludeTimestamp bool
}

// Thresholds converts the analysis settings into the scoring engine's form.
func (c *Config) Thresholds() survey.Thresholds {
	return survey.Thresholds{
		Significant: c.Analysis.SignificantDifferenceThreshold,
		Similar:     c.Analysis.SimilarThreshold,
	}
}

// rawConfig mirrors the YAML document. Categories and comment fields use
// yaml.MapSlice so the author's ordering survives into the reports.
type rawConfig struct {
	DataSource *struct {
		FilePath  string `yaml:"file_path"`
		SheetName string `yaml:"sheet_name"`
	} `yaml:"data_source"`
	Columns *struct {
		TeamColumn     string `yaml:"team_column"`
		LocationColumn string `yaml:"location_column"`
	} `yaml:"columns"`
	Categories    yaml.MapSlice       `yaml:"categories"`
	CommentFields yaml.MapSlice       `yaml:"comment_fields"`
	LikertMapping map[string]*float64 `yaml:"likert_mapping"`
	Analysis      *struct {
		SignificantDifferenceThreshold *float64 `yaml:"significant_difference_threshold"`
		SimilarThreshold               *float64 `yaml:"similar_threshold"`
		MaxIndividualResponses         *int     `yaml:"max_individual_responses"`
	} `yaml:"analysis"`
	Output *struct {
		Directory        string `yaml:"directory"`
		IncludeTimestamp *bool  `yaml:"include_timestamp"`
	} `yaml:"output"`
}

// Load reads, parses and validates a YAML configuration file. Loading never
// touches the filesystem beyond the read; default-config creation is a
// separate, explicit operation (WriteDefault).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("configuration file %s", path))
		}
		return nil, errors.Wrapf(err, "failed to read configuration file %s", path)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid(err.Error()), "failed to parse YAML configuration")
	}

	cfg, err := build(&raw)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func build(raw *rawConfig) (*Config, error) {
	if raw.DataSource == nil {
		return nil, errors.ConfigInvalid("missing required configuration section: data_source")
	}
	if raw.Columns == nil {
		return nil, errors.ConfigInvalid("missing required configuration section: columns")
	}
	if len(raw.Categories) == 0 {
		return nil, errors.ConfigInvalid("missing required configuration section: categories")
	}
	if raw.DataSource.FilePath == "" {
		return nil, errors.ConfigInvalid("data_source.file_path is required")
	}
	if raw.Columns.TeamColumn == "" {
		return nil, errors.ConfigInvalid("missing required column configuration: team_column")
	}
	if raw.Columns.LocationColumn == "" {
		return nil, errors.ConfigInvalid("missing required column configuration: location_column")
	}

	schema, err := buildSchema(raw.Categories)
	if err != nil {
		return nil, err
	}

	commentFields, err := buildCommentFields(raw.CommentFields)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataSource: DataSourceConfig{
			FilePath:  raw.DataSource.FilePath,
			SheetName: raw.DataSource.SheetName,
		},
		Columns: ColumnsConfig{
			TeamColumn:     raw.Columns.TeamColumn,
			LocationColumn: raw.Columns.LocationColumn,
		},
		Categories:    schema,
		CommentFields: commentFields,
		LikertMapping: survey.LikertMapping(raw.LikertMapping),
		Analysis: AnalysisConfig{
			SignificantDifferenceThreshold: 0.2,
			SimilarThreshold:               0.1,
			MaxIndividualResponses:         10,
		},
		Output: OutputConfig{
			Directory:        "output",
			IncludeTimestamp: true,
		},
	}

	if raw.Analysis != nil {
		if v := raw.Analysis.SignificantDifferenceThreshold; v != nil {
			cfg.Analysis.SignificantDifferenceThreshold = *v
		}
		if v := raw.Analysis.SimilarThreshold; v != nil {
			cfg.Analysis.SimilarThreshold = *v
		}
		if v := raw.Analysis.MaxIndividualResponses; v != nil {
			cfg.Analysis.MaxIndividualResponses = *v
		}
	}
	if raw.Output != nil {
		if raw.Output.Directory != "" {
			cfg.Output.Directory = raw.Output.Directory
		}
		if raw.Output.IncludeTimestamp != nil {
			cfg.Output.IncludeTimestamp = *raw.Output.IncludeTimestamp
		}
	}

	return cfg, nil
}

func buildSchema(items yaml.MapSlice) (survey.Schema, error) {
	schema := make(survey.Schema, 0, len(items))
	for _, item := range items {
		name, ok := item.Key.(string)
		if !ok {
			return nil, errors.ConfigInvalid(fmt.Sprintf("category name must be a string, got %v", item.Key))
		}

		list, ok := item.Value.([]interface{})
		if !ok {
			return nil, errors.ConfigInvalid(fmt.Sprintf("category %q must map to a list of questions", name))
		}

		questions := make([]string, 0, len(list))
		for _, q := range list {
			text, ok := q.(string)
			if !ok {
				return nil, errors.ConfigInvalid(fmt.Sprintf("question in category %q must be a string, got %v", name, q))
			}
			questions = append(questions, text)
		}

		schema = append(schema, survey.Category{Name: name, Questions: questions})
	}
	return schema, nil
}

func buildCommentFields(items yaml.MapSlice) ([]survey.CommentField, error) {
	fields := make([]survey.CommentField, 0, len(items))
	for _, item := range items {
		category, ok := item.Key.(string)
		if !ok {
			return nil, errors.ConfigInvalid(fmt.Sprintf("comment field category must be a string, got %v", item.Key))
		}
		column, ok := item.Value.(string)
		if !ok {
			return nil, errors.ConfigInvalid(fmt.Sprintf("comment field for %q must name a column", category))
		}
		fields = append(fields, survey.CommentField{Category: category, Column: column})
	}
	return fields, nil
}
