package testkit

import (
	"context"
	"fmt"
	"math/rand"

	"surveyscope/domain/survey"
)

// Likert scale used by the synthetic generator, worst to best.
var likertScale = []struct {
	Text  string
	Score float64
}{
	{"Strongly Disagree", -2},
	{"Disagree", -1},
	{"Neutral", 0},
	{"Agree", 1},
	{"Strongly Agree", 2},
}

// Mapping returns the Likert mapping matching the synthetic responses,
// including an explicit no-score entry.
func Mapping() survey.LikertMapping {
	mapping := make(survey.LikertMapping, len(likertScale)+1)
	for _, e := range likertScale {
		score := e.Score
		mapping[e.Text] = &score
	}
	mapping["I don't know"] = nil
	return mapping
}

// Schema returns a small two-category schema whose questions match the
// columns produced by GenerateTable.
func Schema() survey.Schema {
	return survey.Schema{
		{Name: "Leadership", Questions: []string{
			"My manager communicates clearly",
			"My manager supports my development",
		}},
		{Name: "Workload", Questions: []string{
			"My workload is manageable",
		}},
	}
}

// CommentFields returns the comment-column mapping matching GenerateTable.
func CommentFields() []survey.CommentField {
	return []survey.CommentField{
		{Category: "Leadership", Column: "Any comments about leadership?"},
	}
}

// GenerateConfig controls synthetic table generation.
type GenerateConfig struct {
	Rows      int
	Seed      int64
	Teams     []string
	Locations []string

	// DontKnowRate is the fraction of responses answered "I don't know".
	DontKnowRate float64
}

// DefaultGenerateConfig returns a deterministic medium-size configuration.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Rows:         40,
		Seed:         42,
		Teams:        []string{"Platform", "Product", "Support"},
		Locations:    []string{"Berlin", "Lisbon"},
		DontKnowRate: 0.1,
	}
}

// GenerateTable builds a deterministic synthetic response table matching
// Schema and Mapping. Question columns carry deliberate whitespace noise so
// schema matching is exercised end to end.
func GenerateTable(cfg GenerateConfig) *survey.Table {
	rng := rand.New(rand.NewSource(cfg.Seed))

	headers := []string{
		"Team",
		"Location",
		"My manager  communicates clearly", // double space on purpose
		"My manager supports my development",
		"My workload is manageable ",
		"Any comments about leadership?",
	}

	rows := make([]survey.Row, 0, cfg.Rows)
	for i := 0; i < cfg.Rows; i++ {
		row := survey.Row{
			"Team":     cfg.Teams[i%len(cfg.Teams)],
			"Location": cfg.Locations[i%len(cfg.Locations)],
		}
		for _, q := range headers[2:5] {
			if rng.Float64() < cfg.DontKnowRate {
				row[q] = "I don't know"
			} else {
				row[q] = likertScale[rng.Intn(len(likertScale))].Text
			}
		}
		if i%5 == 0 {
			row["Any comments about leadership?"] = fmt.Sprintf("Synthetic comment %d", i)
		}
		rows = append(rows, row)
	}

	return &survey.Table{Headers: headers, Rows: rows}
}

// StaticLoader implements ports.TableLoader over a fixed in-memory table.
type StaticLoader struct {
	Table *survey.Table
	Err   error
}

// Load implements ports.TableLoader.
func (l StaticLoader) Load(ctx context.Context) (*survey.Table, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Table, nil
}
