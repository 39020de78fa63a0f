package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyscope/domain/survey"
)

func fp(v float64) *float64 { return &v }

func TestMappingConverter(t *testing.T) {
	conv := NewMappingConverter(survey.LikertMapping{
		"Strongly Agree":    fp(1),
		"Strongly Disagree": fp(-2),
		"I don't know":      nil,
	})

	tests := []struct {
		name    string
		raw     string
		present bool
		want    float64
	}{
		{"exact", "Strongly Agree", true, 1},
		{"whitespace noise", "  strongly   agree ", true, 1},
		{"case insensitive", "STRONGLY DISAGREE", true, -2},
		{"unmapped", "Banana", true, math.NaN()},
		{"explicit no score", "I don't know", true, math.NaN()},
		{"absent cell", "", false, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conv.Convert(tt.raw, tt.present)
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got))
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEmbeddedScoreConverter(t *testing.T) {
	conv := NewEmbeddedScoreConverter()

	tests := []struct {
		name    string
		raw     string
		present bool
		want    float64
	}{
		{"positive", "Strongly Agree (1)", true, 1},
		{"negative", "Disagree (-2)", true, -2},
		{"fractional", "Neutral (0.5)", true, 0.5},
		{"trailing space", "Agree (2)  ", true, 2},
		{"no score", "Strongly Agree", true, math.NaN()},
		{"score not trailing", "(1) Strongly Agree", true, math.NaN()},
		{"absent cell", "", false, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conv.Convert(tt.raw, tt.present)
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got))
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSelectConverter(t *testing.T) {
	assert.Equal(t, "likert_mapping", SelectConverter(survey.LikertMapping{"Agree": fp(1)}).Name())
	assert.Equal(t, "embedded_score", SelectConverter(nil).Name())
	assert.Equal(t, "embedded_score", SelectConverter(survey.LikertMapping{}).Name())
}

func TestConvertColumns(t *testing.T) {
	table := &survey.Table{
		Headers: []string{"Team", "Q1 "},
		Rows: []survey.Row{
			{"Team": "A", "Q1 ": "Agree"},
			{"Team": "B", "Q1 ": "Nonsense"},
			{"Team": "B"},
		},
	}
	matched, err := MatchSchema(table, survey.Schema{{Name: "Cat", Questions: []string{"Q1"}}})
	require.NoError(t, err)

	conv := NewMappingConverter(survey.LikertMapping{"Agree": fp(1)})
	scores := ConvertColumns(table, matched, conv)

	column, ok := scores["Q1"]
	require.True(t, ok)
	require.Len(t, column, 3)
	assert.Equal(t, 1.0, column[0])
	assert.True(t, math.IsNaN(column[1]))
	assert.True(t, math.IsNaN(column[2]))
}
