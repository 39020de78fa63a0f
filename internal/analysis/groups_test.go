package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyscope/domain/survey"
)

func TestAvailableGroups(t *testing.T) {
	table := &survey.Table{
		Headers: []string{"Team", "Location"},
		Rows: []survey.Row{
			{"Team": "Sales", "Location": "NY"},
			{"Team": "Sales", "Location": "SF"},
			{"Team": "Eng", "Location": "NY"},
			{"Location": "NY"}, // null team skipped
		},
	}

	info := AvailableGroups(table, "Team", "Location")
	assert.Equal(t, []survey.GroupCount{
		{Name: "Eng", Count: 1},
		{Name: "Sales", Count: 2},
	}, info.Teams)
	assert.Equal(t, []survey.GroupCount{
		{Name: "NY", Count: 3},
		{Name: "SF", Count: 1},
	}, info.Locations)
}

func TestGroupScores(t *testing.T) {
	table := &survey.Table{
		Headers: []string{"Team", "Q1"},
		Rows: []survey.Row{
			{"Team": "A", "Q1": "x"},
			{"Team": "A", "Q1": "x"},
			{"Team": "B", "Q1": "x"},
			{"Team": "C", "Q1": "x"},
		},
	}
	matched, err := MatchSchema(table, survey.Schema{{Name: "Cat", Questions: []string{"Q1"}}})
	require.NoError(t, err)

	scores := survey.ScoreSet{"Q1": {1, 2, -1, math.NaN()}}
	got := GroupScores(table, scores, matched, "Team", []int{0, 1, 2, 3})

	// Sorted by score descending; C has no defined score and falls back to 0.
	assert.Equal(t, []GroupScore{
		{Name: "A", Score: 1.5},
		{Name: "C", Score: 0},
		{Name: "B", Score: -1},
	}, got)
}
