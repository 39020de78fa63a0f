package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"surveyscope/domain/survey"
)

func filterTable() *survey.Table {
	return &survey.Table{
		Headers: []string{"Team", "Location"},
		Rows: []survey.Row{
			{"Team": "A", "Location": "NY"},
			{"Team": "A", "Location": "SF"},
			{"Team": "B", "Location": "NY"},
			{"Team": "B", "Location": "SF"},
		},
	}
}

func TestFilterRows(t *testing.T) {
	table := filterTable()

	tests := []struct {
		name string
		sel  survey.Selector
		want []int
	}{
		{"both wildcards", survey.Selector{Team: survey.Wildcard, Location: survey.Wildcard}, []int{0, 1, 2, 3}},
		{"team only", survey.Selector{Team: "A", Location: survey.Wildcard}, []int{0, 1}},
		{"location only", survey.Selector{Team: survey.Wildcard, Location: "NY"}, []int{0, 2}},
		{"both specific", survey.Selector{Team: "B", Location: "SF"}, []int{3}},
		{"no match", survey.Selector{Team: "C", Location: "NY"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterRows(table, "Team", "Location", tt.sel))
		})
	}
}

func TestFilterRows_MissingCellNeverMatchesSpecificValue(t *testing.T) {
	table := &survey.Table{
		Headers: []string{"Team", "Location"},
		Rows: []survey.Row{
			{"Location": "NY"},
			{"Team": "A", "Location": "NY"},
		},
	}

	idx := FilterRows(table, "Team", "Location", survey.Selector{Team: "A", Location: survey.Wildcard})
	assert.Equal(t, []int{1}, idx)
}
