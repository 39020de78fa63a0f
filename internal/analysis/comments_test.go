package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyscope/domain/survey"
)

func TestCollectComments(t *testing.T) {
	table := &survey.Table{
		Headers: []string{"Team", "Location", "Leadership  comments", "Other comments"},
		Rows: []survey.Row{
			{"Team": "A", "Location": "NY", "Leadership  comments": "  Manager is great  "},
			{"Team": "B", "Location": "SF", "Leadership  comments": "ok"}, // too short
			{"Team": "B", "Location": "SF", "Leadership  comments": ""},
			{"Team": "A", "Location": "NY", "Leadership  comments": "Needs better 1:1s"},
		},
	}
	matched, err := MatchSchema(table, survey.Schema{{Name: "Leadership", Questions: []string{}}})
	require.NoError(t, err)

	fields := []survey.CommentField{
		{Category: "Leadership", Column: "Leadership comments"}, // whitespace-tolerant
		{Category: "Workload", Column: "Missing column"},        // skipped, not fatal
		{Category: "Empty", Column: "Other comments"},           // no qualifying text
	}

	got := CollectComments(table, matched, fields, "Team", "Location", []int{0, 1, 2, 3})
	require.Len(t, got, 1)

	leadership := got["Leadership"]
	assert.Equal(t, 2, leadership.Count)
	assert.Equal(t, []survey.Comment{
		{Text: "Manager is great", Team: "A", Location: "NY"},
		{Text: "Needs better 1:1s", Team: "A", Location: "NY"},
	}, leadership.Comments)
}

func TestCollectComments_RespectsRowView(t *testing.T) {
	table := &survey.Table{
		Headers: []string{"Team", "Location", "Feedback"},
		Rows: []survey.Row{
			{"Team": "A", "Location": "NY", "Feedback": "Visible comment"},
			{"Team": "B", "Location": "SF", "Feedback": "Filtered out comment"},
		},
	}
	matched, err := MatchSchema(table, survey.Schema{})
	require.NoError(t, err)

	fields := []survey.CommentField{{Category: "General", Column: "Feedback"}}
	got := CollectComments(table, matched, fields, "Team", "Location", []int{0})

	require.Len(t, got, 1)
	assert.Equal(t, 1, got["General"].Count)
	assert.Equal(t, "Visible comment", got["General"].Comments[0].Text)
}
