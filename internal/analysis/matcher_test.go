package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyscope/domain/survey"
	"surveyscope/internal/errors"
)

func testTable(headers ...string) *survey.Table {
	return &survey.Table{Headers: headers, Rows: []survey.Row{{}}}
}

func TestMatchSchema_WhitespaceTolerant(t *testing.T) {
	table := testTable("Team", "My manager  communicates clearly", "Workload is fair")
	schema := survey.Schema{
		{Name: "Leadership", Questions: []string{"My manager communicates clearly"}},
		{Name: "Workload", Questions: []string{" Workload is fair "}},
	}

	matched, err := MatchSchema(table, schema)
	require.NoError(t, err)

	require.Len(t, matched.Categories, 2)
	assert.Equal(t, []string{"My manager communicates clearly"}, matched.Categories[0].Columns)
	assert.Equal(t, []string{"Workload is fair"}, matched.Categories[1].Columns)
	assert.Empty(t, matched.Missing)

	// Normalized names resolve back to the original headers.
	orig, ok := matched.ResolveColumn("My manager communicates clearly")
	require.True(t, ok)
	assert.Equal(t, "My manager  communicates clearly", orig)
}

func TestMatchSchema_EveryQuestionMatchedOrMissingExactlyOnce(t *testing.T) {
	table := testTable("Team", "Q1", "Q2")
	schema := survey.Schema{
		{Name: "A", Questions: []string{"Q1", "Nowhere"}},
		{Name: "B", Questions: []string{"Q2", "Also nowhere"}},
	}

	matched, err := MatchSchema(table, schema)
	require.NoError(t, err)

	total := 0
	for _, c := range matched.Categories {
		total += len(c.Columns)
	}
	total += len(matched.Missing)
	assert.Equal(t, schema.QuestionCount(), total)

	assert.Equal(t, []survey.MissingQuestion{
		{Category: "A", Question: "Nowhere"},
		{Category: "B", Question: "Also nowhere"},
	}, matched.Missing)
}

func TestMatchSchema_EmptyCategoryRetained(t *testing.T) {
	table := testTable("Team")
	schema := survey.Schema{{Name: "Ghost", Questions: []string{"Missing question"}}}

	matched, err := MatchSchema(table, schema)
	require.NoError(t, err)

	cat, ok := matched.Category("Ghost")
	require.True(t, ok)
	assert.Empty(t, cat.Columns)
	assert.Len(t, matched.Missing, 1)
}

func TestMatchSchema_CollisionIsFatal(t *testing.T) {
	table := testTable("A  B", "A B")

	_, err := MatchSchema(table, survey.Schema{{Name: "X", Questions: []string{"A B"}}})
	require.Error(t, err)
	assert.Equal(t, errors.CodeColumnConflict, errors.GetCode(err))
}

func TestValidateColumns(t *testing.T) {
	table := testTable("Team ", "Location", "Q1")
	matched, err := MatchSchema(table, survey.Schema{{Name: "A", Questions: []string{"Q1"}}})
	require.NoError(t, err)

	team, location, err := ValidateColumns(matched, "Team", "Location")
	require.NoError(t, err)
	assert.Equal(t, "Team ", team)
	assert.Equal(t, "Location", location)

	_, _, err = ValidateColumns(matched, "Team", "Office")
	require.Error(t, err)
	assert.Equal(t, errors.CodeColumnMissing, errors.GetCode(err))
}
