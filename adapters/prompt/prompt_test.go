package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyscope/domain/survey"
)

func groupInfo() survey.GroupInfo {
	return survey.GroupInfo{
		Teams: []survey.GroupCount{
			{Name: "Eng", Count: 12},
			{Name: "Sales", Count: 8},
		},
		Locations: []survey.GroupCount{
			{Name: "NY", Count: 15},
			{Name: "SF", Count: 5},
		},
	}
}

func TestConsoleSelector_PicksValues(t *testing.T) {
	var out bytes.Buffer
	sel, err := NewConsoleSelector(strings.NewReader("2\n1\n"), &out).Select(groupInfo())
	require.NoError(t, err)

	assert.Equal(t, survey.Selector{Team: "Sales", Location: "NY"}, sel)
	assert.Contains(t, out.String(), "1. Eng (12 responses)")
	assert.Contains(t, out.String(), "3. All Teams")
}

func TestConsoleSelector_AllEntriesMapToWildcard(t *testing.T) {
	var out bytes.Buffer
	sel, err := NewConsoleSelector(strings.NewReader("3\n3\n"), &out).Select(groupInfo())
	require.NoError(t, err)

	assert.Equal(t, survey.Selector{Team: survey.Wildcard, Location: survey.Wildcard}, sel)
}

func TestConsoleSelector_RetriesOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	sel, err := NewConsoleSelector(strings.NewReader("banana\n9\n1\n3\n"), &out).Select(groupInfo())
	require.NoError(t, err)

	assert.Equal(t, survey.Selector{Team: "Eng", Location: survey.Wildcard}, sel)
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.Contains(t, out.String(), "Please enter a number between 1 and 3.")
}

func TestConsoleSelector_InputClosed(t *testing.T) {
	var out bytes.Buffer
	_, err := NewConsoleSelector(strings.NewReader(""), &out).Select(groupInfo())
	require.Error(t, err)
}

func TestConsoleSelector_EmptyDimensionDefaultsToWildcard(t *testing.T) {
	var out bytes.Buffer
	sel, err := NewConsoleSelector(strings.NewReader(""), &out).Select(survey.GroupInfo{})
	require.NoError(t, err)

	assert.Equal(t, survey.Selector{Team: survey.Wildcard, Location: survey.Wildcard}, sel)
}

func TestStaticSelector(t *testing.T) {
	want := survey.Selector{Team: "Eng", Location: survey.Wildcard}
	got, err := StaticSelector{Selector: want}.Select(groupInfo())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
