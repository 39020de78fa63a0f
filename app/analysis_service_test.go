package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyscope/domain/survey"
	"surveyscope/internal/config"
	"surveyscope/internal/errors"
	"surveyscope/internal/testkit"
)

func testConfig() *config.Config {
	return &config.Config{
		Columns: config.ColumnsConfig{
			TeamColumn:     "Team",
			LocationColumn: "Location",
		},
		Categories:    testkit.Schema(),
		CommentFields: testkit.CommentFields(),
		LikertMapping: testkit.Mapping(),
		Analysis: config.AnalysisConfig{
			SignificantDifferenceThreshold: 0.2,
			SimilarThreshold:               0.1,
		},
	}
}

func TestAnalysisService_Run(t *testing.T) {
	table := testkit.GenerateTable(testkit.DefaultGenerateConfig())
	svc := NewAnalysisService(testkit.StaticLoader{Table: table}, nil)

	result, err := svc.Run(context.Background(), testConfig(),
		survey.Selector{Team: "Platform", Location: survey.Wildcard})
	require.NoError(t, err)

	b := result.Bundle
	assert.Equal(t, "Platform", b.Metadata.SelectedTeam)
	assert.Equal(t, survey.Wildcard, b.Metadata.SelectedLocation)
	assert.Equal(t, 40, b.Metadata.TotalResponses)

	// 40 rows round-robined over 3 teams puts Platform on 14 of them.
	assert.Equal(t, 14, b.Metadata.FilteredResponses)

	// Whitespace-noisy headers still match every configured question.
	assert.Empty(t, result.Matched.Missing)
	assert.Contains(t, b.Comparisons, "Leadership")
	assert.Contains(t, b.Comparisons, "Workload")
	assert.Contains(t, b.QuestionDetails["Leadership"], "My manager communicates clearly")

	assert.NotEmpty(t, result.Recommendations)

	// Group inventory covers the synthetic teams and locations.
	assert.Len(t, result.GroupInfo.Teams, 3)
	assert.Len(t, result.GroupInfo.Locations, 2)
	assert.Equal(t, "Team", result.TeamColumn)
	assert.Equal(t, "Location", result.LocationColumn)
}

func TestAnalysisService_RunNoMatches(t *testing.T) {
	table := testkit.GenerateTable(testkit.DefaultGenerateConfig())
	svc := NewAnalysisService(testkit.StaticLoader{Table: table}, nil)

	result, err := svc.Run(context.Background(), testConfig(),
		survey.Selector{Team: "Ghost", Location: "Nowhere"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Bundle.Metadata.FilteredResponses)
	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "No data available")
}

func TestAnalysisService_MissingGroupColumn(t *testing.T) {
	table := testkit.GenerateTable(testkit.DefaultGenerateConfig())
	svc := NewAnalysisService(testkit.StaticLoader{Table: table}, nil)

	cfg := testConfig()
	cfg.Columns.TeamColumn = "Department"

	_, err := svc.Run(context.Background(), cfg,
		survey.Selector{Team: survey.Wildcard, Location: survey.Wildcard})
	require.Error(t, err)
	assert.Equal(t, errors.CodeColumnMissing, errors.GetCode(err))
}

func TestAnalysisService_LoaderErrorPropagates(t *testing.T) {
	svc := NewAnalysisService(testkit.StaticLoader{Err: errors.NotFound("data file")}, nil)

	_, err := svc.Run(context.Background(), testConfig(),
		survey.Selector{Team: survey.Wildcard, Location: survey.Wildcard})
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
