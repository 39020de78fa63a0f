package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"surveyscope/domain/core"
	"surveyscope/domain/survey"
	"surveyscope/internal/errors"
	"surveyscope/ports"
)

// JSONRenderer writes the machine-readable summary.json artifact.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Name() string { return "json" }

// rankedCategory is one entry of the performance ranking, best first.
type rankedCategory struct {
	Rank         int     `json:"rank"`
	Category     string  `json:"category"`
	AverageScore float64 `json:"average_score"`
}

type jsonMetadata struct {
	RunID             core.RunID     `json:"run_id"`
	Timestamp         core.Timestamp `json:"timestamp"`
	AnalysisFocus     string         `json:"analysis_focus"`
	SelectedTeam      string         `json:"selected_team"`
	SelectedLocation  string         `json:"selected_location"`
	FilteredResponses int            `json:"filtered_responses"`
	TotalResponses    int            `json:"total_responses"`
}

type jsonPerformance struct {
	FilteredAverages      map[string]float64           `json:"filtered_averages"`
	ComparisonWithOverall map[string]survey.Comparison `json:"comparison_with_overall"`
	RankedCategories      []rankedCategory             `json:"ranked_categories"`
}

type jsonSummary struct {
	AnalysisMetadata         jsonMetadata                                 `json:"analysis_metadata"`
	CategoryPerformance      jsonPerformance                              `json:"category_performance"`
	DetailedQuestionAnalysis map[string]map[string]survey.QuestionDetail  `json:"detailed_question_analysis"`
	CommentsByCategory       map[string]survey.CategoryComments           `json:"comments_by_category,omitempty"`
	Recommendations          []string                                     `json:"recommendations"`
	MissingQuestions         []survey.MissingQuestion                     `json:"missing_questions,omitempty"`
}

// Render implements ports.Renderer.
func (r *JSONRenderer) Render(ctx context.Context, in ports.RenderInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b := in.Bundle
	sel := b.Selector()

	summary := jsonSummary{
		AnalysisMetadata: jsonMetadata{
			RunID:             b.Metadata.RunID,
			Timestamp:         b.Metadata.GeneratedAt,
			AnalysisFocus:     sel.TeamDisplay() + " + " + sel.LocationDisplay(),
			SelectedTeam:      b.Metadata.SelectedTeam,
			SelectedLocation:  b.Metadata.SelectedLocation,
			FilteredResponses: b.Metadata.FilteredResponses,
			TotalResponses:    b.Metadata.TotalResponses,
		},
		CategoryPerformance: jsonPerformance{
			FilteredAverages:      b.CategoryPerformance,
			ComparisonWithOverall: b.Comparisons,
			RankedCategories:      rankCategories(b.CategoryPerformance),
		},
		DetailedQuestionAnalysis: b.QuestionDetails,
		CommentsByCategory:       b.Comments,
		Recommendations:          in.Recommendations,
		MissingQuestions:         in.Matched.Missing,
	}

	path := filepath.Join(in.OutDir, "summary.json")
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}
	return path, nil
}

// rankCategories orders categories best-first, ties broken by name.
func rankCategories(performance map[string]float64) []rankedCategory {
	ranked := make([]rankedCategory, 0, len(performance))
	for name, score := range performance {
		ranked = append(ranked, rankedCategory{Category: name, AverageScore: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageScore != ranked[j].AverageScore {
			return ranked[i].AverageScore > ranked[j].AverageScore
		}
		return ranked[i].Category < ranked[j].Category
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
