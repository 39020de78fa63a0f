package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"surveyscope/domain/core"
	"surveyscope/domain/survey"
)

// AssembleInput carries everything needed to compute one statistics bundle.
type AssembleInput struct {
	Table          *survey.Table
	Scores         survey.ScoreSet
	Matched        survey.MatchedSchema
	CommentFields  []survey.CommentField
	TeamColumn     string // original header, already validated
	LocationColumn string
	Selector       survey.Selector
	FilteredIdx    []int
	Thresholds     survey.Thresholds
}

// categoryResult is the per-category slice of the bundle, computed
// independently per category.
type categoryResult struct {
	name       string
	score      float64
	scoreOK    bool
	comparison survey.Comparison
	hasColumns bool
	details    map[string]survey.QuestionDetail
}

// Assemble computes the immutable statistics bundle for one run. Category
// computations share no state, so they run in parallel with a final merge;
// the context cancels the remaining categories on interruption.
func Assemble(ctx context.Context, in AssembleInput) (*survey.Bundle, error) {
	allIdx := in.Table.AllIndices()

	results := make([]categoryResult, len(in.Matched.Categories))
	g, ctx := errgroup.WithContext(ctx)

	for i, cat := range in.Matched.Categories {
		i, cat := i, cat
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := categoryResult{name: cat.Name}
			if len(cat.Columns) > 0 {
				res.hasColumns = true
				res.score, res.scoreOK = CategoryScore(in.Scores, cat.Columns, in.FilteredIdx)
				res.comparison = Compare(in.Scores, cat.Columns, in.FilteredIdx, allIdx, in.Thresholds)
				res.details = QuestionDetails(in.Scores, cat.Columns, in.FilteredIdx, allIdx)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := &survey.Bundle{
		Metadata: survey.Metadata{
			RunID:             core.NewRunID(),
			SelectedTeam:      in.Selector.Team,
			SelectedLocation:  in.Selector.Location,
			FilteredResponses: len(in.FilteredIdx),
			TotalResponses:    len(in.Table.Rows),
			GeneratedAt:       core.Now(),
		},
		CategoryPerformance: make(map[string]float64),
		Comparisons:         make(map[string]survey.Comparison),
		QuestionDetails:     make(map[string]map[string]survey.QuestionDetail),
	}

	for _, res := range results {
		if !res.hasColumns {
			continue
		}
		if res.scoreOK {
			bundle.CategoryPerformance[res.name] = res.score
		}
		bundle.Comparisons[res.name] = res.comparison
		if len(res.details) > 0 {
			bundle.QuestionDetails[res.name] = res.details
		}
	}

	bundle.Comments = CollectComments(in.Table, in.Matched, in.CommentFields, in.TeamColumn, in.LocationColumn, in.FilteredIdx)

	return bundle, nil
}
