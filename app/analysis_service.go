package app

import (
	"context"

	"surveyscope/domain/survey"
	"surveyscope/internal"
	"surveyscope/internal/analysis"
	"surveyscope/internal/config"
	"surveyscope/ports"
)

// AnalysisService runs the full scoring pipeline: load, match, convert,
// filter, score, assemble, recommend. Renderers consume the result
// separately; the service itself writes nothing.
type AnalysisService struct {
	loader ports.TableLoader
	log    *internal.Logger
}

// NewAnalysisService creates the pipeline service.
func NewAnalysisService(loader ports.TableLoader, log *internal.Logger) *AnalysisService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &AnalysisService{loader: loader, log: log}
}

// AnalysisResult is the complete output of one pipeline run, everything
// the report renderers need.
type AnalysisResult struct {
	Bundle          *survey.Bundle
	Recommendations []string
	Matched         survey.MatchedSchema
	GroupInfo       survey.GroupInfo
	Table           *survey.Table
	Scores          survey.ScoreSet
	TeamColumn      string // original header, resolved
	LocationColumn  string
}

// RenderInput packages the result for one renderer.
func (r *AnalysisResult) RenderInput(cfg *config.Config, outDir string) ports.RenderInput {
	return ports.RenderInput{
		Bundle:          r.Bundle,
		Schema:          cfg.Categories,
		Matched:         r.Matched,
		Recommendations: r.Recommendations,
		Table:           r.Table,
		Scores:          r.Scores,
		TeamColumn:      r.TeamColumn,
		LocationColumn:  r.LocationColumn,
		MaxComments:     cfg.Analysis.MaxIndividualResponses,
		OutDir:          outDir,
	}
}

// Prepare loads the table and runs every stage that does not depend on the
// group selection: column validation, schema matching and Likert
// conversion. The interactive prompt needs the group inventory, so the
// pipeline splits here.
func (s *AnalysisService) Prepare(ctx context.Context, cfg *config.Config) (*AnalysisResult, error) {
	table, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched, err := analysis.MatchSchema(table, cfg.Categories)
	if err != nil {
		return nil, err
	}

	teamCol, locationCol, err := analysis.ValidateColumns(matched, cfg.Columns.TeamColumn, cfg.Columns.LocationColumn)
	if err != nil {
		return nil, err
	}

	if n := len(matched.Missing); n > 0 {
		s.log.Warn("%d questions from config not found in data", n)
		for _, mq := range matched.Missing {
			s.log.Warn("   [%s] %s", mq.Category, mq.Question)
		}
	}

	conv := analysis.SelectConverter(cfg.LikertMapping)
	s.log.Info("Converting %d Likert scale questions grouped into %d categories (strategy: %s)",
		cfg.Categories.QuestionCount()-len(matched.Missing), len(cfg.Categories), conv.Name())
	scores := analysis.ConvertColumns(table, matched, conv)

	return &AnalysisResult{
		Matched:        matched,
		GroupInfo:      analysis.AvailableGroups(table, teamCol, locationCol),
		Table:          table,
		Scores:         scores,
		TeamColumn:     teamCol,
		LocationColumn: locationCol,
	}, nil
}

// Analyze completes a prepared run for one selector: filter, score,
// assemble and derive recommendations. The result is finalized after this
// call; nothing mutates the bundle later.
func (s *AnalysisService) Analyze(ctx context.Context, cfg *config.Config, prepared *AnalysisResult, sel survey.Selector) (*AnalysisResult, error) {
	filteredIdx := analysis.FilterRows(prepared.Table, prepared.TeamColumn, prepared.LocationColumn, sel)
	s.log.Info("Selector %s + %s matched %d of %d responses",
		sel.TeamDisplay(), sel.LocationDisplay(), len(filteredIdx), len(prepared.Table.Rows))

	bundle, err := analysis.Assemble(ctx, analysis.AssembleInput{
		Table:          prepared.Table,
		Scores:         prepared.Scores,
		Matched:        prepared.Matched,
		CommentFields:  cfg.CommentFields,
		TeamColumn:     prepared.TeamColumn,
		LocationColumn: prepared.LocationColumn,
		Selector:       sel,
		FilteredIdx:    filteredIdx,
		Thresholds:     cfg.Thresholds(),
	})
	if err != nil {
		return nil, err
	}

	result := *prepared
	result.Bundle = bundle
	result.Recommendations = analysis.Recommendations(bundle)
	return &result, nil
}

// Run executes Prepare and Analyze in one call for non-interactive use.
func (s *AnalysisService) Run(ctx context.Context, cfg *config.Config, sel survey.Selector) (*AnalysisResult, error) {
	prepared, err := s.Prepare(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return s.Analyze(ctx, cfg, prepared, sel)
}

// Render hands the finalized result to every renderer in order, logging
// each artifact as it is written. The first failure aborts the remainder.
func (s *AnalysisService) Render(ctx context.Context, result *AnalysisResult, cfg *config.Config, renderers []ports.Renderer, outDir string) ([]string, error) {
	in := result.RenderInput(cfg, outDir)

	paths := make([]string, 0, len(renderers))
	for _, r := range renderers {
		path, err := r.Render(ctx, in)
		if err != nil {
			return paths, err
		}
		s.log.Info("%s report saved to: %s", r.Name(), path)
		paths = append(paths, path)
	}
	return paths, nil
}
