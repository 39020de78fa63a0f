package ports

import (
	"context"

	"surveyscope/domain/survey"
)

// RenderInput is everything a report renderer may consume. The bundle is
// finalized before rendering starts; renderers must not mutate it.
type RenderInput struct {
	Bundle          *survey.Bundle
	Schema          survey.Schema
	Matched         survey.MatchedSchema
	Recommendations []string

	// Table and ScoreSet back the breakdown sheets of richer renderers.
	Table  *survey.Table
	Scores survey.ScoreSet

	TeamColumn     string
	LocationColumn string

	// MaxComments caps how many individual comments a renderer lists per
	// category; zero means no cap.
	MaxComments int

	// OutDir is the run directory all artifacts are written into.
	OutDir string
}

// Renderer produces one report artifact from a finalized bundle and returns
// the path it wrote.
type Renderer interface {
	Name() string
	Render(ctx context.Context, in RenderInput) (string, error)
}
