package ports

import (
	"context"

	"surveyscope/domain/survey"
)

// TableLoader supplies a response table from an external source. Supported
// file formats are the loader's concern; the pipeline only requires named
// columns and row-wise cell access with empty strings as nulls.
type TableLoader interface {
	Load(ctx context.Context) (*survey.Table, error)
}
