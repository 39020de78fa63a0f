package ports

import (
	"surveyscope/domain/survey"
)

// SelectionProvider supplies the group selector for a run, e.g. from an
// interactive prompt or command-line flags. "all" is the reserved wildcard
// for each dimension.
type SelectionProvider interface {
	Select(info survey.GroupInfo) (survey.Selector, error)
}
