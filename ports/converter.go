package ports

// LikertConverter converts one raw response cell to a numeric score.
// Undefined results (null cells, unmapped text, explicit "no score"
// answers) are NaN, never zero.
//
// Exactly one strategy is active per run, selected by configuration
// presence: a configured mapping table wins, otherwise the embedded
// parenthetical-score parser is used. The two are never consulted in
// sequence.
type LikertConverter interface {
	// Name identifies the strategy in logs and reports.
	Name() string

	// Convert scores a single cell. present is false for null/absent cells.
	Convert(raw string, present bool) float64
}
