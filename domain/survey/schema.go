package survey

// Category is a named group of related questions analyzed as one aggregate.
type Category struct {
	Name      string
	Questions []string // as authored in configuration, whitespace noise and all
}

// Schema is the ordered list of configured categories. Order is the
// configuration author's order and is preserved through every report.
type Schema []Category

// QuestionCount returns the total number of configured questions.
func (s Schema) QuestionCount() int {
	n := 0
	for _, c := range s {
		n += len(c.Questions)
	}
	return n
}

// Names returns category names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// LikertMapping maps response text to a numeric score. A nil score is the
// explicit "no score" marker ("I don't know"-style answers), distinct from a
// response that is simply absent from the mapping.
type LikertMapping map[string]*float64

// CommentField binds a category to the column holding its free-text comments.
type CommentField struct {
	Category string
	Column   string
}

// MissingQuestion records a configured question that had no matching column.
type MissingQuestion struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

// MatchedCategory is a category resolved to actual normalized column names.
// Categories with zero matches keep an empty Columns list; scoring skips them.
type MatchedCategory struct {
	Name    string
	Columns []string // normalized column names, in question order
}

// MatchedSchema is the result of whitespace-tolerant schema matching.
// Invariant: every configured question appears in exactly one of
// {Categories[i].Columns, Missing}.
type MatchedSchema struct {
	Categories []MatchedCategory
	Missing    []MissingQuestion

	// ColumnsByNorm maps normalized column names back to the original
	// table headers.
	ColumnsByNorm map[string]string
}

// Category returns the matched category with the given name.
func (m MatchedSchema) Category(name string) (MatchedCategory, bool) {
	for _, c := range m.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return MatchedCategory{}, false
}

// ResolveColumn maps an arbitrary column name to the original table header,
// tolerating whitespace noise in the input.
func (m MatchedSchema) ResolveColumn(name string) (string, bool) {
	orig, ok := m.ColumnsByNorm[Sanitize(name)]
	return orig, ok
}
