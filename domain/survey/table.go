package survey

// Row represents one survey response as string key-value pairs keyed by the
// original column header. A missing key is a null cell.
type Row map[string]string

// Table is the complete in-memory response set for one run.
type Table struct {
	Headers []string // original column headers, in file order
	Rows    []Row
}

// Cell returns the raw value of a column in a row and whether it was present
// and non-empty. Empty strings count as null cells.
func (t *Table) Cell(rowIdx int, column string) (string, bool) {
	if rowIdx < 0 || rowIdx >= len(t.Rows) {
		return "", false
	}
	v, ok := t.Rows[rowIdx][column]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ScoreSet holds the numeric score columns produced by Likert conversion,
// keyed by normalized column name. Each slice is parallel to Table.Rows;
// undefined scores are NaN. The original text columns stay untouched on the
// Table.
type ScoreSet map[string][]float64

// AllIndices returns the identity row-index view over the table.
func (t *Table) AllIndices() []int {
	idx := make([]int, len(t.Rows))
	for i := range idx {
		idx[i] = i
	}
	return idx
}
