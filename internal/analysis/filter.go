package analysis

import (
	"surveyscope/domain/survey"
)

// FilterRows returns the indices of rows matching the selector, in table
// order. The wildcard "all" disables the corresponding dimension. A
// selector matching zero rows yields an empty slice, not an error;
// downstream scoring handles the empty view.
func FilterRows(table *survey.Table, teamColumn, locationColumn string, sel survey.Selector) []int {
	idx := make([]int, 0, len(table.Rows))
	for i, row := range table.Rows {
		if !sel.TeamAll() && row[teamColumn] != sel.Team {
			continue
		}
		if !sel.LocationAll() && row[locationColumn] != sel.Location {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}
