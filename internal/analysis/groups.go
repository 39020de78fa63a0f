package analysis

import (
	"sort"

	"surveyscope/domain/survey"
)

// AvailableGroups inventories the distinct teams and locations present in
// the table with their response counts, sorted by name. Null cells are
// skipped.
func AvailableGroups(table *survey.Table, teamColumn, locationColumn string) survey.GroupInfo {
	return survey.GroupInfo{
		Teams:     countColumn(table, teamColumn),
		Locations: countColumn(table, locationColumn),
	}
}

// GroupScore is one group's aggregate score in a breakdown.
type GroupScore struct {
	Name  string
	Score float64
}

// GroupScores computes the mean of per-question means for every distinct
// value of groupColumn over a row view, across all matched question
// columns. Groups with no defined scores fall back to 0 so breakdown
// charts can still plot them. Sorted by score descending, then name.
func GroupScores(table *survey.Table, scores survey.ScoreSet, matched survey.MatchedSchema, groupColumn string, idx []int) []GroupScore {
	columns := make([]string, 0)
	seen := make(map[string]bool)
	for _, cat := range matched.Categories {
		for _, col := range cat.Columns {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}

	byGroup := make(map[string][]int)
	order := make([]string, 0)
	for _, i := range idx {
		v, ok := table.Cell(i, groupColumn)
		if !ok {
			continue
		}
		if _, ok := byGroup[v]; !ok {
			order = append(order, v)
		}
		byGroup[v] = append(byGroup[v], i)
	}

	result := make([]GroupScore, 0, len(order))
	for _, name := range order {
		score, ok := CategoryScore(scores, columns, byGroup[name])
		if !ok {
			score = 0
		}
		result = append(result, GroupScore{Name: name, Score: score})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func countColumn(table *survey.Table, column string) []survey.GroupCount {
	counts := make(map[string]int)
	for i := range table.Rows {
		if v, ok := table.Cell(i, column); ok {
			counts[v]++
		}
	}

	groups := make([]survey.GroupCount, 0, len(counts))
	for name, count := range counts {
		groups = append(groups, survey.GroupCount{Name: name, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}
