package analysis

import (
	"strings"

	"surveyscope/domain/survey"
)

// minCommentLength filters out empty and throwaway cells ("ok", "-").
const minCommentLength = 3

// CollectComments gathers qualifying free-text comments per category over a
// row view, keeping the respondent's team and location alongside the text.
// Comment columns are resolved through the normalized namespace; configured
// columns absent from the table are skipped. Categories with zero
// qualifying comments are omitted.
func CollectComments(table *survey.Table, matched survey.MatchedSchema, fields []survey.CommentField, teamColumn, locationColumn string, idx []int) map[string]survey.CategoryComments {
	byCategory := make(map[string]survey.CategoryComments)

	for _, field := range fields {
		column, ok := matched.ResolveColumn(field.Column)
		if !ok {
			continue
		}

		var comments []survey.Comment
		for _, i := range idx {
			raw, ok := table.Cell(i, column)
			if !ok {
				continue
			}
			text := strings.TrimSpace(raw)
			if len(text) < minCommentLength {
				continue
			}
			comments = append(comments, survey.Comment{
				Text:     text,
				Team:     table.Rows[i][teamColumn],
				Location: table.Rows[i][locationColumn],
			})
		}

		if len(comments) > 0 {
			byCategory[field.Category] = survey.CategoryComments{
				Comments: comments,
				Count:    len(comments),
			}
		}
	}

	return byCategory
}
