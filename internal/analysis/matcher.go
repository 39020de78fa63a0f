package analysis

import (
	"surveyscope/domain/survey"
	"surveyscope/internal/errors"
)

// MatchSchema resolves configured questions to actual table columns under
// whitespace noise. Every table header is normalized once into a
// bidirectional namespace; a collision between two original headers is
// fatal rather than silently dropping a column.
//
// Every configured question ends up in exactly one of {matched, missing},
// in schema iteration order. Categories with zero matches keep an empty
// column list so reports can still name them.
func MatchSchema(table *survey.Table, schema survey.Schema) (survey.MatchedSchema, error) {
	byNorm := make(map[string]string, len(table.Headers))
	for _, header := range table.Headers {
		norm := survey.Sanitize(header)
		if prev, ok := byNorm[norm]; ok && prev != header {
			return survey.MatchedSchema{}, errors.ColumnConflict(norm, prev, header)
		}
		byNorm[norm] = header
	}

	matched := survey.MatchedSchema{
		Categories:    make([]survey.MatchedCategory, 0, len(schema)),
		ColumnsByNorm: byNorm,
	}

	for _, cat := range schema {
		mc := survey.MatchedCategory{Name: cat.Name}
		for _, question := range cat.Questions {
			norm := survey.Sanitize(question)
			if _, ok := byNorm[norm]; ok {
				mc.Columns = append(mc.Columns, norm)
			} else {
				matched.Missing = append(matched.Missing, survey.MissingQuestion{
					Category: cat.Name,
					Question: question,
				})
			}
		}
		matched.Categories = append(matched.Categories, mc)
	}

	return matched, nil
}

// ValidateColumns checks that the team and location columns exist in the
// table's normalized namespace and returns their original header names.
// Both columns are mandatory for any group filter.
func ValidateColumns(matched survey.MatchedSchema, teamColumn, locationColumn string) (team, location string, err error) {
	team, ok := matched.ResolveColumn(teamColumn)
	if !ok {
		return "", "", errors.ColumnMissing(teamColumn)
	}
	location, ok = matched.ResolveColumn(locationColumn)
	if !ok {
		return "", "", errors.ColumnMissing(locationColumn)
	}
	return team, location, nil
}
