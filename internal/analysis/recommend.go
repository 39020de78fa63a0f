package analysis

import (
	"fmt"

	"surveyscope/domain/survey"
)

// Recommendations derives the action list for a finalized bundle.
//
// A run with zero filtered responses short-circuits to a single "no data"
// entry. Otherwise the worst-scoring category gets a targeted entry when it
// sits below the overall average, and a fully specific selector (both
// dimensions non-wildcard) gets a combination-impact note when any category
// underperforms. With nothing to flag, a single all-clear entry is emitted.
func Recommendations(bundle *survey.Bundle) []string {
	if bundle.Metadata.FilteredResponses == 0 {
		return []string{"No data available for this combination - unable to provide recommendations."}
	}

	var recommendations []string

	if worst, cmp, ok := bundle.WorstCategory(); ok && cmp.Status.IsBelowAverage() {
		recommendations = append(recommendations, fmt.Sprintf(
			"CATEGORY FOCUS: Address %s (score: %.2f, %s)",
			worst, cmp.FilteredScore, cmp.Status.Display()))
	}

	sel := bundle.Selector()
	if !sel.TeamAll() && !sel.LocationAll() {
		below := 0
		for _, cmp := range bundle.Comparisons {
			if cmp.Status.IsBelowAverage() {
				below++
			}
		}
		if below > 0 {
			recommendations = append(recommendations, fmt.Sprintf(
				"COMBINATION IMPACT: %s in %s shows lower performance in %d categories",
				sel.Team, sel.Location, below))
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"No specific issues identified - performance appears satisfactory for this combination.")
	}

	return recommendations
}
