package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"surveyscope/domain/survey"
	"surveyscope/internal/errors"
	"surveyscope/ports"
)

// TextRenderer writes the human-readable report.txt artifact.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

func (r *TextRenderer) Name() string { return "text" }

// Render implements ports.Renderer.
func (r *TextRenderer) Render(ctx context.Context, in ports.RenderInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b := in.Bundle
	sel := b.Selector()
	focus := sel.TeamDisplay() + " + " + sel.LocationDisplay()

	var w strings.Builder

	fmt.Fprintf(&w, "FORM DATA ANALYSIS REPORT - %s\n", focus)
	fmt.Fprintln(&w, strings.Repeat("=", 80))
	fmt.Fprintf(&w, "Generated on: %s\n", b.Metadata.GeneratedAt.Time().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&w, "Analysis Focus: %s\n", focus)
	fmt.Fprintf(&w, "Filtered Responses: %d\n", b.Metadata.FilteredResponses)
	fmt.Fprintf(&w, "Total Responses in Dataset: %d\n", b.Metadata.TotalResponses)
	fmt.Fprintf(&w, "Categories Analyzed: %d\n", len(in.Schema))
	if len(in.Matched.Missing) > 0 {
		fmt.Fprintf(&w, "Missing Questions: %d questions from config not found in data\n", len(in.Matched.Missing))
	}
	fmt.Fprintln(&w)

	r.writeExecutiveSummary(&w, b)
	r.writeCategoryPerformance(&w, in, focus)
	r.writeQuestionDetails(&w, in)
	r.writeComments(&w, b, sel, in.MaxComments)
	r.writeRecommendations(&w, in, focus)
	r.writeMissingQuestions(&w, in)

	fmt.Fprintln(&w)
	fmt.Fprintln(&w, strings.Repeat("=", 80))
	fmt.Fprintf(&w, "End of Detailed Report for %s\n", focus)

	path := filepath.Join(in.OutDir, "report.txt")
	if err := os.WriteFile(path, []byte(w.String()), 0o644); err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}
	return path, nil
}

func (r *TextRenderer) writeExecutiveSummary(w *strings.Builder, b *survey.Bundle) {
	fmt.Fprintln(w, "EXECUTIVE SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	if len(b.CategoryPerformance) > 0 {
		best, worst := "", ""
		for name, score := range b.CategoryPerformance {
			if best == "" || score > b.CategoryPerformance[best] {
				best = name
			}
			if worst == "" || score < b.CategoryPerformance[worst] {
				worst = name
			}
		}
		fmt.Fprintf(w, "* Highest performing category for selected combination: %s (avg: %.2f)\n",
			best, b.CategoryPerformance[best])
		fmt.Fprintf(w, "* Lowest performing category for selected combination: %s (avg: %.2f)\n",
			worst, b.CategoryPerformance[worst])
	}
	fmt.Fprintln(w)
}

func (r *TextRenderer) writeCategoryPerformance(w *strings.Builder, in ports.RenderInput, focus string) {
	b := in.Bundle

	fmt.Fprintf(w, "CATEGORY PERFORMANCE ANALYSIS - %s\n", focus)
	fmt.Fprintln(w, strings.Repeat("-", 40))

	if len(b.CategoryPerformance) == 0 {
		fmt.Fprintln(w, "No data available for selected combination.")
		fmt.Fprintln(w)
		return
	}

	// Config order, not performance order.
	for i, cat := range in.Schema {
		score, ok := b.CategoryPerformance[cat.Name]
		if !ok {
			continue
		}
		cmp := b.Comparisons[cat.Name]
		fmt.Fprintf(w, "%d. %s: %.2f (vs overall %.2f, %+.2f) [%s]\n",
			i+1, cat.Name, score, cmp.OverallScore, cmp.Difference, cmp.Status.Display())
	}
	fmt.Fprintln(w)
}

func (r *TextRenderer) writeQuestionDetails(w *strings.Builder, in ports.RenderInput) {
	b := in.Bundle

	fmt.Fprintln(w, "DETAILED QUESTION ANALYSIS")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	for _, mc := range in.Matched.Categories {
		details, ok := b.QuestionDetails[mc.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", mc.Name)

		// Highest and lowest scoring questions in this category.
		highest, lowest := "", ""
		for _, col := range mc.Columns {
			d, ok := details[col]
			if !ok || d.FilteredScore == nil {
				continue
			}
			if highest == "" || *d.FilteredScore > *details[highest].FilteredScore {
				highest = col
			}
			if lowest == "" || *d.FilteredScore < *details[lowest].FilteredScore {
				lowest = col
			}
		}
		if highest != "" {
			fmt.Fprintf(w, "   Highest: %s (%.2f)\n", highest, *details[highest].FilteredScore)
			fmt.Fprintf(w, "   Lowest:  %s (%.2f)\n\n", lowest, *details[lowest].FilteredScore)
		}

		for _, col := range mc.Columns {
			d, ok := details[col]
			if !ok {
				continue
			}
			if d.FilteredScore != nil && d.OverallScore != nil {
				fmt.Fprintf(w, "   * %s: %.2f (vs overall %.2f, %+.2f) (%d responses)\n",
					col, *d.FilteredScore, *d.OverallScore, *d.Difference, d.FilteredResponses)
			} else {
				fmt.Fprintf(w, "   * %s: No data (%d responses)\n", col, d.FilteredResponses)
			}
		}
	}
}

func (r *TextRenderer) writeComments(w *strings.Builder, b *survey.Bundle, sel survey.Selector, maxComments int) {
	if len(b.Comments) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMMENTS BY CATEGORY")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	for _, name := range sortedKeys(b.Comments) {
		cc := b.Comments[name]
		fmt.Fprintf(w, "\n%s (%d comments):\n", name, cc.Count)
		listed := cc.Comments
		if maxComments > 0 && len(listed) > maxComments {
			listed = listed[:maxComments]
		}
		for i, c := range listed {
			// Attribution only for the dimensions analyzed as "all".
			teamInfo := ""
			if sel.TeamAll() {
				teamInfo = " - " + c.Team
			}
			locationInfo := ""
			if sel.LocationAll() {
				locationInfo = " (" + c.Location + ")"
			}
			fmt.Fprintf(w, "   %d. %q%s%s\n", i+1, c.Text, teamInfo, locationInfo)
		}
		if len(listed) < cc.Count {
			fmt.Fprintf(w, "   ... and %d more\n", cc.Count-len(listed))
		}
	}
}

func (r *TextRenderer) writeRecommendations(w *strings.Builder, in ports.RenderInput, focus string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "RECOMMENDATIONS FOR %s\n", focus)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for i, rec := range in.Recommendations {
		fmt.Fprintf(w, "%d. %s\n", i+1, rec)
	}
}

func (r *TextRenderer) writeMissingQuestions(w *strings.Builder, in ports.RenderInput) {
	if len(in.Matched.Missing) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "MISSING QUESTIONS FROM CONFIG")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, "The following questions were listed in config but not found in the data file:")
	fmt.Fprintln(w)
	for _, mq := range in.Matched.Missing {
		fmt.Fprintf(w, "[%s]\n   * %s\n\n", mq.Category, mq.Question)
	}
}

func sortedKeys(m map[string]survey.CategoryComments) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
