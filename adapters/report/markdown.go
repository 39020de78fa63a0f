package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"surveyscope/internal/errors"
	"surveyscope/ports"
)

// MarkdownRenderer writes report.md and an HTML rendering of it
// (report.html) for sharing without a Markdown viewer.
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer { return &MarkdownRenderer{} }

func (r *MarkdownRenderer) Name() string { return "markdown" }

// Render implements ports.Renderer.
func (r *MarkdownRenderer) Render(ctx context.Context, in ports.RenderInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc := r.buildMarkdown(in)

	mdPath := filepath.Join(in.OutDir, "report.md")
	if err := os.WriteFile(mdPath, []byte(doc), 0o644); err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	htmlDoc := markdown.ToHTML([]byte(doc), p, renderer)

	htmlPath := filepath.Join(in.OutDir, "report.html")
	if err := os.WriteFile(htmlPath, htmlDoc, 0o644); err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}

	return mdPath, nil
}

func (r *MarkdownRenderer) buildMarkdown(in ports.RenderInput) string {
	b := in.Bundle
	sel := b.Selector()
	focus := sel.TeamDisplay() + " + " + sel.LocationDisplay()

	var w strings.Builder

	fmt.Fprintf(&w, "# Form Data Analysis - %s\n\n", focus)
	fmt.Fprintf(&w, "Generated on %s\n\n", b.Metadata.GeneratedAt.Time().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&w, "- Filtered responses: **%d**\n", b.Metadata.FilteredResponses)
	fmt.Fprintf(&w, "- Total responses: **%d**\n", b.Metadata.TotalResponses)
	fmt.Fprintf(&w, "- Categories analyzed: **%d**\n\n", len(in.Schema))

	fmt.Fprintln(&w, "## Category Performance")
	fmt.Fprintln(&w)
	if len(b.CategoryPerformance) == 0 {
		fmt.Fprintln(&w, "No data available for selected combination.")
		fmt.Fprintln(&w)
	} else {
		fmt.Fprintln(&w, "| Category | Score | Overall | Difference | Status |")
		fmt.Fprintln(&w, "|---|---|---|---|---|")
		for _, cat := range in.Schema {
			score, ok := b.CategoryPerformance[cat.Name]
			if !ok {
				continue
			}
			cmp := b.Comparisons[cat.Name]
			fmt.Fprintf(&w, "| %s | %.2f | %.2f | %+.2f | %s |\n",
				cat.Name, score, cmp.OverallScore, cmp.Difference, cmp.Status.Display())
		}
		fmt.Fprintln(&w)
	}

	fmt.Fprintln(&w, "## Question Details")
	fmt.Fprintln(&w)
	for _, mc := range in.Matched.Categories {
		details, ok := b.QuestionDetails[mc.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(&w, "### %s\n\n", mc.Name)
		fmt.Fprintln(&w, "| Question | Score | Overall | Difference | Responses |")
		fmt.Fprintln(&w, "|---|---|---|---|---|")
		for _, col := range mc.Columns {
			d, ok := details[col]
			if !ok {
				continue
			}
			if d.FilteredScore != nil && d.OverallScore != nil {
				fmt.Fprintf(&w, "| %s | %.2f | %.2f | %+.2f | %d |\n",
					col, *d.FilteredScore, *d.OverallScore, *d.Difference, d.FilteredResponses)
			} else {
				fmt.Fprintf(&w, "| %s | - | - | - | %d |\n", col, d.FilteredResponses)
			}
		}
		fmt.Fprintln(&w)
	}

	if len(b.Comments) > 0 {
		fmt.Fprintln(&w, "## Comments")
		fmt.Fprintln(&w)
		for _, name := range sortedKeys(b.Comments) {
			cc := b.Comments[name]
			fmt.Fprintf(&w, "### %s (%d)\n\n", name, cc.Count)
			for _, c := range cc.Comments {
				fmt.Fprintf(&w, "> %s\n>\n> -- %s, %s\n\n", c.Text, c.Team, c.Location)
			}
		}
	}

	fmt.Fprintln(&w, "## Recommendations")
	fmt.Fprintln(&w)
	for i, rec := range in.Recommendations {
		fmt.Fprintf(&w, "%d. %s\n", i+1, rec)
	}
	fmt.Fprintln(&w)

	if len(in.Matched.Missing) > 0 {
		fmt.Fprintln(&w, "## Missing Questions")
		fmt.Fprintln(&w)
		fmt.Fprintln(&w, "Listed in configuration but not found in the data file:")
		fmt.Fprintln(&w)
		for _, mq := range in.Matched.Missing {
			fmt.Fprintf(&w, "- **%s**: %s\n", mq.Category, mq.Question)
		}
		fmt.Fprintln(&w)
	}

	return w.String()
}
