package report

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"surveyscope/internal/analysis"
	"surveyscope/internal/errors"
	"surveyscope/ports"
)

// DashboardRenderer writes dashboard.xlsx: an Excel workbook with summary,
// category comparison and group breakdown sheets plus embedded charts.
type DashboardRenderer struct{}

func NewDashboardRenderer() *DashboardRenderer { return &DashboardRenderer{} }

func (r *DashboardRenderer) Name() string { return "dashboard" }

const (
	sheetSummary    = "Executive Summary"
	sheetCategories = "Category Comparison"
	sheetBreakdown  = "Team-Location Breakdown"
	sheetComments   = "Comments"
)

// Render implements ports.Renderer.
func (r *DashboardRenderer) Render(ctx context.Context, in ports.RenderInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}

	if err := r.writeSummary(f, in); err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}
	if err := r.writeCategories(f, in); err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}
	sel := in.Bundle.Selector()
	if sel.TeamAll() || sel.LocationAll() {
		if err := r.writeBreakdown(f, in); err != nil {
			return "", errors.RenderFailed(r.Name(), err)
		}
	}
	if len(in.Bundle.Comments) > 0 {
		if err := r.writeComments(f, in); err != nil {
			return "", errors.RenderFailed(r.Name(), err)
		}
	}

	path := filepath.Join(in.OutDir, "dashboard.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", errors.RenderFailed(r.Name(), err)
	}
	return path, nil
}

func (r *DashboardRenderer) writeSummary(f *excelize.File, in ports.RenderInput) error {
	b := in.Bundle
	sel := b.Selector()

	rows := [][]interface{}{
		{"Form Data Analysis"},
		{},
		{"Analysis Focus", sel.TeamDisplay() + " + " + sel.LocationDisplay()},
		{"Generated", b.Metadata.GeneratedAt.Time().Format("2006-01-02 15:04:05")},
		{"Run ID", b.Metadata.RunID.String()},
		{"Filtered Responses", b.Metadata.FilteredResponses},
		{"Total Responses", b.Metadata.TotalResponses},
		{"Categories Analyzed", len(in.Schema)},
		{"Missing Questions", len(in.Matched.Missing)},
		{},
		{"Rank", "Category", "Average Score"},
	}
	for _, rc := range rankCategories(b.CategoryPerformance) {
		rows = append(rows, []interface{}{rc.Rank, rc.Category, rc.AverageScore})
	}

	return writeRows(f, sheetSummary, rows)
}

func (r *DashboardRenderer) writeCategories(f *excelize.File, in ports.RenderInput) error {
	b := in.Bundle

	if _, err := f.NewSheet(sheetCategories); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Category", "Filtered Score", "Overall Score", "Difference", "Status"},
	}
	for _, cat := range in.Schema {
		cmp, ok := b.Comparisons[cat.Name]
		if !ok {
			continue
		}
		rows = append(rows, []interface{}{
			cat.Name, cmp.FilteredScore, cmp.OverallScore, cmp.Difference, string(cmp.Status),
		})
	}
	if err := writeRows(f, sheetCategories, rows); err != nil {
		return err
	}

	dataRows := len(rows) - 1
	if dataRows == 0 {
		return nil
	}

	ref := func(col string) string {
		return fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheetCategories, col, col, dataRows+1)
	}
	return f.AddChart(sheetCategories, "G2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "Filtered", Categories: ref("A"), Values: ref("B")},
			{Name: "Overall", Categories: ref("A"), Values: ref("C")},
		},
		Title: []excelize.RichTextRun{{Text: "Category Performance Comparison"}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Categories"}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Average Score"}}},
	})
}

func (r *DashboardRenderer) writeBreakdown(f *excelize.File, in ports.RenderInput) error {
	sel := in.Bundle.Selector()

	if _, err := f.NewSheet(sheetBreakdown); err != nil {
		return err
	}

	filteredIdx := analysis.FilterRows(in.Table, in.TeamColumn, in.LocationColumn, sel)

	row := 1
	setRow := func(values ...interface{}) error {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		row++
		return f.SetSheetRow(sheetBreakdown, cell, &values)
	}

	if err := setRow("Team and Location Breakdown"); err != nil {
		return err
	}
	if err := setRow(); err != nil {
		return err
	}

	if sel.TeamAll() {
		scores := analysis.GroupScores(in.Table, in.Scores, in.Matched, in.TeamColumn, filteredIdx)
		start := row + 1
		if err := setRow("Team", "Average Score"); err != nil {
			return err
		}
		for _, gs := range scores {
			if err := setRow(gs.Name, gs.Score); err != nil {
				return err
			}
		}
		if len(scores) > 0 {
			if err := f.AddChart(sheetBreakdown, "D2", &excelize.Chart{
				Type: excelize.Bar,
				Series: []excelize.ChartSeries{{
					Name:       "Team Performance",
					Categories: fmt.Sprintf("'%s'!$A$%d:$A$%d", sheetBreakdown, start, row-1),
					Values:     fmt.Sprintf("'%s'!$B$%d:$B$%d", sheetBreakdown, start, row-1),
				}},
				Title: []excelize.RichTextRun{{Text: "Performance by Team"}},
			}); err != nil {
				return err
			}
		}
		row++
	}

	if sel.LocationAll() {
		scores := analysis.GroupScores(in.Table, in.Scores, in.Matched, in.LocationColumn, filteredIdx)
		start := row + 1
		if err := setRow("Location", "Average Score"); err != nil {
			return err
		}
		for _, gs := range scores {
			if err := setRow(gs.Name, gs.Score); err != nil {
				return err
			}
		}
		if len(scores) > 0 {
			if err := f.AddChart(sheetBreakdown, "D18", &excelize.Chart{
				Type: excelize.Pie,
				Series: []excelize.ChartSeries{{
					Name:       "Location Performance",
					Categories: fmt.Sprintf("'%s'!$A$%d:$A$%d", sheetBreakdown, start, row-1),
					Values:     fmt.Sprintf("'%s'!$B$%d:$B$%d", sheetBreakdown, start, row-1),
				}},
				Title: []excelize.RichTextRun{{Text: "Performance by Location"}},
			}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *DashboardRenderer) writeComments(f *excelize.File, in ports.RenderInput) error {
	if _, err := f.NewSheet(sheetComments); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Category", "Comment", "Team", "Location"},
	}
	for _, name := range sortedKeys(in.Bundle.Comments) {
		for _, c := range in.Bundle.Comments[name].Comments {
			rows = append(rows, []interface{}{name, c.Text, c.Team, c.Location})
		}
	}
	return writeRows(f, sheetComments, rows)
}

// writeRows writes whole rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
