// Package output formats scores for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/cers/internal/export"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

// Printer handles output formatting
type Printer struct {
	w        io.Writer
	useColor bool
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, useColor bool) *Printer {
	return &Printer{w: w, useColor: useColor}
}

func (p *Printer) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(p.w)
	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(headers)

	if p.useColor {
		colors := make([]tablewriter.Colors, len(headers))
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor}
		}
		table.SetHeaderColor(colors...)
	}
	return table
}

// PrintRankings outputs the ranked list as a table
func (p *Printer) PrintRankings(ranked []scoring.ScoredRegion) error {
	table := p.newTable([]string{"Rank", "Region", "CERS", "P", "G", "R", "H", "Readiness"})
	for i, r := range ranked {
		table.Append([]string{
			strconv.Itoa(i + 1),
			r.Name,
			num(r.CERS),
			num(r.P),
			num(r.G),
			num(r.R),
			num(r.H),
			p.level(r.Readiness, r.Readiness.Level),
		})
	}
	table.Render()
	return nil
}

// PrintRegion outputs one region with its indicator breakdown
func (p *Printer) PrintRegion(r scoring.ScoredRegion, rank int) error {
	p.heading("#%d %s", rank, r.Name)
	fmt.Fprintf(p.w, "CERS:           %s\n", num(r.CERS))
	fmt.Fprintf(p.w, "Readiness:      %s\n", p.level(r.Readiness, r.Readiness.Level))
	fmt.Fprintf(p.w, "Recommendation: %s\n\n", r.Readiness.Recommendation)

	table := p.newTable([]string{"Indicator", "Value", "Weighted"})
	for _, f := range scoring.Breakdown(r.Region) {
		table.Append([]string{f.Label, num(f.Value), num(f.Weighted)})
	}
	table.Render()

	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "Solar Potential:      %s\n", r.Details.Solar)
	fmt.Fprintf(p.w, "Wind Potential:       %s\n", r.Details.Wind)
	fmt.Fprintf(p.w, "Grid Status:          %s\n", r.Details.Grid)
	fmt.Fprintf(p.w, "Project Track Record: %s\n", r.Details.Projects)
	return nil
}

// PrintComparison outputs the indicator matrix with one column per selected region
func (p *Printer) PrintComparison(m scoring.ComparisonMatrix) error {
	headers := []string{"Indicator"}
	for _, s := range m.Series {
		headers = append(headers, s.Region)
	}
	table := p.newTable(headers)

	for _, row := range m.Rows {
		cells := []string{row.Label}
		for _, v := range row.Values {
			cells = append(cells, num(v))
		}
		table.Append(cells)
	}

	cersRow := []string{"CERS"}
	levelRow := []string{"Readiness"}
	for _, s := range m.Series {
		cersRow = append(cersRow, num(s.CERS))
		levelRow = append(levelRow, p.level(scoring.Classify(s.CERS), s.Level))
	}
	table.Append(cersRow)
	table.Append(levelRow)
	table.Render()
	return nil
}

// PrintSummary outputs tier counts
func (p *Printer) PrintSummary(s scoring.Summary) error {
	p.heading("Regions analyzed: %d", s.Total)
	tiers := scoring.Tiers()
	counts := []int{s.High, s.Moderate, s.Low}
	for i, t := range tiers {
		fmt.Fprintf(p.w, "  %-20s %d\n", p.level(t, t.Level), counts[i])
	}
	return nil
}

// PrintMethodology outputs the formula, weights and score bands
func (p *Printer) PrintMethodology(m scoring.Methodology) error {
	p.heading("%s", m.Formula)
	fmt.Fprintln(p.w)

	table := p.newTable([]string{"Key", "Indicator", "Weight", "Description"})
	for _, ind := range m.Indicators {
		table.Append([]string{string(ind.Key), ind.Title, ind.WeightPercent, ind.Description})
	}
	table.Render()

	fmt.Fprintln(p.w)
	for i, b := range m.Bands {
		fmt.Fprintf(p.w, "  %-7s %s: %s\n", b.Range, p.level(scoring.Tiers()[i], b.Level), b.Recommendation)
	}
	return nil
}

// PrintJSON outputs v as indented JSON
func (p *Printer) PrintJSON(v interface{}) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// PrintYAML outputs v as YAML
func (p *Printer) PrintYAML(v interface{}) error {
	encoder := yaml.NewEncoder(p.w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(v)
}

// PrintCSV outputs the ranked list in the export CSV layout
func (p *Printer) PrintCSV(ranked []scoring.ScoredRegion) error {
	if _, err := p.w.Write(export.CSV(ranked)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.w)
	return err
}

func (p *Printer) heading(format string, args ...interface{}) {
	if p.useColor {
		color.New(color.FgCyan, color.Bold).Fprintf(p.w, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) level(r scoring.Readiness, text string) string {
	if !p.useColor {
		return text
	}
	return tierColor(r.Tier).Sprint(text)
}

func tierColor(t scoring.Tier) *color.Color {
	switch t {
	case scoring.TierHigh:
		return color.New(color.FgGreen, color.Bold)
	case scoring.TierModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
