package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// TimestampLayout formats the generation time in rendered reports.
const TimestampLayout = "2006-01-02 15:04:05"

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// Markdown renders the summary as the dataset statistics report.
func Markdown(s Summary) string {
	p := printer()
	var b strings.Builder

	b.WriteString("# " + Title + "\n\n")
	p.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.Format(TimestampLayout))
	p.Fprintf(&b, "Dataset ID: `%s` (seed %d, reference date %s)\n\n", s.DatasetID, s.Seed, s.Reference)

	b.WriteString("## Overall Statistics\n")
	p.Fprintf(&b, "- **Total Employees**: %d\n", s.Total)
	p.Fprintf(&b, "- **Current Employees**: %d (%.1f%%)\n", s.Current, pct(s.Current, s.Total))
	p.Fprintf(&b, "- **Former Employees**: %d (%.1f%%)\n", s.Former, pct(s.Former, s.Total))
	p.Fprintf(&b, "- **Overall Attrition Rate**: %.1f%%\n\n", s.AttritionRate)

	b.WriteString("## Attrition by Department\n")
	for _, d := range s.Departments {
		p.Fprintf(&b, "  %s: %.1f%% (%d/%d)\n", d.Department, d.Rate, d.Departed, d.Employees)
	}
	b.WriteString("\n")

	b.WriteString("## Annualized Attrition by Department (per exposure-year)\n")
	for _, d := range s.Departments {
		p.Fprintf(&b, "  %s: %.1f%% (%d over %.1f years)\n", d.Department, d.AnnualizedRate, d.Departed, d.ExposureYears)
	}
	p.Fprintf(&b, "  Overall: %.1f%%\n\n", s.AnnualizedRate)

	b.WriteString("## Tenure Statistics (months)\n")
	p.Fprintf(&b, "- **Mean**: %.1f\n", s.Tenure.Mean)
	p.Fprintf(&b, "- **Median**: %.1f\n", s.Tenure.Median)
	p.Fprintf(&b, "- **Min**: %d\n", s.Tenure.Min)
	p.Fprintf(&b, "- **Max**: %d\n\n", s.Tenure.Max)

	b.WriteString("## Turnover Categories\n")
	p.Fprintf(&b, "- **Voluntary**: %d (%.1f%% of departures)\n", s.Voluntary, s.VoluntaryPct)
	p.Fprintf(&b, "- **Involuntary**: %d (%.1f%% of departures)\n\n", s.Involuntary, s.InvoluntaryPct)

	b.WriteString("## Top Departure Reasons\n")
	for _, r := range s.Reasons {
		p.Fprintf(&b, "  %s: %d (%.1f%% of departures)\n", r.Reason, r.Count, r.Pct)
	}
	return b.String()
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(32)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// Console renders the summary for terminal output.
func Console(s Summary) string {
	p := printer()
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}

	lines := []string{
		titleStyle.Render("=== " + Title + " ==="),
		row("Total Employees", p.Sprintf("%d", s.Total)),
		row("Current Employees", p.Sprintf("%d (%.1f%%)", s.Current, pct(s.Current, s.Total))),
		row("Former Employees", p.Sprintf("%d (%.1f%%)", s.Former, pct(s.Former, s.Total))),
		row("Overall Attrition Rate", p.Sprintf("%.1f%%", s.AttritionRate)),
		"",
		headingStyle.Render("Attrition by Department"),
	}
	for _, d := range s.Departments {
		lines = append(lines, row("  "+string(d.Department), p.Sprintf("%.1f%% (%d/%d)", d.Rate, d.Departed, d.Employees)))
	}

	lines = append(lines, "", headingStyle.Render("Tenure Statistics (months)"),
		row("  Mean", p.Sprintf("%.1f", s.Tenure.Mean)),
		row("  Median", p.Sprintf("%.1f", s.Tenure.Median)),
		row("  Min", p.Sprintf("%d", s.Tenure.Min)),
		row("  Max", p.Sprintf("%d", s.Tenure.Max)),
		"", headingStyle.Render("Turnover Categories"),
		row("  Voluntary", p.Sprintf("%d (%.1f%% of departures)", s.Voluntary, s.VoluntaryPct)),
		row("  Involuntary", p.Sprintf("%d (%.1f%% of departures)", s.Involuntary, s.InvoluntaryPct)),
		"", headingStyle.Render("Top Departure Reasons"),
	)
	for _, r := range s.Reasons {
		lines = append(lines, row("  "+r.Reason, p.Sprintf("%d (%.1f%% of departures)", r.Count, r.Pct)))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// YAML renders the summary as a structured document.
func YAML(s Summary) ([]byte, error) {
	return yaml.Marshal(s)
}
