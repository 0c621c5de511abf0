// Package display renders analyzer reports and histograms for the terminal.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

const barWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	reportStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1)

	outcomeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

// Histogram renders one proportional bar per outcome of a report breakdown.
func Histogram(breakdown []stats.OutcomeFrequency) string {
	if len(breakdown) == 0 {
		return dimStyle.Render("(no outcomes)")
	}

	maxProb := breakdown[0].Probability
	for _, of := range breakdown {
		if of.Probability > maxProb {
			maxProb = of.Probability
		}
	}

	labelWidth := 0
	for _, of := range breakdown {
		if len(of.Outcome) > labelWidth {
			labelWidth = len(of.Outcome)
		}
	}

	var b strings.Builder
	for i, of := range breakdown {
		filled := 0
		if maxProb > 0 {
			filled = int(of.Probability / maxProb * barWidth)
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		b.WriteString(outcomeStyle.Render(fmt.Sprintf("|%-*s⟩", labelWidth, of.Outcome)))
		b.WriteString("  ")
		b.WriteString(barStyle.Render(bar))
		b.WriteString(fmt.Sprintf("  %6.2f%%  ", of.Probability*100))
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%d)", of.Count)))
		if i != len(breakdown)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderReport renders a full analyzer report inside a bordered panel.
func RenderReport(rep *stats.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(rep.Title))
	b.WriteString("\n\n")
	b.WriteString(Histogram(rep.Breakdown))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"shots: %d   unique outcomes: %d   entropy: %.4f bits",
		rep.TotalShots, rep.UniqueOutcomes, rep.EntropyBits)))
	return reportStyle.Render(b.String())
}

// ReportJSON serializes a report for machine consumption.
func ReportJSON(rep *stats.Report) ([]byte, error) {
	return json.MarshalIndent(rep, "", "  ")
}

// RenderResources renders a circuit's static cost estimate: register
// sizes, depth, and the per-type gate histogram.
func RenderResources(name string, res circuit.Resources) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(name + " resources"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("qubits: %d   cbits: %d   depth: %d   gates: %d\n",
		res.NumQubits, res.NumCbits, res.Depth, res.GateCount))

	types := make([]string, 0, len(res.GateTypes))
	for gt := range res.GateTypes {
		types = append(types, gt)
	}
	sort.Strings(types)
	for i, gt := range types {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s×%d", gt, res.GateTypes[gt])))
	}
	return reportStyle.Render(b.String())
}

// RenderComparison renders ideal and noisy breakdowns with their total
// variation distance.
func RenderComparison(ideal, noisy *stats.Report, tvd float64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ideal"))
	b.WriteString("\n")
	b.WriteString(Histogram(ideal.Breakdown))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("noisy"))
	b.WriteString("\n")
	b.WriteString(Histogram(noisy.Breakdown))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("total variation distance: %.4f", tvd)))
	return reportStyle.Render(b.String())
}
