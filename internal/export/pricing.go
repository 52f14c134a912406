package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

const notAvailable = "N/A"

func competitorValue(a models.PricingAnalysis, v float64) string {
	if !a.HasCompetitors {
		return notAvailable
	}
	return money(v)
}

// PricingText renders an analysis as a plain-text block for the clipboard.
func PricingText(a models.PricingAnalysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("PRICING STRATEGY ANALYSIS: %s\n\n", a.ProductName))
	b.WriteString(fmt.Sprintf("Total Cost: %s\n", money(a.TotalCost)))
	b.WriteString(fmt.Sprintf("Cost-Based Price: %s\n", money(a.CostBasedPrice)))
	b.WriteString(fmt.Sprintf("Average Competitor Price: %s\n", competitorValue(a, a.AverageCompetitorPrice)))
	b.WriteString(fmt.Sprintf("Competitor-Based Price: %s\n", competitorValue(a, a.CompetitorBasedPrice)))
	b.WriteString(fmt.Sprintf("Value-Based Price: %s\n", money(a.ValueBasedPrice)))

	if len(a.RecommendedStrategies) == 0 {
		b.WriteString("\nNo profitable strategy found for these inputs.\n")
		return b.String()
	}

	b.WriteString("\nRECOMMENDED STRATEGIES\n")
	for i, s := range a.RecommendedStrategies {
		b.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, s.Name))
		b.WriteString(fmt.Sprintf("   Price: %s | Margin: %s\n", money(s.SuggestedPrice), percent(s.ProfitMargin)))
		b.WriteString(fmt.Sprintf("   %s\n", s.Description))
		for _, p := range s.Pros {
			b.WriteString(fmt.Sprintf("   + %s\n", p))
		}
		for _, c := range s.Cons {
			b.WriteString(fmt.Sprintf("   - %s\n", c))
		}
		b.WriteString(fmt.Sprintf("   Recommendation: %s\n", s.Recommendation))
	}
	return b.String()
}

// PricingMarkdown renders an analysis as Markdown.
func PricingMarkdown(a models.PricingAnalysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Pricing Strategy for: %s\n\n", a.ProductName))
	b.WriteString("| Basis | Price |\n|---|---|\n")
	b.WriteString(fmt.Sprintf("| Total cost | %s |\n", money(a.TotalCost)))
	b.WriteString(fmt.Sprintf("| Cost-based | %s |\n", money(a.CostBasedPrice)))
	b.WriteString(fmt.Sprintf("| Average competitor | %s |\n", competitorValue(a, a.AverageCompetitorPrice)))
	b.WriteString(fmt.Sprintf("| Competitor-based | %s |\n", competitorValue(a, a.CompetitorBasedPrice)))
	b.WriteString(fmt.Sprintf("| Value-based | %s |\n", money(a.ValueBasedPrice)))

	for _, s := range a.RecommendedStrategies {
		b.WriteString(fmt.Sprintf("\n## %s\n\n", s.Name))
		b.WriteString(fmt.Sprintf("**%s** at %s margin. %s\n", money(s.SuggestedPrice), percent(s.ProfitMargin), s.Description))

		if len(s.Pros) > 0 {
			b.WriteString("\n**Pros:**\n")
			for _, p := range s.Pros {
				b.WriteString(fmt.Sprintf("- %s\n", p))
			}
		}
		if len(s.Cons) > 0 {
			b.WriteString("\n**Cons:**\n")
			for _, c := range s.Cons {
				b.WriteString(fmt.Sprintf("- %s\n", c))
			}
		}
		b.WriteString(fmt.Sprintf("\n> %s\n", s.Recommendation))
	}
	return b.String()
}

// PricingCSV renders one row per recommended strategy.
func PricingCSV(a models.PricingAnalysis) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	rows := [][]string{{"strategy", "suggested_price", "profit_margin_pct", "description", "pros", "cons", "recommendation"}}
	for _, s := range a.RecommendedStrategies {
		rows = append(rows, []string{
			s.Name,
			strconv.FormatFloat(s.SuggestedPrice, 'f', 2, 64),
			strconv.FormatFloat(s.ProfitMargin, 'f', 2, 64),
			s.Description,
			strings.Join(s.Pros, "; "),
			strings.Join(s.Cons, "; "),
			s.Recommendation,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write pricing csv: %w", err)
	}
	return b.String(), nil
}
