package export

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

func ValuePropositionText(vp models.ValueProposition) string {
	var b strings.Builder

	b.WriteString(vp.Headline + "\n")
	b.WriteString(vp.Subheadline + "\n\n")
	b.WriteString(fmt.Sprintf("Value: %s\n", vp.ValueStatement))
	b.WriteString(fmt.Sprintf("Audience: %s\n", vp.TargetAudienceStatement))
	b.WriteString(fmt.Sprintf("Problem: %s\n", vp.ProblemStatement))
	b.WriteString(fmt.Sprintf("Solution: %s\n", vp.SolutionStatement))
	b.WriteString(fmt.Sprintf("Why us: %s\n", vp.DifferentiatorStatement))

	b.WriteString("\nKey Benefits:\n")
	for _, benefit := range vp.KeyBenefits {
		b.WriteString(fmt.Sprintf("- %s\n", benefit))
	}

	b.WriteString(fmt.Sprintf("\n%s\n", vp.CallToAction))
	return b.String()
}

func ValuePropositionMarkdown(businessName string, vp models.ValueProposition) string {
	var b strings.Builder

	if businessName != "" {
		b.WriteString(fmt.Sprintf("# Value Proposition for: %s\n\n", businessName))
	}
	b.WriteString(fmt.Sprintf("## %s\n\n", vp.Headline))
	b.WriteString(fmt.Sprintf("_%s_\n\n", vp.Subheadline))

	b.WriteString(fmt.Sprintf("**Value Statement:** %s\n\n", vp.ValueStatement))
	b.WriteString(fmt.Sprintf("**Target Audience:** %s\n\n", vp.TargetAudienceStatement))
	b.WriteString(fmt.Sprintf("**Problem:** %s\n\n", vp.ProblemStatement))
	b.WriteString(fmt.Sprintf("**Solution:** %s\n\n", vp.SolutionStatement))
	b.WriteString(fmt.Sprintf("**Differentiator:** %s\n", vp.DifferentiatorStatement))

	if len(vp.KeyBenefits) > 0 {
		b.WriteString("\n**Key Benefits:**\n")
		for _, benefit := range vp.KeyBenefits {
			b.WriteString(fmt.Sprintf("- %s\n", benefit))
		}
	}

	b.WriteString(fmt.Sprintf("\n**%s**\n", vp.CallToAction))
	return b.String()
}

// ExamplesMarkdown lists example canvas phrases for an industry.
func ExamplesMarkdown(industry string, data models.ExampleData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Example canvas: %s\n", industry))

	sections := []struct {
		title string
		items []string
	}{
		{"Customer Jobs", data.Jobs},
		{"Pains", data.Pains},
		{"Gains", data.Gains},
		{"Pain Relievers", data.PainRelievers},
		{"Gain Creators", data.GainCreators},
	}
	for _, s := range sections {
		b.WriteString(fmt.Sprintf("\n**%s:**\n", s.title))
		for _, item := range s.items {
			b.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}
	return b.String()
}
