package models

import "strings"

// CustomerProfile is the customer side of the value proposition canvas.
type CustomerProfile struct {
	Jobs  []string `json:"jobs" yaml:"jobs"`
	Pains []string `json:"pains" yaml:"pains"`
	Gains []string `json:"gains" yaml:"gains"`
}

// IsEmpty reports whether no job, pain or gain has any text.
func (p CustomerProfile) IsEmpty() bool {
	return !hasText(p.Jobs) && !hasText(p.Pains) && !hasText(p.Gains)
}

// ValueMap is the offering side of the canvas.
type ValueMap struct {
	PainRelievers []string `json:"pain_relievers" yaml:"pain_relievers"`
	GainCreators  []string `json:"gain_creators" yaml:"gain_creators"`
	Products      []string `json:"products" yaml:"products"`
}

type ValuePropositionInputs struct {
	BusinessName       string          `json:"business_name" yaml:"business_name" validate:"required"`
	Industry           string          `json:"industry" yaml:"industry"`
	TargetAudience     string          `json:"target_audience" yaml:"target_audience"`
	ProductDescription string          `json:"product_description" yaml:"product_description"`
	UniqueFeatures     []string        `json:"unique_features" yaml:"unique_features"`
	CustomerProfile    CustomerProfile `json:"customer_profile" yaml:"customer_profile"`
	ValueMap           ValueMap        `json:"value_map" yaml:"value_map"`
}

type ValueProposition struct {
	Headline                string   `json:"headline"`
	Subheadline             string   `json:"subheadline"`
	ValueStatement          string   `json:"value_statement"`
	TargetAudienceStatement string   `json:"target_audience_statement"`
	ProblemStatement        string   `json:"problem_statement"`
	SolutionStatement       string   `json:"solution_statement"`
	DifferentiatorStatement string   `json:"differentiator_statement"`
	CallToAction            string   `json:"call_to_action"`
	KeyBenefits             []string `json:"key_benefits"`
}

// ExampleData holds industry-specific example phrases for the canvas.
type ExampleData struct {
	Jobs          []string `json:"jobs" yaml:"jobs"`
	Pains         []string `json:"pains" yaml:"pains"`
	Gains         []string `json:"gains" yaml:"gains"`
	PainRelievers []string `json:"pain_relievers" yaml:"pain_relievers"`
	GainCreators  []string `json:"gain_creators" yaml:"gain_creators"`
}

func hasText(items []string) bool {
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
