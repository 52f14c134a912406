package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

const tolerance = 1e-9

// Helper to build calculator inputs with mid-range sliders.
func makeInputs(materials, labor, targetProfit float64, competitors ...models.CompetitorPrice) models.PricingInputs {
	return models.PricingInputs{
		ProductName:     "Directory Submission Pack",
		Costs:           models.CostBreakdown{Materials: materials, Labor: labor},
		TargetProfit:    targetProfit,
		Competitors:     competitors,
		ValuePerception: 5,
		PriceElasticity: 5,
		CustomerSegment: models.SegmentSMB,
		MarketPosition:  models.PositionMidMarket,
		PricingModel:    models.ModelOneTime,
	}
}

func findStrategy(t *testing.T, a models.PricingAnalysis, name string) models.PricingStrategy {
	t.Helper()
	for _, s := range a.RecommendedStrategies {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("strategy %q not recommended", name)
	return models.PricingStrategy{}
}

func hasStrategy(a models.PricingAnalysis, name string) bool {
	for _, s := range a.RecommendedStrategies {
		if s.Name == name {
			return true
		}
	}
	return false
}

func TestGenerateAnalysis_ExampleScenario(t *testing.T) {
	a := GenerateAnalysis(makeInputs(10, 5, 50))

	assert.InDelta(t, 15.0, a.TotalCost, tolerance)
	assert.InDelta(t, 22.5, a.CostBasedPrice, tolerance)

	costPlus := findStrategy(t, a, "Cost-Plus Pricing")
	assert.InDelta(t, 22.5, costPlus.SuggestedPrice, tolerance)
	assert.InDelta(t, 100.0/3.0, costPlus.ProfitMargin, 1e-6)
}

func TestGenerateAnalysis_CostPlusMarginMatchesTargetProfit(t *testing.T) {
	for _, profit := range []float64{1, 10, 20, 35, 50, 79, 80} {
		a := GenerateAnalysis(makeInputs(40, 12.5, profit))

		total := 52.5
		assert.InDelta(t, total*(1+profit/100), a.CostBasedPrice, 1e-6, "profit %v", profit)

		costPlus := findStrategy(t, a, "Cost-Plus Pricing")
		assert.InDelta(t, profit/(100+profit)*100, costPlus.ProfitMargin, 1e-6, "profit %v", profit)
	}
}

func TestGenerateAnalysis_NoCompetitors(t *testing.T) {
	a := GenerateAnalysis(makeInputs(10, 5, 50))

	assert.False(t, a.HasCompetitors)
	assert.Zero(t, a.AverageCompetitorPrice)
	assert.Zero(t, a.CompetitorBasedPrice)
	assert.False(t, hasStrategy(a, "Competitive Pricing"))
}

func TestGenerateAnalysis_SingleMidMarketCompetitor(t *testing.T) {
	a := GenerateAnalysis(makeInputs(10, 5, 50, models.CompetitorPrice{Name: "Acme", Price: 100}))

	assert.True(t, a.HasCompetitors)
	assert.InDelta(t, 100.0, a.AverageCompetitorPrice, tolerance)
	assert.InDelta(t, 100.0, a.CompetitorBasedPrice, tolerance)

	competitive := findStrategy(t, a, "Competitive Pricing")
	assert.InDelta(t, 85.0, competitive.ProfitMargin, 1e-6)
}

func TestGenerateAnalysis_PositionalMultipliers(t *testing.T) {
	tests := []struct {
		position   models.MarketPosition
		competitor float64
		value      float64
	}{
		{models.PositionPremium, 1.2, 1.5},
		{models.PositionMidMarket, 1.0, 1.2},
		{models.PositionBudget, 0.8, 1.0},
		{models.PositionValueFocused, 0.9, 1.1},
	}

	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			in := makeInputs(100, 0, 30,
				models.CompetitorPrice{Name: "A", Price: 150},
				models.CompetitorPrice{Name: "B", Price: 250},
			)
			in.MarketPosition = tt.position
			in.ValuePerception = 8
			in.PriceElasticity = 6

			a := GenerateAnalysis(in)

			assert.InDelta(t, 200.0, a.AverageCompetitorPrice, tolerance)
			assert.InDelta(t, 200*tt.competitor, a.CompetitorBasedPrice, 1e-6)
			assert.InDelta(t, 100*1.8*0.6*tt.value, a.ValueBasedPrice, 1e-6)
		})
	}
}

func TestGenerateAnalysis_SortedAndPositive(t *testing.T) {
	inputs := []models.PricingInputs{
		makeInputs(10, 5, 50),
		makeInputs(80, 20, 5, models.CompetitorPrice{Name: "Cheap", Price: 60}),
		makeInputs(3, 1, 80, models.CompetitorPrice{Name: "A", Price: 20}, models.CompetitorPrice{Name: "B", Price: 30}),
	}
	inputs[1].MarketPosition = models.PositionBudget
	inputs[1].PriceElasticity = 9
	inputs[2].MarketPosition = models.PositionPremium
	inputs[2].ValuePerception = 10

	for i, in := range inputs {
		a := GenerateAnalysis(in)
		require.NotEmpty(t, a.RecommendedStrategies, "case %d", i)

		for j, s := range a.RecommendedStrategies {
			assert.Greater(t, s.ProfitMargin, 0.0, "case %d %s", i, s.Name)
			if j > 0 {
				assert.GreaterOrEqual(t, a.RecommendedStrategies[j-1].ProfitMargin, s.ProfitMargin, "case %d", i)
			}
		}
	}
}

func TestGenerateAnalysis_ConditionalStrategies(t *testing.T) {
	in := makeInputs(10, 5, 50)
	a := GenerateAnalysis(in)
	assert.False(t, hasStrategy(a, "Premium Pricing"))
	assert.False(t, hasStrategy(a, "Economy Pricing"))

	in.ValuePerception = 9
	a = GenerateAnalysis(in)
	assert.True(t, hasStrategy(a, "Premium Pricing"))

	in = makeInputs(10, 5, 50)
	in.MarketPosition = models.PositionBudget
	a = GenerateAnalysis(in)
	assert.True(t, hasStrategy(a, "Economy Pricing"))
}

func TestGenerateAnalysis_Skimming(t *testing.T) {
	in := makeInputs(10, 5, 50)
	a := GenerateAnalysis(in)

	skim := findStrategy(t, a, "Price Skimming")
	want := a.CostBasedPrice * 1.5
	if v := a.ValueBasedPrice * 1.2; v > want {
		want = v
	}
	assert.InDelta(t, want, skim.SuggestedPrice, 1e-6)
}

func TestGenerateAnalysis_ZeroCost(t *testing.T) {
	in := makeInputs(0, 0, 50)
	a := GenerateAnalysis(in)

	assert.Zero(t, a.TotalCost)
	assert.Zero(t, a.CostBasedPrice)
	assert.Empty(t, a.RecommendedStrategies)
}

func TestGenerateAnalysis_ZeroCostWithCompetitors(t *testing.T) {
	in := makeInputs(0, 0, 50, models.CompetitorPrice{Name: "Acme", Price: 100})
	a := GenerateAnalysis(in)

	assert.Zero(t, a.TotalCost)
	assert.True(t, a.HasCompetitors)
	assert.InDelta(t, 100.0, a.AverageCompetitorPrice, tolerance)
	assert.InDelta(t, 100.0, a.CompetitorBasedPrice, tolerance)
	assert.Empty(t, a.RecommendedStrategies)
}

func TestGenerateAnalysis_StrategyPrices(t *testing.T) {
	// Base: total cost 15, cost-plus 22.50, mid-market, sliders at 5.
	tests := []struct {
		name     string
		strategy string
		mutate   func(in *models.PricingInputs)
		want     float64
	}{
		{
			name:     "premium from cost-plus",
			strategy: "Premium Pricing",
			mutate:   func(in *models.PricingInputs) { in.ValuePerception = 9 },
			want:     22.5 * 1.3,
		},
		{
			name:     "premium from value-based",
			strategy: "Premium Pricing",
			mutate: func(in *models.PricingInputs) {
				in.MarketPosition = models.PositionPremium
				in.ValuePerception = 10
				in.PriceElasticity = 10
			},
			want: 15 * 2 * 1 * 1.5 * 1.3,
		},
		{
			name:     "economy without competitors",
			strategy: "Economy Pricing",
			mutate:   func(in *models.PricingInputs) { in.MarketPosition = models.PositionBudget },
			want:     22.5 * 0.85,
		},
		{
			name:     "economy floored at cost",
			strategy: "Economy Pricing",
			mutate: func(in *models.PricingInputs) {
				in.MarketPosition = models.PositionBudget
				in.Competitors = []models.CompetitorPrice{{Name: "Cheap", Price: 10}}
			},
			want: 15 * 1.1,
		},
		{
			name:     "economy from competitor average",
			strategy: "Economy Pricing",
			mutate: func(in *models.PricingInputs) {
				in.PriceElasticity = 9
				in.Competitors = []models.CompetitorPrice{{Name: "A", Price: 30}, {Name: "B", Price: 50}}
			},
			want: 40 * 0.85,
		},
		{
			name:     "penetration without competitors",
			strategy: "Penetration Pricing",
			want:     22.5 * 0.85,
		},
		{
			name:     "penetration from competitor average",
			strategy: "Penetration Pricing",
			mutate: func(in *models.PricingInputs) {
				in.Competitors = []models.CompetitorPrice{{Name: "Acme", Price: 100}}
			},
			want: 85,
		},
		{
			name:     "skimming from cost-plus",
			strategy: "Price Skimming",
			want:     22.5 * 1.5,
		},
		{
			name:     "skimming from value-based",
			strategy: "Price Skimming",
			mutate: func(in *models.PricingInputs) {
				in.MarketPosition = models.PositionPremium
				in.ValuePerception = 10
				in.PriceElasticity = 10
			},
			want: 45 * 1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := makeInputs(10, 5, 50)
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			s := findStrategy(t, GenerateAnalysis(in), tt.strategy)
			assert.InDelta(t, tt.want, s.SuggestedPrice, 1e-6)
			assert.InDelta(t, (tt.want-15)/tt.want*100, s.ProfitMargin, 1e-6)
		})
	}
}

func TestGenerateAnalysis_StrategyText(t *testing.T) {
	const (
		pros = "pros"
		cons = "cons"
		rec  = "recommendation"
	)

	tests := []struct {
		name     string
		strategy string
		mutate   func(in *models.PricingInputs)
		field    string
		want     string
	}{
		{"cost-plus low markup", "Cost-Plus Pricing", func(in *models.PricingInputs) { in.TargetProfit = 10 }, rec, "markup is thin"},
		{"cost-plus high markup", "Cost-Plus Pricing", func(in *models.PricingInputs) { in.TargetProfit = 60 }, rec, "high markup"},
		{"cost-plus baseline", "Cost-Plus Pricing", nil, rec, "safe baseline"},
		{"cost-plus above competitors", "Cost-Plus Pricing", func(in *models.PricingInputs) {
			in.Competitors = []models.CompetitorPrice{{Name: "Acme", Price: 20}}
		}, cons, "Sits above the competitor average"},
		{"competitive thin margin", "Competitive Pricing", func(in *models.PricingInputs) {
			in.Competitors = []models.CompetitorPrice{{Name: "Acme", Price: 17}}
		}, cons, "Leaves little margin"},
		{"competitive elastic", "Competitive Pricing", func(in *models.PricingInputs) {
			in.Competitors = []models.CompetitorPrice{{Name: "Acme", Price: 40}}
			in.PriceElasticity = 9
		}, rec, "compare prices closely"},
		{"competitive default", "Competitive Pricing", func(in *models.PricingInputs) {
			in.Competitors = []models.CompetitorPrice{{Name: "Acme", Price: 40}}
		}, rec, "reference point"},
		{"value-based high perception", "Value-Based Pricing", func(in *models.PricingInputs) { in.ValuePerception = 9 }, pros, "High perceived value"},
		{"value-based low perception", "Value-Based Pricing", func(in *models.PricingInputs) {
			in.ValuePerception = 3
			in.PriceElasticity = 10
		}, cons, "Low perceived value"},
		{"value-based enterprise", "Value-Based Pricing", func(in *models.PricingInputs) {
			in.CustomerSegment = models.SegmentEnterprise
			in.ValuePerception = 9
		}, rec, "ROI"},
		{"value-based strong", "Value-Based Pricing", func(in *models.PricingInputs) { in.ValuePerception = 9 }, rec, "Strongly recommended"},
		{"value-based communicate", "Value-Based Pricing", func(in *models.PricingInputs) {
			in.MarketPosition = models.PositionPremium
			in.PriceElasticity = 9
		}, rec, "communicating benefits"},
		{"premium elastic", "Premium Pricing", func(in *models.PricingInputs) {
			in.ValuePerception = 9
			in.PriceElasticity = 9
		}, cons, "Price-sensitive customers"},
		{"premium position", "Premium Pricing", func(in *models.PricingInputs) { in.MarketPosition = models.PositionPremium }, rec, "premium positioning"},
		{"premium tier", "Premium Pricing", func(in *models.PricingInputs) { in.ValuePerception = 9 }, rec, "premium tier"},
		{"economy budget", "Economy Pricing", func(in *models.PricingInputs) { in.MarketPosition = models.PositionBudget }, rec, "budget positioning"},
		{"economy entry level", "Economy Pricing", func(in *models.PricingInputs) { in.PriceElasticity = 9 }, rec, "entry-level"},
		{"penetration subscription", "Penetration Pricing", func(in *models.PricingInputs) { in.PricingModel = models.ModelSubscription }, rec, "recurring revenue"},
		{"penetration freemium", "Penetration Pricing", func(in *models.PricingInputs) { in.PricingModel = models.ModelFreemium }, rec, "recurring revenue"},
		{"penetration small buyers", "Penetration Pricing", func(in *models.PricingInputs) { in.CustomerSegment = models.SegmentStartup }, rec, "Smaller buyers"},
		{"penetration launch", "Penetration Pricing", func(in *models.PricingInputs) { in.CustomerSegment = models.SegmentB2C }, rec, "launch window"},
		{"skimming strong fit", "Price Skimming", func(in *models.PricingInputs) {
			in.ValuePerception = 9
			in.PriceElasticity = 3
		}, rec, "Strong fit"},
		{"skimming default", "Price Skimming", nil, rec, "novel product"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := makeInputs(10, 5, 50)
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			s := findStrategy(t, GenerateAnalysis(in), tt.strategy)
			switch tt.field {
			case pros:
				assert.Contains(t, strings.Join(s.Pros, "\n"), tt.want)
			case cons:
				assert.Contains(t, strings.Join(s.Cons, "\n"), tt.want)
			default:
				assert.Contains(t, s.Recommendation, tt.want)
			}
		})
	}
}

func TestGenerateAnalysis_LowProfitRecommendation(t *testing.T) {
	a := GenerateAnalysis(makeInputs(10, 5, 10))

	costPlus := findStrategy(t, a, "Cost-Plus Pricing")
	assert.Contains(t, costPlus.Recommendation, "thin")
	assert.NotEmpty(t, costPlus.Pros)
	assert.NotEmpty(t, costPlus.Cons)
}

func TestGenerateAnalysis_Deterministic(t *testing.T) {
	in := makeInputs(12, 7, 42, models.CompetitorPrice{Name: "A", Price: 40})
	first := GenerateAnalysis(in)
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, GenerateAnalysis(in), "run %d", run)
	}
}

func TestProfitMargin_Guards(t *testing.T) {
	assert.Zero(t, ProfitMargin(0, 10))
	assert.Zero(t, ProfitMargin(-5, 10))
	assert.InDelta(t, 50.0, ProfitMargin(20, 10), tolerance)
	assert.Less(t, ProfitMargin(5, 10), 0.0)
}

func TestAverageCompetitorPrice(t *testing.T) {
	assert.Zero(t, AverageCompetitorPrice(nil))
	assert.InDelta(t, 15.0, AverageCompetitorPrice([]models.CompetitorPrice{
		{Name: "A", Price: 10},
		{Name: "B", Price: 20},
	}), tolerance)
}
