package pricing

import (
	"fmt"
	"math"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

const (
	lowProfitThreshold  = 20
	highProfitThreshold = 50
	highSliderThreshold = 7
	lowSliderThreshold  = 4
	penetrationDiscount = 0.85
	economyCostFloor    = 1.1
	premiumUplift       = 1.3
	skimmingValueUplift = 1.2
	skimmingCostUplift  = 1.5
)

// buildStrategies returns every applicable strategy in declaration order,
// before filtering and ranking.
func buildStrategies(in models.PricingInputs, b bases) []models.PricingStrategy {
	out := []models.PricingStrategy{costPlus(in, b)}
	if b.hasCompetitors {
		out = append(out, competitive(in, b))
	}
	out = append(out, valueBased(in, b))
	if in.MarketPosition == models.PositionPremium || in.ValuePerception > highSliderThreshold {
		out = append(out, premium(in, b))
	}
	if in.MarketPosition == models.PositionBudget ||
		in.MarketPosition == models.PositionValueFocused ||
		in.PriceElasticity > highSliderThreshold {
		out = append(out, economy(in, b))
	}
	out = append(out, penetration(in, b), skimming(in, b))
	return out
}

// reference is the competitor average when known, otherwise the cost-plus price.
func (b bases) reference() float64 {
	if b.hasCompetitors {
		return b.avgCompetitor
	}
	return b.costBased
}

func newStrategy(name, description string, price, totalCost float64) models.PricingStrategy {
	return models.PricingStrategy{
		Name:           name,
		Description:    description,
		SuggestedPrice: price,
		ProfitMargin:   ProfitMargin(price, totalCost),
		Pros:           []string{},
		Cons:           []string{},
	}
}

func costPlus(in models.PricingInputs, b bases) models.PricingStrategy {
	s := newStrategy("Cost-Plus Pricing",
		fmt.Sprintf("Adds a %.0f%% markup on top of the total unit cost.", in.TargetProfit),
		b.costBased, b.totalCost)

	s.Pros = append(s.Pros,
		"Simple to calculate and explain",
		"Guarantees every sale covers its costs",
	)
	s.Cons = append(s.Cons, "Ignores what customers are willing to pay")
	if b.hasCompetitors && b.costBased > b.avgCompetitor {
		s.Cons = append(s.Cons, "Sits above the competitor average")
	}

	switch {
	case in.TargetProfit < lowProfitThreshold:
		s.Recommendation = "Your markup is thin. Consider raising it unless volume is your main lever."
	case in.TargetProfit > highProfitThreshold:
		s.Recommendation = "A high markup works when your costs are hard for rivals to match. Check it against market prices."
	default:
		s.Recommendation = "A safe baseline. Use it as the floor for any other strategy."
	}
	return s
}

func competitive(in models.PricingInputs, b bases) models.PricingStrategy {
	s := newStrategy("Competitive Pricing",
		fmt.Sprintf("Anchors on the average competitor price, adjusted for a %s position.", in.MarketPosition.Label()),
		b.competitorBased, b.totalCost)

	s.Pros = append(s.Pros,
		"Keeps you in line with customer expectations",
		"Easy to justify against alternatives",
	)
	s.Cons = append(s.Cons, "Can start a race to the bottom")
	if s.ProfitMargin < lowProfitThreshold {
		s.Cons = append(s.Cons, "Leaves little margin at your current cost structure")
	}

	if in.PriceElasticity > highSliderThreshold {
		s.Recommendation = "Customers compare prices closely. Stay near the market and compete on service."
	} else {
		s.Recommendation = "Use the market as a reference point and differentiate on value."
	}
	return s
}

func valueBased(in models.PricingInputs, b bases) models.PricingStrategy {
	s := newStrategy("Value-Based Pricing",
		"Prices on the value customers perceive rather than on cost.",
		b.valueBased, b.totalCost)

	s.Pros = append(s.Pros, "Captures more of the value you create")
	s.Cons = append(s.Cons, "Needs solid customer research to get right")
	if in.ValuePerception > highSliderThreshold {
		s.Pros = append(s.Pros, "High perceived value supports a strong price")
	}
	if in.ValuePerception < lowSliderThreshold {
		s.Cons = append(s.Cons, "Low perceived value limits what customers will pay")
	}

	switch in.CustomerSegment {
	case models.SegmentEnterprise, models.SegmentB2B:
		s.Recommendation = "Business buyers respond to ROI. Tie the price to measurable outcomes."
	default:
		if in.ValuePerception > highSliderThreshold {
			s.Recommendation = "Strongly recommended. Customers already see the value."
		} else {
			s.Recommendation = "Invest in communicating benefits before leaning on this price."
		}
	}
	return s
}

func premium(in models.PricingInputs, b bases) models.PricingStrategy {
	price := math.Max(b.valueBased, b.costBased) * premiumUplift
	s := newStrategy("Premium Pricing",
		"Positions the product at the top of the market to signal quality.",
		price, b.totalCost)

	s.Pros = append(s.Pros,
		"Highest margin per sale",
		"Reinforces a quality brand image",
	)
	s.Cons = append(s.Cons,
		"Smaller addressable market",
		"Requires consistent premium experience",
	)
	if in.PriceElasticity > highSliderThreshold {
		s.Cons = append(s.Cons, "Price-sensitive customers may walk away")
	}

	if in.MarketPosition == models.PositionPremium {
		s.Recommendation = "Fits your premium positioning. Back it with exceptional quality and support."
	} else {
		s.Recommendation = "Your perceived value is high. Test a premium tier before moving the whole line."
	}
	return s
}

func economy(in models.PricingInputs, b bases) models.PricingStrategy {
	price := math.Max(b.totalCost*economyCostFloor, b.reference()*penetrationDiscount)
	s := newStrategy("Economy Pricing",
		"Keeps the price low with minimal frills to win on affordability.",
		price, b.totalCost)

	s.Pros = append(s.Pros,
		"Appeals to price-sensitive buyers",
		"Supports high sales volume",
	)
	s.Cons = append(s.Cons,
		"Thin margins leave little room for error",
		"Hard to raise prices later",
	)

	if in.MarketPosition == models.PositionBudget {
		s.Recommendation = "Matches your budget positioning. Keep operating costs tightly controlled."
	} else {
		s.Recommendation = "Useful for an entry-level offer alongside higher tiers."
	}
	return s
}

func penetration(in models.PricingInputs, b bases) models.PricingStrategy {
	s := newStrategy("Penetration Pricing",
		"Enters below the market to win share quickly, raising prices later.",
		b.reference()*penetrationDiscount, b.totalCost)

	s.Pros = append(s.Pros,
		"Builds a customer base quickly",
		"Discourages new competitors",
	)
	s.Cons = append(s.Cons,
		"Low initial profitability",
		"Customers may resist later increases",
	)

	switch {
	case in.PricingModel == models.ModelSubscription || in.PricingModel == models.ModelFreemium:
		s.Recommendation = "Works well with recurring revenue. Plan the step-up to full price upfront."
	case in.CustomerSegment == models.SegmentStartup || in.CustomerSegment == models.SegmentSMB:
		s.Recommendation = "Smaller buyers are cost-conscious. An introductory price can open the door."
	default:
		s.Recommendation = "Use for a launch window, then move toward your target price."
	}
	return s
}

func skimming(in models.PricingInputs, b bases) models.PricingStrategy {
	price := math.Max(b.valueBased*skimmingValueUplift, b.costBased*skimmingCostUplift)
	s := newStrategy("Price Skimming",
		"Launches high for early adopters and lowers the price over time.",
		price, b.totalCost)

	s.Pros = append(s.Pros,
		"Recovers costs quickly",
		"Maximizes revenue from early adopters",
	)
	s.Cons = append(s.Cons,
		"Attracts competitors to the high margin",
		"May frustrate early buyers when prices drop",
	)

	if in.ValuePerception > highSliderThreshold && in.PriceElasticity < lowSliderThreshold {
		s.Recommendation = "Strong fit. Buyers value the product and are not price-sensitive."
	} else {
		s.Recommendation = "Best for a novel product with little direct competition."
	}
	return s
}
