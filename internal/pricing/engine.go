// Package pricing turns a cost breakdown, competitor prices and market
// positioning into a ranked set of candidate pricing strategies.
package pricing

import (
	"math"
	"sort"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

// competitorMultiplier scales the competitor average by market position.
var competitorMultiplier = map[models.MarketPosition]float64{
	models.PositionPremium:      1.2,
	models.PositionMidMarket:    1.0,
	models.PositionBudget:       0.8,
	models.PositionValueFocused: 0.9,
}

// valueMultiplier scales the value-based price by market position.
var valueMultiplier = map[models.MarketPosition]float64{
	models.PositionPremium:      1.5,
	models.PositionMidMarket:    1.2,
	models.PositionBudget:       1.0,
	models.PositionValueFocused: 1.1,
}

// Unknown positions price like mid-market.
func multiplier(table map[models.MarketPosition]float64, p models.MarketPosition) float64 {
	if m, ok := table[p]; ok {
		return m
	}
	return table[models.PositionMidMarket]
}

// GenerateAnalysis computes the price bases and the recommended strategies
// for one set of calculator inputs. It has no side effects.
//
// A zero total cost yields no strategies, with or without competitors.
func GenerateAnalysis(in models.PricingInputs) models.PricingAnalysis {
	b := computeBases(in)

	var strategies []models.PricingStrategy
	if b.totalCost > 0 {
		strategies = buildStrategies(in, b)
	}

	recommended := make([]models.PricingStrategy, 0, len(strategies))
	for _, s := range strategies {
		if s.ProfitMargin > 0 {
			recommended = append(recommended, s)
		}
	}
	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].ProfitMargin > recommended[j].ProfitMargin
	})

	return models.PricingAnalysis{
		ProductName:            in.ProductName,
		TotalCost:              b.totalCost,
		CostBasedPrice:         b.costBased,
		AverageCompetitorPrice: b.avgCompetitor,
		CompetitorBasedPrice:   b.competitorBased,
		ValueBasedPrice:        b.valueBased,
		HasCompetitors:         b.hasCompetitors,
		RecommendedStrategies:  recommended,
	}
}

type bases struct {
	totalCost       float64
	costBased       float64
	avgCompetitor   float64
	competitorBased float64
	valueBased      float64
	hasCompetitors  bool
}

func computeBases(in models.PricingInputs) bases {
	var b bases
	b.totalCost = in.Costs.Total()
	b.costBased = b.totalCost * (1 + in.TargetProfit/100)
	b.avgCompetitor = AverageCompetitorPrice(in.Competitors)
	b.hasCompetitors = len(in.Competitors) > 0
	if b.hasCompetitors {
		b.competitorBased = b.avgCompetitor * multiplier(competitorMultiplier, in.MarketPosition)
	}
	b.valueBased = b.totalCost *
		(1 + in.ValuePerception/10) *
		(in.PriceElasticity / 10) *
		multiplier(valueMultiplier, in.MarketPosition)
	return b
}

// AverageCompetitorPrice is the mean competitor price, or 0 for an empty list.
func AverageCompetitorPrice(competitors []models.CompetitorPrice) float64 {
	if len(competitors) == 0 {
		return 0
	}
	var sum float64
	for _, c := range competitors {
		sum += c.Price
	}
	return sum / float64(len(competitors))
}

// ProfitMargin returns the margin of price over cost as a percentage.
// Prices that are zero, negative or not finite yield 0.
func ProfitMargin(price, totalCost float64) float64 {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return (price - totalCost) / price * 100
}
