package models

// MarketPosition selects the positional multipliers used by the pricing engine.
type MarketPosition string

const (
	PositionPremium      MarketPosition = "premium"
	PositionMidMarket    MarketPosition = "mid-market"
	PositionBudget       MarketPosition = "budget"
	PositionValueFocused MarketPosition = "value-focused"
)

// Label is the human-readable name shown in reports.
func (p MarketPosition) Label() string {
	switch p {
	case PositionPremium:
		return "Premium/Luxury"
	case PositionMidMarket:
		return "Mid-market"
	case PositionBudget:
		return "Budget/Economy"
	case PositionValueFocused:
		return "Value-focused"
	default:
		return string(p)
	}
}

type CustomerSegment string

const (
	SegmentB2B        CustomerSegment = "b2b"
	SegmentB2C        CustomerSegment = "b2c"
	SegmentEnterprise CustomerSegment = "enterprise"
	SegmentSMB        CustomerSegment = "smb"
	SegmentStartup    CustomerSegment = "startup"
)

type PricingModel string

const (
	ModelOneTime      PricingModel = "one-time"
	ModelSubscription PricingModel = "subscription"
	ModelUsageBased   PricingModel = "usage-based"
	ModelTiered       PricingModel = "tiered"
	ModelFreemium     PricingModel = "freemium"
)

// CostBreakdown holds the six per-unit cost lines of a product.
type CostBreakdown struct {
	Materials float64 `json:"materials" yaml:"materials" validate:"gte=0"`
	Labor     float64 `json:"labor" yaml:"labor" validate:"gte=0"`
	Overhead  float64 `json:"overhead" yaml:"overhead" validate:"gte=0"`
	Shipping  float64 `json:"shipping" yaml:"shipping" validate:"gte=0"`
	Marketing float64 `json:"marketing" yaml:"marketing" validate:"gte=0"`
	Other     float64 `json:"other" yaml:"other" validate:"gte=0"`
}

// Total sums all cost lines.
func (c CostBreakdown) Total() float64 {
	return c.Materials + c.Labor + c.Overhead + c.Shipping + c.Marketing + c.Other
}

type CompetitorPrice struct {
	Name  string  `json:"name" yaml:"name" validate:"required"`
	Price float64 `json:"price" yaml:"price" validate:"gt=0"`
}

// PricingInputs is everything the pricing calculator form collects.
type PricingInputs struct {
	ProductName     string            `json:"product_name" yaml:"product_name" validate:"required"`
	Costs           CostBreakdown     `json:"costs" yaml:"costs"`
	TargetProfit    float64           `json:"target_profit" yaml:"target_profit" validate:"gte=1,lte=80"`
	Competitors     []CompetitorPrice `json:"competitors" yaml:"competitors" validate:"dive"`
	ValuePerception float64           `json:"value_perception" yaml:"value_perception" validate:"gte=1,lte=10"`
	PriceElasticity float64           `json:"price_elasticity" yaml:"price_elasticity" validate:"gte=1,lte=10"`
	CustomerSegment CustomerSegment   `json:"customer_segment" yaml:"customer_segment" validate:"omitempty,oneof=b2b b2c enterprise smb startup"`
	MarketPosition  MarketPosition    `json:"market_position" yaml:"market_position" validate:"required,oneof=premium mid-market budget value-focused"`
	PricingModel    PricingModel      `json:"pricing_model" yaml:"pricing_model" validate:"omitempty,oneof=one-time subscription usage-based tiered freemium"`
}

// PricingStrategy is one candidate price point with its narrative.
type PricingStrategy struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	SuggestedPrice float64  `json:"suggested_price"`
	ProfitMargin   float64  `json:"profit_margin"` // percent
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	Recommendation string   `json:"recommendation"`
}

type PricingAnalysis struct {
	ProductName            string            `json:"product_name"`
	TotalCost              float64           `json:"total_cost"`
	CostBasedPrice         float64           `json:"cost_based_price"`
	AverageCompetitorPrice float64           `json:"average_competitor_price"`
	CompetitorBasedPrice   float64           `json:"competitor_based_price"`
	ValueBasedPrice        float64           `json:"value_based_price"`
	HasCompetitors         bool              `json:"has_competitors"`
	RecommendedStrategies  []PricingStrategy `json:"recommended_strategies"`
}
