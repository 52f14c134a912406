package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/export"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/input"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/pricing"
)

var pricingInputPath string

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Rank pricing strategies for a product",
	Example: `  toolkit pricing --input product.yaml
  toolkit pricing -i product.json -f csv -o strategies.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(export.FormatText, export.FormatMarkdown, export.FormatCSV, export.FormatJSON)
		if err != nil {
			return err
		}

		var inputs models.PricingInputs
		if err := input.LoadFile(pricingInputPath, &inputs); err != nil {
			return err
		}
		if err := models.Validate(inputs); err != nil {
			return err
		}

		analysis := pricing.GenerateAnalysis(inputs)
		logger.Debug("pricing analysis generated",
			zap.String("product", inputs.ProductName),
			zap.Float64("total_cost", analysis.TotalCost),
			zap.Int("strategies", len(analysis.RecommendedStrategies)))

		var out string
		switch format {
		case export.FormatMarkdown:
			out = export.PricingMarkdown(analysis)
		case export.FormatCSV:
			out, err = export.PricingCSV(analysis)
		case export.FormatJSON:
			out, err = export.JSON(analysis)
		default:
			out = export.PricingText(analysis)
		}
		if err != nil {
			return err
		}
		return writeOutput(cmd, out)
	},
}

func init() {
	pricingCmd.Flags().StringVarP(&pricingInputPath, "input", "i", "", "Pricing inputs file (.yaml, .yml, .json, or - for stdin)")
	_ = pricingCmd.MarkFlagRequired("input")
}
