package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/export"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/input"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/profiler"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/valueprop"
)

var (
	valuePropInputPath string
	valuePropSeed      int64
	valuePropUseAI     bool
)

var valuePropCmd = &cobra.Command{
	Use:     "valueprop",
	Aliases: []string{"vp"},
	Short:   "Generate value proposition copy from a canvas",
	Example: `  toolkit valueprop --input canvas.yaml
  toolkit vp -i canvas.json --seed 42 -f markdown
  toolkit vp -i canvas.yaml --ai`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(export.FormatText, export.FormatMarkdown, export.FormatJSON)
		if err != nil {
			return err
		}

		var inputs models.ValuePropositionInputs
		if err := input.LoadFile(valuePropInputPath, &inputs); err != nil {
			return err
		}
		if err := models.Validate(inputs); err != nil {
			return err
		}

		if inputs.CustomerProfile.IsEmpty() {
			inputs.CustomerProfile = suggestProfile(cmd.Context(), inputs)
		}

		gen := valueprop.NewGenerator(nil)
		if cmd.Flags().Changed("seed") {
			gen = valueprop.NewSeededGenerator(valuePropSeed)
		}
		vp := gen.Generate(inputs)

		var out string
		switch format {
		case export.FormatMarkdown:
			out = export.ValuePropositionMarkdown(inputs.BusinessName, vp)
		case export.FormatJSON:
			out, err = export.JSON(vp)
			if err != nil {
				return err
			}
		default:
			out = export.ValuePropositionText(vp)
		}
		return writeOutput(cmd, out)
	},
}

// suggestProfile uses Gemini when --ai is set and a key is configured,
// otherwise the industry examples.
func suggestProfile(ctx context.Context, inputs models.ValuePropositionInputs) models.CustomerProfile {
	if ctx == nil {
		ctx = context.Background()
	}
	idea := inputs.ProductDescription
	if idea == "" {
		idea = inputs.BusinessName
	}

	if valuePropUseAI && cfg.ProfilerEnabled() {
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		profile, err := geminiProfile(ctx, idea, inputs.Industry)
		if err == nil {
			return profile
		}
		logger.Warn("Gemini suggestion failed, using industry examples", zap.Error(err))
	} else if valuePropUseAI {
		logger.Warn("--ai requested but GEMINI_API_KEY is not set")
	}

	profile, _ := profiler.ExampleSuggester{}.SuggestProfile(ctx, idea, inputs.Industry)
	return profile
}

func geminiProfile(ctx context.Context, idea, industry string) (models.CustomerProfile, error) {
	client, err := profiler.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		return models.CustomerProfile{}, err
	}
	defer client.Close()
	return client.SuggestProfile(ctx, idea, industry)
}

func init() {
	valuePropCmd.Flags().StringVarP(&valuePropInputPath, "input", "i", "", "Canvas inputs file (.yaml, .yml, .json, or - for stdin)")
	valuePropCmd.Flags().Int64Var(&valuePropSeed, "seed", 0, "Seed for reproducible template selection")
	valuePropCmd.Flags().BoolVar(&valuePropUseAI, "ai", false, "Ask Gemini for customer jobs, pains and gains when the profile is empty")
	_ = valuePropCmd.MarkFlagRequired("input")
}
