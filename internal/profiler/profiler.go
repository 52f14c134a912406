package profiler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/valueprop"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var ErrNoContent = errors.New("no content generated")

// Suggester proposes customer jobs, pains and gains for a business idea.
type Suggester interface {
	SuggestProfile(ctx context.Context, businessIdea, industry string) (models.CustomerProfile, error)
}

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(1024)

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *GeminiClient) Close() {
	g.client.Close()
}

func (g *GeminiClient) SuggestProfile(ctx context.Context, businessIdea, industry string) (models.CustomerProfile, error) {
	prompt := buildPrompt(businessIdea, industry)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.CustomerProfile{}, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.CustomerProfile{}, ErrNoContent
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	g.logger.Debug("gemini profile reply", zap.String("text", text))

	profile := ParseProfile(text)
	if profile.IsEmpty() {
		return models.CustomerProfile{}, fmt.Errorf("failed to parse profile: %w", ErrNoContent)
	}
	return profile, nil
}

// ParseProfile reads the single-line "jobs: a; b, pains: c, gains: d" reply
// format. Unknown keys are ignored.
func ParseProfile(text string) models.CustomerProfile {
	text = strings.TrimSpace(text)

	data := make(map[string]string)
	for _, pair := range strings.Split(text, ", ") {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) == 2 {
			key := strings.ToLower(strings.TrimSpace(parts[0]))
			data[key] = strings.TrimSpace(parts[1])
		}
	}

	return models.CustomerProfile{
		Jobs:  splitList(data["jobs"]),
		Pains: splitList(data["pains"]),
		Gains: splitList(data["gains"]),
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func buildPrompt(businessIdea, industry string) string {
	if industry == "" {
		industry = "unspecified"
	}
	return fmt.Sprintf(`You are an expert in the Value Proposition Canvas. Based ONLY on the business idea "%s" (industry: %s), describe its target customer.

The output MUST be a single line of text in the format "key: value, key: value" without any other text, markdown, or punctuation. Separate items inside a value with semicolons. Use only the following keys in this order:

jobs: 2-3 jobs the customer is trying to get done
pains: 2-3 pains the customer experiences
gains: 2-3 gains the customer wants

Example format: jobs: grow online visibility; win local customers, pains: low search rankings; no time for marketing, gains: more inbound leads; a trusted brand`, businessIdea, industry)
}

// ExampleSuggester answers from the built-in industry examples table. It
// never fails and makes no network calls.
type ExampleSuggester struct{}

func (ExampleSuggester) SuggestProfile(_ context.Context, _ string, industry string) (models.CustomerProfile, error) {
	data := valueprop.ExampleData(industry)
	return models.CustomerProfile{
		Jobs:  data.Jobs,
		Pains: data.Pains,
		Gains: data.Gains,
	}, nil
}
