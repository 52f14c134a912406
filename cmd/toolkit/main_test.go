package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/export"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

const pricingInput = `
product_name: Directory Pack
costs:
  materials: 10
  labor: 5
target_profit: 50
value_perception: 5
price_elasticity: 5
market_position: mid-market
`

const canvasInput = `{
  "business_name": "LinkLift",
  "industry": "marketing",
  "target_audience": "small agencies",
  "value_map": {"pain_relievers": ["done-for-you submissions"]}
}`

// runCLI executes the root command with fresh global flag values.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose, formatName, outputPath = false, "text", ""
	pricingInputPath, valuePropInputPath = "", ""
	valuePropSeed, valuePropUseAI = 0, false
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestPricingCmd_Text(t *testing.T) {
	path := writeFile(t, "pricing.yaml", pricingInput)

	out, err := runCLI(t, "pricing", "--input", path, "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "PRICING STRATEGY ANALYSIS: Directory Pack")
	assert.Contains(t, out, "Cost-Based Price: $22.50")
	assert.Contains(t, out, "Average Competitor Price: N/A")
}

func TestPricingCmd_CSVToFile(t *testing.T) {
	path := writeFile(t, "pricing.yaml", pricingInput)
	dest := filepath.Join(t.TempDir(), "out.csv")

	out, err := runCLI(t, "pricing", "-i", path, "-f", "csv", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "strategy", records[0][0])
	assert.Greater(t, len(records), 1)
}

func TestPricingCmd_ValidationError(t *testing.T) {
	path := writeFile(t, "pricing.yaml", "product_name: ''\ntarget_profit: 500\n")

	_, err := runCLI(t, "pricing", "-i", path, "-f", "text")
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "product_name is required")
}

func TestValuePropCmd_SeededJSON(t *testing.T) {
	path := writeFile(t, "canvas.json", canvasInput)

	first, err := runCLI(t, "valueprop", "-i", path, "--seed", "42", "-f", "json")
	require.NoError(t, err)
	second, err := runCLI(t, "vp", "-i", path, "--seed", "42", "-f", "json")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var vp models.ValueProposition
	require.NoError(t, json.Unmarshal([]byte(first), &vp))
	assert.NotEmpty(t, vp.Headline)
	require.Len(t, vp.KeyBenefits, 5)
	assert.True(t, strings.HasPrefix(vp.KeyBenefits[0], "Done-for-you submissions to eliminate "))
}

func TestValuePropCmd_RejectsCSV(t *testing.T) {
	path := writeFile(t, "canvas.json", canvasInput)

	_, err := runCLI(t, "valueprop", "-i", path, "-f", "csv")
	assert.True(t, errors.Is(err, export.ErrUnknownFormat))
}

func TestSpeedCmd(t *testing.T) {
	out, err := runCLI(t, "speed", "example.com", "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "WEBSITE SPEED REPORT: https://example.com/")

	_, err = runCLI(t, "speed", "not a url", "-f", "text")
	assert.Error(t, err)
}

func TestExamplesCmd(t *testing.T) {
	out, err := runCLI(t, "examples", "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "ecommerce\n")

	out, err = runCLI(t, "examples", "marketing", "-f", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Example canvas: marketing")
}
