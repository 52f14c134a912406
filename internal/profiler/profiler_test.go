package profiler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/valueprop"
)

func TestParseProfile(t *testing.T) {
	text := "jobs: grow online visibility; win local customers, pains: low search rankings; no time for marketing, gains: more inbound leads\n"

	p := ParseProfile(text)
	assert.Equal(t, []string{"grow online visibility", "win local customers"}, p.Jobs)
	assert.Equal(t, []string{"low search rankings", "no time for marketing"}, p.Pains)
	assert.Equal(t, []string{"more inbound leads"}, p.Gains)
}

func TestParseProfile_CaseAndNoise(t *testing.T) {
	p := ParseProfile("Jobs: ship faster;  ; , Extra: ignored, GAINS: uptime")
	assert.Equal(t, []string{"ship faster"}, p.Jobs)
	assert.Empty(t, p.Pains)
	assert.Equal(t, []string{"uptime"}, p.Gains)
}

func TestParseProfile_Garbage(t *testing.T) {
	assert.True(t, ParseProfile("I cannot help with that").IsEmpty())
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("local bakery directory", "")
	assert.Contains(t, prompt, `"local bakery directory"`)
	assert.Contains(t, prompt, "industry: unspecified")
}

func TestExampleSuggester(t *testing.T) {
	var s Suggester = ExampleSuggester{}

	p, err := s.SuggestProfile(context.Background(), "anything", "ecommerce")
	require.NoError(t, err)

	want := valueprop.ExampleData("ecommerce")
	assert.Equal(t, want.Jobs, p.Jobs)
	assert.Equal(t, want.Pains, p.Pains)
	assert.Equal(t, want.Gains, p.Gains)
}
