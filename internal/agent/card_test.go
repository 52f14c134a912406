package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAgentCard(t *testing.T) {
	require.NoError(t, LoadAgentCard())
	require.NotEmpty(t, AgentCardData)

	var card struct {
		Name   string `json:"name"`
		Skills []struct {
			ID string `json:"id"`
		} `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(AgentCardData, &card))
	assert.Equal(t, "Growth Toolkit Agent", card.Name)

	var ids []string
	for _, s := range card.Skills {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{"pricing/analyze", "valueprop/generate", "valueprop/examples", "speed/analyze"}, ids)
}
