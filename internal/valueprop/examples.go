package valueprop

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

// DefaultIndustry is the bucket used for unrecognised industries.
const DefaultIndustry = "default"

//go:embed examples.yaml
var examplesYAML []byte

var exampleTable = mustParseExamples(examplesYAML)

func mustParseExamples(data []byte) map[string]models.ExampleData {
	table, err := parseExamples(data)
	if err != nil {
		panic(err)
	}
	return table
}

func parseExamples(data []byte) (map[string]models.ExampleData, error) {
	var table map[string]models.ExampleData
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse industry examples: %w", err)
	}
	if _, ok := table[DefaultIndustry]; !ok {
		return nil, fmt.Errorf("industry examples missing %q bucket", DefaultIndustry)
	}
	return table, nil
}

// ExampleData returns example canvas phrases for an industry, falling back
// to the default bucket when the industry is unknown. The result is a copy.
func ExampleData(industry string) models.ExampleData {
	data := exampleTable[ResolveIndustry(industry)]
	return models.ExampleData{
		Jobs:          clone(data.Jobs),
		Pains:         clone(data.Pains),
		Gains:         clone(data.Gains),
		PainRelievers: clone(data.PainRelievers),
		GainCreators:  clone(data.GainCreators),
	}
}

// ResolveIndustry returns the examples bucket used for industry: its
// normalized key when known, DefaultIndustry otherwise.
func ResolveIndustry(industry string) string {
	key := normalizeIndustry(industry)
	if _, ok := exampleTable[key]; ok {
		return key
	}
	return DefaultIndustry
}

// Industries lists the known industry keys, default excluded.
func Industries() []string {
	keys := make([]string, 0, len(exampleTable))
	for k := range exampleTable {
		if k != DefaultIndustry {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// normalizeIndustry maps "Real Estate" and "real_estate" to "real-estate".
func normalizeIndustry(industry string) string {
	s := strings.ToLower(strings.TrimSpace(industry))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	return s
}

func clone(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}

var industryKeywords = map[string][]string{
	"technology":  {"software", "saas", "app", "cloud", "developer", "api", "tech"},
	"ecommerce":   {"e-commerce", "ecommerce", "online store", "shop", "retail", "marketplace"},
	"healthcare":  {"clinic", "health", "dental", "dentist", "medical", "doctor", "therapy"},
	"finance":     {"finance", "accounting", "bank", "insurance", "tax", "invest", "fintech"},
	"education":   {"course", "school", "tutor", "education", "learning", "training"},
	"marketing":   {"seo", "marketing", "backlink", "agency", "advertising", "directory"},
	"real-estate": {"real estate", "property", "realtor", "housing", "rental"},
	"hospitality": {"restaurant", "hotel", "cafe", "bakery", "travel", "catering"},
}

// DetectIndustry guesses the industry of a free-text business idea by
// keyword hits. Ties go to the alphabetically first industry; no hits
// yields DefaultIndustry.
func DetectIndustry(idea string) string {
	text := strings.ToLower(idea)

	best, bestHits := DefaultIndustry, 0
	for _, industry := range Industries() {
		hits := 0
		for _, kw := range industryKeywords[industry] {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = industry, hits
		}
	}
	return best
}
