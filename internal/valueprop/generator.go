// Package valueprop builds value proposition copy from a value proposition
// canvas: a customer profile (jobs, pains, gains) and a value map (pain
// relievers, gain creators, products).
package valueprop

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

// MaxKeyBenefits caps the benefit list and is also the padded length.
const MaxKeyBenefits = 5

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// globalPicker uses the goroutine-safe top-level math/rand source.
type globalPicker struct{}

func (globalPicker) Intn(n int) int { return rand.Intn(n) }

// Generator produces value propositions, drawing template choices from its
// Picker. It is safe for concurrent use; the Picker need not be.
type Generator struct {
	mu     sync.Mutex
	picker Picker
}

// NewGenerator returns a Generator using p. A nil p uses math/rand.
func NewGenerator(p Picker) *Generator {
	if p == nil {
		p = globalPicker{}
	}
	return &Generator{picker: p}
}

// NewSeededGenerator returns a Generator whose choices repeat for the same seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

var defaultGenerator = NewGenerator(nil)

// Generate builds a value proposition with randomly selected templates.
func Generate(in models.ValuePropositionInputs) models.ValueProposition {
	return defaultGenerator.Generate(in)
}

// canvas is the input reduced to the single phrases the templates use.
type canvas struct {
	name     string
	industry string
	audience string
	product  string
	feature  string
	job      string
	pain     string
	gain     string
	reliever string
	creator  string
}

func newCanvas(in models.ValuePropositionInputs) canvas {
	product := first(in.ValueMap.Products, "")
	if product == "" {
		product = orDefault(in.ProductDescription, "our solution")
	}
	return canvas{
		name:     orDefault(in.BusinessName, "We"),
		industry: orDefault(in.Industry, "your industry"),
		audience: orDefault(in.TargetAudience, "businesses like yours"),
		product:  product,
		feature:  first(in.UniqueFeatures, "a unique approach"),
		job:      first(in.CustomerProfile.Jobs, "your business needs"),
		pain:     first(in.CustomerProfile.Pains, "everyday challenges"),
		gain:     first(in.CustomerProfile.Gains, "better results"),
		reliever: first(in.ValueMap.PainRelievers, "proven solutions"),
		creator:  first(in.ValueMap.GainCreators, "tools that deliver results"),
	}
}

// Generate builds one value proposition. Only the eight statement fields
// depend on the Picker; KeyBenefits is deterministic.
func (g *Generator) Generate(in models.ValuePropositionInputs) models.ValueProposition {
	c := newCanvas(in)

	g.mu.Lock()
	defer g.mu.Unlock()

	return models.ValueProposition{
		Headline:                g.pick(headlines(c)),
		Subheadline:             g.pick(subheadlines(c)),
		ValueStatement:          g.pick(valueStatements(c)),
		TargetAudienceStatement: g.pick(audienceStatements(c)),
		ProblemStatement:        g.pick(problemStatements(c)),
		SolutionStatement:       g.pick(solutionStatements(c)),
		DifferentiatorStatement: g.pick(differentiators(c)),
		CallToAction:            g.pick(callsToAction(c)),
		KeyBenefits:             KeyBenefits(in.CustomerProfile, in.ValueMap),
	}
}

func (g *Generator) pick(options []string) string {
	return options[g.picker.Intn(len(options))]
}

var fillerBenefits = []string{
	"Save hours every week with a streamlined process",
	"Get expert support whenever you need it",
	"See measurable results within weeks",
	"Scale without adding overhead",
	"Work with a partner you can trust",
}

// KeyBenefits pairs pain relievers with pains, then gain creators with
// gains, up to MaxKeyBenefits entries, and pads with generic benefits.
// Blank entries are ignored before pairing.
func KeyBenefits(profile models.CustomerProfile, vm models.ValueMap) []string {
	benefits := make([]string, 0, MaxKeyBenefits)

	relievers, pains := compact(vm.PainRelievers), compact(profile.Pains)
	for i := 0; i < len(relievers) && i < len(pains) && len(benefits) < MaxKeyBenefits; i++ {
		benefits = append(benefits, fmt.Sprintf("%s to eliminate %s", capitalize(relievers[i]), pains[i]))
	}

	creators, gains := compact(vm.GainCreators), compact(profile.Gains)
	for i := 0; i < len(creators) && i < len(gains) && len(benefits) < MaxKeyBenefits; i++ {
		benefits = append(benefits, fmt.Sprintf("%s so you can enjoy %s", capitalize(creators[i]), gains[i]))
	}

	for i := 0; len(benefits) < MaxKeyBenefits; i++ {
		benefits = append(benefits, fillerBenefits[i%len(fillerBenefits)])
	}
	return benefits
}

// first returns the first non-blank item, trimmed, or fallback.
func first(items []string, fallback string) string {
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
