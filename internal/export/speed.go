package export

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

func SpeedText(r models.SpeedReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("WEBSITE SPEED REPORT: %s\n", r.URL))
	if r.Simulated {
		b.WriteString("(simulated results for illustration only)\n")
	}
	b.WriteString(fmt.Sprintf("\nPerformance Score: %d/100 (Grade %s)\n\n", r.PerformanceScore, r.Grade))
	b.WriteString(fmt.Sprintf("First Contentful Paint: %.1fs\n", seconds(r.FirstContentfulPaintMs)))
	b.WriteString(fmt.Sprintf("Largest Contentful Paint: %.1fs\n", seconds(r.LargestContentfulPaintMs)))
	b.WriteString(fmt.Sprintf("Total Blocking Time: %dms\n", r.TotalBlockingTimeMs))
	b.WriteString(fmt.Sprintf("Cumulative Layout Shift: %.2f\n", r.CumulativeLayoutShift))
	b.WriteString(fmt.Sprintf("Time To First Byte: %dms\n", r.TimeToFirstByteMs))
	b.WriteString(fmt.Sprintf("Page Weight: %d KB\n", r.PageWeightKB))
	b.WriteString(fmt.Sprintf("Requests: %d\n", r.RequestCount))

	b.WriteString("\nRecommendations:\n")
	for _, rec := range r.Recommendations {
		b.WriteString(fmt.Sprintf("- %s\n", rec))
	}
	return b.String()
}

func seconds(ms int) float64 {
	return float64(ms) / 1000
}
