// Package speed produces simulated website speed reports. Metrics are
// derived from a hash of the URL so that a given URL always gets the same
// report; no request is ever made to the site.
package speed

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
)

var ErrInvalidURL = errors.New("invalid url")

// NormalizeURL adds a missing https scheme, lower-cases the host and drops
// any fragment.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Hostname() == "" || !strings.Contains(u.Hostname(), ".") {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), nil
}

// Analyze returns the simulated report for rawURL.
func Analyze(rawURL string) (models.SpeedReport, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return models.SpeedReport{}, err
	}

	s := newStream(normalized)

	r := models.SpeedReport{
		URL:                    normalized,
		Simulated:              true,
		TimeToFirstByteMs:      s.between(80, 900),
		FirstContentfulPaintMs: s.between(600, 3500),
		TotalBlockingTimeMs:    s.between(0, 800),
		CumulativeLayoutShift:  float64(s.between(0, 35)) / 100,
		PageWeightKB:           s.between(300, 6000),
		RequestCount:           s.between(15, 180),
	}
	r.LargestContentfulPaintMs = r.FirstContentfulPaintMs + s.between(200, 3000)
	r.PerformanceScore = score(r)
	r.Grade = grade(r.PerformanceScore)
	r.Recommendations = recommendations(r)
	return r, nil
}

// stream yields a deterministic sequence of values from a 64-bit seed.
type stream struct {
	state uint64
}

func newStream(key string) *stream {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return &stream{state: h.Sum64()}
}

// next is a splitmix64 step.
func (s *stream) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// between returns a value in [lo, hi].
func (s *stream) between(lo, hi int) int {
	return lo + int(s.next()%uint64(hi-lo+1))
}

// score weights each metric against its "good" and "poor" thresholds.
func score(r models.SpeedReport) int {
	parts := []struct {
		value, good, poor, weight float64
	}{
		{float64(r.FirstContentfulPaintMs), 1800, 3000, 10},
		{float64(r.LargestContentfulPaintMs), 2500, 4000, 25},
		{float64(r.TotalBlockingTimeMs), 200, 600, 30},
		{r.CumulativeLayoutShift, 0.1, 0.25, 25},
		{float64(r.TimeToFirstByteMs), 200, 600, 10},
	}

	var total float64
	for _, p := range parts {
		total += p.weight * ratio(p.value, p.good, p.poor)
	}
	return int(total + 0.5)
}

// ratio is 1 at or below good, 0 at or above poor, linear in between.
func ratio(value, good, poor float64) float64 {
	switch {
	case value <= good:
		return 1
	case value >= poor:
		return 0
	default:
		return (poor - value) / (poor - good)
	}
}

func grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 65:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func recommendations(r models.SpeedReport) []string {
	var recs []string
	if r.TimeToFirstByteMs > 600 {
		recs = append(recs, "Reduce server response time with caching or a CDN")
	}
	if r.LargestContentfulPaintMs > 2500 {
		recs = append(recs, "Optimise and lazy-load large images above the fold")
	}
	if r.TotalBlockingTimeMs > 300 {
		recs = append(recs, "Defer or split long-running JavaScript")
	}
	if r.CumulativeLayoutShift > 0.1 {
		recs = append(recs, "Reserve space for images and embeds to avoid layout shifts")
	}
	if r.PageWeightKB > 3000 {
		recs = append(recs, "Compress assets and remove unused CSS and JavaScript")
	}
	if r.RequestCount > 100 {
		recs = append(recs, "Bundle resources to cut the number of requests")
	}
	if len(recs) == 0 {
		recs = append(recs, "Great job. Keep monitoring performance after each release")
	}
	return recs
}
