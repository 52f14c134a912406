package models

// SpeedReport is a simulated page-speed result. Every value is derived from
// a hash of the URL; nothing is measured.
type SpeedReport struct {
	URL                      string   `json:"url"`
	Simulated                bool     `json:"simulated"`
	PerformanceScore         int      `json:"performance_score"`
	Grade                    string   `json:"grade"`
	FirstContentfulPaintMs   int      `json:"first_contentful_paint_ms"`
	LargestContentfulPaintMs int      `json:"largest_contentful_paint_ms"`
	TotalBlockingTimeMs      int      `json:"total_blocking_time_ms"`
	CumulativeLayoutShift    float64  `json:"cumulative_layout_shift"`
	TimeToFirstByteMs        int      `json:"time_to_first_byte_ms"`
	PageWeightKB             int      `json:"page_weight_kb"`
	RequestCount             int      `json:"request_count"`
	Recommendations          []string `json:"recommendations"`
}
