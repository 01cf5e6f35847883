package domain

import "math"

// AnalysisResult is the assistant's assessment of the current text.
// It is never persisted.
type AnalysisResult struct {
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// ClampScore rounds a model-reported score and bounds it to 0..100.
func ClampScore(raw float64) int {
	if math.IsNaN(raw) {
		return 0
	}
	score := int(math.Round(raw))
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}
