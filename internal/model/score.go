package model

// ScoreTier is the three-level quality band a score falls into.
type ScoreTier string

// Score tiers, from best to worst.
const (
	TierGood     ScoreTier = "good"
	TierWarning  ScoreTier = "warning"
	TierCritical ScoreTier = "critical"
)

// Tier thresholds. Both bounds are inclusive.
const (
	GoodThreshold    = 0.70
	WarningThreshold = 0.40
)

// TierFor maps a score to its tier.
func TierFor(score float64) ScoreTier {
	switch {
	case score >= GoodThreshold:
		return TierGood
	case score >= WarningThreshold:
		return TierWarning
	default:
		return TierCritical
	}
}

// Percent converts a [0,1] score into a [0,100] percentage, clamped.
func Percent(score float64) float64 {
	switch {
	case score <= 0:
		return 0
	case score >= 1:
		return 100
	}
	return score * 100
}
