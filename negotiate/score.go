package negotiate

import (
	"strings"

	"github.com/vkngwrapper/core/v3/core1_0"
)

// DefaultDiscreteBonus is added to the score of discrete GPUs by DefaultScoring.
const DefaultDiscreteBonus = 1000

// ScoringPolicy rates a candidate that passed every suitability filter.
// Higher is better; a score of zero or less makes the candidate unviable.
// Implementations must be free of side effects.
type ScoringPolicy interface {
	Score(properties *core1_0.PhysicalDeviceProperties) int64
}

// ScoreFunc adapts a function to ScoringPolicy.
type ScoreFunc func(properties *core1_0.PhysicalDeviceProperties) int64

func (f ScoreFunc) Score(properties *core1_0.PhysicalDeviceProperties) int64 {
	return f(properties)
}

// DefaultScoring scores by the largest supported 2D image dimension, plus
// DiscreteBonus for discrete GPUs.
type DefaultScoring struct {
	DiscreteBonus int
}

func (s DefaultScoring) Score(properties *core1_0.PhysicalDeviceProperties) int64 {
	var score int64
	if properties.Limits != nil {
		score = int64(properties.Limits.MaxImageDimension2D)
	}
	if properties.DriverType == core1_0.PhysicalDeviceTypeDiscreteGPU {
		score += int64(s.DiscreteBonus)
	}

	return score
}

// preferredDeviceBonus outranks any score DefaultScoring can produce from a
// 32-bit image dimension limit.
const preferredDeviceBonus = 1 << 40

// PreferDevice wraps base so that a device whose name contains name
// (case-insensitively) outranks every other device. An empty name returns
// base unchanged.
func PreferDevice(name string, base ScoringPolicy) ScoringPolicy {
	if name == "" {
		return base
	}

	needle := strings.ToLower(name)
	return ScoreFunc(func(properties *core1_0.PhysicalDeviceProperties) int64 {
		score := base.Score(properties)
		if score > 0 && strings.Contains(strings.ToLower(properties.DriverName), needle) {
			score += preferredDeviceBonus
		}
		return score
	})
}
