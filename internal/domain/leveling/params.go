package leveling

import "math"

// Params defines the leveling curve: the XP threshold for reaching level
// n+1 from level n is floor(BaseXP * Multiplier^(n-1)).
type Params struct {
	BaseXP     int
	Multiplier float64
	MaxLevel   int
}

// ParamsConfig allows overriding the default curve when creating Params.
type ParamsConfig struct {
	BaseXP     int
	Multiplier float64
	MaxLevel   int
}

// NewDefaultParams creates a Params instance with the standard curve:
// 100 base XP, 1.5x growth per level, capped at level 50.
func NewDefaultParams() *Params {
	return &Params{
		BaseXP:     100,
		Multiplier: 1.5,
		MaxLevel:   50,
	}
}

// NewParams creates a Params instance with custom configuration.
// Zero-valued fields keep their defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.BaseXP > 0 {
		params.BaseXP = config.BaseXP
	}
	if config.Multiplier > 0 {
		params.Multiplier = config.Multiplier
	}
	if config.MaxLevel > 0 {
		params.MaxLevel = config.MaxLevel
	}

	return params
}

// ThresholdFor returns the XP required to advance past the given level,
// truncated to an integer.
func (p *Params) ThresholdFor(level int) int {
	return int(math.Floor(float64(p.BaseXP) * math.Pow(p.Multiplier, float64(level-1))))
}
