package aura

// DefaultGain amplifies the mean spectrum magnitude so that ordinary
// speech reaches the loud end of the palette.
const DefaultGain = 3.0

// LevelSampler reduces byte frequency data to a loudness level in [0, 1].
//
// The zero value uses gain 0 and always reports 0; use NewLevelSampler.
// A LevelSampler is owned by the render goroutine and is not safe for
// concurrent use.
type LevelSampler struct {
	gain  float64
	level float64
}

// NewLevelSampler returns a sampler with the given gain and level 0.
// A non-positive gain selects DefaultGain.
func NewLevelSampler(gain float64) *LevelSampler {
	if gain <= 0 {
		gain = DefaultGain
	}
	return &LevelSampler{gain: gain}
}

// Sample computes min(1, mean(bins)/255 * gain), stores it as the
// current level and returns it. An empty buffer leaves the level
// unchanged.
func (s *LevelSampler) Sample(bins []uint8) float64 {
	if len(bins) == 0 {
		return s.level
	}
	s.level = Level(bins, s.gain)
	return s.level
}

// Level returns the most recently sampled level.
func (s *LevelSampler) Level() float64 {
	return s.level
}

// Gain returns the sampler gain.
func (s *LevelSampler) Gain() float64 {
	return s.gain
}

// Level computes the loudness of byte frequency data with the given gain.
// The result is clamped to [0, 1]; an empty buffer yields 0.
func Level(bins []uint8, gain float64) float64 {
	if len(bins) == 0 {
		return 0
	}
	var sum int
	for _, b := range bins {
		sum += int(b)
	}
	level := float64(sum) / float64(len(bins)) / 255 * gain
	if level > 1 {
		return 1
	}
	if level < 0 {
		return 0
	}
	return level
}
