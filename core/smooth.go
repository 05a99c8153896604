// Rolling-average smoothing for analog axis inputs.
// Each axis owns one Smoother; the window is updated in O(1) per sample by
// keeping a running sum (evict oldest, add newest) instead of re-summing.
package core

// DefaultWindowSize is the number of raw samples retained per axis.
const DefaultWindowSize = 10

// Smoother maintains a fixed-capacity circular window of raw samples and
// their running sum, and reports the truncating integer mean.
type Smoother struct {
	window []int
	sum    int
	cursor int
}

// NewSmoother creates a smoother with the given window size.
// Sizes below 1 fall back to DefaultWindowSize.
func NewSmoother(size int) *Smoother {
	if size < 1 {
		size = DefaultWindowSize
	}
	return &Smoother{window: make([]int, size)}
}

// Seed fills the entire window with one sample. Called once at startup with
// the first hardware reading so the average starts at the pot's actual
// position rather than ramping up from zero.
func (s *Smoother) Seed(raw int) {
	s.sum = 0
	for i := range s.window {
		s.window[i] = raw
		s.sum += raw
	}
	s.cursor = 0
}

// Update inserts a new raw sample, evicting the oldest, and returns the
// smoothed average. Integer truncation in the division is intentional; it
// is below the noise floor of a 10-bit reading.
func (s *Smoother) Update(raw int) int {
	s.sum -= s.window[s.cursor]
	s.window[s.cursor] = raw
	s.sum += raw
	s.cursor = (s.cursor + 1) % len(s.window)
	return s.sum / len(s.window)
}

// Average returns the current smoothed value without inserting a sample.
func (s *Smoother) Average() int {
	return s.sum / len(s.window)
}

// Size returns the window capacity.
func (s *Smoother) Size() int {
	return len(s.window)
}
