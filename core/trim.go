// Virtual trim accumulator.
// A single-turn pot cannot represent a multi-turn trim wheel, so the pot is
// read as a rate source: per-cycle movement of its smoothed value is scaled
// and integrated into an independent clamped position.
package core

// TrimMidpoint is the neutral position the accumulator boots at. The
// physical trim setting at power-on is unknown, so neutral is the safe
// assumption.
const TrimMidpoint = 512

// TrimAccumulator integrates changes of a smoothed source value into a
// persistent virtual axis position in [OutputMin, OutputMax].
type TrimAccumulator struct {
	position float64
	lastAvg  float64
	scale    float64
}

// NewTrimAccumulator creates an accumulator at the midpoint with the given
// delta-to-position scale.
func NewTrimAccumulator(scale float64) *TrimAccumulator {
	return &TrimAccumulator{position: TrimMidpoint, scale: scale}
}

// Seed records the source's startup average so the first real cycle sees a
// zero delta instead of a jump from zero. The position itself stays at the
// midpoint.
func (t *TrimAccumulator) Seed(avg int) {
	t.lastAvg = float64(avg)
}

// Accumulate folds the movement since the previous cycle into the virtual
// position and returns it, truncated for the report.
func (t *TrimAccumulator) Accumulate(avg int) int {
	delta := float64(avg) - t.lastAvg
	t.lastAvg = float64(avg)
	t.position += delta * t.scale
	if t.position < OutputMin {
		t.position = OutputMin
	}
	if t.position > OutputMax {
		t.position = OutputMax
	}
	return int(t.position)
}

// Position returns the current virtual position without integrating.
func (t *TrimAccumulator) Position() int {
	return int(t.position)
}
