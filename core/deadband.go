// Deadband stabilization of mapped axis output.
// This is hysteresis on the final value, not a low-pass filter: the rolling
// average handles sample noise, this suppresses the residual one-unit
// flicker that survives it.
package core

// Deadband holds the last stable output for one axis and rejects candidate
// changes smaller than its threshold. A threshold of 0 disables the hold
// and accepts every candidate.
type Deadband struct {
	Threshold int
	last      int
}

// Seed sets the stable output without applying the threshold. Used once at
// startup with the mapped initial sample.
func (d *Deadband) Seed(v int) {
	d.last = v
}

// Stabilize accepts candidate as the new stable output if it differs from
// the previous stable output by at least Threshold, and returns the stable
// output either way.
func (d *Deadband) Stabilize(candidate int) int {
	delta := candidate - d.last
	if delta < 0 {
		delta = -delta
	}
	if delta >= d.Threshold {
		d.last = candidate
	}
	return d.last
}

// Value returns the current stable output.
func (d *Deadband) Value() int {
	return d.last
}
