// Per-axis signal conditioning state.
// One AxisState replaces the parallel buffer/sum/cursor/bounds arrays a
// firmware like this tends to grow: everything an axis owns lives in one
// record, and the controller holds an indexed slice of them.
package core

// AxisState carries one axis through the conditioning pipeline:
// raw sample -> rolling average -> [envelope] -> range map -> deadband,
// or raw sample -> rolling average -> trim accumulator for the trim axis.
type AxisState struct {
	cfg      AxisConfig
	smoother *Smoother
	envelope Envelope
	dynamic  bool
	slack    int
	deadband Deadband
	trim     *TrimAccumulator

	// Snapshot of the last cycle, for the diagnostics monitor.
	lastRaw    int
	lastAvg    int
	lastMapped int
	lastDelta  int
}

// newAxisState builds the state for one configured axis. trim is non-nil
// only for the axis feeding the virtual trim wheel.
func newAxisState(cfg AxisConfig, windowSize, slack int, trim *TrimAccumulator) *AxisState {
	a := &AxisState{
		cfg:      cfg,
		smoother: NewSmoother(windowSize),
		dynamic:  cfg.Calibrate == CalibrateDynamic,
		slack:    slack,
		deadband: Deadband{Threshold: cfg.Deadband},
		trim:     trim,
	}
	if !a.dynamic {
		a.envelope = FixedEnvelope(cfg.RawMin, cfg.RawMax)
	}
	return a
}

// Seed initializes all per-axis state from the first hardware sample so the
// first poll cycle starts from the pot's real position: full window fill,
// envelope seed, stable output at the mapped sample, trim reference.
func (a *AxisState) Seed(raw int) {
	a.smoother.Seed(raw)
	if a.dynamic {
		a.envelope = NewEnvelope(raw)
	}
	a.deadband.Seed(a.mapValue(raw))
	if a.trim != nil {
		a.trim.Seed(a.smoother.Average())
	}
	a.lastRaw = raw
	a.lastAvg = a.smoother.Average()
	a.lastMapped = a.deadband.Value()
}

// Update runs one raw sample through the pipeline and returns the value to
// publish for this axis.
func (a *AxisState) Update(raw int) int {
	a.lastRaw = raw
	if a.dynamic {
		a.envelope.Observe(raw)
	}
	avg := a.smoother.Update(raw)
	a.lastAvg = avg

	if a.trim != nil {
		pos := a.trim.Accumulate(avg)
		a.lastMapped = pos
		a.lastDelta = 0
		return pos
	}

	mapped := a.mapValue(avg)
	a.lastMapped = mapped
	a.lastDelta = abs(mapped - a.deadband.Value())
	return a.deadband.Stabilize(mapped)
}

// mapValue rescales a smoothed value through the axis's envelope. Dynamic
// envelopes are widened by the slack margin so a reading at the observed
// extreme doesn't clip at the report boundary prematurely.
func (a *AxisState) mapValue(avg int) int {
	min, max := a.envelope.Min, a.envelope.Max
	if a.dynamic {
		min -= a.slack
		max += a.slack
	}
	return MapRange(avg, min, max, OutputMin, OutputMax)
}

// Label returns the axis's configured display name.
func (a *AxisState) Label() string {
	return a.cfg.Label
}

// Envelope returns the current calibration envelope.
func (a *AxisState) Envelope() Envelope {
	return a.envelope
}

// Stable returns the last value accepted past the deadband.
func (a *AxisState) Stable() int {
	return a.deadband.Value()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
