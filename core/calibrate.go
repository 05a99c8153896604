// Calibration envelope tracking.
// An axis either carries a fixed, pre-measured raw range from its config, or
// widens a dynamic envelope from the samples it actually observes.
package core

// Envelope is the observed (or configured) raw range of an axis.
// Once widened it never narrows during a session: a transient extreme is
// treated as legitimate travel, never as noise to be forgotten.
type Envelope struct {
	Min int
	Max int
}

// NewEnvelope returns an envelope seeded from a single sample.
func NewEnvelope(raw int) Envelope {
	return Envelope{Min: raw, Max: raw}
}

// FixedEnvelope returns an envelope with pre-measured bounds that will not
// be widened by observation.
func FixedEnvelope(min, max int) Envelope {
	return Envelope{Min: min, Max: max}
}

// Observe widens the envelope to include raw. Monotonic: Min only ever
// decreases, Max only ever increases.
func (e *Envelope) Observe(raw int) {
	if raw < e.Min {
		e.Min = raw
	}
	if raw > e.Max {
		e.Max = raw
	}
}

// Width returns the raw span covered by the envelope.
func (e *Envelope) Width() int {
	return e.Max - e.Min
}
