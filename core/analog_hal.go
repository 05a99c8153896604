package core

// AnalogChannelID identifies a logical analog input channel. Targets map it
// onto a hardware ADC pin.
type AnalogChannelID uint8

// AnalogReader is the abstract analog-input interface that core code uses.
// Platform-specific implementations handle the actual ADC hardware.
type AnalogReader interface {
	// ConfigureChannel prepares a channel for analog sampling.
	// For pin-muxed channels this sets the pin to analog mode.
	ConfigureChannel(ch AnalogChannelID) error

	// ReadRaw performs a one-shot sample from the given channel.
	// Convention: 10-bit value in [0, 1023], whatever the hardware's
	// native resolution. Hot path; infallible by contract.
	ReadRaw(ch AnalogChannelID) int
}

// Global singleton used by core code.
var analogReader AnalogReader

// SetAnalogReader is called by target-specific code to register its driver.
func SetAnalogReader(r AnalogReader) {
	analogReader = r
}

// MustAnalog returns the configured reader or panics if missing.
func MustAnalog() AnalogReader {
	if analogReader == nil {
		panic("analog reader not configured")
	}
	return analogReader
}
