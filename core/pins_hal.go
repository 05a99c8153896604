package core

// BankID identifies one 16-line digital expander bank.
type BankID uint8

// PinReader is the abstract digital-input interface that core code uses.
// It covers the two I/O-expander chips carrying the button matrix.
type PinReader interface {
	// ConfigureInputs sets every line of the bank to input with pull-up.
	ConfigureInputs(bank BankID) error

	// ReadPin reads one line of a bank. Raw electrical level: true is
	// released (pulled up), false is pressed (switch pulls to ground).
	// Hot path; a disconnected expander simply reads stale levels.
	ReadPin(bank BankID, pin uint8) bool
}

// Global singleton used by core code.
var pinReader PinReader

// SetPinReader is called by target-specific code to register its driver.
func SetPinReader(r PinReader) {
	pinReader = r
}

// MustPins returns the configured reader or panics if missing.
func MustPins() PinReader {
	if pinReader == nil {
		panic("pin reader not configured")
	}
	return pinReader
}
