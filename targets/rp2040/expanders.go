//go:build rp2040

package main

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/mcp23017"

	"quadrant/core"
)

// Button matrix wiring: two MCP23017 16-line expanders on I2C0, strapped to
// consecutive addresses. Switches pull lines to ground, pull-ups are the
// chip's own.
const (
	expanderBaseAddr = 0x20

	i2cFrequency = 400 * machine.KHz
)

// ExpanderPinReader implements core.PinReader over the two MCP23017s.
type ExpanderPinReader struct {
	banks [core.BankCount]*mcp23017.Device
}

// NewExpanderPinReader brings up the I2C bus and probes both expanders.
func NewExpanderPinReader() (*ExpanderPinReader, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: i2cFrequency,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	if err != nil {
		return nil, err
	}

	r := &ExpanderPinReader{}
	for i := range r.banks {
		dev, err := mcp23017.NewI2C(machine.I2C0, uint8(expanderBaseAddr+i))
		if err != nil {
			return nil, err
		}
		r.banks[i] = dev
	}
	return r, nil
}

// ConfigureInputs sets all 16 lines of a bank to input with pull-up.
func (r *ExpanderPinReader) ConfigureInputs(bank core.BankID) error {
	if int(bank) >= len(r.banks) {
		return errors.New("expander bank out of range")
	}
	modes := make([]mcp23017.PinMode, mcp23017.PinCount)
	for i := range modes {
		modes[i] = mcp23017.Input | mcp23017.Pullup
	}
	return r.banks[bank].SetModes(modes)
}

// ReadPin reads one line. An I2C fault reads as a released line; a dead
// expander shows up as 16 stuck buttons on the host, which is the intended
// failure mode here, not something this layer reports.
func (r *ExpanderPinReader) ReadPin(bank core.BankID, pin uint8) bool {
	level, err := r.banks[bank].Pin(int(pin)).Get()
	if err != nil {
		return true
	}
	return level
}
