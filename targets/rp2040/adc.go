//go:build rp2040

package main

import (
	"errors"
	"machine"
	"time"

	"quadrant/core"
)

// The RP2040 exposes four on-chip ADC inputs and the quadrant needs up to
// seven, so the pots sit behind a CD4051 8:1 analog mux feeding ADC0, with
// three GPIO select lines picking the channel.
const (
	muxSettleTime = 10 * time.Microsecond

	muxChannelCount = 8
)

var muxSelectPins = [3]machine.Pin{machine.GP10, machine.GP11, machine.GP12}

// MuxAnalogReader implements core.AnalogReader over the mux + ADC0.
type MuxAnalogReader struct {
	adc machine.ADC
	sel [3]machine.Pin
}

// NewMuxAnalogReader powers up the ADC and claims the select lines.
func NewMuxAnalogReader() *MuxAnalogReader {
	machine.InitADC()

	adc := machine.ADC{Pin: machine.ADC0}
	adc.Configure(machine.ADCConfig{})

	r := &MuxAnalogReader{adc: adc, sel: muxSelectPins}
	for _, pin := range r.sel {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}
	return r
}

// ConfigureChannel validates the channel against the mux width. All mux
// inputs share the one ADC pin, so there is nothing else to set up.
func (r *MuxAnalogReader) ConfigureChannel(ch core.AnalogChannelID) error {
	if int(ch) >= muxChannelCount {
		return errors.New("analog channel beyond mux width")
	}
	return nil
}

// ReadRaw selects the mux channel, lets the output settle, and samples.
// machine.ADC reports a left-aligned 16-bit value; the pipeline works in
// the 10-bit range, so shift down.
func (r *MuxAnalogReader) ReadRaw(ch core.AnalogChannelID) int {
	for bit, pin := range r.sel {
		if ch&(1<<bit) != 0 {
			pin.High()
		} else {
			pin.Low()
		}
	}
	time.Sleep(muxSettleTime)
	return int(r.adc.Get() >> 6)
}
