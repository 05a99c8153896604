//go:build rp2040

package main

import (
	"image/color"
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
)

// Status colors. The WS2812 on the panel is the only operator-visible
// indicator once the case is closed.
var (
	colorBoot  = color.RGBA{R: 0x20, G: 0x10, B: 0x00} // amber: bringing up hardware
	colorRun   = color.RGBA{R: 0x00, G: 0x20, B: 0x00} // green: polling
	colorFault = color.RGBA{R: 0x20, G: 0x00, B: 0x00} // red: bring-up failed
	colorOff   = color.RGBA{}
)

// StatusLED drives a single WS2812 pixel from a PIO state machine, keeping
// the CPU out of the bit timing.
type StatusLED struct {
	ws *piolib.WS2812B
}

// NewStatusLED claims a PIO state machine for the pixel on the given pin.
func NewStatusLED(pin machine.Pin) (*StatusLED, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	return &StatusLED{ws: ws}, nil
}

// Set shows a color. Errors are ignored; a dead indicator must never take
// the controller down with it.
func (l *StatusLED) Set(c color.RGBA) {
	if l == nil || l.ws == nil {
		return
	}
	l.ws.SetColor(c)
}
