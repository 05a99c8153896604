//go:build rp2040

package main

import (
	"machine"
	"time"

	"quadrant/core"
)

// Board wiring.
const (
	statusLEDPin = machine.GP16

	// Strap pin: ground it before power-on to boot the single-throttle
	// debug build instead of the full quadrant.
	modeStrapPin = machine.GP15
)

func main() {
	led, _ := NewStatusLED(statusLEDPin)
	led.Set(colorBoot)

	// The transport must exist before anything publishes into it.
	core.SetReportSink(NewHIDReportSink())
	core.SetAnalogReader(NewMuxAnalogReader())

	pins, err := NewExpanderPinReader()
	if err != nil {
		fault(led)
	}
	core.SetPinReader(pins)

	// Live monitor over the USB CDC serial the RP2040 exposes alongside
	// the HID interface. Viewed with any terminal or quadrant-monitor.
	core.SetDebugWriter(func(s string) {
		machine.Serial.Write([]byte(s))
		machine.Serial.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(true)

	cfg := selectConfig()
	controller, err := core.NewController(cfg)
	if err != nil {
		fault(led)
	}

	led.Set(colorRun)
	controller.Run()
}

// selectConfig picks the firmware variant from the strap pin at boot:
// pulled up (open) runs the full quadrant, grounded runs throttle debug.
func selectConfig() *core.Config {
	strap := modeStrapPin
	strap.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	time.Sleep(time.Millisecond)
	if !strap.Get() {
		return core.ThrottleDebugConfig()
	}
	return core.DefaultQuadrantConfig()
}

// fault parks the firmware with the fault color. There is no recovery path
// on-device; the operator power-cycles after fixing the wiring.
func fault(led *StatusLED) {
	for {
		led.Set(colorFault)
		time.Sleep(500 * time.Millisecond)
		led.Set(colorOff)
		time.Sleep(500 * time.Millisecond)
	}
}
