//go:build rp2040

package main

import (
	"machine/usb/hid/joystick"

	"quadrant/core"
)

// HIDReportSink implements core.ReportSink over the TinyGo USB HID joystick
// endpoint: seven absolute axes and 32 buttons, one report per poll cycle.
type HIDReportSink struct {
	js *joystick.Joystick
}

// NewHIDReportSink configures the joystick endpoint. Axis values arrive
// already conditioned into [0, 1023], so input and output constraints are
// identical and the transport does no further scaling.
func NewHIDReportSink() *HIDReportSink {
	axes := make([]joystick.Constraint, core.ReportAxisCount)
	for i := range axes {
		axes[i] = joystick.Constraint{
			MinIn:  core.OutputMin,
			MaxIn:  core.OutputMax,
			MinOut: core.OutputMin,
			MaxOut: core.OutputMax,
		}
	}

	js := joystick.UseSettings(joystick.Definitions{
		ReportID:     1,
		ButtonCnt:    core.ReportButtonCount,
		HatSwitchCnt: 0,
		AxisDefs:     axes,
	}, nil, nil, nil)

	return &HIDReportSink{js: js}
}

func (h *HIDReportSink) SetAxis(axis core.AxisID, value int) {
	h.js.SetAxis(int(axis), value)
}

func (h *HIDReportSink) SetButton(index int, pressed bool) {
	h.js.SetButton(index, pressed)
}

func (h *HIDReportSink) SendState() {
	h.js.SendState()
}
