package core

// AxisID is a HID report axis slot (X, Y, Z, Rx, Ry, Rz, slider...).
type AxisID uint8

// HID report geometry. The transport is configured for the full quadrant
// even when a variant populates fewer axes.
const (
	ReportAxisCount   = 7
	ReportButtonCount = 32
)

// ReportSink is the abstract HID transport interface that core code uses.
// It forwards values into the next outgoing report; SendState transmits.
// No validation happens here beyond what the transport itself enforces.
type ReportSink interface {
	SetAxis(axis AxisID, value int)
	SetButton(index int, pressed bool)
	SendState()
}

// Global singleton used by core code.
var reportSink ReportSink

// SetReportSink is called by target-specific code to register its transport.
func SetReportSink(s ReportSink) {
	reportSink = s
}

// MustReport returns the configured sink or panics if missing.
func MustReport() ReportSink {
	if reportSink == nil {
		panic("report sink not configured")
	}
	return reportSink
}
