// Live diagnostics table.
// Renders the per-axis raw/smoothed/mapped/delta snapshot as text through
// the debug writer, so a serial terminal (or the host monitor console)
// shows a continuously updating view of the pipeline. Non-functional: the
// HID report is identical with the monitor on or off.
package core

const monitorRule = "----------------------------------------------------------"

// clearScreen is the ANSI sequence that makes the dump update in place
// instead of scrolling the terminal.
const clearScreen = "\x1b[2J\x1b[H"

// DumpAxes writes the diagnostics table for the given axes. Skipped
// entirely when debug output is disabled.
func DumpAxes(axes []*AxisState) {
	if !debugEnabled {
		return
	}
	debugPrintln(clearScreen + monitorRule)
	debugPrintln("  " + padRight("Axis", 12) + padLeft("Raw", 6) + padLeft("Smooth", 8) + padLeft("Mapped", 8) + padLeft("Delta", 7))
	debugPrintln(monitorRule)
	for _, a := range axes {
		debugPrintln("  " + padRight(a.Label(), 12) +
			padLeft(itoa(a.lastRaw), 6) +
			padLeft(itoa(a.lastAvg), 8) +
			padLeft(itoa(a.lastMapped), 8) +
			padLeft(itoa(a.lastDelta), 7))
	}
	debugPrintln(monitorRule)
}
