// Button matrix scan.
// 32 switches across two 16-line expander banks, wired active-low: inputs
// are pulled up and a closed switch grounds its line, so the raw level is
// inverted before it reaches the report.
package core

const (
	BankCount   = 2
	PinsPerBank = 16
	ButtonCount = BankCount * PinsPerBank
)

// ScanButtons reads every button line and forwards the logical (pressed)
// state to the report sink. Bank 0 covers button indices 0-15, bank 1
// covers 16-31. No smoothing; switches are assumed debounced enough at the
// poll period.
func ScanButtons(pins PinReader, sink ReportSink) {
	for bank := BankID(0); bank < BankCount; bank++ {
		base := int(bank) * PinsPerBank
		for pin := uint8(0); pin < PinsPerBank; pin++ {
			pressed := !pins.ReadPin(bank, pin)
			sink.SetButton(base+int(pin), pressed)
		}
	}
}
