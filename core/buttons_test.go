package core

import "testing"

func TestScanButtonsInversion(t *testing.T) {
	pins := newMockPins()
	sink := newMockSink()

	// Active-low: a grounded line is a press, a pulled-up line is not.
	pins.press(0, 3)
	pins.press(1, 15)

	ScanButtons(pins, sink)

	if len(sink.buttons) != ButtonCount {
		t.Fatalf("Expected %d button states, got %d", ButtonCount, len(sink.buttons))
	}
	for idx, pressed := range sink.buttons {
		want := idx == 3 || idx == 31
		if pressed != want {
			t.Errorf("Button %d: expected pressed=%v, got %v", idx, want, pressed)
		}
	}
}

func TestScanButtonsBankOffsets(t *testing.T) {
	pins := newMockPins()
	sink := newMockSink()

	// Same pin number on each bank lands 16 indices apart.
	pins.press(0, 7)
	pins.press(1, 7)

	ScanButtons(pins, sink)

	if !sink.buttons[7] {
		t.Error("Bank 0 pin 7 should report as button 7")
	}
	if !sink.buttons[23] {
		t.Error("Bank 1 pin 7 should report as button 23")
	}
}

func TestScanButtonsRelease(t *testing.T) {
	pins := newMockPins()
	sink := newMockSink()

	pins.press(0, 0)
	ScanButtons(pins, sink)
	if !sink.buttons[0] {
		t.Fatal("Expected button 0 pressed")
	}

	pins.closed[pinKey{0, 0}] = false
	ScanButtons(pins, sink)
	if sink.buttons[0] {
		t.Error("Expected button 0 released after line returned high")
	}
}
