package core

// Mock HAL drivers for testing. Registered through the same SetX hooks the
// targets use, so tests exercise the exact wiring the firmware runs.

type pinKey struct {
	bank BankID
	pin  uint8
}

// mockAnalog returns scripted raw samples per channel.
type mockAnalog struct {
	values     map[AnalogChannelID]int
	configured map[AnalogChannelID]bool
}

func newMockAnalog() *mockAnalog {
	return &mockAnalog{
		values:     make(map[AnalogChannelID]int),
		configured: make(map[AnalogChannelID]bool),
	}
}

func (m *mockAnalog) ConfigureChannel(ch AnalogChannelID) error {
	m.configured[ch] = true
	return nil
}

func (m *mockAnalog) ReadRaw(ch AnalogChannelID) int {
	return m.values[ch]
}

// mockPins models the pulled-up button lines: every line reads high until a
// test closes its switch.
type mockPins struct {
	closed     map[pinKey]bool
	configured map[BankID]bool
}

func newMockPins() *mockPins {
	return &mockPins{
		closed:     make(map[pinKey]bool),
		configured: make(map[BankID]bool),
	}
}

func (m *mockPins) ConfigureInputs(bank BankID) error {
	m.configured[bank] = true
	return nil
}

func (m *mockPins) ReadPin(bank BankID, pin uint8) bool {
	return !m.closed[pinKey{bank, pin}]
}

func (m *mockPins) press(bank BankID, pin uint8) {
	m.closed[pinKey{bank, pin}] = true
}

// mockSink records everything pushed toward the transport, in call order.
type mockSink struct {
	axes    map[AxisID]int
	buttons map[int]bool
	events  []string
	sends   int
}

func newMockSink() *mockSink {
	return &mockSink{
		axes:    make(map[AxisID]int),
		buttons: make(map[int]bool),
	}
}

func (m *mockSink) SetAxis(axis AxisID, value int) {
	m.axes[axis] = value
	m.events = append(m.events, "axis"+itoa(int(axis)))
}

func (m *mockSink) SetButton(index int, pressed bool) {
	m.buttons[index] = pressed
	m.events = append(m.events, "button"+itoa(index))
}

func (m *mockSink) SendState() {
	m.sends++
	m.events = append(m.events, "send")
}

// setupMockHAL registers fresh mocks and returns them.
func setupMockHAL() (*mockAnalog, *mockPins, *mockSink) {
	analog := newMockAnalog()
	pins := newMockPins()
	sink := newMockSink()
	SetAnalogReader(analog)
	SetPinReader(pins)
	SetReportSink(sink)
	return analog, pins, sink
}
