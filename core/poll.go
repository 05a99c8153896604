// The polling loop.
// One state, forever: scan buttons, condition each axis, publish, sleep.
// Everything is synchronous and bounded; the inter-cycle sleep is the only
// intentional pause. Buttons are always scanned before axes and axes run in
// index order, so a given input sequence always produces the same report
// sequence.
package core

import "time"

// Controller owns all per-axis and trim state and drives the poll cycle
// against the registered HAL drivers.
type Controller struct {
	cfg    *Config
	axes   []*AxisState
	analog AnalogReader
	pins   PinReader
	sink   ReportSink
	cycles uint
	seeded bool
}

// NewController builds a controller for cfg from the registered drivers and
// configures the hardware channels it will poll.
func NewController(cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:    cfg,
		analog: MustAnalog(),
		pins:   MustPins(),
		sink:   MustReport(),
	}

	for bank := BankID(0); bank < BankCount; bank++ {
		if err := c.pins.ConfigureInputs(bank); err != nil {
			return nil, err
		}
	}

	c.axes = make([]*AxisState, 0, len(cfg.Axes))
	for _, ac := range cfg.Axes {
		if err := c.analog.ConfigureChannel(AnalogChannelID(ac.Channel)); err != nil {
			return nil, err
		}
		var trim *TrimAccumulator
		if ac.Trim {
			trim = NewTrimAccumulator(cfg.TrimScale)
		}
		c.axes = append(c.axes, newAxisState(ac, cfg.WindowSize, cfg.CalibrationSlack, trim))
	}
	return c, nil
}

// Seed takes one reading per axis and initializes all conditioning state
// from it. Called once before the loop; PollOnce seeds lazily if it wasn't.
func (c *Controller) Seed() {
	for i, a := range c.axes {
		raw := c.analog.ReadRaw(AnalogChannelID(c.cfg.Axes[i].Channel))
		a.Seed(raw)
	}
	c.seeded = true
}

// PollOnce runs a single cycle: buttons first, then every axis in index
// order, then one report transmission.
func (c *Controller) PollOnce() {
	if !c.seeded {
		c.Seed()
	}

	ScanButtons(c.pins, c.sink)

	for i, a := range c.axes {
		raw := c.analog.ReadRaw(AnalogChannelID(c.cfg.Axes[i].Channel))
		value := a.Update(raw)
		c.sink.SetAxis(AxisID(c.cfg.Axes[i].HIDAxis), value)
	}

	c.sink.SendState()
	c.cycles++

	if c.cfg.MonitorEvery > 0 && c.cycles%uint(c.cfg.MonitorEvery) == 0 {
		DumpAxes(c.axes)
	}
}

// Run polls forever at the configured period. It never returns; the device
// runs until power-off or reset.
func (c *Controller) Run() {
	c.Seed()
	interval := time.Duration(c.cfg.PollIntervalMS) * time.Millisecond
	for {
		c.PollOnce()
		time.Sleep(interval)
	}
}

// Axes exposes the per-axis state, for the monitor and for tests.
func (c *Controller) Axes() []*AxisState {
	return c.axes
}

// Cycles returns how many poll cycles have completed.
func (c *Controller) Cycles() uint {
	return c.cycles
}
