package core

import "testing"

func TestEnvelopeMonotonicWidening(t *testing.T) {
	e := NewEnvelope(500)

	samples := []int{500, 480, 700, 480, 690, 1023, 3, 512}
	prevMin, prevMax := e.Min, e.Max
	for _, raw := range samples {
		e.Observe(raw)
		if e.Min > prevMin {
			t.Errorf("Min rose from %d to %d after observing %d", prevMin, e.Min, raw)
		}
		if e.Max < prevMax {
			t.Errorf("Max fell from %d to %d after observing %d", prevMax, e.Max, raw)
		}
		if raw < e.Min || raw > e.Max {
			t.Errorf("Observed sample %d outside envelope [%d, %d]", raw, e.Min, e.Max)
		}
		prevMin, prevMax = e.Min, e.Max
	}

	if e.Min != 3 || e.Max != 1023 {
		t.Errorf("Expected final envelope [3, 1023], got [%d, %d]", e.Min, e.Max)
	}
}

func TestEnvelopeSeededWidth(t *testing.T) {
	e := NewEnvelope(600)
	if e.Width() != 0 {
		t.Errorf("Expected zero width at seed, got %d", e.Width())
	}
	e.Observe(650)
	if e.Width() != 50 {
		t.Errorf("Expected width 50, got %d", e.Width())
	}
}

func TestFixedEnvelope(t *testing.T) {
	e := FixedEnvelope(196, 1023)
	if e.Min != 196 || e.Max != 1023 {
		t.Errorf("Expected [196, 1023], got [%d, %d]", e.Min, e.Max)
	}
	if e.Width() != 827 {
		t.Errorf("Expected width 827, got %d", e.Width())
	}
}
