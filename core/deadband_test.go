package core

import "testing"

func TestDeadbandHoldsSmallChanges(t *testing.T) {
	d := Deadband{Threshold: 3}
	d.Seed(500)

	// Candidates within the threshold leave the stable value untouched,
	// no matter how often they repeat.
	for _, candidate := range []int{501, 499, 502, 498, 500, 502} {
		if got := d.Stabilize(candidate); got != 500 {
			t.Errorf("Stabilize(%d): expected held 500, got %d", candidate, got)
		}
	}

	// A delta equal to the threshold is accepted exactly as-is.
	if got := d.Stabilize(503); got != 503 {
		t.Errorf("Stabilize(503): expected acceptance, got %d", got)
	}
	if d.Value() != 503 {
		t.Errorf("Expected stable value 503, got %d", d.Value())
	}
}

func TestDeadbandZeroThresholdPassesEverything(t *testing.T) {
	d := Deadband{Threshold: 0}
	d.Seed(500)

	for _, candidate := range []int{500, 501, 500, 499, 1023, 0} {
		if got := d.Stabilize(candidate); got != candidate {
			t.Errorf("Stabilize(%d) with zero threshold: got %d", candidate, got)
		}
	}
}

func TestDeadbandAcceptsDownwardMoves(t *testing.T) {
	d := Deadband{Threshold: 2}
	d.Seed(800)

	if got := d.Stabilize(797); got != 797 {
		t.Errorf("Expected downward delta 3 to be accepted, got %d", got)
	}
}
