package core

import "testing"

func TestMapRange(t *testing.T) {
	testCases := []struct {
		name                   string
		v, inMin, inMax        int
		outMin, outMax, expect int
	}{
		{"mid range", 600, 200, 1000, 0, 1023, 511},
		{"at input floor", 200, 200, 1000, 0, 1023, 0},
		{"at input ceiling", 1000, 200, 1000, 0, 1023, 1023},
		{"below floor clamps", 50, 200, 1000, 0, 1023, 0},
		{"above ceiling clamps", 1200, 200, 1000, 0, 1023, 1023},
		{"identity range", 512, 0, 1023, 0, 1023, 512},
		{"zero width returns floor", 600, 600, 600, 0, 1023, 0},
		{"inverted range returns floor", 600, 800, 200, 0, 1023, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapRange(tc.v, tc.inMin, tc.inMax, tc.outMin, tc.outMax)
			if got != tc.expect {
				t.Errorf("MapRange(%d, [%d,%d] -> [%d,%d]): expected %d, got %d",
					tc.v, tc.inMin, tc.inMax, tc.outMin, tc.outMax, tc.expect, got)
			}
		})
	}
}

func TestMapRangeAlwaysBounded(t *testing.T) {
	// Sweep well past both ends of the input range; output must stay
	// inside [0, 1023] without wrapping.
	for v := -2000; v <= 3000; v += 7 {
		got := MapRange(v, 196, 1023, OutputMin, OutputMax)
		if got < OutputMin || got > OutputMax {
			t.Fatalf("MapRange(%d) = %d escaped [%d, %d]", v, got, OutputMin, OutputMax)
		}
	}
}
