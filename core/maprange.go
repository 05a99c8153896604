package core

// Canonical HID axis output range.
const (
	OutputMin = 0
	OutputMax = 1023
)

// MapRange linearly rescales v from [inMin, inMax] to [outMin, outMax] and
// clamps the result. A zero- or negative-width input range returns outMin
// rather than dividing; this happens at startup before a dynamic envelope
// has widened, and a crash here would brick the device until reset.
func MapRange(v, inMin, inMax, outMin, outMax int) int {
	if inMax <= inMin {
		return outMin
	}
	out := outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
	return Clamp(out, outMin, outMax)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
