package core

// itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	if negative {
		digits++
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	if negative {
		buf[0] = '-'
	}

	return string(buf)
}

// padRight pads s with spaces to the given width for table columns.
// Strings already at or past the width are returned unchanged.
func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

// padLeft right-aligns s in a column of the given width.
func padLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}
