// quadrant-monitor streams the firmware's live diagnostics table from the
// device's USB CDC serial port to the terminal. The device renders the
// table itself; this tool is a dumb pipe with optional cleanup for logs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"quadrant/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	plain  = flag.Bool("plain", false, "Strip ANSI control sequences (for piping to a log)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = 0 // block; the device emits frames continuously

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open %s: %v\n", *device, err)
		os.Exit(1)
	}
	defer port.Close()

	// Drop whatever partial frame was in flight before we attached.
	port.Flush()

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()
		if *plain {
			line = stripANSI(line)
		}
		fmt.Println(line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
		os.Exit(1)
	}
}

// stripANSI removes ESC[...X control sequences from a line.
func stripANSI(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		if line[i] == 0x1b && i+1 < len(line) && line[i+1] == '[' {
			i += 2
			for i < len(line) && !isFinalByte(line[i]) {
				i++
			}
			continue
		}
		b.WriteByte(line[i])
	}
	return b.String()
}

// isFinalByte reports whether c terminates a CSI sequence.
func isFinalByte(c byte) bool {
	return c >= 0x40 && c <= 0x7e
}
