package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort wraps the tarm/serial implementation
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens a native serial port
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	serialConfig := &serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	}

	port, err := serial.OpenPort(serialConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{
		port: port,
		cfg:  cfg,
	}, nil
}

func (p *NativePort) Read(buf []byte) (int, error) {
	return p.port.Read(buf)
}

func (p *NativePort) Write(buf []byte) (int, error) {
	return p.port.Write(buf)
}

func (p *NativePort) Close() error {
	return p.port.Close()
}

// Flush discards buffered input so the monitor starts on a fresh frame.
func (p *NativePort) Flush() error {
	return p.port.Flush()
}
