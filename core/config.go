// Firmware configuration.
// The full quadrant build and the single-throttle debug build are the same
// core with different Config values, not separate firmwares.
package core

import (
	"encoding/json"
	"errors"
)

// Calibration strategies.
const (
	CalibrateFixed   = "fixed"   // pre-measured raw range from config
	CalibrateDynamic = "dynamic" // envelope widens from observed samples
)

// AxisConfig describes one analog input channel.
type AxisConfig struct {
	Label     string `json:"label"`
	Channel   uint8  `json:"channel"`   // analog channel id
	HIDAxis   uint8  `json:"hid_axis"`  // report slot this axis feeds
	RawMin    int    `json:"raw_min"`   // fixed calibration floor
	RawMax    int    `json:"raw_max"`   // fixed calibration ceiling
	Deadband  int    `json:"deadband"`  // 0 disables
	Calibrate string `json:"calibrate"` // "fixed" or "dynamic"
	Trim      bool   `json:"trim"`      // rate-integrated virtual axis
}

// Config is the full firmware configuration.
type Config struct {
	Name             string       `json:"name"`
	Axes             []AxisConfig `json:"axes"`
	WindowSize       int          `json:"window_size"`
	CalibrationSlack int          `json:"calibration_slack"` // dynamic mode only
	TrimScale        float64      `json:"trim_scale"`
	PollIntervalMS   int          `json:"poll_interval_ms"`
	MonitorEvery     int          `json:"monitor_every"` // dump every N cycles, 0 disables
}

// LoadConfig parses a JSON configuration and fills in defaults.
func LoadConfig(jsonData []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in missing configuration values with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.WindowSize == 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.PollIntervalMS == 0 {
		cfg.PollIntervalMS = 100
	}
	if cfg.CalibrationSlack == 0 {
		cfg.CalibrationSlack = 10
	}
	if cfg.TrimScale == 0 {
		cfg.TrimScale = 0.5
	}
	for i := range cfg.Axes {
		axis := &cfg.Axes[i]
		if axis.Calibrate == "" {
			if axis.RawMax > axis.RawMin {
				axis.Calibrate = CalibrateFixed
			} else {
				axis.Calibrate = CalibrateDynamic
			}
		}
	}
}

// Validate rejects configurations the poll cycle cannot run with.
func (cfg *Config) Validate() error {
	trimCount := 0
	for i := range cfg.Axes {
		axis := &cfg.Axes[i]
		if axis.HIDAxis >= ReportAxisCount {
			return errors.New("config: hid_axis out of range for " + axis.Label)
		}
		if axis.Deadband < 0 {
			return errors.New("config: negative deadband for " + axis.Label)
		}
		if axis.Calibrate != CalibrateFixed && axis.Calibrate != CalibrateDynamic {
			return errors.New("config: unknown calibrate mode for " + axis.Label)
		}
		if axis.Calibrate == CalibrateFixed && axis.RawMax <= axis.RawMin {
			return errors.New("config: empty fixed range for " + axis.Label)
		}
		if axis.Trim {
			trimCount++
		}
	}
	if trimCount > 1 {
		return errors.New("config: more than one trim axis")
	}
	if cfg.WindowSize < 1 {
		return errors.New("config: window size must be at least 1")
	}
	if cfg.PollIntervalMS < 1 {
		return errors.New("config: poll interval must be at least 1ms")
	}
	return nil
}

// DefaultQuadrantConfig is the full six-axis throttle quadrant: fixed
// pre-measured pot ranges, one-unit deadband on the two throttle levers,
// and the trim wheel feeding the virtual Z axis. The seventh report slot
// stays unpopulated.
func DefaultQuadrantConfig() *Config {
	cfg := &Config{
		Name: "quadrant",
		Axes: []AxisConfig{
			{Label: "Throttle L", Channel: 0, HIDAxis: 0, RawMin: 196, RawMax: 1023, Deadband: 1},
			{Label: "Throttle R", Channel: 1, HIDAxis: 1, RawMin: 196, RawMax: 1023, Deadband: 1},
			{Label: "Trim", Channel: 2, HIDAxis: 2, Trim: true},
			{Label: "Mixture 1", Channel: 3, HIDAxis: 3, RawMin: 196, RawMax: 1023},
			{Label: "Mixture 2", Channel: 4, HIDAxis: 4, RawMin: 196, RawMax: 1023},
			{Label: "Spare", Channel: 5, HIDAxis: 5, RawMin: 196, RawMax: 1023},
		},
		PollIntervalMS: 100,
		MonitorEvery:   1,
	}
	applyDefaults(cfg)
	return cfg
}

// ThrottleDebugConfig is the bring-up build: a single throttle on a fast
// poll with self-calibrating range, used to characterize a pot before its
// fixed range is measured.
func ThrottleDebugConfig() *Config {
	cfg := &Config{
		Name: "throttle-debug",
		Axes: []AxisConfig{
			{Label: "Throttle", Channel: 0, HIDAxis: 0, Calibrate: CalibrateDynamic},
		},
		PollIntervalMS: 10,
		MonitorEvery:   10,
	}
	applyDefaults(cfg)
	return cfg
}
