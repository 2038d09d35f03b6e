package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Environment variables consulted when capture is not configured explicitly.
// [EnvLibBacktrace] takes precedence over [EnvBacktrace].
const (
	EnvLibBacktrace = "TRACE_LIB_BACKTRACE"
	EnvBacktrace    = "TRACE_BACKTRACE"
)

var stdMutex sync.Mutex

// captureFromEnv reports whether stack capture is requested by the environment.
// An unset variable, or the value "0", disables capture.
func captureFromEnv() bool {
	for _, key := range []string{EnvLibBacktrace, EnvBacktrace} {
		if v, ok := os.LookupEnv(key); ok {
			return v != "0"
		}
	}
	return false
}

// COLOR MODE

// ColorMode selects whether indentation markers are colored.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota // color only when writing to a terminal
	ColorOn
	ColorOff
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorOn:
		return "on"
	case ColorOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "auto", "on", or "off" to a [ColorMode].
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always", "true":
		return ColorOn, nil
	case "off", "never", "false":
		return ColorOff, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", s)
	}
}

// CONFIG

// Config is a base type for [Tracer] configuration.
//
// # Typical usage
//
// 1. The [New] function opens a new Config instance.
//
// 2. Next, zero or more Config methods are chained to set configuration fields.
// Methods and defaults:
//   - [Config.Writer]: os.Stdout
//   - [Config.Capture]: unset, resolved from [EnvLibBacktrace] / [EnvBacktrace] on every call
//   - [Config.Colors]: ColorAuto
//   - [Config.State]: a fresh [State]
//   - [Config.Fatal]: panic
//
// 3. [Config.Tracer] closes the chained invocation.
type Config struct {
	// sink config
	w           io.Writer
	useStdMutex bool

	capture *bool
	colors  ColorMode
	state   *State
	fatal   func(error)
}

// New opens a Config with default values.
func New() *Config {
	return &Config{
		w:           os.Stdout,
		useStdMutex: true,
		colors:      ColorAuto,
	}
}

// Writer configures the destination of rendered lines.
func (cfg *Config) Writer(w io.Writer) *Config {
	cfg.w = w
	cfg.useStdMutex = false
	return cfg
}

// Capture fixes whether call stacks are captured, overriding the environment.
func (cfg *Config) Capture(toggle bool) *Config {
	cfg.capture = &toggle
	return cfg
}

// Colors configures marker coloring.
func (cfg *Config) Colors(mode ColorMode) *Config {
	cfg.colors = mode
	return cfg
}

// State configures the [State] a tracer diffs against.
// Tracers sharing a State share one baseline.
func (cfg *Config) State(st *State) *Config {
	cfg.state = st
	return cfg
}

// Fatal configures the function called when writing output fails.
// The function should not return; if it does, the failed line is dropped.
func (cfg *Config) Fatal(fn func(error)) *Config {
	cfg.fatal = fn
	return cfg
}

// Tracer returns a new [Tracer].
// If the configured Writer is the default [os.Stdout], the new Tracer shares a mutex with other stdout tracers.
func (cfg *Config) Tracer() *Tracer {
	sink := &syncWriter{Writer: cfg.w}
	if cfg.useStdMutex {
		sink.Mutex = &stdMutex
	} else {
		sink.Mutex = new(sync.Mutex)
	}

	st := cfg.state
	if st == nil {
		st = NewState()
	}

	fatal := cfg.fatal
	if fatal == nil {
		fatal = panicFatal
	}

	var capture func() bool
	if cfg.capture != nil {
		on := *cfg.capture
		capture = func() bool { return on }
	} else {
		capture = captureFromEnv
	}

	return &Tracer{
		w:       sink,
		state:   st,
		pal:     newPalette(cfg.colors == ColorOn || (cfg.colors == ColorAuto && writerIsTerminal(cfg.w))),
		capture: capture,
		fatal:   fatal,
	}
}

// FILE CONFIG

// FileConfig is the TOML form of a tracer configuration:
//
//	capture = true
//	colors = "auto"
type FileConfig struct {
	Capture *bool  `toml:"capture"`
	Colors  string `toml:"colors"`
}

// LoadFile reads a [FileConfig] from a TOML file.
// Unknown keys and invalid values are errors.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return FileConfig{}, fmt.Errorf("%s: failed to parse trace config: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return FileConfig{}, fmt.Errorf("%s: unknown trace config keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := ParseColorMode(fc.Colors); err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// Apply sets the fields present in fc on cfg.
// An invalid Colors value is an error, and leaves cfg unchanged.
func (fc FileConfig) Apply(cfg *Config) (*Config, error) {
	mode := cfg.colors
	if fc.Colors != "" {
		var err error
		if mode, err = ParseColorMode(fc.Colors); err != nil {
			return cfg, err
		}
	}

	cfg.Colors(mode)
	if fc.Capture != nil {
		cfg.Capture(*fc.Capture)
	}
	return cfg, nil
}
