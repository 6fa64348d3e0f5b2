package options

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"param-supplier/datetime"
)

// Constants for default values.
const (
	DefaultDelimiter     = ":"
	DefaultQueueCapacity = 100
)

// Options configures a resolution engine.
type Options struct {
	// Delimiter separates the sub-values of a multi-value field.
	Delimiter string
	// QueueCapacity is the capacity of bounded queues built for collection parameters.
	QueueCapacity int
	// Fallback selects the built-in coercion rules used when no editor or converter matches.
	// Zero selects FallbackAll; FallbackNone disables every rule.
	Fallback FallbackEnum

	TimestampLayouts []string
	TimeLayouts      []string
	DateLayouts      []string
	DateTimeLayouts  []string

	Debug bool
}

// file is the YAML shape of Options.
type file struct {
	Delimiter        string   `yaml:"delimiter,omitempty"`
	QueueCapacity    int      `yaml:"queue_capacity,omitempty"`
	Fallback         []string `yaml:"fallback,omitempty"`
	TimestampLayouts []string `yaml:"timestamp_layouts,omitempty"`
	TimeLayouts      []string `yaml:"time_layouts,omitempty"`
	DateLayouts      []string `yaml:"date_layouts,omitempty"`
	DateTimeLayouts  []string `yaml:"datetime_layouts,omitempty"`
	Debug            bool     `yaml:"debug"`
}

// Default returns the options used when nothing else is configured.
func Default() Options {
	return Options{
		Delimiter:        DefaultDelimiter,
		QueueCapacity:    DefaultQueueCapacity,
		Fallback:         FallbackAll,
		TimestampLayouts: datetime.TimestampLayouts,
		TimeLayouts:      datetime.TimeLayouts,
		DateLayouts:      datetime.DateLayouts,
		DateTimeLayouts:  datetime.DateTimeLayouts,
	}
}

// Load reads a YAML options file on top of the defaults. A missing file yields the defaults.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}

		return opts, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	if err := opts.merge(data); err != nil {
		return Default(), fmt.Errorf("failed to parse options file %s: %w", path, err)
	}

	return opts, nil
}

// Parse decodes YAML data on top of the defaults.
func Parse(data []byte) (Options, error) {
	opts := Default()
	if err := opts.merge(data); err != nil {
		return Default(), err
	}

	return opts, nil
}

func (o *Options) merge(data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if f.Delimiter != "" {
		o.Delimiter = f.Delimiter
	}
	if f.QueueCapacity > 0 {
		o.QueueCapacity = f.QueueCapacity
	}
	if f.Fallback != nil {
		fallback, err := ParseFallback(f.Fallback)
		if err != nil {
			return err
		}
		o.Fallback = fallback
	}
	if len(f.TimestampLayouts) > 0 {
		o.TimestampLayouts = f.TimestampLayouts
	}
	if len(f.TimeLayouts) > 0 {
		o.TimeLayouts = f.TimeLayouts
	}
	if len(f.DateLayouts) > 0 {
		o.DateLayouts = f.DateLayouts
	}
	if len(f.DateTimeLayouts) > 0 {
		o.DateTimeLayouts = f.DateTimeLayouts
	}
	o.Debug = o.Debug || f.Debug

	return nil
}

// ApplyEnv overrides options from PARAM_SUPPLIER_* environment variables.
func (o *Options) ApplyEnv() error {
	if v := os.Getenv("PARAM_SUPPLIER_DELIMITER"); v != "" {
		o.Delimiter = v
	}

	if v := os.Getenv("PARAM_SUPPLIER_QUEUE_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("PARAM_SUPPLIER_QUEUE_CAPACITY: %q is not a positive integer", v)
		}
		o.QueueCapacity = n
	}

	if v := os.Getenv("PARAM_SUPPLIER_DEBUG"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			o.Debug = true
		case "0", "false", "no", "off":
			o.Debug = false
		default:
			return fmt.Errorf("PARAM_SUPPLIER_DEBUG: %q is not a boolean", v)
		}
	}

	return nil
}

// Marshal serializes options to YAML.
func Marshal(o Options) ([]byte, error) {
	fallback := o.Fallback.Names()
	if len(fallback) == 0 {
		fallback = []string{"none"}
	}

	return yaml.Marshal(file{
		Delimiter:        o.Delimiter,
		QueueCapacity:    o.QueueCapacity,
		Fallback:         fallback,
		TimestampLayouts: o.TimestampLayouts,
		TimeLayouts:      o.TimeLayouts,
		DateLayouts:      o.DateLayouts,
		DateTimeLayouts:  o.DateTimeLayouts,
		Debug:            o.Debug,
	})
}
