package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"vshell/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the settings vshell is built with. They come from the
// embedded defaults document and never change while the process runs.
type Config struct {
	Root           string `yaml:"root"`            // Browsing is clamped to this directory
	HiddenPrefix   string `yaml:"hidden_prefix"`   // Entries starting with this are not listed
	TimeoutSeconds int    `yaml:"timeout_seconds"` // Inactivity before power off
	LogFile        string `yaml:"log_file"`        // Log sink while the UI owns the terminal
	Device         struct {
		Signature  string `yaml:"signature"`   // Glob matched against udev device paths
		SysfsClass string `yaml:"sysfs_class"` // Where hidraw devices are enumerated
		DevDir     string `yaml:"dev_dir"`     // Where device nodes live
		On         []int  `yaml:"on"`          // Bytes written to switch power on
		Off        []int  `yaml:"off"`         // Bytes written to switch power off
	} `yaml:"device"`
	Helper struct {
		Enable  []string `yaml:"enable"`  // Started before a launch
		Disable []string `yaml:"disable"` // Started after a launch
	} `yaml:"helper"`
	Commands map[string][]string `yaml:"commands"` // Extension -> argv prefix
}

// Load returns the built-in configuration.
func Load() (*Config, error) {
	return Parse(defaultsYAML)
}

// MustLoad is Load for callers that treat a broken embedded document as a
// build defect.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError("error parsing configuration", "", errors.InvalidConfig, err)
	}
	if cfg.HiddenPrefix == "" {
		cfg.HiddenPrefix = "."
	}
	if cfg.Root != "" {
		cfg.Root = filepath.Clean(cfg.Root)
	}

	// Extensions are matched in lowercase
	commands := make(map[string][]string, len(cfg.Commands))
	for ext, argv := range cfg.Commands {
		commands[strings.ToLower(strings.TrimPrefix(ext, "."))] = argv
	}
	cfg.Commands = commands

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}
	if c.Root == "" || !filepath.IsAbs(c.Root) {
		return errors.NewConfigError("root must be an absolute path", "root", errors.InvalidConfig, nil)
	}
	if c.TimeoutSeconds < 1 {
		return errors.NewConfigError("timeout must be >= 1 second", "timeout_seconds", errors.InvalidConfig, nil)
	}
	if c.Device.Signature == "" {
		return errors.NewConfigError("device signature is required", "device.signature", errors.InvalidConfig, nil)
	}
	if err := validBytes("device.on", c.Device.On); err != nil {
		return err
	}
	if err := validBytes("device.off", c.Device.Off); err != nil {
		return err
	}
	for ext, argv := range c.Commands {
		if ext == "" {
			return errors.NewConfigError("command extension cannot be empty", "commands", errors.InvalidConfig, nil)
		}
		if len(argv) == 0 || argv[0] == "" {
			return errors.NewConfigError("command argv is required", "commands."+ext, errors.InvalidConfig, nil)
		}
	}
	return nil
}

func validBytes(param string, values []int) error {
	if len(values) == 0 {
		return errors.NewConfigError("command bytes are required", param, errors.InvalidConfig, nil)
	}
	for _, v := range values {
		if v < 0 || v > 255 {
			return errors.NewConfigError(fmt.Sprintf("byte out of range: %d", v), param, errors.InvalidConfig, nil)
		}
	}
	return nil
}

// Timeout is the inactivity period as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// OnBytes returns the power-on command sequence.
func (c *Config) OnBytes() []byte {
	return toBytes(c.Device.On)
}

// OffBytes returns the power-off command sequence.
func (c *Config) OffBytes() []byte {
	return toBytes(c.Device.Off)
}

func toBytes(values []int) []byte {
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = byte(v)
	}
	return b
}
