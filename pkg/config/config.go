package config

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/allanhung/stdout-syslog/pkg/syslog"
)

// Output formats accepted in Config.Format.
const (
	FormatText    = "text"
	FormatRFC5424 = "rfc5424"
)

// Config holds the settings used to build a syslog.Logger.
type Config struct {
	Ident      string `envconfig:"SYSLOG_IDENT"`
	Facility   string `envconfig:"SYSLOG_FACILITY"`
	Level      string `envconfig:"SYSLOG_LEVEL"`
	Upto       string `envconfig:"SYSLOG_UPTO"`
	Format     string `envconfig:"SYSLOG_FORMAT"`
	Hostname   string `envconfig:"SYSLOG_HOSTNAME"`
	Strict     bool   `envconfig:"SYSLOG_STRICT"`
	PID        bool   `envconfig:"SYSLOG_PID"`
	MessageKey string `envconfig:"SYSLOG_MESSAGE_KEY"`
	LevelKey   string `envconfig:"SYSLOG_LEVEL_KEY"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Facility:   "LOG_USER",
		Level:      "LOG_INFO",
		Upto:       "LOG_INFO",
		Format:     FormatText,
		MessageKey: "log",
	}
}

// Get returns the default configuration overridden by SYSLOG_* environment
// variables.
func Get() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	return cfg, nil
}

// Validate checks the names and format in c.
func (c *Config) Validate() error {
	if _, ok := syslog.Facilities.Code(c.Facility); !ok {
		return errors.Wrapf(syslog.ErrUnknownFacilityName, "facility %q", c.Facility)
	}
	if _, ok := syslog.Levels.Code(c.Level); !ok {
		return errors.Wrapf(syslog.ErrUnknownLevelName, "level %q", c.Level)
	}
	if _, ok := syslog.Levels.Code(c.Upto); !ok {
		return errors.Wrapf(syslog.ErrUnknownLevelName, "upto %q", c.Upto)
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatRFC5424:
	default:
		return errors.Errorf("unknown format %q; use %s|%s", c.Format, FormatText, FormatRFC5424)
	}
	return nil
}

// Formatter returns the line formatter selected by c.Format.
func (c *Config) Formatter() syslog.Formatter {
	if strings.ToLower(c.Format) == FormatRFC5424 {
		return syslog.RFC5424Formatter{Hostname: c.Hostname}
	}
	return syslog.TextFormatter{}
}

// NewLogger validates c and returns an opened Logger writing to out.
func (c *Config) NewLogger(out io.Writer) (*syslog.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	l := syslog.New(
		syslog.WithOutput(out),
		syslog.WithFormatter(c.Formatter()),
		syslog.WithStrict(c.Strict),
	)
	var options syslog.Option
	if c.PID {
		options |= syslog.OptionPID
	}
	if err := l.Open(c.Ident, options, syslog.Symbolic(c.Facility)); err != nil {
		return nil, err
	}
	if _, err := l.Upto(syslog.Symbolic(c.Upto)); err != nil {
		return nil, err
	}
	return l, nil
}

// String returns c as JSON.
func (c Config) String() string {
	b, _ := json.Marshal(c)
	return string(b)
}
