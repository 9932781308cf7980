// Package config loads the settings shared by the presentation programs: a
// YAML file overridden by environment variables (and a .env file, via envy).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/presentation/negotiate"
	"gopkg.in/yaml.v3"
)

const (
	EnvLogLevel        = "NEGOTIATE_LOG_LEVEL"
	EnvLogFormat       = "NEGOTIATE_LOG_FORMAT"
	EnvValidation      = "NEGOTIATE_VALIDATION"
	EnvPreferredDevice = "NEGOTIATE_PREFERRED_DEVICE"
	EnvFormatPick      = "NEGOTIATE_FORMAT_PICK"
	EnvDiscreteBonus   = "NEGOTIATE_DISCRETE_BONUS"
)

type Window struct {
	Title  string `yaml:"title"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
}

type Device struct {
	RequiredExtensions []string `yaml:"requiredExtensions"`
	Preferred          string   `yaml:"preferred"`
	DiscreteBonus      int      `yaml:"discreteBonus"`
}

type Presentation struct {
	Format       string   `yaml:"format"`
	ColorSpace   string   `yaml:"colorSpace"`
	FormatPick   string   `yaml:"formatPick"`
	PresentModes []string `yaml:"presentModes"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Window       Window       `yaml:"window"`
	Validation   bool         `yaml:"validation"`
	Device       Device       `yaml:"device"`
	Presentation Presentation `yaml:"presentation"`
	Log          Log          `yaml:"log"`
}

// Default matches the renderer's built-in behavior.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "Vulkan",
			Width:  800,
			Height: 600,
		},
		Device: Device{
			DiscreteBonus: negotiate.DefaultDiscreteBonus,
		},
		Presentation: Presentation{
			Format:     core1_0.FormatB8G8R8A8SRGB.String(),
			ColorSpace: khr_surface.ColorSpaceSRGBNonlinear.String(),
			FormatPick: negotiate.PickHighestScore.String(),
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Log.Level = envy.Get(EnvLogLevel, c.Log.Level)
	c.Log.Format = envy.Get(EnvLogFormat, c.Log.Format)
	c.Device.Preferred = envy.Get(EnvPreferredDevice, c.Device.Preferred)
	c.Presentation.FormatPick = envy.Get(EnvFormatPick, c.Presentation.FormatPick)

	if value := envy.Get(EnvValidation, ""); value != "" {
		validation, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvValidation)
		}
		c.Validation = validation
	}

	if value := envy.Get(EnvDiscreteBonus, ""); value != "" {
		bonus, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvDiscreteBonus)
		}
		c.Device.DiscreteBonus = bonus
	}

	return nil
}

// Validate checks every name-valued setting.
func (c *Config) Validate() error {
	if _, err := c.Preferences(); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.Newf("invalid log format %q, expected text or json", c.Log.Format)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Newf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	return nil
}

// Preferences converts the presentation section.
func (c *Config) Preferences() (negotiate.Preferences, error) {
	prefs := negotiate.DefaultPreferences()
	var err error

	if c.Presentation.Format != "" {
		prefs.Format, err = negotiate.ParseFormat(c.Presentation.Format)
		if err != nil {
			return prefs, err
		}
	}

	if c.Presentation.ColorSpace != "" {
		prefs.ColorSpace, err = negotiate.ParseColorSpace(c.Presentation.ColorSpace)
		if err != nil {
			return prefs, err
		}
	}

	switch strings.ToLower(c.Presentation.FormatPick) {
	case "", "highest":
		prefs.FormatPick = negotiate.PickHighestScore
	case "lowest":
		prefs.FormatPick = negotiate.PickLowestScore
	default:
		return prefs, errors.Newf("invalid format pick %q, expected highest or lowest", c.Presentation.FormatPick)
	}

	if len(c.Presentation.PresentModes) > 0 {
		prefs.PresentModes = make([]khr_surface.PresentMode, 0, len(c.Presentation.PresentModes))
		for _, name := range c.Presentation.PresentModes {
			mode, err := negotiate.ParsePresentMode(name)
			if err != nil {
				return prefs, err
			}
			prefs.PresentModes = append(prefs.PresentModes, mode)
		}
	}

	return prefs, nil
}

// Scoring returns the default scoring policy with the configured discrete
// bonus, wrapped to favor the preferred device when one is named.
func (c *Config) Scoring() negotiate.ScoringPolicy {
	return negotiate.PreferDevice(c.Device.Preferred, negotiate.DefaultScoring{DiscreteBonus: c.Device.DiscreteBonus})
}

// Options assembles session options from the device and presentation
// sections. Validate must have passed.
func (c *Config) Options(logger logrus.FieldLogger) (negotiate.Options, error) {
	prefs, err := c.Preferences()
	if err != nil {
		return negotiate.Options{}, err
	}

	return negotiate.Options{
		RequiredExtensions: c.Device.RequiredExtensions,
		Scoring:            c.Scoring(),
		Preferences:        prefs,
		Logger:             logger,
	}, nil
}

// Logger builds a logger with the configured level and formatter.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	logger := logrus.New()
	logger.SetLevel(level)
	if strings.EqualFold(c.Log.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}
