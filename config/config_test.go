package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/presentation/config"
	"github.com/vkngwrapper/presentation/negotiate"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "presentation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	prefs, err := cfg.Preferences()
	require.NoError(t, err)
	require.Equal(t, negotiate.DefaultPreferences(), prefs)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Presentation
  width: 1280
  height: 720
validation: true
device:
  requiredExtensions: [VK_KHR_dynamic_rendering]
  preferred: radeon
  discreteBonus: 250
presentation:
  format: R8G8B8A8 sRGB
  colorSpace: sRGB Non-Linear
  formatPick: lowest
  presentModes: [FIFO Relaxed, fifo]
log:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "Presentation", cfg.Window.Title)
	require.Equal(t, int32(1280), cfg.Window.Width)
	require.True(t, cfg.Validation)

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	require.Equal(t, []string{"VK_KHR_dynamic_rendering"}, opts.RequiredExtensions)
	require.Equal(t, negotiate.Preferences{
		Format:       core1_0.FormatR8G8B8A8SRGB,
		ColorSpace:   khr_surface.ColorSpaceSRGBNonlinear,
		FormatPick:   negotiate.PickLowestScore,
		PresentModes: []khr_surface.PresentMode{khr_surface.PresentModeFIFORelaxed, khr_surface.PresentModeFIFO},
	}, opts.Preferences)

	radeon := &core1_0.PhysicalDeviceProperties{
		DriverName: "AMD Radeon",
		DriverType: core1_0.PhysicalDeviceTypeIntegratedGPU,
		Limits:     &core1_0.PhysicalDeviceLimits{MaxImageDimension2D: 8192},
	}
	geforce := &core1_0.PhysicalDeviceProperties{
		DriverName: "GeForce",
		DriverType: core1_0.PhysicalDeviceTypeDiscreteGPU,
		Limits:     &core1_0.PhysicalDeviceLimits{MaxImageDimension2D: 32768},
	}
	require.Greater(t, opts.Scoring.Score(radeon), opts.Scoring.Score(geforce))
	require.Equal(t, int64(32768+250), opts.Scoring.Score(geforce))

	logger, err := cfg.Logger()
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestLoad_EnvOverrides(t *testing.T) {
	envy.Temp(func() {
		envy.Set(config.EnvLogLevel, "warn")
		envy.Set(config.EnvValidation, "true")
		envy.Set(config.EnvPreferredDevice, "llvmpipe")
		envy.Set(config.EnvFormatPick, "lowest")
		envy.Set(config.EnvDiscreteBonus, "5")

		cfg, err := config.Load(writeConfig(t, "log:\n  level: debug\n"))
		require.NoError(t, err)
		require.Equal(t, "warn", cfg.Log.Level)
		require.True(t, cfg.Validation)
		require.Equal(t, "llvmpipe", cfg.Device.Preferred)
		require.Equal(t, "lowest", cfg.Presentation.FormatPick)
		require.Equal(t, 5, cfg.Device.DiscreteBonus)
	})
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		env      map[string]string
		message  string
	}{
		{
			name:     "PresentMode",
			contents: "presentation:\n  presentModes: [vsync]\n",
			message:  `unknown present mode "vsync"`,
		},
		{
			name:     "FormatPick",
			contents: "presentation:\n  formatPick: middle\n",
			message:  `invalid format pick "middle", expected highest or lowest`,
		},
		{
			name:     "LogFormat",
			contents: "log:\n  format: xml\n",
			message:  `invalid log format "xml", expected text or json`,
		},
		{
			name:     "WindowSize",
			contents: "window:\n  width: 0\n",
			message:  "invalid window size 0x600",
		},
		{
			name:    "Validation",
			env:     map[string]string{config.EnvValidation: "sometimes"},
			message: `invalid NEGOTIATE_VALIDATION: strconv.ParseBool: parsing "sometimes": invalid syntax`,
		},
		{
			name:     "YAML",
			contents: "window: [\n",
			message:  "failed to parse config file",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			envy.Temp(func() {
				for key, value := range testCase.env {
					envy.Set(key, value)
				}

				_, err := config.Load(writeConfig(t, testCase.contents))
				require.Error(t, err)
				require.Contains(t, err.Error(), testCase.message)
			})
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
