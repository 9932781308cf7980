package negotiate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/presentation/negotiate"
)

// VK_EXT_swapchain_colorspace values the binding does not name.
const (
	colorSpaceDisplayP3Nonlinear    khr_surface.ColorSpace = 1000104001
	colorSpaceExtendedSRGBLinear    khr_surface.ColorSpace = 1000104002
	colorSpaceHDR10ST2084           khr_surface.ColorSpace = 1000104008
	presentModeSharedDemandRefresh  khr_surface.PresentMode = 1000111000
)

func TestChoosePresentMode(t *testing.T) {
	testCases := []struct {
		name      string
		available []khr_surface.PresentMode
		expected  khr_surface.PresentMode
	}{
		{
			name:      "ImmediateBeforeFIFO",
			available: []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeImmediate},
			expected:  khr_surface.PresentModeImmediate,
		},
		{
			name:      "FIFOOnly",
			available: []khr_surface.PresentMode{khr_surface.PresentModeFIFO},
			expected:  khr_surface.PresentModeFIFO,
		},
		{
			name: "MailboxFirst",
			available: []khr_surface.PresentMode{
				khr_surface.PresentModeFIFO,
				khr_surface.PresentModeImmediate,
				khr_surface.PresentModeMailbox,
			},
			expected: khr_surface.PresentModeMailbox,
		},
		{
			name:      "RelaxedBeforeFIFO",
			available: []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeFIFORelaxed},
			expected:  khr_surface.PresentModeFIFORelaxed,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			mode := negotiate.ChoosePresentMode(testCase.available, negotiate.DefaultPresentModes)
			require.Equal(t, testCase.expected, mode)
		})
	}
}

func TestChoosePresentMode_CustomOrder(t *testing.T) {
	order := []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox}
	available := []khr_surface.PresentMode{khr_surface.PresentModeMailbox, khr_surface.PresentModeFIFO}

	require.Equal(t, khr_surface.PresentModeFIFO, negotiate.ChoosePresentMode(available, order))
}

func TestChoosePresentMode_NoFIFOPanics(t *testing.T) {
	require.Panics(t, func() {
		negotiate.ChoosePresentMode([]khr_surface.PresentMode{presentModeSharedDemandRefresh}, nil)
	})
}

func adaptiveSurface() negotiate.SurfaceSnapshot {
	return negotiate.SurfaceSnapshot{
		SurfaceCapabilities: khr_surface.SurfaceCapabilities{
			CurrentExtent:  negotiate.AdaptiveExtent,
			MinImageExtent: core1_0.Extent2D{Width: 100, Height: 100},
			MaxImageExtent: core1_0.Extent2D{Width: 2000, Height: 2000},
		},
	}
}

func TestChooseExtent_Adaptive(t *testing.T) {
	caps := adaptiveSurface()

	extent := negotiate.ChooseExtent(caps, core1_0.Extent2D{Width: 1000, Height: 10})
	require.Equal(t, core1_0.Extent2D{Width: 1000, Height: 100}, extent)

	extent = negotiate.ChooseExtent(caps, core1_0.Extent2D{Width: 5000, Height: 1500})
	require.Equal(t, core1_0.Extent2D{Width: 2000, Height: 1500}, extent)
}

func TestChooseExtent_AdaptiveWidenedMarker(t *testing.T) {
	caps := adaptiveSurface()
	caps.CurrentExtent = core1_0.Extent2D{Width: int(uint32(math.MaxUint32)), Height: int(uint32(math.MaxUint32))}

	extent := negotiate.ChooseExtent(caps, core1_0.Extent2D{Width: 640, Height: 480})
	require.Equal(t, core1_0.Extent2D{Width: 640, Height: 480}, extent)
}

func TestChooseExtent_Fixed(t *testing.T) {
	caps := adaptiveSurface()
	caps.CurrentExtent = core1_0.Extent2D{Width: 800, Height: 600}

	extent := negotiate.ChooseExtent(caps, core1_0.Extent2D{Width: 1000, Height: 10})
	require.Equal(t, core1_0.Extent2D{Width: 800, Height: 600}, extent)
}

func imageCounts(minImageCount, maxImageCount int) negotiate.SurfaceSnapshot {
	return negotiate.SurfaceSnapshot{
		SurfaceCapabilities: khr_surface.SurfaceCapabilities{MinImageCount: minImageCount, MaxImageCount: maxImageCount},
	}
}

func TestChooseImageCount(t *testing.T) {
	require.Equal(t, 2, negotiate.ChooseImageCount(imageCounts(2, 2)))
	require.Equal(t, 3, negotiate.ChooseImageCount(imageCounts(2, 0)))
	require.Equal(t, 3, negotiate.ChooseImageCount(imageCounts(2, 8)))
}

var rankedFormats = []khr_surface.SurfaceFormat{
	{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	{Format: core1_0.FormatR16G16B16A16SignedFloat, ColorSpace: colorSpaceExtendedSRGBLinear},
}

func TestChooseSurfaceFormat_PickHighestScore(t *testing.T) {
	prefs := negotiate.DefaultPreferences()

	format := negotiate.ChooseSurfaceFormat(rankedFormats, prefs)
	require.Equal(t, rankedFormats[1], format)
}

func TestChooseSurfaceFormat_PickLowestScore(t *testing.T) {
	prefs := negotiate.DefaultPreferences()
	prefs.FormatPick = negotiate.PickLowestScore

	format := negotiate.ChooseSurfaceFormat(rankedFormats, prefs)
	require.Equal(t, rankedFormats[2], format)
}

func TestChooseSurfaceFormat_TiesKeepAdvertisedOrder(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: colorSpaceDisplayP3Nonlinear},
		{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	require.Equal(t, formats[0], negotiate.ChooseSurfaceFormat(formats, negotiate.Preferences{}))

	lowest := negotiate.Preferences{FormatPick: negotiate.PickLowestScore}
	require.Equal(t, formats[0], negotiate.ChooseSurfaceFormat(formats, lowest))
}

func TestChooseSurfaceFormat_Empty(t *testing.T) {
	require.NotPanics(t, func() {
		require.Equal(t, khr_surface.SurfaceFormat{}, negotiate.ChooseSurfaceFormat(nil, negotiate.DefaultPreferences()))
	})
}

func TestNegotiate(t *testing.T) {
	snapshot := testSurface()
	snapshot.CurrentTransform = khr_surface.TransformRotate90

	params := negotiate.Negotiate(snapshot, core1_0.Extent2D{Width: 1, Height: 1}, negotiate.Preferences{})
	require.Equal(t, negotiate.PresentationParameters{
		SurfaceFormat: khr_surface.SurfaceFormat{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		PresentMode:   khr_surface.PresentModeMailbox,
		Extent:        core1_0.Extent2D{Width: 800, Height: 600},
		ImageCount:    3,
		PreTransform:  khr_surface.TransformRotate90,
	}, params)
}

func TestParseNames(t *testing.T) {
	mode, err := negotiate.ParsePresentMode("fifo relaxed")
	require.NoError(t, err)
	require.Equal(t, khr_surface.PresentModeFIFORelaxed, mode)

	mode, err = negotiate.ParsePresentMode("1000111000")
	require.NoError(t, err)
	require.Equal(t, presentModeSharedDemandRefresh, mode)

	format, err := negotiate.ParseFormat("R8G8B8A8 sRGB")
	require.NoError(t, err)
	require.Equal(t, core1_0.FormatR8G8B8A8SRGB, format)

	format, err = negotiate.ParseFormat("r5g6b5 unsigned normalized (packed)")
	require.NoError(t, err)
	require.Equal(t, core1_0.FormatR5G6B5UnsignedNormalizedPacked, format)

	format, err = negotiate.ParseFormat(core1_0.FormatR16G16B16A16SignedFloat.String())
	require.NoError(t, err)
	require.Equal(t, core1_0.FormatR16G16B16A16SignedFloat, format)

	space, err := negotiate.ParseColorSpace("sRGB Non-Linear")
	require.NoError(t, err)
	require.Equal(t, khr_surface.ColorSpaceSRGBNonlinear, space)

	space, err = negotiate.ParseColorSpace("1000104008")
	require.NoError(t, err)
	require.Equal(t, colorSpaceHDR10ST2084, space)

	_, err = negotiate.ParsePresentMode("vsync")
	require.EqualError(t, err, `unknown present mode "vsync"`)

	_, err = negotiate.ParseFormat("B8G8R8A8_SRGB")
	require.EqualError(t, err, `unknown format "B8G8R8A8_SRGB"`)
}
