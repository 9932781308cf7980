package negotiate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// AdaptiveExtent is a current extent whose width carries the 0xFFFFFFFF
// marker: the swapchain decides its own size.
var AdaptiveExtent = core1_0.Extent2D{Width: -1, Height: -1}

// IsAdaptive reports whether a surface's current extent carries the
// 0xFFFFFFFF marker. The binding widens the raw uint32, so the marker shows up
// as -1 or as math.MaxUint32 depending on the size of int.
func IsAdaptive(extent core1_0.Extent2D) bool {
	return uint32(extent.Width) == math.MaxUint32
}

func extentString(extent core1_0.Extent2D) string {
	return fmt.Sprintf("%dx%d", extent.Width, extent.Height)
}

// SurfaceSnapshot is the capability snapshot of one (device, surface) pair.
// MaxImageCount of zero means there is no upper bound.
type SurfaceSnapshot struct {
	khr_surface.SurfaceCapabilities

	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

var presentModes = []khr_surface.PresentMode{
	khr_surface.PresentModeImmediate,
	khr_surface.PresentModeMailbox,
	khr_surface.PresentModeFIFO,
	khr_surface.PresentModeFIFORelaxed,
}

var colorSpaces = []khr_surface.ColorSpace{
	khr_surface.ColorSpaceSRGBNonlinear,
}

// ParseFormat accepts any name core1_0.Format.String prints, case-insensitively,
// or the numeric VkFormat value.
func ParseFormat(name string) (core1_0.Format, error) {
	for format, formatName := range core1_0.FormatMapping {
		if strings.EqualFold(formatName, name) {
			return format, nil
		}
	}
	if value, ok := parseEnumValue(name); ok {
		return core1_0.Format(value), nil
	}
	return core1_0.FormatUndefined, errors.Newf("unknown format %q", name)
}

// ParseColorSpace accepts the names khr_surface.ColorSpace.String prints, or
// the numeric VkColorSpaceKHR value for color spaces the binding does not name.
func ParseColorSpace(name string) (khr_surface.ColorSpace, error) {
	for _, space := range colorSpaces {
		if strings.EqualFold(space.String(), name) {
			return space, nil
		}
	}
	if value, ok := parseEnumValue(name); ok {
		return khr_surface.ColorSpace(value), nil
	}
	return 0, errors.Newf("unknown color space %q", name)
}

// ParsePresentMode accepts the names khr_surface.PresentMode.String prints,
// or a numeric VkPresentModeKHR value.
func ParsePresentMode(name string) (khr_surface.PresentMode, error) {
	for _, mode := range presentModes {
		if strings.EqualFold(mode.String(), name) {
			return mode, nil
		}
	}
	if value, ok := parseEnumValue(name); ok {
		return khr_surface.PresentMode(value), nil
	}
	return 0, errors.Newf("unknown present mode %q", name)
}

func parseEnumValue(name string) (int32, bool) {
	value, err := strconv.ParseInt(strings.TrimSpace(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(value), true
}
