package negotiate

import (
	"fmt"
	"sort"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// FormatPick decides which end of the format score ranking is chosen.
type FormatPick int

const (
	// PickHighestScore chooses the advertised pair matching the most
	// preferences.
	PickHighestScore FormatPick = iota
	// PickLowestScore chooses the pair matching the fewest preferences: the
	// first element after an ascending sort by score. Kept for renderers that
	// depend on that ordering.
	PickLowestScore
)

func (p FormatPick) String() string {
	if p == PickLowestScore {
		return "lowest"
	}
	return "highest"
}

// DefaultPresentModes is the fixed preference order for present modes. FIFO
// is last because every conformant surface supports it.
var DefaultPresentModes = []khr_surface.PresentMode{
	khr_surface.PresentModeMailbox,
	khr_surface.PresentModeImmediate,
	khr_surface.PresentModeFIFORelaxed,
	khr_surface.PresentModeFIFO,
}

// Preferences steer presentation negotiation. The zero value is usable and
// equivalent to DefaultPreferences.
type Preferences struct {
	Format       core1_0.Format
	ColorSpace   khr_surface.ColorSpace
	FormatPick   FormatPick
	PresentModes []khr_surface.PresentMode
}

// DefaultPreferences asks for 8-bit BGRA sRGB with the sRGB nonlinear color
// space, the best-scoring pair and DefaultPresentModes.
func DefaultPreferences() Preferences {
	return Preferences{
		Format:       core1_0.FormatB8G8R8A8SRGB,
		ColorSpace:   khr_surface.ColorSpaceSRGBNonlinear,
		FormatPick:   PickHighestScore,
		PresentModes: DefaultPresentModes,
	}
}

func (p Preferences) withDefaults() Preferences {
	if p.Format == core1_0.FormatUndefined {
		p.Format = core1_0.FormatB8G8R8A8SRGB
	}
	if len(p.PresentModes) == 0 {
		p.PresentModes = DefaultPresentModes
	}
	return p
}

// PresentationParameters is the negotiated swapchain configuration.
type PresentationParameters struct {
	SurfaceFormat khr_surface.SurfaceFormat
	PresentMode   khr_surface.PresentMode
	Extent        core1_0.Extent2D
	ImageCount    int
	PreTransform  khr_surface.SurfaceTransformFlags
}

// Negotiate derives the swapchain parameters from a capability snapshot and
// the drawable size reported by the window. The snapshot must come from a
// candidate that passed selection, and its format and present-mode lists must
// be non-empty.
func Negotiate(snapshot SurfaceSnapshot, drawable core1_0.Extent2D, prefs Preferences) PresentationParameters {
	prefs = prefs.withDefaults()

	return PresentationParameters{
		SurfaceFormat: ChooseSurfaceFormat(snapshot.Formats, prefs),
		PresentMode:   ChoosePresentMode(snapshot.PresentModes, prefs.PresentModes),
		Extent:        ChooseExtent(snapshot, drawable),
		ImageCount:    ChooseImageCount(snapshot),
		PreTransform:  snapshot.CurrentTransform,
	}
}

// ChooseSurfaceFormat scores each pair one point for the preferred format and
// one for the preferred color space, then takes the pair at the end of the
// ranking named by prefs.FormatPick. Equal scores keep advertised order. An
// empty list yields the zero pair.
func ChooseSurfaceFormat(availableFormats []khr_surface.SurfaceFormat, prefs Preferences) khr_surface.SurfaceFormat {
	if len(availableFormats) == 0 {
		return khr_surface.SurfaceFormat{}
	}

	type scoredFormat struct {
		format khr_surface.SurfaceFormat
		score  int
	}

	prefs = prefs.withDefaults()
	scored := make([]scoredFormat, 0, len(availableFormats))
	for _, format := range availableFormats {
		score := 0
		if format.Format == prefs.Format {
			score++
		}
		if format.ColorSpace == prefs.ColorSpace {
			score++
		}
		scored = append(scored, scoredFormat{format: format, score: score})
	}

	if prefs.FormatPick == PickLowestScore {
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].score < scored[j].score })
	} else {
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	}

	return scored[0].format
}

// ChoosePresentMode returns the first mode of order the surface supports.
// Surfaces must support FIFO, so finding none is a broken contract and
// panics.
func ChoosePresentMode(availablePresentModes []khr_surface.PresentMode, order []khr_surface.PresentMode) khr_surface.PresentMode {
	if len(order) == 0 {
		order = DefaultPresentModes
	}

	for _, desired := range order {
		for _, presentMode := range availablePresentModes {
			if presentMode == desired {
				return presentMode
			}
		}
	}

	panic(fmt.Sprintf("negotiate: surface supports none of %v; FIFO should be guaranteed to exist", order))
}

// ChooseExtent uses the surface's current extent unless it carries the
// adaptive marker (see IsAdaptive), in which case the drawable size is clamped
// to the surface limits on each axis independently.
func ChooseExtent(capabilities SurfaceSnapshot, drawable core1_0.Extent2D) core1_0.Extent2D {
	if !IsAdaptive(capabilities.CurrentExtent) {
		return capabilities.CurrentExtent
	}

	return core1_0.Extent2D{
		Width:  clamp(drawable.Width, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width),
		Height: clamp(drawable.Height, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height),
	}
}

func clamp(value, lower, upper int) int {
	if value < lower {
		value = lower
	}
	if value > upper {
		value = upper
	}
	return value
}

// ChooseImageCount asks for one image more than the minimum, capped by a
// nonzero maximum.
func ChooseImageCount(capabilities SurfaceSnapshot) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && capabilities.MaxImageCount < imageCount {
		imageCount = capabilities.MaxImageCount
	}

	return imageCount
}
