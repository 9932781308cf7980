package negotiate

import (
	"sort"

	"github.com/vkngwrapper/core/v3/core1_0"
)

// Capabilities is what one candidate reported when probed against the surface.
type Capabilities struct {
	Properties    *core1_0.PhysicalDeviceProperties
	QueueFamilies []*core1_0.QueueFamilyProperties
	Extensions    map[string]struct{}
	Surface       SurfaceSnapshot
}

// MissingExtensions returns the entries of required the device does not
// advertise, in the order given.
func (c *Capabilities) MissingExtensions(required []string) []string {
	var missing []string
	for _, extension := range required {
		if _, hasExtension := c.Extensions[extension]; !hasExtension {
			missing = append(missing, extension)
		}
	}
	return missing
}

// ExtensionNames returns the advertised extensions sorted by name.
func (c *Capabilities) ExtensionNames() []string {
	names := make([]string, 0, len(c.Extensions))
	for name := range c.Extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Probe queries device properties, queue families, extensions and the surface
// snapshot. Any failing query returns an error marked ErrQuery; nothing is
// retried.
func Probe(prober Prober, device PhysicalDevice) (*Capabilities, error) {
	var err error
	caps := &Capabilities{}

	caps.Properties, err = prober.DeviceProperties(device)
	if err != nil {
		return nil, queryError(err, "could not get physical device properties")
	}

	caps.QueueFamilies = prober.QueueFamilies(device)

	extensions, err := prober.DeviceExtensions(device)
	if err != nil {
		return nil, queryError(err, "could not enumerate device extensions")
	}
	caps.Extensions = make(map[string]struct{}, len(extensions))
	for _, extension := range extensions {
		caps.Extensions[extension] = struct{}{}
	}

	caps.Surface, err = QuerySurface(prober, device)
	if err != nil {
		return nil, err
	}

	return caps, nil
}

// QuerySurface builds the surface capability snapshot for device. It is run
// again on every swapchain rebuild since the current extent follows the window.
func QuerySurface(prober Prober, device PhysicalDevice) (SurfaceSnapshot, error) {
	capabilities, err := prober.SurfaceCapabilities(device)
	if err != nil {
		return SurfaceSnapshot{}, queryError(err, "could not get surface capabilities")
	}

	snapshot := SurfaceSnapshot{SurfaceCapabilities: *capabilities}
	snapshot.Formats, err = prober.SurfaceFormats(device)
	if err != nil {
		return SurfaceSnapshot{}, queryError(err, "could not get surface formats")
	}

	snapshot.PresentModes, err = prober.SurfacePresentModes(device)
	if err != nil {
		return SurfaceSnapshot{}, queryError(err, "could not get surface present modes")
	}

	return snapshot, nil
}
