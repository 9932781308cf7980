package negotiate_test

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/presentation/negotiate"
)

type fakeDevice struct {
	properties      core1_0.PhysicalDeviceProperties
	families        []*core1_0.QueueFamilyProperties
	presentFamilies map[int]bool
	extensions      []string
	surface         negotiate.SurfaceSnapshot

	propertiesErr error
	supportErr    error
	formatsErr    error

	surfaceQueries int
}

type fakePlatform struct {
	devices      []*fakeDevice
	enumerateErr error

	logical   negotiate.LogicalDevice
	createErr error
	created   []negotiate.DeviceCreateInfo

	instance negotiate.Releaser
	surface  negotiate.Releaser
}

var _ negotiate.Platform = &fakePlatform{}

func (p *fakePlatform) PhysicalDevices() ([]negotiate.PhysicalDevice, error) {
	if p.enumerateErr != nil {
		return nil, p.enumerateErr
	}

	devices := make([]negotiate.PhysicalDevice, 0, len(p.devices))
	for _, device := range p.devices {
		devices = append(devices, device)
	}
	return devices, nil
}

func (p *fakePlatform) DeviceProperties(device negotiate.PhysicalDevice) (*core1_0.PhysicalDeviceProperties, error) {
	d := device.(*fakeDevice)
	if d.propertiesErr != nil {
		return nil, d.propertiesErr
	}
	properties := d.properties
	return &properties, nil
}

func (p *fakePlatform) QueueFamilies(device negotiate.PhysicalDevice) []*core1_0.QueueFamilyProperties {
	return device.(*fakeDevice).families
}

func (p *fakePlatform) SurfaceSupport(device negotiate.PhysicalDevice, queueFamily int) (bool, error) {
	d := device.(*fakeDevice)
	if d.supportErr != nil {
		return false, d.supportErr
	}
	return d.presentFamilies[queueFamily], nil
}

func (p *fakePlatform) DeviceExtensions(device negotiate.PhysicalDevice) ([]string, error) {
	return device.(*fakeDevice).extensions, nil
}

func (p *fakePlatform) SurfaceCapabilities(device negotiate.PhysicalDevice) (*khr_surface.SurfaceCapabilities, error) {
	d := device.(*fakeDevice)
	d.surfaceQueries++
	capabilities := d.surface.SurfaceCapabilities
	return &capabilities, nil
}

func (p *fakePlatform) SurfaceFormats(device negotiate.PhysicalDevice) ([]khr_surface.SurfaceFormat, error) {
	d := device.(*fakeDevice)
	return d.surface.Formats, d.formatsErr
}

func (p *fakePlatform) SurfacePresentModes(device negotiate.PhysicalDevice) ([]khr_surface.PresentMode, error) {
	return device.(*fakeDevice).surface.PresentModes, nil
}

func (p *fakePlatform) CreateDevice(device negotiate.PhysicalDevice, info negotiate.DeviceCreateInfo) (negotiate.LogicalDevice, error) {
	p.created = append(p.created, info)
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.logical, nil
}

func (p *fakePlatform) Instance() negotiate.Releaser {
	return p.instance
}

func (p *fakePlatform) Surface() negotiate.Releaser {
	return p.surface
}

func testSurface() negotiate.SurfaceSnapshot {
	return negotiate.SurfaceSnapshot{
		SurfaceCapabilities: khr_surface.SurfaceCapabilities{
			MinImageCount:    2,
			MaxImageCount:    8,
			CurrentExtent:    core1_0.Extent2D{Width: 800, Height: 600},
			MinImageExtent:   core1_0.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:   core1_0.Extent2D{Width: 4096, Height: 4096},
			CurrentTransform: khr_surface.TransformIdentity,
		},
		Formats: []khr_surface.SurfaceFormat{
			{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
			{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		},
		PresentModes: []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox},
	}
}

// suitableDevice has one combined graphics and present family and the
// swapchain extension.
func suitableDevice(name string, deviceType core1_0.PhysicalDeviceType, maxImageDimension int) *fakeDevice {
	return &fakeDevice{
		properties: core1_0.PhysicalDeviceProperties{
			DriverName: name,
			DriverType: deviceType,
			Limits:     &core1_0.PhysicalDeviceLimits{MaxImageDimension2D: maxImageDimension},
		},
		families: []*core1_0.QueueFamilyProperties{
			{QueueFlags: core1_0.QueueGraphics | core1_0.QueueCompute | core1_0.QueueTransfer, QueueCount: 1},
		},
		presentFamilies: map[int]bool{0: true},
		extensions:      []string{negotiate.SwapchainExtensionName},
		surface:         testSurface(),
	}
}
