package vkplatform

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/presentation/negotiate"
)

func physicalDevice(device negotiate.PhysicalDevice) core1_0.PhysicalDevice {
	return device.(core1_0.PhysicalDevice)
}

func (p *Platform) PhysicalDevices() ([]negotiate.PhysicalDevice, error) {
	physicalDevices, _, err := p.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]negotiate.PhysicalDevice, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		devices = append(devices, device)
	}
	return devices, nil
}

func (p *Platform) DeviceProperties(device negotiate.PhysicalDevice) (*core1_0.PhysicalDeviceProperties, error) {
	return p.instanceDriver.GetPhysicalDeviceProperties(physicalDevice(device))
}

func (p *Platform) QueueFamilies(device negotiate.PhysicalDevice) []*core1_0.QueueFamilyProperties {
	return p.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(physicalDevice(device))
}

func (p *Platform) SurfaceSupport(device negotiate.PhysicalDevice, queueFamily int) (bool, error) {
	supported, _, err := p.surfaceExtension.GetPhysicalDeviceSurfaceSupport(p.surface, physicalDevice(device), queueFamily)
	return supported, err
}

func (p *Platform) DeviceExtensions(device negotiate.PhysicalDevice) ([]string, error) {
	extensions, _, err := p.instanceDriver.EnumerateDeviceExtensionProperties(physicalDevice(device))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	return names, nil
}

func (p *Platform) SurfaceCapabilities(device negotiate.PhysicalDevice) (*khr_surface.SurfaceCapabilities, error) {
	capabilities, _, err := p.surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(p.surface, physicalDevice(device))
	return capabilities, err
}

func (p *Platform) SurfaceFormats(device negotiate.PhysicalDevice) ([]khr_surface.SurfaceFormat, error) {
	formats, _, err := p.surfaceExtension.GetPhysicalDeviceSurfaceFormats(p.surface, physicalDevice(device))
	return formats, err
}

func (p *Platform) SurfacePresentModes(device negotiate.PhysicalDevice) ([]khr_surface.PresentMode, error) {
	modes, _, err := p.surfaceExtension.GetPhysicalDeviceSurfacePresentModes(p.surface, physicalDevice(device))
	return modes, err
}
