package vkplatform

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"github.com/vkngwrapper/presentation/negotiate"
)

// CreateDevice creates a logical device with one queue per listed family.
// VK_KHR_portability_subset is enabled whenever the device advertises it.
func (p *Platform) CreateDevice(device negotiate.PhysicalDevice, info negotiate.DeviceCreateInfo) (negotiate.LogicalDevice, error) {
	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, queueFamily := range info.QueueFamilies {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	var extensionNames []string
	extensionNames = append(extensionNames, info.ExtensionNames...)

	extensions, _, err := p.instanceDriver.EnumerateDeviceExtensionProperties(physicalDevice(device))
	if err != nil {
		return nil, err
	}

	_, supported := extensions[khr_portability_subset.ExtensionName]
	if supported && !contains(extensionNames, khr_portability_subset.ExtensionName) {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	logical, _, err := p.instanceDriver.CreateDevice(physicalDevice(device), nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return nil, err
	}

	deviceDriver, err := p.instanceDriver.BuildDeviceDriver(logical)
	if err != nil {
		p.instanceDriver.Loader().VkDestroyDevice(logical.Handle(), nil)
		return nil, errors.Wrap(err, "could not load device functions")
	}

	return &logicalDevice{
		driver:             deviceDriver,
		swapchainExtension: khr_swapchain.CreateExtensionDriverFromCoreDriver(deviceDriver),
	}, nil
}

func contains(names []string, name string) bool {
	for _, existing := range names {
		if existing == name {
			return true
		}
	}
	return false
}

type logicalDevice struct {
	driver             core1_0.CoreDeviceDriver
	swapchainExtension khr_swapchain.ExtensionDriver
}

func (d *logicalDevice) Queue(queueFamily int) negotiate.Queue {
	return d.driver.GetQueue(queueFamily, 0)
}

func (d *logicalDevice) CreateSwapchain(info negotiate.SwapchainCreateInfo) (negotiate.SwapchainKHR, error) {
	surface, ok := info.Surface.(surfaceHandle)
	if !ok {
		return nil, errors.Newf("surface %T was not opened by this platform", info.Surface)
	}
	if info.OldSwapchain != nil {
		return nil, errors.New("retiring an old swapchain is not supported")
	}

	swapchain, _, err := d.swapchainExtension.CreateSwapchain(nil, swapchainCreateInfo(surface.platform.surface, info))
	if err != nil {
		return nil, err
	}

	return swapchain, nil
}

func (d *logicalDevice) SwapchainImages(swapchain negotiate.SwapchainKHR) ([]negotiate.Image, error) {
	images, _, err := d.swapchainExtension.GetSwapchainImages(swapchain.(khr_swapchain.Swapchain))
	if err != nil {
		return nil, err
	}

	handles := make([]negotiate.Image, 0, len(images))
	for _, image := range images {
		handles = append(handles, image)
	}
	return handles, nil
}

func (d *logicalDevice) DestroySwapchain(swapchain negotiate.SwapchainKHR) {
	d.swapchainExtension.DestroySwapchain(swapchain.(khr_swapchain.Swapchain), nil)
}

func (d *logicalDevice) CreateImageView(info negotiate.ImageViewCreateInfo) (negotiate.ImageView, error) {
	imageView, _, err := d.driver.CreateImageView(nil, imageViewCreateInfo(info))
	if err != nil {
		return nil, err
	}
	return imageView, nil
}

func (d *logicalDevice) DestroyImageView(view negotiate.ImageView) {
	d.driver.DestroyImageView(view.(core1_0.ImageView), nil)
}

func (d *logicalDevice) WaitIdle() error {
	_, err := d.driver.DeviceWaitIdle()
	return err
}

func (d *logicalDevice) Destroy() {
	d.driver.DestroyDevice(nil)
}

func swapchainCreateInfo(surface khr_surface.Surface, info negotiate.SwapchainCreateInfo) khr_swapchain.SwapchainCreateInfo {
	return khr_swapchain.SwapchainCreateInfo{
		Surface: surface,

		MinImageCount:    info.MinImageCount,
		ImageFormat:      info.ImageFormat,
		ImageColorSpace:  info.ImageColorSpace,
		ImageExtent:      info.ImageExtent,
		ImageArrayLayers: info.ImageArrayLayers,
		ImageUsage:       info.ImageUsage,

		ImageSharingMode:   info.ImageSharingMode,
		QueueFamilyIndices: info.QueueFamilyIndices,

		PreTransform:   info.PreTransform,
		CompositeAlpha: info.CompositeAlpha,
		PresentMode:    info.PresentMode,
		Clipped:        info.Clipped,
	}
}

func imageViewCreateInfo(info negotiate.ImageViewCreateInfo) core1_0.ImageViewCreateInfo {
	return core1_0.ImageViewCreateInfo{
		Image:            info.Image.(core1_0.Image),
		ViewType:         info.ViewType,
		Format:           info.Format,
		Components:       info.Components,
		SubresourceRange: info.SubresourceRange,
	}
}
