package negotiate

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

//go:generate mockgen -destination=../mocks/negotiate.go -package=mocks . LogicalDevice,Releaser

// Opaque handles owned by the graphics binding. The engine passes them back
// unchanged and never inspects them.
type (
	PhysicalDevice interface{}
	Queue          interface{}
	SwapchainKHR   interface{}
	Image          interface{}
	ImageView      interface{}
)

// Releaser is a handle that teardown destroys: the instance and the surface.
type Releaser interface {
	Destroy()
}

// Prober answers capability queries about one device against the platform's
// surface.
type Prober interface {
	DeviceProperties(device PhysicalDevice) (*core1_0.PhysicalDeviceProperties, error)
	QueueFamilies(device PhysicalDevice) []*core1_0.QueueFamilyProperties
	SurfaceSupport(device PhysicalDevice, queueFamily int) (bool, error)
	DeviceExtensions(device PhysicalDevice) ([]string, error)

	SurfaceCapabilities(device PhysicalDevice) (*khr_surface.SurfaceCapabilities, error)
	SurfaceFormats(device PhysicalDevice) ([]khr_surface.SurfaceFormat, error)
	SurfacePresentModes(device PhysicalDevice) ([]khr_surface.PresentMode, error)
}

// Enumerator lists the candidates of one instance and probes them.
type Enumerator interface {
	Prober

	PhysicalDevices() ([]PhysicalDevice, error)
}

// Platform is the graphics API entry point plus the surface it was opened
// with. Instance and Surface return nil when the handle was never created.
type Platform interface {
	Enumerator

	CreateDevice(device PhysicalDevice, info DeviceCreateInfo) (LogicalDevice, error)

	Instance() Releaser
	Surface() Releaser
}

// DeviceCreateInfo lists one entry per unique queue family.
type DeviceCreateInfo struct {
	QueueFamilies  []int
	ExtensionNames []string
}

// LogicalDevice is a created device together with the swapchain entry points
// it exposes.
type LogicalDevice interface {
	Queue(queueFamily int) Queue

	CreateSwapchain(info SwapchainCreateInfo) (SwapchainKHR, error)
	SwapchainImages(swapchain SwapchainKHR) ([]Image, error)
	DestroySwapchain(swapchain SwapchainKHR)

	CreateImageView(info ImageViewCreateInfo) (ImageView, error)
	DestroyImageView(view ImageView)

	WaitIdle() error
	Destroy()
}

// SwapchainCreateInfo mirrors khr_swapchain.SwapchainCreateInfo with the
// handles left opaque.
type SwapchainCreateInfo struct {
	Surface Releaser

	MinImageCount    int
	ImageFormat      core1_0.Format
	ImageColorSpace  khr_surface.ColorSpace
	ImageExtent      core1_0.Extent2D
	ImageArrayLayers int
	ImageUsage       core1_0.ImageUsageFlags

	ImageSharingMode   core1_0.SharingMode
	QueueFamilyIndices []int

	PreTransform   khr_surface.SurfaceTransformFlags
	CompositeAlpha khr_surface.CompositeAlphaFlags
	PresentMode    khr_surface.PresentMode
	Clipped        bool
	OldSwapchain   SwapchainKHR
}

type ImageViewCreateInfo struct {
	Image            Image
	ViewType         core1_0.ImageViewType
	Format           core1_0.Format
	Components       core1_0.ComponentMapping
	SubresourceRange core1_0.ImageSubresourceRange
}
