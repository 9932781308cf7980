package vkplatform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/presentation/negotiate"
)

func TestSwapchainCreateInfo(t *testing.T) {
	info := swapchainCreateInfo(khr_surface.Surface{}, negotiate.SwapchainCreateInfo{
		MinImageCount:      3,
		ImageFormat:        core1_0.FormatB8G8R8A8SRGB,
		ImageColorSpace:    khr_surface.ColorSpaceSRGBNonlinear,
		ImageExtent:        core1_0.Extent2D{Width: 1280, Height: 720},
		ImageArrayLayers:   1,
		ImageUsage:         core1_0.ImageUsageColorAttachment,
		ImageSharingMode:   core1_0.SharingModeConcurrent,
		QueueFamilyIndices: []int{1, 0},
		PreTransform:       khr_surface.TransformIdentity,
		CompositeAlpha:     khr_surface.CompositeAlphaOpaque,
		PresentMode:        khr_surface.PresentModeMailbox,
		Clipped:            true,
	})

	require.Equal(t, 3, info.MinImageCount)
	require.Equal(t, core1_0.FormatB8G8R8A8SRGB, info.ImageFormat)
	require.Equal(t, khr_surface.ColorSpaceSRGBNonlinear, info.ImageColorSpace)
	require.Equal(t, core1_0.Extent2D{Width: 1280, Height: 720}, info.ImageExtent)
	require.Equal(t, core1_0.SharingModeConcurrent, info.ImageSharingMode)
	require.Equal(t, []int{1, 0}, info.QueueFamilyIndices)
	require.Equal(t, khr_surface.TransformIdentity, info.PreTransform)
	require.Equal(t, khr_surface.CompositeAlphaOpaque, info.CompositeAlpha)
	require.Equal(t, khr_surface.PresentModeMailbox, info.PresentMode)
	require.True(t, info.Clipped)
}

func TestImageViewCreateInfo(t *testing.T) {
	info := imageViewCreateInfo(negotiate.ImageViewCreateInfo{
		Image:    core1_0.Image{},
		ViewType: core1_0.ImageViewType2D,
		Format:   core1_0.FormatB8G8R8A8SRGB,
		Components: core1_0.ComponentMapping{
			R: core1_0.ComponentSwizzleIdentity,
			G: core1_0.ComponentSwizzleIdentity,
			B: core1_0.ComponentSwizzleIdentity,
			A: core1_0.ComponentSwizzleIdentity,
		},
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask: core1_0.ImageAspectColor,
			LevelCount: 1,
			LayerCount: 1,
		},
	})

	require.Equal(t, core1_0.ImageViewType2D, info.ViewType)
	require.Equal(t, core1_0.FormatB8G8R8A8SRGB, info.Format)
	require.Equal(t, core1_0.ComponentSwizzleIdentity, info.Components.R)
	require.Equal(t, core1_0.ImageAspectColor, info.SubresourceRange.AspectMask)
	require.Equal(t, 1, info.SubresourceRange.LevelCount)
}

func TestContains(t *testing.T) {
	names := []string{"VK_KHR_swapchain", "VK_KHR_portability_subset"}
	require.True(t, contains(names, "VK_KHR_portability_subset"))
	require.False(t, contains(names, "VK_KHR_maintenance1"))
}
