package negotiate

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// Swapchain is a built swapchain with its platform-owned images and the
// views created for them. Views[i] is the view of Images[i].
type Swapchain struct {
	Handle      SwapchainKHR
	Images      []Image
	Views       []ImageView
	Format      core1_0.Format
	ColorSpace  khr_surface.ColorSpace
	Extent      core1_0.Extent2D
	PresentMode khr_surface.PresentMode
}

// SharingFor returns exclusive sharing with no index list when one family
// serves both roles, and concurrent sharing over both families otherwise.
func SharingFor(queues QueueFamilySelection) (core1_0.SharingMode, []int) {
	if queues.Combined() {
		return core1_0.SharingModeExclusive, nil
	}

	return core1_0.SharingModeConcurrent, []int{queues.Graphics, queues.Present}
}

// BuildSwapchain creates a swapchain from the negotiated parameters and one 2D
// color view per image. When a view fails, the views created so far and the
// swapchain itself are destroyed before the error is returned.
func BuildSwapchain(device LogicalDevice, surface Releaser, queues QueueFamilySelection, params PresentationParameters) (*Swapchain, error) {
	sharingMode, queueFamilyIndices := SharingFor(queues)

	handle, err := device.CreateSwapchain(SwapchainCreateInfo{
		Surface: surface,

		MinImageCount:    params.ImageCount,
		ImageFormat:      params.SurfaceFormat.Format,
		ImageColorSpace:  params.SurfaceFormat.ColorSpace,
		ImageExtent:      params.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   params.PreTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    params.PresentMode,
		Clipped:        true,
	})
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "could not create swapchain"), ErrSwapchainCreation)
	}

	images, err := device.SwapchainImages(handle)
	if err != nil {
		device.DestroySwapchain(handle)
		return nil, errors.Mark(errors.Wrap(err, "could not get swapchain images"), ErrSwapchainCreation)
	}

	views := make([]ImageView, 0, len(images))
	for i, image := range images {
		view, err := device.CreateImageView(ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   params.SurfaceFormat.Format,
			Components: core1_0.ComponentMapping{
				R: core1_0.ComponentSwizzleIdentity,
				G: core1_0.ComponentSwizzleIdentity,
				B: core1_0.ComponentSwizzleIdentity,
				A: core1_0.ComponentSwizzleIdentity,
			},
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			for _, created := range views {
				device.DestroyImageView(created)
			}
			device.DestroySwapchain(handle)
			return nil, errors.Mark(errors.Wrapf(err, "could not create image view %d of %d", i, len(images)), ErrImageViewCreation)
		}

		views = append(views, view)
	}

	return &Swapchain{
		Handle:      handle,
		Images:      images,
		Views:       views,
		Format:      params.SurfaceFormat.Format,
		ColorSpace:  params.SurfaceFormat.ColorSpace,
		Extent:      params.Extent,
		PresentMode: params.PresentMode,
	}, nil
}
