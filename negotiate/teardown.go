package negotiate

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// Resources is the ownership chain: instance, then surface and logical
// device, then swapchain, then image views. Each slot is either live or nil.
type Resources struct {
	Instance  Releaser
	Surface   Releaser
	Device    LogicalDevice
	Swapchain *Swapchain

	Logger logrus.FieldLogger

	tornDown bool
}

// releaseSwapchain destroys the views and the swapchain handle and empties the
// swapchain slot. The device must be live.
func (r *Resources) releaseSwapchain() {
	if r.Swapchain == nil {
		return
	}

	for _, view := range r.Swapchain.Views {
		r.Device.DestroyImageView(view)
	}
	r.Swapchain.Views = nil

	if r.Swapchain.Handle != nil {
		r.Device.DestroySwapchain(r.Swapchain.Handle)
	}
	r.Swapchain = nil
}

// Teardown destroys image views, the swapchain, the logical device, the
// surface and the instance, in that order. Empty slots are skipped. A live
// handle whose parent slot is empty is skipped too and reported as
// ErrTeardownInconsistency in the returned error. A device without an
// instance is never called, so its swapchain and views are skipped with it.
// Only the first call does anything.
func (r *Resources) Teardown() error {
	if r.tornDown {
		return nil
	}
	r.tornDown = true

	log := loggerOrDiscard(r.Logger)
	var result error

	inconsistent := func(child, parent string) {
		err := errors.Mark(errors.Newf("%s is live but %s was never created", child, parent), ErrTeardownInconsistency)
		log.WithError(err).Warn("skipping resource during teardown")
		result = errors.CombineErrors(result, err)
	}

	if r.Device != nil && r.Instance == nil {
		inconsistent("logical device", "instance")
		if r.Swapchain != nil {
			inconsistent("swapchain", "instance")
		}
		r.Swapchain = nil
		r.Device = nil
	}

	if r.Swapchain != nil {
		if r.Device != nil {
			r.releaseSwapchain()
		} else {
			inconsistent("swapchain", "logical device")
			r.Swapchain = nil
		}
	}

	if r.Device != nil {
		r.Device.Destroy()
		r.Device = nil
	}

	if r.Surface != nil {
		if r.Instance != nil {
			r.Surface.Destroy()
		} else {
			inconsistent("surface", "instance")
		}
		r.Surface = nil
	}

	if r.Instance != nil {
		r.Instance.Destroy()
		r.Instance = nil
	}

	return result
}
