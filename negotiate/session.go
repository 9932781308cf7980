package negotiate

import (
	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// Options configures a Session.
type Options struct {
	RequiredExtensions []string
	Scoring            ScoringPolicy
	Preferences        Preferences
	Logger             logrus.FieldLogger
}

// Output is what a successful build hands to the rest of the renderer.
type Output struct {
	Device        LogicalDevice
	GraphicsQueue Queue
	PresentQueue  Queue
	Queues        QueueFamilySelection

	Swapchain   SwapchainKHR
	Images      []Image
	Views       []ImageView
	Format      core1_0.Format
	ColorSpace  khr_surface.ColorSpace
	Extent      core1_0.Extent2D
	PresentMode khr_surface.PresentMode
}

// Session runs negotiation against one platform. Device selection is done
// once; the swapchain half can be rebuilt any number of times while the
// selection stays fixed. A Session is not safe for concurrent use.
type Session struct {
	platform Platform
	opts     Options
	log      logrus.FieldLogger

	selection     *Selection
	graphicsQueue Queue
	presentQueue  Queue
	params        PresentationParameters

	resources Resources
	closed    bool
}

// NewSession takes ownership of the platform's instance and surface. They are
// destroyed by Close.
func NewSession(platform Platform, opts Options) *Session {
	log := loggerOrDiscard(opts.Logger)

	return &Session{
		platform: platform,
		opts:     opts,
		log:      log,
		resources: Resources{
			Instance: platform.Instance(),
			Surface:  platform.Surface(),
			Logger:   log,
		},
	}
}

// Selection returns the chosen device, or nil before SelectDevice succeeds.
func (s *Session) Selection() *Selection {
	return s.selection
}

// Parameters returns the parameters of the most recent build.
func (s *Session) Parameters() PresentationParameters {
	return s.params
}

// SelectDevice chooses the physical device, creates the logical device with
// one queue per unique family and fetches the graphics and present queues.
// Calling it again after success is a no-op.
func (s *Session) SelectDevice() error {
	if s.closed {
		return ErrClosed
	}
	if s.selection != nil {
		return nil
	}

	start := hrtime.Now()
	selectOpts := SelectOptions{
		RequiredExtensions: s.opts.RequiredExtensions,
		Scoring:            s.opts.Scoring,
		Logger:             s.log,
	}
	selection, err := SelectDevice(s.platform, selectOpts)
	if err != nil {
		return err
	}

	device, err := s.platform.CreateDevice(selection.Device, DeviceCreateInfo{
		QueueFamilies:  selection.Queues.Unique(),
		ExtensionNames: selectOpts.requiredExtensions(),
	})
	if err != nil {
		return errors.Wrapf(err, "could not create logical device for %s", selection.Capabilities.Properties.DriverName)
	}

	s.selection = selection
	s.resources.Device = device
	s.graphicsQueue = device.Queue(selection.Queues.Graphics)
	s.presentQueue = device.Queue(selection.Queues.Present)

	s.log.WithFields(logrus.Fields{
		"device":  selection.Capabilities.Properties.DriverName,
		"type":    selection.Capabilities.Properties.DriverType,
		"score":   selection.Score,
		"queues":  selection.Queues.String(),
		"elapsed": hrtime.Since(start),
	}).Info("selected physical device")

	return nil
}

// BuildSwapchain re-queries the surface, negotiates parameters for the given
// drawable size and builds the swapchain and its views. A swapchain from an
// earlier build is released first, after the device goes idle.
func (s *Session) BuildSwapchain(drawable core1_0.Extent2D) error {
	if s.closed {
		return ErrClosed
	}
	if s.selection == nil {
		return ErrNotSelected
	}

	if s.resources.Swapchain != nil {
		if err := s.resources.Device.WaitIdle(); err != nil {
			return errors.Wrap(err, "could not wait for device idle before replacing swapchain")
		}
		s.resources.releaseSwapchain()
	}

	start := hrtime.Now()
	snapshot, err := QuerySurface(s.platform, s.selection.Device)
	if err != nil {
		return errors.Mark(err, ErrSwapchainCreation)
	}
	s.selection.Capabilities.Surface = snapshot

	if len(snapshot.Formats) == 0 || len(snapshot.PresentModes) == 0 {
		return errors.Mark(
			errors.Newf("surface reports %d formats and %d present modes", len(snapshot.Formats), len(snapshot.PresentModes)),
			ErrSwapchainCreation,
		)
	}

	params := Negotiate(snapshot, drawable, s.opts.Preferences)
	swapchain, err := BuildSwapchain(s.resources.Device, s.resources.Surface, s.selection.Queues, params)
	if err != nil {
		return err
	}

	s.params = params
	s.resources.Swapchain = swapchain

	s.log.WithFields(logrus.Fields{
		"format":      params.SurfaceFormat.Format,
		"colorSpace":  params.SurfaceFormat.ColorSpace,
		"presentMode": params.PresentMode,
		"extent":      extentString(params.Extent),
		"images":      len(swapchain.Images),
		"sharing":     swapchainSharing(s.selection.Queues),
		"elapsed":     hrtime.Since(start),
	}).Info("built swapchain")

	return nil
}

func swapchainSharing(queues QueueFamilySelection) core1_0.SharingMode {
	mode, _ := SharingFor(queues)
	return mode
}

// Setup runs SelectDevice then BuildSwapchain.
func (s *Session) Setup(drawable core1_0.Extent2D) error {
	if err := s.SelectDevice(); err != nil {
		return err
	}
	return s.BuildSwapchain(drawable)
}

// Rebuild waits for the device to go idle, releases the current swapchain and
// its views and builds a new one. The device selection and queue families are
// kept. The old swapchain is not passed to the new one.
func (s *Session) Rebuild(drawable core1_0.Extent2D) error {
	if s.closed {
		return ErrClosed
	}
	if s.selection == nil {
		return ErrNotSelected
	}

	if err := s.resources.Device.WaitIdle(); err != nil {
		return errors.Wrap(err, "could not wait for device idle before rebuild")
	}
	s.resources.releaseSwapchain()

	s.log.WithField("drawable", extentString(drawable)).Debug("rebuilding swapchain")
	return s.BuildSwapchain(drawable)
}

// Output returns the handles of the current build. ok is false until a
// swapchain has been built.
func (s *Session) Output() (out Output, ok bool) {
	if s.closed || s.resources.Swapchain == nil {
		return Output{}, false
	}

	swapchain := s.resources.Swapchain
	return Output{
		Device:        s.resources.Device,
		GraphicsQueue: s.graphicsQueue,
		PresentQueue:  s.presentQueue,
		Queues:        s.selection.Queues,

		Swapchain:   swapchain.Handle,
		Images:      swapchain.Images,
		Views:       swapchain.Views,
		Format:      swapchain.Format,
		ColorSpace:  swapchain.ColorSpace,
		Extent:      swapchain.Extent,
		PresentMode: swapchain.PresentMode,
	}, true
}

// Close waits for the device to go idle and tears every resource down. Only
// the first call does anything.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var result error
	if s.resources.Device != nil {
		if err := s.resources.Device.WaitIdle(); err != nil {
			result = errors.Wrap(err, "could not wait for device idle before teardown")
		}
	}

	start := hrtime.Now()
	result = errors.CombineErrors(result, s.resources.Teardown())
	s.log.WithField("elapsed", hrtime.Since(start)).Info("released presentation resources")

	return result
}
