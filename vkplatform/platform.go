package vkplatform

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
	"github.com/vkngwrapper/presentation/negotiate"
)

var validationLayers = []string{"VK_LAYER_KHRONOS_validation"}

type Options struct {
	ApplicationName string
	// Validation enables the Khronos validation layer and routes its
	// messages to Logger.
	Validation bool
	Logger     logrus.FieldLogger
}

// Platform is a Vulkan instance and a window surface, exposed to the
// negotiation engine through negotiate.Platform.
type Platform struct {
	log logrus.FieldLogger

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver

	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger

	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface
}

var _ negotiate.Platform = &Platform{}

// Open creates the instance, the optional debug messenger and the surface of
// window. On failure everything created so far is destroyed.
func Open(window *sdl.Window, opts Options) (*Platform, error) {
	platform := &Platform{log: opts.Logger}
	if platform.log == nil {
		platform.log = logrus.StandardLogger()
	}

	var err error
	platform.globalDriver, err = core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return nil, errors.Wrap(err, "could not load vulkan")
	}

	err = platform.createInstance(window.VulkanGetInstanceExtensions(), opts)
	if err != nil {
		return nil, err
	}

	if opts.Validation {
		err = platform.setupDebugMessenger()
		if err != nil {
			platform.destroyInstance()
			return nil, err
		}
	}

	platform.surfaceExtension = khr_surface.CreateExtensionDriverFromCoreDriver(platform.instanceDriver)
	platform.surface, err = vkng_sdl2.CreateSurface(platform.instanceDriver.Instance(), platform.surfaceExtension, window)
	if err != nil {
		platform.destroyInstance()
		return nil, errors.Wrap(err, "could not create window surface")
	}

	return platform, nil
}

func (p *Platform) createInstance(windowExtensions []string, opts Options) error {
	applicationName := opts.ApplicationName
	if applicationName == "" {
		applicationName = "Presentation"
	}

	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    applicationName,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,
	}

	extensions, _, err := p.globalDriver.AvailableExtensions()
	if err != nil {
		return errors.Wrap(err, "could not enumerate instance extensions")
	}

	for _, ext := range windowExtensions {
		_, hasExt := extensions[ext]
		if !hasExt {
			return errors.Newf("cannot initialize sdl: missing instance extension %s", ext)
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext)
	}

	_, enumerationSupported := extensions[khr_portability_enumeration.ExtensionName]
	if enumerationSupported {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if opts.Validation {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)

		layers, _, err := p.globalDriver.AvailableLayers()
		if err != nil {
			return errors.Wrap(err, "could not enumerate instance layers")
		}

		for _, layer := range validationLayers {
			_, hasValidation := layers[layer]
			if !hasValidation {
				return errors.WithHint(
					errors.Newf("validation layer %s not available", layer),
					"install the LunarG Vulkan SDK or disable validation",
				)
			}
			instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, layer)
		}

		instanceOptions.Next = p.debugMessengerOptions()
	}

	instance, _, err := p.globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return errors.Wrap(err, "could not create instance")
	}

	p.instanceDriver, err = p.globalDriver.BuildInstanceDriver(instance)
	if err != nil {
		p.globalDriver.Loader().VkDestroyInstance(instance.Handle(), nil)
		return errors.Wrap(err, "could not load instance functions")
	}

	p.log.WithFields(logrus.Fields{
		"extensions": instanceOptions.EnabledExtensionNames,
		"layers":     instanceOptions.EnabledLayerNames,
	}).Debug("created vulkan instance")

	return nil
}

func (p *Platform) setupDebugMessenger() error {
	var err error
	p.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(p.instanceDriver)
	p.debugMessenger, _, err = p.debugDriver.CreateDebugUtilsMessenger(nil, p.debugMessengerOptions())
	if err != nil {
		return errors.Wrap(err, "could not create debug messenger")
	}

	return nil
}

func (p *Platform) destroyInstance() {
	if p.debugMessenger.Initialized() {
		p.debugDriver.DestroyDebugUtilsMessenger(p.debugMessenger, nil)
		p.debugMessenger = ext_debug_utils.DebugUtilsMessenger{}
	}

	if p.instanceDriver != nil {
		p.instanceDriver.DestroyInstance(nil)
		p.instanceDriver = nil
	}
}

type releaserFunc func()

func (f releaserFunc) Destroy() {
	f()
}

// Instance returns the releaser of the instance and its debug messenger.
func (p *Platform) Instance() negotiate.Releaser {
	if p.instanceDriver == nil {
		return nil
	}
	return releaserFunc(p.destroyInstance)
}

// Surface returns the releaser of the window surface.
func (p *Platform) Surface() negotiate.Releaser {
	if !p.surface.Initialized() {
		return nil
	}
	return surfaceHandle{platform: p}
}

type surfaceHandle struct {
	platform *Platform
}

func (h surfaceHandle) Destroy() {
	h.platform.surfaceExtension.DestroySurface(h.platform.surface, nil)
	h.platform.surface = khr_surface.Surface{}
}
