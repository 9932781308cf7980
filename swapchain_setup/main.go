package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/presentation/config"
	"github.com/vkngwrapper/presentation/negotiate"
	"github.com/vkngwrapper/presentation/vkplatform"
)

type SwapchainApplication struct {
	cfg    *config.Config
	logger *logrus.Logger

	window   *sdl.Window
	platform *vkplatform.Platform
	session  *negotiate.Session
}

func (app *SwapchainApplication) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.cleanup()

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *SwapchainApplication) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "could not initialize sdl")
	}

	window, err := sdl.CreateWindow(app.cfg.Window.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, app.cfg.Window.Width, app.cfg.Window.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return errors.Wrap(err, "could not create window")
	}
	app.window = window

	return nil
}

func (app *SwapchainApplication) initVulkan() error {
	var err error
	app.platform, err = vkplatform.Open(app.window, vkplatform.Options{
		ApplicationName: app.cfg.Window.Title,
		Validation:      app.cfg.Validation,
		Logger:          app.logger,
	})
	if err != nil {
		return err
	}

	opts, err := app.cfg.Options(app.logger)
	if err != nil {
		return err
	}
	app.session = negotiate.NewSession(app.platform, opts)

	err = app.session.Setup(app.drawableSize())
	if err != nil {
		return err
	}

	app.logOutput()
	return nil
}

func (app *SwapchainApplication) drawableSize() core1_0.Extent2D {
	w, h := app.window.VulkanGetDrawableSize()
	return core1_0.Extent2D{Width: int(w), Height: int(h)}
}

func (app *SwapchainApplication) logOutput() {
	out, ok := app.session.Output()
	if !ok {
		return
	}

	app.logger.WithFields(logrus.Fields{
		"graphicsFamily": out.Queues.Graphics,
		"presentFamily":  out.Queues.Present,
		"format":         out.Format,
		"colorSpace":     out.ColorSpace,
		"presentMode":    out.PresentMode,
		"extent":         fmt.Sprintf("%dx%d", out.Extent.Width, out.Extent.Height),
		"images":         len(out.Images),
		"views":          len(out.Views),
	}).Info("swapchain ready")
}

// mainLoop blocks on window events. There is no frame loop, so the only work
// is rebuilding the swapchain when the window is resized or restored.
func (app *SwapchainApplication) mainLoop() error {
appLoop:
	for true {
		for event := sdl.WaitEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			case *sdl.WindowEvent:
				switch e.Event {
				case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_RESTORED:
					err := app.recreateSwapChain()
					if err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

func (app *SwapchainApplication) recreateSwapChain() error {
	drawable := app.drawableSize()
	if drawable.Width == 0 || drawable.Height == 0 {
		return nil
	}
	if (app.window.GetFlags() & sdl.WINDOW_MINIMIZED) != 0 {
		return nil
	}

	err := app.session.Rebuild(drawable)
	if err != nil {
		return err
	}

	app.logOutput()
	return nil
}

func (app *SwapchainApplication) cleanup() {
	if app.session != nil {
		if err := app.session.Close(); err != nil {
			app.logger.WithError(err).Error("teardown was incomplete")
		}
	} else if app.platform != nil {
		if surface := app.platform.Surface(); surface != nil {
			surface.Destroy()
		}
		if instance := app.platform.Instance(); instance != nil {
			instance.Destroy()
		}
	}

	if app.window != nil {
		app.window.Destroy()
	}
	sdl.Quit()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	runtime.LockOSThread()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	app := &SwapchainApplication{
		cfg:    cfg,
		logger: logger,
	}

	err = app.Run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
