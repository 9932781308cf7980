package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/presentation/config"
	"github.com/vkngwrapper/presentation/negotiate"
	"github.com/vkngwrapper/presentation/vkplatform"
	"gopkg.in/yaml.v3"
)

type deviceReport struct {
	Selected *int                        `yaml:"selected"`
	Reason   string                      `yaml:"reason,omitempty"`
	Devices  []negotiate.CandidateReport `yaml:"devices"`
}

func buildReport(reports []negotiate.CandidateReport) deviceReport {
	report := deviceReport{Devices: reports}

	selection, err := negotiate.Choose(reports)
	if err != nil {
		report.Reason = err.Error()
		return report
	}

	report.Selected = &selection.Index
	return report
}

func writeReport(w io.Writer, report deviceReport) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "could not encode device report")
	}
	return encoder.Close()
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "could not initialize sdl")
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(cfg.Window.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, cfg.Window.Width, cfg.Window.Height, sdl.WINDOW_HIDDEN|sdl.WINDOW_VULKAN)
	if err != nil {
		return errors.Wrap(err, "could not create window")
	}
	defer window.Destroy()

	platform, err := vkplatform.Open(window, vkplatform.Options{
		ApplicationName: cfg.Window.Title,
		Validation:      cfg.Validation,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	resources := negotiate.Resources{
		Instance: platform.Instance(),
		Surface:  platform.Surface(),
		Logger:   logger,
	}
	defer func() {
		if err := resources.Teardown(); err != nil {
			logger.WithError(err).Error("teardown was incomplete")
		}
	}()

	start := hrtime.Now()
	reports, err := negotiate.Evaluate(platform, negotiate.SelectOptions{
		RequiredExtensions: cfg.Device.RequiredExtensions,
		Scoring:            cfg.Scoring(),
		Logger:             logger,
	})
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"devices": len(reports),
		"elapsed": hrtime.Since(start),
	}).Info("evaluated physical devices")

	return writeReport(os.Stdout, buildReport(reports))
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
	logger.SetOutput(os.Stderr)

	err = run(cfg, logger)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
