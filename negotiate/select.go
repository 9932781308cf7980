package negotiate

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SwapchainExtensionName is the device extension every candidate must advertise.
const SwapchainExtensionName = "VK_KHR_swapchain"

// SelectOptions configures device selection. The zero value requires only
// the swapchain extension and scores with DefaultScoring.
type SelectOptions struct {
	// RequiredExtensions are demanded in addition to SwapchainExtensionName.
	RequiredExtensions []string
	Scoring            ScoringPolicy
	Logger             logrus.FieldLogger
}

func (o SelectOptions) requiredExtensions() []string {
	required := []string{SwapchainExtensionName}
	for _, extension := range o.RequiredExtensions {
		duplicate := false
		for _, existing := range required {
			if existing == extension {
				duplicate = true
				break
			}
		}
		if !duplicate {
			required = append(required, extension)
		}
	}
	return required
}

func (o SelectOptions) scoring() ScoringPolicy {
	if o.Scoring != nil {
		return o.Scoring
	}
	return DefaultScoring{DiscreteBonus: DefaultDiscreteBonus}
}

// CandidateReport records how one enumerated device fared during evaluation.
type CandidateReport struct {
	Index             int                   `yaml:"index"`
	Name              string                `yaml:"name"`
	Type              string                `yaml:"type"`
	VendorID          uint32                `yaml:"vendorID"`
	DeviceID          uint32                `yaml:"deviceID"`
	DriverVersion     string                `yaml:"driverVersion"`
	PipelineCacheUUID uuid.UUID             `yaml:"pipelineCacheUUID"`
	Viable            bool                  `yaml:"viable"`
	Score             int64                 `yaml:"score"`
	Reason            string                `yaml:"reason,omitempty"`
	Queues            *QueueFamilySelection `yaml:"queues,omitempty"`
	Extensions        []string              `yaml:"extensions,omitempty"`

	device       PhysicalDevice
	capabilities *Capabilities
}

func (r *CandidateReport) reject(reason string) {
	r.Viable = false
	r.Reason = reason
}

// Selection is the chosen device together with its probed capabilities and
// queue family assignment. It stays fixed across swapchain rebuilds.
type Selection struct {
	Index        int
	Device       PhysicalDevice
	Capabilities *Capabilities
	Queues       QueueFamilySelection
	Score        int64
}

// Evaluate probes and scores every device the enumerator lists, in
// enumeration order. Only enumeration itself can fail; per-device failures
// become rejection reasons.
func Evaluate(enumerator Enumerator, opts SelectOptions) ([]CandidateReport, error) {
	log := loggerOrDiscard(opts.Logger)

	physicalDevices, err := enumerator.PhysicalDevices()
	if err != nil {
		return nil, errors.Wrap(err, "could not enumerate physical devices")
	}

	required := opts.requiredExtensions()
	scoring := opts.scoring()

	reports := make([]CandidateReport, 0, len(physicalDevices))
	for index, device := range physicalDevices {
		report := evaluateCandidate(enumerator, device, required, scoring)
		report.Index = index

		log.WithFields(logrus.Fields{
			"index":  index,
			"device": report.Name,
			"viable": report.Viable,
			"score":  report.Score,
			"reason": report.Reason,
		}).Debug("evaluated physical device")

		reports = append(reports, report)
	}

	return reports, nil
}

func evaluateCandidate(prober Prober, device PhysicalDevice, required []string, scoring ScoringPolicy) CandidateReport {
	report := CandidateReport{device: device}

	caps, err := Probe(prober, device)
	if err != nil {
		report.reject(err.Error())
		return report
	}
	report.capabilities = caps
	report.Name = caps.Properties.DriverName
	report.Type = caps.Properties.DriverType.String()
	report.VendorID = caps.Properties.VendorID
	report.DeviceID = caps.Properties.DeviceID
	report.DriverVersion = caps.Properties.DriverVersion.String()
	report.PipelineCacheUUID = caps.Properties.PipelineCacheUUID
	report.Extensions = caps.ExtensionNames()

	queues, err := ResolveQueueFamilies(caps.QueueFamilies, func(queueFamily int) (bool, error) {
		return prober.SurfaceSupport(device, queueFamily)
	})
	if err != nil {
		report.reject(err.Error())
		return report
	}
	report.Queues = &queues

	if missing := caps.MissingExtensions(required); len(missing) > 0 {
		report.reject("missing device extensions: " + strings.Join(missing, ", "))
		return report
	}

	if len(caps.Surface.Formats) == 0 {
		report.reject("surface reports no formats")
		return report
	}
	if len(caps.Surface.PresentModes) == 0 {
		report.reject("surface reports no present modes")
		return report
	}

	report.Score = scoring.Score(caps.Properties)
	if report.Score <= 0 {
		report.reject("device scored zero")
		return report
	}

	report.Viable = true
	return report
}

// SelectDevice picks the viable candidate with the strictly highest score;
// on a tie the first enumerated wins. When nothing is viable the returned
// error is ErrNoSuitableDevice carrying every rejection reason as detail.
func SelectDevice(enumerator Enumerator, opts SelectOptions) (*Selection, error) {
	reports, err := Evaluate(enumerator, opts)
	if err != nil {
		return nil, err
	}

	return Choose(reports)
}

// Choose picks from reports produced by Evaluate, with the same rules as
// SelectDevice.
func Choose(reports []CandidateReport) (*Selection, error) {
	var best *CandidateReport
	for i := range reports {
		report := &reports[i]
		if !report.Viable {
			continue
		}

		if best == nil || report.Score > best.Score {
			best = report
		}
	}

	if best == nil {
		err := errors.Wrapf(ErrNoSuitableDevice, "%d candidates rejected", len(reports))
		for _, report := range reports {
			err = errors.WithDetailf(err, "device %d (%s): %s", report.Index, report.Name, report.Reason)
		}
		return nil, err
	}

	return &Selection{
		Index:        best.Index,
		Device:       best.device,
		Capabilities: best.capabilities,
		Queues:       *best.Queues,
		Score:        best.Score,
	}, nil
}
