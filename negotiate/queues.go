package negotiate

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// ErrNoQueueAssignment is returned by ResolveQueueFamilies when a device has
// no graphics-capable family or no family that can present to the surface.
var ErrNoQueueAssignment = errors.New("no queue family assignment for graphics and present")

// QueueFamilySelection names the queue families used for graphics submission
// and for presentation on one device. Both may be the same family.
type QueueFamilySelection struct {
	Graphics int `yaml:"graphics"`
	Present  int `yaml:"present"`
}

// Combined reports whether one family serves both roles.
func (s QueueFamilySelection) Combined() bool {
	return s.Graphics == s.Present
}

// Unique returns the distinct families, graphics first.
func (s QueueFamilySelection) Unique() []int {
	if s.Combined() {
		return []int{s.Graphics}
	}
	return []int{s.Graphics, s.Present}
}

func (s QueueFamilySelection) String() string {
	return fmt.Sprintf("graphics=%d present=%d", s.Graphics, s.Present)
}

// PresentSupport reports whether a queue family of the device under
// evaluation can present to the surface.
type PresentSupport func(queueFamily int) (bool, error)

type queueFamilyIndices struct {
	graphicsFamily *int
	presentFamily  *int
}

func (i *queueFamilyIndices) isComplete() bool {
	return i.graphicsFamily != nil && i.presentFamily != nil
}

// ResolveQueueFamilies scans families in index order. The first family that
// supports both graphics and presentation ends the scan and takes both roles.
// Otherwise the last graphics-capable index is paired with the last
// present-capable index. A failing support query is returned marked ErrQuery.
func ResolveQueueFamilies(families []*core1_0.QueueFamilyProperties, canPresent PresentSupport) (QueueFamilySelection, error) {
	indices := queueFamilyIndices{}

	for queueFamilyIdx, queueFamily := range families {
		idx := queueFamilyIdx
		graphics := queueFamily.QueueFlags&core1_0.QueueGraphics != 0
		if graphics {
			indices.graphicsFamily = &idx
		}

		supported, err := canPresent(queueFamilyIdx)
		if err != nil {
			return QueueFamilySelection{}, queryError(err, "could not query surface support for queue family %d", queueFamilyIdx)
		}

		if supported {
			indices.presentFamily = &idx
			if graphics {
				break
			}
		}
	}

	if !indices.isComplete() {
		return QueueFamilySelection{}, ErrNoQueueAssignment
	}

	return QueueFamilySelection{
		Graphics: *indices.graphicsFamily,
		Present:  *indices.presentFamily,
	}, nil
}
