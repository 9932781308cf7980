package negotiate

import "github.com/cockroachdb/errors"

// Failures are wrapped with context and marked with one of these, so
// callers match them with errors.Is.
var (
	// ErrQuery marks a failed capability query on one candidate. Selection
	// turns it into a rejection reason and never returns it.
	ErrQuery = errors.New("capability query failed")

	// ErrNoSuitableDevice is returned when every candidate was rejected.
	ErrNoSuitableDevice = errors.New("failed to find a suitable GPU")

	// ErrSwapchainCreation and ErrImageViewCreation mark build failures. The
	// caller may retry the build, for instance after a resize.
	ErrSwapchainCreation = errors.New("swapchain creation failed")
	ErrImageViewCreation = errors.New("image view creation failed")

	// ErrTeardownInconsistency marks a live handle whose parent was never
	// created. Teardown skips such handles.
	ErrTeardownInconsistency = errors.New("teardown inconsistency")

	// ErrNotSelected is returned by build steps run before device selection.
	ErrNotSelected = errors.New("no device has been selected")

	// ErrClosed is returned by session operations after Close.
	ErrClosed = errors.New("session is closed")
)

func queryError(err error, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrQuery)
}
