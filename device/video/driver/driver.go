// Package driver implements the display driver mode state machine. A
// manager owns the single display handle and hands it to exactly one
// driver at a time; switching modes deactivates the current driver before
// the next one is activated, so the display never has two writers.
package driver

import (
	"pixos/device"
	"pixos/device/video/display"
	"pixos/kernel"
)

// Mode identifies a display driver.
type Mode uint8

// The display driver modes.
const (
	ModeUnknown Mode = iota
	ModeDummy
	ModeText
	ModeGraphics
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeDummy:
		return "dummy"
	case ModeText:
		return "text"
	case ModeGraphics:
		return "graphics"
	}
	return "unknown"
}

// Driver is implemented by every display driver the manager can switch
// between. Activate receives the shared display handle and must acquire it
// before touching the display; Deactivate must release the handle so the
// next driver can take over.
type Driver interface {
	device.Driver

	Activate(handle *display.Handle) *kernel.Error
	Deactivate()
}

var errDriverInactive = &kernel.Error{Module: "driver", Message: "operation on an inactive display driver"}
