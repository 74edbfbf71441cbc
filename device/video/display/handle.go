package display

import "pixos/kernel"

var errHandleHeld = &kernel.Error{Module: "display", Message: "display handle is already held by an active driver"}

// Handle is the single-owner access token for a display. The driver manager
// owns the handle and grants access to exactly one driver at a time: a
// driver acquires the display on activation and must release it on
// deactivation before another driver can be activated. Acquiring an already
// held handle is a lifecycle bug, not a condition to wait out.
type Handle struct {
	api    API
	owners int
}

// NewHandle wraps a display in an ownership token.
func NewHandle(api API) *Handle {
	return &Handle{api: api}
}

// Acquire grants exclusive access to the display.
func (h *Handle) Acquire() (API, *kernel.Error) {
	if h.owners != 0 {
		return nil, errHandleHeld
	}

	h.owners++
	return h.api, nil
}

// Release returns the display to the manager. Releasing an unheld handle is
// a no-op.
func (h *Handle) Release() {
	if h.owners > 0 {
		h.owners--
	}
}

// Owners returns the number of drivers currently holding the display. It is
// always 0 or 1.
func (h *Handle) Owners() int {
	return h.owners
}
