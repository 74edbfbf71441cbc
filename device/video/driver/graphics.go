package driver

import (
	"pixos/device/video/display"
	"pixos/kernel"
)

var errFrameSizeMismatch = &kernel.Error{Module: "driver", Message: "frame size does not match the framebuffer size"}

// Graphics is a raw pixel driver: callers compose frames into a pending
// buffer, either wholesale or pixel by pixel, and the driver pushes the
// result to the display on the next render pass.
type Graphics struct {
	api    display.API
	handle *display.Handle

	frame   []uint8
	compose *display.Framebuffer
	dirty   bool
}

// NewGraphics creates a graphics display driver.
func NewGraphics() *Graphics {
	return &Graphics{}
}

// DriverName implements device.Driver.
func (*Graphics) DriverName() string {
	return "graphics_display"
}

// DriverVersion implements device.Driver.
func (*Graphics) DriverVersion() (major, minor, patch uint16) {
	return 0, 1, 0
}

// Activate implements Driver. The pending frame is allocated to the exact
// byte length of the display framebuffer and wrapped in a framebuffer of
// the same geometry so pixel composition uses the display's byte layout.
func (g *Graphics) Activate(handle *display.Handle) *kernel.Error {
	api, err := handle.Acquire()
	if err != nil {
		return err
	}

	info := api.Info()
	frame := make([]uint8, info.BufferSize())
	compose, kerr := display.NewFramebuffer(frame, info)
	if kerr != nil {
		handle.Release()
		return kerr
	}

	g.api = api
	g.handle = handle
	g.frame = frame
	g.compose = compose
	return nil
}

// Deactivate implements Driver.
func (g *Graphics) Deactivate() {
	if g.handle == nil {
		return
	}

	g.handle.Release()
	g.api = nil
	g.handle = nil
	g.frame = nil
	g.compose = nil
	g.dirty = false
}

// Draw replaces the pending frame contents. The buffer length must match
// the display framebuffer length exactly.
func (g *Graphics) Draw(frame []uint8) *kernel.Error {
	if g.frame == nil {
		return errDriverInactive
	}
	if len(frame) != len(g.frame) {
		return errFrameSizeMismatch
	}

	copy(g.frame, frame)
	g.dirty = true
	return nil
}

// SetPixel updates a single pixel of the pending frame.
func (g *Graphics) SetPixel(pos display.Position, c display.Color) {
	if g.compose == nil {
		return
	}

	g.compose.SetPixel(pos, c)
	g.dirty = true
}

// Clear resets the pending frame to a solid color.
func (g *Graphics) Clear(c display.Color) *kernel.Error {
	if g.compose == nil {
		return errDriverInactive
	}

	g.compose.Clear(c)
	g.dirty = true
	return nil
}

// DrawAll pushes the pending frame to the display and publishes it. With
// nothing composed since the last pass, the call is a no-op.
func (g *Graphics) DrawAll() *kernel.Error {
	if g.api == nil {
		return errDriverInactive
	}
	if !g.dirty {
		return nil
	}

	if err := g.api.Draw(g.frame); err != nil {
		return err
	}
	if err := g.api.Swap(); err != nil {
		return err
	}

	g.dirty = false
	return nil
}
