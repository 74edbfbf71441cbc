package driver

import (
	"pixos/device/video/display"
	"pixos/device/video/display/font"
	"pixos/device/video/term"
	"pixos/kernel"
)

var (
	errUnknownMode     = &kernel.Error{Module: "driver", Message: "cannot activate an unknown driver mode"}
	errNoActiveDriver  = &kernel.Error{Module: "driver", Message: "no display driver is active"}
	errFontWhileActive = &kernel.Error{Module: "driver", Message: "cannot change fonts while the text driver is active"}
)

// Manager is the driver mode state machine. It owns the display handle and
// the driver instances and guarantees that at most one driver holds the
// display at any time: mode switches deactivate the outgoing driver before
// activating the incoming one.
type Manager struct {
	handle *display.Handle
	mode   Mode

	dummy    *Dummy
	text     *Text
	graphics *Graphics
}

// NewManager wraps a display in a handle and constructs the driver set.
// The manager starts in ModeUnknown with no driver active.
func NewManager(api display.API, f *font.Font) *Manager {
	return &Manager{
		handle:   display.NewHandle(api),
		dummy:    NewDummy(f),
		text:     NewText(f),
		graphics: NewGraphics(),
	}
}

// Mode returns the currently active driver mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

// Handle exposes the display ownership token.
func (m *Manager) Handle() *display.Handle {
	return m.handle
}

// Dummy returns the dummy driver instance.
func (m *Manager) Dummy() *Dummy {
	return m.dummy
}

// Text returns the text driver instance.
func (m *Manager) Text() *Text {
	return m.text
}

// Graphics returns the graphics driver instance.
func (m *Manager) Graphics() *Graphics {
	return m.graphics
}

// SetFont swaps the font used by the dummy and text drivers. The text grid
// geometry depends on the font, so the swap is refused while the text
// driver is active.
func (m *Manager) SetFont(f *font.Font) *kernel.Error {
	if m.mode == ModeText {
		return errFontWhileActive
	}

	m.dummy.font = f
	m.text.font = f
	return nil
}

// SetMode switches the active driver. The outgoing driver is deactivated
// first so the display handle is free when the incoming driver acquires
// it. Re-selecting the active mode runs the same cycle, tearing the
// driver down and bringing it back up with fresh state; a failed
// activation leaves the manager in ModeUnknown with no driver active.
func (m *Manager) SetMode(mode Mode) *kernel.Error {
	if cur := m.driverFor(m.mode); cur != nil {
		cur.Deactivate()
	}
	m.mode = ModeUnknown

	next := m.driverFor(mode)
	if next == nil {
		if mode == ModeUnknown {
			return nil
		}
		return errUnknownMode
	}

	if err := next.Activate(m.handle); err != nil {
		return err
	}

	m.mode = mode
	return nil
}

func (m *Manager) driverFor(mode Mode) Driver {
	switch mode {
	case ModeDummy:
		return m.dummy
	case ModeText:
		return m.text
	case ModeGraphics:
		return m.graphics
	}
	return nil
}

// Terminal returns the text driver's terminal grid, or an error when the
// text driver is not the active one.
func (m *Manager) Terminal() (*term.Terminal, *kernel.Error) {
	if m.mode != ModeText {
		return nil, errNoActiveDriver
	}
	return m.text.Terminal(), nil
}

// DrawAll runs the active driver's render pass. The dummy driver has
// nothing to render outside DrawPanic.
func (m *Manager) DrawAll() *kernel.Error {
	switch m.mode {
	case ModeText:
		return m.text.DrawAll()
	case ModeGraphics:
		return m.graphics.DrawAll()
	case ModeDummy:
		return nil
	}
	return errNoActiveDriver
}

// Clear wipes the active driver's output with a solid color.
func (m *Manager) Clear(c display.Color) *kernel.Error {
	switch m.mode {
	case ModeText:
		return m.text.Clear(c)
	case ModeGraphics:
		return m.graphics.Clear(c)
	case ModeDummy:
		m.dummy.api.Clear(c)
		return m.dummy.api.Swap()
	}
	return errNoActiveDriver
}

// DrawPanic switches to the dummy driver and paints the panic screen. The
// dummy driver's minimal contract keeps this path usable even when the
// text driver's own state is broken.
func (m *Manager) DrawPanic(message string) *kernel.Error {
	if err := m.SetMode(ModeDummy); err != nil {
		return err
	}
	return m.dummy.DrawPanic(message)
}
