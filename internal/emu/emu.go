// Package emu hosts the display stack on a regular terminal. It allocates
// a fake physical framebuffer, runs the driver manager on top of it and
// mirrors the framebuffer pixels onto a tcell screen using half-block
// characters, two vertical pixels per terminal cell.
package emu

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"pixos/device"
	"pixos/device/video/display"
	"pixos/device/video/display/font"
	"pixos/device/video/driver"
	"pixos/device/video/term"
	"pixos/kernel"
	"pixos/kernel/kfmt"
)

// Config selects the emulated framebuffer geometry and behavior.
type Config struct {
	Width  uint32
	Height uint32
	// Stride is the scanline length in pixels; values below Width are
	// raised to Width.
	Stride uint32
	Format display.PixelFormat

	// FontName selects a fixed font by name; when empty or unknown the
	// best fit for the screen dimensions is used.
	FontName string

	// Unbuffered runs the display without a shadow buffer.
	Unbuffered bool

	TickInterval time.Duration
}

// Emulator drives the display stack with a periodic tick, standing in for
// the kernel main loop.
type Emulator struct {
	cfg      Config
	info     display.Info
	physical []uint8
	font     *font.Font
	mgr      *driver.Manager

	line  int
	frame uint32
}

// New builds the fake framebuffer, the display on top of it and the driver
// manager.
func New(cfg Config) (*Emulator, error) {
	if cfg.Stride < cfg.Width {
		cfg.Stride = cfg.Width
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}

	info := display.Info{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Stride:        cfg.Stride,
		BytesPerPixel: bytesPerPixel(cfg.Format),
		Format:        cfg.Format,
	}
	physical := make([]uint8, info.BufferSize())

	var (
		api  display.API
		kerr *kernel.Error
	)
	if cfg.Unbuffered {
		api, kerr = display.NewSimple(physical, info)
	} else {
		api, kerr = display.NewBuffered(physical, info)
	}
	if kerr != nil {
		return nil, kerr
	}

	f := font.FindByName(cfg.FontName)
	if f == nil {
		f = font.BestFit(cfg.Width, cfg.Height)
	}
	f = hostFont(f)

	return &Emulator{
		cfg:      cfg,
		info:     info,
		physical: physical,
		font:     f,
		mgr:      driver.NewManager(api, f),
	}, nil
}

func bytesPerPixel(format display.PixelFormat) uint32 {
	if format == display.FormatGray {
		return 1
	}
	return 3
}

// Run enters the event loop. It returns when the user quits or a driver
// operation reports a fatal error.
func (e *Emulator) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Boot messages land in the early buffer and replay onto the terminal
	// once the text driver installs itself as the log sink.
	for _, drv := range []device.Driver{e.mgr.Dummy(), e.mgr.Text(), e.mgr.Graphics()} {
		major, minor, patch := drv.DriverVersion()
		kfmt.Printf("pixos: registered driver %s %d.%d.%d\n", drv.DriverName(), major, minor, patch)
	}
	kfmt.Printf("pixos: %dx%d %s framebuffer, font %s\n",
		e.info.Width, e.info.Height, e.info.Format.String(), e.font.Name)
	kfmt.Printf("pixos: keys: t=text g=graphics p=panic q=quit\n")

	if kerr := e.mgr.SetMode(driver.ModeText); kerr != nil {
		return kerr
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				done, kerr := e.handleKey(ev)
				if kerr != nil {
					return kerr
				}
				if done {
					return nil
				}
			}
		case <-ticker.C:
			if kerr := e.tick(); kerr != nil {
				return kerr
			}
			e.blit(screen)
			screen.Show()
		}
	}
}

func (e *Emulator) handleKey(ev *tcell.EventKey) (done bool, kerr *kernel.Error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true, nil
		case 't':
			e.line = 0
			kfmt.Printf("pixos: text mode\n")
			return false, e.mgr.SetMode(driver.ModeText)
		case 'g':
			return false, e.mgr.SetMode(driver.ModeGraphics)
		case 'p':
			return false, e.mgr.DrawPanic("user requested panic screen")
		}
	}
	return false, nil
}

// tick advances the demo for the active mode and runs a render pass.
func (e *Emulator) tick() *kernel.Error {
	switch e.mgr.Mode() {
	case driver.ModeText:
		e.line++
		kfmt.Printf("Line: %d\n", e.line)

		vt, kerr := e.mgr.Terminal()
		if kerr != nil {
			return kerr
		}
		if size := vt.Size(); vt.CursorPosition().Y == size.Height-1 {
			vt.Scroll(3, term.ScrollUp)
		}
	case driver.ModeGraphics:
		e.frame++
		e.drawGradient()
	}

	return e.mgr.DrawAll()
}

// drawGradient composes a scrolling color gradient through the graphics
// driver.
func (e *Emulator) drawGradient() {
	g := e.mgr.Graphics()
	for y := uint32(0); y < e.info.Height; y++ {
		for x := uint32(0); x < e.info.Width; x++ {
			g.SetPixel(display.Position{X: x, Y: y}, display.Color{
				R: uint8(x + e.frame),
				G: uint8(y + e.frame),
				B: uint8(x ^ y),
			})
		}
	}
}

// blit mirrors the physical framebuffer onto the tcell screen. Each
// terminal cell shows two vertically stacked pixels via the upper
// half-block glyph; framebuffers larger than the screen are downsampled by
// an integer factor.
func (e *Emulator) blit(screen tcell.Screen) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	scale := uint32(1)
	for e.info.Width/scale > uint32(cols) || e.info.Height/scale > uint32(rows)*2 {
		scale++
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			px := uint32(cx) * scale
			py := uint32(cy) * 2 * scale
			if px >= e.info.Width || py >= e.info.Height {
				continue
			}

			top := e.readPixel(px, py)
			bottom := display.Color{}
			if py+scale < e.info.Height {
				bottom = e.readPixel(px, py+scale)
			}

			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

// readPixel decodes one pixel from the physical framebuffer.
func (e *Emulator) readPixel(x, y uint32) display.Color {
	offset := (y*e.info.Stride + x) * e.info.BytesPerPixel
	buf := e.physical

	switch e.info.Format {
	case display.FormatRGB:
		return display.Color{R: buf[offset], G: buf[offset+1], B: buf[offset+2]}
	case display.FormatBGR:
		return display.Color{R: buf[offset+2], G: buf[offset+1], B: buf[offset]}
	default:
		v := buf[offset]
		return display.Color{R: v, G: v, B: v}
	}
}
