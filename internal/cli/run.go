package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pixos/device/video/display"
	"pixos/internal/emu"
)

func buildRunCommand() *cobra.Command {
	var width uint32
	var height uint32
	var stride uint32
	var format string
	var fontName string
	var unbuffered bool
	var tick time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the display emulator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pixelFormat, err := parseFormat(format)
			if err != nil {
				return err
			}

			e, err := emu.New(emu.Config{
				Width:        width,
				Height:       height,
				Stride:       stride,
				Format:       pixelFormat,
				FontName:     fontName,
				Unbuffered:   unbuffered,
				TickInterval: tick,
			})
			if err != nil {
				return err
			}

			return e.Run()
		},
	}

	cmd.Flags().Uint32Var(&width, "width", 720, "Framebuffer width in pixels")
	cmd.Flags().Uint32Var(&height, "height", 450, "Framebuffer height in pixels")
	cmd.Flags().Uint32Var(&stride, "stride", 0, "Scanline length in pixels (defaults to width)")
	cmd.Flags().StringVar(&format, "format", "rgb", "Pixel format (rgb|bgr|gray)")
	cmd.Flags().StringVar(&fontName, "font", "", "Font name (defaults to the best fit for the screen)")
	cmd.Flags().BoolVar(&unbuffered, "unbuffered", false, "Run without a shadow buffer")
	cmd.Flags().DurationVar(&tick, "tick", 100*time.Millisecond, "Demo tick interval")
	return cmd
}

func parseFormat(s string) (display.PixelFormat, error) {
	switch strings.ToLower(s) {
	case "rgb":
		return display.FormatRGB, nil
	case "bgr":
		return display.FormatBGR, nil
	case "gray", "grayscale":
		return display.FormatGray, nil
	}
	return display.FormatUnknown, fmt.Errorf("invalid pixel format %q: use rgb, bgr, or gray", s)
}
