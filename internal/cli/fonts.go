package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixos/device/video/display/font"
)

func buildFontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the available fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range font.List() {
				marker := ""
				if f.Name == font.DefaultName {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %2dx%d%s\n",
					f.Name, f.GlyphWidth, f.GlyphHeight, marker)
			}
			return nil
		},
	}
}
