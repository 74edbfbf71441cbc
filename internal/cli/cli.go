// Package cli assembles the pixos command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// BuildRootCommand builds the pixos root command with all subcommands
// attached.
func BuildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pixos",
		Short:        "Framebuffer terminal core with a host-side emulator",
		SilenceUsage: true,
	}
	cmd.AddCommand(buildRunCommand())
	cmd.AddCommand(buildFontsCommand())
	return cmd
}
