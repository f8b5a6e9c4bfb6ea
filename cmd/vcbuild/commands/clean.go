package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vcbuild/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	var opts app.CleanOptions

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build and install directories",
		Long: `Remove the build and install directories of the given targets for one platform.
Without --target every target is cleaned, including freetype and its install record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := globals(cmd)
			if err != nil {
				return err
			}
			opts.Root = g.root
			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Targets, "target", "t", nil, "Target to clean (repeatable)")
	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "host", "Platform (host, windows, macos)")

	return cmd
}
