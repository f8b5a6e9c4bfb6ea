package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vcbuild/internal/app"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	var opts app.DepsOptions

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Fetch the vendored SDL_ttf dependencies and build freetype",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := globals(cmd)
			if err != nil {
				return err
			}
			opts.Root, opts.Jobs = g.root, g.jobs
			_, err = c.app.Deps(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.SourceDir, "source", "s", "", "SDL_ttf source directory")
	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "host", "Platform (host, windows, macos)")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
