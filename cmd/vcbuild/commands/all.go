package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vcbuild/internal/app"
)

func (c *CLI) newAllCmd() *cobra.Command {
	var opts app.AllOptions

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Build sdl2, sdl2_ttf, ffmpeg and video_compare statically and stage the executables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := globals(cmd)
			if err != nil {
				return err
			}
			opts.Root, opts.Jobs = g.root, g.jobs
			return c.app.All(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "", "Platform (windows, macos, linux)")
	cmd.Flags().BoolVarP(&opts.KeepGoing, "keep-going", "k", false, "Keep building targets whose dependencies succeeded")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}
