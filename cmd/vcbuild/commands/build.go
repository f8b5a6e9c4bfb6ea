package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vcbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts app.BuildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Configure, build and install one target",
		Example: `  vcbuild build --target sdl2 -s ../sdl -m static -p windows
  vcbuild build --target video_compare -s ../video-compare -p macos`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := globals(cmd)
			if err != nil {
				return err
			}
			opts.Root, opts.Jobs = g.root, g.jobs
			_, err = c.app.Build(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.Target, "target", "t", "", "Target to build (ffmpeg, sdl2, sdl3, sdl2_ttf, sdl3_ttf, video_compare)")
	cmd.Flags().StringVarP(&opts.SourceDir, "source", "s", "", "Upstream source directory")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "shared", "Link mode (shared, static, both)")
	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "host", "Platform (host, windows, macos)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
