// Package commands implements the CLI commands for the vcbuild tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/vcbuild/internal/app"
)

// CLI represents the command line interface for vcbuild.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vcbuild",
		Short:         "Build ffmpeg, SDL, SDL_ttf and video-compare for host, Windows and macOS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("root", "r", ".", "Script root; build and install directories live below it")
	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "Parallel jobs handed to the native build tool (0 uses the configured value)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newAllCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects cobra's output (help, version). Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

type globalFlags struct {
	root string
	jobs int
}

func globals(cmd *cobra.Command) (globalFlags, error) {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return globalFlags{}, err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return globalFlags{}, err
	}
	return globalFlags{root: root, jobs: jobs}, nil
}
