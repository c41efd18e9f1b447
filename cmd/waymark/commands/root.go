// Package commands implements the CLI commands for the waymark client.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.arvo.ch/waymark/internal/app"
	"go.arvo.ch/waymark/internal/build"
	"go.arvo.ch/waymark/internal/rpc"
)

// CLI represents the command line interface for waymark.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "waymark",
		Short:         "RouteGuide client and recipe tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("target", "t", rpc.DefaultTarget, "Server address to connect to")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.AddCommand(c.newFeatureCmd())
	rootCmd.AddCommand(c.newRouteCmd())
	rootCmd.AddCommand(c.newChatCmd())
	rootCmd.AddCommand(c.newDepsCmd())
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

// SetOut sets the writer for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// dial connects to the server named by the persistent --target flag.
func (c *CLI) dial(cmd *cobra.Command) (*rpc.Client, error) {
	target, _ := cmd.Flags().GetString("target")
	return rpc.Dial(target, c.components.Logger, c.components.Tracer)
}
