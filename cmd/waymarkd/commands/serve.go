package commands

import (
	"github.com/spf13/cobra"
	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/app"
	"go.arvo.ch/waymark/internal/rpc"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the RouteGuide gRPC API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			addr, _ := cmd.Flags().GetString("listen")
			recipeDir, _ := cmd.Flags().GetString("recipe-dir")
			return c.components.App.Serve(cmd.Context(), app.ServeOptions{
				DBPath:    dbPath,
				Addr:      addr,
				RecipeDir: recipeDir,
			})
		},
	}
	cmd.Flags().String("db", featuredb.DefaultDBPath, "Path to the feature database JSON file")
	cmd.Flags().String("listen", rpc.DefaultListenAddr, "TCP listen address")
	cmd.Flags().String("recipe-dir", ".", "Directory containing the build recipe, logged as provenance")
	return cmd
}
