package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Record routes",
	}
	cmd.AddCommand(c.newRouteRecordCmd())
	return cmd
}

func (c *CLI) newRouteRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Stream random points from the database and print the route summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("points")
			dbPath, _ := cmd.Flags().GetString("db")

			store, err := c.components.Opener.Open(dbPath)
			if err != nil {
				return zerr.Wrap(err, "failed to load feature database")
			}

			points := make([]domain.Point, 0, n)
			for range n {
				p, err := store.Random()
				if err != nil {
					return err
				}
				points = append(points, p)
			}

			client, err := c.dial(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			summary, err := client.RecordRoute(cmd.Context(), points)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Points visited:   %d\n", summary.PointCount)
			fmt.Fprintf(out, "Features passed:  %d\n", summary.FeatureCount)
			fmt.Fprintf(out, "Distance:         %d m\n", summary.Distance)
			fmt.Fprintf(out, "Elapsed:          %d s\n", summary.ElapsedTime)
			return nil
		},
	}
	cmd.Flags().Int("points", 10, "Number of random points to stream")
	cmd.Flags().String("db", featuredb.DefaultDBPath, "Path to the feature database JSON file")
	return cmd
}
