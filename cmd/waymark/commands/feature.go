package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.arvo.ch/waymark/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseE7 parses a coordinate given in E7 representation.
func parseE7(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid E7 coordinate"), "value", s)
	}
	return int32(v), nil
}

func (c *CLI) newFeatureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature",
		Short: "Query features",
	}
	cmd.AddCommand(c.newFeatureGetCmd())
	cmd.AddCommand(c.newFeatureListCmd())
	return cmd
}

func (c *CLI) newFeatureGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <latitude> <longitude>",
		Short: "Look up the feature at a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := parseE7(args[0])
			if err != nil {
				return err
			}
			lon, err := parseE7(args[1])
			if err != nil {
				return err
			}

			client, err := c.dial(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			f, known, err := client.GetFeature(cmd.Context(), domain.Point{Latitude: lat, Longitude: lon})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !known:
				fmt.Fprintf(out, "No feature at (%d, %d)\n", lat, lon)
			case !f.Named():
				fmt.Fprintf(out, "Unnamed feature at (%d, %d)\n", f.Location.Latitude, f.Location.Longitude)
			default:
				fmt.Fprintf(out, "Feature %q at (%d, %d)\n", f.Name.String(), f.Location.Latitude, f.Location.Longitude)
			}
			return nil
		},
	}
}

func (c *CLI) newFeatureListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <lo-latitude> <lo-longitude> <hi-latitude> <hi-longitude>",
		Short: "List the features within a rectangle",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords := make([]int32, 4)
			for i, arg := range args {
				v, err := parseE7(arg)
				if err != nil {
					return err
				}
				coords[i] = v
			}

			client, err := c.dial(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			rect := domain.Rectangle{
				Lo: domain.Point{Latitude: coords[0], Longitude: coords[1]},
				Hi: domain.Point{Latitude: coords[2], Longitude: coords[3]},
			}
			features, err := client.ListFeatures(cmd.Context(), rect)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range features {
				fmt.Fprintf(out, "%q at (%d, %d)\n", f.Name.String(), f.Location.Latitude, f.Location.Longitude)
			}
			fmt.Fprintf(out, "%d features found\n", len(features))
			return nil
		},
	}
}
