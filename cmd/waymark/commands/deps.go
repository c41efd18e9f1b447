package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Generate and verify build recipe artifacts",
	}
	cmd.PersistentFlags().StringP("dir", "d", ".", "Directory containing the build recipe")
	cmd.PersistentFlags().StringP("out", "o", ".", "Directory for generated artifacts")
	cmd.AddCommand(c.newDepsGenCmd())
	cmd.AddCommand(c.newDepsVerifyCmd())
	return cmd
}

func (c *CLI) newDepsGenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Run the recipe's generators and write a lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			outDir, _ := cmd.Flags().GetString("out")

			rec, err := c.components.App.Generate(dir, outDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, req := range rec.Requirements {
				fmt.Fprintf(out, "require %s\n", req)
			}
			fmt.Fprintf(out, "%d requirements written to %s\n", len(rec.Requirements), outDir)
			return nil
		},
	}
}

func (c *CLI) newDepsVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the lockfile against the current recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			outDir, _ := cmd.Flags().GetString("out")

			if err := c.components.App.Verify(dir, outDir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "lockfile OK")
			return nil
		},
	}
}
