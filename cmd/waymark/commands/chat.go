package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.arvo.ch/waymark/internal/core/domain"
)

// chatNotes is the demo conversation: the last note revisits the first
// location, so the server replays the first message back.
var chatNotes = []domain.RouteNote{
	{Location: domain.Point{Latitude: 0, Longitude: 0}, Message: "First message"},
	{Location: domain.Point{Latitude: 0, Longitude: 1}, Message: "Second message"},
	{Location: domain.Point{Latitude: 1, Longitude: 0}, Message: "Third message"},
	{Location: domain.Point{Latitude: 0, Longitude: 0}, Message: "Fourth message"},
}

func (c *CLI) newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Exchange route notes with the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.dial(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			received, err := client.RouteChat(cmd.Context(), chatNotes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, note := range received {
				fmt.Fprintf(out, "%q at (%d, %d)\n", note.Message, note.Location.Latitude, note.Location.Longitude)
			}
			fmt.Fprintf(out, "%d notes received\n", len(received))
			return nil
		},
	}
}
