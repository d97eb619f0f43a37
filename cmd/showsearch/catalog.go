package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search shows by name and print one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewClient(config.GetConfig())
		defer c.Close()

		shows, err := c.SearchShows(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printShows(cmd.OutOrStdout(), shows)
		return nil
	},
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <show-id>",
	Short: "List the episodes of a show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid show id %q: %w", args[0], err)
		}

		c := client.NewClient(config.GetConfig())
		defer c.Close()

		episodes, err := c.ListEpisodes(cmd.Context(), showID)
		if err != nil {
			return err
		}
		printEpisodes(cmd.OutOrStdout(), episodes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(episodesCmd)
}

func printShows(w io.Writer, shows []models.Show) {
	for _, show := range shows {
		fmt.Fprintf(w, "%d\t%s\t%s\n", show.ID, show.Name, show.ImageURL)
	}
}

func printEpisodes(w io.Writer, episodes []models.Episode) {
	for _, episode := range episodes {
		fmt.Fprintln(w, episode.String())
	}
}
