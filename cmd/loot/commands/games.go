package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/RacerBG/loot/internal/gameid"
)

func init() {
	rootCmd.AddCommand(gamesCmd)
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List supported games",
	Long: `List every game loot can detect, with its ID, engine family and
master plugin.`,
	RunE: runGames,
}

func runGames(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	for _, id := range gameid.GameIDs() {
		bold.Fprintf(w, "%-10s", string(id))
		fmt.Fprintf(w, " %-45s", id.Name())
		dim.Fprintf(w, " %s/%s\n", id.Type(), id.MasterFilename())
	}

	return nil
}
