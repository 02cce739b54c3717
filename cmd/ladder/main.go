package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// flags holds the persistent overrides applied on top of the environment.
type flags struct {
	dataFile string
	storage  string
	kFactor  float64
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "ladder",
		Short: "An Elo rating ladder",
		Long: `Keeps Elo ratings for a group of players. Without a subcommand it starts
the interactive menu.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&f.dataFile, "data-file", "", "CSV file used by the csv backend (overrides ELO_DATA_FILE)")
	rootCmd.PersistentFlags().StringVar(&f.storage, "storage", "", "Storage backend: csv, sqlite or redis (overrides ELO_STORAGE)")
	rootCmd.PersistentFlags().Float64Var(&f.kFactor, "k-factor", 0, "K-factor applied per match (overrides ELO_K_FACTOR)")

	play := newPlayCmd(f)
	rootCmd.RunE = play.RunE
	rootCmd.AddCommand(play)
	rootCmd.AddCommand(newAddCmd(f))
	rootCmd.AddCommand(newRecordCmd(f))
	rootCmd.AddCommand(newLeaderboardCmd(f))
	rootCmd.AddCommand(newServeCmd(f))
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
