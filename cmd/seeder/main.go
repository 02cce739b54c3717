package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/app"
	"github.com/mauv0809/elo-ladder/internal/config"
	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/matchmaking"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/spf13/cobra"
)

var demoPlayers = []string{
	"Seeder Player A",
	"Seeder Player B",
	"Seeder Player C",
	"Seeder Player D",
	"Seeder Player E",
	"Seeder Player F",
}

// drawChance is the share of simulated matches that end level.
const drawChance = 0.1

func newRootCmd() *cobra.Command {
	var (
		numMatches int
		players    []string
	)
	cmd := &cobra.Command{
		Use:          "seeder",
		Short:        "Populate the configured store with demo players and simulated matches",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg = silenced(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			config.SetupLogging(cfg.Log, os.Stderr)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			a, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			rnd := matchmaking.NewRandom(cfg.Seed)
			if err := seed(ctx, a.Service, rnd, players, numMatches); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d matches into %s\n", numMatches, a.Location())
			return nil
		},
	}
	cmd.Flags().IntVar(&numMatches, "matches", 200, "Number of matches to simulate")
	cmd.Flags().StringSliceVar(&players, "players", demoPlayers, "Players to register before simulating")
	return cmd
}

// silenced disables Slack and Pub/Sub so simulated matches are never
// announced.
func silenced(cfg config.Config) config.Config {
	cfg.Slack = config.SlackConfig{}
	cfg.PubSub.ProjectID = ""
	return cfg
}

// seed registers any missing players, simulates numMatches and saves once.
func seed(ctx context.Context, svc *ladder.Service, rnd matchmaking.Random, players []string, numMatches int) error {
	log.Info("Starting ladder seeder...", "players", len(players), "matches", numMatches)
	startTime := time.Now()

	for _, name := range players {
		if err := svc.AddPlayer(ctx, name); err != nil && !errors.Is(err, rating.ErrDuplicatePlayer) {
			return fmt.Errorf("failed to add player %q: %w", name, err)
		}
	}
	log.Info("Ensured demo players exist.")

	names := svc.PlayerNames()
	for i := range numMatches {
		p1, p2, err := matchmaking.Pair(names, rnd)
		if err != nil {
			return err
		}
		a, _ := svc.Player(p1)
		b, _ := svc.Player(p2)
		result := simulate(a.Rating, b.Rating, rnd)
		if _, err := svc.RecordMatch(ctx, p1, p2, result); err != nil {
			return fmt.Errorf("failed to record match %d: %w", i+1, err)
		}
	}

	if err := svc.Save(ctx); err != nil {
		return err
	}
	log.Info("Finished seeding", "matches", numMatches, "duration", time.Since(startTime))
	return nil
}

// simulate draws a result in which player one wins with probability equal to
// its expected score, after setting aside drawChance for draws.
func simulate(rating1, rating2 float64, rnd matchmaking.Random) rating.Result {
	roll := rnd.Float64()
	if roll < drawChance {
		return rating.Draw
	}
	// Rescale the remaining range to [0, 1).
	if (roll-drawChance)/(1-drawChance) < rating.ExpectedScore(rating1, rating2) {
		return rating.Win
	}
	return rating.Loss
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Seeder failed: %s", err)
	}
}
