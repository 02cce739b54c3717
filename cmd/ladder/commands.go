package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/app"
	server "github.com/mauv0809/elo-ladder/internal/http"
	"github.com/mauv0809/elo-ladder/internal/leaderboard"
	"github.com/mauv0809/elo-ladder/internal/matchmaking"
	"github.com/mauv0809/elo-ladder/internal/menu"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/spf13/cobra"
)

// withApp loads configuration, builds the app and closes it after run.
func withApp(cmd *cobra.Command, f *flags, run func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("Failed to close resources", "error", err)
		}
	}()
	return run(ctx, a)
}

func newPlayCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, f, func(ctx context.Context, a *app.App) error {
				rnd := matchmaking.NewRandom(a.Config.Seed)
				return menu.New(a.Service, rnd, a.Location(), cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
			})
		},
	}
}

func newAddCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Register one or more players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, f, func(ctx context.Context, a *app.App) error {
				for _, name := range args {
					if err := a.Service.AddPlayer(ctx, name); err != nil {
						return fmt.Errorf("failed to add %q: %w", name, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Player '%s' added successfully!\n", name)
				}
				return a.Service.Save(ctx)
			})
		},
	}
}

func newRecordCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <player1> <player2> <result>",
		Short: "Record a match result",
		Long: `Record a match between two registered players. The result is from
player1's perspective: 1 or win, 0 or draw, -1 or loss.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := parseResultArg(args[2])
			if err != nil {
				return err
			}
			return withApp(cmd, f, func(ctx context.Context, a *app.App) error {
				outcome, err := a.Service.RecordMatch(ctx, args[0], args[1], result)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Match recorded successfully!")
				fmt.Fprintf(out, "%s: %.1f -> %.1f\n", outcome.Player1, outcome.Player1Before, outcome.Player1After)
				fmt.Fprintf(out, "%s: %.1f -> %.1f\n", outcome.Player2, outcome.Player2Before, outcome.Player2After)
				return a.Service.Save(ctx)
			})
		},
	}
	// Positional "-1" must not be read as a flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func parseResultArg(arg string) (rating.Result, error) {
	switch arg {
	case "win":
		return rating.Win, nil
	case "draw":
		return rating.Draw, nil
	case "loss":
		return rating.Loss, nil
	}
	code, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", rating.ErrInvalidResult, arg)
	}
	return rating.ParseResult(code)
}

func newLeaderboardCmd(f *flags) *cobra.Command {
	var announce bool
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, f, func(ctx context.Context, a *app.App) error {
				if err := leaderboard.Render(cmd.OutOrStdout(), a.Service.Leaderboard()); err != nil {
					return err
				}
				if announce {
					return a.Service.AnnounceLeaderboard()
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&announce, "announce", false, "Also post the standings to Slack")
	return cmd
}

func newServeCmd(f *flags) *cobra.Command {
	var reload time.Duration
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the standings over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, f, func(ctx context.Context, a *app.App) error {
				return serve(ctx, a, reload)
			})
		},
	}
	cmd.Flags().DurationVar(&reload, "reload", 0, "Reload players from storage at this interval (0 disables)")
	return cmd
}

func serve(ctx context.Context, a *app.App, reload time.Duration) error {
	s := server.NewServer(a.Service, metrics.NewMetricsHandler(a.Registry))
	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if reload > 0 {
		go reloadLoop(ctx, a, reload)
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", a.Config.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}
	log.Info("Server process shutting down")
	return nil
}

func reloadLoop(ctx context.Context, a *app.App, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.Service.Load(ctx); err != nil {
				log.Error("Failed to reload players", "error", err)
			}
		}
	}
}
