// Package menu implements the interactive text menu of the ladder.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/mauv0809/elo-ladder/internal/leaderboard"
	"github.com/mauv0809/elo-ladder/internal/matchmaking"
	"github.com/mauv0809/elo-ladder/internal/rating"
)

const banner = `
===== ELO RANKING SYSTEM =====
1. Add Player
2. Find Match (Random Opponent)
3. Show Leaderboard
4. Save & Exit
5. Exit without Saving
==============================
Enter choice: `

// Menu drives a ladder.Service from line-oriented input.
type Menu struct {
	svc      *ladder.Service
	rnd      matchmaking.Random
	location string

	in  *bufio.Scanner
	out io.Writer
}

// New creates a menu reading from in and writing to out. location names the
// data store in the save confirmation.
func New(svc *ladder.Service, rnd matchmaking.Random, location string, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc:      svc,
		rnd:      rnd,
		location: location,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops until the user exits or input ends. Closing input exits without
// saving.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(m.out, banner)

		line, ok := m.readLine()
		if !ok {
			fmt.Fprintln(m.out, "\nInput closed. Exiting without saving.")
			return m.in.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = 0
		}

		switch choice {
		case 1:
			m.addPlayer(ctx)
		case 2:
			m.findMatch(ctx)
		case 3:
			if err := leaderboard.Render(m.out, m.svc.Leaderboard()); err != nil {
				return err
			}
		case 4:
			if err := m.svc.Save(ctx); err != nil {
				fmt.Fprintf(m.out, "Error saving data: %v\n", err)
				continue
			}
			fmt.Fprintf(m.out, "Data saved to %s\n", m.location)
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		case 5:
			fmt.Fprintln(m.out, "Exiting without saving. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please try again.")
		}
	}
}

func (m *Menu) addPlayer(ctx context.Context) {
	name, ok := m.prompt("Enter player name: ")
	if !ok {
		return
	}

	err := m.svc.AddPlayer(ctx, name)
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "Player '%s' added successfully!\n", name)
	case errors.Is(err, rating.ErrDuplicatePlayer):
		fmt.Fprintf(m.out, "Player '%s' already exists!\n", name)
	case errors.Is(err, rating.ErrEmptyName):
		fmt.Fprintln(m.out, "Player name cannot be empty!")
	default:
		fmt.Fprintf(m.out, "Could not add player: %v\n", err)
	}
}

func (m *Menu) findMatch(ctx context.Context) {
	name, ok := m.prompt("Enter your name: ")
	if !ok {
		return
	}

	opponent, err := m.svc.FindOpponent(name, m.rnd)
	switch {
	case errors.Is(err, rating.ErrPlayerNotFound):
		fmt.Fprintf(m.out, "Player '%s' not found!\n", name)
		return
	case errors.Is(err, matchmaking.ErrNoOpponent):
		fmt.Fprintln(m.out, "No other players available! Add more players first.")
		return
	case err != nil:
		fmt.Fprintf(m.out, "Could not find an opponent: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Opponent found: %s\n", opponent)

	line, ok := m.prompt(fmt.Sprintf("Enter result (1 = %s wins, 0 = draw, -1 = %s wins): ", name, opponent))
	if !ok {
		return
	}
	code, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid result! Must be 1, 0, or -1")
		return
	}
	result, err := rating.ParseResult(code)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid result! Must be 1, 0, or -1")
		return
	}

	outcome, err := m.svc.RecordMatch(ctx, name, opponent, result)
	if err != nil {
		fmt.Fprintf(m.out, "Could not record match: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Match recorded successfully!")
	fmt.Fprintf(m.out, "%s: %.1f -> %.1f\n", outcome.Player1, outcome.Player1Before, outcome.Player1After)
	fmt.Fprintf(m.out, "%s: %.1f -> %.1f\n", outcome.Player2, outcome.Player2Before, outcome.Player2After)
}

func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	return m.readLine()
}

// readLine returns the next line without its line ending. Names are matched
// exactly, so other whitespace is kept.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimRight(m.in.Text(), "\r"), true
}
