// Package leaderboard ranks players by rating and renders the standings.
package leaderboard

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mauv0809/elo-ladder/internal/rating"
)

// EmptyMessage is shown instead of a table when nobody is registered.
const EmptyMessage = "No players in the system."

// Entry is one row of the standings.
type Entry struct {
	Rank int `json:"rank"`
	rating.PlayerRecord
}

// Rank orders players by rating, highest first. Players with equal ratings
// keep their registration order.
func Rank(players []rating.PlayerRecord) []Entry {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b rating.PlayerRecord) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	entries := make([]Entry, len(sorted))
	for i, p := range sorted {
		entries[i] = Entry{Rank: i + 1, PlayerRecord: p}
	}
	return entries
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// Render writes the standings as a table.
func Render(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Rank),
			e.Name,
			strconv.FormatFloat(e.Rating, 'f', 1, 64),
			strconv.Itoa(e.GamesPlayed),
			strconv.Itoa(e.Wins),
			strconv.Itoa(e.Losses),
			strconv.Itoa(e.Draws),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Name", "Rating", "Games", "Wins", "Losses", "Draws").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return cellStyle
			default:
				return numberStyle
			}
		})

	_, err := fmt.Fprintf(w, "LEADERBOARD\n%s\n", t.Render())
	return err
}
