// Package matchmaking picks opponents for ladder matches.
package matchmaking

import "errors"

// ErrNoOpponent is returned when nobody else is registered.
var ErrNoOpponent = errors.New("no other players available")

// Opponents returns every name in names except self, preserving order.
func Opponents(names []string, self string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != self {
			out = append(out, n)
		}
	}
	return out
}

// FindOpponent picks a uniformly random opponent for self from names.
func FindOpponent(names []string, self string, rnd Random) (string, error) {
	candidates := Opponents(names, self)
	if len(candidates) == 0 {
		return "", ErrNoOpponent
	}
	return candidates[rnd.Intn(len(candidates))], nil
}

// Pair picks two distinct players at random, used to simulate matches.
func Pair(names []string, rnd Random) (string, string, error) {
	if len(names) < 2 {
		return "", "", ErrNoOpponent
	}
	first := names[rnd.Intn(len(names))]
	second, err := FindOpponent(names, first, rnd)
	if err != nil {
		return "", "", err
	}
	return first, second, nil
}
