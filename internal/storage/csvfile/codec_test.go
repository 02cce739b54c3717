package csvfile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/mauv0809/elo-ladder/internal/storage/csvfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Format(t *testing.T) {
	var buf bytes.Buffer
	err := csvfile.Encode(&buf, []rating.PlayerRecord{
		{Name: "Alice", Rating: 1216, GamesPlayed: 1, Wins: 1},
		{Name: "Bob", Rating: 1184.0000000000002, GamesPlayed: 3, Losses: 2, Draws: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice,1216,1,1,0,0\nBob,1184.0000000000002,3,0,2,1\n", buf.String())
}

func TestEncode_RejectsLineBreakInName(t *testing.T) {
	var buf bytes.Buffer
	err := csvfile.Encode(&buf, []rating.PlayerRecord{{Name: "Bad\nName", Rating: 1200}})
	require.Error(t, err)
}

func TestDecode(t *testing.T) {
	input := "Alice,1216.5,4,2,1,1\r\n\nSmith, John,1100,0,0,0,0\n"

	players, err := csvfile.Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []rating.PlayerRecord{
		{Name: "Alice", Rating: 1216.5, GamesPlayed: 4, Wins: 2, Losses: 1, Draws: 1},
		{Name: "Smith, John", Rating: 1100},
	}, players)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "Alice,1200,0,0\n"},
		{"bad rating", "Alice,abc,0,0,0,0\n"},
		{"bad counter", "Alice,1200,0,x,0,0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csvfile.Decode(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	players, err := csvfile.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestDecode_LongName(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	var buf bytes.Buffer
	require.NoError(t, csvfile.Encode(&buf, []rating.PlayerRecord{
		{Name: long, Rating: 1200},
		{Name: "Bob", Rating: 1184, GamesPlayed: 1, Losses: 1},
	}))

	players, err := csvfile.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, long, players[0].Name)
	assert.Equal(t, "Bob", players[1].Name)
}

func TestDecode_LastLineWithoutNewline(t *testing.T) {
	players, err := csvfile.Decode(strings.NewReader("Alice,1200,0,0,0,0\nBob,1184,1,0,1,0"))
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Bob", players[1].Name)
	assert.Equal(t, 1, players[1].Losses)
}
