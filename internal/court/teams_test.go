package court

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func singles(n int) []BookingPlayers {
	bookings := make([]BookingPlayers, n)
	for i := range bookings {
		bookings[i] = BookingPlayers{
			Player1Name:  fmt.Sprintf("jogador-%d", i),
			Player1Level: "intermediario",
			Player1Team:  "masculino",
		}
	}
	return bookings
}

func TestFlattenBookings(t *testing.T) {
	bookings := []BookingPlayers{
		{Player1Name: "Ana", Player1Level: "avancado", Player1Team: "feminino"},
		{
			Player1Name: "Bruno", Player1Level: "iniciante", Player1Team: "masculino",
			Player2Name: "Carla", Player2Level: "", Player2Team: "misto",
		},
	}

	players := FlattenBookings(bookings)
	require.Len(t, players, 3)

	assert.Equal(t, Player{ID: 0, Name: "Ana", Level: LevelAvancado, Gender: GenderFeminino}, players[0])
	assert.Equal(t, Player{ID: 1, Name: "Bruno", Level: LevelIniciante, Gender: GenderMasculino}, players[1])
	// Unset level and unrecognized gender fall back to the sentinel.
	assert.Equal(t, Player{ID: 2, Name: "Carla", Level: LevelUnknown, Gender: GenderUnknown}, players[2])
}

func TestFlattenBookingsStableIDsForDuplicates(t *testing.T) {
	bookings := []BookingPlayers{
		{Player1Name: "João", Player1Level: "iniciante", Player1Team: "masculino"},
		{Player1Name: "João", Player1Level: "iniciante", Player1Team: "masculino"},
	}

	players := FlattenBookings(bookings)
	require.Len(t, players, 2)
	assert.NotEqual(t, players[0].ID, players[1].ID)
}

func TestGenerateTeamsNotEnoughPlayers(t *testing.T) {
	players := FlattenBookings(singles(5))
	teams := GenerateTeams(players, 6, newRNG())
	assert.Empty(t, teams)
}

func TestGenerateTeamsInvalidTeamSize(t *testing.T) {
	players := FlattenBookings(singles(12))
	assert.Nil(t, GenerateTeams(players, 0, newRNG()))
}

func TestGenerateTeamsExactMultiple(t *testing.T) {
	for _, k := range []int{1, 2, 3} {
		players := FlattenBookings(singles(k * 6))
		teams := GenerateTeams(players, 6, newRNG())

		require.Len(t, teams, k, "k=%d", k)
		seen := map[int]bool{}
		for _, team := range teams {
			assert.Len(t, team.Players, 6)
			for _, p := range team.Players {
				assert.False(t, seen[p.ID], "player %d placed twice", p.ID)
				seen[p.ID] = true
			}
		}
		assert.Len(t, seen, k*6, "every player placed exactly once")
	}
}

func TestGenerateTeamsUnevenSupply(t *testing.T) {
	// 14 players, 6 per team: 2 teams, 12 placed, 2 left off the roster.
	players := FlattenBookings(singles(14))
	teams := GenerateTeams(players, 6, newRNG())

	require.Len(t, teams, 2)
	placed := 0
	for _, team := range teams {
		assert.LessOrEqual(t, len(team.Players), 6)
		placed += len(team.Players)
	}
	assert.Equal(t, 12, placed)
}

func TestGenerateTeamsMixedBucketsAllPlaced(t *testing.T) {
	levels := []string{"iniciante", "intermediario", "avancado", ""}
	genders := []string{"masculino", "feminino", ""}

	var bookings []BookingPlayers
	for i := 0; i < 24; i++ {
		bookings = append(bookings, BookingPlayers{
			Player1Name:  fmt.Sprintf("p%d", i),
			Player1Level: levels[i%len(levels)],
			Player1Team:  genders[i%len(genders)],
		})
	}

	players := FlattenBookings(bookings)
	teams := GenerateTeams(players, 6, newRNG())

	require.Len(t, teams, 4)
	total := 0
	for _, team := range teams {
		assert.Len(t, team.Players, 6)
		total += len(team.Players)
	}
	assert.Equal(t, len(players), total)
}

func TestGenerateTeamsDuplicateTriplesNotDropped(t *testing.T) {
	// Twelve players all sharing the same name/level/gender triple: the
	// synthetic IDs must keep them distinct through the leftover pass.
	bookings := make([]BookingPlayers, 12)
	for i := range bookings {
		bookings[i] = BookingPlayers{
			Player1Name:  "Gêmeo",
			Player1Level: "avancado",
			Player1Team:  "masculino",
		}
	}

	players := FlattenBookings(bookings)
	teams := GenerateTeams(players, 6, newRNG())

	require.Len(t, teams, 2)
	total := 0
	for _, team := range teams {
		total += len(team.Players)
	}
	assert.Equal(t, 12, total)
}

func TestGenerateTeamsIsRandomized(t *testing.T) {
	bookings := singles(18)
	players := FlattenBookings(bookings)

	first := GenerateTeams(players, 6, rand.New(rand.NewSource(1)))
	second := GenerateTeams(players, 6, rand.New(rand.NewSource(2)))

	require.Len(t, first, 3)
	require.Len(t, second, 3)

	// Counts always agree even when the grouping differs.
	for i := range first {
		assert.Equal(t, len(first[i].Players), len(second[i].Players))
	}

	differs := false
	for i := range first {
		for j := range first[i].Players {
			if first[i].Players[j].ID != second[i].Players[j].ID {
				differs = true
			}
		}
	}
	assert.True(t, differs, "different seeds should shuffle differently")
}

func TestGenerateTeamsPlayerTwoIncluded(t *testing.T) {
	bookings := []BookingPlayers{
		{
			Player1Name: "Dupla1", Player1Level: "intermediario", Player1Team: "masculino",
			Player2Name: "Dupla2", Player2Level: "iniciante", Player2Team: "feminino",
		},
	}
	bookings = append(bookings, singles(10)...)

	players := FlattenBookings(bookings)
	require.Len(t, players, 12)

	teams := GenerateTeams(players, 6, newRNG())
	require.Len(t, teams, 2)

	names := map[string]bool{}
	for _, team := range teams {
		for _, p := range team.Players {
			names[p.Name] = true
		}
	}
	assert.True(t, names["Dupla1"])
	assert.True(t, names["Dupla2"])
}

func TestExportWhatsApp(t *testing.T) {
	teams := []Team{
		{ID: 1, Players: []Player{
			{ID: 0, Name: "Ana", Level: LevelAvancado, Gender: GenderFeminino},
			{ID: 1, Name: "Bruno", Level: LevelIniciante, Gender: GenderMasculino},
		}},
		{ID: 2, Players: []Player{
			{ID: 2, Name: "Carla", Level: LevelUnknown, Gender: GenderUnknown},
		}},
	}

	out := ExportWhatsApp(teams, 3)

	assert.True(t, strings.HasPrefix(out, "🏐 *TIMES GERADOS*"))
	assert.Contains(t, out, "*Time 1* (2 jogadores)")
	assert.Contains(t, out, "*Time 2* (1 jogadores)")
	assert.Contains(t, out, "1. 👩 Ana - avancado")
	assert.Contains(t, out, "2. 👨 Bruno - iniciante")
	assert.Contains(t, out, "1. ❓ Carla - não informado")
	assert.Contains(t, out, "*Total de jogadores:* 3")
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"iniciante", LevelIniciante},
		{"intermediario", LevelIntermediario},
		{"avancado", LevelAvancado},
		{"", LevelUnknown},
		{"profissional", LevelUnknown},
	}
	for _, tt := range tests {
		if got := NormalizeLevel(tt.in); got != tt.want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
	}{
		{"masculino", GenderMasculino},
		{"feminino", GenderFeminino},
		{"misto", GenderUnknown},
		{"", GenderUnknown},
	}
	for _, tt := range tests {
		if got := NormalizeGender(tt.in); got != tt.want {
			t.Errorf("NormalizeGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
