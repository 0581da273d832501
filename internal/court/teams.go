package court

import (
	"math/rand"
)

// Team is an ephemeral grouping produced by GenerateTeams. IDs are 1-based
// for display; nothing here is persisted.
type Team struct {
	ID      int      `json:"id"`
	Players []Player `json:"players"`
}

// BookingPlayers is the minimal booking shape the allocator needs: player 1
// always present, player 2 optional.
type BookingPlayers struct {
	Player1Name  string
	Player1Level string
	Player1Team  string
	Player2Name  string
	Player2Level string
	Player2Team  string
}

// FlattenBookings extracts every player from the booking list, attaching a
// synthetic ID per player and normalizing unset level/gender to the
// "não informado" sentinel.
func FlattenBookings(bookings []BookingPlayers) []Player {
	players := make([]Player, 0, len(bookings)*2)
	for _, b := range bookings {
		players = append(players, Player{
			ID:     len(players),
			Name:   b.Player1Name,
			Level:  NormalizeLevel(b.Player1Level),
			Gender: NormalizeGender(b.Player1Team),
		})
		if b.Player2Name != "" {
			players = append(players, Player{
				ID:     len(players),
				Name:   b.Player2Name,
				Level:  NormalizeLevel(b.Player2Level),
				Gender: NormalizeGender(b.Player2Team),
			})
		}
	}
	return players
}

// GenerateTeams partitions players into teams of perTeam members, balancing
// level and gender spread. Players are bucketed by (level, gender), each
// bucket shuffled, then dealt round-robin across teams; a team that is
// already full is skipped and the player falls through to the leftover pass,
// which fills remaining capacity in input order.
//
// The shuffle makes the grouping intentionally non-deterministic; pass a
// seeded rand.Rand to make it reproducible.
func GenerateTeams(players []Player, perTeam int, rng *rand.Rand) []Team {
	if perTeam <= 0 {
		return nil
	}
	numTeams := len(players) / perTeam
	if numTeams == 0 {
		return nil
	}

	teams := make([]Team, numTeams)
	for i := range teams {
		teams[i] = Team{ID: i + 1, Players: make([]Player, 0, perTeam)}
	}

	assigned := make(map[int]bool, len(players))

	for _, level := range levelOrder {
		for _, gender := range genderOrder {
			var bucket []Player
			for _, p := range players {
				if p.Level == level && p.Gender == gender {
					bucket = append(bucket, p)
				}
			}

			rng.Shuffle(len(bucket), func(i, j int) {
				bucket[i], bucket[j] = bucket[j], bucket[i]
			})

			for idx, p := range bucket {
				team := &teams[idx%numTeams]
				if len(team.Players) < perTeam {
					team.Players = append(team.Players, p)
					assigned[p.ID] = true
				}
			}
		}
	}

	// Leftovers: players whose modulo slot was already full.
	for _, p := range players {
		if assigned[p.ID] {
			continue
		}
		for i := range teams {
			if len(teams[i].Players) < perTeam {
				teams[i].Players = append(teams[i].Players, p)
				assigned[p.ID] = true
				break
			}
		}
	}

	return teams
}
