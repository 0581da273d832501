package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/yayazuqui-hub/court-priority-play/internal/config"
	"github.com/yayazuqui-hub/court-priority-play/internal/court"
	"github.com/yayazuqui-hub/court-priority-play/internal/dto"
	"github.com/yayazuqui-hub/court-priority-play/internal/models"
	"gorm.io/gorm"
)

var ErrNotEnoughBookings = errors.New("not enough active bookings to generate teams")

// TeamService produces ephemeral balanced teams from the active booking
// list. Nothing is persisted; every call reshuffles. The rand source is
// guarded because handlers run concurrently.
type TeamService struct {
	db  *gorm.DB
	cfg *config.Config
	mu  sync.Mutex
	rng *rand.Rand
}

func NewTeamService(db *gorm.DB, cfg *config.Config, rng *rand.Rand) *TeamService {
	return &TeamService{db: db, cfg: cfg, rng: rng}
}

func (s *TeamService) Generate() (*dto.GeneratedTeamsResponse, error) {
	var bookings []models.Booking
	if err := s.db.Find(&bookings).Error; err != nil {
		return nil, err
	}

	if len(bookings) < s.cfg.MinBookingsForTeams {
		return nil, fmt.Errorf("%w: %d/%d", ErrNotEnoughBookings, len(bookings), s.cfg.MinBookingsForTeams)
	}

	players := court.FlattenBookings(toBookingPlayers(bookings))

	s.mu.Lock()
	teams := court.GenerateTeams(players, s.cfg.PlayersPerTeam, s.rng)
	s.mu.Unlock()

	return &dto.GeneratedTeamsResponse{
		Teams:        teams,
		TotalPlayers: len(players),
		Export:       court.ExportWhatsApp(teams, len(players)),
	}, nil
}

func toBookingPlayers(bookings []models.Booking) []court.BookingPlayers {
	out := make([]court.BookingPlayers, 0, len(bookings))
	for _, b := range bookings {
		bp := court.BookingPlayers{
			Player1Name:  b.Player1Name,
			Player1Level: b.Player1Level,
			Player1Team:  b.Player1Team,
		}
		if b.Player2Name != nil {
			bp.Player2Name = *b.Player2Name
		}
		if b.Player2Level != nil {
			bp.Player2Level = *b.Player2Level
		}
		if b.Player2Team != nil {
			bp.Player2Team = *b.Player2Team
		}
		out = append(out, bp)
	}
	return out
}
