package modules

import (
	"context"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/database"
	"github.com/isaacwassouf/cricket-betting-service/models"
)

var matchSchema = Schema[models.CricketMatch]{
	Table: consts.MATCHES_TABLE,
	Columns: []string{
		"match_name", "team_1", "team_2", "match_date", "venue", "team_1_players", "team_2_players",
	},
	Values: func(m *models.CricketMatch) []any {
		return []any{m.MatchName, m.Team1, m.Team2, m.MatchDate, m.Venue, m.Team1Players, m.Team2Players}
	},
	Dest: func(m *models.CricketMatch) []any {
		return []any{&m.ID, &m.MatchName, &m.Team1, &m.Team2, &m.MatchDate, &m.Venue, &m.Team1Players, &m.Team2Players}
	},
}

type MatchService struct {
	*Repository[models.CricketMatch, *models.CricketMatch]
}

func NewMatchService(db *database.BettingServiceDB) *MatchService {
	return &MatchService{Repository: NewRepository[models.CricketMatch, *models.CricketMatch](db, matchSchema)}
}

// Fixtures lists every match as its "<team_1> vs <team_2>" label.
func (s *MatchService) Fixtures(ctx context.Context) ([]string, error) {
	matches, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	fixtures := make([]string, 0, len(matches))
	for i := range matches {
		fixtures = append(fixtures, matches[i].Fixture())
	}
	return fixtures, nil
}
