package postgres

import (
	"database/sql"
	"time"

	"github.com/ukpkickball/roster/internal/domain/game"
)

type gameTableModel struct {
	ID           int64          `db:"id"`
	GameDate     time.Time      `db:"game_date"`
	TeamName     string         `db:"team_name"`
	OpponentName sql.NullString `db:"opponent_name"`
	TeamLogo     sql.NullString `db:"team_logo"`
	IsPublished  bool           `db:"is_published"`
	PublishedAt  *time.Time     `db:"published_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:           m.ID,
		Date:         m.GameDate,
		TeamName:     m.TeamName,
		OpponentName: m.OpponentName.String,
		LogoFile:     m.TeamLogo.String,
		IsPublished:  m.IsPublished,
		PublishedAt:  m.PublishedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
