package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ukpkickball/roster/internal/domain/game"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `id, game_date, team_name, opponent_name, team_logo, is_published, published_at, created_at, updated_at`

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM games WHERE id = $1`, gameColumns)

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *GameRepository) GetByDate(ctx context.Context, date time.Time) (game.Game, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM games WHERE game_date = $1`, gameColumns)

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, date.Format(game.DateLayout)); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game by date: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	query := fmt.Sprintf(`SELECT %s FROM games ORDER BY game_date DESC`, gameColumns)

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	games := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, row.toDomain())
	}
	return games, nil
}

func (r *GameRepository) Create(ctx context.Context, item game.Game) (game.Game, error) {
	query := fmt.Sprintf(`
INSERT INTO games (game_date, team_name, opponent_name)
VALUES ($1, $2, $3)
RETURNING %s`, gameColumns)

	var row gameTableModel
	err := r.db.GetContext(ctx, &row, query,
		item.Date.Format(game.DateLayout), item.TeamName, item.OpponentName)
	if err != nil {
		return game.Game{}, fmt.Errorf("insert game: %w", err)
	}

	return row.toDomain(), nil
}

func (r *GameRepository) Update(ctx context.Context, id int64, date time.Time, teamName, opponentName string) error {
	const query = `
UPDATE games
SET game_date = $2, team_name = $3, opponent_name = $4, updated_at = now()
WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, date.Format(game.DateLayout), teamName, opponentName); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}

func (r *GameRepository) SetLogo(ctx context.Context, id int64, logoFile string) error {
	const query = `
UPDATE games
SET team_logo = $2, updated_at = now()
WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, logoFile); err != nil {
		return fmt.Errorf("set game logo: %w", err)
	}

	return nil
}

func (r *GameRepository) ClearLogo(ctx context.Context, id int64) error {
	const query = `
UPDATE games
SET team_logo = NULL, updated_at = now()
WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("clear game logo: %w", err)
	}

	return nil
}

func (r *GameRepository) SetPublished(ctx context.Context, id int64, publishedAt *time.Time) error {
	const query = `
UPDATE games
SET is_published = $2, published_at = $3, updated_at = now()
WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, publishedAt != nil, publishedAt); err != nil {
		return fmt.Errorf("set game published: %w", err)
	}

	return nil
}
