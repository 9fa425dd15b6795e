package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ukpkickball/roster/internal/domain/lineup"
)

// LineupRepository stores the working grid. The table carries no
// (game, inning, position) uniqueness: two players can occupy the same slot
// and the rules layer flags it.
type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

type assignmentTableModel struct {
	GameID     int64  `db:"game_id"`
	Inning     int    `db:"inning"`
	Position   string `db:"position"`
	PlayerName string `db:"player_name"`
}

func (m assignmentTableModel) toDomain() lineup.Assignment {
	return lineup.Assignment{
		GameID:     m.GameID,
		Inning:     m.Inning,
		Position:   lineup.Position(m.Position),
		PlayerName: m.PlayerName,
	}
}

func (r *LineupRepository) ListByGame(ctx context.Context, gameID int64) ([]lineup.Assignment, error) {
	const query = `
SELECT game_id, inning, position, player_name
FROM lineup_positions
WHERE game_id = $1
ORDER BY inning, player_name`

	var rows []assignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, gameID); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	assignments := make([]lineup.Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, row.toDomain())
	}
	return assignments, nil
}

func (r *LineupRepository) ListByGameAndInning(ctx context.Context, gameID int64, inning int) ([]lineup.Assignment, error) {
	const query = `
SELECT game_id, inning, position, player_name
FROM lineup_positions
WHERE game_id = $1
  AND inning = $2
ORDER BY player_name`

	var rows []assignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, gameID, inning); err != nil {
		return nil, fmt.Errorf("list inning assignments: %w", err)
	}

	assignments := make([]lineup.Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, row.toDomain())
	}
	return assignments, nil
}

func (r *LineupRepository) DeleteCell(ctx context.Context, gameID int64, inning int, playerName string) error {
	const query = `
DELETE FROM lineup_positions
WHERE game_id = $1
  AND inning = $2
  AND player_name = $3`

	if _, err := r.db.ExecContext(ctx, query, gameID, inning, playerName); err != nil {
		return fmt.Errorf("delete cell: %w", err)
	}

	return nil
}

func (r *LineupRepository) DeleteInning(ctx context.Context, gameID int64, inning int) error {
	const query = `
DELETE FROM lineup_positions
WHERE game_id = $1
  AND inning = $2`

	if _, err := r.db.ExecContext(ctx, query, gameID, inning); err != nil {
		return fmt.Errorf("delete inning: %w", err)
	}

	return nil
}

func (r *LineupRepository) DeleteByGame(ctx context.Context, gameID int64) error {
	const query = `DELETE FROM lineup_positions WHERE game_id = $1`

	if _, err := r.db.ExecContext(ctx, query, gameID); err != nil {
		return fmt.Errorf("delete game assignments: %w", err)
	}

	return nil
}

func (r *LineupRepository) Insert(ctx context.Context, item lineup.Assignment) error {
	const query = `
INSERT INTO lineup_positions (game_id, inning, position, player_name)
VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, item.GameID, item.Inning, string(item.Position), item.PlayerName)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}

	return nil
}
