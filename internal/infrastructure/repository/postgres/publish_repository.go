package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ukpkickball/roster/internal/domain/lineup"
	"github.com/ukpkickball/roster/internal/domain/publish"
)

// PublishRepository stores frozen lineup snapshots. Replace swaps the whole
// snapshot in one transaction so readers never see a half-published game.
type PublishRepository struct {
	db *sqlx.DB
}

func NewPublishRepository(db *sqlx.DB) *PublishRepository {
	return &PublishRepository{db: db}
}

func (r *PublishRepository) Replace(ctx context.Context, snapshot publish.Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for publish: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM published_lineup WHERE game_id = $1`, snapshot.GameID); err != nil {
		return fmt.Errorf("clear published lineup: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM published_player_order WHERE game_id = $1`, snapshot.GameID); err != nil {
		return fmt.Errorf("clear published order: %w", err)
	}

	const insertAssignment = `
INSERT INTO published_lineup (game_id, inning, position, player_name)
VALUES ($1, $2, $3, $4)`
	for _, a := range snapshot.Assignments {
		if _, err := tx.ExecContext(ctx, insertAssignment, a.GameID, a.Inning, string(a.Position), a.PlayerName); err != nil {
			return fmt.Errorf("insert published assignment: %w", err)
		}
	}

	const insertOrder = `
INSERT INTO published_player_order (game_id, player_name, kicking_order)
VALUES ($1, $2, $3)`
	for _, e := range snapshot.Order {
		if _, err := tx.ExecContext(ctx, insertOrder, e.GameID, e.PlayerName, e.KickingOrder); err != nil {
			return fmt.Errorf("insert published order entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit publish: %w", err)
	}

	return nil
}

func (r *PublishRepository) Delete(ctx context.Context, gameID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for unpublish: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM published_lineup WHERE game_id = $1`, gameID); err != nil {
		return fmt.Errorf("delete published lineup: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM published_player_order WHERE game_id = $1`, gameID); err != nil {
		return fmt.Errorf("delete published order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit unpublish: %w", err)
	}

	return nil
}

func (r *PublishRepository) ListAssignments(ctx context.Context, gameID int64) ([]lineup.Assignment, error) {
	const query = `
SELECT game_id, inning, position, player_name
FROM published_lineup
WHERE game_id = $1
ORDER BY inning, player_name`

	var rows []assignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, gameID); err != nil {
		return nil, fmt.Errorf("list published assignments: %w", err)
	}

	assignments := make([]lineup.Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, row.toDomain())
	}
	return assignments, nil
}

func (r *PublishRepository) ListOrder(ctx context.Context, gameID int64) ([]publish.OrderEntry, error) {
	const query = `
SELECT game_id, player_name, kicking_order
FROM published_player_order
WHERE game_id = $1`

	var rows []struct {
		GameID       int64  `db:"game_id"`
		PlayerName   string `db:"player_name"`
		KickingOrder *int   `db:"kicking_order"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, gameID); err != nil {
		return nil, fmt.Errorf("list published order: %w", err)
	}

	entries := make([]publish.OrderEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, publish.OrderEntry{
			GameID:       row.GameID,
			PlayerName:   row.PlayerName,
			KickingOrder: row.KickingOrder,
		})
	}
	return entries, nil
}
