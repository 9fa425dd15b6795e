package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ukpkickball/roster/internal/domain/availability"
)

type AvailabilityRepository struct {
	db *sqlx.DB
}

func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

type statusTableModel struct {
	GameID       int64  `db:"game_id"`
	PlayerName   string `db:"player_name"`
	Status       string `db:"status"`
	IsSubstitute bool   `db:"is_substitute"`
	KickingOrder *int   `db:"kicking_order"`
}

func (m statusTableModel) toDomain() availability.Status {
	return availability.Status{
		GameID:       m.GameID,
		PlayerName:   m.PlayerName,
		Status:       availability.PlayerStatus(m.Status),
		IsSubstitute: m.IsSubstitute,
		KickingOrder: m.KickingOrder,
	}
}

func (r *AvailabilityRepository) ListByGame(ctx context.Context, gameID int64) ([]availability.Status, error) {
	const query = `
SELECT game_id, player_name, status, is_substitute, kicking_order
FROM game_player_status
WHERE game_id = $1`

	var rows []statusTableModel
	if err := r.db.SelectContext(ctx, &rows, query, gameID); err != nil {
		return nil, fmt.Errorf("list player statuses: %w", err)
	}

	statuses := make([]availability.Status, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, row.toDomain())
	}
	return statuses, nil
}

func (r *AvailabilityRepository) Get(ctx context.Context, gameID int64, playerName string) (availability.Status, bool, error) {
	const query = `
SELECT game_id, player_name, status, is_substitute, kicking_order
FROM game_player_status
WHERE game_id = $1
  AND player_name = $2`

	var row statusTableModel
	if err := r.db.GetContext(ctx, &row, query, gameID, playerName); err != nil {
		if isNotFound(err) {
			return availability.Status{}, false, nil
		}
		return availability.Status{}, false, fmt.Errorf("get player status: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *AvailabilityRepository) MaxKickingOrder(ctx context.Context, gameID int64) (int, error) {
	const query = `
SELECT COALESCE(MAX(kicking_order), 0)
FROM game_player_status
WHERE game_id = $1`

	var max int
	if err := r.db.GetContext(ctx, &max, query, gameID); err != nil {
		return 0, fmt.Errorf("max kicking order: %w", err)
	}

	return max, nil
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, item availability.Status) error {
	const query = `
INSERT INTO game_player_status (game_id, player_name, status, is_substitute, kicking_order)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (game_id, player_name)
DO UPDATE SET
    status = EXCLUDED.status,
    kicking_order = EXCLUDED.kicking_order`

	_, err := r.db.ExecContext(ctx, query,
		item.GameID, item.PlayerName, string(item.Status), item.IsSubstitute, item.KickingOrder)
	if err != nil {
		return fmt.Errorf("upsert player status: %w", err)
	}

	return nil
}

func (r *AvailabilityRepository) SetKickingOrder(ctx context.Context, gameID int64, playerName string, order int) error {
	const query = `
UPDATE game_player_status
SET kicking_order = $3
WHERE game_id = $1
  AND player_name = $2`

	if _, err := r.db.ExecContext(ctx, query, gameID, playerName, order); err != nil {
		return fmt.Errorf("set kicking order: %w", err)
	}

	return nil
}
