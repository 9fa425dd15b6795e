package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ukpkickball/roster/internal/domain/roster"
)

// RosterRepository stores the two player pools in separate tables with the
// same shape.
type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func poolTable(pool roster.Pool) (string, error) {
	switch pool {
	case roster.PoolMain:
		return "main_roster", nil
	case roster.PoolSubstitutes:
		return "substitutes", nil
	default:
		return "", fmt.Errorf("unknown pool %q", pool)
	}
}

func (r *RosterRepository) List(ctx context.Context, pool roster.Pool) ([]roster.Player, error) {
	table, err := poolTable(pool)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
SELECT player_name, is_female
FROM %s
ORDER BY player_name`, table)

	var rows []struct {
		PlayerName string `db:"player_name"`
		IsFemale   bool   `db:"is_female"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	players := make([]roster.Player, 0, len(rows))
	for _, row := range rows {
		players = append(players, roster.Player{Name: row.PlayerName, IsFemale: row.IsFemale})
	}
	return players, nil
}

func (r *RosterRepository) Get(ctx context.Context, pool roster.Pool, name string) (roster.Player, bool, error) {
	table, err := poolTable(pool)
	if err != nil {
		return roster.Player{}, false, err
	}

	query := fmt.Sprintf(`
SELECT player_name, is_female
FROM %s
WHERE player_name = $1`, table)

	var row struct {
		PlayerName string `db:"player_name"`
		IsFemale   bool   `db:"is_female"`
	}
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if isNotFound(err) {
			return roster.Player{}, false, nil
		}
		return roster.Player{}, false, fmt.Errorf("get player from %s: %w", table, err)
	}

	return roster.Player{Name: row.PlayerName, IsFemale: row.IsFemale}, true, nil
}

func (r *RosterRepository) Add(ctx context.Context, pool roster.Pool, player roster.Player) error {
	table, err := poolTable(pool)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
INSERT INTO %s (player_name, is_female)
VALUES ($1, $2)`, table)

	if _, err := r.db.ExecContext(ctx, query, player.Name, player.IsFemale); err != nil {
		if isUniqueViolation(err) {
			return roster.ErrDuplicate
		}
		return fmt.Errorf("insert player into %s: %w", table, err)
	}

	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, pool roster.Pool, name string) error {
	table, err := poolTable(pool)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE player_name = $1`, table)
	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("delete player from %s: %w", table, err)
	}

	return nil
}

func (r *RosterRepository) ToggleGender(ctx context.Context, pool roster.Pool, name string) error {
	table, err := poolTable(pool)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
UPDATE %s
SET is_female = NOT is_female
WHERE player_name = $1`, table)

	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("toggle gender in %s: %w", table, err)
	}

	return nil
}
