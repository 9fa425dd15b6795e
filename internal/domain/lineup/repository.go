package lineup

import "context"

// Repository describes lineup grid persistence needs from use cases.
type Repository interface {
	ListByGame(ctx context.Context, gameID int64) ([]Assignment, error)
	ListByGameAndInning(ctx context.Context, gameID int64, inning int) ([]Assignment, error)
	DeleteCell(ctx context.Context, gameID int64, inning int, playerName string) error
	DeleteInning(ctx context.Context, gameID int64, inning int) error
	DeleteByGame(ctx context.Context, gameID int64) error
	Insert(ctx context.Context, item Assignment) error
}
