package availability

import "context"

// Repository describes availability persistence needs from use cases.
// Kicking-order values among IN rows only need to be consistently orderable,
// not gap-free.
type Repository interface {
	ListByGame(ctx context.Context, gameID int64) ([]Status, error)
	Get(ctx context.Context, gameID int64, playerName string) (Status, bool, error)
	MaxKickingOrder(ctx context.Context, gameID int64) (int, error)
	Upsert(ctx context.Context, item Status) error
	SetKickingOrder(ctx context.Context, gameID int64, playerName string, order int) error
}
