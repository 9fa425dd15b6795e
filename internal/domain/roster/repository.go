package roster

import "context"

// Repository describes roster persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, pool Pool) ([]Player, error)
	Get(ctx context.Context, pool Pool, name string) (Player, bool, error)
	Add(ctx context.Context, pool Pool, player Player) error
	Delete(ctx context.Context, pool Pool, name string) error
	ToggleGender(ctx context.Context, pool Pool, name string) error
}
