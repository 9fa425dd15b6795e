package publish

import (
	"context"

	"github.com/ukpkickball/roster/internal/domain/lineup"
)

// Repository describes snapshot persistence needs from use cases. Replace
// always deletes any prior snapshot before writing; Delete removes it without
// a replacement.
type Repository interface {
	Replace(ctx context.Context, snapshot Snapshot) error
	Delete(ctx context.Context, gameID int64) error
	ListAssignments(ctx context.Context, gameID int64) ([]lineup.Assignment, error)
	ListOrder(ctx context.Context, gameID int64) ([]OrderEntry, error)
}
