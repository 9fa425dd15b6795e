package game

import (
	"context"
	"time"
)

// Repository describes game persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Game, bool, error)
	GetByDate(ctx context.Context, date time.Time) (Game, bool, error)
	List(ctx context.Context) ([]Game, error)
	Create(ctx context.Context, item Game) (Game, error)
	Update(ctx context.Context, id int64, date time.Time, teamName, opponentName string) error
	SetLogo(ctx context.Context, id int64, logoFile string) error
	ClearLogo(ctx context.Context, id int64) error
	SetPublished(ctx context.Context, id int64, publishedAt *time.Time) error
}
