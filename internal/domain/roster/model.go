package roster

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrDuplicate is returned by repositories when an insert collides with an
// existing name in the same pool.
var ErrDuplicate = errors.New("player name already exists in pool")

// Pool distinguishes the permanent roster from the substitute bench.
type Pool string

const (
	PoolMain        Pool = "main"
	PoolSubstitutes Pool = "substitutes"
)

func ParsePool(v string) (Pool, error) {
	switch Pool(v) {
	case PoolMain, PoolSubstitutes:
		return Pool(v), nil
	default:
		return "", fmt.Errorf("invalid roster pool: %s", v)
	}
}

// Player is one entry in a roster pool. Names are unique per pool and act as
// the player's identifier everywhere else in the system.
type Player struct {
	Name     string
	IsFemale bool
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
