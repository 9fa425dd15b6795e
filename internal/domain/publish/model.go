package publish

import "github.com/ukpkickball/roster/internal/domain/lineup"

// OrderEntry is a frozen kicking-order slot copied from the availability
// ledger at publish time.
type OrderEntry struct {
	GameID       int64
	PlayerName   string
	KickingOrder *int
}

// Snapshot is the full frozen state for one game: the lineup grid plus the
// IN-player order as they were when publish ran. It is replaced wholesale on
// each publish and removed entirely on unpublish.
type Snapshot struct {
	GameID      int64
	Assignments []lineup.Assignment
	Order       []OrderEntry
}
