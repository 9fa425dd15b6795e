package availability

import "fmt"

// PlayerStatus marks whether a player participates in a given game.
type PlayerStatus string

const (
	StatusIn  PlayerStatus = "IN"
	StatusOut PlayerStatus = "OUT"
)

// Direction moves a player within the kicking order.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func ParseDirection(v string) (Direction, error) {
	switch Direction(v) {
	case DirectionUp, DirectionDown:
		return Direction(v), nil
	default:
		return "", fmt.Errorf("invalid direction: %s", v)
	}
}

// Status is one player's availability row for one game. KickingOrder is set
// only while the player is IN; IsSubstitute is fixed when the row is first
// written and is not re-derived from pool membership afterwards.
type Status struct {
	GameID       int64
	PlayerName   string
	Status       PlayerStatus
	IsSubstitute bool
	KickingOrder *int
}

func (s Status) In() bool {
	return s.Status == StatusIn
}
