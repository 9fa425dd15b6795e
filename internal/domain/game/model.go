package game

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for game dates. Games carry no
// time-of-day component.
const DateLayout = "2006-01-02"

// Game is one scheduled match night. At most one game is auto-provisioned per
// calendar date; all fields except the id stay editable after creation.
type Game struct {
	ID           int64
	Date         time.Time
	TeamName     string
	OpponentName string
	LogoFile     string
	IsPublished  bool
	PublishedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (g Game) Validate() error {
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if g.TeamName == "" {
		return fmt.Errorf("game team name is required")
	}

	return nil
}

// NextMatchDay returns the next occurrence of weekday strictly after now.
// When now already falls on weekday the date rolls a full week forward, so
// "today" is never the current game.
func NextMatchDay(now time.Time, weekday time.Weekday) time.Time {
	days := int(weekday-now.Weekday()+7) % 7
	if days == 0 {
		days = 7
	}
	next := now.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location())
}
