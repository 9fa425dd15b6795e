package lineup

import "fmt"

// InningCount is the number of fielding periods in a game.
const InningCount = 7

// Position is one of the twelve lineup slots. "Out" is a pseudo-position
// meaning the player sits that inning.
type Position string

const (
	PositionPitcher     Position = "Pitcher"
	PositionCatcher     Position = "Catcher"
	PositionFirstBase   Position = "First Base"
	PositionSecondBase  Position = "Second Base"
	PositionThirdBase   Position = "Third Base"
	PositionShortStop   Position = "Short Stop"
	PositionLeftField   Position = "Left Field"
	PositionLeftCenter  Position = "Left Center"
	PositionCenterField Position = "Center Field"
	PositionRightCenter Position = "Right Center"
	PositionRightField  Position = "Right Field"
	PositionOut         Position = "Out"
)

// Positions lists every slot in display order, the Out marker last.
var Positions = []Position{
	PositionPitcher,
	PositionCatcher,
	PositionFirstBase,
	PositionSecondBase,
	PositionThirdBase,
	PositionShortStop,
	PositionLeftField,
	PositionLeftCenter,
	PositionCenterField,
	PositionRightCenter,
	PositionRightField,
	PositionOut,
}

// Abbreviations maps positions to the short labels shown in the grid header.
var Abbreviations = map[Position]string{
	PositionPitcher:     "P",
	PositionCatcher:     "C",
	PositionFirstBase:   "1st",
	PositionSecondBase:  "2nd",
	PositionThirdBase:   "3rd",
	PositionShortStop:   "SS",
	PositionLeftField:   "LF",
	PositionLeftCenter:  "LC",
	PositionCenterField: "CF",
	PositionRightCenter: "RC",
	PositionRightField:  "RF",
	PositionOut:         "Out",
}

// FieldingPositions returns the eleven playing positions, excluding Out.
func FieldingPositions() []Position {
	out := make([]Position, 0, len(Positions)-1)
	for _, p := range Positions {
		if p == PositionOut {
			continue
		}
		out = append(out, p)
	}
	return out
}

func ValidPosition(p Position) bool {
	_, ok := Abbreviations[p]
	return ok
}

func ValidInning(inning int) bool {
	return inning >= 1 && inning <= InningCount
}

// Assignment places a player at a position for one inning. The storage layer
// deliberately allows several players at the same position in the same
// inning; the rules reported alongside the grid flag it instead.
type Assignment struct {
	GameID     int64
	Inning     int
	Position   Position
	PlayerName string
}

func (a Assignment) Validate() error {
	if !ValidInning(a.Inning) {
		return fmt.Errorf("inning must be between 1 and %d", InningCount)
	}
	if !ValidPosition(a.Position) {
		return fmt.Errorf("unknown position: %s", a.Position)
	}
	if a.PlayerName == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
