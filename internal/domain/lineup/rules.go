package lineup

import "sort"

// MinFemaleOnField is the informal fairness floor checked per inning.
const MinFemaleOnField = 4

// DuplicatePosition reports a position held by more than one player in the
// same inning.
type DuplicatePosition struct {
	Position Position
	Players  []string
}

// InningReport is the advisory check result for one inning. Nothing here
// blocks edits; the operator decides what to act on.
type InningReport struct {
	Inning             int
	FemaleOnField      int
	LowFemaleWarning   bool
	DuplicatePositions []DuplicatePosition
	UnusedPositions    []Position
}

// Report computes the per-inning checks for every inning, present or not, from
// the raw assignments and the gender flags of both pools.
func Report(assignments []Assignment, isFemale map[string]bool) []InningReport {
	byInning := make(map[int][]Assignment, InningCount)
	for _, a := range assignments {
		byInning[a.Inning] = append(byInning[a.Inning], a)
	}

	out := make([]InningReport, 0, InningCount)
	for inning := 1; inning <= InningCount; inning++ {
		out = append(out, reportInning(inning, byInning[inning], isFemale))
	}
	return out
}

func reportInning(inning int, assignments []Assignment, isFemale map[string]bool) InningReport {
	playersByPosition := make(map[Position][]string)
	femaleSeen := make(map[string]struct{})
	for _, a := range assignments {
		if a.Position == "" || a.Position == PositionOut {
			continue
		}
		playersByPosition[a.Position] = append(playersByPosition[a.Position], a.PlayerName)
		if isFemale[a.PlayerName] {
			femaleSeen[a.PlayerName] = struct{}{}
		}
	}

	var duplicates []DuplicatePosition
	for _, pos := range FieldingPositions() {
		players := playersByPosition[pos]
		if len(players) <= 1 {
			continue
		}
		sorted := append([]string(nil), players...)
		sort.Strings(sorted)
		duplicates = append(duplicates, DuplicatePosition{Position: pos, Players: sorted})
	}

	var unused []Position
	for _, pos := range FieldingPositions() {
		if len(playersByPosition[pos]) == 0 {
			unused = append(unused, pos)
		}
	}

	return InningReport{
		Inning:             inning,
		FemaleOnField:      len(femaleSeen),
		LowFemaleWarning:   len(femaleSeen) < MinFemaleOnField,
		DuplicatePositions: duplicates,
		UnusedPositions:    unused,
	}
}

// SitOutCounts tallies, per player, how many innings carry an Out assignment.
func SitOutCounts(assignments []Assignment) map[string]int {
	out := make(map[string]int)
	for _, a := range assignments {
		if a.Position == PositionOut {
			out[a.PlayerName]++
		}
	}
	return out
}
