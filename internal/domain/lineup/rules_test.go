package lineup

import (
	"testing"
)

func TestReport_FemaleCountAndUnused(t *testing.T) {
	genders := map[string]bool{
		"Alice": true,
		"Bob":   false,
		"Carol": true,
		"Dave":  false,
	}
	assignments := []Assignment{
		{GameID: 1, Inning: 1, Position: PositionPitcher, PlayerName: "Alice"},
		{GameID: 1, Inning: 1, Position: PositionCatcher, PlayerName: "Bob"},
	}

	reports := Report(assignments, genders)
	if len(reports) != InningCount {
		t.Fatalf("expected %d inning reports, got %d", InningCount, len(reports))
	}

	first := reports[0]
	if first.FemaleOnField != 1 {
		t.Fatalf("expected 1 female on field, got %d", first.FemaleOnField)
	}
	if !first.LowFemaleWarning {
		t.Fatal("expected low female warning for inning 1")
	}
	if len(first.UnusedPositions) != 9 {
		t.Fatalf("expected 9 unused positions in inning 1, got %d", len(first.UnusedPositions))
	}

	for _, report := range reports[1:] {
		if len(report.UnusedPositions) != 11 {
			t.Fatalf("inning %d: expected all 11 positions unused, got %d", report.Inning, len(report.UnusedPositions))
		}
		if report.FemaleOnField != 0 {
			t.Fatalf("inning %d: expected 0 females on field, got %d", report.Inning, report.FemaleOnField)
		}
	}
}

func TestReport_DuplicatePositions(t *testing.T) {
	assignments := []Assignment{
		{GameID: 1, Inning: 3, Position: PositionShortStop, PlayerName: "Bob"},
		{GameID: 1, Inning: 3, Position: PositionShortStop, PlayerName: "Alice"},
		{GameID: 1, Inning: 3, Position: PositionPitcher, PlayerName: "Carol"},
		{GameID: 1, Inning: 3, Position: PositionOut, PlayerName: "Dave"},
		{GameID: 1, Inning: 3, Position: PositionOut, PlayerName: "Erin"},
	}

	report := Report(assignments, nil)[2]
	if len(report.DuplicatePositions) != 1 {
		t.Fatalf("expected 1 duplicate position, got %d", len(report.DuplicatePositions))
	}

	dup := report.DuplicatePositions[0]
	if dup.Position != PositionShortStop {
		t.Fatalf("expected duplicate at short stop, got %s", dup.Position)
	}
	if len(dup.Players) != 2 || dup.Players[0] != "Alice" || dup.Players[1] != "Bob" {
		t.Fatalf("unexpected duplicate players: %v", dup.Players)
	}
}

func TestReport_OutNeverCountsAsFielding(t *testing.T) {
	genders := map[string]bool{"Alice": true}
	assignments := []Assignment{
		{GameID: 1, Inning: 1, Position: PositionOut, PlayerName: "Alice"},
	}

	report := Report(assignments, genders)[0]
	if report.FemaleOnField != 0 {
		t.Fatalf("Out assignment counted toward field, got %d", report.FemaleOnField)
	}
	if len(report.UnusedPositions) != 11 {
		t.Fatalf("expected all positions unused, got %d", len(report.UnusedPositions))
	}
}

func TestSitOutCounts(t *testing.T) {
	assignments := []Assignment{
		{GameID: 1, Inning: 1, Position: PositionOut, PlayerName: "Bob"},
		{GameID: 1, Inning: 2, Position: PositionOut, PlayerName: "Bob"},
		{GameID: 1, Inning: 2, Position: PositionOut, PlayerName: "Carol"},
		{GameID: 1, Inning: 3, Position: PositionPitcher, PlayerName: "Bob"},
	}

	counts := SitOutCounts(assignments)
	if counts["Bob"] != 2 {
		t.Fatalf("expected Bob to sit out twice, got %d", counts["Bob"])
	}
	if counts["Carol"] != 1 {
		t.Fatalf("expected Carol to sit out once, got %d", counts["Carol"])
	}
	if _, ok := counts["Alice"]; ok {
		t.Fatal("players with no Out rows should not appear")
	}
}

func TestFieldingPositions(t *testing.T) {
	fielding := FieldingPositions()
	if len(fielding) != 11 {
		t.Fatalf("expected 11 fielding positions, got %d", len(fielding))
	}
	for _, p := range fielding {
		if p == PositionOut {
			t.Fatal("Out must not be a fielding position")
		}
	}
	if len(Positions) != 12 || Positions[len(Positions)-1] != PositionOut {
		t.Fatal("Positions must list 12 entries with Out last")
	}
}
