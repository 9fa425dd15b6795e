package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ukpkickball/roster/internal/domain/availability"
	"github.com/ukpkickball/roster/internal/domain/game"
	"github.com/ukpkickball/roster/internal/domain/lineup"
	"github.com/ukpkickball/roster/internal/domain/roster"
)

// LineupSheet is everything the grid UI needs for one game: the IN players in
// kicking order, gender flags for the fairness checks, the inning-by-inning
// assignments, and the advisory reports computed from them.
type LineupSheet struct {
	AvailablePlayers []string
	Genders          map[string]bool
	Lineup           map[int]map[string]lineup.Position
	SitOutCounts     map[string]int
	Positions        []lineup.Position
	Abbreviations    map[lineup.Position]string
	Innings          []lineup.InningReport
}

// LineupService edits and reads the working lineup grid.
type LineupService struct {
	gameRepo         game.Repository
	rosterRepo       roster.Repository
	availabilityRepo availability.Repository
	lineupRepo       lineup.Repository
}

func NewLineupService(
	gameRepo game.Repository,
	rosterRepo roster.Repository,
	availabilityRepo availability.Repository,
	lineupRepo lineup.Repository,
) *LineupService {
	return &LineupService{
		gameRepo:         gameRepo,
		rosterRepo:       rosterRepo,
		availabilityRepo: availabilityRepo,
		lineupRepo:       lineupRepo,
	}
}

func (s *LineupService) GetLineup(ctx context.Context, gameID int64) (LineupSheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetLineup")
	defer span.End()

	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return LineupSheet{}, err
	}

	statuses, err := s.availabilityRepo.ListByGame(ctx, gameID)
	if err != nil {
		return LineupSheet{}, fmt.Errorf("list statuses: %w", err)
	}

	genders, err := collectGenders(ctx, s.rosterRepo)
	if err != nil {
		return LineupSheet{}, err
	}

	assignments, err := s.lineupRepo.ListByGame(ctx, gameID)
	if err != nil {
		return LineupSheet{}, fmt.Errorf("list assignments: %w", err)
	}

	return buildLineupSheet(playersInKickingOrder(statuses), genders, assignments), nil
}

// SetCell gives the player exactly one position in the inning: any previous
// assignment of that player in that inning goes away first. A blank position
// just clears the cell. Another player already holding the position keeps it.
func (s *LineupService) SetCell(ctx context.Context, gameID int64, inning int, playerName, position string) error {
	playerName = strings.TrimSpace(playerName)
	position = strings.TrimSpace(position)
	if playerName == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if !lineup.ValidInning(inning) {
		return fmt.Errorf("%w: inning must be between 1 and %d", ErrInvalidInput, lineup.InningCount)
	}
	if position != "" && !lineup.ValidPosition(lineup.Position(position)) {
		return fmt.Errorf("%w: unknown position %q", ErrInvalidInput, position)
	}
	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return err
	}

	if err := s.lineupRepo.DeleteCell(ctx, gameID, inning, playerName); err != nil {
		return fmt.Errorf("clear cell: %w", err)
	}
	if position == "" {
		return nil
	}

	err := s.lineupRepo.Insert(ctx, lineup.Assignment{
		GameID:     gameID,
		Inning:     inning,
		Position:   lineup.Position(position),
		PlayerName: playerName,
	})
	if err != nil {
		return fmt.Errorf("set cell: %w", err)
	}

	return nil
}

// CopyInningOne replicates the inning-1 grid into innings 2 through 7,
// replacing whatever those innings held. Copies happen row by row; a failure
// partway leaves earlier innings copied.
func (s *LineupService) CopyInningOne(ctx context.Context, gameID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.CopyInningOne")
	defer span.End()

	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return err
	}

	firstInning, err := s.lineupRepo.ListByGameAndInning(ctx, gameID, 1)
	if err != nil {
		return fmt.Errorf("list inning 1: %w", err)
	}

	for inning := 2; inning <= lineup.InningCount; inning++ {
		if err := s.lineupRepo.DeleteInning(ctx, gameID, inning); err != nil {
			return fmt.Errorf("clear inning %d: %w", inning, err)
		}
		for _, a := range firstInning {
			if a.Position == "" {
				continue
			}
			err := s.lineupRepo.Insert(ctx, lineup.Assignment{
				GameID:     gameID,
				Inning:     inning,
				Position:   a.Position,
				PlayerName: a.PlayerName,
			})
			if err != nil {
				return fmt.Errorf("copy %s into inning %d: %w", a.PlayerName, inning, err)
			}
		}
	}

	return nil
}

func (s *LineupService) Reset(ctx context.Context, gameID int64) error {
	if err := requireGame(ctx, s.gameRepo, gameID); err != nil {
		return err
	}

	if err := s.lineupRepo.DeleteByGame(ctx, gameID); err != nil {
		return fmt.Errorf("reset lineup: %w", err)
	}

	return nil
}

func playersInKickingOrder(statuses []availability.Status) []string {
	in := make([]availability.Status, 0, len(statuses))
	for _, st := range statuses {
		if st.In() {
			in = append(in, st)
		}
	}

	sort.SliceStable(in, func(i, j int) bool {
		oi, oj := orderOrLast(in[i]), orderOrLast(in[j])
		if oi != oj {
			return oi < oj
		}
		return in[i].PlayerName < in[j].PlayerName
	})

	names := make([]string, 0, len(in))
	for _, st := range in {
		names = append(names, st.PlayerName)
	}
	return names
}

// Rows missing an order sort behind every ordered row.
func orderOrLast(st availability.Status) int {
	if st.KickingOrder == nil {
		return int(^uint(0) >> 1)
	}
	return *st.KickingOrder
}

func buildLineupSheet(availablePlayers []string, genders map[string]bool, assignments []lineup.Assignment) LineupSheet {
	grid := make(map[int]map[string]lineup.Position)
	for _, a := range assignments {
		if grid[a.Inning] == nil {
			grid[a.Inning] = make(map[string]lineup.Position)
		}
		grid[a.Inning][a.PlayerName] = a.Position
	}

	return LineupSheet{
		AvailablePlayers: availablePlayers,
		Genders:          genders,
		Lineup:           grid,
		SitOutCounts:     lineup.SitOutCounts(assignments),
		Positions:        lineup.Positions,
		Abbreviations:    lineup.Abbreviations,
		Innings:          lineup.Report(assignments, genders),
	}
}

func collectGenders(ctx context.Context, rosterRepo roster.Repository) (map[string]bool, error) {
	genders := make(map[string]bool)
	for _, pool := range []roster.Pool{roster.PoolMain, roster.PoolSubstitutes} {
		players, err := rosterRepo.List(ctx, pool)
		if err != nil {
			return nil, fmt.Errorf("list %s players: %w", pool, err)
		}
		for _, p := range players {
			genders[p.Name] = p.IsFemale
		}
	}
	return genders, nil
}

func requireGame(ctx context.Context, repo game.Repository, gameID int64) error {
	_, found, err := repo.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("get game by id: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	return nil
}
