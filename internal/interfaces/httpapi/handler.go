package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ukpkickball/roster/internal/domain/lineup"
	"github.com/ukpkickball/roster/internal/platform/logging"
	"github.com/ukpkickball/roster/internal/usecase"
)

type Handler struct {
	rosterService       *usecase.RosterService
	gameService         *usecase.GameService
	availabilityService *usecase.AvailabilityService
	lineupService       *usecase.LineupService
	publishService      *usecase.PublishService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	rosterService *usecase.RosterService,
	gameService *usecase.GameService,
	availabilityService *usecase.AvailabilityService,
	lineupService *usecase.LineupService,
	publishService *usecase.PublishService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rosterService:       rosterService,
		gameService:         gameService,
		availabilityService: availabilityService,
		lineupService:       lineupService,
		publishService:      publishService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func gameIDFromPath(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("gameID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid game id %q", usecase.ErrInvalidInput, raw)
	}

	return id, nil
}

func playerNameFromPath(r *http.Request) (string, error) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		return "", fmt.Errorf("%w: player name is required", usecase.ErrInvalidInput)
	}

	return name, nil
}

type lineupSheetDTO struct {
	AvailablePlayers []string                     `json:"availablePlayers"`
	Genders          map[string]bool              `json:"genders"`
	Lineup           map[string]map[string]string `json:"lineup"`
	SitOutCounts     map[string]int               `json:"sitOutCounts"`
	Positions        []string                     `json:"positions"`
	Abbreviations    map[string]string            `json:"abbreviations"`
	Innings          []inningReportDTO            `json:"innings"`
}

type inningReportDTO struct {
	Inning             int                    `json:"inning"`
	FemaleOnField      int                    `json:"femaleOnField"`
	LowFemaleWarning   bool                   `json:"lowFemaleWarning"`
	DuplicatePositions []duplicatePositionDTO `json:"duplicatePositions"`
	UnusedPositions    []string               `json:"unusedPositions"`
}

type duplicatePositionDTO struct {
	Position string   `json:"position"`
	Players  []string `json:"players"`
}

func sheetToDTO(sheet usecase.LineupSheet) lineupSheetDTO {
	grid := make(map[string]map[string]string, len(sheet.Lineup))
	for inning, row := range sheet.Lineup {
		cells := make(map[string]string, len(row))
		for player, position := range row {
			cells[player] = string(position)
		}
		grid[strconv.Itoa(inning)] = cells
	}

	positions := make([]string, 0, len(sheet.Positions))
	for _, p := range sheet.Positions {
		positions = append(positions, string(p))
	}

	abbreviations := make(map[string]string, len(sheet.Abbreviations))
	for position, abbr := range sheet.Abbreviations {
		abbreviations[string(position)] = abbr
	}

	innings := make([]inningReportDTO, 0, len(sheet.Innings))
	for _, report := range sheet.Innings {
		innings = append(innings, inningReportToDTO(report))
	}

	return lineupSheetDTO{
		AvailablePlayers: sheet.AvailablePlayers,
		Genders:          sheet.Genders,
		Lineup:           grid,
		SitOutCounts:     sheet.SitOutCounts,
		Positions:        positions,
		Abbreviations:    abbreviations,
		Innings:          innings,
	}
}

func inningReportToDTO(report lineup.InningReport) inningReportDTO {
	duplicates := make([]duplicatePositionDTO, 0, len(report.DuplicatePositions))
	for _, dup := range report.DuplicatePositions {
		duplicates = append(duplicates, duplicatePositionDTO{
			Position: string(dup.Position),
			Players:  dup.Players,
		})
	}

	unused := make([]string, 0, len(report.UnusedPositions))
	for _, p := range report.UnusedPositions {
		unused = append(unused, string(p))
	}

	return inningReportDTO{
		Inning:             report.Inning,
		FemaleOnField:      report.FemaleOnField,
		LowFemaleWarning:   report.LowFemaleWarning,
		DuplicatePositions: duplicates,
		UnusedPositions:    unused,
	}
}
