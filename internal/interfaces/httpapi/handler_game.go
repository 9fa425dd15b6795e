package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/ukpkickball/roster/internal/domain/game"
	"github.com/ukpkickball/roster/internal/usecase"
)

// Logo uploads beyond this size are rejected before reading the body.
const maxLogoBytes = 5 << 20

type gameDTO struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	TeamName     string `json:"teamName"`
	OpponentName string `json:"opponentName"`
	LogoFile     string `json:"logoFile,omitempty"`
	IsPublished  bool   `json:"isPublished"`
	PublishedAt  string `json:"publishedAt,omitempty"`
}

type updateGameRequest struct {
	Date         string `json:"date" validate:"required"`
	TeamName     string `json:"teamName" validate:"required,max=100"`
	OpponentName string `json:"opponentName" validate:"max=100"`
}

func gameToDTO(item game.Game) gameDTO {
	dto := gameDTO{
		ID:           item.ID,
		Date:         item.Date.Format(game.DateLayout),
		TeamName:     item.TeamName,
		OpponentName: item.OpponentName,
		LogoFile:     item.LogoFile,
		IsPublished:  item.IsPublished,
	}
	if item.PublishedAt != nil {
		dto.PublishedAt = item.PublishedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	games, err := h.gameService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, item := range games {
		items = append(items, gameToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// GetCurrentGame is the provisioning path: it resolves the next match day,
// creates the game when absent, and fills the availability rows for the main
// roster. Every other read stays side-effect free.
func (h *Handler) GetCurrentGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentGame")
	defer span.End()

	item, err := h.gameService.GetOrCreateCurrent(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get current game failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if err := h.availabilityService.EnsureInitialized(ctx, item.ID); err != nil {
		h.logger.ErrorContext(ctx, "initialize statuses failed", "game_id", item.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	id, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	id, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateGameRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := time.Parse(game.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", usecase.ErrInvalidInput, req.Date))
		return
	}

	if err := h.gameService.Update(ctx, id, date, req.TeamName, req.OpponentName); err != nil {
		h.logger.WarnContext(ctx, "update game failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadLogo")
	defer span.End()

	id, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoBytes)
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: logo file is required", usecase.ErrInvalidInput))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read logo file: %v", usecase.ErrInvalidInput, err))
		return
	}

	ext := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	filename, err := h.gameService.SetLogo(ctx, id, content, ext)
	if err != nil {
		h.logger.WarnContext(ctx, "upload logo failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"logoFile": filename})
}

func (h *Handler) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLogo")
	defer span.End()

	id, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.gameService.ClearLogo(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete logo failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "cleared"})
}
