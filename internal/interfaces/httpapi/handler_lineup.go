package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/ukpkickball/roster/internal/usecase"
)

type setCellRequest struct {
	// Blank clears the cell, so required is wrong here.
	Position string `json:"position" validate:"max=50"`
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	gameID, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sheet, err := h.lineupService.GetLineup(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sheetToDTO(sheet))
}

func (h *Handler) SetLineupCell(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetLineupCell")
	defer span.End()

	gameID, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	name, err := playerNameFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rawInning := strings.TrimSpace(r.PathValue("inning"))
	inning, err := strconv.Atoi(rawInning)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid inning %q", usecase.ErrInvalidInput, rawInning))
		return
	}

	var req setCellRequest
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

	if err := h.lineupService.SetCell(ctx, gameID, inning, name, req.Position); err != nil {
		h.logger.WarnContext(ctx, "set lineup cell failed",
			"game_id", gameID, "name", name, "inning", inning, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"name":     name,
		"inning":   inning,
		"position": req.Position,
	})
}

func (h *Handler) CopyLineupInningOne(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CopyLineupInningOne")
	defer span.End()

	gameID, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.lineupService.CopyInningOne(ctx, gameID); err != nil {
		h.logger.WarnContext(ctx, "copy inning one failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "copied"})
}

func (h *Handler) ResetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetLineup")
	defer span.End()

	gameID, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.lineupService.Reset(ctx, gameID); err != nil {
		h.logger.WarnContext(ctx, "reset lineup failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "reset"})
}
