package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/ukpkickball/roster/internal/domain/availability"
	"github.com/ukpkickball/roster/internal/usecase"
)

type playerStatusDTO struct {
	Status       string `json:"status"`
	IsSubstitute bool   `json:"isSubstitute"`
	KickingOrder *int   `json:"kickingOrder"`
}

type gameStatusesDTO struct {
	MainRoster  []playerDTO                `json:"mainRoster"`
	Substitutes []playerDTO                `json:"substitutes"`
	Statuses    map[string]playerStatusDTO `json:"statuses"`
}

type reorderRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

func (h *Handler) GetStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatuses")
	defer span.End()

	gameID, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.availabilityService.GetStatuses(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get statuses failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statusesToDTO(view))
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleStatus")
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

	status, err := h.availabilityService.Toggle(ctx, gameID, name)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle status failed", "game_id", gameID, "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"name": name, "status": string(status)})
}

func (h *Handler) ReorderPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReorderPlayer")
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

	var req reorderRequest
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

	if err := h.availabilityService.Reorder(ctx, gameID, name, req.Direction); err != nil {
		h.logger.WarnContext(ctx, "reorder player failed", "game_id", gameID, "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"name": name, "direction": req.Direction})
}

func statusesToDTO(view usecase.GameStatuses) gameStatusesDTO {
	statuses := make(map[string]playerStatusDTO, len(view.Statuses))
	for name, st := range view.Statuses {
		statuses[name] = statusToDTO(st)
	}

	return gameStatusesDTO{
		MainRoster:  playersToDTO(view.MainRoster),
		Substitutes: playersToDTO(view.Substitutes),
		Statuses:    statuses,
	}
}

func statusToDTO(st availability.Status) playerStatusDTO {
	return playerStatusDTO{
		Status:       string(st.Status),
		IsSubstitute: st.IsSubstitute,
		KickingOrder: st.KickingOrder,
	}
}
