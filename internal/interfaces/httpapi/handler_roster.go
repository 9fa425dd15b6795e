package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/ukpkickball/roster/internal/domain/roster"
	"github.com/ukpkickball/roster/internal/usecase"
)

type playerDTO struct {
	Name     string `json:"name"`
	IsFemale bool   `json:"isFemale"`
}

func playersToDTO(players []roster.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerDTO{Name: p.Name, IsFemale: p.IsFemale})
	}
	return items
}

type addPlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	IsFemale bool   `json:"isFemale"`
}

func (h *Handler) ListMainRoster(w http.ResponseWriter, r *http.Request) {
	h.listPlayers(w, r, roster.PoolMain)
}

func (h *Handler) ListSubstitutes(w http.ResponseWriter, r *http.Request) {
	h.listPlayers(w, r, roster.PoolSubstitutes)
}

func (h *Handler) AddToMainRoster(w http.ResponseWriter, r *http.Request) {
	h.addPlayer(w, r, roster.PoolMain)
}

func (h *Handler) AddToSubstitutes(w http.ResponseWriter, r *http.Request) {
	h.addPlayer(w, r, roster.PoolSubstitutes)
}

func (h *Handler) DeleteFromMainRoster(w http.ResponseWriter, r *http.Request) {
	h.deletePlayer(w, r, roster.PoolMain)
}

func (h *Handler) DeleteFromSubstitutes(w http.ResponseWriter, r *http.Request) {
	h.deletePlayer(w, r, roster.PoolSubstitutes)
}

func (h *Handler) ToggleMainRosterGender(w http.ResponseWriter, r *http.Request) {
	h.toggleGender(w, r, roster.PoolMain)
}

func (h *Handler) ToggleSubstituteGender(w http.ResponseWriter, r *http.Request) {
	h.toggleGender(w, r, roster.PoolSubstitutes)
}

func (h *Handler) listPlayers(w http.ResponseWriter, r *http.Request, pool roster.Pool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.rosterService.ListPlayers(ctx, pool)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "pool", string(pool), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) addPlayer(w http.ResponseWriter, r *http.Request, pool roster.Pool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	var req addPlayerRequest
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

	if err := h.rosterService.AddPlayer(ctx, pool, req.Name, req.IsFemale); err != nil {
		h.logger.WarnContext(ctx, "add player failed", "pool", string(pool), "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerDTO{Name: req.Name, IsFemale: req.IsFemale})
}

func (h *Handler) deletePlayer(w http.ResponseWriter, r *http.Request, pool roster.Pool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	name, err := playerNameFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.rosterService.DeletePlayer(ctx, pool, name); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "pool", string(pool), "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": name})
}

func (h *Handler) toggleGender(w http.ResponseWriter, r *http.Request, pool roster.Pool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleGender")
	defer span.End()

	name, err := playerNameFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.rosterService.ToggleGender(ctx, pool, name); err != nil {
		h.logger.WarnContext(ctx, "toggle gender failed", "pool", string(pool), "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"toggled": name})
}
