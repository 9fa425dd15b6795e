package httpapi

import (
	"net/http"
)

type publishedLineupDTO struct {
	Published bool `json:"published"`
	lineupSheetDTO
}

func (h *Handler) PublishLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishLineup")
	defer span.End()

	gameID, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.publishService.Publish(ctx, gameID); err != nil {
		h.logger.WarnContext(ctx, "publish lineup failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "published"})
}

func (h *Handler) UnpublishLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnpublishLineup")
	defer span.End()

	gameID, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.publishService.Unpublish(ctx, gameID); err != nil {
		h.logger.WarnContext(ctx, "unpublish lineup failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "unpublished"})
}

func (h *Handler) GetPublishedLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPublishedLineup")
	defer span.End()

	gameID, err := gameIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.publishService.GetPublished(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get published lineup failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, publishedLineupDTO{
		Published:      view.Published,
		lineupSheetDTO: sheetToDTO(view.LineupSheet),
	})
}
