package httpapi

import (
	"net/http"
)

func (h *Handler) ListFixturesBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesBySeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	fixtures, err := h.fixtureService.ListBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, item := range fixtures {
		items = append(items, fixtureToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
