package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-manager/internal/usecase"
)

type matchFinalizedAcceptedDTO struct {
	SeasonID string `json:"season_id"`
	MatchID  string `json:"match_id"`
	Status   string `json:"status"`
}

// PublishMatchFinalized queues a recompute by emitting a match finalized event.
func (h *Handler) PublishMatchFinalized(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishMatchFinalized")
	defer span.End()

	if h.publisher == nil {
		writeError(ctx, w, fmt.Errorf("%w: event publisher is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req matchFinalizedRequest
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

	if err := h.publisher.PublishMatchFinalized(ctx, req.SeasonID, req.MatchID); err != nil {
		h.logger.ErrorContext(ctx, "publish match finalized failed", "season_id", req.SeasonID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, fmt.Errorf("%w: publish match finalized: %v", usecase.ErrDependencyUnavailable, err))
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, matchFinalizedAcceptedDTO{
		SeasonID: req.SeasonID,
		MatchID:  req.MatchID,
		Status:   "queued",
	})
}
