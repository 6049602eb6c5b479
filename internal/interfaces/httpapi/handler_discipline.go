package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-manager/internal/usecase"
)

func (h *Handler) RecalculateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	result, err := h.disciplineService.RecalculateSeason(ctx, seasonID)
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculate season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recalculationResultToDTO(result))
}

func (h *Handler) RecalculateSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateSeasons")
	defer span.End()

	var req recalculateSeasonsRequest
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

	results, err := h.disciplineService.RecalculateSeasons(ctx, req.SeasonIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculate seasons failed", "seasons", len(req.SeasonIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonRecalculationDTO, 0, len(results))
	for _, item := range results {
		items = append(items, seasonRecalculationToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListCardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCardSummary")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	views, err := h.disciplineService.CardSummary(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list card summary failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cardSummariesToDTO(views))
}

func (h *Handler) ListSuspensions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSuspensions")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	status, err := parseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	views, err := h.disciplineService.ListSuspensions(ctx, seasonID, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list suspensions failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suspensionsToDTO(views))
}

func (h *Handler) ExportSuspensionsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportSuspensionsCSV")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	status, err := parseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	body, err := h.disciplineService.ExportSuspensionsCSV(ctx, seasonID, status)
	if err != nil {
		h.logger.WarnContext(ctx, "export suspensions failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "suspensions-"+seasonID+".csv"))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) GetDisciplineOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDisciplineOverview")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	overview, err := h.disciplineService.Overview(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "discipline overview failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, disciplineOverviewDTO{
		SeasonID:          overview.SeasonID,
		TotalYellowCards:  overview.TotalYellowCards,
		TotalRedCards:     overview.TotalRedCards,
		Cards:             cardSummariesToDTO(overview.Cards),
		ActiveSuspensions: suspensionsToDTO(overview.ActiveSuspensions),
	})
}

func (h *Handler) CheckPlayerSuspension(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckPlayerSuspension")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	matchID := r.PathValue("matchID")
	seasonPlayerID := r.PathValue("seasonPlayerID")

	check, err := h.disciplineService.IsPlayerSuspendedForMatch(ctx, seasonPlayerID, matchID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "suspension check failed",
			"season_id", seasonID,
			"match_id", matchID,
			"season_player_id", seasonPlayerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suspensionCheckDTO{
		SeasonPlayerID: seasonPlayerID,
		MatchID:        matchID,
		Suspended:      check.Suspended,
		Reason:         string(check.Reason),
		SuspensionID:   check.SuspensionID,
	})
}

func (h *Handler) CheckLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckLineup")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	matchID := r.PathValue("matchID")

	var req lineupCheckRequest
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

	suspended, err := h.lineupGuard.CheckSelection(ctx, seasonID, matchID, req.SeasonPlayerIDs)
	if err != nil && !errors.Is(err, usecase.ErrConflict) {
		h.logger.WarnContext(ctx, "lineup check failed", "season_id", seasonID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]suspendedSelectionDTO, 0, len(suspended))
	for _, item := range suspended {
		items = append(items, suspendedSelectionDTO{
			SeasonPlayerID: item.SeasonPlayerID,
			Reason:         string(item.Reason),
			SuspensionID:   item.SuspensionID,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, lineupCheckDTO{
		MatchID:   matchID,
		Eligible:  len(items) == 0,
		Suspended: items,
	})
}
