package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/riskibarqy/league-manager/internal/usecase"
)

// MatchEventPublisher hands finalized match notifications to the event bus.
type MatchEventPublisher interface {
	PublishMatchFinalized(ctx context.Context, seasonID, matchID string) error
}

type Handler struct {
	disciplineService *usecase.DisciplineService
	fixtureService    *usecase.FixtureService
	lineupGuard       *usecase.LineupGuard
	publisher         MatchEventPublisher
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	disciplineService *usecase.DisciplineService,
	fixtureService *usecase.FixtureService,
	lineupGuard *usecase.LineupGuard,
	publisher MatchEventPublisher,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		disciplineService: disciplineService,
		fixtureService:    fixtureService,
		lineupGuard:       lineupGuard,
		publisher:         publisher,
		logger:            logger.Named("httpapi"),
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
