package eventsub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riskibarqy/league-manager/internal/domain/discipline"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/riskibarqy/league-manager/internal/usecase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const handlerName = "discipline.recalculate_on_match_finalized"

var tracer = otel.Tracer("league-manager/internal/interfaces/eventsub")

// SeasonRecalculator is the write side triggered by finalized matches.
type SeasonRecalculator interface {
	RecalculateSeason(ctx context.Context, seasonID string) (discipline.RecalculationResult, error)
}

type Config struct {
	BufferSize      int
	MaxRetries      int
	InitialInterval time.Duration
	// Registerer receives watermill router metrics when set.
	Registerer prometheus.Registerer
}

func (c Config) withDefaults() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = 64
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = 200 * time.Millisecond
	}
	return c
}

// Bus runs the in-process pub/sub and the router consuming it.
type Bus struct {
	pubSub       *gochannel.GoChannel
	router       *message.Router
	recalculator SeasonRecalculator
	logger       *logging.Logger
}

func NewBus(cfg Config, recalculator SeasonRecalculator, logger *logging.Logger) (*Bus, error) {
	if recalculator == nil {
		return nil, fmt.Errorf("season recalculator is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	cfg = cfg.withDefaults()
	logger = logger.Named("eventsub")
	wmLogger := logger.Watermill()

	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: int64(cfg.BufferSize),
	}, wmLogger)

	router, err := message.NewRouter(message.RouterConfig{}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}
	bus := &Bus{
		pubSub:       pubSub,
		router:       router,
		recalculator: recalculator,
		logger:       logger,
	}
	if cfg.Registerer != nil {
		builder := metrics.NewPrometheusMetricsBuilder(cfg.Registerer, "league_manager", "eventsub")
		builder.AddPrometheusRouterMetrics(router)
	}
	router.AddMiddleware(
		bus.dropExhausted,
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      cfg.MaxRetries,
			InitialInterval: cfg.InitialInterval,
			Multiplier:      2,
			Logger:          wmLogger,
		}.Middleware,
	)
	router.AddNoPublisherHandler(handlerName, TopicMatchFinalized, pubSub, bus.handleMatchFinalized)

	return bus, nil
}

// Publisher returns a publisher bound to the bus.
func (b *Bus) Publisher() *Publisher {
	return NewPublisher(b.pubSub)
}

// Run blocks until ctx is cancelled or the router stops.
func (b *Bus) Run(ctx context.Context) error {
	return b.router.Run(ctx)
}

// Running is closed once handlers are subscribed.
func (b *Bus) Running() chan struct{} {
	return b.router.Running()
}

func (b *Bus) Close() error {
	return errors.Join(b.router.Close(), b.pubSub.Close())
}

// dropExhausted acks a message whose retries are spent. gochannel redelivers
// nacked messages forever otherwise.
func (b *Bus) dropExhausted(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		produced, err := h(msg)
		if err != nil {
			b.logger.ErrorContext(msg.Context(), "match finalized event dropped after retries",
				"message_uuid", msg.UUID,
				"season_id", msg.Metadata.Get("season_id"),
				"error", err,
			)
			return nil, nil
		}
		return produced, nil
	}
}

func (b *Bus) handleMatchFinalized(msg *message.Message) error {
	ctx, span := tracer.Start(msg.Context(), "eventsub.Bus.handleMatchFinalized")
	defer span.End()

	payload, err := decodeMatchFinalized(msg)
	if err != nil {
		// Malformed payloads are acked; retrying cannot fix them.
		b.logger.WarnContext(ctx, "dropping match finalized event", "message_uuid", msg.UUID, "error", err)
		span.SetStatus(codes.Error, err.Error())
		return nil
	}
	span.SetAttributes(
		attribute.String("season_id", payload.SeasonID),
		attribute.String("match_id", payload.MatchID),
	)

	result, err := b.recalculator.RecalculateSeason(ctx, payload.SeasonID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, usecase.ErrInvalidInput) {
			b.logger.WarnContext(ctx, "match finalized event rejected", "season_id", payload.SeasonID, "error", err)
			return nil
		}
		return fmt.Errorf("recalculate season %s after match %s: %w", payload.SeasonID, payload.MatchID, err)
	}

	b.logger.InfoContext(ctx, "season discipline recalculated from event",
		"season_id", payload.SeasonID,
		"match_id", payload.MatchID,
		"archived", result.Archived,
		"created", result.Created,
	)
	return nil
}
