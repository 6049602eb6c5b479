package eventsub

import (
	"context"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	sonic "github.com/bytedance/sonic"
)

// TopicMatchFinalized carries a notification that a match result and its card
// events are final.
const TopicMatchFinalized = "match.results.finalized.v1"

type MatchFinalizedPayload struct {
	SeasonID string `json:"season_id"`
	MatchID  string `json:"match_id"`
}

func (p MatchFinalizedPayload) validate() error {
	if strings.TrimSpace(p.SeasonID) == "" {
		return fmt.Errorf("season_id is required")
	}
	if strings.TrimSpace(p.MatchID) == "" {
		return fmt.Errorf("match_id is required")
	}
	return nil
}

// Publisher writes match events onto a watermill publisher.
type Publisher struct {
	publisher message.Publisher
}

func NewPublisher(publisher message.Publisher) *Publisher {
	return &Publisher{publisher: publisher}
}

func (p *Publisher) PublishMatchFinalized(ctx context.Context, seasonID, matchID string) error {
	payload := MatchFinalizedPayload{
		SeasonID: strings.TrimSpace(seasonID),
		MatchID:  strings.TrimSpace(matchID),
	}
	if err := payload.validate(); err != nil {
		return err
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode match finalized payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.SetContext(ctx)
	msg.Metadata.Set("season_id", payload.SeasonID)
	msg.Metadata.Set("match_id", payload.MatchID)

	if err := p.publisher.Publish(TopicMatchFinalized, msg); err != nil {
		return fmt.Errorf("publish %s: %w", TopicMatchFinalized, err)
	}
	return nil
}

func decodeMatchFinalized(msg *message.Message) (MatchFinalizedPayload, error) {
	var payload MatchFinalizedPayload
	if err := sonic.Unmarshal(msg.Payload, &payload); err != nil {
		return MatchFinalizedPayload{}, fmt.Errorf("decode match finalized payload: %w", err)
	}
	if err := payload.validate(); err != nil {
		return MatchFinalizedPayload{}, err
	}
	payload.SeasonID = strings.TrimSpace(payload.SeasonID)
	payload.MatchID = strings.TrimSpace(payload.MatchID)
	return payload, nil
}
