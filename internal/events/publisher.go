package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// SessionTopic is the single topic all session events are published on.
const SessionTopic = "session-events"

// EventPublisher defines the interface for publishing session events
type EventPublisher interface {
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error
	Close() error
}

// ChannelEventPublisher implements EventPublisher using Watermill's
// in-process GoChannel pub/sub. The survey runs as a single local process;
// there is no broker to reach.
type ChannelEventPublisher struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

// NewChannelEventPublisher creates an in-process event publisher.
func NewChannelEventPublisher(logger *slog.Logger) *ChannelEventPublisher {
	wmLogger := watermill.NewSlogLogger(logger)

	return &ChannelEventPublisher{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, wmLogger),
		logger: logger,
	}
}

// PublishSessionEvent publishes a session event on the session topic.
func (p *ChannelEventPublisher) PublishSessionEvent(ctx context.Context, event *SessionEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal session event: %w", err)
	}

	msg := message.NewMessage(event.ID, eventBytes)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("session_id", event.SessionID)
	msg.Metadata.Set("timestamp", event.Timestamp.Format("2006-01-02T15:04:05Z07:00"))

	if err := p.pubSub.Publish(SessionTopic, msg); err != nil {
		p.logger.Error("Failed to publish session event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
		return fmt.Errorf("failed to publish session event: %w", err)
	}

	p.logger.Debug("Published session event",
		"event_id", event.ID,
		"event_type", event.Type,
		"session_id", event.SessionID)

	return nil
}

// Subscribe returns a channel of raw messages on the session topic.
// Observers must never mutate session state from here.
func (p *ChannelEventPublisher) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return p.pubSub.Subscribe(ctx, SessionTopic)
}

// Close closes the publisher and releases resources
func (p *ChannelEventPublisher) Close() error {
	return p.pubSub.Close()
}

// MockEventPublisher is a mock implementation for testing
type MockEventPublisher struct {
	Events []SessionEvent
	Logger *slog.Logger
}

// NewMockEventPublisher creates a new mock event publisher
func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{
		Events: make([]SessionEvent, 0),
		Logger: logger,
	}
}

// PublishSessionEvent stores the event in memory (for testing)
func (m *MockEventPublisher) PublishSessionEvent(ctx context.Context, event *SessionEvent) error {
	m.Events = append(m.Events, *event)
	if m.Logger != nil {
		m.Logger.Debug("Mock: Published session event",
			"event_id", event.ID,
			"event_type", event.Type)
	}
	return nil
}

// Close is a no-op for the mock publisher
func (m *MockEventPublisher) Close() error {
	return nil
}

// GetPublishedEvents returns all published events (for testing)
func (m *MockEventPublisher) GetPublishedEvents() []SessionEvent {
	return m.Events
}

// ClearEvents clears all published events (for testing)
func (m *MockEventPublisher) ClearEvents() {
	m.Events = make([]SessionEvent, 0)
}
