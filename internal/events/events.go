package events

import (
	"time"

	"github.com/google/uuid"
)

// SessionEventType identifies a session state transition.
type SessionEventType string

const (
	// SessionStarted fires when participant info is accepted and the first
	// rating pass begins.
	SessionStarted SessionEventType = "session_started"

	// RobotAssessed fires after each save-and-advance, including the last.
	RobotAssessed SessionEventType = "robot_assessed"

	// SessionCompleted fires when the final robot has been assessed.
	SessionCompleted SessionEventType = "session_completed"
)

// SessionEvent is the payload published on every session transition.
// Observers (timers, logging, UI refresh) consume these instead of being
// embedded in the state machine.
type SessionEvent struct {
	ID        string           `json:"id"`
	Type      SessionEventType `json:"type"`
	SessionID string           `json:"session_id"`
	Timestamp time.Time        `json:"timestamp"`
	Source    string           `json:"source"`
	Version   string           `json:"version"`

	// Transition details
	RobotID         string `json:"robot_id,omitempty"`
	RobotName       string `json:"robot_name,omitempty"`
	RobotIndex      int    `json:"robot_index,omitempty"`
	RobotsTotal     int    `json:"robots_total,omitempty"`
	OverallScore    int    `json:"overall_score,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// NewSessionEvent builds an event envelope with a fresh ID.
func NewSessionEvent(eventType SessionEventType, sessionID string) *SessionEvent {
	return &SessionEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now(),
		Source:    "robot-survey",
		Version:   "1.0",
	}
}
