package entity

import (
	"github.com/google/uuid"
)

// ProximityState is a snapshot of one session's proximity watch.
// Notified only grows while the session is watching.
type ProximityState struct {
	SessionID string      `json:"session_id"`
	UserID    uuid.UUID   `json:"user_id"`
	Watching  bool        `json:"watching"`
	Near      []uuid.UUID `json:"near"`
	Notified  []uuid.UUID `json:"notified"`
}
