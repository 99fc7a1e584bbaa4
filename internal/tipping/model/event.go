package model

// TipRecordedEvent is the event type published after a new tip is stored.
const TipRecordedEvent = "tip.recorded"

// TipEvent is published to downstream consumers.
type TipEvent struct {
	Type         string              `json:"type"`
	Tip          Tip                 `json:"tip"`
	Verification VerificationOutcome `json:"verification"`
}
