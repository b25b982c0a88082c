package repository

import "time"

// SentenceLog mirrors one completed trial in the remote store. AudioURL is
// empty when no clip was captured or storage is not configured.
type SentenceLog struct {
	ID              string
	SessionID       string
	ParticipantName string
	EmotionID       string
	EmotionLabel    string
	SentenceID      int
	SentenceText    string
	ShownAt         time.Time
	PressedAt       time.Time
	DurationMs      int64
	AudioURL        string
	CreatedAt       time.Time
}
