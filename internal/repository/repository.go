package repository

import (
	"context"
	"time"
)

type InsertSentenceLogInput struct {
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
}

type Repository interface {
	// InsertSentenceLog writes one trial record and returns its row id.
	InsertSentenceLog(ctx context.Context, input InsertSentenceLogInput) (string, error)
	// ListSentenceLogsBySessionID returns a session's records in trial order.
	ListSentenceLogsBySessionID(ctx context.Context, sessionID string) ([]SentenceLog, error)
}
