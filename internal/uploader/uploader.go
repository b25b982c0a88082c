// Package uploader defines the best-effort remote persistence path for one
// completed trial. Callers treat every failure here as a capability
// reduction, never as a reason to stall the protocol.
package uploader

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotConfigured means no remote store is configured. Expected in
	// offline runs; callers log it at most once.
	ErrNotConfigured = errors.New("remote store is not configured")
	// ErrUploadFailed marks a storage-layer failure while writing the clip.
	ErrUploadFailed = errors.New("audio upload failed")
	// ErrPersistFailed marks a failure writing the metadata record.
	ErrPersistFailed = errors.New("sentence log persist failed")
)

// SentenceLogInput carries a copy of one log entry's data. The uploader
// never touches the session log itself.
type SentenceLogInput struct {
	SessionID       string
	ParticipantName string
	EmotionID       string
	EmotionLabel    string
	SentenceID      int
	SentenceText    string
	ShownAt         time.Time
	PressedAt       time.Time
	DurationMs      int64
	LocalAudioURL   string
}

type Result struct {
	RemoteAudioURL string
	RemoteRowID    string
}

type Uploader interface {
	// UploadSentenceLog writes the clip (when present) to blob storage and
	// upserts the metadata record. A single attempt; no retries.
	UploadSentenceLog(ctx context.Context, input SentenceLogInput, clip []byte, clipContentType string) (Result, error)
	// SessionMirrorCount reports how many rows of the session reached the
	// metadata store, so the completion screen can show what was mirrored.
	SessionMirrorCount(ctx context.Context, sessionID string) (int, error)
}
