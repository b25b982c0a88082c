// Package capture defines the audio-recording contract the protocol drives.
// Implementations wrap whatever the host exposes as a microphone.
package capture

import (
	"context"
	"errors"
	"time"
)

// PermissionState moves forward only: Idle to Granted or Idle to Denied.
// Denied is terminal for the session and is never retried automatically.
type PermissionState int

const (
	PermissionIdle PermissionState = iota
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "idle"
	}
}

var (
	// ErrPermissionDenied means the host refused microphone access.
	ErrPermissionDenied = errors.New("capture permission denied")
	// ErrDeviceUnavailable means no capture device handle could be obtained.
	ErrDeviceUnavailable = errors.New("capture device unavailable")
)

// Result is the ephemeral output of one stopped recording. The protocol
// consumes it immediately to build a log entry; only a local file reference
// outlives it.
type Result struct {
	Clip        []byte
	ContentType string
	StartedAt   time.Time
	EndedAt     time.Time
	Duration    time.Duration
}

type Recorder interface {
	// RequestPermission resolves the device handle once. It transitions the
	// permission state out of Idle and reports ErrPermissionDenied or
	// ErrDeviceUnavailable on failure.
	RequestPermission(ctx context.Context) error
	Permission() PermissionState

	// Start begins buffering audio. Requires a granted permission and no
	// recording already active.
	Start(ctx context.Context) error

	// Stop flushes the buffered audio into one immutable clip. Calling it
	// with no active recording returns (nil, nil) so callers can invoke it
	// unconditionally.
	Stop(ctx context.Context) (*Result, error)

	// Dispose releases all capture resources. Idempotent and safe to call
	// mid-recording; it never fails.
	Dispose()
}
