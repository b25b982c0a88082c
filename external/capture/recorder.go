package capture

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/foxseedlab/emovoice/internal/capture"
)

const (
	sampleRate      = 48000
	channels        = 1
	frameSizeMs     = 20
	samplesPerFrame = sampleRate * frameSizeMs * channels / 1000

	contentTypeWAV = "audio/wav"
)

type packetDecoder interface {
	Decode(packet []byte) ([]int16, error)
}

// StreamRecorder buffers per-trial audio from a PacketSource and flushes it
// into one WAV clip on Stop. A nil source means no capture device is
// configured; permission requests then resolve to Denied.
type StreamRecorder struct {
	source PacketSource

	mu         sync.Mutex
	permission capture.PermissionState
	recording  bool
	disposed   bool
	pcm        []int16
	startedAt  time.Time
	stopCh     chan struct{}
	doneCh     chan struct{}
}

func NewStreamRecorder(source PacketSource) *StreamRecorder {
	return &StreamRecorder{source: source}
}

func (r *StreamRecorder) RequestPermission(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.disposed:
		return capture.ErrDeviceUnavailable
	case r.permission == capture.PermissionGranted:
		return nil
	case r.permission == capture.PermissionDenied:
		return capture.ErrPermissionDenied
	}

	if r.source == nil {
		r.permission = capture.PermissionDenied
		return capture.ErrDeviceUnavailable
	}
	if err := r.source.Open(ctx); err != nil {
		r.permission = capture.PermissionDenied
		return fmt.Errorf("%w: %w", capture.ErrDeviceUnavailable, err)
	}
	r.permission = capture.PermissionGranted
	return nil
}

func (r *StreamRecorder) Permission() capture.PermissionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.permission
}

func (r *StreamRecorder) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed || r.permission != capture.PermissionGranted {
		return capture.ErrDeviceUnavailable
	}
	if r.recording {
		return fmt.Errorf("recording already active")
	}

	decoder, err := newPacketDecoder()
	if err != nil {
		return fmt.Errorf("failed to create packet decoder: %w", err)
	}
	r.pcm = r.pcm[:0]
	r.startedAt = time.Now()
	r.recording = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	go r.readLoop(decoder, r.stopCh, r.doneCh)
	return nil
}

func (r *StreamRecorder) readLoop(decoder packetDecoder, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	for {
		select {
		case <-stopCh:
			return
		default:
		}
		packet, err := r.source.ReadPacket()
		if err != nil {
			slog.Warn("capture read failed; recording continues with buffered audio", "error", err)
			return
		}
		if len(packet) == 0 {
			continue
		}
		frame, err := decoder.Decode(packet)
		if err != nil {
			slog.Warn("failed to decode capture packet", "error", err, "packet_bytes", len(packet))
			continue
		}
		r.mu.Lock()
		if r.recording {
			r.pcm = append(r.pcm, frame...)
		}
		r.mu.Unlock()
	}
}

func (r *StreamRecorder) Stop(_ context.Context) (*capture.Result, error) {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return nil, nil
	}
	r.recording = false
	stopCh, doneCh := r.stopCh, r.doneCh
	r.mu.Unlock()

	close(stopCh)
	<-doneCh

	r.mu.Lock()
	defer r.mu.Unlock()
	endedAt := time.Now()
	clip := encodeWAV(r.pcm, sampleRate, channels)
	result := &capture.Result{
		Clip:        clip,
		ContentType: contentTypeWAV,
		StartedAt:   r.startedAt,
		EndedAt:     endedAt,
		Duration:    endedAt.Sub(r.startedAt),
	}
	r.pcm = r.pcm[:0]
	return result, nil
}

func (r *StreamRecorder) Dispose() {
	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		return
	}
	r.disposed = true
	var stopCh, doneCh chan struct{}
	if r.recording {
		r.recording = false
		stopCh, doneCh = r.stopCh, r.doneCh
	}
	source := r.source
	r.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-doneCh
	}
	if source != nil {
		if err := source.Close(); err != nil {
			slog.Warn("failed to close capture source", "error", err)
		}
	}
}
