package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	dialTimeout     = 5 * time.Second
	readPollTimeout = 250 * time.Millisecond
	headerBytes     = 2
	maxPacketBytes  = 4096
)

// PacketSource yields audio packets from a capture device. ReadPacket
// returns (nil, nil) when no packet arrived within the poll window so the
// read loop stays responsive to stop signals.
type PacketSource interface {
	Open(ctx context.Context) error
	ReadPacket() ([]byte, error)
	Close() error
}

// StreamSource reads length-prefixed audio packets from a capture daemon
// over tcp or a unix socket. Wire format: 2-byte big-endian payload length
// followed by the payload. Frames that arrive split across poll windows are
// reassembled in partial; only the read loop goroutine touches it.
type StreamSource struct {
	addr string

	mu   sync.Mutex
	conn net.Conn

	partial []byte
}

func NewStreamSource(addr string) *StreamSource {
	return &StreamSource{addr: addr}
}

func (s *StreamSource) Open(ctx context.Context) error {
	network, address := splitAddr(s.addr)
	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return fmt.Errorf("failed to reach capture device at %s: %w", s.addr, err)
	}
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.partial = s.partial[:0]
	return nil
}

func splitAddr(addr string) (network, address string) {
	switch {
	case strings.HasPrefix(addr, "unix://"):
		return "unix", strings.TrimPrefix(addr, "unix://")
	case strings.HasPrefix(addr, "tcp://"):
		return "tcp", strings.TrimPrefix(addr, "tcp://")
	default:
		return "tcp", addr
	}
}

func (s *StreamSource) ReadPacket() ([]byte, error) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil, errors.New("capture source is not open")
	}

	if err := conn.SetReadDeadline(time.Now().Add(readPollTimeout)); err != nil {
		return nil, err
	}
	for {
		need := headerBytes - len(s.partial)
		size := 0
		if len(s.partial) >= headerBytes {
			size = int(binary.BigEndian.Uint16(s.partial[:headerBytes]))
			if size > maxPacketBytes {
				return nil, fmt.Errorf("capture packet too large: %d bytes", size)
			}
			need = headerBytes + size - len(s.partial)
		}
		if need <= 0 {
			packet := make([]byte, size)
			copy(packet, s.partial[headerBytes:headerBytes+size])
			s.partial = s.partial[:0]
			if size == 0 {
				return nil, nil
			}
			return packet, nil
		}
		chunk := make([]byte, need)
		n, err := conn.Read(chunk)
		s.partial = append(s.partial, chunk[:n]...)
		if err != nil {
			// A timeout keeps the bytes read so far; the next poll resumes
			// the same frame instead of desyncing the stream.
			if isTimeout(err) {
				return nil, nil
			}
			return nil, err
		}
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, os.ErrDeadlineExceeded)
}

func (s *StreamSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
