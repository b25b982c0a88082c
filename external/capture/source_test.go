package capture

import (
	"context"
	"encoding/binary"
	"net"
	"testing"
	"time"
)

func TestStreamSource_ReadsLengthPrefixedPackets(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	payload := []byte{0x01, 0x02, 0x03}
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var header [2]byte
		binary.BigEndian.PutUint16(header[:], uint16(len(payload)))
		_, _ = conn.Write(header[:])
		_, _ = conn.Write(payload)
	}()

	src := NewStreamSource(listener.Addr().String())
	if err := src.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	var packet []byte
	for packet == nil {
		packet, err = src.ReadPacket()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
	}
	if string(packet) != string(payload) {
		t.Fatalf("unexpected packet: %v", packet)
	}
}

func TestStreamSource_ReassemblesFramesSplitAcrossPolls(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	first := []byte{0xAA, 0xBB, 0xCC}
	second := []byte{0x01, 0x02}
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var header [2]byte
		binary.BigEndian.PutUint16(header[:], uint16(len(first)))
		// One header byte, a stall longer than the poll window, then the
		// rest of the frame and a complete second frame.
		_, _ = conn.Write(header[:1])
		time.Sleep(readPollTimeout + 150*time.Millisecond)
		_, _ = conn.Write(header[1:])
		_, _ = conn.Write(first)
		binary.BigEndian.PutUint16(header[:], uint16(len(second)))
		_, _ = conn.Write(header[:])
		_, _ = conn.Write(second)
	}()

	src := NewStreamSource(listener.Addr().String())
	if err := src.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	var packets [][]byte
	deadline := time.Now().Add(5 * time.Second)
	for len(packets) < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("timed out with %d packets", len(packets))
		}
		packet, err := src.ReadPacket()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if packet != nil {
			packets = append(packets, packet)
		}
	}
	if string(packets[0]) != string(first) || string(packets[1]) != string(second) {
		t.Fatalf("unexpected packets: %v", packets)
	}
}

func TestStreamSource_ResumesPayloadAfterStall(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	payload := []byte{0x10, 0x20, 0x30, 0x40}
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var header [2]byte
		binary.BigEndian.PutUint16(header[:], uint16(len(payload)))
		_, _ = conn.Write(header[:])
		_, _ = conn.Write(payload[:2])
		time.Sleep(readPollTimeout + 150*time.Millisecond)
		_, _ = conn.Write(payload[2:])
	}()

	src := NewStreamSource(listener.Addr().String())
	if err := src.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	var packet []byte
	deadline := time.Now().Add(5 * time.Second)
	for packet == nil {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the stalled frame")
		}
		packet, err = src.ReadPacket()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
	}
	if string(packet) != string(payload) {
		t.Fatalf("unexpected packet: %v", packet)
	}
}

func TestStreamSource_OpenFailsWhenUnreachable(t *testing.T) {
	src := NewStreamSource("127.0.0.1:1")
	if err := src.Open(context.Background()); err == nil {
		t.Fatal("expected dial failure")
	}
}

func TestSplitAddr(t *testing.T) {
	cases := []struct {
		in, network, address string
	}{
		{"tcp://127.0.0.1:8964", "tcp", "127.0.0.1:8964"},
		{"unix:///run/capture.sock", "unix", "/run/capture.sock"},
		{"127.0.0.1:8964", "tcp", "127.0.0.1:8964"},
	}
	for _, c := range cases {
		network, address := splitAddr(c.in)
		if network != c.network || address != c.address {
			t.Fatalf("splitAddr(%q) = (%q, %q)", c.in, network, address)
		}
	}
}
