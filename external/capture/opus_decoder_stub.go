//go:build !opus

package capture

import "encoding/binary"

// Builds without the opus tag skip libopus (cgo) and expect raw little-endian
// s16 PCM packets from the capture daemon instead.
type rawPCMDecoder struct{}

func newPacketDecoder() (packetDecoder, error) {
	return rawPCMDecoder{}, nil
}

func (rawPCMDecoder) Decode(packet []byte) ([]int16, error) {
	pcm := make([]int16, len(packet)/2)
	for i := range pcm {
		pcm[i] = int16(binary.LittleEndian.Uint16(packet[i*2:]))
	}
	return pcm, nil
}
