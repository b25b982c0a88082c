//go:build opus

package capture

import (
	"github.com/hraban/opus"
)

type opusDecoder struct {
	dec *opus.Decoder
}

func newPacketDecoder() (packetDecoder, error) {
	dec, err := opus.NewDecoder(sampleRate, channels)
	if err != nil {
		return nil, err
	}
	return &opusDecoder{dec: dec}, nil
}

func (d *opusDecoder) Decode(packet []byte) ([]int16, error) {
	pcm := make([]int16, samplesPerFrame)
	n, err := d.dec.Decode(packet, pcm)
	if err != nil {
		return nil, err
	}
	totalSamples := n * channels
	if totalSamples > samplesPerFrame {
		totalSamples = samplesPerFrame
	}
	return pcm[:totalSamples], nil
}
