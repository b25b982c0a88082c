package capture

import "encoding/binary"

const (
	wavHeaderBytes = 44
	bitsPerSample  = 16
)

// encodeWAV wraps raw s16le PCM samples in a minimal RIFF/WAVE container.
func encodeWAV(pcm []int16, sampleRate, channels int) []byte {
	dataBytes := len(pcm) * 2
	buf := make([]byte, wavHeaderBytes+dataBytes)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataBytes))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	byteRate := sampleRate * channels * bitsPerSample / 8
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	blockAlign := channels * bitsPerSample / 8
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataBytes))
	for i, sample := range pcm {
		binary.LittleEndian.PutUint16(buf[wavHeaderBytes+i*2:], uint16(sample))
	}
	return buf
}
