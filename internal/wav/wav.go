// Package wav serializes sample buffers as mono 16-bit PCM WAV files.
package wav

import (
	"encoding/binary"
	"fmt"
	"os"
)

// HeaderSize is the size of the standard RIFF/WAVE header in bytes.
const HeaderSize = 44

const (
	numChannels   = 1
	bitsPerSample = 16
)

// Quantize converts normalized float samples to 16-bit PCM. Values are
// scaled by 32767 and truncated toward zero, matching a direct integer
// cast, so a peak of ±1.0 maps to exactly ±32767. Inputs outside [-1, 1]
// are clamped.
func Quantize(samples []float64) []int16 {
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		v := s * 32767
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		pcm[i] = int16(v)
	}
	return pcm
}

// Encode builds a complete WAV file: 44-byte header followed by the
// samples as little-endian int16. An empty buffer yields a valid
// header-only file with zero data frames.
func Encode(pcm []int16, sampleRate int) []byte {
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := len(pcm) * blockAlign

	buf := make([]byte, HeaderSize+dataSize)

	// RIFF header
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	// fmt chunk
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], numChannels)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)

	// data chunk
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	for i, s := range pcm {
		binary.LittleEndian.PutUint16(buf[HeaderSize+i*2:], uint16(s))
	}
	return buf
}

// WriteFile quantizes samples and writes them to path as a mono 16-bit
// WAV at sampleRate, overwriting any existing file.
func WriteFile(path string, samples []float64, sampleRate int) error {
	data := Encode(Quantize(samples), sampleRate)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
