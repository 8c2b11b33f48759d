// Package pcm converts sample buffers to the byte layout speech recognizers
// expect: signed 16-bit little-endian mono.
package pcm

import (
	"encoding/binary"
	"math"
)

// AppendInt16 appends samples to dst as little-endian bytes.
func AppendInt16(dst []byte, samples []int16) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(s))
	}
	return dst
}

// AppendFloat32 clamps samples to [-1, 1] and appends them as 16-bit PCM.
func AppendFloat32(dst []byte, samples []float32) []byte {
	for _, s := range samples {
		s = min(max(s, -1), 1)
		dst = binary.LittleEndian.AppendUint16(dst, uint16(int16(s*math.MaxInt16)))
	}
	return dst
}

// Duration returns how many milliseconds n bytes of PCM cover at sampleRate.
func Duration(n, sampleRate int) int {
	if sampleRate <= 0 {
		return 0
	}
	return n / 2 * 1000 / sampleRate
}
