package redis

import (
	"encoding/binary"
	"math"
)

const bytesPerFloat32 = 4

// floatsToBytes converts a float64 vector to the little-endian float32
// binary representation Redis vector fields expect.
func floatsToBytes(fs []float64) []byte {
	buf := make([]byte, len(fs)*bytesPerFloat32)

	for i, f := range fs {
		// Vectors are stored as float32 for Redis compatibility
		u := math.Float32bits(float32(f))
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], u)
	}

	return buf
}

// bytesToFloats is the inverse of floatsToBytes.
func bytesToFloats(buf []byte) []float64 {
	fs := make([]float64, len(buf)/bytesPerFloat32)

	for i := range fs {
		u := binary.LittleEndian.Uint32(buf[i*bytesPerFloat32:])
		fs[i] = float64(math.Float32frombits(u))
	}

	return fs
}
