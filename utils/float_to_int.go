package utils

// Float32ToInt16 converts a normalized sample in [-1.0, 1.0] to a signed
// 16-bit PCM value. Input outside that range is clamped.
//
// The scale factor matches Int16ToFloat32, so converting an int16 to float32
// and back returns the original value for every possible input.
func Float32ToInt16(x float32) int16 {
	scaled := x * 32768.0

	if scaled >= 32767.0 {
		return 32767
	}

	if scaled <= -32768.0 {
		return -32768
	}

	return int16(scaled)
}

// Int16ToFloat32 converts a signed 16-bit PCM value to a normalized float32
// sample. The result is always within [-1.0, 1.0).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
