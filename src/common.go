package main

import (
	"strings"
)

type Error string

func (e Error) Error() string { return string(e) }

// HasExtension reports whether file ends in ext (case-insensitive).
func HasExtension(file, ext string) bool {
	return strings.HasSuffix(strings.ToLower(file), strings.ToLower(ext))
}

func ClampF(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func MaxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}
