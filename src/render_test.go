package main

import (
	"testing"
)

func TestViewportAspect(t *testing.T) {
	cases := []struct {
		w, h int32
		want float32
	}{
		{960, 720, 960.0 / 720.0},
		{0, 0, 1}, // minimized window
		{1280, 0, 1},
		{0, 720, 1},
		{-1, 720, 1},
	}
	for _, c := range cases {
		if got := viewportAspect(c.w, c.h); got != c.want {
			t.Errorf("viewportAspect(%d, %d) = %v, want %v", c.w, c.h, got, c.want)
		}
	}
}
