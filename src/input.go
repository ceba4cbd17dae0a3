package main

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

type Key = glfw.Key
type ModifierKey = glfw.ModifierKey

const (
	KeyUnknown = glfw.KeyUnknown
	KeyEscape  = glfw.KeyEscape
	KeyEnter   = glfw.KeyEnter
	KeySpace   = glfw.KeySpace
	KeyF12     = glfw.KeyF12
)

func OnKeyPressed(key Key, mk ModifierKey) {
	switch key {
	case KeyEscape:
		sys.esc = true
	case KeyEnter:
		sys.pickTraining()
	case KeySpace:
		sys.seq.togglePause()
	case KeyF12:
		sys.isTakingScreenshot = true
	}
}

// Printable bindings arrive as entered text so the keyboard layout decides
// where > and < live. Anything unbound is ignored.
func OnTextEntered(s string) {
	switch s {
	case ">":
		sys.seq.advance()
	case "<":
		sys.seq.retreat()
	case "s", "S":
		sys.seq.clear()
	case "g", "G":
		sys.isExportingPose = true
	}
}
