package main

import (
	"fmt"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

type Window struct {
	*glfw.Window
	title string
	w, h  int
}

func (s *System) newWindow(w, h int) (*Window, error) {
	chk(glfw.Init())

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return nil, fmt.Errorf("failed to obtain primary monitor")
	}
	mode := monitor.GetVideoMode()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(w, h, s.cfg.Video.WindowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	if s.cfg.Video.WindowCentered {
		window.SetPos((mode.Width-w)/2, (mode.Height-h)/2)
	}

	window.MakeContextCurrent()
	window.SetKeyCallback(keyCallback)
	window.SetCharModsCallback(charCallback)
	window.SetFramebufferSizeCallback(framebufferSizeCallback)

	if s.cfg.Video.VSync >= 0 {
		glfw.SwapInterval(s.cfg.Video.VSync)
	}

	return &Window{window, s.cfg.Video.WindowTitle, w, h}, nil
}

func (w *Window) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *Window) SetTitle(title string) {
	w.Window.SetTitle(title)
}

func (w *Window) pollEvents() {
	glfw.PollEvents()
}

func (w *Window) shouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *Window) Close() {
	glfw.Terminate()
}

func keyCallback(_ *glfw.Window, key Key, _ int, action glfw.Action, mk ModifierKey) {
	if action == glfw.Press {
		OnKeyPressed(key, mk)
	}
}

func charCallback(_ *glfw.Window, char rune, mk ModifierKey) {
	OnTextEntered(string(char))
}

func framebufferSizeCallback(_ *glfw.Window, width int, height int) {
	sys.setWindowSize(int32(width), int32(height))
}
