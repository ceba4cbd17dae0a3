package main

import (
	"fmt"
	"image/png"
	"os"
	"time"
)

// captureScreen reads the current framebuffer and writes it as a PNG under
// save/screenshots. Called from the frame loop after drawing.
func captureScreen() {
	img := gfx.CaptureRGBA(sys.winW, sys.winH)
	path := fmt.Sprintf("save/screenshots/dansvloer-%s.png",
		time.Now().Format("2006-01-02_15-04-05"))
	f, err := os.Create(path)
	if err != nil {
		sys.errLog.Printf("Screenshot failed: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		sys.errLog.Printf("Screenshot failed: %v", err)
		return
	}
	sys.errLog.Printf("Screenshot saved: %v", path)
}
