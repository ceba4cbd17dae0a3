package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// rigBaseY lifts the torso frame so the feet end up just above the floor
// plane the camera defaults are framed around.
const rigBaseY = 2.4

// sys
// The only instance of a System struct.
// Do not create more than 1.
var sys = System{
	cmdFlags:   make(map[string]string),
	scriptChan: make(chan scriptResult, 1),
	bgm:        *newBgm(),
}

type System struct {
	cfg      Config
	cmdFlags map[string]string
	errLog   *log.Logger
	window   *Window
	winW     int32
	winH     int32

	esc     bool
	gameEnd bool

	rig      *Segment
	rigBase  mgl.Mat4
	routines map[string]*Routine
	seq      *Sequencer
	bgm      Bgm
	overlay  *TextOverlay

	scriptChan chan scriptResult

	isTakingScreenshot bool
	isExportingPose    bool

	statsPath    string
	sessionStart time.Time
	lastTick     time.Time
	lastTitle    string
	redrawWait   struct{ nextTime time.Time }
}

func (s *System) init() error {
	s.winW = int32(s.cfg.Video.WindowWidth)
	s.winH = int32(s.cfg.Video.WindowHeight)

	window, err := s.newWindow(int(s.winW), int(s.winH))
	if err != nil {
		return err
	}
	s.window = window

	gfx = &Renderer{}
	gfx.Init()

	if err := speaker.Init(beep.SampleRate(s.cfg.Sound.SampleRate), audioOutLen); err != nil {
		return err
	}

	s.rig = newBodyRig()
	s.rigBase = mgl.Translate3D(0, rigBaseY, 0)
	s.routines = newRoutineRegistry()

	s.overlay, err = newTextOverlay(s.cfg.Training.Font, s.cfg.Training.TextSize)
	if err != nil {
		// Text stays in the title bar only; the viewer is still usable.
		s.errLog.Printf("Overlay font unavailable: %v", err)
		s.overlay = nil
	}

	s.seq = newSequencer(s.startupTraining())
	s.seq.onEnter = s.exerciseEntered
	s.seq.start()

	now := time.Now()
	s.sessionStart = now
	s.lastTick = now
	s.redrawWait.nextTime = now
	return nil
}

func (s *System) shutdown() {
	recordPlaytime(s.statsPath, time.Since(s.sessionStart).Seconds())
	s.bgm.Stop()
	speaker.Close()
	gfx.Close()
	s.window.Close()
}

func (s *System) setWindowSize(w, h int32) {
	s.winW, s.winH = w, h
}

// startupTraining picks the initial playlist: an explicit script via flag
// or config, else the built-in one.
func (s *System) startupTraining() *Training {
	path := s.cfg.Training.File
	if v, ok := s.cmdFlags["-training"]; ok && v != "" {
		path = v
	}
	if path == "" {
		return defaultTraining(s.routines)
	}
	return s.loadTrainingFile(path)
}

func (s *System) loadTrainingFile(path string) *Training {
	raw, err := os.ReadFile(path)
	if err != nil {
		return promptTraining(fmt.Sprintf("Kan trainingsbestand niet lezen: %v", err))
	}
	text, err := decodeScript(raw)
	if err != nil {
		return promptTraining(fmt.Sprintf("Kan trainingsbestand niet lezen: %v", err))
	}
	return parseTraining(text, s.routines)
}

// exerciseEntered runs once whenever an exercise becomes current: swap the
// music and record the play.
func (s *System) exerciseEntered(ex *Exercise) {
	s.bgm.Stop()
	if ex.kind == Ex_Dance {
		s.bgm.Open(ex.music)
		recordDancePlay(s.statsPath, ex.routine.Name)
	}
}

// applyScript handles an asynchronous file-pick result on the main thread.
func (s *System) applyScript(r scriptResult) {
	if r.err != nil {
		s.seq.setTraining(promptTraining(fmt.Sprintf("Kan trainingsbestand niet lezen: %v", r.err)))
		return
	}
	s.seq.setTraining(parseTraining(r.text, s.routines))
	recordTrainingLoaded(s.statsPath)
}

// frame is one iteration of the main loop: drain pending events, advance
// the sequencer by the wall-clock delta, draw, pace. Returns false when
// the program should exit.
func (s *System) frame() bool {
	now := time.Now()
	delta := float32(now.Sub(s.lastTick).Seconds() * 1000)
	s.lastTick = now

	select {
	case r := <-s.scriptChan:
		s.applyScript(r)
	default:
	}

	s.seq.tick(delta)
	s.bgm.SetPaused(s.seq.paused)
	s.updateTitle()
	s.renderFrame()

	if s.isTakingScreenshot {
		captureScreen()
		s.isTakingScreenshot = false
	}
	if s.isExportingPose {
		s.exportCurrentPose()
		s.isExportingPose = false
	}

	return s.await(s.cfg.Video.Framerate)
}

func (s *System) renderFrame() {
	ex := s.seq.training.current()
	li := s.lighting()
	gfx.BeginFrame(li.Background)

	var rt *Routine
	var elapsed float32
	if ex.kind == Ex_Dance {
		rt, elapsed = ex.routine, s.seq.elapsed
	}
	solids := poseRig(s.rig, s.rigBase, rt, elapsed)
	gfx.DrawScene(s.camera(), li, solids, s.winW, s.winH)

	if text := s.exerciseText(ex); text != "" && s.overlay != nil {
		s.overlay.Draw(text, s.winW, s.winH)
	}
}

// exerciseText is what the overlay shows for the current exercise; dances
// run without text in the way.
func (s *System) exerciseText(ex *Exercise) string {
	switch ex.kind {
	case Ex_Prepare:
		left := MaxI(1, int(math.Ceil(float64(ex.duration-s.seq.elapsed)/1000)))
		return fmt.Sprintf("Let op! %d", left)
	case Ex_Flash, Ex_Pause:
		return ex.text
	}
	return ""
}

func (s *System) updateTitle() {
	title := fmt.Sprintf("%s — %s", s.cfg.Video.WindowTitle, s.seq.training.current().title())
	if s.seq.paused {
		title += " (gepauzeerd)"
	}
	if title != s.lastTitle {
		s.window.SetTitle(title)
		s.lastTitle = title
	}
}

func (s *System) exportCurrentPose() {
	ex := s.seq.training.current()
	var rt *Routine
	var elapsed float32
	if ex.kind == Ex_Dance {
		rt, elapsed = ex.routine, s.seq.elapsed
	}
	const path = "save/pose.gltf"
	if err := exportPose(path, s.rig, rt, elapsed); err != nil {
		s.errLog.Printf("Pose export failed: %v", err)
		return
	}
	s.errLog.Printf("Pose exported: %v", path)
}

// await finishes the frame, sleeps towards the target framerate and polls
// window events.
func (s *System) await(fps int) bool {
	gfx.EndFrame()
	s.window.SwapBuffers()

	now := time.Now()
	diff := s.redrawWait.nextTime.Sub(now)
	wait := time.Second / time.Duration(fps)
	s.redrawWait.nextTime = s.redrawWait.nextTime.Add(wait)
	if diff >= 0 && diff < wait+2*time.Millisecond {
		time.Sleep(diff)
	} else if diff < -150*time.Millisecond {
		// Too far behind; resynchronize instead of rushing frames.
		s.redrawWait.nextTime = now.Add(wait)
	}

	s.eventUpdate()
	return !s.gameEnd
}

func (s *System) eventUpdate() bool {
	s.window.pollEvents()
	s.gameEnd = s.gameEnd || s.esc || s.window.shouldClose()
	return !s.gameEnd
}
