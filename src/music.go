package main

import (
	"fmt"
	"math"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	audioOutLen          = 2048
	audioResampleQuality = 1
)

// Bgm holds the looping dance track. Exactly one plays at a time; opening
// a new one replaces whatever was playing.
type Bgm struct {
	filename string
	streamer beep.StreamSeekCloser
	volctrl  *effects.Volume
	ctrl     *beep.Ctrl
	volume   int
}

func newBgm() *Bgm {
	return &Bgm{volume: 100}
}

// Open starts filename looping forever. Missing or unsupported files are
// logged and playback simply stays silent.
func (bgm *Bgm) Open(filename string) {
	bgm.Stop()
	if filename == "" || sys.cfg.Sound.Mute {
		return
	}
	if _, ok := sys.cmdFlags["-nomusic"]; ok {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		sys.errLog.Printf("Failed to open bgm: %v", err)
		return
	}
	var format beep.Format
	if HasExtension(filename, ".mp3") {
		bgm.streamer, format, err = mp3.Decode(f)
	} else if HasExtension(filename, ".ogg") {
		bgm.streamer, format, err = vorbis.Decode(f)
	} else if HasExtension(filename, ".wav") {
		bgm.streamer, format, err = wav.Decode(f)
	} else if HasExtension(filename, ".flac") {
		bgm.streamer, format, err = flac.Decode(f)
	} else {
		err = Error(fmt.Sprintf("unsupported file extension: %v", filename))
	}
	if err != nil {
		f.Close()
		bgm.streamer = nil
		sys.errLog.Printf("Failed to load bgm: %v", err)
		return
	}
	bgm.filename = filename
	bgm.volctrl = &effects.Volume{Streamer: beep.Loop(-1, bgm.streamer), Base: 2}
	resampler := beep.Resample(audioResampleQuality, format.SampleRate,
		beep.SampleRate(sys.cfg.Sound.SampleRate), bgm.volctrl)
	bgm.ctrl = &beep.Ctrl{Streamer: resampler}
	bgm.UpdateVolume()
	speaker.Play(bgm.ctrl)
}

func (bgm *Bgm) Stop() {
	speaker.Clear()
	if bgm.streamer != nil {
		bgm.streamer.Close()
		bgm.streamer = nil
	}
	bgm.volctrl = nil
	bgm.ctrl = nil
	bgm.filename = ""
}

func (bgm *Bgm) SetPaused(pause bool) {
	if bgm.ctrl == nil || bgm.ctrl.Paused == pause {
		return
	}
	speaker.Lock()
	bgm.ctrl.Paused = pause
	speaker.Unlock()
}

func (bgm *Bgm) UpdateVolume() {
	if bgm.volctrl == nil {
		return
	}
	v := float64(bgm.volume) * float64(sys.cfg.Sound.Volume) / 10000
	speaker.Lock()
	bgm.volctrl.Silent = v <= 0
	if v > 0 {
		bgm.volctrl.Volume = math.Log2(v)
	}
	speaker.Unlock()
}
