package main

import (
	"bytes"
	"io"
	"os"

	"github.com/sqweek/dialog"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Log writer implementation
func NewLogWriter() io.Writer {
	return os.Stderr
}

// Message box implementation
func ShowInfoDialog(message, title string) {
	dialog.Message(message).Title(title).Info()
}

func ShowErrorDialog(message string) {
	dialog.Message(message).Title("Dansvloer Error").Error()
}

type scriptResult struct {
	path string
	text string
	err  error
}

// pickTraining opens the native file dialog off the main thread and posts
// the outcome back to the frame loop. A cancelled pick posts nothing: the
// current training keeps running.
func (s *System) pickTraining() {
	go func() {
		fn, err := dialog.File().
			Filter("Trainingsscript (*.txt)", "txt").
			Title("Open training").
			Load()
		if err == dialog.ErrCancelled {
			return
		}
		if err != nil {
			s.scriptChan <- scriptResult{err: err}
			return
		}
		raw, err := os.ReadFile(fn)
		if err != nil {
			s.scriptChan <- scriptResult{path: fn, err: err}
			return
		}
		text, err := decodeScript(raw)
		s.scriptChan <- scriptResult{path: fn, text: text, err: err}
	}()
}

// decodeScript reads the script as UTF-8, tolerating UTF-8 and UTF-16 byte
// order marks from editors that insist on writing them.
func decodeScript(raw []byte) (string, error) {
	r := transform.NewReader(bytes.NewReader(raw),
		unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	b, err := io.ReadAll(r)
	return string(b), err
}
