package main

import (
	"fmt"
)

type ExerciseKind int32

const (
	Ex_Prepare ExerciseKind = iota
	Ex_Dance
	Ex_Flash
	Ex_Pause
)

const (
	prepareMs      = 2000
	danceDefaultMs = 6000
	flashDefaultMs = 2000
)

// Exercise is one playlist entry. duration is in milliseconds; zero means
// the exercise never auto-advances (Pause).
type Exercise struct {
	kind     ExerciseKind
	duration float32
	routine  *Routine // Ex_Dance only
	music    string   // Ex_Dance only, may be empty
	text     string   // Ex_Flash and Ex_Pause
}

func prepareExercise() Exercise {
	return Exercise{kind: Ex_Prepare, duration: prepareMs}
}

func danceExercise(durationMs float32, rt *Routine, music string) Exercise {
	return Exercise{kind: Ex_Dance, duration: durationMs, routine: rt, music: music}
}

func flashExercise(durationMs float32, text string) Exercise {
	return Exercise{kind: Ex_Flash, duration: durationMs, text: text}
}

func pauseExercise(text string) Exercise {
	return Exercise{kind: Ex_Pause, text: text}
}

func (ex *Exercise) title() string {
	switch ex.kind {
	case Ex_Prepare:
		return "Let op!"
	case Ex_Dance:
		return ex.routine.Name
	case Ex_Flash:
		return ex.text
	default:
		return "Pauze"
	}
}

// Training is the ordered playlist with its cursor. Navigation wraps at
// both ends; the list itself is fixed after construction and is only ever
// replaced wholesale.
type Training struct {
	exercises []Exercise
	cur       int
}

func newTraining(exercises []Exercise) (*Training, error) {
	if len(exercises) == 0 {
		return nil, fmt.Errorf("training must hold at least one exercise")
	}
	return &Training{exercises: exercises}, nil
}

func (t *Training) current() *Exercise { return &t.exercises[t.cur] }

func (t *Training) next() { t.cur = (t.cur + 1) % len(t.exercises) }

func (t *Training) prev() { t.cur = (t.cur - 1 + len(t.exercises)) % len(t.exercises) }

// promptTraining is the single-entry fallback shown when there is nothing
// to play, with msg explaining why.
func promptTraining(msg string) *Training {
	t, _ := newTraining([]Exercise{pauseExercise(msg)})
	return t
}

// defaultTraining is the built-in playlist used when no script is loaded at
// startup.
func defaultTraining(reg map[string]*Routine) *Training {
	t, err := newTraining([]Exercise{
		prepareExercise(),
		flashExercise(3000, "Schud je armen en benen los"),
		danceExercise(12000, reg["floss"], "sound/floss.mp3"),
		flashExercise(3000, "Even uitblazen... en dan de macarena"),
		danceExercise(12000, reg["macarena"], "sound/macarena.mp3"),
		pauseExercise("Klaar! Druk op > om opnieuw te beginnen, of Enter voor een eigen training."),
	})
	chk(err)
	return t
}

// Sequencer advances the training on wall-clock ticks and user actions.
// onEnter fires exactly once each time an exercise becomes current, which
// is where music starts and stats are recorded.
type Sequencer struct {
	training *Training
	elapsed  float32 // ms within the current exercise
	paused   bool
	onEnter  func(ex *Exercise)
}

func newSequencer(t *Training) *Sequencer {
	return &Sequencer{training: t}
}

// start fires onEnter for the initial exercise. Kept separate from the
// constructor so the system can install hooks first.
func (sq *Sequencer) start() { sq.enter() }

func (sq *Sequencer) enter() {
	sq.elapsed = 0
	if sq.onEnter != nil {
		sq.onEnter(sq.training.current())
	}
}

// tick accumulates delta time and auto-advances once the current exercise's
// duration is exceeded. Pause exercises have no duration and sit until the
// user navigates away.
func (sq *Sequencer) tick(deltaMs float32) {
	if sq.paused {
		return
	}
	sq.elapsed += deltaMs
	ex := sq.training.current()
	if ex.duration > 0 && sq.elapsed > ex.duration {
		sq.training.next()
		sq.enter()
	}
}

func (sq *Sequencer) advance() {
	sq.training.next()
	sq.enter()
}

func (sq *Sequencer) retreat() {
	sq.training.prev()
	sq.enter()
}

func (sq *Sequencer) togglePause() { sq.paused = !sq.paused }

// setTraining replaces the playlist wholesale and restarts at its first
// exercise.
func (sq *Sequencer) setTraining(t *Training) {
	sq.training = t
	sq.enter()
}

func (sq *Sequencer) clear() {
	sq.setTraining(promptTraining("Druk op Enter om een trainingsbestand te openen."))
}
