package main

import (
	"fmt"
	"strconv"
	"strings"
)

// The training script format: one exercise per line.
//
//	Bewegen [N sec]: <dans> op muziek "<bestand>"
//	Let op!
//	Flits [N sec]: <tekst>
//	Pauze: <tekst>
//
// A line that matches none of these, or starts like one but is malformed,
// becomes a Pause exercise whose text reports the problem; a bad line never
// aborts the rest of the file.

// parseTraining classifies every line independently and never fails as a
// whole: zero usable lines degrade to a single diagnostic pause.
func parseTraining(text string, reg map[string]*Routine) *Training {
	var exercises []Exercise
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSuffix(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		exercises = append(exercises, parseLine(ln, reg))
	}
	if len(exercises) == 0 {
		return promptTraining("Leeg trainingsbestand: geen oefeningen gevonden.")
	}
	t, err := newTraining(exercises)
	chk(err)
	return t
}

type lineScanner struct {
	line string
	pos  int
}

func (sc *lineScanner) skipSpaces() {
	for sc.pos < len(sc.line) && (sc.line[sc.pos] == ' ' || sc.line[sc.pos] == '\t') {
		sc.pos++
	}
}

// keyword consumes k when the remainder starts with it.
func (sc *lineScanner) keyword(k string) bool {
	if strings.HasPrefix(sc.line[sc.pos:], k) {
		sc.pos += len(k)
		return true
	}
	return false
}

func (sc *lineScanner) number() (float32, bool) {
	start := sc.pos
	for sc.pos < len(sc.line) && (sc.line[sc.pos] >= '0' && sc.line[sc.pos] <= '9' || sc.line[sc.pos] == '.') {
		sc.pos++
	}
	if sc.pos == start {
		return 0, false
	}
	v, err := strconv.ParseFloat(sc.line[start:sc.pos], 32)
	if err != nil {
		sc.pos = start
		return 0, false
	}
	return float32(v), true
}

func (sc *lineScanner) rest() string {
	return sc.line[sc.pos:]
}

// syntaxError reports the offending line verbatim with the failing token
// and byte offset, as a displayable pause.
func (sc *lineScanner) syntaxError(want string) Exercise {
	return pauseExercise(fmt.Sprintf("Regelfout in %q: verwacht %s op positie %d", sc.line, want, sc.pos))
}

func parseLine(line string, reg map[string]*Routine) Exercise {
	sc := &lineScanner{line: line}
	sc.skipSpaces()
	switch {
	case sc.keyword("Bewegen"):
		return parseDanceLine(sc, reg)
	case sc.keyword("Let op!"):
		if strings.TrimSpace(sc.rest()) != "" {
			return sc.syntaxError("einde van regel")
		}
		return prepareExercise()
	case sc.keyword("Flits"):
		if dur, ex, ok := parseHeader(sc, flashDefaultMs); !ok {
			return ex
		} else {
			return flashExercise(dur, strings.TrimSpace(sc.rest()))
		}
	case sc.keyword("Pauze"):
		sc.skipSpaces()
		if !sc.keyword(":") {
			return sc.syntaxError(`":"`)
		}
		return pauseExercise(strings.TrimSpace(sc.rest()))
	}
	return pauseExercise(fmt.Sprintf("Onbegrepen regel: %q", line))
}

// parseHeader consumes the optional "N sec" duration and the colon that
// every Bewegen/Flits line carries. Returns the duration in milliseconds.
func parseHeader(sc *lineScanner, defaultMs float32) (float32, Exercise, bool) {
	dur := defaultMs
	sc.skipSpaces()
	if n, ok := sc.number(); ok {
		sc.skipSpaces()
		if !sc.keyword("sec") {
			return 0, sc.syntaxError(`"sec"`), false
		}
		dur = n * 1000
	}
	sc.skipSpaces()
	if !sc.keyword(":") {
		return 0, sc.syntaxError(`":"`), false
	}
	return dur, Exercise{}, true
}

func parseDanceLine(sc *lineScanner, reg map[string]*Routine) Exercise {
	dur, ex, ok := parseHeader(sc, danceDefaultMs)
	if !ok {
		return ex
	}
	sc.skipSpaces()
	cut := strings.Index(sc.rest(), "op muziek")
	if cut < 0 {
		return sc.syntaxError(`"op muziek"`)
	}
	name := strings.TrimSpace(sc.rest()[:cut])
	rt, known := reg[name]
	if !known {
		return pauseExercise(fmt.Sprintf("Onbekende dans %q in regel %q", name, sc.line))
	}
	sc.pos += cut + len("op muziek")
	sc.skipSpaces()
	if !sc.keyword(`"`) {
		return sc.syntaxError(`openingsaanhalingsteken`)
	}
	end := strings.IndexByte(sc.rest(), '"')
	if end < 0 {
		return sc.syntaxError(`sluitend aanhalingsteken`)
	}
	music := sc.rest()[:end]
	return danceExercise(dur, rt, music)
}
