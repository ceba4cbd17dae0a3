package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

func TestRecordDancePlayAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	recordDancePlay(path, "floss")
	recordDancePlay(path, "floss")
	recordDancePlay(path, "macarena")

	data := readStats(path)
	if got := gjson.GetBytes(data, "dances.floss.plays").Int(); got != 2 {
		t.Errorf("floss plays = %d, want 2", got)
	}
	if got := gjson.GetBytes(data, "dances.macarena.plays").Int(); got != 1 {
		t.Errorf("macarena plays = %d, want 1", got)
	}
}

func TestRecordTrainingLoaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	recordTrainingLoaded(path)
	recordTrainingLoaded(path)
	if got := gjson.GetBytes(readStats(path), "trainingsLoaded").Int(); got != 2 {
		t.Errorf("trainingsLoaded = %d, want 2", got)
	}
}

func TestRecordPlaytimeInMinutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	recordPlaytime(path, 90)
	recordPlaytime(path, 30)
	got := gjson.GetBytes(readStats(path), "playtime").Float()
	if math.Abs(got-2) > 1e-9 {
		t.Errorf("playtime = %v minutes, want 2", got)
	}
}

func TestReadStatsMissingFile(t *testing.T) {
	data := readStats(filepath.Join(t.TempDir(), "nope.json"))
	if string(data) != "{}" {
		t.Errorf("readStats on a missing file = %q, want {}", data)
	}
}
