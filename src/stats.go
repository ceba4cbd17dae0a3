package main

import (
	"math"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Session statistics are patched into a small JSON file (default
// save/stats.json, -stats overrides) so nothing else needs to know its
// layout:
//
//	{"playtime": 12.5, "trainingsLoaded": 3,
//	 "dances": {"floss": {"plays": 7}, ...}}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func readStats(path string) []byte {
	data, _ := os.ReadFile(path)
	if len(data) == 0 {
		data = []byte(`{}`)
	}
	return data
}

func writeStats(path string, data []byte) {
	_ = os.WriteFile(path, data, 0o644)
}

// recordDancePlay bumps the play counter of one routine.
func recordDancePlay(path, name string) {
	data := readStats(path)
	cur := gjson.GetBytes(data, "dances."+name+".plays").Int()
	data, _ = sjson.SetBytes(data, "dances."+name+".plays", cur+1)
	writeStats(path, data)
}

func recordTrainingLoaded(path string) {
	data := readStats(path)
	cur := gjson.GetBytes(data, "trainingsLoaded").Int()
	data, _ = sjson.SetBytes(data, "trainingsLoaded", cur+1)
	writeStats(path, data)
}

// recordPlaytime accumulates total playtime in minutes.
func recordPlaytime(path string, seconds float64) {
	data := readStats(path)
	cur := gjson.GetBytes(data, "playtime").Float()
	data, _ = sjson.SetBytes(data, "playtime", round2(cur+seconds/60))
	writeStats(path, data)
}
