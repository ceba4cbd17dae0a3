package main

import (
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
)

func init() {
	runtime.LockOSThread()
}

// Checks if error is not null, and if not null, shows an error dialog and
// panics, exiting the application.
func chk(err error) {
	if err != nil {
		if sys.errLog != nil {
			sys.errLog.Printf("Fatal: %v\n", err)
		}
		ShowErrorDialog(err.Error())
		panic(err)
	}
}

var logFile *os.File

func createLog(p string) *os.File {
	f, err := os.Create(p)
	if err != nil {
		return nil
	}
	return f
}

func closeLog(f *os.File) {
	if f != nil {
		f.Close()
	}
}

// Extract command line flags into sys.cmdFlags. Flags can stand alone
// (-nomusic) or carry a value (-training pad.txt, -width 1280).
func processCommandLine() {
	if len(os.Args) <= 1 {
		return
	}
	for i := 1; i < len(os.Args); i++ {
		a := os.Args[i]
		if !strings.HasPrefix(a, "-") {
			// A bare argument is a training script path.
			sys.cmdFlags["-training"] = a
			continue
		}
		switch strings.ToLower(a) {
		case "-h", "-?", "--help":
			text := `Options (* = optional):
 -h -?                   Help
 -training <path>        Load a training script at startup
 -config <path>          Use an alternative config file
 -stats <path>           Use an alternative stats file
 -width <num>            Sets the window width
 -height <num>           Sets the window height
 -nomusic                Disables music playback

<path>: Path to a file (e.g. trainingen/woensdag.txt)
<num>: Number (e.g. 1280)`
			ShowInfoDialog(text, "Dansvloer Options")
			os.Exit(0)
		case "-training", "-config", "-stats", "-width", "-height":
			if i+1 < len(os.Args) {
				sys.cmdFlags[strings.ToLower(a)] = os.Args[i+1]
				i++
			}
		default:
			sys.cmdFlags[strings.ToLower(a)] = ""
		}
	}
}

func main() {
	processCommandLine()

	// Make save directories, if they don't exist.
	os.Mkdir("save", os.ModeSticky|0755)
	os.Mkdir("save/logs", os.ModeSticky|0755)
	os.Mkdir("save/screenshots", os.ModeSticky|0755)

	cfgPath := "save/config.ini"
	if v, ok := sys.cmdFlags["-config"]; ok && v != "" {
		cfgPath = v
	}
	sys.statsPath = "save/stats.json"
	if v, ok := sys.cmdFlags["-stats"]; ok && v != "" {
		sys.statsPath = v
	}
	if _, err := os.Stat(sys.statsPath); os.IsNotExist(err) {
		os.WriteFile(sys.statsPath, []byte("{}"), 0644)
	}

	logFile = createLog("save/logs/dansvloer.log")
	defer closeLog(logFile)
	var logOut io.Writer = NewLogWriter()
	if logFile != nil {
		logOut = io.MultiWriter(logOut, logFile)
	}
	sys.errLog = log.New(logOut, "", log.LstdFlags)

	cfg, err := loadConfig(cfgPath)
	chk(err)
	sys.cfg = *cfg

	if v, ok := sys.cmdFlags["-width"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			sys.cfg.Video.WindowWidth = n
		}
	}
	if v, ok := sys.cmdFlags["-height"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			sys.cfg.Video.WindowHeight = n
		}
	}

	chk(sys.init())
	defer sys.shutdown()

	sys.errLog.Printf("%v %vx%v\n", sys.cfg.Video.WindowTitle,
		sys.cfg.Video.WindowWidth, sys.cfg.Video.WindowHeight)

	for sys.frame() {
	}
}
