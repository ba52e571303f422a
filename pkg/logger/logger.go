package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process wide logger. It is usable before Init with
// logrus defaults so packages can log from tests.
var Log = logrus.New()

// Init configures Log once at startup. Unknown levels fall back to info.
func Init(level, format string) {
	InitWithOutput(level, format, os.Stdout)
}

func InitWithOutput(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}
