package logger

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Init configures the global logrus instance. logLevel is the verbosity count
// from the CLI (0 = info, 1 = debug, 2+ = trace). When logFilePath is set,
// output is mirrored to a size-rotated log file.
func Init(logLevel int, logFilePath string) error {
	switch {
	case logLevel >= 2:
		logrus.SetLevel(logrus.TraceLevel)
	case logLevel == 1:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}

	logrus.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})

	if logFilePath != "" {
		logrus.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     30,
		}))
	}

	return nil
}

// GetLogger returns a prefixed log entry for a component.
func GetLogger(prefix string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"prefix": prefix})
}
