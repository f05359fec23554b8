package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// Tests and tools that never call Init still get a usable logger.
func init() {
	Init("development", "info")
}

// Init (re)configures the process logger. Production logs are JSON, anything
// else is human readable text on stderr.
func Init(env, level string) {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	if env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	Log = logger.WithFields(logrus.Fields{
		"service": "socialfeed",
		"env":     env,
	})
}
