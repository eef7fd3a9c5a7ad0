package observability

import (
	"io"
	"os"

	"costmap/server/config"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the service logger. JSON to stdout unless the config
// asks for text.
func NewLogger(cfg *config.Config) *logrus.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)

	if cfg == nil {
		return logger
	}

	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", cfg.Log.Level)
		return logger
	}
	logger.SetLevel(level)
	return logger
}
