package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"emojimenu/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// defaultLogPath keeps the log next to the config file so the TUI screen
// stays clean
func defaultLogPath() string {
	return filepath.Join(config.Dir(), "emojimenu.log")
}

// initLog points logrus at logPath ("-" discards) and sets the level
func initLog(level, logPath string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", LogLevelFlag)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	if logPath == "-" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	if logPath == "" {
		logPath = defaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "could not open log file")
	}
	log.SetOutput(logFile)
	log.Debugf("Log level set to %s", lvl)
	return logFile, nil
}
