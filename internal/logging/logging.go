package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
)

// Setup configures log for c: debug level and coloured text in development,
// info level and JSON otherwise. When c.Log.File is set entries are also
// written to a rotating file.
func Setup(log *logrus.Logger, c config.Config) error {
	level := logrus.InfoLevel
	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if c.Development() {
		level = logrus.DebugLevel
		formatter = &logrus.TextFormatter{ForceColors: true}
	}
	log.SetLevel(level)
	log.SetFormatter(formatter)

	if c.Log.File == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", c.Log.File, err)
	}
	log.AddHook(hook)
	return nil
}
