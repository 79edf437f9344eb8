package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const DefaultLevel = logrus.WarnLevel

type Options struct {
	Level string
	// File, when set, receives a copy of every line and is rotated by size.
	File string
	Out  io.Writer
}

type Logger struct {
	*logrus.Logger
	file *lumberjack.Logger
}

func New(opts Options) *Logger {
	logger := logrus.New()

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var file *lumberjack.Logger

	if opts.File != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
		}
		out = io.MultiWriter(out, file)
	}

	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		lvl = DefaultLevel
		logger.Warnf("bad log level %q, set default '%s'", opts.Level, lvl)
	}
	logger.SetLevel(lvl)

	return &Logger{Logger: logger, file: file}
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}
