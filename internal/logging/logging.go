// Package logging builds the driver's logrus logger, optionally mirrored to a
// rotating file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TimestampFormat is the layout of every log line's time field.
const TimestampFormat = "2006-01-02 15:04:05"

// Options configures New. An empty File logs to the console writer only.
type Options struct {
	Level      string `toml:"level" yaml:"level"`
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `toml:"compress" yaml:"compress"`
}

// DefaultOptions logs at info level with 100 MB files, 7 backups kept for
// 30 days, compressed.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  100,
		MaxBackups: 7,
		MaxAgeDays: 30,
		Compress:   true,
	}
}

// New returns a logger writing to console and, when opts.File is set, to a
// lumberjack-rotated file. The returned closer releases the file; it is a
// no-op without one.
func New(opts Options, console io.Writer) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: TimestampFormat})

	if opts.File == "" {
		log.SetOutput(console)
		return log, nopCloser{}, nil
	}

	if err = os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, err
	}
	fileLogger := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	log.SetOutput(io.MultiWriter(console, fileLogger))

	return log, fileLogger, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
