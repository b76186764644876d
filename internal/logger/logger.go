package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/DeRuina/timberjack"
	"github.com/sirupsen/logrus"
)

var (
	// Logger is the global logger instance
	Logger *logrus.Logger
	// initialized tracks if logger has been initialized
	initialized bool
)

// LogConfig holds configuration for logging
type LogConfig struct {
	Level        string // "debug", "info", "warn", "error"
	FilePath     string // Path to log file, empty for stdout only
	RotationTime string // Time-based rotation interval (e.g., "1h", "24h")
	MaxSize      int    // Maximum size in megabytes before rotation
	MaxBackups   int    // Maximum number of old log files to retain
	MaxAge       int    // Maximum number of days to retain old log files
	Compress     bool   // Whether to compress rotated log files
}

// Init initializes the global logger with the given configuration
func Init(config LogConfig) error {
	if initialized && Logger != nil {
		return nil
	}

	if Logger == nil {
		Logger = logrus.New()
	}

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	writers := []io.Writer{os.Stdout}

	// If a log file is specified, add a rotating file writer
	if config.FilePath != "" {
		dir := filepath.Dir(config.FilePath)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		maxSize := config.MaxSize
		if maxSize == 0 {
			maxSize = 100 // megabytes
		}
		maxBackups := config.MaxBackups
		if maxBackups == 0 {
			maxBackups = 3
		}
		maxAge := config.MaxAge
		if maxAge == 0 {
			maxAge = 28 // days
		}

		rotationDuration := 24 * time.Hour
		if config.RotationTime != "" {
			rotationDuration, err = time.ParseDuration(config.RotationTime)
			if err != nil {
				return fmt.Errorf("invalid rotation_time: %w", err)
			}
		}

		compression := ""
		if config.Compress {
			compression = "gzip"
		}

		writers = append(writers, &timberjack.Logger{
			Filename:         config.FilePath,
			MaxSize:          maxSize,
			MaxBackups:       maxBackups,
			MaxAge:           maxAge,
			RotationInterval: rotationDuration,
			Compression:      compression,
			LocalTime:        true,
		})
	}

	Logger.SetOutput(io.MultiWriter(writers...))

	initialized = true

	return nil
}

// GetLogger returns the global logger instance, creating a plain stdout
// logger on first use if Init has not been called yet.
func GetLogger() *logrus.Logger {
	if Logger == nil {
		Logger = logrus.New()
		Logger.SetLevel(logrus.InfoLevel)
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		})
		// Leave initialized false so a later Init can still configure it
	}
	return Logger
}
