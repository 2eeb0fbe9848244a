package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/textsign/internal/config"
	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/logging"
)

// logSink is the rotating log file shared by every logger InitLogger builds.
// It is reopened on each InitLogger call and closed by CloseLogFile.
//
//nolint:gochecknoglobals // process-wide log file
var logSink struct {
	mu sync.Mutex
	w  io.WriteCloser
}

//nolint:gochecknoglobals // zerolog field names are process-wide
var setFieldNames = sync.OnceFunc(func() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "event"
})

// InitLogger builds the CLI logger. verbose selects debug, quiet selects
// warn, and info is the default.
//
// Console output is pretty on a terminal without NO_COLOR and JSON lines on
// stderr otherwise. Every entry is also appended, redacted, to
// ~/.textsign/logs/textsign.log; when that file cannot be opened the logger
// keeps the console alone.
func InitLogger(verbose, quiet bool) zerolog.Logger {
	var out io.Writer = consoleWriter()
	if file, err := openLogFile(); err == nil {
		swapLogSink(file)
		out = zerolog.MultiLevelWriter(out, file)
	}
	return InitLoggerWithWriter(verbose, quiet, out)
}

// InitLoggerWithWriter builds the CLI logger over w. Tests use it directly.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	setFieldNames()

	logger := zerolog.New(w).
		Level(selectLevel(verbose, quiet)).
		Hook(logging.Hook()).
		With().Timestamp().Logger()

	// Code that logs through zerolog/log gets the same settings.
	log.Logger = logger
	return logger
}

// CloseLogFile closes the log file if one is open. It is safe to call repeatedly.
func CloseLogFile() {
	swapLogSink(nil)
}

func swapLogSink(w io.WriteCloser) {
	logSink.mu.Lock()
	defer logSink.mu.Unlock()
	if logSink.w != nil {
		_ = logSink.w.Close()
	}
	logSink.w = w
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func consoleWriter() io.Writer {
	if os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stderr.Fd())) {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return os.Stderr
}

// openLogFile opens the rotating log file behind a redacting writer.
func openLogFile() (io.WriteCloser, error) {
	path, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return logging.NewWriter(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}), nil
}

// LogFilePath returns the path of the CLI log file.
func LogFilePath() (string, error) {
	dir, err := config.LogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.CLILogFileName), nil
}
