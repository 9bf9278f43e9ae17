// Package x_log sets up zerolog for the kata tools: styled console output,
// optional rotated log file and context-scoped module loggers.
package x_log

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	ErrInvalidLevelValue = errors.New("invalid_level_value")

	mu       sync.Mutex
	fileSink *lumberjack.Logger

	// consoleOut is where console lines go; tests swap it.
	consoleOut io.Writer = os.Stderr
)

// Level is a zerolog level.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

//
// ---------- Init ----------

// Init configures the global logger from LoadConfig(""), falling back to
// defaults when the config cannot be read.
func Init() {
	cfg, err := LoadConfig("")
	if err != nil {
		def := DefaultConfig()
		cfg = &def
	}
	InitWithConfig(cfg, "")
}

// InitWithConfig replaces the global logger. A non-empty module is added
// as the "module" field on every line.
func InitWithConfig(cfg *Config, module string) {
	mu.Lock()
	defer mu.Unlock()

	c := *cfg
	applyDefaults(&c)

	level, err := ParseLevel(c.Level)
	if err != nil {
		level = InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if fileSink != nil {
		_ = fileSink.Close()
		fileSink = nil
	}

	var writers []io.Writer
	if c.ToConsole {
		styles := DefaultStylesByName(c.Style)
		styles.Out = consoleOut
		styles.NoColor = !isTerminal(consoleOut)
		writers = append(writers, zerolog.SyncWriter(ConsoleWriterWithStyles(styles)))
	}
	if c.ToFile {
		fileSink = &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}
		if c.ColoredFile {
			styles := DefaultStylesByName(c.Style)
			styles.Out = fileSink
			writers = append(writers, zerolog.SyncWriter(ConsoleWriterWithStyles(styles)))
		} else {
			writers = append(writers, fileSink)
		}
	}
	if len(writers) == 0 {
		writers = append(writers, consoleOut)
	}

	lc := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if module != "" {
		lc = lc.Str("module", module)
	}
	log.Logger = lc.Logger()
}

// Close flushes and closes the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if fileSink == nil {
		return nil
	}
	err := fileSink.Close()
	fileSink = nil
	return err
}

//
// ---------- Scoped Loggers ----------

// New returns a child of the global logger tagged with module.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// From returns the logger stored in ctx, or the global logger.
func From(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

//
// ---------- Shortcuts ----------

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }

//
// ---------- Helpers ----------

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, ErrInvalidLevelValue
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
