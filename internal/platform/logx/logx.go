// internal/platform/logx/logx.go
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger es el contrato de logging usado en todo profilex.
// Estilo key=value plano, sin dependencias externas.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

type simpleLogger struct {
	mu    *sync.Mutex
	lvl   Level
	scope []string // pares key=value fijos heredados via With
	out   io.Writer
}

// New crea el logger por defecto. El nivel se controla con
// PROFILEX_LOG_LEVEL (debug|info|warn|error).
func New() Logger {
	return NewWithWriter(os.Stderr, parseLevel(os.Getenv("PROFILEX_LOG_LEVEL")))
}

// NewWithLevel creates a logger with a specific log level.
func NewWithLevel(lvl Level) Logger {
	return NewWithWriter(os.Stderr, lvl)
}

// NewSilent creates a logger that only outputs errors (quiet mode for UI).
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

// NewWithWriter permite redirigir la salida (tests).
func NewWithWriter(w io.Writer, lvl Level) Logger {
	return &simpleLogger{mu: &sync.Mutex{}, lvl: lvl, out: w}
}

func (s *simpleLogger) With(kv ...any) Logger {
	clone := &simpleLogger{
		mu:    s.mu,
		lvl:   s.lvl,
		out:   s.out,
		scope: append(append([]string{}, s.scope...), kvPairs(kv...)...),
	}
	return clone
}

func (s *simpleLogger) SetLevel(lvl Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lvl = lvl
}

func (s *simpleLogger) Debug(msg string, kv ...any) { s.log(LevelDebug, "DBG", msg, kv...) }
func (s *simpleLogger) Info(msg string, kv ...any)  { s.log(LevelInfo, "INF", msg, kv...) }
func (s *simpleLogger) Warn(msg string, kv ...any)  { s.log(LevelWarn, "WRN", msg, kv...) }
func (s *simpleLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	s.log(LevelError, "ERR", "", kv...)
}

func (s *simpleLogger) log(l Level, tag, msg string, kv ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l < s.lvl {
		return
	}

	parts := []string{time.Now().Format("15:04:05"), tag}
	if strings.TrimSpace(msg) != "" {
		parts = append(parts, msg)
	}
	parts = append(parts, s.scope...)
	parts = append(parts, kvPairs(kv...)...)

	fmt.Fprintln(s.out, strings.Join(parts, " "))
}

func kvPairs(kv ...any) []string {
	out := make([]string, 0, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		v := any("(missing)")
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out = append(out, fmt.Sprintf("%v=%v", kv[i], v))
	}
	return out
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
