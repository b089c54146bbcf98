package logx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "debug"
	}
}

// MaxMessage is the byte limit for messages and string fields.
const MaxMessage = 2 * 1024

var (
	mu       sync.RWMutex
	minLevel           = LevelWarn
	out      io.Writer = io.Discard
)

// SetOutput sets the destination for logs.
func SetOutput(w io.Writer) { mu.Lock(); out = w; mu.Unlock() }

// SetMinLevel sets the minimum level to emit.
func SetMinLevel(l Level) { mu.Lock(); minLevel = l; mu.Unlock() }

// Enabled reports whether l would be written.
func Enabled(l Level) bool { mu.RLock(); defer mu.RUnlock(); return l >= minLevel }

// Fields are structured key/values attached to an entry.
type Fields map[string]any

// StdlogWriter adapts the standard logger to JSON lines at a fixed level.
func StdlogWriter(level Level, w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	return &stdlogWriter{level: level, w: w}
}

type stdlogWriter struct {
	level Level
	w     io.Writer
}

func (sw *stdlogWriter) Write(p []byte) (int, error) {
	written := 0
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if err := emit(sw.w, sw.level, string(line), nil); err != nil {
			return written, err
		}
		written += len(line) + 1
	}
	return written, nil
}

func Debugf(format string, args ...any) { logAt(LevelDebug, fmt.Sprintf(format, args...), nil) }
func Infof(format string, args ...any)  { logAt(LevelInfo, fmt.Sprintf(format, args...), nil) }
func Warnf(format string, args ...any)  { logAt(LevelWarn, fmt.Sprintf(format, args...), nil) }
func Errorf(format string, args ...any) { logAt(LevelError, fmt.Sprintf(format, args...), nil) }

// Debugw logs msg with structured fields.
func Debugw(msg string, f Fields) { logAt(LevelDebug, msg, f) }

// Infow logs msg with structured fields.
func Infow(msg string, f Fields) { logAt(LevelInfo, msg, f) }

func logAt(lvl Level, msg string, f Fields) {
	mu.RLock()
	w := out
	mu.RUnlock()
	_ = emit(w, lvl, msg, f)
}

type entry struct {
	TS     string `json:"ts"`
	Level  string `json:"level"`
	Msg    string `json:"msg"`
	Fields Fields `json:"fields,omitempty"`
}

func emit(w io.Writer, lvl Level, msg string, fields Fields) error {
	if !Enabled(lvl) {
		return nil
	}
	var fs Fields
	if len(fields) > 0 {
		// copy so callers can reuse their map
		fs = make(Fields, len(fields))
		for k, v := range fields {
			if s, ok := v.(string); ok {
				v = truncate(s, MaxMessage)
			}
			fs[k] = v
		}
	}
	e := entry{
		TS:     time.Now().Format(time.RFC3339Nano),
		Level:  lvl.String(),
		Msg:    truncate(msg, MaxMessage),
		Fields: fs,
	}
	b, err := json.Marshal(e)
	if err != nil {
		_, err2 := io.WriteString(w, e.Msg+"\n")
		return err2
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	// keep the last 10 bytes for context
	suffix := "… [truncated]"
	if limit > len(suffix)+10 {
		return s[:limit-len(suffix)-10] + suffix + s[len(s)-10:]
	}
	return s[:limit]
}
