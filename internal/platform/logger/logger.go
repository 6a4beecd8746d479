package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string
	// Out por defecto es os.Stdout.
	Out io.Writer
}

// sink es compartido por todos los loggers derivados con With.
type sink struct {
	mu  sync.Mutex
	out io.Writer
}

type stdLogger struct {
	sink   *sink
	level  Level
	format Format
	base   map[string]any
	now    func() time.Time
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &stdLogger{
		sink:   &sink{out: out},
		level:  opts.Level,
		format: format,
		base:   base,
		now:    time.Now,
	}
}

// NewFromConfig arma el logger desde los strings de config (LOG_LEVEL, LOG_FORMAT, APP_NAME).
func NewFromConfig(level, format, app string) Logger {
	return New(Options{
		Level:  ParseLevel(level),
		Format: ParseFormat(format),
		App:    app,
	})
}

// Nop descarta todo (tests).
func Nop() Logger {
	return New(Options{Level: Error + 1, Out: io.Discard})
}

func (l *stdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	merged := make(map[string]any, len(l.base)+len(fields))
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		merged[k] = v
	}

	return &stdLogger{
		sink:   l.sink,
		level:  l.level,
		format: l.format,
		base:   merged,
		now:    l.now,
	}
}

func (l *stdLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *stdLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *stdLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *stdLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *stdLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	entry := make(map[string]any, len(l.base)+len(fields)+3)
	for k, v := range l.base {
		entry[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		entry[k] = v
	}
	entry["ts"] = l.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	if l.format == FormatJSON {
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(map[string]any{"level": "error", "msg": "log marshal failed", "error": err.Error()})
		}
		line = string(b)
	} else {
		line = formatText(entry)
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.out, line+"\n")
}

func formatText(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}
