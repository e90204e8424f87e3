// Package logger provides the prefixed, colored loggers used by every component.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beka-birhanu/vinom-maze-solver/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix must not be empty")
	ErrNilWriter   = errors.New("logger writer must not be nil")
)

// Logger writes leveled messages tagged with a component prefix.
type Logger struct {
	log *logrus.Logger
}

// New creates a logger that tags each line with prefix, painted in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})
	return &Logger{log: l}, nil
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string) {
	l.log.Debug(msg)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(msg string) {
	l.log.Warn(msg)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

// prefixFormatter renders entries as "time [PREFIX] [LEVEL] message key=value".
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s[%s]%s [%s] %s",
		entry.Time.Format("2006/01/02 15:04:05"),
		f.color, f.prefix, config.ColorReset,
		strings.ToUpper(entry.Level.String()),
		entry.Message,
	)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
