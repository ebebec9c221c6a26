package logger

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

const (
	defaultTimestampFormat = "2006-01-02 15:04:05"
)

func getColorByLevel(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorBlue
	}
}

// Formatter writes "time [LEVEL] [file:line] message" lines.
type Formatter struct {
	DisableColor bool
	HideLogTime  bool
	// HideLogPath drops the caller file and line.
	HideLogPath     bool
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	if !f.HideLogTime {
		b.WriteString(entry.Time.Format(timestampFormat))
		b.WriteByte(' ')
	}

	levelStr := strings.ToUpper(entry.Level.String())

	line := fmt.Sprintf("[%s] %s", levelStr, entry.Message)
	if !f.HideLogPath && entry.HasCaller() {
		line = fmt.Sprintf("[%s] [%s:%d] %s", levelStr, filepath.Base(entry.Caller.File), entry.Caller.Line, entry.Message)
	}

	if f.DisableColor {
		b.WriteString(line)
	} else {
		fmt.Fprintf(b, "\033[%dm%s\033[0m", getColorByLevel(entry.Level), line)
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}
