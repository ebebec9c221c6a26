package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2023, 9, 29, 12, 0, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "unknown _type",
	}

	tests := []struct {
		name      string
		formatter *Formatter
		want      string
	}{
		{
			name:      "plain",
			formatter: &Formatter{DisableColor: true},
			want:      "2023-09-29 12:00:00 [WARNING] unknown _type\n",
		},
		{
			name:      "colored",
			formatter: &Formatter{},
			want:      "2023-09-29 12:00:00 \033[33m[WARNING] unknown _type\033[0m\n",
		},
		{
			name:      "no time",
			formatter: &Formatter{DisableColor: true, HideLogTime: true},
			want:      "[WARNING] unknown _type\n",
		},
		{
			name:      "custom time format",
			formatter: &Formatter{DisableColor: true, TimestampFormat: time.RFC3339},
			want:      "2023-09-29T12:00:00Z [WARNING] unknown _type\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.formatter.Format(entry)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestInit(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Color: ColorNever, Output: &buf}))

	logrus.Debug("hidden")
	logrus.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO] shown")

	buf.Reset()
	require.NoError(t, Init(Options{Debug: true, Color: ColorAuto, Output: &buf}))

	logrus.Debug("visible")
	assert.Contains(t, buf.String(), "[DEBUG] [logger_test.go:")
	assert.NotContains(t, buf.String(), "\033[", "auto disables colors for non-terminals")
}

func TestInit_InvalidColor(t *testing.T) {
	assert.Error(t, Init(Options{Color: "sometimes"}))
}

func TestNewFileHook(t *testing.T) {
	dir := t.TempDir()

	hook, err := NewFileHook(dir)
	require.NoError(t, err)
	assert.Contains(t, hook.Levels(), logrus.WarnLevel)

	entry := logrus.NewEntry(logrus.New())
	entry.Level = logrus.WarnLevel
	entry.Message = "written"
	require.NoError(t, hook.Fire(entry))

	data, err := os.ReadFile(filepath.Join(dir, "x12map.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}
