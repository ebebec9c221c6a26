package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Color modes accepted by Options.Color.
const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

type Options struct {
	// Debug enables debug level logging.
	Debug bool
	// Color is one of ColorAlways, ColorNever or ColorAuto. Auto colors the
	// output only when it is a terminal.
	Color string
	// Output defaults to os.Stderr.
	Output io.Writer
	// LogDir, when set, also writes a daily rotated x12map.log there.
	LogDir string
}

func Init(options Options) error {
	if options.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	out := options.Output
	if out == nil {
		out = os.Stderr
	}

	disableColor, err := disableColor(options.Color, out)
	if err != nil {
		return err
	}

	logrus.SetOutput(out)
	logrus.SetReportCaller(options.Debug)
	logrus.SetFormatter(&Formatter{
		DisableColor: disableColor,
		HideLogPath:  !options.Debug,
	})

	if options.LogDir != "" {
		fh, err := NewFileHook(options.LogDir)
		if err != nil {
			return errors.Errorf("failed to init log file hook: %v", err)
		}
		logrus.AddHook(fh)
	}

	return nil
}

func disableColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "", ColorAlways:
		return false, nil
	case ColorNever:
		return true, nil
	case ColorAuto:
		f, ok := out.(*os.File)

		return !ok || !term.IsTerminal(int(f.Fd())), nil
	default:
		return false, errors.Errorf("invalid color mode %q, want %s, %s or %s", mode, ColorAlways, ColorNever, ColorAuto)
	}
}
