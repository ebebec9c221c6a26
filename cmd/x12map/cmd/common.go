package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"x12map/mapspec"
	"x12map/x12"
)

// readTransaction parses the X12 document at path with the configured delimiters.
func (o *rootOpts) readTransaction(path string) (*x12.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", path)
	}

	tx := x12.Parse(string(data), o.delimiters())
	logrus.Debugf("parsed %d segments from %s", len(tx.Segments()), path)

	return tx, nil
}

// loadSpec loads a spec file, logs its warnings and fails on error diagnostics.
func loadSpec(path string) (*mapspec.File, error) {
	f, err := mapspec.LoadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spec")
	}

	diags := f.Validate()
	for _, w := range diags.Warnings {
		logrus.Warnf("%s: %s", path, w)
	}

	if err := diags.Error(); err != nil {
		return nil, errors.Wrapf(err, "invalid spec %s", path)
	}

	return f, nil
}
