package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"x12map/internal/config"
	"x12map/internal/logger"
	"x12map/x12"
)

type rootOpts struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
}

var supportedColorModes = []string{
	logger.ColorAlways,
	logger.ColorNever,
	logger.ColorAuto,
}

var longRootCmdDescription = `x12map converts X12 EDI documents into nested data and back.

A spec file declares the loops to detect in a document and a map from
output keys to segment fields, loops and repeating segments. The same
spec drives both extraction and generation.
`

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("x12map: %v", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the x12map command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{v: config.New()}

	rootCmd := &cobra.Command{
		Use:           "x12map",
		Short:         "Map X12 EDI documents to data and back",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", config.DefaultPath()))
	flags.BoolP("debug", "d", false, "turn on debug logging")
	flags.String("field-terminator", x12.DefaultFieldTerminator, "field separator of X12 documents")
	flags.String("line-terminator", `\n`, "segment separator of X12 documents, escapes such as \\r\\n are allowed")
	flags.String("color", logger.ColorAlways, fmt.Sprintf("log color mode, one of %v", supportedColorModes))
	flags.String("log-dir", "", "also write logs to a daily rotated file in this directory")

	opts.bind(flags.Lookup("debug"), config.KeyDebug)
	opts.bind(flags.Lookup("field-terminator"), config.KeyFieldTerminator)
	opts.bind(flags.Lookup("line-terminator"), config.KeyLineTerminator)
	opts.bind(flags.Lookup("color"), config.KeyColor)
	opts.bind(flags.Lookup("log-dir"), config.KeyLogDir)

	rootCmd.AddCommand(
		newSegmentsCmd(opts),
		newTypeCmd(opts),
		newLoopsCmd(opts),
		newExtractCmd(opts),
		newGenerateCmd(opts),
		newSpecCmd(),
	)

	return rootCmd
}

func (o *rootOpts) bind(flag *pflag.Flag, key string) {
	if err := o.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", flag.Name, err))
	}
}

// init loads the configuration and sets up logging.
func (o *rootOpts) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.v, o.cfgFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	o.cfg = cfg

	err = logger.Init(logger.Options{
		Debug:  cfg.Debug,
		Color:  cfg.Color,
		Output: cmd.ErrOrStderr(),
		LogDir: cfg.LogDir,
	})
	if err != nil {
		return errors.Wrap(err, "failed to init logger")
	}

	logrus.Debugf("config: %+v", *cfg)

	return nil
}

func (o *rootOpts) delimiters() x12.Delimiters {
	return x12.Delimiters{Line: o.cfg.LineTerminator, Field: o.cfg.FieldTerminator}
}
