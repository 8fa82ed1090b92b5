package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envConfig holds the settings that may also come from the environment.
// Flags given on the command line take precedence.
type envConfig struct {
	LogFormat string `envconfig:"ASIMD_LOG_FORMAT"`
	NoColor   bool   `envconfig:"ASIMD_NO_COLOR"`
	Verbose   bool   `envconfig:"ASIMD_VERBOSE"`
}

// globalState is shared by every command.
type globalState struct {
	stdOut, stdErr io.Writer
	stdOutTTY      bool
	logger         *logrus.Logger
	lookupEnv      func(key string) (string, bool)

	verbose   bool
	noColor   bool
	logFormat string
}

func newGlobalState(stdOut, stdErr io.Writer, logger *logrus.Logger, lookupEnv func(string) (string, bool)) *globalState {
	gs := &globalState{
		stdOut:    stdOut,
		stdErr:    stdErr,
		logger:    logger,
		lookupEnv: lookupEnv,
	}
	if f, ok := stdOut.(*os.File); ok && isTerminal(f) {
		gs.stdOutTTY = true
		gs.stdOut = colorable.NewColorable(f)
	}
	return gs
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// color returns a printer for attrs, which only emits escape codes when
// writing to a terminal with colors enabled.
func (gs *globalState) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if gs.noColor || !gs.stdOutTTY {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func newRootCommand(gs *globalState) *cobra.Command {
	root := &cobra.Command{
		Use:           "asimd",
		Short:         "AArch64 ASIMD encoder toolbox",
		Long:          "Inspect modified immediates, encode instruction programs and disassemble ASIMD words.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return gs.setup(cmd.Flags())
		},
	}
	root.SetOut(gs.stdOut)
	root.SetErr(gs.stdErr)
	root.PersistentFlags().AddFlagSet(gs.persistentFlagSet())

	root.AddCommand(
		getImmCmd(gs),
		getTableCmd(gs),
		getEncodeCmd(gs),
		getDisasmCmd(gs),
		getVersionCmd(gs),
	)
	return root
}

func (gs *globalState) persistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&gs.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&gs.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&gs.logFormat, "log-format", "text", "log output format: text, json or raw")
	return flags
}

// setup applies the environment to the flags left unset and configures the
// logger.
func (gs *globalState) setup(flags *pflag.FlagSet) error {
	var conf envConfig
	if err := envconfig.Process("", &conf, gs.lookupEnv); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	if !flags.Changed("log-format") && conf.LogFormat != "" {
		gs.logFormat = conf.LogFormat
	}
	if !flags.Changed("no-color") && conf.NoColor {
		gs.noColor = true
	}
	if !flags.Changed("verbose") && conf.Verbose {
		gs.verbose = true
	}

	if gs.noColor && gs.stdOutTTY {
		gs.stdOut = colorable.NewNonColorable(gs.stdOut)
	}
	if gs.verbose {
		gs.logger.SetLevel(logrus.DebugLevel)
	}

	switch gs.logFormat {
	case "raw":
		gs.logger.SetFormatter(&rawFormatter{})
	case "json":
		gs.logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		stdErrTTY := false
		if f, ok := gs.stdErr.(*os.File); ok {
			stdErrTTY = isTerminal(f)
		}
		gs.logger.SetFormatter(&logrus.TextFormatter{ForceColors: stdErrTTY, DisableColors: gs.noColor})
	default:
		return fmt.Errorf("unsupported log format %s", gs.logFormat)
	}
	gs.logger.Debugf("log format: %s", gs.logFormat)
	return nil
}

// rawFormatter prints only the message.
type rawFormatter struct{}

// Format implements logrus.Formatter.
func (rawFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return append([]byte(entry.Message), '\n'), nil
}
