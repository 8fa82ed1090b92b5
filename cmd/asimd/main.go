package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	doMain(os.Stdout, os.Stderr, os.Exit)
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut, stdErr io.Writer, exit func(code int)) {
	logger := &logrus.Logger{
		Out:       stdErr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}

	gs := newGlobalState(stdOut, stdErr, logger, os.LookupEnv)
	root := newRootCommand(gs)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		logger.Error(err)
		exit(1)
		return
	}
	exit(0)
}
