package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/facet/internal/logger"
)

type rootFlags struct {
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "facet",
		Short:         "Facet renders searchable pickers from option catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file; logging is off when unset")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newFilterCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger builds the command logger. The terminal belongs to the picker, so logs only go to
// --log-file.
func (f *rootFlags) openLogger() (*logger.Logger, io.Closer, error) {
	if f.logFile == "" {
		return logger.Discard(), nopCloser{}, nil
	}

	file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, newCommandError("open log file", f.logFile, err, "Check that the directory exists and is writable")
	}

	log, err := logger.New(logger.Options{Level: f.logLevel, Writer: file, Component: "cli"})
	if err != nil {
		_ = file.Close()
		return nil, nil, newCommandError("configure logging", f.logLevel, err, "Use one of: debug, info, warn, error")
	}
	return log, file, nil
}
