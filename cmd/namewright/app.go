package main

import (
	"errors"
	"io"

	"github.com/spf13/afero"

	"github.com/backmassage/namewright/internal/config"
	"github.com/backmassage/namewright/internal/logging"
	"github.com/backmassage/namewright/internal/naming"
)

// errReported is returned by commands that already logged their failure.
var errReported = errors.New("failed")

// app is the state shared by every command of one invocation.
type app struct {
	fs     afero.Fs
	out    io.Writer
	errOut io.Writer

	cfg   config.Config
	flags *config.Flags
	log   *logging.Logger
}

func newApp(fs afero.Fs, out, errOut io.Writer) *app {
	return &app{
		fs:     fs,
		out:    out,
		errOut: errOut,
		cfg:    config.DefaultConfig(),
	}
}

// setup applies parsed flags and opens the logger. Called once from the
// root command's PersistentPreRunE.
func (a *app) setup() error {
	if err := a.flags.Apply(); err != nil {
		return err
	}
	logOut := a.out
	if a.cfg.OutputFormat == config.FormatCSV {
		logOut = a.errOut // keep stdout parseable
	}
	log, err := logging.NewLoggerTo(&a.cfg, logOut, a.errOut)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// namingConfig loads the naming file named by --config, or the defaults.
func (a *app) namingConfig() (naming.Config, error) {
	ncfg, err := config.LoadNaming(a.fs, a.cfg.NamingFile)
	if err != nil {
		return naming.Config{}, err
	}
	if a.cfg.NamingFile != "" {
		a.log.Debug("Loaded naming config from %s", a.cfg.NamingFile)
	}
	return ncfg, nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}
