package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srlehn/termcaps"
	"github.com/srlehn/termcaps/internal/consts"
	"github.com/srlehn/termcaps/internal/errors"
	"github.com/srlehn/termcaps/terminals"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "termcaps inspects terminal capabilities",
	Long:             "termcaps detects the hosting terminal program and lists the escape sequence families it supports",
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, `verbose`, `v`, false, `log to stderr`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file (json)`)
	rootCmd.PersistentFlags().BoolVar(&noConfigFlag, `no-config`, false, `ignore the config file`)
	rootCmd.PersistentFlags().StringVarP(&programFlag, `program`, `p`, ``, `skip detection and assume this terminal program`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag    bool
	verboseFlag  bool
	logFileFlag  string
	noConfigFlag bool
	programFlag  string
)

func run(fn func() error) {
	var err error
	if fn == nil {
		err = errors.New(consts.ErrNilParam)
	} else {
		err = fn()
	}
	if err == nil {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(1)
}

// newSession creates the session from the persistent flags.
// The returned cleanup closes the log file.
func newSession(extra ...termcaps.Option) (_ *termcaps.Session, cleanup func(), _ error) {
	cleanup = func() {}
	opts := termcaps.Options{}
	switch {
	case len(logFileFlag) > 0:
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, cleanup, errors.New(err)
		}
		cleanup = func() { _ = f.Close() }
		opts = append(opts, termcaps.SetSLogger(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}), true))
	case verboseFlag:
		opts = append(opts, termcaps.SetSLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}), true))
	}
	if !noConfigFlag {
		opts = append(opts, termcaps.UserConfig)
	}
	if len(programFlag) > 0 {
		p, ok := terminals.ParseProgram(programFlag)
		if !ok {
			cleanup()
			return nil, func() {}, errors.New(&terminals.UnknownProgramError{Name: programFlag})
		}
		opts = append(opts, termcaps.SetProgram(p))
	}
	opts = append(opts, extra...)
	s, err := termcaps.New(opts)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return s, cleanup, nil
}
