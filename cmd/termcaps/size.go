package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/termcaps/internal/logx"
	"github.com/srlehn/termcaps/size"
)

func init() {
	sizeCmd.Flags().BoolVar(&sizeStrict, `strict`, false, `fail instead of assuming 80x24`)
	sizeCmd.Flags().BoolVarP(&sizeWatch, `watch`, `w`, false, `print the size again on every resize`)
	rootCmd.AddCommand(sizeCmd)
}

var (
	sizeStrict bool
	sizeWatch  bool
)

var fallbackSize = size.Size{Width: 80, Height: 24}

var sizeCmd = &cobra.Command{
	Use:   `size`,
	Short: `print the terminal size in cells`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(sizeFunc)
	},
}

func sizeFunc() error {
	s, cleanup, err := newSession()
	if err != nil {
		return err
	}
	defer cleanup()
	probe := func() error {
		sz, err := s.Size()
		if err != nil {
			if sizeStrict {
				return err
			}
			logx.IsErr(err, s, slog.LevelWarn)
			fmt.Fprintf(os.Stderr, "size unavailable (%v), assuming %s\n", err, fallbackSize)
			sz = fallbackSize
		}
		fmt.Println(sz)
		return nil
	}
	if err := probe(); err != nil || !sizeWatch {
		return err
	}
	resized, stop, err := size.Watch()
	if err != nil {
		return err
	}
	defer stop()
	for range resized {
		if err := probe(); err != nil {
			return err
		}
	}
	return nil
}
