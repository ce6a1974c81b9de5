package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/termcaps"
	"github.com/srlehn/termcaps/internal/procextra"
)

func init() {
	detectCmd.Flags().Int32Var(&detectPID, `pid`, 0, `detect from the environment of another process`)
	rootCmd.AddCommand(detectCmd)
}

var detectPID int32

var detectCmd = &cobra.Command{
	Use:   `detect`,
	Short: `print the detected terminal program`,
	Long:  `print the detected terminal program and the environment signal it was recognized from`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(detectFunc)
	},
}

func detectFunc() error {
	var opts []termcaps.Option
	if detectPID > 0 {
		env, err := procextra.EnvOfPID(detectPID)
		if err != nil {
			return err
		}
		opts = append(opts, termcaps.SetEnviron(env.Environ()))
	}
	s, cleanup, err := newSession(opts...)
	if err != nil {
		return err
	}
	defer cleanup()
	by := s.DetectedBy()
	if len(by) == 0 {
		by = `no signal`
	}
	fmt.Printf("%s\t(%s)\n", s.Program(), by)
	if m := s.Muxers(); len(m) > 0 {
		fmt.Printf("muxers\t%s\n", m)
	}
	return nil
}
