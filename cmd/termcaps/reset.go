package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   `reset`,
	Short: `turn off all mouse modes and bracketed paste`,
	Long:  `turn off all mouse modes and bracketed paste, e.g. after a crashed program left them on`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(resetFunc)
	},
}

func resetFunc() error {
	s, cleanup, err := newSession()
	if err != nil {
		return err
	}
	defer cleanup()
	return s.DisableMouse(os.Stdout)
}
