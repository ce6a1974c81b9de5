package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/termcaps/mouse"
)

func init() {
	mouseCmd.Flags().BoolVar(&mouseRaw, `raw`, false, `write the enable sequence instead of printing it quoted`)
	rootCmd.AddCommand(mouseCmd)
}

var mouseRaw bool

var mouseCmd = &cobra.Command{
	Use:   `mouse`,
	Short: `show the mouse enable sequence`,
	Long:  `show the sequence that enables the preferred mouse protocol and bracketed paste`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(mouseFunc)
	},
}

func mouseFunc() error {
	s, cleanup, err := newSession()
	if err != nil {
		return err
	}
	defer cleanup()
	if mouseRaw {
		return s.EnableMouse(os.Stdout)
	}
	var buf bytes.Buffer
	if err := s.EnableMouse(&buf); err != nil {
		return err
	}
	fmt.Printf("protocol\t%s\n", s.Mouse().Preferred)
	fmt.Printf("enable\t%q\n", buf.String())
	fmt.Printf("disable\t%q\n", mouse.DisableSequence())
	return nil
}
