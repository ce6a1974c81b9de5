package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/srlehn/termcaps/internal/errors"
)

func init() {
	reportCmd.Flags().BoolVar(&reportNoSize, `no-size`, false, `don't probe the terminal size`)
	reportCmd.Flags().BoolVar(&reportYAML, `yaml`, false, `print the capability profile as yaml`)
	rootCmd.AddCommand(reportCmd)
}

var (
	reportNoSize bool
	reportYAML   bool
)

var reportCmd = &cobra.Command{
	Use:   `report`,
	Short: `list the resolved capabilities`,
	Long:  `list the detected program, multiplexers, capability and mouse profiles and the terminal size`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(reportFunc)
	},
}

func reportFunc() error {
	s, cleanup, err := newSession()
	if err != nil {
		return err
	}
	defer cleanup()
	if reportYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(s.Capabilities()); err != nil {
			return errors.New(err)
		}
		if err := enc.Close(); err != nil {
			return errors.New(err)
		}
		return nil
	}
	fmt.Println(heading(`termcaps report`))
	fmt.Println()
	return s.Report(os.Stdout, !reportNoSize)
}
