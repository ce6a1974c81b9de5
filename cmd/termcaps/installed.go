package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"github.com/srlehn/termcaps/internal/xdg"
)

func init() {
	rootCmd.AddCommand(installedCmd)
}

var installedCmd = &cobra.Command{
	Use:   `installed`,
	Short: `list installed terminal emulators`,
	Long:  `list the terminal emulators installed as XDG desktop applications and the program profile each one gets`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(installedFunc)
	},
}

const maxNameWidth = 40

func installedFunc() error {
	entries, err := xdg.InstalledTerminals()
	if err != nil {
		return err
	}
	fmt.Println(heading(`installed terminals`))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Exe, e.Program, truncate.StringWithTail(e.Name, maxNameWidth, `…`))
	}
	return w.Flush()
}
