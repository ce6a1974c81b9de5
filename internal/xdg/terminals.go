// Package xdg finds terminal emulators installed as XDG desktop applications.
package xdg

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkoesters/xdg/basedir"
	"github.com/rkoesters/xdg/desktop"
	"golang.org/x/exp/slices"

	"github.com/srlehn/termcaps/terminals"
)

// Installed is a desktop entry in the TerminalEmulator category.
type Installed struct {
	Name    string
	Exe     string // base name of the executable
	File    string
	Program terminals.Program
}

// executables of programs whose name differs from the Program name
var exeAliases = map[string]terminals.Program{
	`gnome-terminal`: terminals.VTE,
	`kgx`:            terminals.VTE, // GNOME Console
	`ptyxis`:         terminals.VTE,
	`tilix`:          terminals.VTE,
	`terminator`:     terminals.VTE,
	`xfce4-terminal`: terminals.VTE,
	`wezterm-gui`:    terminals.WezTerm,
	`code`:           terminals.VSCode,
	`uxterm`:         terminals.XTerm,
}

// ProgramOfExe maps an executable name to the Program it runs.
func ProgramOfExe(exe string) terminals.Program {
	exe = strings.TrimSuffix(filepath.Base(exe), `.exe`)
	if p, ok := exeAliases[exe]; ok {
		return p
	}
	if p, ok := terminals.ParseProgram(exe); ok {
		return p
	}
	return terminals.Unknown
}

// DataDirs returns the XDG data directories, user directory first.
func DataDirs() []string {
	var dirs []string
	if len(basedir.DataHome) > 0 {
		dirs = append(dirs, basedir.DataHome)
	}
	return append(dirs, basedir.DataDirs...)
}

// InstalledTerminals lists the terminal emulator desktop entries below
// the applications directory of each of dataDirs, sorted by executable.
// Without dataDirs the XDG data directories are searched.
func InstalledTerminals(dataDirs ...string) ([]Installed, error) {
	if len(dataDirs) == 0 {
		dataDirs = DataDirs()
	}
	var entries []Installed
	seen := make(map[string]struct{})
	var walkDirFunc fs.WalkDirFunc = func(filename string, d fs.DirEntry, err error) error {
		if err != nil || d == nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(filename, `.desktop`) {
			return nil
		}
		// user entries shadow system ones with the same id
		id := filepath.Base(filename)
		if _, ok := seen[id]; ok {
			return nil
		}
		f, err := os.Open(filename)
		if err != nil {
			return nil
		}
		defer f.Close()
		entry, err := desktop.New(f)
		if err != nil || entry == nil || entry.Hidden || entry.Type != desktop.Application {
			return nil
		}
		if !slices.Contains(entry.Categories, `TerminalEmulator`) {
			return nil
		}
		seen[id] = struct{}{}
		var exe string
		if fields := strings.Fields(entry.Exec); len(fields) > 0 {
			exe = filepath.Base(fields[0])
		}
		entries = append(entries, Installed{
			Name:    entry.Name,
			Exe:     exe,
			File:    filename,
			Program: ProgramOfExe(exe),
		})
		return nil
	}
	for _, dataDir := range dataDirs {
		_ = filepath.WalkDir(filepath.Join(dataDir, `applications`), walkDirFunc)
	}
	slices.SortStableFunc(entries, func(a, b Installed) int { return strings.Compare(a.Exe, b.Exe) })
	return entries, nil
}
