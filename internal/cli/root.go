// Package cli implements the command-line interface for spritesqueeze.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/spritesqueeze/internal/vars"
)

// Root defines global CLI flags.
type Root struct{}

// CmdVersion prints build metadata.
type CmdVersion struct{}

// Execute runs the version command.
func (c *CmdVersion) Execute(args []string) error {
	vars.Print()
	return nil
}

// Run parses arguments and executes the selected command.
func Run(args []string) error {
	var root Root

	parser := flags.NewParser(&root, flags.Default)
	parser.Name = filepath.Base(os.Args[0])

	prog := parser.Name
	if _, err := parser.AddCommand(
		"pack",
		"Pack sprites into an atlas PNG plus a descriptor file",
		fmt.Sprintf(
			`Pack a directory of PNG sprites into one atlas and a descriptor file.

Examples:
  %s pack ./sprites
  %s pack ./sprites --width 1024 --height 1024 --border true
  %s pack ./sprites --infoBody "%%n %%x %%y %%w %%h\n"`,
			prog, prog, prog,
		),
		&CmdPack{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"build",
		"Run multiple pack jobs from a config file",
		fmt.Sprintf(
			`Run a sequence of pack jobs defined in a YAML config file.

Examples:
  %s build ./my-spritesqueeze.yaml
  %s build --project ui --project icons`,
			prog, prog,
		),
		&CmdBuild{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"version",
		"Print build metadata",
		fmt.Sprintf(
			`Show build information.

Examples:
  %s version`,
			prog,
		),
		&CmdVersion{},
	); err != nil {
		return err
	}

	_, err := parser.ParseArgs(args)
	if err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	return nil
}
