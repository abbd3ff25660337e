// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"fmt"
	"io"
	"os"

	"github.com/linuxboot/am335ximg/cmds/am335xtool/commands"
	"github.com/linuxboot/am335ximg/pkg/image"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	ImagePath string `description:"path to the boot image" required:"true" short:"f" long:"image"`
	Strict    bool   `description:"fail if the configuration header differs from the expected one" long:"strict"`

	out io.Writer
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "print the sections and the headers of a boot image"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return `The configuration header is detected by its CHSETTINGS TOC item.
The GP header is detected if its size field matches the length of the rest of the image.`
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	data, err := commands.ReadImage(cmd.ImagePath)
	if err != nil {
		return err
	}

	layout, err := image.Inspect(data)
	if err != nil {
		return fmt.Errorf("unable to inspect the image: %w", err)
	}

	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	layout.Render(out)

	if cmd.Strict && layout.Problems != nil {
		return fmt.Errorf("the configuration header is not valid: %w", layout.Problems)
	}
	return nil
}
