// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"bufio"
	"fmt"
	"os"

	"github.com/linuxboot/am335ximg/cmds/am335xtool/commands"
	"github.com/linuxboot/am335ximg/pkg/image"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	ImagePath  string `description:"path to the boot image" required:"true" short:"f" long:"image"`
	OutputPath string `description:"path to the Intel HEX file to write" required:"true" short:"o" long:"output"`
	Base       string `description:"hex address the image is placed at" long:"base" default:"0"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "convert a boot image to the Intel HEX format"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return ""
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) (err error) {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	base, err := image.ParseLoadAddress(cmd.Base)
	if err != nil {
		return commands.ErrArgs{Err: err}
	}

	data, err := commands.ReadImage(cmd.ImagePath)
	if err != nil {
		return err
	}

	file, err := os.Create(cmd.OutputPath)
	if err != nil {
		return fmt.Errorf("unable to create the HEX file '%s': %w", cmd.OutputPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close the HEX file '%s': %w", cmd.OutputPath, cerr)
		}
		if err != nil {
			os.Remove(cmd.OutputPath)
		}
	}()

	w := bufio.NewWriter(file)
	if err := image.WriteIntelHex(w, data, base); err != nil {
		return fmt.Errorf("unable to write the HEX file: %w", err)
	}
	return w.Flush()
}
