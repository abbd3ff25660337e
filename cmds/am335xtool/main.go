// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// am335xtool inspects and converts TI AM335x boot images.
//
// Synopsis:
//
//	am335xtool show -f IMAGE_FILE
//	am335xtool hex -f IMAGE_FILE -o HEX_FILE [--base ADDRESS]
//
// An example:
//
//	mkam335ximg -o boot.img -r -s 0x402F0400 u-boot-spl.bin
//	am335xtool show -f boot.img
//	am335xtool hex -f boot.img -o boot.hex
//
// Description:
//
//	show: Print the sections and the decoded headers of the image
//	hex:  Convert the image to the Intel HEX format for flash programmers
package main

import (
	"log"

	"github.com/jessevdk/go-flags"

	"github.com/linuxboot/am335ximg/cmds/am335xtool/commands"
	"github.com/linuxboot/am335ximg/cmds/am335xtool/commands/hex"
	"github.com/linuxboot/am335ximg/cmds/am335xtool/commands/show"
)

var (
	knownCommands = map[string]commands.Command{
		"show": &show.Command{},
		"hex":  &hex.Command{},
	}
)

func main() {
	flagsParser := flags.NewParser(nil, flags.Default)
	for commandName, command := range knownCommands {
		_, err := flagsParser.AddCommand(commandName, command.ShortDescription(), command.LongDescription(), command)
		if err != nil {
			panic(err)
		}
	}

	// parse arguments and execute the appropriate command
	if _, err := flagsParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		log.Fatal(err)
	}
}
