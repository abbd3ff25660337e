// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mkam335ximg creates a boot image for the TI AM335x processor, either for
// the raw boot without a file system or for the boot from a file system.
//
// Synopsis:
//
//	mkam335ximg [-o OUTPUT] [-r] [-s ADDRESS] [-d] [-v] INPUT
//
// Options:
//
//	-h, --help             display this usage information
//	-o, --output FILE      write output to this file (default: INPUT.img)
//	-r, --raw              make a raw boot image (prepend the configuration header)
//	-s, --sign ADDRESS     add a GP header, the image is loaded at the hex ADDRESS
//	-d, --decompress       decode a compressed INPUT (.xz, .lzma, .lz4, .zst)
//	-v, --verbose          print verbose messages
//
// The input is copied verbatim unless --decompress is given.
//
// Examples:
//
//	# raw boot image loaded and executed at 0x402F0400
//	mkam335ximg -o boot.img -r -s 0x402F0400 boot.bin
//	# file system boot image
//	mkam335ximg -o MLO -s 0x402F0400 boot.bin
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/linuxboot/am335ximg/pkg/image"
	"github.com/linuxboot/am335ximg/pkg/log"
)

const description = `Generate an image for raw or file system based boot of the
TI AM335x Processor.

If no output file is indicated the input file name with a .img
suffix is used.
`

func usage(name string, fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options] INPUT\n%s\n", name, description)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// run executes the command and returns the exit code.
func run(name string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	output := fs.StringP("output", "o", "", "write output to this `file`")
	raw := fs.BoolP("raw", "r", false, "make a raw boot image")
	sign := fs.StringP("sign", "s", "", "sign the image with a GP header loading it at the hex `address`")
	decompress := fs.BoolP("decompress", "d", false, "decode a compressed input (.xz, .lzma, .lz4, .zst)")
	verbose := fs.BoolP("verbose", "v", false, "print verbose messages")
	help := fs.BoolP("help", "h", false, "display this usage information")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		usage(name, fs, stderr)
		return 1
	}
	if *help {
		usage(name, fs, stdout)
		return 0
	}
	if fs.NArg() != 1 {
		usage(name, fs, stderr)
		return 1
	}

	opts := image.Options{
		Raw:        *raw,
		Sign:       fs.Changed("sign"),
		Verbose:    *verbose,
		Decompress: *decompress,
	}
	if opts.Sign {
		addr, err := image.ParseLoadAddress(*sign)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return 1
		}
		opts.LoadAddress = addr
	}

	input := fs.Arg(0)
	if err := image.ComposeFile(input, image.OutputName(input, *output, opts), opts); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}
