// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package image composes boot images for the TI AM335x boot ROM.
//
// An image consists of up to three sections, always in this order:
//
//	configuration header (512 bytes, raw boot only)
//	GP header            (8 bytes, signed images only)
//	payload              (verbatim)
//
// Raw boot reads the image directly from a storage device, without a file
// system. File system boot (the "MLO" file) omits the configuration header.
package image

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linuxboot/am335ximg/pkg/chsettings"
)

// Options selects the sections of the image. It is resolved once from the
// command line and never modified afterwards.
type Options struct {
	// Raw prepends the configuration header.
	Raw bool
	// Sign prepends the GP header.
	Sign bool
	// LoadAddress is the address the boot ROM loads the payload to. It is
	// only used if Sign is set.
	LoadAddress uint32
	// Verbose enables progress messages.
	Verbose bool
	// Decompress decodes a compressed payload file, selected by its
	// extension, before it is wrapped. Only files are decoded, Compose
	// always copies the payload verbatim.
	Decompress bool
}

func (opts Options) String() string {
	var modes []string
	if opts.Raw {
		modes = append(modes, "raw")
	}
	if opts.Sign {
		modes = append(modes, fmt.Sprintf("signed@%#08x", opts.LoadAddress))
	}
	if len(modes) == 0 {
		return "plain"
	}
	return strings.Join(modes, ",")
}

// HeaderSize returns the number of bytes preceding the payload.
func (opts Options) HeaderSize() uint64 {
	var size uint64
	if opts.Raw {
		size += chsettings.BlockSize
	}
	if opts.Sign {
		size += chsettings.GPHeaderSize
	}
	return size
}

// Size returns the size of the image composed from a payload of the given
// length.
func (opts Options) Size(length uint32) uint64 {
	return opts.HeaderSize() + uint64(length)
}

// ParseLoadAddress parses a hexadecimal 32 bit address, with or without the
// 0x prefix.
func ParseLoadAddress(s string) (uint32, error) {
	digits := strings.TrimSpace(s)
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	addr, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, &ErrInvalidAddress{Address: s, Err: err}
	}
	return uint32(addr), nil
}
