// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"errors"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/linuxboot/am335ximg/pkg/chsettings"
	"github.com/linuxboot/am335ximg/pkg/log"
)

const copyBufferSize = 32 * 1024

// Payload is the binary wrapped by the image.
type Payload struct {
	// Length is measured once, before composing, and bounds the copy.
	Length uint32
	// Reader yields the payload bytes starting from the first one.
	Reader io.Reader
}

// Compose writes the sections selected by opts followed by the payload to w.
//
// Any error aborts the composition; whatever was written to w by then is not
// a valid image.
func Compose(w io.Writer, opts Options, p Payload) error {
	if opts.Raw {
		if opts.Verbose {
			log.Infof("Making raw boot image")
		}
		block := chsettings.BuildBlock()
		if err := writeFull(w, block[:]); err != nil {
			return &ErrIO{Op: "write the configuration header", Err: err}
		}
	}

	if opts.Sign {
		if opts.Verbose {
			log.Infof("Adding GP Header: Size = 0x%X, Location = 0x%X", p.Length, opts.LoadAddress)
		}
		hdr := chsettings.BuildGPHeader(p.Length, opts.LoadAddress)
		if err := writeFull(w, hdr[:]); err != nil {
			return &ErrIO{Op: "write the GP header", Err: err}
		}
	}

	if opts.Verbose {
		log.Infof("Copying payload: %s", humanize.IBytes(uint64(p.Length)))
	}
	return copyPayload(w, p)
}

// copyPayload copies exactly p.Length bytes and makes sure the source has
// nothing left afterwards.
func copyPayload(w io.Writer, p Payload) error {
	expected := uint64(p.Length)
	var copied uint64
	var buf []byte
	if expected > 0 {
		buf = make([]byte, min(expected, copyBufferSize))
	}
	for copied < expected {
		chunk := buf[:min(expected-copied, uint64(len(buf)))]
		n, rerr := io.ReadFull(p.Reader, chunk)
		if n > 0 {
			if err := writeFull(w, chunk[:n]); err != nil {
				return &ErrIO{Op: "write the payload", Err: err}
			}
			copied += uint64(n)
		}
		switch {
		case errors.Is(rerr, io.EOF), errors.Is(rerr, io.ErrUnexpectedEOF):
			return &ErrLengthMismatch{Expected: expected, Actual: copied}
		case rerr != nil:
			return &ErrIO{Op: "read the payload", Err: rerr}
		}
	}

	var probe [1]byte
	n, err := io.ReadFull(p.Reader, probe[:])
	switch {
	case n > 0:
		return &ErrLengthMismatch{Expected: expected, Actual: copied + uint64(n), Grown: true}
	case errors.Is(err, io.EOF):
		return nil
	default:
		return &ErrIO{Op: "read the payload", Err: err}
	}
}

// writeFull reports a short write even if the writer did not.
func writeFull(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}
	return nil
}
