// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"fmt"
	"math"
)

// ErrIO means reading the payload or writing the image failed. The output is
// incomplete and must not be used.
type ErrIO struct {
	Op  string
	Err error
}

func (err *ErrIO) Error() string {
	return fmt.Sprintf("unable to %s: %v", err.Op, err.Err)
}

func (err *ErrIO) Unwrap() error {
	return err.Err
}

// ErrLengthMismatch means the payload source did not provide exactly the
// number of bytes measured before the image was composed.
type ErrLengthMismatch struct {
	Expected uint64
	Actual   uint64
	// Grown is set if the source still had data after Expected bytes; Actual
	// is then a lower bound.
	Grown bool
}

func (err *ErrLengthMismatch) Error() string {
	if err.Grown {
		return fmt.Sprintf("payload grew while being copied: expected %d bytes, got more", err.Expected)
	}
	return fmt.Sprintf("payload shrank while being copied: expected %d bytes, got %d", err.Expected, err.Actual)
}

// ErrPayloadTooLarge means the payload size does not fit into the 32 bit
// size field of the GP header.
type ErrPayloadTooLarge struct {
	Size uint64
}

func (err *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("payload of %d bytes exceeds the maximum of %d bytes", err.Size, uint64(math.MaxUint32))
}

// ErrInvalidAddress means the load address could not be parsed.
type ErrInvalidAddress struct {
	Address string
	Err     error
}

func (err *ErrInvalidAddress) Error() string {
	return fmt.Sprintf("invalid load address %q: %v", err.Address, err.Err)
}

func (err *ErrInvalidAddress) Unwrap() error {
	return err.Err
}

// ErrSameFile means the output file is the payload file.
type ErrSameFile struct {
	Input  string
	Output string
}

func (err *ErrSameFile) Error() string {
	return fmt.Sprintf("the image file '%s' is the payload file '%s'", err.Output, err.Input)
}
