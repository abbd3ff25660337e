// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chsettings

import (
	"fmt"
)

// ErrNameTooLong means a section name does not fit into a TOC item.
type ErrNameTooLong struct {
	Name string
	Max  int
}

func (err *ErrNameTooLong) Error() string {
	return fmt.Sprintf("section name %q is longer than %d bytes", err.Name, err.Max)
}

// ErrShortBuffer means there are not enough bytes to parse a header.
type ErrShortBuffer struct {
	What     string
	Expected int
	Actual   int
}

func (err *ErrShortBuffer) Error() string {
	return fmt.Sprintf("%s: need %d bytes, got %d", err.What, err.Expected, err.Actual)
}

// ErrUnexpectedValue means a header field does not hold the value the boot
// ROM expects.
type ErrUnexpectedValue struct {
	Field    string
	Expected interface{}
	Actual   interface{}
}

func (err *ErrUnexpectedValue) Error() string {
	if _, ok := err.Expected.(string); ok {
		return fmt.Sprintf("field %s: expected %q, got %q", err.Field, err.Expected, err.Actual)
	}
	return fmt.Sprintf("field %s: expected %#x, got %#x", err.Field, err.Expected, err.Actual)
}

// ErrUnexpectedFill means a padding area contains a byte other than the fill
// byte.
type ErrUnexpectedFill struct {
	Field string
	Fill  byte
}

func (err *ErrUnexpectedFill) Error() string {
	return fmt.Sprintf("field %s: expected to be filled with %#02x", err.Field, err.Fill)
}
