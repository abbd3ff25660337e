// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/linuxboot/am335ximg/pkg/compression"
	"github.com/linuxboot/am335ximg/pkg/log"
)

// OutputSuffix is appended to the input file name if no output file name is
// given.
const OutputSuffix = ".img"

// OutputName returns output, or the input name with OutputSuffix appended if
// output is empty. If the payload is decompressed, the compression extension
// of the input name is replaced.
func OutputName(input, output string, opts Options) string {
	if output != "" {
		return output
	}
	if opts.Decompress {
		input = compression.TrimExtension(input)
	}
	return input + OutputSuffix
}

// ComposeFile composes the image from the payload file input and writes it
// to the file output. On failure the incomplete output file is removed, a
// partially written boot image is never left behind.
func ComposeFile(input, output string, opts Options) (err error) {
	payload, err := OpenPayload(input, opts.Decompress)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := payload.Close(); cerr != nil {
			err = multierror.Append(err, fmt.Errorf("unable to close '%s': %w", input, cerr)).ErrorOrNil()
		}
	}()

	if opts.Verbose {
		log.Infof("%s -> %s", input, output)
		if payload.Compressor != nil {
			log.Infof("Decoded %s payload", payload.Compressor.Name())
		}
	}
	return composeFile(payload, output, opts)
}

// composeFile writes the image of an opened payload to the file output.
func composeFile(payload *PayloadFile, output string, opts Options) (err error) {
	if err := checkNotSameFile(payload, output); err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("unable to create the image file '%s': %w", output, err)
	}

	w := bufio.NewWriterSize(out, copyBufferSize)
	err = Compose(w, opts, payload.Payload())
	if err == nil {
		if ferr := w.Flush(); ferr != nil {
			err = &ErrIO{Op: "write the image", Err: ferr}
		}
	}
	if cerr := out.Close(); cerr != nil && err == nil {
		err = &ErrIO{Op: "close the image", Err: cerr}
	}
	if err != nil {
		if rerr := os.Remove(output); rerr != nil {
			err = multierror.Append(err, fmt.Errorf("unable to remove the incomplete image '%s': %w", output, rerr))
		}
		return err
	}
	return nil
}

// checkNotSameFile fails if output names the payload file itself. Creating
// the output would truncate the payload before it is read.
func checkNotSameFile(payload *PayloadFile, output string) error {
	outInfo, err := os.Stat(output)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to stat the image file '%s': %w", output, err)
	}
	inInfo, err := payload.file.Stat()
	if err != nil {
		return fmt.Errorf("unable to stat the payload file '%s': %w", payload.Name, err)
	}
	if os.SameFile(inInfo, outInfo) {
		return &ErrSameFile{Input: payload.Name, Output: output}
	}
	return nil
}
