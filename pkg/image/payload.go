// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/linuxboot/am335ximg/pkg/compression"
	"github.com/linuxboot/am335ximg/pkg/log"
)

// PayloadFile is a payload read from a file. Compressed files are decoded
// into memory when opened, if requested.
type PayloadFile struct {
	Name string
	// Compressor is the scheme the file was decoded with, nil for plain
	// files.
	Compressor compression.Compressor

	file   *os.File
	length uint32
	reader io.Reader
}

// OpenPayload opens the payload file and measures its length. The file is
// copied verbatim unless decompress is set and its extension names a known
// compression. The caller must Close the returned PayloadFile.
func OpenPayload(name string, decompress bool) (*PayloadFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open the payload file '%s': %w", name, err)
	}
	p := &PayloadFile{Name: name, file: f}

	var c compression.Compressor
	if decompress {
		if c = compression.FromFilename(name); c == nil {
			log.Warnf("'%s' has no known compression extension, copying it verbatim", name)
		}
	}
	if c != nil {
		encoded, err := io.ReadAll(f)
		if err != nil {
			f.Close()
			return nil, &ErrIO{Op: "read the payload", Err: err}
		}
		decoded, err := c.Decode(encoded)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("unable to decode the %s payload '%s': %w", c.Name(), name, err)
		}
		if uint64(len(decoded)) > math.MaxUint32 {
			f.Close()
			return nil, &ErrPayloadTooLarge{Size: uint64(len(decoded))}
		}
		p.Compressor = c
		p.length = uint32(len(decoded))
		p.reader = bytes.NewReader(decoded)
		return p, nil
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to determine the size of '%s': %w", name, err)
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("payload '%s' is not a regular file", name)
	}
	if uint64(fi.Size()) > math.MaxUint32 {
		f.Close()
		return nil, &ErrPayloadTooLarge{Size: uint64(fi.Size())}
	}
	p.length = uint32(fi.Size())
	p.reader = f
	return p, nil
}

// Length returns the payload length measured when the file was opened.
func (p *PayloadFile) Length() uint32 {
	return p.length
}

// Payload returns the payload to be composed.
func (p *PayloadFile) Payload() Payload {
	return Payload{Length: p.length, Reader: p.reader}
}

// Close releases the payload file.
func (p *PayloadFile) Close() error {
	return p.file.Close()
}
