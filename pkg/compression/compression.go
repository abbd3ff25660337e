// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compression implements decoding of compressed payloads.
//
// Build pipelines often keep the bootloader binary compressed. On request the
// image builder decodes such payloads before wrapping them.
package compression

import (
	"path/filepath"
	"strings"
)

// Compressor defines a single compression scheme (such as LZ4).
type Compressor interface {
	// Name is typically the name of a class.
	Name() string

	// Decode and Encode obey "x == Decode(Encode(x))".
	Decode(encodedData []byte) ([]byte, error)
	Encode(decodedData []byte) ([]byte, error)
}

var byExtension = map[string]Compressor{
	".lz4":  &LZ4{},
	".xz":   &XZ{},
	".lzma": &LZMA{},
	".zst":  &Zstd{},
}

// FromFilename returns the Compressor matching the extension of name, or nil
// if the file is not known to be compressed.
func FromFilename(name string) Compressor {
	return byExtension[strings.ToLower(filepath.Ext(name))]
}

// TrimExtension removes the compression extension from name, if any.
func TrimExtension(name string) string {
	if FromFilename(name) == nil {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
