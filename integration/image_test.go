// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integration_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcinbor85/gohex"
	"github.com/stretchr/testify/require"

	"github.com/linuxboot/am335ximg/pkg/compression"
	"github.com/linuxboot/am335ximg/pkg/image"
)

// payloads returns named payload files written to dir: a plain one and its
// compressed variants.
func payloads(t *testing.T, dir string) (map[string]string, []byte) {
	r := rand.New(rand.NewSource(1))
	plain := make([]byte, 109*1024)
	r.Read(plain[:8*1024])

	files := map[string]string{"plain": filepath.Join(dir, "u-boot-spl.bin")}
	require.NoError(t, os.WriteFile(files["plain"], plain, 0o644))
	for _, c := range []compression.Compressor{&compression.LZ4{}, &compression.XZ{}, &compression.Zstd{}} {
		encoded, err := c.Encode(plain)
		require.NoError(t, err)
		name := filepath.Join(dir, fmt.Sprintf("u-boot-spl.bin.%s", map[string]string{"LZ4": "lz4", "XZ": "xz", "ZSTD": "zst"}[c.Name()]))
		require.NoError(t, os.WriteFile(name, encoded, 0o644))
		files[c.Name()] = name
	}
	return files, plain
}

// TestComposeInspectHex runs, for every payload and boot mode:
//
// 1. compose the image from the payload file
// 2. inspect the image and compare the detected options and payload
// 3. convert the image to Intel HEX and compare the parsed data
func TestComposeInspectHex(t *testing.T) {
	tmpDir := t.TempDir()
	files, plain := payloads(t, tmpDir)

	modes := []image.Options{
		{},
		{Raw: true},
		{Sign: true, LoadAddress: 0x402F0400},
		{Raw: true, Sign: true, LoadAddress: 0x402F0400},
	}
	for name, input := range files {
		for _, opts := range modes {
			t.Run(name+"/"+opts.String(), func(t *testing.T) {
				output := filepath.Join(t.TempDir(), "boot.img")
				composeOpts := opts
				composeOpts.Decompress = name != "plain"
				require.NoError(t, image.ComposeFile(input, output, composeOpts))

				data, err := os.ReadFile(output)
				require.NoError(t, err)
				require.Equal(t, opts.Size(uint32(len(plain))), uint64(len(data)))

				layout, err := image.Inspect(data)
				require.NoError(t, err)
				require.NoError(t, layout.Problems)
				require.Equal(t, opts, layout.Options)
				require.True(t, bytes.Equal(plain, layout.Payload().Slice(data)))

				var hex bytes.Buffer
				require.NoError(t, image.WriteIntelHex(&hex, data, 0))
				mem := gohex.NewMemory()
				require.NoError(t, mem.ParseIntelHex(&hex))
				require.Equal(t, data, mem.ToBinary(0, uint32(len(data)), 0xff))
			})
		}
	}
}
