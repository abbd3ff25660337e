// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/am335ximg/cmds/am335xtool/commands"
	"github.com/linuxboot/am335ximg/pkg/image"
)

func writeImage(t *testing.T, opts image.Options, payload []byte) string {
	var buf bytes.Buffer
	require.NoError(t, image.Compose(&buf, opts, image.Payload{
		Length: uint32(len(payload)),
		Reader: bytes.NewReader(payload),
	}))
	path := filepath.Join(t.TempDir(), "boot.img")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestExecute(t *testing.T) {
	var out bytes.Buffer
	cmd := &Command{
		ImagePath: writeImage(t, image.Options{Raw: true, Sign: true, LoadAddress: 0x402F0400}, []byte{1, 2, 3}),
		out:       &out,
	}
	require.NoError(t, cmd.Execute(nil))
	require.Contains(t, out.String(), image.SectionGPHeader)
	require.Contains(t, out.String(), "0x402F0400")
}

func TestExecuteStrict(t *testing.T) {
	path := writeImage(t, image.Options{Raw: true}, []byte{1, 2, 3})
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[0x45] = 0x07 // Settings.Version
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var out bytes.Buffer
	cmd := &Command{ImagePath: path, out: &out}
	require.NoError(t, cmd.Execute(nil))

	cmd.Strict = true
	require.Error(t, cmd.Execute(nil))
}

func TestExecuteArgs(t *testing.T) {
	cmd := &Command{ImagePath: "boot.img"}
	var errArgs commands.ErrArgs
	err := cmd.Execute([]string{"extra"})
	require.ErrorAs(t, err, &errArgs)
	require.Contains(t, err.Error(), "am335xtool <command> --help")

	cmd.ImagePath = filepath.Join(t.TempDir(), "missing.img")
	require.ErrorIs(t, cmd.Execute(nil), os.ErrNotExist)
}
