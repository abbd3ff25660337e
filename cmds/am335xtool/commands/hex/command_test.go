// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcinbor85/gohex"
	"github.com/stretchr/testify/require"

	"github.com/linuxboot/am335ximg/cmds/am335xtool/commands"
)

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "boot.img")
	data := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x04, 0x2F, 0x40, 0xAA}
	require.NoError(t, os.WriteFile(input, data, 0o644))
	output := filepath.Join(dir, "boot.hex")

	cmd := &Command{ImagePath: input, OutputPath: output, Base: "0x08000000"}
	require.NoError(t, cmd.Execute(nil))

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	mem := gohex.NewMemory()
	require.NoError(t, mem.ParseIntelHex(f))
	segments := mem.GetDataSegments()
	require.Len(t, segments, 1)
	require.Equal(t, uint32(0x08000000), segments[0].Address)
	require.Equal(t, data, segments[0].Data)
}

func TestExecuteBadBase(t *testing.T) {
	cmd := &Command{ImagePath: "boot.img", OutputPath: "boot.hex", Base: "flash"}
	var errArgs commands.ErrArgs
	err := cmd.Execute(nil)
	require.ErrorAs(t, err, &errArgs)
	require.True(t, strings.Contains(err.Error(), "flash"))
}

func TestExecuteRemovesOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "huge.img")
	require.NoError(t, os.WriteFile(input, make([]byte, 32), 0o644))
	output := filepath.Join(dir, "huge.hex")

	cmd := &Command{ImagePath: input, OutputPath: output, Base: "fffffff0"}
	require.Error(t, cmd.Execute(nil))
	require.NoFileExists(t, output)
}
