// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marcinbor85/gohex"
	"github.com/stretchr/testify/require"
)

func TestWriteIntelHex(t *testing.T) {
	out := compose(t, Options{Raw: true, Sign: true, LoadAddress: 0x402F0400}, []byte{0xAA, 0xBB})

	var buf bytes.Buffer
	require.NoError(t, WriteIntelHex(&buf, out, 0x08000000))
	require.True(t, strings.HasPrefix(buf.String(), ":"))
	require.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), ":00000001FF"))

	mem := gohex.NewMemory()
	require.NoError(t, mem.ParseIntelHex(&buf))
	segments := mem.GetDataSegments()
	require.Len(t, segments, 1)
	require.Equal(t, uint32(0x08000000), segments[0].Address)
	require.Equal(t, out, segments[0].Data)
}

func TestWriteIntelHexOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteIntelHex(&buf, make([]byte, 16), 0xfffffff8))
	require.NoError(t, WriteIntelHex(&buf, make([]byte, 8), 0xffff0000))
}
