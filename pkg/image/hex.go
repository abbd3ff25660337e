// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"fmt"
	"io"
	"math"

	"github.com/marcinbor85/gohex"
)

// HexLineLength is the number of data bytes per Intel HEX record.
const HexLineLength = 16

// WriteIntelHex writes data in the Intel HEX format, placed at the address
// base. Flash programmers use it to put a raw boot image onto the boot
// device.
func WriteIntelHex(w io.Writer, data []byte, base uint32) error {
	if uint64(base)+uint64(len(data)) > math.MaxUint32+1 {
		return fmt.Errorf("image of %d bytes at %#08x exceeds the 32 bit address space", len(data), base)
	}
	mem := gohex.NewMemory()
	if len(data) != 0 {
		if err := mem.AddBinary(base, data); err != nil {
			return err
		}
	}
	return mem.DumpIntelHex(w, HexLineLength)
}
