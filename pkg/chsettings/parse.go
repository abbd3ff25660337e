// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chsettings

import (
	"bytes"
	"encoding/binary"

	"github.com/hashicorp/go-multierror"

	bytes2 "github.com/linuxboot/am335ximg/pkg/bytes"
)

// tocNameOffset is the offset of TOC.Name inside the configuration header.
const tocNameOffset = 0x14

// HasSignature returns true if b starts with a TOC item naming the
// CHSETTINGS section.
func HasSignature(b []byte) bool {
	if len(b) < tocNameOffset+12 {
		return false
	}
	var name Name
	name.SetString(SectionName)
	return bytes.Equal(b[tocNameOffset:tocNameOffset+12], name.Value[:])
}

// ParseBlock decodes the configuration header at the start of b. It does not
// check the field values, see TOC.Validate and Settings.Validate.
func ParseBlock(b []byte) (*TOC, *Settings, error) {
	if len(b) < BlockSize {
		return nil, nil, &ErrShortBuffer{What: "configuration header", Expected: BlockSize, Actual: len(b)}
	}
	r := bytes.NewReader(b[:BlockSize])
	var toc TOC
	if err := binary.Read(r, binary.LittleEndian, &toc); err != nil {
		return nil, nil, err
	}
	var settings Settings
	if err := binary.Read(r, binary.LittleEndian, &settings); err != nil {
		return nil, nil, err
	}
	return &toc, &settings, nil
}

// ParseGPHeader decodes the GP header at the start of b.
func ParseGPHeader(b []byte) (GPHeader, error) {
	if len(b) < GPHeaderSize {
		return GPHeader{}, &ErrShortBuffer{What: "GP header", Expected: GPHeaderSize, Actual: len(b)}
	}
	return GPHeader{
		Size:        binary.LittleEndian.Uint32(b[0:]),
		LoadAddress: binary.LittleEndian.Uint32(b[4:]),
	}, nil
}

// Validate returns all the differences between the TOC item and the one
// BuildBlock emits, or nil.
func (toc *TOC) Validate() error {
	var result *multierror.Error
	if toc.Start != SettingsOffset {
		result = multierror.Append(result, &ErrUnexpectedValue{Field: "TOC.Start", Expected: uint32(SettingsOffset), Actual: toc.Start})
	}
	if toc.Size != SettingsSize {
		result = multierror.Append(result, &ErrUnexpectedValue{Field: "TOC.Size", Expected: uint32(SettingsSize), Actual: toc.Size})
	}
	if !bytes2.IsZeroFilled(toc.Reserved[:]) {
		result = multierror.Append(result, &ErrUnexpectedFill{Field: "TOC.Reserved", Fill: 0})
	}
	var name Name
	name.SetString(SectionName)
	if toc.Name != name {
		result = multierror.Append(result, &ErrUnexpectedValue{Field: "TOC.Name", Expected: SectionName, Actual: toc.Name.String()})
	}
	if !bytes2.IsFilledWith(toc.Closing[:], TOCClosingByte) {
		result = multierror.Append(result, &ErrUnexpectedFill{Field: "TOC.Closing", Fill: TOCClosingByte})
	}
	return result.ErrorOrNil()
}

// Validate returns all the differences between the section and the one
// BuildBlock emits, or nil.
func (s *Settings) Validate() error {
	var result *multierror.Error
	if s.SectionKey != SectionKey {
		result = multierror.Append(result, &ErrUnexpectedValue{Field: "Settings.SectionKey", Expected: uint32(SectionKey), Actual: s.SectionKey})
	}
	if s.Valid != SettingsValid {
		result = multierror.Append(result, &ErrUnexpectedValue{Field: "Settings.Valid", Expected: uint8(SettingsValid), Actual: s.Valid})
	}
	if s.Version != SettingsVersion {
		result = multierror.Append(result, &ErrUnexpectedValue{Field: "Settings.Version", Expected: uint8(SettingsVersion), Actual: s.Version})
	}
	if !bytes2.IsZeroFilled(s.Reserved[:]) {
		result = multierror.Append(result, &ErrUnexpectedFill{Field: "Settings.Reserved", Fill: 0})
	}
	return result.ErrorOrNil()
}
