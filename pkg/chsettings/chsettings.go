// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chsettings builds the headers which the TI AM335x boot ROM expects
// in front of a raw boot image: the 512 byte configuration header holding the
// CHSETTINGS section and the GP header.
//
// See "AM335x Technical Reference Manual", section "Initialization",
// chapter "Configuration Header".
package chsettings

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Layout constants of the configuration header.
const (
	// BlockSize is the size of the configuration header.
	BlockSize = 512
	// TOCSize is the size of one table of contents item.
	TOCSize = 64
	// SettingsOffset is the offset of the CHSETTINGS section inside the
	// configuration header.
	SettingsOffset = 0x40
	// SettingsSize is the section size the boot ROM expects in the TOC item.
	// It is a protocol constant and intentionally differs from the size of
	// the Settings structure.
	SettingsSize = 0xE1
	// SectionName is the name of the only section we emit.
	SectionName = "CHSETTINGS"

	// SectionKey is the key identifying the CHSETTINGS section.
	SectionKey = 0xC0C0C0C1
	// SettingsValid marks the section content as valid.
	SettingsValid = 0x1
	// SettingsVersion is the version of the section layout.
	SettingsVersion = 0x1

	// GPHeaderSize is the size of the GP header.
	GPHeaderSize = 8
)

// TOCClosingByte fills the closing part of a TOC item.
const TOCClosingByte = 0xFF

// Name wraps around byte array to give us more control over how section names
// are serialized.
type Name struct {
	Value [12]uint8
}

func (n *Name) String() string {
	return strings.TrimRight(string(n.Value[:]), "\x00")
}

// SetString stores s into the name, NUL padded.
func (n *Name) SetString(s string) error {
	if len(s) > len(n.Value) {
		return &ErrNameTooLong{Name: s, Max: len(n.Value)}
	}
	n.Value = [12]uint8{}
	copy(n.Value[:], s)
	return nil
}

// TOC is a table of contents item of the configuration header.
type TOC struct {
	Start    uint32
	Size     uint32
	Reserved [12]uint8
	Name     Name
	Closing  [32]uint8
}

// Settings is the CHSETTINGS section. It spans the rest of the configuration
// header after the TOC item.
type Settings struct {
	SectionKey uint32
	Valid      uint8
	Version    uint8
	Reserved   [BlockSize - TOCSize - 6]uint8
}

// Block is the raw content of the configuration header.
type Block [BlockSize]byte

// NewTOC returns a TOC item describing a section named name.
func NewTOC(name string, start, size uint32) (TOC, error) {
	toc := TOC{
		Start: start,
		Size:  size,
	}
	if err := toc.Name.SetString(name); err != nil {
		return TOC{}, err
	}
	for i := range toc.Closing {
		toc.Closing[i] = TOCClosingByte
	}
	return toc, nil
}

// NewSettings returns a valid CHSETTINGS section.
func NewSettings() Settings {
	return Settings{
		SectionKey: SectionKey,
		Valid:      SettingsValid,
		Version:    SettingsVersion,
	}
}

// BuildBlock returns the configuration header with a single CHSETTINGS
// section. Every byte not belonging to a field is zero.
func BuildBlock() Block {
	toc, err := NewTOC(SectionName, SettingsOffset, SettingsSize)
	if err != nil {
		panic(err)
	}
	settings := NewSettings()

	buf := bytes.NewBuffer(make([]byte, 0, BlockSize))
	for _, record := range []interface{}{&toc, &settings} {
		if err := binary.Write(buf, binary.LittleEndian, record); err != nil {
			panic(err)
		}
	}
	if buf.Len() != BlockSize {
		panic(fmt.Sprintf("configuration header is %d bytes, expected %d", buf.Len(), BlockSize))
	}

	var block Block
	copy(block[:], buf.Bytes())
	return block
}

// GPHeader is the header announcing the size and the load address of the
// image to the boot ROM.
type GPHeader struct {
	Size        uint32
	LoadAddress uint32
}

// Bytes returns the on-disk representation of the header.
func (h GPHeader) Bytes() [GPHeaderSize]byte {
	var b [GPHeaderSize]byte
	binary.LittleEndian.PutUint32(b[0:], h.Size)
	binary.LittleEndian.PutUint32(b[4:], h.LoadAddress)
	return b
}

// BuildGPHeader returns the GP header for a payload of the given length to be
// loaded at loadAddress.
func BuildGPHeader(length, loadAddress uint32) [GPHeaderSize]byte {
	return GPHeader{Size: length, LoadAddress: loadAddress}.Bytes()
}
