// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/bytesextra"

	bytes2 "github.com/linuxboot/am335ximg/pkg/bytes"
	"github.com/linuxboot/am335ximg/pkg/chsettings"
)

// Section names used by Layout.
const (
	SectionConfigHeader = "Configuration header"
	SectionGPHeader     = "GP header"
	SectionPayload      = "Payload"
)

// Section is a named region of an image.
type Section struct {
	Name string
	bytes2.Range
}

// Layout describes the sections found in an image.
type Layout struct {
	// Options are the options the image was most likely composed with.
	Options Options

	TOC      *chsettings.TOC
	Settings *chsettings.Settings
	GPHeader *chsettings.GPHeader

	Sections []Section

	// Problems lists the deviations of the configuration header from the
	// one the image builder emits, nil if there are none.
	Problems error
}

// Payload returns the region of the payload.
func (l *Layout) Payload() bytes2.Range {
	return l.Sections[len(l.Sections)-1].Range
}

// Inspect detects the sections of an image.
//
// The configuration header is recognized by the CHSETTINGS name of its TOC
// item. The GP header carries no signature, it is assumed present if its size
// field equals the number of bytes following it.
func Inspect(data []byte) (*Layout, error) {
	r := bytesextra.NewReadWriteSeeker(data)
	l := &Layout{}
	var offset uint64

	if len(data) >= chsettings.BlockSize && chsettings.HasSignature(data) {
		block := make([]byte, chsettings.BlockSize)
		if _, err := io.ReadFull(r, block); err != nil {
			return nil, fmt.Errorf("unable to read the configuration header: %w", err)
		}
		toc, settings, err := chsettings.ParseBlock(block)
		if err != nil {
			return nil, err
		}
		l.Options.Raw = true
		l.TOC, l.Settings = toc, settings
		var problems *multierror.Error
		problems = multierror.Append(problems, toc.Validate(), settings.Validate())
		l.Problems = problems.ErrorOrNil()
		l.Sections = append(l.Sections, Section{
			Name:  SectionConfigHeader,
			Range: bytes2.Range{Offset: offset, Length: chsettings.BlockSize},
		})
		offset += chsettings.BlockSize
	}

	if rest := uint64(len(data)) - offset; rest >= chsettings.GPHeaderSize {
		var hdr chsettings.GPHeader
		if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
			return nil, fmt.Errorf("unable to read the GP header: %w", err)
		}
		if uint64(hdr.Size) == rest-chsettings.GPHeaderSize {
			l.Options.Sign = true
			l.Options.LoadAddress = hdr.LoadAddress
			l.GPHeader = &hdr
			l.Sections = append(l.Sections, Section{
				Name:  SectionGPHeader,
				Range: bytes2.Range{Offset: offset, Length: chsettings.GPHeaderSize},
			})
			offset += chsettings.GPHeaderSize
		} else if _, err := r.Seek(int64(offset), io.SeekStart); err != nil {
			return nil, err
		}
	}

	l.Sections = append(l.Sections, Section{
		Name:  SectionPayload,
		Range: bytes2.Range{Offset: offset, Length: uint64(len(data)) - offset},
	})

	if err := checkCoverage(l.Sections, uint64(len(data))); err != nil {
		return nil, err
	}
	return l, nil
}

// checkCoverage makes sure the sections tile the whole image.
func checkCoverage(sections []Section, size uint64) error {
	ranges := make(bytes2.Ranges, 0, len(sections))
	for _, s := range sections {
		ranges = append(ranges, s.Range)
	}
	if ranges.Overlaps() {
		return fmt.Errorf("overlapping sections: %s", ranges)
	}
	ranges.SortAndMerge()
	if size == 0 {
		return nil
	}
	if len(ranges) != 1 || ranges[0].Offset != 0 || ranges[0].Length != size {
		return fmt.Errorf("sections %s do not cover the image of %d bytes", ranges, size)
	}
	return nil
}
