// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	bytes2 "github.com/linuxboot/am335ximg/pkg/bytes"
	"github.com/linuxboot/am335ximg/pkg/chsettings"
)

func TestInspectRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xea, 0x00, 0x00, 0x12}, 64)
	for _, opts := range allOptions(0x402F0400) {
		t.Run(opts.String(), func(t *testing.T) {
			out := compose(t, opts, payload)

			l, err := Inspect(out)
			require.NoError(t, err)
			require.Equal(t, opts, l.Options)
			require.NoError(t, l.Problems)
			require.Equal(t, opts.Raw, l.TOC != nil)
			require.Equal(t, opts.Sign, l.GPHeader != nil)
			require.Equal(t, bytes2.Range{Offset: opts.HeaderSize(), Length: uint64(len(payload))}, l.Payload())
			require.Equal(t, payload, l.Payload().Slice(out))
		})
	}
}

func TestInspectEmptyPayload(t *testing.T) {
	out := compose(t, Options{Raw: true, Sign: true, LoadAddress: 0x402F0400}, nil)
	l, err := Inspect(out)
	require.NoError(t, err)
	require.Len(t, l.Sections, 3)
	require.Equal(t, uint64(0), l.Payload().Length)

	l, err = Inspect(nil)
	require.NoError(t, err)
	require.Equal(t, Options{}, l.Options)
	require.Len(t, l.Sections, 1)
}

func TestInspectProblems(t *testing.T) {
	out := compose(t, Options{Raw: true}, []byte{1, 2, 3})
	out[0x04] = 0xd6 // TOC.Size as the size of the C structure
	out[0x44] = 0x00 // Settings.Valid

	l, err := Inspect(out)
	require.NoError(t, err)
	require.True(t, l.Options.Raw)
	var merr *multierror.Error
	require.ErrorAs(t, l.Problems, &merr)
	require.Len(t, merr.Errors, 2)

	var rendered strings.Builder
	l.Render(&rendered)
	require.Contains(t, rendered.String(), "TOC.Size")
	require.Contains(t, rendered.String(), "Settings.Valid")
}

func TestRender(t *testing.T) {
	out := compose(t, Options{Raw: true, Sign: true, LoadAddress: 0x402F0400}, make([]byte, 2048))
	l, err := Inspect(out)
	require.NoError(t, err)

	var rendered strings.Builder
	l.Render(&rendered)
	s := rendered.String()
	for _, expected := range []string{
		SectionConfigHeader, SectionGPHeader, SectionPayload,
		"Section Key", "0xC0C0C0C1",
		"Load Address", "0x402F0400",
		chsettings.SectionName,
		"32 bytes of 0xFF",
		"2.0 KiB",
	} {
		require.Contains(t, s, expected)
	}
	require.NotContains(t, s, "Problems")
}

func TestFieldLabel(t *testing.T) {
	require.Equal(t, "Section Key", fieldLabel("SectionKey"))
	require.Equal(t, "Load Address", fieldLabel("LoadAddress"))
	require.Equal(t, "Start", fieldLabel("Start"))
}
