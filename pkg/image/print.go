// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/camelcase"
	"github.com/hashicorp/go-multierror"
	"github.com/jedib0t/go-pretty/v6/table"

	bytes2 "github.com/linuxboot/am335ximg/pkg/bytes"
)

// Render prints the layout as ASCII tables: the section map followed by the
// decoded header fields.
func (l *Layout) Render(w io.Writer) {
	s := table.NewWriter()
	s.SetOutputMirror(w)
	s.SetTitle("Image layout (%s)", l.Options)
	s.AppendHeader(table.Row{"Section", "Offset", "Length", "Size"})
	for _, section := range l.Sections {
		s.AppendRow(table.Row{
			section.Name,
			fmt.Sprintf("0x%08x", section.Offset),
			fmt.Sprintf("0x%08x", section.Length),
			humanize.IBytes(section.Length),
		})
	}
	s.Render()

	if l.TOC != nil {
		renderFields(w, "TOC item", l.TOC)
	}
	if l.Settings != nil {
		renderFields(w, "CHSETTINGS section", l.Settings)
	}
	if l.GPHeader != nil {
		renderFields(w, "GP header", l.GPHeader)
	}

	if l.Problems != nil {
		p := table.NewWriter()
		p.SetOutputMirror(w)
		p.SetTitle("Problems")
		if merr, ok := l.Problems.(*multierror.Error); ok {
			for _, err := range merr.Errors {
				p.AppendRow(table.Row{err.Error()})
			}
		} else {
			p.AppendRow(table.Row{l.Problems.Error()})
		}
		p.Render()
	}
}

// renderFields prints every exported field of the structure pointed to by obj.
func renderFields(w io.Writer, title string, obj interface{}) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Field", "Value"})

	v := reflect.Indirect(reflect.ValueOf(obj))
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		t.AppendRow(table.Row{fieldLabel(field.Name), fieldValue(v.Field(i))})
	}
	t.Render()
}

// fieldLabel turns "SectionKey" into "Section Key".
func fieldLabel(name string) string {
	return strings.Join(camelcase.Split(name), " ")
}

func fieldValue(v reflect.Value) string {
	if s, ok := v.Addr().Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.Uint8:
		return fmt.Sprintf("0x%02X", v.Uint())
	case reflect.Uint32:
		return fmt.Sprintf("0x%08X", v.Uint())
	case reflect.Array:
		b := make([]byte, v.Len())
		reflect.Copy(reflect.ValueOf(b), v)
		switch {
		case bytes2.IsZeroFilled(b):
			return fmt.Sprintf("%d zero bytes", len(b))
		case bytes2.IsFilledWith(b, b[0]):
			return fmt.Sprintf("%d bytes of 0x%02X", len(b), b[0])
		}
		return fmt.Sprintf("% x", b)
	}
	return fmt.Sprintf("%v", v.Interface())
}
