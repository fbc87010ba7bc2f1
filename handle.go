// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "fmt"

// Handle is a composite object identifier: a reference-semantics code
// nibble, an encoded-byte-count size nibble (0-8), and up to a 64-bit
// magnitude.
type Handle struct {
	Code  byte
	Size  byte
	Value uint64
}

// IsNull reports whether h is the null handle (size == 0).
func (h Handle) IsNull() bool { return h.Size == 0 }

// String renders the handle's magnitude as hexadecimal, the form the DXF
// writer emits for handle-typed group codes.
func (h Handle) String() string { return fmt.Sprintf("%X", h.Value) }

// Handle reference codes and their absolute-ref arithmetic, per §4.8.
const (
	handleCodeOwnerPlusOne  = 0x06
	handleCodeOwnerMinusOne = 0x08
	handleCodeOwnerPlus     = 0x0A
	handleCodeOwnerMinus    = 0x0C
)

// absoluteRef computes §4.8's absolute-ref rule given the owning object's
// handle value and a field-level handle reference just read from the
// stream.
func absoluteRef(ownerValue uint64, h Handle) uint64 {
	switch h.Code {
	case handleCodeOwnerPlusOne:
		return ownerValue + 1
	case handleCodeOwnerMinusOne:
		return ownerValue - 1
	case handleCodeOwnerPlus:
		return ownerValue + h.Value
	case handleCodeOwnerMinus:
		return ownerValue - h.Value
	default:
		return h.Value
	}
}

// ObjectIndex identifies an Object by its position in Document.Objects.
type ObjectIndex = int

// noObjectIndex marks an unresolved/unset ObjectIndex.
const noObjectIndex ObjectIndex = -1

// Reference is a single handle cross-reference discovered while decoding an
// object; HandleResolver binds it to an owning Object's index after the
// full object map has been walked.
type Reference struct {
	HandleRef   Handle
	AbsoluteRef uint64
	BoundObject ObjectIndex // noObjectIndex until resolved, or never found
}

// Color is the CMC color encoding: an indexed color plus, starting with
// R2004, an optional true-color/name/transparency extension.
type Color struct {
	Index         uint16
	RGB           uint32
	Name          string
	BookName      string
	Transparency  uint32
	HasTrueColor  bool
	HasName       bool
	HasTransparen bool
}

// CMC reads a color value: a BS index, and in R2004+ files, when the index's
// high bit is set, an RGB value and a flags byte selecting an optional color
// name and book name. Transparency is not read; Color.Transparency stays 0.
func (ctx *decodeContext) CMC(bs *BitStream) (Color, error) {
	idx, err := bs.BS()
	if err != nil {
		return Color{}, err
	}
	c := Color{Index: idx}
	if !ctx.version.atLeast(VersionR2004) {
		return c, nil
	}
	if idx&0x8000 == 0 {
		return c, nil
	}
	rgb, err := bs.BL()
	if err != nil {
		return Color{}, err
	}
	c.RGB = rgb
	c.HasTrueColor = true

	flags, err := bs.RC()
	if err != nil {
		return Color{}, err
	}
	if flags&1 != 0 {
		name, err := bs.TV()
		if err != nil {
			return Color{}, err
		}
		c.Name = name
		c.HasName = true
	}
	if flags&2 != 0 {
		book, err := bs.TV()
		if err != nil {
			return Color{}, err
		}
		c.BookName = book
	}
	return c, nil
}
