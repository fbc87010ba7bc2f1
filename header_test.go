// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import (
	"os"
	"testing"

	"github.com/saferwall/dwg/internal/log"
)

// bitWriter packs MSB-first bits into bytes, mirroring BitStream's read
// order, so fixtures can be built field-by-field instead of byte-by-byte.
type bitWriter struct {
	buf  []byte
	nbit uint
}

func (w *bitWriter) writeBits(v uint64, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		bit := byte((v >> uint(i)) & 1)
		byteIdx := w.nbit / 8
		for int(byteIdx) >= len(w.buf) {
			w.buf = append(w.buf, 0)
		}
		bitIdx := 7 - (w.nbit % 8)
		w.buf[byteIdx] |= bit << bitIdx
		w.nbit++
	}
}

// bd00Zero writes a BD field using the "11" zero-value tag.
func (w *bitWriter) bd00Zero() { w.writeBits(0b11, 2) }

// bl10Zero writes a BL field using the "10" zero-value tag.
func (w *bitWriter) bl10Zero() { w.writeBits(0b10, 2) }

// bsZero writes a BS field using the "10" zero-value tag.
func (w *bitWriter) bsZero() { w.writeBits(0b10, 2) }

// tvEmpty writes a BS-length-prefixed empty string (length 0 via tag "10").
func (w *bitWriter) tvEmpty() { w.bsZero() }

func newTestHelper() *log.Helper {
	logger := log.NewStdLogger(os.Stdout)
	return log.NewHelper(log.NewFilter(logger, log.FilterLevel(log.LevelError)))
}

func TestDecodeHeaderVariablesAllZeroFields(t *testing.T) {
	w := &bitWriter{}

	for i := 0; i < 3; i++ { // Insbase
		w.bd00Zero()
	}
	for i := 0; i < 3; i++ { // Extmin
		w.bd00Zero()
	}
	for i := 0; i < 3; i++ { // Extmax
		w.bd00Zero()
	}
	for i := 0; i < 2; i++ { // Limmin
		w.bd00Zero()
	}
	for i := 0; i < 2; i++ { // Limmax
		w.bd00Zero()
	}
	for i := 0; i < 2; i++ { // ELEVATION/THICKNESS skip
		w.bd00Zero()
	}
	w.bd00Zero() // Ltscale
	w.bd00Zero() // Textsize
	for i := 0; i < 4; i++ { // skip
		w.bd00Zero()
	}
	w.bd00Zero() // Dimscale
	w.bd00Zero() // Dimtxt
	for i := 0; i < 2; i++ { // skipBL(2)
		w.bl10Zero()
	}
	w.bsZero() // Pdmode
	w.bd00Zero() // Pdsize
	w.bsZero() // Pline_gen
	w.bsZero() // Measurement
	w.tvEmpty() // Celtype
	w.tvEmpty() // Textstyle
	w.bsZero()  // Cecolor index (R2000: plain BS, no extension)
	for i := 0; i < 3; i++ { // Ucsorg
		w.bd00Zero()
	}
	for i := 0; i < 3; i++ { // Ucsxdir
		w.bd00Zero()
	}
	for i := 0; i < 3; i++ { // Ucsydir
		w.bd00Zero()
	}

	// Handseed: a null handle (code 0, size 0, no magnitude bytes).
	w.writeBits(0x00, 8)

	bs := NewBitStream(w.buf)
	doc := newDocument()
	ctx := newDecodeContext(VersionR2000, newTestHelper(), &Options{}, doc)

	hv, err := decodeHeaderVariables(ctx, bs)
	if err != nil {
		t.Fatalf("decodeHeaderVariables() failed: %v", err)
	}
	if hv.Ltscale != 0 || hv.Textsize != 0 || hv.Dimscale != 0 || hv.Dimtxt != 0 {
		t.Errorf("decodeHeaderVariables() scalar fields got %+v, want all zero", hv)
	}
	if hv.Celtype != "" || hv.Textstyle != "" {
		t.Errorf("decodeHeaderVariables() string fields got Celtype=%q Textstyle=%q, want empty", hv.Celtype, hv.Textstyle)
	}
	if hv.Cecolor.Index != 0 {
		t.Errorf("decodeHeaderVariables() Cecolor.Index got %d, want 0", hv.Cecolor.Index)
	}
	if !hv.Handseed.IsNull() {
		t.Errorf("decodeHeaderVariables() Handseed got %+v, want the null handle", hv.Handseed)
	}
}

func TestDecodeHeaderVariablesTruncatedStreamErrors(t *testing.T) {
	bs := NewBitStream([]byte{})
	doc := newDocument()
	ctx := newDecodeContext(VersionR2000, newTestHelper(), &Options{}, doc)

	if _, err := decodeHeaderVariables(ctx, bs); err == nil {
		t.Error("decodeHeaderVariables() on an empty stream, got nil error, want an unexpected-EOF error")
	}
}
