// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "testing"

func (w *bitWriter) rc(v byte) { w.writeBits(uint64(v), 8) }
func (w *bitWriter) rs(v uint16) {
	w.rc(byte(v))
	w.rc(byte(v >> 8))
}
func (w *bitWriter) ms(v uint16) { w.rs(v) } // caller keeps v < 0x8000
func (w *bitWriter) bsLiteralRC(v byte) {
	w.writeBits(0b01, 2)
	w.rc(v)
}
func (w *bitWriter) nullHandle() { w.rc(0x00) }
func (w *bitWriter) bit(v int)   { w.writeBits(uint64(v), 1) }
func (w *bitWriter) dd00Default() { w.writeBits(0b00, 2) }

func TestObjectDecoderClassify(t *testing.T) {
	reg := newClassRegistry()
	doc := newDocument()
	reg.add(ClassEntry{Number: 500, DxfName: "ACAD_PROXY_ENTITY"}, doc)
	ctx := newDecodeContext(VersionR2000, newTestHelper(), &Options{}, doc)
	d := newObjectDecoder(ctx, reg)

	if kind, _ := d.classify(uint16(KindLine)); kind != KindLine {
		t.Errorf("classify(KindLine) got %v, want KindLine", kind)
	}
	if kind, name := d.classify(500); kind != KindByClass || name != "ACAD_PROXY_ENTITY" {
		t.Errorf("classify(500) got (%v, %q), want (KindByClass, ACAD_PROXY_ENTITY)", kind, name)
	}
	if kind, _ := d.classify(999); kind != KindUnknown {
		t.Errorf("classify(999) for an unregistered class number, got %v, want KindUnknown", kind)
	}
}

func TestIsEntityKind(t *testing.T) {
	if !isEntityKind(KindLine) {
		t.Error("isEntityKind(KindLine) got false, want true")
	}
	if isEntityKind(KindLayer) {
		t.Error("isEntityKind(KindLayer) got true, want false")
	}
}

// TestObjectDecoderDecodeLine builds a minimal bit-accurate LINE object
// stream (common entity prelude with every reference null, followed by the
// three Point3DBD/Point3DD line fields) and checks DecodeAt reconstructs it.
func TestObjectDecoderDecodeLine(t *testing.T) {
	w := &bitWriter{}
	w.ms(64)              // object size (informational, unchecked)
	w.bsLiteralRC(19)      // type code 19 == KindLine

	// --- entity common prelude ---
	w.rc(0x01) // handle preamble: code 0, size 1
	w.rc(0x2A) // handle magnitude byte
	w.bsZero()  // EED chain terminator (size == 0)
	w.bit(0)    // hasPicture = false
	w.rc(0)     // EntMode flags
	w.bl10Zero() // ReactorCount = 0
	w.bit(1)     // NoLinks = true (skip XDictionaryRef)
	w.bsZero()   // Color index (pre-R2004 CMC)
	w.bd00Zero()  // LinetypeScale
	w.writeBits(0b00, 2) // LinetypeFlags = 0 (no explicit LinetypeRef)
	w.rc(0)               // Lineweight
	w.bit(0)              // Invisible = false
	w.nullHandle()         // OwnerRef
	w.nullHandle()         // LayerRef
	w.nullHandle()         // MaterialRef
	w.nullHandle()         // PlotStyleRef
	w.nullHandle()         // PrevRef
	w.nullHandle()         // NextRef

	// --- LINE-specific fields ---
	for i := 0; i < 3; i++ {
		w.bd00Zero() // Start
	}
	for i := 0; i < 3; i++ {
		w.bd00Zero() // End
	}
	w.bd00Zero() // Thickness
	for i := 0; i < 3; i++ {
		w.dd00Default() // Extrusion (defaults to {0,0,1})
	}

	doc := newDocument()
	reg := newClassRegistry()
	ctx := newDecodeContext(VersionR2000, newTestHelper(), &Options{}, doc)
	d := newObjectDecoder(ctx, reg)

	obj, err := d.DecodeAt(w.buf, 0, uint32(len(w.buf)))
	if err != nil {
		t.Fatalf("DecodeAt() failed: %v", err)
	}
	if obj.Body.Kind != KindLine {
		t.Fatalf("DecodeAt() Kind got %v, want KindLine", obj.Body.Kind)
	}
	if obj.Body.Entity == nil || obj.Body.Line == nil {
		t.Fatalf("DecodeAt() got Entity=%v Line=%v, want both populated", obj.Body.Entity, obj.Body.Line)
	}
	if obj.Handle.Value != 0x2A {
		t.Errorf("DecodeAt() Handle got %#x, want 0x2A", obj.Handle.Value)
	}
	if obj.Body.Line.Extrusion != (Point3D{Z: 1}) {
		t.Errorf("DecodeAt() Line.Extrusion got %+v, want the default {0,0,1}", obj.Body.Line.Extrusion)
	}
	if obj.Body.Entity.OwnerRef == nil || !obj.Body.Entity.OwnerRef.HandleRef.IsNull() {
		t.Error("DecodeAt() OwnerRef got non-null or nil, want a resolved null handle reference")
	}
}

func TestObjectDecoderDecodeAtShortRegionErrors(t *testing.T) {
	doc := newDocument()
	reg := newClassRegistry()
	ctx := newDecodeContext(VersionR2000, newTestHelper(), &Options{}, doc)
	d := newObjectDecoder(ctx, reg)

	if _, err := d.DecodeAt([]byte{0x01, 0x02}, 0, 100); err == nil {
		t.Error("DecodeAt() with objSize exceeding the raw buffer, got nil error, want ErrUnexpectedEOF")
	}
}
