// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "testing"

func TestObjectMapBudgetBytes(t *testing.T) {
	if got := objectMapBudgetBytes(VersionR2000); got != 2035 {
		t.Errorf("objectMapBudgetBytes(R2000) got %d, want 2035", got)
	}
	if got := objectMapBudgetBytes(VersionR2004); got != 2034 {
		t.Errorf("objectMapBudgetBytes(R2004) got %d, want 2034", got)
	}
}

func TestDecodeObjectMapSingleEntry(t *testing.T) {
	// One sub-section of declared size 4 (2 header bytes + 2 payload bytes:
	// a single-byte MC handle-delta of 5, a single-byte MC offset-delta of
	// 10), an advisory CRC trailer, then a size-2 terminator sub-section.
	data := []byte{
		0x04, 0x00, // sub-section size = 4
		0x05,       // handle delta = 5
		0x0A,       // offset delta = 10
		0x00, 0x00, // CRC trailer (unchecked)
		0x02, 0x00, // terminator sub-section (size <= 2)
	}
	bs := NewBitStream(data)
	entries, err := decodeObjectMap(bs, VersionR2000)
	if err != nil {
		t.Fatalf("decodeObjectMap() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("decodeObjectMap() got %d entries, want 1", len(entries))
	}
	if entries[0].Handle != 5 || entries[0].Offset != 10 {
		t.Errorf("decodeObjectMap() got %+v, want {Handle:5 Offset:10}", entries[0])
	}
}

func TestDecodeObjectMapEmpty(t *testing.T) {
	// Immediately-terminating object map: a single size-2 sub-section.
	data := []byte{0x02, 0x00}
	bs := NewBitStream(data)
	entries, err := decodeObjectMap(bs, VersionR2000)
	if err != nil {
		t.Fatalf("decodeObjectMap() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("decodeObjectMap() on an empty map, got %d entries, want 0", len(entries))
	}
}
