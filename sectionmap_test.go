// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import (
	"encoding/binary"
	"testing"
)

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestParseSectionMapRunningAddress(t *testing.T) {
	var data []byte
	data = append(data, le32(1)...)  // number = 1
	data = append(data, le32(16)...) // size = 16
	data = append(data, le32(2)...)  // number = 2
	data = append(data, le32(32)...) // size = 32

	entries, err := parseSectionMap(data)
	if err != nil {
		t.Fatalf("parseSectionMap() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("parseSectionMap() got %d entries, want 2", len(entries))
	}
	if entries[0].Address != 0x100 {
		t.Errorf("entries[0].Address got %#x, want 0x100", entries[0].Address)
	}
	if entries[1].Address != 0x100+16 {
		t.Errorf("entries[1].Address got %#x, want %#x", entries[1].Address, 0x100+16)
	}
}

func TestParseSectionMapGapNode(t *testing.T) {
	var data []byte
	data = append(data, le32(uint32(int32(-1)))...) // number = -1 (gap)
	data = append(data, le32(8)...)                 // size
	data = append(data, le32(10)...)                // parent
	data = append(data, le32(11)...)                // left
	data = append(data, le32(12)...)                // right
	data = append(data, le32(0)...)                 // reserved

	entries, err := parseSectionMap(data)
	if err != nil {
		t.Fatalf("parseSectionMap() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("parseSectionMap() got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if !e.IsGap {
		t.Fatal("parseSectionMap() on a negative-numbered entry, got IsGap=false, want true")
	}
	if e.Parent != 10 || e.Left != 11 || e.Right != 12 {
		t.Errorf("parseSectionMap() gap fields got %+v, want Parent=10 Left=11 Right=12", e)
	}
	if e.Address != 0x100 {
		t.Errorf("parseSectionMap() gap node advanced Address to %#x, want unchanged 0x100", e.Address)
	}
}

func TestParseSectionInfoNameAndSubs(t *testing.T) {
	var data []byte
	data = append(data, le32(100)...) // size (low 32 of RLL)
	data = append(data, le32(0)...)   // size (high 32 of RLL)
	data = append(data, le32(0)...)   // unknown/page count
	data = append(data, le32(1)...)   // sub_count = 1
	data = append(data, le32(100)...) // max decomp size
	data = append(data, le32(0)...)   // unknown
	data = append(data, le32(2)...)   // compressed flag = 2 (compressed)
	data = append(data, le32(5)...)   // type
	data = append(data, le32(0)...)   // encrypted flag

	name := make([]byte, 64)
	copy(name, "AcDb:Header")
	data = append(data, name...)

	// one subsection tuple
	data = append(data, le32(7)...)  // section number
	data = append(data, le32(50)...) // data size
	data = append(data, le32(0)...)  // start offset
	data = append(data, le32(0)...)  // reserved

	infos, err := parseSectionInfo(data)
	if err != nil {
		t.Fatalf("parseSectionInfo() failed: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("parseSectionInfo() got %d entries, want 1", len(infos))
	}
	info := infos[0]
	if info.Name != "AcDb:Header" {
		t.Errorf("parseSectionInfo() Name got %q, want %q", info.Name, "AcDb:Header")
	}
	if !info.Compressed {
		t.Error("parseSectionInfo() Compressed got false, want true")
	}
	if info.Encrypted {
		t.Error("parseSectionInfo() Encrypted got true, want false")
	}
	if len(info.Subs) != 1 || info.Subs[0].SectionNumber != 7 || info.Subs[0].DataSize != 50 {
		t.Errorf("parseSectionInfo() Subs got %+v, want one sub {SectionNumber:7 DataSize:50}", info.Subs)
	}
}

func TestSectionMapByTypeAndByNumber(t *testing.T) {
	m := &sectionMap{
		entries: []sectionMapEntry{{Number: 7, Size: 50, Address: 0x100}},
		infos:   []sectionInfoEntry{{Name: "AcDb:Header", Type: 5}},
	}
	if _, ok := m.sectionByType("AcDb:Header"); !ok {
		t.Error("sectionByType() for a present name, got ok=false, want true")
	}
	if _, ok := m.sectionByType("AcDb:Missing"); ok {
		t.Error("sectionByType() for an absent name, got ok=true, want false")
	}
	if e, ok := m.entryByNumber(7); !ok || e.Size != 50 {
		t.Errorf("entryByNumber(7) got %+v, %v, want Size=50, true", e, ok)
	}
	if _, ok := m.entryByNumber(99); ok {
		t.Error("entryByNumber(99) for an absent number, got ok=true, want false")
	}
}

func TestReadLogicalSectionUncompressed(t *testing.T) {
	full := make([]byte, 0x100+16)
	copy(full[0x100:], []byte("0123456789abcdef"))

	m := &sectionMap{
		entries: []sectionMapEntry{{Number: 7, Size: 16, Address: 0x100}},
		infos: []sectionInfoEntry{{
			Name:          "AcDb:Header",
			SubCount:      1,
			MaxDecompSize: 16,
			Compressed:    false,
			Subs:          []sectionInfoSub{{SectionNumber: 7, DataSize: 16, StartOffset: 0}},
		}},
	}

	bs, err := m.readLogicalSection(full, "AcDb:Header")
	if err != nil {
		t.Fatalf("readLogicalSection() failed: %v", err)
	}
	got, err := bs.Bytes(16)
	if err != nil {
		t.Fatalf("reading decoded section bytes failed: %v", err)
	}
	if string(got) != "0123456789abcdef" {
		t.Errorf("readLogicalSection() payload got %q, want %q", got, "0123456789abcdef")
	}
}

func TestReadLogicalSectionUnknownName(t *testing.T) {
	m := &sectionMap{}
	if _, err := m.readLogicalSection(nil, "AcDb:Missing"); err == nil {
		t.Error("readLogicalSection() for an unknown name, got nil error, want KindCorrupt error")
	}
}

func TestDecryptHeaderLCGIsDeterministic(t *testing.T) {
	buf := make([]byte, 8)
	decryptHeaderLCG(buf)
	want := []byte{buf[0], buf[1], buf[2], buf[3], buf[4], buf[5], buf[6], buf[7]}

	buf2 := make([]byte, 8)
	decryptHeaderLCG(buf2)
	for i := range want {
		if buf2[i] != want[i] {
			t.Fatalf("decryptHeaderLCG() not deterministic at byte %d: %#x != %#x", i, buf2[i], want[i])
		}
	}
	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Error("decryptHeaderLCG() left an all-zero buffer unchanged")
	}
}
