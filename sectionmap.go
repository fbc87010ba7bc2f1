// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "encoding/binary"

// systemSectionTag identifies a compressed "system section" header, used
// to wrap both the section map and section info index regions.
const systemSectionTag = 0x4163043B

// sectionMapEntry is a single (number, size) record from the flat section
// map stream. Numbers < 0 denote gap/tree nodes carrying extra fields.
type sectionMapEntry struct {
	Number  int32
	Size    uint32
	Address uint32 // computed running total, starting at 0x100

	// Gap/tree node fields, populated only when Number < 0.
	IsGap  bool
	Parent uint32
	Left   uint32
	Right  uint32
}

// sectionInfoSub points a section-info descriptor at one physical run of
// bytes within the section map.
type sectionInfoSub struct {
	SectionNumber uint32
	DataSize      uint32
	StartOffset   uint32
}

// sectionInfoEntry describes one logical section (by Type), assembled from
// one or more sectionInfoSub physical runs.
type sectionInfoEntry struct {
	Size            uint64
	SubCount        uint32
	MaxDecompSize   uint32
	Compressed      bool
	Type            uint32
	Encrypted       bool
	Name            string
	Subs            []sectionInfoSub
}

// sectionMap is the decoded R2004 page directory: a flat list of map
// entries plus the descriptor list that names each logical section.
type sectionMap struct {
	entries []sectionMapEntry
	infos   []sectionInfoEntry
}

// decryptHeaderLCG decrypts the 128-byte encrypted R2004 preamble header in
// place, using the container's deterministic LCG seeded at 1:
// rseed' = rseed*0x343FD + 0x269EC3, XORed with rseed>>16 per output byte.
func decryptHeaderLCG(buf []byte) {
	rseed := uint32(1)
	for i := range buf {
		rseed = rseed*0x343FD + 0x269EC3
		buf[i] ^= byte(rseed >> 16)
	}
}

// readSystemSection reads and decompresses one system section (section map
// or section info) starting at the BitStream's current byte position. The
// 32-byte header is validated against systemSectionTag, then the payload is
// expanded via decompressLZ into a buffer of the declared decompressed
// size.
func readSystemSection(bs *BitStream) ([]byte, error) {
	hdr, err := bs.Bytes(32)
	if err != nil {
		return nil, err
	}
	tag := binary.LittleEndian.Uint32(hdr[0:4])
	if tag != systemSectionTag {
		return nil, newError(KindCorrupt, "section map: bad system section tag")
	}
	decompSize := binary.LittleEndian.Uint32(hdr[4:8])
	compSize := binary.LittleEndian.Uint32(hdr[8:12])
	// hdr[12:16] is the "compression type" flag in the reference layout;
	// every R2004 system section observed in the wild uses the same LZ77
	// variant so it is not branched on here.

	payload, err := bs.Bytes(compSize)
	if err != nil {
		return nil, err
	}
	return decompressLZ(payload, int(decompSize))
}

// parseSectionMap decodes the flat (number, size) stream, computing
// addresses as a running total starting at 0x100.
func parseSectionMap(data []byte) ([]sectionMapEntry, error) {
	bs := NewBitStream(data)
	var entries []sectionMapEntry
	addr := uint32(0x100)
	for bs.BytePos()+8 <= uint32(len(data)) {
		number, err := bs.RL()
		if err != nil {
			break
		}
		size, err := bs.RL()
		if err != nil {
			break
		}
		e := sectionMapEntry{Number: int32(number), Size: size, Address: addr}
		if e.Number < 0 {
			e.IsGap = true
			parent, err := bs.RL()
			if err != nil {
				break
			}
			left, err := bs.RL()
			if err != nil {
				break
			}
			right, err := bs.RL()
			if err != nil {
				break
			}
			if _, err := bs.RL(); err != nil { // reserved 0x00 field
				break
			}
			e.Parent, e.Left, e.Right = parent, left, right
		} else {
			addr += size
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// parseSectionInfo decodes the section-info descriptor list, each entry
// followed by its sub_count physical-run tuples.
func parseSectionInfo(data []byte) ([]sectionInfoEntry, error) {
	bs := NewBitStream(data)
	var infos []sectionInfoEntry
	for bs.Remaining() > 0 {
		size, err := bs.RLL()
		if err != nil {
			break
		}
		if _, err := bs.RL(); err != nil { // unknown/page count field
			break
		}
		subCount, err := bs.RL()
		if err != nil {
			break
		}
		maxDecomp, err := bs.RL()
		if err != nil {
			break
		}
		if _, err := bs.RL(); err != nil { // unknown field
			break
		}
		compressedFlag, err := bs.RL()
		if err != nil {
			break
		}
		typ, err := bs.RL()
		if err != nil {
			break
		}
		encryptedFlag, err := bs.RL()
		if err != nil {
			break
		}
		nameBytes, err := bs.Bytes(64)
		if err != nil {
			break
		}
		name := cStringFromBytes(nameBytes)

		entry := sectionInfoEntry{
			Size:          size,
			SubCount:      subCount,
			MaxDecompSize: maxDecomp,
			Compressed:    compressedFlag == 2,
			Type:          typ,
			Encrypted:     encryptedFlag != 0,
			Name:          name,
		}
		for i := uint32(0); i < subCount; i++ {
			secNum, err := bs.RL()
			if err != nil {
				break
			}
			dataSize, err := bs.RL()
			if err != nil {
				break
			}
			startOff, err := bs.RL()
			if err != nil {
				break
			}
			if _, err := bs.RL(); err != nil { // reserved field
				break
			}
			entry.Subs = append(entry.Subs, sectionInfoSub{
				SectionNumber: secNum,
				DataSize:      dataSize,
				StartOffset:   startOff,
			})
		}
		infos = append(infos, entry)
	}
	return infos, nil
}

func cStringFromBytes(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// sectionByType returns the section-info descriptor matching the given
// type name, or false if none is present.
func (m *sectionMap) sectionByType(name string) (sectionInfoEntry, bool) {
	for _, info := range m.infos {
		if info.Name == name {
			return info, true
		}
	}
	return sectionInfoEntry{}, false
}

// entryByNumber finds a flat section-map entry by its section number.
func (m *sectionMap) entryByNumber(number uint32) (sectionMapEntry, bool) {
	for _, e := range m.entries {
		if !e.IsGap && uint32(e.Number) == number {
			return e, true
		}
	}
	return sectionMapEntry{}, false
}

// readLogicalSection reads a logical section of the given type name:
// decompresses each of its descriptor's subsections in order into a
// contiguous buffer of size sub_count*max_decomp_size, and wraps it in a
// new BitStream.
func (m *sectionMap) readLogicalSection(full []byte, name string) (*BitStream, error) {
	info, ok := m.sectionByType(name)
	if !ok {
		return nil, newError(KindCorrupt, "section map: no section named "+name)
	}
	out := make([]byte, 0, int(info.SubCount)*int(info.MaxDecompSize))
	for _, sub := range info.Subs {
		mapEntry, ok := m.entryByNumber(sub.SectionNumber)
		if !ok {
			return nil, newError(KindCorrupt, "section map: dangling subsection reference")
		}
		if int(mapEntry.Address)+int(mapEntry.Size) > len(full) {
			return nil, ErrUnexpectedEOF
		}
		raw := full[mapEntry.Address : mapEntry.Address+mapEntry.Size]
		var chunk []byte
		var err error
		if info.Compressed {
			subBS := NewBitStream(raw)
			chunk, err = readSystemSection(subBS)
		} else {
			chunk = raw
		}
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return NewBitStream(out), nil
}
