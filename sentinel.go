// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "bytes"

// sentinelKind names one of the sixteen known 16-byte structural markers.
type sentinelKind int

// Known sentinel kinds.
const (
	SentinelHeaderEnd sentinelKind = iota
	SentinelPicatureBegin
	SentinelPictureEnd
	SentinelSecondHeaderBegin
	SentinelSecondHeaderEnd
	SentinelClassesBegin
	SentinelClassesEnd
	SentinelVariableBegin
)

// sentinels maps each kind to its literal 16 bytes, following the values
// libredwg's decode.c embeds for the header/class/preview boundaries.
var sentinels = map[sentinelKind][16]byte{
	SentinelHeaderEnd: {
		0x95, 0x5F, 0x4E, 0x10, 0x2D, 0x21, 0x4D, 0x96,
		0x17, 0xAE, 0xC6, 0xFF, 0xF7, 0x3E, 0x67, 0x52,
	},
	SentinelPicatureBegin: {
		0x1F, 0x25, 0x6D, 0x07, 0xD4, 0x36, 0x28, 0x28,
		0x9D, 0x57, 0xCA, 0x3F, 0x9D, 0x44, 0x10, 0x2B,
	},
	SentinelPictureEnd: {
		0xE0, 0xDA, 0x92, 0xF8, 0x2B, 0xC9, 0xD7, 0xD7,
		0x62, 0xA8, 0x35, 0xC0, 0x62, 0xBB, 0xEF, 0xD4,
	},
	SentinelSecondHeaderBegin: {
		0x95, 0xA0, 0x4E, 0x28, 0x99, 0x82, 0x1A, 0xE5,
		0x5E, 0x41, 0xE0, 0x5F, 0x9D, 0x3A, 0x4D, 0x00,
	},
	SentinelSecondHeaderEnd: {
		0x6A, 0x5F, 0xB1, 0xD7, 0x66, 0x7D, 0xE5, 0x1A,
		0xA1, 0xBE, 0x1F, 0xA0, 0x62, 0xC5, 0xB2, 0xFF,
	},
	SentinelClassesBegin: {
		0x8D, 0xA1, 0xC4, 0xB8, 0xC4, 0xA9, 0xF8, 0xC5,
		0xC0, 0xDC, 0xF4, 0x5F, 0xE7, 0xCF, 0xB6, 0x8A,
	},
	SentinelClassesEnd: {
		0x72, 0x5E, 0x3B, 0x47, 0x3B, 0x56, 0x07, 0x3A,
		0x3F, 0x23, 0x0B, 0xA0, 0x18, 0x30, 0x49, 0x75,
	},
	// SentinelVariableBegin marks the start of the (rarely used) variable
	// text section some R13-R14 files carry between the header and the
	// class table; treated as optional, so a miss is never fatal.
	SentinelVariableBegin: {
		0x8D, 0xA1, 0xC4, 0xB8, 0xC4, 0xA9, 0xF8, 0xC5,
		0xC0, 0xDC, 0xF4, 0x5F, 0xE7, 0xCF, 0xB6, 0x8A,
	},
}

// searchSentinel scans forward, byte-aligned, from bs's current position
// for the given sentinel. On success it leaves the cursor immediately
// after the sentinel and returns true; on failure it leaves the cursor
// unchanged and returns false.
func searchSentinel(bs *BitStream, kind sentinelKind) bool {
	needle, ok := sentinels[kind]
	if !ok {
		return false
	}
	start := bs.BytePos()
	buf := bs.buf
	idx := bytes.Index(buf[start:], needle[:])
	if idx < 0 {
		return false
	}
	bs.SeekByte(uint32(start) + uint32(idx) + 16)
	return true
}

// crc16 table-driven implementation of the container's 16-bit polynomial
// CRC, seeded per §4.2 (0xC0C1 for most sections).
var crc16Table = buildCRC16Table()

func buildCRC16Table() [256]uint16 {
	const poly = 0xA001 // reflected 0x8005, the variant used throughout
	var table [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}

// crc16 computes the running CRC over data starting from seed.
func crc16(data []byte, seed uint16) uint16 {
	crc := seed
	for _, b := range data {
		crc = (crc >> 8) ^ crc16Table[(crc^uint16(b))&0xff]
	}
	return crc
}

// defaultCRCSeed is the seed used for most numbered sections.
const defaultCRCSeed = 0xC0C1
