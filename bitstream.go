// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "math"

// BitStream is a random-access, bit-granular cursor over a read-only byte
// buffer. Every primitive reader advances the cursor by exactly the number
// of bits it consumed; none of them retry on failure.
type BitStream struct {
	buf []byte
	pos uint64 // absolute bit offset from the start of buf
}

// NewBitStream wraps buf for bit-granular reading starting at bit 0.
func NewBitStream(buf []byte) *BitStream {
	return &BitStream{buf: buf}
}

// BitPos returns the current absolute bit offset.
func (b *BitStream) BitPos() uint64 { return b.pos }

// SeekBit moves the cursor to an absolute bit offset.
func (b *BitStream) SeekBit(pos uint64) { b.pos = pos }

// SeekByte moves the cursor to the start of byte offset off.
func (b *BitStream) SeekByte(off uint32) { b.pos = uint64(off) * 8 }

// BytePos returns the byte the cursor currently sits within.
func (b *BitStream) BytePos() uint32 { return uint32(b.pos / 8) }

// Len returns the size of the underlying buffer in bytes.
func (b *BitStream) Len() int { return len(b.buf) }

// Remaining returns the number of bits left before the buffer end.
func (b *BitStream) Remaining() uint64 {
	total := uint64(len(b.buf)) * 8
	if b.pos >= total {
		return 0
	}
	return total - b.pos
}

func (b *BitStream) ensure(nbits uint64) error {
	if nbits > b.Remaining() {
		return ErrUnexpectedEOF
	}
	return nil
}

// bits reads the next n bits (n <= 64) as a big-endian-within-byte unsigned
// value and advances the cursor.
func (b *BitStream) bits(n uint) (uint64, error) {
	if err := b.ensure(uint64(n)); err != nil {
		return 0, err
	}
	var v uint64
	for i := uint(0); i < n; i++ {
		byteIdx := b.pos / 8
		bitIdx := 7 - (b.pos % 8)
		bit := (b.buf[byteIdx] >> bitIdx) & 1
		v = (v << 1) | uint64(bit)
		b.pos++
	}
	return v, nil
}

// B reads a single bit as a bool.
func (b *BitStream) B() (bool, error) {
	v, err := b.bits(1)
	return v != 0, err
}

// BB reads a 2-bit tag, 0-3.
func (b *BitStream) BB() (uint8, error) {
	v, err := b.bits(2)
	return uint8(v), err
}

// Bits3 reads the variable-width 3B encoding (1, 2, or 3 bits), yielding 0-7:
// the bits read form the value, so the codes 0, 10, 110 and 111 give 0, 2, 6
// and 7.
func (b *BitStream) Bits3() (uint8, error) {
	first, err := b.bits(1)
	if err != nil {
		return 0, err
	}
	if first == 0 {
		return 0, nil
	}
	second, err := b.bits(1)
	if err != nil {
		return 0, err
	}
	if second == 0 {
		return 2, nil
	}
	third, err := b.bits(1)
	if err != nil {
		return 0, err
	}
	return uint8(6 + third), nil
}

// Bits4 reads a literal 4-bit nibble, 0-15.
func (b *BitStream) Bits4() (uint8, error) {
	v, err := b.bits(4)
	return uint8(v), err
}

// RC reads a raw byte.
func (b *BitStream) RC() (byte, error) {
	v, err := b.bits(8)
	return byte(v), err
}

// RS reads a 16-bit little-endian short. The wire format is little-endian
// at the byte level even though bits within each byte are read MSB-first,
// so the two constituent bytes are read individually and reassembled.
func (b *BitStream) RS() (uint16, error) {
	lo, err := b.RC()
	if err != nil {
		return 0, err
	}
	hi, err := b.RC()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// RL reads a 32-bit little-endian long.
func (b *BitStream) RL() (uint32, error) {
	lo, err := b.RS()
	if err != nil {
		return 0, err
	}
	hi, err := b.RS()
	if err != nil {
		return 0, err
	}
	return uint32(lo) | uint32(hi)<<16, nil
}

// RLL reads a 64-bit little-endian long long.
func (b *BitStream) RLL() (uint64, error) {
	lo, err := b.RL()
	if err != nil {
		return 0, err
	}
	hi, err := b.RL()
	if err != nil {
		return 0, err
	}
	return uint64(lo) | uint64(hi)<<32, nil
}

// RD reads a 64-bit IEEE-754 little-endian double.
func (b *BitStream) RD() (float64, error) {
	v, err := b.RLL()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// BS reads the tagged "bit short": 00 -> literal RS, 01 -> literal RC
// (zero-extended), 10 -> literal 0, 11 -> literal 256.
func (b *BitStream) BS() (uint16, error) {
	tag, err := b.BB()
	if err != nil {
		return 0, err
	}
	switch tag {
	case 0:
		return b.RS()
	case 1:
		v, err := b.RC()
		return uint16(v), err
	case 2:
		return 0, nil
	default: // 3
		return 256, nil
	}
}

// BL reads the tagged "bit long": 00 -> literal RL, 01 -> literal RC
// (zero-extended), 10 -> literal 0, 11 is unused (treated as 0).
func (b *BitStream) BL() (uint32, error) {
	tag, err := b.BB()
	if err != nil {
		return 0, err
	}
	switch tag {
	case 0:
		return b.RL()
	case 1:
		v, err := b.RC()
		return uint32(v), err
	default: // 10, 11
		return 0, nil
	}
}

// BLL reads the tagged "bit long long" used by some R2007+ fields: a 3-bit
// byte count followed by that many little-endian bytes.
func (b *BitStream) BLL() (uint64, error) {
	n, err := b.bits(3)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := uint64(0); i < n; i++ {
		by, err := b.RC()
		if err != nil {
			return 0, err
		}
		v |= uint64(by) << (8 * i)
	}
	return v, nil
}

// BD reads the tagged "bit double": 00 -> literal RD, 01 -> literal 1.0,
// 10 -> literal 0.0, 11 is unused (treated as 0.0).
func (b *BitStream) BD() (float64, error) {
	tag, err := b.BB()
	if err != nil {
		return 0, err
	}
	switch tag {
	case 0:
		return b.RD()
	case 1:
		return 1.0, nil
	default: // 10, 11
		return 0.0, nil
	}
}

// MC reads a "modular char": up to 4 bytes, high bit of each continues,
// the sign bit of the final byte negates the accumulated magnitude.
func (b *BitStream) MC() (int32, error) {
	var result uint32
	var shift uint
	for i := 0; i < 4; i++ {
		by, err := b.RC()
		if err != nil {
			return 0, err
		}
		if i == 3 || by&0x80 == 0 {
			// Final byte (high bit clear, or the fourth byte): bits 0-5 are
			// magnitude, bit 6 is the sign.
			result |= uint32(by&0x3f) << shift
			if by&0x40 != 0 {
				return -int32(result), nil
			}
			return int32(result), nil
		}
		// Continuation byte: low 7 bits are magnitude.
		result |= uint32(by&0x7f) << shift
		shift += 7
	}
	return int32(result), nil
}

// MS reads a "modular short": up to two 16-bit little-endian shorts, the
// high bit of the first short signals a continuation.
func (b *BitStream) MS() (uint32, error) {
	lo, err := b.RS()
	if err != nil {
		return 0, err
	}
	if lo&0x8000 == 0 {
		return uint32(lo), nil
	}
	hi, err := b.RS()
	if err != nil {
		return 0, err
	}
	return uint32(lo&0x7fff) | uint32(hi)<<15, nil
}

// H reads a handle: an RC preamble splitting into a 4-bit code and 4-bit
// size, followed by size big-endian magnitude bytes.
func (b *BitStream) H() (Handle, error) {
	preamble, err := b.RC()
	if err != nil {
		return Handle{}, err
	}
	code := preamble >> 4
	size := preamble & 0x0f
	if size > 8 {
		return Handle{}, ErrBadHandle
	}
	var value uint64
	for i := byte(0); i < size; i++ {
		by, err := b.RC()
		if err != nil {
			return Handle{}, err
		}
		value = (value << 8) | uint64(by)
	}
	return Handle{Code: code, Size: size, Value: value}, nil
}

// TV reads a BS-length-prefixed raw byte string.
func (b *BitStream) TV() (string, error) {
	n, err := b.BS()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	for i := range buf {
		v, err := b.RC()
		if err != nil {
			return "", err
		}
		buf[i] = v
	}
	return string(buf), nil
}

// TU reads a BS-length-prefixed UCS-2 little-endian string (R2007+).
func (b *BitStream) TU() (string, error) {
	n, err := b.BS()
	if err != nil {
		return "", err
	}
	runes := make([]rune, 0, n)
	for i := uint16(0); i < n; i++ {
		v, err := b.RS()
		if err != nil {
			return "", err
		}
		if v == 0 {
			break
		}
		runes = append(runes, rune(v))
	}
	return string(runes), nil
}

// DD reads a default-delta double: a 2-bit tag then 0, 4, or 8 bytes that
// patch halves of def.
func (b *BitStream) DD(def float64) (float64, error) {
	tag, err := b.BB()
	if err != nil {
		return 0, err
	}
	bits := math.Float64bits(def)
	switch tag {
	case 0:
		return def, nil
	case 1:
		hi, err := b.RL()
		if err != nil {
			return 0, err
		}
		bits = uint64(hi)<<32 | (bits & 0xffffffff)
		return math.Float64frombits(bits), nil
	case 2:
		lo, err := b.RL()
		if err != nil {
			return 0, err
		}
		bits = (bits &^ 0xffffffff) | uint64(lo)
		return math.Float64frombits(bits), nil
	default: // 3
		return b.RD()
	}
}

// Point2D is a 2-D coordinate.
type Point2D struct{ X, Y float64 }

// Point3D is a 3-D coordinate.
type Point3D struct{ X, Y, Z float64 }

// Point2DD reads a 2DD point: two DD-encoded components against a default.
func (b *BitStream) Point2DD(def Point2D) (Point2D, error) {
	x, err := b.DD(def.X)
	if err != nil {
		return Point2D{}, err
	}
	y, err := b.DD(def.Y)
	if err != nil {
		return Point2D{}, err
	}
	return Point2D{X: x, Y: y}, nil
}

// Point3DD reads a 3DD point: three DD-encoded components against a default.
func (b *BitStream) Point3DD(def Point3D) (Point3D, error) {
	x, err := b.DD(def.X)
	if err != nil {
		return Point3D{}, err
	}
	y, err := b.DD(def.Y)
	if err != nil {
		return Point3D{}, err
	}
	z, err := b.DD(def.Z)
	if err != nil {
		return Point3D{}, err
	}
	return Point3D{X: x, Y: y, Z: z}, nil
}

// Point2DBD reads a 2-D point as two plain BD values.
func (b *BitStream) Point2DBD() (Point2D, error) {
	x, err := b.BD()
	if err != nil {
		return Point2D{}, err
	}
	y, err := b.BD()
	if err != nil {
		return Point2D{}, err
	}
	return Point2D{X: x, Y: y}, nil
}

// Point3DBD reads a 3-D point as three plain BD values.
func (b *BitStream) Point3DBD() (Point3D, error) {
	x, err := b.BD()
	if err != nil {
		return Point3D{}, err
	}
	y, err := b.BD()
	if err != nil {
		return Point3D{}, err
	}
	z, err := b.BD()
	if err != nil {
		return Point3D{}, err
	}
	return Point3D{X: x, Y: y, Z: z}, nil
}

// Bytes reads n raw bytes.
func (b *BitStream) Bytes(n uint32) ([]byte, error) {
	if err := b.ensure(uint64(n) * 8); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i := range out {
		v, err := b.RC()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// AlignByte advances the cursor to the next byte boundary, a no-op if
// already aligned.
func (b *BitStream) AlignByte() {
	if rem := b.pos % 8; rem != 0 {
		b.pos += 8 - rem
	}
}
