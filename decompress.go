// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

// decompressor expands a single R2004+ system/data section encoded with
// the container's bespoke LZ77-family variant (§4.3). Input is consumed
// byte-aligned; output grows into a caller-sized buffer that back-
// references may read from while it is still being written, the classical
// overlapping-copy LZ77 semantic.
type decompressor struct {
	in  []byte
	pos int
}

func newDecompressor(in []byte) *decompressor { return &decompressor{in: in} }

func (d *decompressor) eof() bool { return d.pos >= len(d.in) }

func (d *decompressor) readByte() (byte, error) {
	if d.eof() {
		return 0, ErrUnexpectedEOF
	}
	b := d.in[d.pos]
	d.pos++
	return b, nil
}

// literalLength decodes the opcode-adjacent literal-run length: a single
// byte in 0x01-0x0F gives length byte+3; a leading 0x00 starts an 0xFF-run
// extension (each further 0x00 adds 0xFF, a terminating non-zero byte adds
// byte+3); a byte whose high nibble is set is not a length at all but the
// *next* opcode, already consumed - callers must dispatch on it directly
// instead of reading a fresh opcode byte.
func (d *decompressor) literalLength() (length int, nextOpcode byte, err error) {
	b, err := d.readByte()
	if err != nil {
		return 0, 0, err
	}
	if b >= 0x01 && b <= 0x0F {
		return int(b) + 3, 0, nil
	}
	if b == 0x00 {
		total := 0x0F
		for {
			b, err = d.readByte()
			if err != nil {
				return 0, 0, err
			}
			if b != 0x00 {
				break
			}
			total += 0xFF
		}
		return total + int(b) + 3, 0, nil
	}
	// b&0xF0 != 0: this byte is the next opcode, not a length.
	return 0, b, nil
}

// longCompressionOffset decodes the 0xFF-run length extension used by the
// 0x10 and 0x20 long copy-length encodings: a non-zero first byte is the
// whole value; a zero first byte starts a run of 0xFF additions terminated
// by a non-zero byte.
func (d *decompressor) longCompressionOffset() (int, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if b != 0x00 {
		return int(b), nil
	}
	total := 0xFF
	for {
		b, err = d.readByte()
		if err != nil {
			return 0, err
		}
		if b != 0x00 {
			break
		}
		total += 0xFF
	}
	return total + int(b), nil
}

// twoByteOffset decodes the two-byte copy-offset field: the low two bits
// of the first byte are not part of the offset at all, they carry an
// inline trailing-literal-length hint consumed by the copy dispatch that
// calls this.
func (d *decompressor) twoByteOffset() (offset int, litLen int, err error) {
	first, err := d.readByte()
	if err != nil {
		return 0, 0, err
	}
	second, err := d.readByte()
	if err != nil {
		return 0, 0, err
	}
	offset = int(first>>2) | int(second)<<6
	litLen = int(first & 0x03)
	return offset, litLen, nil
}

// decompress expands the LZ77-variant stream into a buffer of exactly
// outSize bytes, following the opcode table from §4.3. It returns
// ErrBadCompressedStream on any unlisted opcode, and succeeds either when
// the 0x11 end sentinel is reached or the input is exhausted.
//
// Every opcode branch computes a (comp_bytes, comp_offset) back-reference
// and a trailing literal-run length: the length either rides along in the
// opcode's own low bits (when non-zero) or, when those bits are zero, is
// read via literalLength - which may itself consume what turns out to be
// the *next* opcode rather than a length, in which case that opcode is
// carried into the following iteration instead of being re-read from the
// stream.
func decompressLZ(in []byte, outSize int) ([]byte, error) {
	d := newDecompressor(in)
	out := make([]byte, 0, outSize)

	copyBack := func(distance, length int) error {
		if distance <= 0 || distance > len(out) {
			// A corrupt or truncated offset; clamp rather than panic,
			// matching the decoder's "tolerate trailing residue" posture.
			if len(out) == 0 {
				return nil
			}
			distance = len(out)
		}
		start := len(out) - distance
		for i := 0; i < length; i++ {
			out = append(out, out[start+i])
		}
		return nil
	}

	appendLiteral := func(n int) error {
		for i := 0; i < n; i++ {
			b, err := d.readByte()
			if err != nil {
				return err
			}
			out = append(out, b)
		}
		return nil
	}

	// The length of the first sequence of literal data precedes the main
	// opcode loop; its side-channel opcode (if any) seeds the loop so a
	// high-nibble byte read here isn't re-read as a fresh opcode.
	n, opcode, err := d.literalLength()
	if err != nil {
		return nil, err
	}
	if err := appendLiteral(n); err != nil {
		return nil, err
	}

	for !d.eof() {
		if opcode == 0 {
			opcode, err = d.readByte()
			if err != nil {
				break
			}
		}
		op := opcode
		opcode = 0

		var length, offsetRaw, litLen int

		switch {
		case op >= 0x40:
			length = int((op&0xF0)>>4) - 1
			next, err := d.readByte()
			if err != nil {
				return out, err
			}
			offsetRaw = int(next)<<2 | int((op&0x0C)>>2)
			if op&0x03 != 0 {
				litLen = int(op & 0x03)
			} else if litLen, opcode, err = d.literalLength(); err != nil {
				return out, err
			}

		case op >= 0x21 && op <= 0x3F:
			length = int(op) - 0x1E
			off, ll, err := d.twoByteOffset()
			if err != nil {
				return out, err
			}
			offsetRaw = off
			if ll != 0 {
				litLen = ll
			} else if litLen, opcode, err = d.literalLength(); err != nil {
				return out, err
			}

		case op == 0x20:
			extra, err := d.longCompressionOffset()
			if err != nil {
				return out, err
			}
			length = extra + 0x21
			off, ll, err := d.twoByteOffset()
			if err != nil {
				return out, err
			}
			offsetRaw = off
			if ll != 0 {
				litLen = ll
			} else if litLen, opcode, err = d.literalLength(); err != nil {
				return out, err
			}

		case op >= 0x12 && op <= 0x1F:
			length = int(op&0x0F) + 2
			off, ll, err := d.twoByteOffset()
			if err != nil {
				return out, err
			}
			offsetRaw = off + 0x3FFF
			if ll != 0 {
				litLen = ll
			} else if litLen, opcode, err = d.literalLength(); err != nil {
				return out, err
			}

		case op == 0x10:
			extra, err := d.longCompressionOffset()
			if err != nil {
				return out, err
			}
			length = extra + 9
			off, ll, err := d.twoByteOffset()
			if err != nil {
				return out, err
			}
			offsetRaw = off + 0x3FFF
			if ll != 0 {
				litLen = ll
			} else if litLen, opcode, err = d.literalLength(); err != nil {
				return out, err
			}

		case op == 0x11:
			return finish(out, outSize), nil

		default:
			return out, ErrBadCompressedStream
		}

		if err := copyBack(offsetRaw+1, length); err != nil {
			return out, err
		}
		if err := appendLiteral(litLen); err != nil {
			return out, err
		}
	}
	return finish(out, outSize), nil
}

func finish(out []byte, outSize int) []byte {
	if len(out) > outSize {
		return out[:outSize]
	}
	if len(out) < outSize {
		out = append(out, make([]byte, outSize-len(out))...)
	}
	return out
}
