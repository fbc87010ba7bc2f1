// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import (
	"bytes"
	"testing"
)

func TestDecompressLZLiteralRun(t *testing.T) {
	// The leading literal-run length byte 0x02 is in the 0x01-0x0F range,
	// so it decodes directly to length = 0x02+3 = 5 with no pre-read
	// opcode; the five literal bytes follow, then the 0x11 end sentinel.
	in := []byte{0x02, 'A', 'B', 'C', 'D', 'E', 0x11}
	got, err := decompressLZ(in, 5)
	if err != nil {
		t.Fatalf("decompressLZ() failed: %v", err)
	}
	if !bytes.Equal(got, []byte("ABCDE")) {
		t.Errorf("decompressLZ() got %q, want %q", got, "ABCDE")
	}
}

func TestDecompressLZBackReference(t *testing.T) {
	// Leading literal run of length 0x01+3=4 seeds "WXYZ". Opcode 0x22
	// (0x21-0x3F range) copies 0x22-0x1E=4 bytes from a two-byte offset
	// field {0x0C, 0x00}: offset = (0x0C>>2)|(0x00<<6) = 3, and since the
	// copy distance is offset+1, that reaches back across the full 4
	// literal bytes just written. The offset field's low two bits (here
	// 0) double as a trailing-literal-length hint; zero means the next
	// byte is read via literalLength instead - 0x11's high nibble marks
	// it as the next opcode (immediate end-of-stream) rather than a
	// length, so no further literal bytes are appended.
	in := []byte{
		0x01, 'W', 'X', 'Y', 'Z',
		0x22, 0x0C, 0x00,
		0x11,
	}
	got, err := decompressLZ(in, 8)
	if err != nil {
		t.Fatalf("decompressLZ() failed: %v", err)
	}
	want := []byte("WXYZWXYZ")
	if !bytes.Equal(got, want) {
		t.Errorf("decompressLZ() got %q, want %q", got, want)
	}
}

func TestDecompressLZInlineTrailingLiteral(t *testing.T) {
	// Same back-reference as above, but the two-byte offset field's low
	// bits carry a non-zero trailing-literal-length hint (1), so one
	// literal byte ('!') is appended immediately after the copy, read
	// straight from the input rather than through literalLength.
	in := []byte{
		0x01, 'W', 'X', 'Y', 'Z',
		0x22, 0x0D, 0x00, // firstByte 0x0D: offset bits same (3), lit_length = 1
		'!',
		0x11,
	}
	got, err := decompressLZ(in, 9)
	if err != nil {
		t.Fatalf("decompressLZ() failed: %v", err)
	}
	want := []byte("WXYZWXYZ!")
	if !bytes.Equal(got, want) {
		t.Errorf("decompressLZ() got %q, want %q", got, want)
	}
}

func TestDecompressLZBadOpcode(t *testing.T) {
	// A leading literal run of length 4 (byte 0x01), then a main-loop
	// opcode byte of 0x01 - which, read directly as an opcode rather
	// than through literalLength, matches no case in the dispatch table.
	in := []byte{0x01, 'A', 'B', 'C', 'D', 0x01}
	if _, err := decompressLZ(in, 4); err != ErrBadCompressedStream {
		t.Errorf("decompressLZ() on an unlisted opcode, got %v, want ErrBadCompressedStream", err)
	}
}

func TestDecompressLZTruncatedStream(t *testing.T) {
	// 0x00 starts the literal-length 0xFF-run extension, which requires
	// at least one more byte to terminate it; none follows.
	in := []byte{0x00}
	out, err := decompressLZ(in, 4)
	if err == nil {
		t.Fatalf("decompressLZ() on a truncated stream, got nil error with output %v", out)
	}
}
