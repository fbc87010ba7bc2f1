// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "testing"

func TestHandleIsNull(t *testing.T) {
	if !(Handle{}).IsNull() {
		t.Error("zero-value Handle.IsNull(), got false, want true")
	}
	if (Handle{Size: 2, Value: 5}).IsNull() {
		t.Error("Handle{Size:2}.IsNull(), got true, want false")
	}
}

func TestHandleString(t *testing.T) {
	h := Handle{Value: 0xABCD}
	if got := h.String(); got != "ABCD" {
		t.Errorf("Handle.String() got %q, want %q", got, "ABCD")
	}
}

func TestAbsoluteRef(t *testing.T) {
	tests := []struct {
		name       string
		ownerValue uint64
		h          Handle
		want       uint64
	}{
		{"owner plus one", 100, Handle{Code: handleCodeOwnerPlusOne}, 101},
		{"owner minus one", 100, Handle{Code: handleCodeOwnerMinusOne}, 99},
		{"owner plus N", 100, Handle{Code: handleCodeOwnerPlus, Value: 7}, 107},
		{"owner minus N", 100, Handle{Code: handleCodeOwnerMinus, Value: 7}, 93},
		{"absolute (unrecognized code)", 100, Handle{Code: 0x02, Value: 55}, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := absoluteRef(tt.ownerValue, tt.h)
			if got != tt.want {
				t.Errorf("absoluteRef(%d, %+v) got %d, want %d", tt.ownerValue, tt.h, got, tt.want)
			}
		})
	}
}

func TestCMCPreR2004IndexOnly(t *testing.T) {
	ctx := &decodeContext{version: VersionR2000}
	// BS literal-RC tag (01) carrying index value 5.
	bs := NewBitStream([]byte{0b01000001, 0b01000000})
	c, err := ctx.CMC(bs)
	if err != nil {
		t.Fatalf("CMC() failed: %v", err)
	}
	if c.HasTrueColor {
		t.Error("CMC() on a pre-R2004 file, got HasTrueColor true, want false")
	}
}
