// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "testing"

// minimalR2000 is a synthetic buffer large enough to pass version
// detection and the fixed preamble, but with no header/class/object-map
// sentinels beyond it; this exercises the graceful-degradation path, where
// a missing section becomes an Anomaly rather than a hard error.
func minimalR2000() []byte {
	data := make([]byte, 128)
	copy(data, []byte(VersionR2000))
	return data
}

func TestNewBytesAndParse(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"minimal R2000 buffer", minimalR2000()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := NewBytes(tt.data, nil)
			if err != nil {
				t.Fatalf("NewBytes(%s) failed, reason: %v", tt.name, err)
			}
			if err := file.Parse(); err != nil {
				t.Errorf("Parse(%s) got %v, want nil", tt.name, err)
			}
			if file.Document == nil {
				t.Fatalf("Parse(%s) left Document nil", tt.name)
			}
		})
	}
}

func TestParseUnknownVersion(t *testing.T) {
	data := make([]byte, 64)
	copy(data, []byte("BOGUS1"))

	file, err := NewBytes(data, nil)
	if err != nil {
		t.Fatalf("NewBytes failed, reason: %v", err)
	}
	if err := file.Parse(); err == nil {
		t.Fatal("Parse() with an unrecognized version code, got nil error, want KindUnsupportedVersion")
	}
}

func TestParseTooShort(t *testing.T) {
	file, err := NewBytes([]byte{0x01, 0x02}, nil)
	if err != nil {
		t.Fatalf("NewBytes failed, reason: %v", err)
	}
	if err := file.Parse(); err == nil {
		t.Fatal("Parse() on a truncated buffer, got nil error, want a version-detection error")
	}
}

func TestClose(t *testing.T) {
	file, err := NewBytes(minimalR2000(), nil)
	if err != nil {
		t.Fatalf("NewBytes failed, reason: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Errorf("Close() on an in-memory File, got %v, want nil", err)
	}
}
