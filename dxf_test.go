// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteDXFSectionFraming(t *testing.T) {
	doc := newDocument()
	doc.ClassTable = newClassRegistry()

	var buf bytes.Buffer
	if err := doc.WriteDXF(&buf); err != nil {
		t.Fatalf("WriteDXF() failed: %v", err)
	}
	out := buf.String()

	for _, section := range []string{"HEADER", "CLASSES", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS"} {
		if !strings.Contains(out, "  2\n"+section+"\n") {
			t.Errorf("WriteDXF() output missing SECTION %s", section)
		}
	}
	if !strings.HasSuffix(out, "  0\nEOF\n") {
		t.Error("WriteDXF() output does not end with the EOF group pair")
	}
}

func TestWriteDXFEmitsLineEntity(t *testing.T) {
	doc := newDocument()
	doc.Objects = []Object{
		{
			Handle: Handle{Size: 1, Value: 0x2A},
			Body: ObjectBody{
				Kind:   KindLine,
				Entity: &EntityCommon{},
				Line: &LineEntity{
					Start: Point3D{X: 1, Y: 2, Z: 3},
					End:   Point3D{X: 4, Y: 5, Z: 6},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := doc.WriteDXF(&buf); err != nil {
		t.Fatalf("WriteDXF() failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "LINE") {
		t.Error("WriteDXF() output missing a LINE entity")
	}
	if !strings.Contains(out, "2A") {
		t.Error("WriteDXF() output missing the entity's handle")
	}
}

func TestWriteDXFSkipsUnknownObjects(t *testing.T) {
	doc := newDocument()
	doc.Objects = []Object{
		{
			Handle: Handle{Size: 1, Value: 1},
			Body: ObjectBody{
				Kind:   KindUnknown,
				Entity: &EntityCommon{},
				Reason: "class not found",
			},
		},
	}

	var buf bytes.Buffer
	if err := doc.WriteDXF(&buf); err != nil {
		t.Fatalf("WriteDXF() failed: %v", err)
	}
	if strings.Contains(buf.String(), "class not found") {
		t.Error("WriteDXF() leaked an internal Reason string into DXF output")
	}
}
