// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "testing"

func TestDocumentFindByHandle(t *testing.T) {
	doc := newDocument()
	doc.Objects = []Object{
		{Index: 0, Handle: Handle{Size: 1, Value: 0x10}},
		{Index: 1, Handle: Handle{Size: 1, Value: 0x20}},
	}

	obj, ok := doc.FindByHandle(0x20)
	if !ok {
		t.Fatal("FindByHandle(0x20) got ok=false, want true")
	}
	if obj.Index != 1 {
		t.Errorf("FindByHandle(0x20) got Index %d, want 1", obj.Index)
	}

	if _, ok := doc.FindByHandle(0x99); ok {
		t.Error("FindByHandle(0x99) got ok=true for an absent handle, want false")
	}
}

func TestDocumentAddAnomaly(t *testing.T) {
	doc := newDocument()
	doc.addAnomaly("first")
	doc.addAnomaly("second")

	if len(doc.Anomalies) != 2 {
		t.Fatalf("Anomalies got %d entries, want 2", len(doc.Anomalies))
	}
	if doc.Anomalies[0] != "first" || doc.Anomalies[1] != "second" {
		t.Errorf("Anomalies got %v, want [first second]", doc.Anomalies)
	}
}

func TestNewDocumentInitializesAuxiliary(t *testing.T) {
	doc := newDocument()
	if doc.Auxiliary == nil {
		t.Fatal("newDocument() left Auxiliary nil")
	}
	doc.Auxiliary["PreviewImage"] = []byte{1, 2, 3}
	if len(doc.Auxiliary["PreviewImage"]) != 3 {
		t.Error("Auxiliary map did not retain the assigned value")
	}
}
