// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "testing"

func TestHandleResolverResolvesKnownHandle(t *testing.T) {
	doc := newDocument()
	doc.Objects = []Object{
		{Index: 0, Handle: Handle{Size: 1, Value: 0x10}},
		{Index: 1, Handle: Handle{Size: 1, Value: 0x20}},
	}
	ref := &Reference{HandleRef: Handle{Size: 1, Value: 0x20}, AbsoluteRef: 0x20, BoundObject: noObjectIndex}
	doc.References = []*Reference{ref}

	resolver := newHandleResolver(doc)
	if err := resolver.Resolve(nil); err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if ref.BoundObject != 1 {
		t.Errorf("Resolve() bound %d, want 1", ref.BoundObject)
	}
}

func TestHandleResolverSkipsNullHandle(t *testing.T) {
	doc := newDocument()
	doc.Objects = []Object{{Index: 0, Handle: Handle{Size: 1, Value: 5}}}
	ref := &Reference{BoundObject: noObjectIndex} // zero-value handle is null
	doc.References = []*Reference{ref}

	resolver := newHandleResolver(doc)
	if err := resolver.Resolve(nil); err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if ref.BoundObject != noObjectIndex {
		t.Errorf("Resolve() on a null reference, got bound %d, want noObjectIndex", ref.BoundObject)
	}
}

func TestHandleResolverNoReferencesErrors(t *testing.T) {
	doc := newDocument()
	resolver := newHandleResolver(doc)
	if err := resolver.Resolve(nil); err == nil {
		t.Error("Resolve() with an empty reference list, got nil error, want ErrNoSections")
	}
}

func TestHandleResolverBuildsIndexAboveThreshold(t *testing.T) {
	doc := newDocument()
	for i := 0; i < handleIndexThreshold+1; i++ {
		doc.Objects = append(doc.Objects, Object{Index: i, Handle: Handle{Size: 1, Value: uint64(i + 1)}})
	}
	doc.References = []*Reference{
		{HandleRef: Handle{Size: 1, Value: 1}, AbsoluteRef: 1, BoundObject: noObjectIndex},
	}

	resolver := newHandleResolver(doc)
	if err := resolver.Resolve(nil); err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if resolver.index == nil {
		t.Error("Resolve() over an object set above handleIndexThreshold, got a nil index, want it built")
	}
}
