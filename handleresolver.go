// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "github.com/cespare/xxhash/v2"

// handleIndexThreshold is the object-count above which HandleResolver builds
// an xxhash-keyed index instead of scanning Document.Objects linearly for
// every reference; below it the scan is cheaper than the index's upkeep.
const handleIndexThreshold = 256

// HandleResolver runs the decoder's second pass (§4.8, §9): every handle
// reference collected in stream order during decode is bound here, once,
// against the append-only Objects sequence, using ObjectIndex rather than
// pointers so the resulting graph can hold cycles without leaking.
type HandleResolver struct {
	doc   *Document
	index map[uint64]ObjectIndex
}

func newHandleResolver(doc *Document) *HandleResolver {
	return &HandleResolver{doc: doc}
}

func (r *HandleResolver) buildIndex() {
	r.index = make(map[uint64]ObjectIndex, len(r.doc.Objects))
	for i, obj := range r.doc.Objects {
		r.index[hashHandle(obj.Handle.Value)] = i
	}
}

func hashHandle(v uint64) uint64 {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}

func (r *HandleResolver) lookup(value uint64) (ObjectIndex, bool) {
	if r.index != nil {
		idx, ok := r.index[hashHandle(value)]
		return idx, ok
	}
	for i, obj := range r.doc.Objects {
		if obj.Handle.Value == value {
			return i, true
		}
	}
	return noObjectIndex, false
}

// Resolve binds every Reference gathered during decode to its owning
// Object's index. It returns ErrNoSections when invoked against an empty
// work list, a condition that only arises from a malformed file whose
// object map produced zero entries. References that name a handle absent
// from Objects are left with BoundObject == noObjectIndex and logged once
// at warn level rather than treated as fatal, since dangling references are
// common in real-world files (deleted objects whose handles were never
// reused).
func (r *HandleResolver) Resolve(logger interface {
	Warnf(string, ...interface{})
}) error {
	if len(r.doc.References) == 0 {
		return ErrNoSections
	}
	if len(r.doc.Objects) > handleIndexThreshold {
		r.buildIndex()
	}

	misses := 0
	for i := range r.doc.References {
		ref := r.doc.References[i]
		if ref.HandleRef.IsNull() {
			continue
		}
		idx, ok := r.lookup(ref.AbsoluteRef)
		if !ok {
			misses++
			continue
		}
		r.doc.References[i].BoundObject = idx
	}
	if misses > 0 && logger != nil {
		logger.Warnf("handle resolver: %d of %d references did not bind to an object", misses, len(r.doc.References))
	}
	return nil
}
