// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

// objectMapEntry is one (handle, file offset) pair from the object map
// section, delta-coded against the previous entry per §4.7.
type objectMapEntry struct {
	Handle uint64
	Offset uint32
}

// objectMapBudgetBytes caps a single object-map sub-section per version,
// matching the container's hard limit of 2035 bytes pre-R2004 and 2034 for
// R2004+.
func objectMapBudgetBytes(v Version) uint32 {
	if v.atLeast(VersionR2004) {
		return 2034
	}
	return 2035
}

// decodeObjectMap reads the full object map: a sequence of size-prefixed
// sub-sections, each holding delta-coded (handle, offset) pairs, terminated
// by a sub-section whose declared size is 2 (just the terminator itself).
func decodeObjectMap(bs *BitStream, version Version) ([]objectMapEntry, error) {
	var entries []objectMapEntry
	budget := objectMapBudgetBytes(version)

	for {
		subSize, err := bs.RS()
		if err != nil {
			return entries, err
		}
		if subSize <= 2 {
			break
		}
		if uint32(subSize) > budget {
			return entries, newError(KindCorrupt, "object map: sub-section exceeds budget")
		}
		endBit := bs.BitPos() + uint64(subSize-2)*8

		lastHandle := uint64(0)
		lastOffset := int64(0)
		for bs.BitPos() < endBit {
			hDelta, err := bs.MC()
			if err != nil {
				return entries, err
			}
			oDelta, err := bs.MC()
			if err != nil {
				return entries, err
			}
			lastHandle = uint64(int64(lastHandle) + int64(hDelta))
			lastOffset += int64(oDelta)
			entries = append(entries, objectMapEntry{
				Handle: lastHandle,
				Offset: uint32(lastOffset),
			})
		}
		// CRC trailer: read and skipped; it is not checked or logged.
		if _, err := bs.RS(); err != nil {
			return entries, err
		}
	}
	return entries, nil
}
