// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

// ClassEntry is one row of the file's dynamic class table, mapping a
// file-local numeric type code (>= 500) to a class name triple.
type ClassEntry struct {
	Number       uint16
	Version      uint16
	AppName      string
	CppName      string
	DxfName      string
	WasZombie    bool
	ItemClassID  uint16
	InstanceCount uint32
	DwgVersion    uint16
	MaintVersion  uint16
}

// ClassRegistry holds the ordered class table and indexes it by number for
// §4.8's type>=500 dispatch.
type ClassRegistry struct {
	entries []ClassEntry
	byNum   map[uint16]*ClassEntry
}

func newClassRegistry() *ClassRegistry {
	return &ClassRegistry{byNum: make(map[uint16]*ClassEntry)}
}

// Entries returns the class table in file order.
func (r *ClassRegistry) Entries() []ClassEntry { return r.entries }

// Len reports the number of class entries.
func (r *ClassRegistry) Len() int { return len(r.entries) }

// ByNumber looks up a class entry by its file-local number.
func (r *ClassRegistry) ByNumber(number uint16) (ClassEntry, bool) {
	e, ok := r.byNum[number]
	if !ok {
		return ClassEntry{}, false
	}
	return *e, true
}

func (r *ClassRegistry) add(e ClassEntry, doc *Document) {
	r.entries = append(r.entries, e)
	r.byNum[e.Number] = &r.entries[len(r.entries)-1]
	if e.DxfName == "LAYOUT" {
		doc.DwgOtLayout = e.Number
	}
}

// decodeClassTableFlat decodes the R13-R15 flat class table: a sequence of
// fixed-shape records read until the section byte budget is exhausted.
func decodeClassTableFlat(bs *BitStream, budgetBytes uint32, doc *Document) (*ClassRegistry, error) {
	reg := newClassRegistry()
	endBit := bs.BitPos() + uint64(budgetBytes)*8
	for bs.BitPos()+8 <= endBit {
		e, err := readClassRecord(bs, false)
		if err != nil {
			break
		}
		reg.add(e, doc)
	}
	return reg, nil
}

// decodeClassTablePaged decodes the R2004 class table: the same records
// preceded by a size/max_number/reserved preamble, each carrying four
// additional fields.
func decodeClassTablePaged(bs *BitStream, doc *Document) (*ClassRegistry, error) {
	reg := newClassRegistry()

	if _, err := bs.RL(); err != nil { // size
		return reg, err
	}
	if _, err := bs.BS(); err != nil { // max_number
		return reg, err
	}
	if _, err := bs.RC(); err != nil { // reserved byte 1
		return reg, err
	}
	if _, err := bs.RC(); err != nil { // reserved byte 2
		return reg, err
	}
	if _, err := bs.B(); err != nil { // flag bit
		return reg, err
	}

	for bs.Remaining() > 16 {
		e, err := readClassRecord(bs, true)
		if err != nil {
			break
		}
		reg.add(e, doc)
	}
	return reg, nil
}

func readClassRecord(bs *BitStream, paged bool) (ClassEntry, error) {
	var e ClassEntry
	var err error

	if e.Number, err = bs.BS(); err != nil {
		return e, err
	}
	if e.Version, err = bs.BS(); err != nil {
		return e, err
	}
	if e.AppName, err = bs.TV(); err != nil {
		return e, err
	}
	if e.CppName, err = bs.TV(); err != nil {
		return e, err
	}
	if e.DxfName, err = bs.TV(); err != nil {
		return e, err
	}
	if e.WasZombie, err = bs.B(); err != nil {
		return e, err
	}
	if e.ItemClassID, err = bs.BS(); err != nil {
		return e, err
	}

	if paged {
		if e.InstanceCount, err = bs.BL(); err != nil {
			return e, err
		}
		if e.DwgVersion, err = bs.BS(); err != nil {
			return e, err
		}
		if e.MaintVersion, err = bs.BS(); err != nil {
			return e, err
		}
		if _, err = bs.BL(); err != nil { // reserved
			return e, err
		}
		if _, err = bs.BL(); err != nil { // reserved
			return e, err
		}
	}
	return e, nil
}
