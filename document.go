// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

// FileHeader carries the archive-layout-independent facts every version
// exposes: the six-byte version code and the preview/second-header blobs
// supplemented beyond spec.md's minimal header model.
type FileHeader struct {
	Version      Version
	MaintVersion byte
	PreviewImage []byte // SUPPLEMENTED: thumbnail bitmap between sentinels
	SecondHeader []byte // SUPPLEMENTED: raw second-header blob, unparsed
	HandseedRaw  Handle // next-available handle, echoed into DXF HANDSEED
}

// Document is the root decode product: every section this decoder
// understands, assembled and (optionally) handle-resolved.
type Document struct {
	Header      FileHeader
	Vars        HeaderVariables
	ClassTable  *ClassRegistry
	Objects     []Object
	References  []*Reference
	Auxiliary   map[string][]byte // SUPPLEMENTED: named sections kept verbatim

	// DwgOtLayout is the class-table-assigned number for the LAYOUT class,
	// 0 if the file never registers one (pre-R2000 files route layouts
	// through built-in KindLayout instead).
	DwgOtLayout uint16

	Anomalies []string

	// nextHandle is the HANDSEED value, advanced as new handles are minted;
	// unused by decode (read-only), reserved for a future write path.
	nextHandle uint64
}

func newDocument() *Document {
	return &Document{Auxiliary: make(map[string][]byte)}
}

// FindByHandle looks up a decoded object by its raw handle value with a
// linear scan of Document.Objects, so it works both before and after
// HandleResolver.Resolve has run.
func (d *Document) FindByHandle(value uint64) (*Object, bool) {
	for i := range d.Objects {
		if d.Objects[i].Handle.Value == value {
			return &d.Objects[i], true
		}
	}
	return nil, false
}

// addAnomaly records a non-fatal decode irregularity, mirroring the
// teacher's append-only Anomalies catalog.
func (d *Document) addAnomaly(msg string) {
	d.Anomalies = append(d.Anomalies, msg)
}
