// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "github.com/saferwall/dwg/internal/log"

// detectVersion reads the six-byte version code at the start of the file
// and reports whether this decoder recognizes it.
func detectVersion(data []byte) (Version, error) {
	if len(data) < 6 {
		return "", ErrUnexpectedEOF
	}
	v := Version(data[0:6])
	if !knownVersions[v] {
		return v, newError(KindUnsupportedVersion, "unrecognized version code "+string(v))
	}
	return v, nil
}

// decodeDocument is the top-level decode entry point: detect the version,
// dispatch to the flat (R13-R2000) or paged (R2004) archive reader, then run
// the second-pass handle resolution over every reference gathered along the
// way.
func decodeDocument(data []byte, logger *log.Helper, opts *Options) (*Document, error) {
	version, err := detectVersion(data)
	if err != nil {
		return nil, err
	}

	doc := newDocument()
	doc.Header.Version = version
	ctx := newDecodeContext(version, logger, opts, doc)

	switch version.layout() {
	case layoutFlat:
		if err := decodeFlatLayout(ctx, data); err != nil {
			return doc, err
		}
	case layoutPaged:
		if err := decodePagedLayout(ctx, data); err != nil {
			return doc, err
		}
	default:
		return doc, newError(KindUnsupported, "R2007 object graph is not implemented")
	}

	if opts != nil && opts.SkipHandleResolution {
		return doc, nil
	}
	resolver := newHandleResolver(doc)
	if err := resolver.Resolve(logger); err != nil {
		// An empty reference list on an otherwise successfully decoded file
		// is recorded as an anomaly rather than surfaced as a hard error,
		// matching the teacher's posture of degrading gracefully when a
		// downstream section is simply absent (e.g. a file with zero
		// cross-referencing objects).
		doc.addAnomaly("handle resolver: " + err.Error())
	}
	return doc, nil
}

// decodeFlatLayout reads the R13/R14/R2000 sectioned archive: a fixed
// preamble, a sentinel-bounded header, a sentinel-bounded class table, the
// object map, then every object it names.
func decodeFlatLayout(ctx *decodeContext, data []byte) error {
	bs := NewBitStream(data)

	bs.SeekByte(6) // past the 6-byte version code
	if _, err := bs.Bytes(13); err != nil { // reserved/ACADMAINTVER-adjacent bytes
		return err
	}

	if !searchSentinel(bs, SentinelHeaderEnd) {
		// The header variable stream is read from just after the header-end
		// sentinel; when that sentinel is absent, reading starts at the fixed
		// offset 0x15 instead.
		bs.SeekByte(0x15)
	}
	headerStart := bs.BytePos()
	bs.SeekByte(headerStart)

	hv, err := decodeHeaderVariables(ctx, bs)
	if err != nil {
		ctx.doc.addAnomaly("header variables: " + err.Error())
	}
	ctx.doc.Vars = hv
	ctx.doc.Header.HandseedRaw = hv.Handseed

	if searchSentinel(bs, SentinelClassesBegin) {
		classSize, err := bs.RL()
		if err != nil {
			return err
		}
		reg, err := decodeClassTableFlat(bs, classSize, ctx.doc)
		if err != nil {
			ctx.doc.addAnomaly("class table: " + err.Error())
		}
		ctx.doc.ClassTable = reg
		searchSentinel(bs, SentinelClassesEnd)
	} else {
		ctx.doc.ClassTable = newClassRegistry()
	}

	// The object map immediately follows, located either via a file-wide
	// section table (pre-R13c3) or directly after the class table; this
	// decoder takes the simpler direct-follow path, which covers the common
	// case and degrades to a partial object set on a mismatch.
	entries, err := decodeObjectMap(bs, ctx.version)
	if err != nil {
		ctx.doc.addAnomaly("object map: " + err.Error())
	}

	decoder := newObjectDecoder(ctx, ctx.doc.ClassTable)
	for _, e := range entries {
		obj, err := decoder.DecodeAt(data, e.Offset, 0)
		if err != nil {
			ctx.doc.addAnomaly("object decode: " + err.Error())
			continue
		}
		obj.Index = len(ctx.doc.Objects)
		ctx.doc.Objects = append(ctx.doc.Objects, obj)
	}
	return nil
}

// decodePagedLayout reads the R2004 compressed/encrypted page directory,
// then the logical HEADER, CLASSES and OBJECTS sections through it.
func decodePagedLayout(ctx *decodeContext, data []byte) error {
	if len(data) < 0x80 {
		return ErrUnexpectedEOF
	}
	preamble := make([]byte, 0x80)
	copy(preamble, data[:0x80])
	decryptHeaderLCG(preamble)

	bs := NewBitStream(data)
	bs.SeekByte(0x80)

	sectionMapData, err := readSystemSection(bs)
	if err != nil {
		return err
	}
	sectionInfoData, err := readSystemSection(bs)
	if err != nil {
		return err
	}

	entries, err := parseSectionMap(sectionMapData)
	if err != nil {
		return err
	}
	infos, err := parseSectionInfo(sectionInfoData)
	if err != nil {
		return err
	}
	smap := &sectionMap{entries: entries, infos: infos}

	if headerBS, err := smap.readLogicalSection(data, "AcDb:Header"); err == nil {
		hv, err := decodeHeaderVariables(ctx, headerBS)
		if err != nil {
			ctx.doc.addAnomaly("header variables: " + err.Error())
		}
		ctx.doc.Vars = hv
		ctx.doc.Header.HandseedRaw = hv.Handseed
	} else {
		ctx.doc.addAnomaly("header section: " + err.Error())
	}

	ctx.doc.ClassTable = newClassRegistry()
	if classBS, err := smap.readLogicalSection(data, "AcDb:Classes"); err == nil {
		reg, err := decodeClassTablePaged(classBS, ctx.doc)
		if err != nil {
			ctx.doc.addAnomaly("class table: " + err.Error())
		}
		ctx.doc.ClassTable = reg
	}

	objectsBS, err := smap.readLogicalSection(data, "AcDb:AcDbObjects")
	if err != nil {
		return err
	}
	entries2, err := decodeObjectMap(objectsBS, ctx.version)
	if err != nil {
		ctx.doc.addAnomaly("object map: " + err.Error())
	}

	handlesBS, err := smap.readLogicalSection(data, "AcDb:Handles")
	objData := objectsBS.buf
	if err == nil {
		objData = handlesBS.buf
	}

	decoder := newObjectDecoder(ctx, ctx.doc.ClassTable)
	for _, e := range entries2 {
		obj, err := decoder.DecodeAt(objData, e.Offset, 0)
		if err != nil {
			ctx.doc.addAnomaly("object decode: " + err.Error())
			continue
		}
		obj.Index = len(ctx.doc.Objects)
		ctx.doc.Objects = append(ctx.doc.Objects, obj)
	}
	return nil
}
