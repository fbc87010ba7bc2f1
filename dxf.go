// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import (
	"fmt"
	"io"
	"strconv"
)

// dxfWriter accumulates group-code/value pairs, matching the flat
// "code\nvalue\n" line pairing every DXF consumer expects (ASCII form only;
// binary DXF is out of scope).
type dxfWriter struct {
	w   io.Writer
	err error
}

func newDXFWriter(w io.Writer) *dxfWriter {
	return &dxfWriter{w: w}
}

func (d *dxfWriter) pair(code int, value string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%3d\n%s\n", code, value)
}

func (d *dxfWriter) intPair(code int, value int64)     { d.pair(code, strconv.FormatInt(value, 10)) }
func (d *dxfWriter) floatPair(code int, value float64)  { d.pair(code, strconv.FormatFloat(value, 'f', -1, 64)) }
func (d *dxfWriter) handlePair(code int, h Handle)      { d.pair(code, h.String()) }
func (d *dxfWriter) point2D(base int, p Point2D) {
	d.floatPair(base, p.X)
	d.floatPair(base+10, p.Y)
}
func (d *dxfWriter) point3D(base int, p Point3D) {
	d.floatPair(base, p.X)
	d.floatPair(base+10, p.Y)
	d.floatPair(base+20, p.Z)
}

// WriteDXF renders the decoded Document as an ASCII DXF interchange file:
// HEADER, CLASSES, TABLES, BLOCKS, ENTITIES, OBJECTS, then EOF, per
// out_dxf.c's section router (SUPPLEMENTED FEATURE 4). Output is
// deterministic for a fixed Document: objects are walked in
// Document.Objects order, which is itself the stable order the object map
// produced them in.
func (doc *Document) WriteDXF(w io.Writer) error {
	d := newDXFWriter(w)

	d.writeHeaderSection(doc)
	d.writeClassesSection(doc)
	d.writeTablesSection(doc)
	d.writeBlocksSection(doc)
	d.writeEntitiesSection(doc)
	d.writeObjectsSection(doc)

	d.pair(0, "EOF")
	return d.err
}

func (d *dxfWriter) section(name string, body func()) {
	d.pair(0, "SECTION")
	d.pair(2, name)
	body()
	d.pair(0, "ENDSEC")
}

// writeHeaderSection emits the subset of HeaderVariables the rest of the
// pack's DXF consumers actually key on (insertion base, extents, HANDSEED),
// matching out_dxf.c's $VAR-per-group-9 framing (SUPPLEMENTED FEATURE 3).
func (d *dxfWriter) writeHeaderSection(doc *Document) {
	d.section("HEADER", func() {
		v := doc.Vars
		d.pair(9, "$INSBASE")
		d.point3D(10, v.Insbase)
		d.pair(9, "$EXTMIN")
		d.point3D(10, v.Extmin)
		d.pair(9, "$EXTMAX")
		d.point3D(10, v.Extmax)
		d.pair(9, "$LTSCALE")
		d.floatPair(40, v.Ltscale)
		d.pair(9, "$TEXTSIZE")
		d.floatPair(40, v.Textsize)
		d.pair(9, "$TEXTSTYLE")
		d.pair(7, v.Textstyle)
		d.pair(9, "$CELTYPE")
		d.pair(6, v.Celtype)
		d.pair(9, "$HANDSEED")
		d.handlePair(5, doc.Header.HandseedRaw)
	})
}

func (d *dxfWriter) writeClassesSection(doc *Document) {
	d.section("CLASSES", func() {
		if doc.ClassTable == nil {
			return
		}
		for _, c := range doc.ClassTable.Entries() {
			d.pair(0, "CLASS")
			d.pair(1, c.DxfName)
			d.pair(2, c.CppName)
			d.pair(3, c.AppName)
			d.intPair(90, int64(c.ItemClassID))
			d.intPair(91, int64(c.InstanceCount))
			d.intPair(281, int64(boolToInt(c.WasZombie)))
		}
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// tableSections lists the table-style object bodies out_dxf.c buckets under
// the TABLES section instead of the flat OBJECTS bucket spec.md describes
// generically (SUPPLEMENTED FEATURE 4).
var tableSections = []struct {
	name string
	sel  func(ObjectBody) bool
}{
	{"LAYER", func(b ObjectBody) bool { return b.Layer != nil }},
	{"LTYPE", func(b ObjectBody) bool { return b.Ltype != nil }},
	{"STYLE", func(b ObjectBody) bool { return b.Style != nil }},
	{"VIEW", func(b ObjectBody) bool { return b.ViewTable != nil }},
	{"UCS", func(b ObjectBody) bool { return b.UcsTable != nil }},
	{"APPID", func(b ObjectBody) bool { return b.Appid != nil }},
	{"BLOCK_RECORD", func(b ObjectBody) bool { return b.BlockHeader != nil }},
}

func (d *dxfWriter) writeTablesSection(doc *Document) {
	d.section("TABLES", func() {
		for _, t := range tableSections {
			count := 0
			for _, obj := range doc.Objects {
				if t.sel(obj.Body) {
					count++
				}
			}
			d.pair(0, "TABLE")
			d.pair(2, t.name)
			d.intPair(70, int64(count))
			for _, obj := range doc.Objects {
				if t.sel(obj.Body) {
					d.writeTableEntry(obj)
				}
			}
			d.pair(0, "ENDTAB")
		}
	})
}

func (d *dxfWriter) writeTableEntry(obj Object) {
	switch {
	case obj.Body.Layer != nil:
		l := obj.Body.Layer
		d.pair(0, "LAYER")
		d.handlePair(5, obj.Handle)
		d.pair(2, l.Name)
		d.intPair(70, int64(l.Flags))
		d.intPair(62, int64(l.Color.Index))
	case obj.Body.Ltype != nil:
		lt := obj.Body.Ltype
		d.pair(0, "LTYPE")
		d.handlePair(5, obj.Handle)
		d.pair(2, lt.Name)
		d.pair(3, lt.Description)
		d.intPair(73, int64(len(lt.Dashes)))
		d.floatPair(40, lt.PatternLen)
		for _, dash := range lt.Dashes {
			d.floatPair(49, dash)
		}
	case obj.Body.Style != nil:
		s := obj.Body.Style
		d.pair(0, "STYLE")
		d.handlePair(5, obj.Handle)
		d.pair(2, s.Name)
		d.floatPair(40, s.TextHeight)
		d.floatPair(41, s.WidthFactor)
		d.floatPair(50, s.ObliqueAngle)
		d.pair(3, s.FontName)
		d.pair(4, s.BigFontName)
	case obj.Body.ViewTable != nil:
		v := obj.Body.ViewTable
		d.pair(0, "VIEW")
		d.handlePair(5, obj.Handle)
		d.pair(2, v.Name)
		d.floatPair(40, v.Height)
		d.floatPair(41, v.Width)
		d.point2D(10, v.Center)
	case obj.Body.UcsTable != nil:
		u := obj.Body.UcsTable
		d.pair(0, "UCS")
		d.handlePair(5, obj.Handle)
		d.pair(2, u.Name)
		d.point3D(10, u.Origin)
		d.point3D(11, u.XAxis)
		d.point3D(12, u.YAxis)
	case obj.Body.Appid != nil:
		a := obj.Body.Appid
		d.pair(0, "APPID")
		d.handlePair(5, obj.Handle)
		d.pair(2, a.Name)
		d.intPair(70, int64(a.Flags))
	case obj.Body.BlockHeader != nil:
		bh := obj.Body.BlockHeader
		d.pair(0, "BLOCK_RECORD")
		d.handlePair(5, obj.Handle)
		d.pair(2, bh.Name)
	}
}

func (d *dxfWriter) writeBlocksSection(doc *Document) {
	d.section("BLOCKS", func() {
		for _, obj := range doc.Objects {
			if obj.Body.Block == nil {
				continue
			}
			d.pair(0, "BLOCK")
			d.handlePair(5, obj.Handle)
			d.pair(2, obj.Body.Block.Name)
			d.writeEntityRun(doc, obj)
			d.pair(0, "ENDBLK")
		}
	})
}

// writeEntityRun emits every entity whose OwnerRef.AbsoluteRef equals the
// given BLOCK entity's handle value; writeBlocksSection uses it for in-block
// entity runs.
func (d *dxfWriter) writeEntityRun(doc *Document, owner Object) {
	for _, obj := range doc.Objects {
		ent := obj.Body.Entity
		if ent == nil || ent.OwnerRef == nil {
			continue
		}
		if ent.OwnerRef.AbsoluteRef != owner.Handle.Value {
			continue
		}
		d.writeEntity(obj)
	}
}

func (d *dxfWriter) writeEntitiesSection(doc *Document) {
	d.section("ENTITIES", func() {
		for _, obj := range doc.Objects {
			if obj.Body.Entity == nil {
				continue
			}
			if obj.Body.Block != nil || obj.Body.Endblk != nil {
				continue // framed inside BLOCKS instead
			}
			d.writeEntity(obj)
		}
	})
}

func (d *dxfWriter) writeEntity(obj Object) {
	b := obj.Body
	switch {
	case b.Line != nil:
		e := b.Line
		d.pair(0, "LINE")
		d.handlePair(5, obj.Handle)
		d.point3D(10, e.Start)
		d.point3D(11, e.End)
		d.floatPair(39, e.Thickness)
	case b.Circle != nil:
		e := b.Circle
		d.pair(0, "CIRCLE")
		d.handlePair(5, obj.Handle)
		d.point3D(10, e.Center)
		d.floatPair(40, e.Radius)
		d.floatPair(39, e.Thickness)
	case b.Arc != nil:
		e := b.Arc
		d.pair(0, "ARC")
		d.handlePair(5, obj.Handle)
		d.point3D(10, e.Center)
		d.floatPair(40, e.Radius)
		d.floatPair(50, e.StartAngle)
		d.floatPair(51, e.EndAngle)
	case b.Point != nil:
		e := b.Point
		d.pair(0, "POINT")
		d.handlePair(5, obj.Handle)
		d.point3D(10, e.Position)
	case b.Text != nil:
		e := b.Text
		d.pair(0, "TEXT")
		d.handlePair(5, obj.Handle)
		d.point2D(10, e.Insertion)
		d.floatPair(40, e.Height)
		d.pair(1, e.Value)
		d.floatPair(50, e.RotationRad)
	case b.Ellipse != nil:
		e := b.Ellipse
		d.pair(0, "ELLIPSE")
		d.handlePair(5, obj.Handle)
		d.point3D(10, e.Center)
		d.point3D(11, e.MajorAxis)
		d.floatPair(40, e.AxisRatio)
		d.floatPair(41, e.StartAng)
		d.floatPair(42, e.EndAng)
	case b.Insert != nil:
		e := b.Insert
		d.pair(0, "INSERT")
		d.handlePair(5, obj.Handle)
		d.point3D(10, e.Insertion)
		d.floatPair(41, e.ScaleX)
		d.floatPair(42, e.ScaleY)
		d.floatPair(43, e.ScaleZ)
		d.floatPair(50, e.RotationRad)
	case b.LwPolyline != nil:
		e := b.LwPolyline
		d.pair(0, "LWPOLYLINE")
		d.handlePair(5, obj.Handle)
		d.intPair(90, int64(len(e.Points)))
		d.intPair(70, int64(e.Flags))
		for _, p := range e.Points {
			d.point2D(10, p)
		}
	case b.Vertex2D != nil:
		e := b.Vertex2D
		d.pair(0, "VERTEX")
		d.handlePair(5, obj.Handle)
		d.point2D(10, e.Point)
	case b.Polyline2D != nil:
		e := b.Polyline2D
		d.pair(0, "POLYLINE")
		d.handlePair(5, obj.Handle)
		d.intPair(70, int64(e.Flags))
		d.floatPair(40, e.StartWidth)
		d.floatPair(41, e.EndWidth)
	case b.UnknownData != nil || b.Reason != "":
		// An object this decoder could not resolve is skipped rather than
		// emitted as a malformed entity; the Reason is still reachable via
		// Document.Objects for callers that want to report it.
	}
}

func (d *dxfWriter) writeObjectsSection(doc *Document) {
	d.section("OBJECTS", func() {
		for _, obj := range doc.Objects {
			switch {
			case obj.Body.Dictionary != nil:
				dict := obj.Body.Dictionary
				d.pair(0, "DICTIONARY")
				d.handlePair(5, obj.Handle)
				for i, name := range dict.Names {
					d.pair(3, name)
					if i < len(dict.ItemRefs) && dict.ItemRefs[i] != nil {
						d.pair(350, fmt.Sprintf("%X", dict.ItemRefs[i].AbsoluteRef))
					}
				}
			case obj.Body.Xrecord != nil:
				d.pair(0, "XRECORD")
				d.handlePair(5, obj.Handle)
			case obj.Body.Layout != nil:
				lo := obj.Body.Layout
				d.pair(0, "LAYOUT")
				d.handlePair(5, obj.Handle)
				d.pair(1, lo.LayoutName)
				d.intPair(70, int64(lo.Flag))
				d.intPair(71, int64(lo.TabOrder))
			case obj.Body.MlineStyle != nil:
				ms := obj.Body.MlineStyle
				d.pair(0, "MLINESTYLE")
				d.handlePair(5, obj.Handle)
				d.pair(2, ms.Name)
				d.intPair(70, int64(ms.Flags))
			}
		}
	})
}
