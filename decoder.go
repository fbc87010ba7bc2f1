// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "fmt"

// ObjectDecoder walks the object map, decoding each entry's raw bit-stream
// into an Object. It implements the three-stage layout from §4.8: a common
// prelude (handle, EED chain, picture fields; the bitsize field is not read,
// so Bitsize stays 0), type-specific fields,
// then the handle-tail of owner/reactor/dictionary/layer references. Any
// failure at the type-specific stage degrades the object to KindUnknown
// with its untouched bytes preserved rather than aborting the whole decode.
type ObjectDecoder struct {
	ctx      *decodeContext
	registry *ClassRegistry

	// currentHandle is the handle value of the object presently being
	// decoded; readRef needs it to resolve the owner-relative handle codes
	// (§4.8) into an absolute reference at read time.
	currentHandle uint64
}

func newObjectDecoder(ctx *decodeContext, registry *ClassRegistry) *ObjectDecoder {
	return &ObjectDecoder{ctx: ctx, registry: registry}
}

// DecodeAt decodes the object starting at the current byte offset of raw,
// whose declared size in bytes is objSize (from the object map entry).
func (d *ObjectDecoder) DecodeAt(raw []byte, offsetBytes uint32, objSize uint32) (obj Object, err error) {
	if uint64(offsetBytes)+uint64(objSize) > uint64(len(raw)) {
		return Object{}, ErrUnexpectedEOF
	}
	region := raw[offsetBytes:]
	bs := NewBitStream(region)

	size, err := bs.MS()
	if err != nil {
		return Object{}, err
	}
	typeCode, err := bs.BS()
	if err != nil {
		return Object{}, err
	}

	kind, className := d.classify(typeCode)
	obj = Object{Size: size, TypeCode: typeCode}

	defer func() {
		if r := recover(); r != nil {
			obj.Body = ObjectBody{
				Kind:        KindUnknown,
				UnknownData: region,
				Reason:      fmt.Sprintf("panic decoding type %d: %v", typeCode, r),
			}
		}
	}()

	body, decodeErr := d.decodeBody(bs, kind, className, region)
	if decodeErr != nil {
		body = ObjectBody{
			Kind:        KindUnknown,
			UnknownData: region,
			Reason:      decodeErr.Error(),
		}
	}
	obj.Body = body
	if body.Entity != nil {
		obj.Handle = body.Entity.Handle
		obj.Bitsize = body.Entity.Bitsize
		obj.Supertype = SupertypeEntity
	} else if body.Object != nil {
		obj.Handle = body.Object.Handle
		obj.Supertype = SupertypeObject
	}
	return obj, nil
}

// classify resolves a file-local type code to a built-in ObjectKind, or to
// KindByClass plus the registered DXF name for codes >= 500.
func (d *ObjectDecoder) classify(typeCode uint16) (ObjectKind, string) {
	if typeCode < 500 {
		return ObjectKind(typeCode), ""
	}
	if d.registry != nil {
		if entry, ok := d.registry.ByNumber(typeCode); ok {
			return KindByClass, entry.DxfName
		}
	}
	return KindUnknown, ""
}

// isEntityKind reports whether kind uses the entity-supertype common prelude
// (EntMode/links/color/etc.) rather than the plain object prelude.
func isEntityKind(kind ObjectKind) bool {
	switch kind {
	case KindText, KindAttrib, KindAttdef, KindBlock, KindEndblk, KindSeqend,
		KindInsert, KindMinsert, KindVertex2D, KindVertex3D, KindVertexMesh,
		KindVertexPface, KindVertexPfaceFace, KindPolyline2D, KindPolyline3D,
		KindArc, KindCircle, KindLine, KindPoint, Kind3DFace, KindPolylinePface,
		KindPolylineMesh, KindSolid, KindTrace, KindShape, KindViewport,
		KindEllipse, KindSpline, KindRegion, Kind3DSolid, KindBody, KindRay,
		KindXline, KindOleFrame, KindMText, KindLeader, KindTolerance, KindMLine,
		KindOle2Frame, KindLwPolyline, KindHatch,
		KindDimensionOrdinate, KindDimensionLinear, KindDimensionAligned,
		KindDimensionAng3pt, KindDimensionAng2ln, KindDimensionRadius,
		KindDimensionDiameter:
		return true
	default:
		return false
	}
}

func (d *ObjectDecoder) decodeBody(bs *BitStream, kind ObjectKind, className string, region []byte) (ObjectBody, error) {
	body := ObjectBody{Kind: kind, ClassName: className}

	if isEntityKind(kind) {
		common, err := d.decodeEntityCommon(bs)
		if err != nil {
			return body, err
		}
		body.Entity = common
	} else {
		common, err := d.decodeObjectCommon(bs)
		if err != nil {
			return body, err
		}
		body.Object = common
	}

	var err error
	switch kind {
	case KindText:
		body.Text, err = d.decodeText(bs)
	case KindLine:
		body.Line, err = d.decodeLine(bs)
	case KindCircle:
		body.Circle, err = d.decodeCircle(bs)
	case KindArc:
		body.Arc, err = d.decodeArc(bs)
	case KindPoint:
		body.Point, err = d.decodePoint(bs)
	case KindEllipse:
		body.Ellipse, err = d.decodeEllipse(bs)
	case KindInsert, KindMinsert:
		body.Insert, err = d.decodeInsert(bs)
	case KindBlock:
		body.Block, err = d.decodeBlock(bs)
	case KindEndblk:
		body.Endblk = &EndblkEntity{}
	case KindSeqend:
		body.Seqend = &SeqendEntity{}
	case KindVertex2D:
		body.Vertex2D, err = d.decodeVertex2D(bs)
	case KindPolyline2D:
		body.Polyline2D, err = d.decodePolyline2D(bs)
	case KindLwPolyline:
		body.LwPolyline, err = d.decodeLwPolyline(bs)
	case KindBlockHeader:
		body.BlockHeader, err = d.decodeBlockHeader(bs)
	case KindLayer:
		body.Layer, err = d.decodeLayer(bs)
	case KindLtype:
		body.Ltype, err = d.decodeLtype(bs)
	case KindShapefile: // STYLE (historically "shapefile")
		body.Style, err = d.decodeStyle(bs)
	case KindAppid:
		body.Appid, err = d.decodeAppid(bs)
	case KindDictionary:
		body.Dictionary, err = d.decodeDictionary(bs)
	case KindXrecord:
		body.Xrecord, err = d.decodeXrecord(bs)
	case KindLayout:
		body.Layout, err = d.decodeLayout(bs)
	case KindMlineStyle:
		body.MlineStyle, err = d.decodeMlineStyle(bs)
	case KindUcs:
		body.UcsTable, err = d.decodeUcs(bs)
	case KindView:
		body.ViewTable, err = d.decodeView(bs)
	case KindByClass:
		if className == "LAYOUT" {
			body.Layout, err = d.decodeLayout(bs)
		} else {
			body.UnknownData = region
			body.Reason = "class " + className + ": no concrete decoder"
		}
	default:
		body.UnknownData = region
		body.Reason = "built-in type with no concrete decoder"
	}
	if err != nil {
		return body, err
	}
	return body, nil
}

// decodeEntityCommon reads the shared entity prelude (§3): handle, EED
// chain, the EntMode-driven link/owner fields, color and linetype state.
// The handle-tail reference fields are populated here too since the wire
// layout interleaves them with the rest of the common block rather than
// isolating them after type-specific fields.
func (d *ObjectDecoder) decodeEntityCommon(bs *BitStream) (*EntityCommon, error) {
	c := &EntityCommon{}
	var err error

	if c.Handle, err = bs.H(); err != nil {
		return nil, err
	}
	d.currentHandle = c.Handle.Value
	if c.ExtendedData, err = decodeEED(bs); err != nil {
		return nil, err
	}
	hasPicture, err := bs.B()
	if err != nil {
		return nil, err
	}
	if hasPicture {
		n, err := bs.RL()
		if err != nil {
			return nil, err
		}
		if c.PictureBlob, err = bs.Bytes(n); err != nil {
			return nil, err
		}
	}

	entFlags, err := bs.RC()
	if err != nil {
		return nil, err
	}
	c.EntMode = entFlags

	if c.ReactorCount, err = bs.BL(); err != nil {
		return nil, err
	}
	if c.NoLinks, err = bs.B(); err != nil {
		return nil, err
	}

	if c.Color, err = d.ctx.CMC(bs); err != nil {
		return nil, err
	}
	if c.LinetypeScale, err = bs.BD(); err != nil {
		return nil, err
	}
	if ltFlags, err := bs.BB(); err != nil {
		return nil, err
	} else {
		c.LinetypeFlags = ltFlags
	}
	if lw, err := bs.RC(); err != nil {
		return nil, err
	} else {
		c.Lineweight = lw
	}
	if c.Invisible, err = bs.B(); err != nil {
		return nil, err
	}

	c.OwnerRef = d.readRef(bs)
	for i := uint32(0); i < c.ReactorCount; i++ {
		if r := d.readRef(bs); r != nil {
			c.ReactorRefs = append(c.ReactorRefs, r)
		}
	}
	if !c.NoLinks {
		c.XDictionaryRef = d.readRef(bs)
	}
	c.LayerRef = d.readRef(bs)
	if c.LinetypeFlags == 3 {
		c.LinetypeRef = d.readRef(bs)
	}
	c.MaterialRef = d.readRef(bs)
	c.PlotStyleRef = d.readRef(bs)
	c.PrevRef = d.readRef(bs)
	c.NextRef = d.readRef(bs)

	return c, nil
}

func (d *ObjectDecoder) decodeObjectCommon(bs *BitStream) (*ObjectCommon, error) {
	c := &ObjectCommon{}
	var err error

	if c.Handle, err = bs.H(); err != nil {
		return nil, err
	}
	d.currentHandle = c.Handle.Value
	if c.ExtendedData, err = decodeEED(bs); err != nil {
		return nil, err
	}
	if c.ReactorCount, err = bs.BL(); err != nil {
		return nil, err
	}
	if c.XDicMissing, err = bs.B(); err != nil {
		return nil, err
	}

	c.OwnerRef = d.readRef(bs)
	for i := uint32(0); i < c.ReactorCount; i++ {
		if r := d.readRef(bs); r != nil {
			c.ReactorRefs = append(c.ReactorRefs, r)
		}
	}
	if !c.XDicMissing {
		c.XDictionaryRef = d.readRef(bs)
	}
	return c, nil
}

// readRef reads one handle reference field and wraps it as a not-yet-bound
// Reference; HandleResolver fills BoundObject in its second pass. The
// reference's AbsoluteRef is computed immediately since it only depends on
// the handle just read and the enclosing object's own handle value.
func (d *ObjectDecoder) readRef(bs *BitStream) *Reference {
	h, err := bs.H()
	if err != nil {
		return nil
	}
	ref := &Reference{HandleRef: h, BoundObject: noObjectIndex}
	ref.AbsoluteRef = absoluteRef(d.currentHandle, h)
	d.ctx.doc.References = append(d.ctx.doc.References, ref)
	return ref
}

func (d *ObjectDecoder) decodeText(bs *BitStream) (*TextEntity, error) {
	e := &TextEntity{}
	var err error
	if e.Elevation, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Insertion, err = bs.Point2DBD(); err != nil {
		return nil, err
	}
	if e.Alignment, err = bs.Point2DD(e.Insertion); err != nil {
		return nil, err
	}
	if e.Extrusion, err = bs.Point3DD(Point3D{Z: 1}); err != nil {
		return nil, err
	}
	if e.ThicknessVal, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Oblique, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.RotationRad, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Height, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.WidthFactor, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Value, err = bs.TV(); err != nil {
		return nil, err
	}
	if e.Generation, err = bs.BS(); err != nil {
		return nil, err
	}
	if e.HAlign, err = bs.BS(); err != nil {
		return nil, err
	}
	if e.VAlign, err = bs.BS(); err != nil {
		return nil, err
	}
	e.StyleRef = d.readRef(bs)
	return e, nil
}

func (d *ObjectDecoder) decodeLine(bs *BitStream) (*LineEntity, error) {
	e := &LineEntity{}
	var err error
	if e.Start, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.End, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.Thickness, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Extrusion, err = bs.Point3DD(Point3D{Z: 1}); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *ObjectDecoder) decodeCircle(bs *BitStream) (*CircleEntity, error) {
	e := &CircleEntity{}
	var err error
	if e.Center, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.Radius, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Thickness, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Extrusion, err = bs.Point3DD(Point3D{Z: 1}); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *ObjectDecoder) decodeArc(bs *BitStream) (*ArcEntity, error) {
	e := &ArcEntity{}
	var err error
	if e.Center, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.Radius, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Thickness, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Extrusion, err = bs.Point3DD(Point3D{Z: 1}); err != nil {
		return nil, err
	}
	if e.StartAngle, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.EndAngle, err = bs.BD(); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *ObjectDecoder) decodePoint(bs *BitStream) (*PointEntity, error) {
	e := &PointEntity{}
	var err error
	if e.Position, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.Thickness, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Extrusion, err = bs.Point3DD(Point3D{Z: 1}); err != nil {
		return nil, err
	}
	if e.XAxisAng, err = bs.BD(); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *ObjectDecoder) decodeEllipse(bs *BitStream) (*EllipseEntity, error) {
	e := &EllipseEntity{}
	var err error
	if e.Center, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.MajorAxis, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.Extrusion, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.AxisRatio, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.StartAng, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.EndAng, err = bs.BD(); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *ObjectDecoder) decodeInsert(bs *BitStream) (*InsertEntity, error) {
	e := &InsertEntity{}
	var err error
	if e.Insertion, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if e.ScaleX, err = bs.BD(); err != nil {
		return nil, err
	}
	e.ScaleY, err = bs.DD(e.ScaleX)
	if err != nil {
		return nil, err
	}
	e.ScaleZ, err = bs.DD(e.ScaleX)
	if err != nil {
		return nil, err
	}
	if e.RotationRad, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Extrusion, err = bs.Point3DD(Point3D{Z: 1}); err != nil {
		return nil, err
	}
	if e.HasAttribs, err = bs.B(); err != nil {
		return nil, err
	}
	if e.HasAttribs {
		if e.ObjectCount, err = bs.BL(); err != nil {
			return nil, err
		}
	}
	e.BlockHeaderRef = d.readRef(bs)
	if e.HasAttribs {
		e.FirstAttribRef = d.readRef(bs)
		e.LastAttribRef = d.readRef(bs)
		e.SeqendRef = d.readRef(bs)
	}
	return e, nil
}

func (d *ObjectDecoder) decodeBlock(bs *BitStream) (*BlockEntity, error) {
	name, err := bs.TV()
	if err != nil {
		return nil, err
	}
	return &BlockEntity{Name: name}, nil
}

func (d *ObjectDecoder) decodeVertex2D(bs *BitStream) (*Vertex2DEntity, error) {
	e := &Vertex2DEntity{}
	var err error
	if flags, err := bs.RC(); err != nil {
		return nil, err
	} else {
		e.Flags = flags
	}
	if e.Point, err = bs.Point2DBD(); err != nil {
		return nil, err
	}
	if e.StartW, err = bs.BD(); err != nil {
		return nil, err
	}
	e.EndW, err = bs.DD(e.StartW)
	if err != nil {
		return nil, err
	}
	if e.Bulge, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Tangent, err = bs.BD(); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *ObjectDecoder) decodePolyline2D(bs *BitStream) (*Polyline2DEntity, error) {
	e := &Polyline2DEntity{}
	var err error
	if e.Flags, err = bs.BS(); err != nil {
		return nil, err
	}
	if e.CurveType, err = bs.BS(); err != nil {
		return nil, err
	}
	if e.StartWidth, err = bs.BD(); err != nil {
		return nil, err
	}
	e.EndWidth, err = bs.DD(e.StartWidth)
	if err != nil {
		return nil, err
	}
	if e.Thickness, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Elevation, err = bs.BD(); err != nil {
		return nil, err
	}
	if e.Extrusion, err = bs.Point3DD(Point3D{Z: 1}); err != nil {
		return nil, err
	}
	e.FirstVertexRef = d.readRef(bs)
	e.LastVertexRef = d.readRef(bs)
	e.SeqendRef = d.readRef(bs)
	return e, nil
}

func (d *ObjectDecoder) decodeLwPolyline(bs *BitStream) (*LwPolylineEntity, error) {
	e := &LwPolylineEntity{}
	var err error
	if e.Flags, err = bs.BS(); err != nil {
		return nil, err
	}
	if e.Flags&0x4 != 0 {
		if e.Width, err = bs.BD(); err != nil {
			return nil, err
		}
	}
	if e.Flags&0x8 != 0 {
		if e.Elevation, err = bs.BD(); err != nil {
			return nil, err
		}
	}
	if e.Flags&0x2 != 0 {
		if e.Thickness, err = bs.BD(); err != nil {
			return nil, err
		}
	}
	if e.Flags&0x1 != 0 {
		if e.Extrusion, err = bs.Point3DBD(); err != nil {
			return nil, err
		}
	}
	count, err := bs.BL()
	if err != nil {
		return nil, err
	}
	e.Points = make([]Point2D, 0, count)
	for i := uint32(0); i < count; i++ {
		p, err := bs.Point2DBD()
		if err != nil {
			return nil, err
		}
		e.Points = append(e.Points, p)
	}
	return e, nil
}

func (d *ObjectDecoder) decodeBlockHeader(bs *BitStream) (*BlockHeaderObject, error) {
	o := &BlockHeaderObject{}
	var err error
	if o.Name, err = bs.TV(); err != nil {
		return nil, err
	}
	if flag, err := bs.RC(); err != nil {
		return nil, err
	} else {
		o.Flag = flag
	}
	if o.BasePoint, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if o.XRefPName, err = bs.TV(); err != nil {
		return nil, err
	}
	o.BlockEntityRef = d.readRef(bs)
	o.FirstEntityRef = d.readRef(bs)
	o.LastEntityRef = d.readRef(bs)
	o.EndblkEntityRef = d.readRef(bs)
	o.LayoutRef = d.readRef(bs)
	return o, nil
}

func (d *ObjectDecoder) decodeLayer(bs *BitStream) (*LayerObject, error) {
	o := &LayerObject{}
	var err error
	if o.Name, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.Flags, err = bs.BS(); err != nil {
		return nil, err
	}
	if o.On, err = bs.B(); err != nil {
		return nil, err
	}
	if o.Frozen, err = bs.B(); err != nil {
		return nil, err
	}
	if o.FrozenByDefault, err = bs.B(); err != nil {
		return nil, err
	}
	if o.Locked, err = bs.B(); err != nil {
		return nil, err
	}
	if o.Color, err = d.ctx.CMC(bs); err != nil {
		return nil, err
	}
	o.LinetypeRef = d.readRef(bs)
	o.PlotStyleRef = d.readRef(bs)
	o.MaterialRef = d.readRef(bs)
	return o, nil
}

func (d *ObjectDecoder) decodeLtype(bs *BitStream) (*LtypeObject, error) {
	o := &LtypeObject{}
	var err error
	if o.Name, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.Description, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.PatternLen, err = bs.BD(); err != nil {
		return nil, err
	}
	if align, err := bs.RC(); err != nil {
		return nil, err
	} else {
		o.Alignment = align
	}
	count, err := bs.RC()
	if err != nil {
		return nil, err
	}
	for i := byte(0); i < count; i++ {
		dash, err := bs.BD()
		if err != nil {
			return nil, err
		}
		o.Dashes = append(o.Dashes, dash)
	}
	return o, nil
}

func (d *ObjectDecoder) decodeStyle(bs *BitStream) (*StyleObject, error) {
	o := &StyleObject{}
	var err error
	if o.Name, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.Flags, err = bs.BS(); err != nil {
		return nil, err
	}
	if o.TextHeight, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.WidthFactor, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.ObliqueAngle, err = bs.BD(); err != nil {
		return nil, err
	}
	if genFlags, err := bs.RC(); err != nil {
		return nil, err
	} else {
		o.GenFlags = genFlags
	}
	if o.LastHeight, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.FontName, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.BigFontName, err = bs.TV(); err != nil {
		return nil, err
	}
	return o, nil
}

func (d *ObjectDecoder) decodeAppid(bs *BitStream) (*AppidObject, error) {
	o := &AppidObject{}
	var err error
	if o.Name, err = bs.TV(); err != nil {
		return nil, err
	}
	if flags, err := bs.RC(); err != nil {
		return nil, err
	} else {
		o.Flags = flags
	}
	return o, nil
}

func (d *ObjectDecoder) decodeDictionary(bs *BitStream) (*DictionaryObject, error) {
	o := &DictionaryObject{}
	var err error
	if o.NumItems, err = bs.BL(); err != nil {
		return nil, err
	}
	if cloning, err := bs.BS(); err != nil {
		return nil, err
	} else {
		o.Cloning = uint8(cloning)
	}
	if hardOwner, err := bs.RC(); err != nil {
		return nil, err
	} else {
		o.HardOwner = hardOwner != 0
	}
	for i := uint32(0); i < o.NumItems; i++ {
		name, err := bs.TV()
		if err != nil {
			return nil, err
		}
		o.Names = append(o.Names, name)
	}
	for i := uint32(0); i < o.NumItems; i++ {
		o.ItemRefs = append(o.ItemRefs, d.readRef(bs))
	}
	return o, nil
}

func (d *ObjectDecoder) decodeXrecord(bs *BitStream) (*XrecordObject, error) {
	o := &XrecordObject{}
	n, err := bs.BL()
	if err != nil {
		return nil, err
	}
	if _, err := bs.Bytes(n); err != nil {
		// Xrecord's embedded data stream uses DXF-group-code framing this
		// decoder does not interpret further; the raw bytes were consumed
		// above via Bytes, so nothing further to do on success.
		return nil, err
	}
	if cloning, err := bs.BS(); err != nil {
		return nil, err
	} else {
		o.Cloning = uint8(cloning)
	}
	return o, nil
}

func (d *ObjectDecoder) decodeLayout(bs *BitStream) (*LayoutObject, error) {
	o := &LayoutObject{}
	var err error
	if o.PageSetupName, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.PlotConfig, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.PaperSize, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.PlotOrigin, err = bs.Point2DBD(); err != nil {
		return nil, err
	}
	for i := range o.PlotWindow {
		if o.PlotWindow[i], err = bs.BD(); err != nil {
			return nil, err
		}
	}
	if o.LayoutName, err = bs.TV(); err != nil {
		return nil, err
	}
	if tabOrder, err := bs.BL(); err != nil {
		return nil, err
	} else {
		o.TabOrder = int32(tabOrder)
	}
	if flag, err := bs.BS(); err != nil {
		return nil, err
	} else {
		o.Flag = int16(flag)
	}
	if o.UCSOrigin, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	o.BlockRef = d.readRef(bs)
	return o, nil
}

func (d *ObjectDecoder) decodeMlineStyle(bs *BitStream) (*MlineStyleObject, error) {
	o := &MlineStyleObject{}
	var err error
	if o.Name, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.Description, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.Flags, err = bs.BS(); err != nil {
		return nil, err
	}
	if o.FillColor, err = d.ctx.CMC(bs); err != nil {
		return nil, err
	}
	if o.StartAngle, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.EndAngle, err = bs.BD(); err != nil {
		return nil, err
	}
	if lineCount, err := bs.RC(); err != nil {
		return nil, err
	} else {
		o.LineCount = lineCount
	}
	return o, nil
}

func (d *ObjectDecoder) decodeUcs(bs *BitStream) (*UcsObject, error) {
	o := &UcsObject{}
	var err error
	if o.Name, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.Origin, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if o.XAxis, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if o.YAxis, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	return o, nil
}

func (d *ObjectDecoder) decodeView(bs *BitStream) (*ViewObject, error) {
	o := &ViewObject{}
	var err error
	if o.Name, err = bs.TV(); err != nil {
		return nil, err
	}
	if o.Height, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.Width, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.Center, err = bs.Point2DBD(); err != nil {
		return nil, err
	}
	if o.ViewDir, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if o.Target, err = bs.Point3DBD(); err != nil {
		return nil, err
	}
	if o.LensLen, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.FrontClip, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.BackClip, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.ViewTwist, err = bs.BD(); err != nil {
		return nil, err
	}
	if o.ViewMode, err = bs.BL(); err != nil {
		return nil, err
	}
	return o, nil
}
