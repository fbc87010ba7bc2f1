// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

// This file holds the concrete per-kind payload structs that fill exactly
// one field of ObjectBody (§9 "closed tagged variant"). Each type's field
// list follows the same three-stage per-object layout from §4.8: the
// common prelude lives in ObjectBody.Entity/Object, so these structs only
// carry type-specific fields.

// TextEntity is a single-line text entity (DWG_TYPE_TEXT).
type TextEntity struct {
	Elevation    float64
	Insertion    Point2D
	Alignment    Point2D
	Extrusion    Point3D
	ThicknessVal float64
	Oblique      float64
	RotationRad  float64
	Height       float64
	WidthFactor  float64
	Value        string
	Generation   uint16
	HAlign       uint16
	VAlign       uint16
	StyleRef     *Reference
}

// LineEntity is a straight line segment (DWG_TYPE_LINE).
type LineEntity struct {
	Start     Point3D
	End       Point3D
	Thickness float64
	Extrusion Point3D
}

// CircleEntity is a circle (DWG_TYPE_CIRCLE).
type CircleEntity struct {
	Center    Point3D
	Radius    float64
	Thickness float64
	Extrusion Point3D
}

// ArcEntity is a circular arc (DWG_TYPE_ARC).
type ArcEntity struct {
	Center     Point3D
	Radius     float64
	Thickness  float64
	Extrusion  Point3D
	StartAngle float64
	EndAngle   float64
}

// PointEntity is a single point (DWG_TYPE_POINT).
type PointEntity struct {
	Position  Point3D
	Thickness float64
	Extrusion Point3D
	XAxisAng  float64
}

// EllipseEntity is an elliptical arc (DWG_TYPE_ELLIPSE).
type EllipseEntity struct {
	Center    Point3D
	MajorAxis Point3D
	Extrusion Point3D
	AxisRatio float64
	StartAng  float64
	EndAng    float64
}

// InsertEntity is a block reference (DWG_TYPE_INSERT).
type InsertEntity struct {
	Insertion  Point3D
	ScaleX     float64
	ScaleY     float64
	ScaleZ     float64
	RotationRad float64
	Extrusion  Point3D
	HasAttribs bool
	ObjectCount uint32
	BlockHeaderRef *Reference
	FirstAttribRef *Reference
	LastAttribRef  *Reference
	SeqendRef      *Reference
}

// BlockEntity is a BLOCK entity marking the start of a block definition's
// entity run (DWG_TYPE_BLOCK).
type BlockEntity struct {
	Name string
}

// EndblkEntity closes a block definition's entity run (DWG_TYPE_ENDBLK).
type EndblkEntity struct{}

// SeqendEntity closes a POLYLINE/INSERT's sub-entity run (DWG_TYPE_SEQEND).
type SeqendEntity struct{}

// Vertex2DEntity is a 2-D polyline vertex (DWG_TYPE_VERTEX_2D).
type Vertex2DEntity struct {
	Flags     uint8
	Point     Point2D
	StartW    float64
	EndW      float64
	Bulge     float64
	Tangent   float64
}

// Polyline2DEntity is a 2-D polyline header (DWG_TYPE_POLYLINE_2D).
type Polyline2DEntity struct {
	Flags       uint16
	CurveType   uint16
	StartWidth  float64
	EndWidth    float64
	Thickness   float64
	Elevation   float64
	Extrusion   Point3D
	FirstVertexRef *Reference
	LastVertexRef  *Reference
	SeqendRef      *Reference
}

// LwPolylineEntity is a lightweight polyline (DWG_TYPE_LWPLINE).
type LwPolylineEntity struct {
	Flags      uint16
	Width      float64
	Elevation  float64
	Thickness  float64
	Extrusion  Point3D
	Points     []Point2D
	Bulges     []float64
	Widths     [][2]float64 // {start, end} per vertex, when present
}

// BlockHeaderObject names and anchors a block definition
// (DWG_TYPE_BLOCK_HEADER).
type BlockHeaderObject struct {
	Name          string
	Flag          uint8
	BasePoint     Point3D
	XRefPName     string
	InsertCount   uint8
	Description   string
	PreviewData   []byte
	BlockEntityRef *Reference
	EndblkEntityRef *Reference
	FirstEntityRef  *Reference
	LastEntityRef   *Reference
	LayoutRef       *Reference
}

// LayerObject is a drawing layer's table entry (DWG_TYPE_LAYER).
type LayerObject struct {
	Name        string
	Flags       uint16
	Color       Color
	Frozen      bool
	On          bool
	FrozenByDefault bool
	Locked      bool
	LinetypeRef *Reference
	PlotStyleRef *Reference
	MaterialRef  *Reference
	LineweightVal int16
}

// LtypeObject is a linetype definition (DWG_TYPE_LTYPE).
type LtypeObject struct {
	Name        string
	Description string
	PatternLen  float64
	Alignment   byte
	Dashes      []float64
}

// StyleObject is a text style definition (DWG_TYPE_STYLE, previously named
// SHAPEFILE).
type StyleObject struct {
	Name         string
	Flags        uint16
	TextHeight   float64
	WidthFactor  float64
	ObliqueAngle float64
	GenFlags     uint8
	LastHeight   float64
	FontName     string
	BigFontName  string
}

// AppidObject registers an application's EED/XDATA namespace
// (DWG_TYPE_APPID).
type AppidObject struct {
	Name  string
	Flags uint8
}

// DictionaryObject is a generic handle-keyed name/value container
// (DWG_TYPE_DICTIONARY).
type DictionaryObject struct {
	NumItems    uint32
	Names       []string
	ItemRefs    []*Reference
	Cloning     uint8
	HardOwner   bool
}

// XrecordObject stores an arbitrary typed data chain for extension
// applications (DWG_TYPE_XRECORD).
type XrecordObject struct {
	Data        []EEDRecord
	Cloning     uint8
}

// LayoutObject carries plot/paper-space layout settings
// (DWG_TYPE_LAYOUT, dispatched either as a built-in or via
// Document.DwgOtLayout when the class table assigns it a >=500 number).
type LayoutObject struct {
	PageSetupName string
	PlotConfig    string
	PaperSize     string
	PlotOrigin    Point2D
	PlotWindow    [4]float64
	LayoutName    string
	TabOrder      int32
	Flag          int16
	UCSOrigin     Point3D
	BlockRef      *Reference
}

// MlineStyleObject is a multiline style definition (DWG_TYPE_MLINESTYLE).
type MlineStyleObject struct {
	Name        string
	Description string
	Flags       uint16
	FillColor   Color
	StartAngle  float64
	EndAngle    float64
	LineCount   uint8
}

// UcsObject is a named user coordinate system (DWG_TYPE_UCS).
type UcsObject struct {
	Name   string
	Origin Point3D
	XAxis  Point3D
	YAxis  Point3D
}

// ViewObject is a named view (DWG_TYPE_VIEW).
type ViewObject struct {
	Name        string
	Height      float64
	Width       float64
	Center      Point2D
	ViewDir     Point3D
	Target      Point3D
	LensLen     float64
	FrontClip   float64
	BackClip    float64
	ViewTwist   float64
	ViewMode    uint32
}
