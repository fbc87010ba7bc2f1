// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

// ObjectKind is the built-in (type < 500) numeric dispatch code, matching
// the fixed, closed DWG_TYPE_* enumeration.
type ObjectKind uint16

// Built-in object/entity type codes.
const (
	KindUnknown ObjectKind = 0

	KindText                ObjectKind = 1
	KindAttrib               ObjectKind = 2
	KindAttdef                ObjectKind = 3
	KindBlock                 ObjectKind = 4
	KindEndblk                ObjectKind = 5
	KindSeqend                ObjectKind = 6
	KindInsert                ObjectKind = 7
	KindMinsert               ObjectKind = 8
	KindVertex2D              ObjectKind = 10
	KindVertex3D              ObjectKind = 11
	KindVertexMesh            ObjectKind = 12
	KindVertexPface           ObjectKind = 13
	KindVertexPfaceFace       ObjectKind = 14
	KindPolyline2D            ObjectKind = 15
	KindPolyline3D            ObjectKind = 16
	KindArc                   ObjectKind = 17
	KindCircle                ObjectKind = 18
	KindLine                  ObjectKind = 19
	KindDimensionOrdinate     ObjectKind = 20
	KindDimensionLinear       ObjectKind = 21
	KindDimensionAligned      ObjectKind = 22
	KindDimensionAng3pt       ObjectKind = 23
	KindDimensionAng2ln       ObjectKind = 24
	KindDimensionRadius       ObjectKind = 25
	KindDimensionDiameter     ObjectKind = 26
	KindPoint                 ObjectKind = 27
	Kind3DFace                ObjectKind = 28
	KindPolylinePface         ObjectKind = 29
	KindPolylineMesh          ObjectKind = 30
	KindSolid                 ObjectKind = 31
	KindTrace                 ObjectKind = 32
	KindShape                 ObjectKind = 33
	KindViewport              ObjectKind = 34
	KindEllipse               ObjectKind = 35
	KindSpline                ObjectKind = 36
	KindRegion                ObjectKind = 37
	Kind3DSolid               ObjectKind = 38
	KindBody                  ObjectKind = 39
	KindRay                   ObjectKind = 40
	KindXline                 ObjectKind = 41
	KindDictionary            ObjectKind = 42
	KindOleFrame              ObjectKind = 43
	KindMText                 ObjectKind = 44
	KindLeader                ObjectKind = 45
	KindTolerance             ObjectKind = 46
	KindMLine                 ObjectKind = 47
	KindBlockControl          ObjectKind = 48
	KindBlockHeader           ObjectKind = 49
	KindLayerControl          ObjectKind = 50
	KindLayer                 ObjectKind = 51
	KindShapefileControl      ObjectKind = 52
	KindShapefile             ObjectKind = 53
	KindLtypeControl          ObjectKind = 54
	KindLtype                 ObjectKind = 55
	KindViewControl           ObjectKind = 58
	KindView                  ObjectKind = 59
	KindUcsControl            ObjectKind = 60
	KindUcs                   ObjectKind = 61
	KindVportControl          ObjectKind = 62
	KindVport                 ObjectKind = 63
	KindAppidControl          ObjectKind = 64
	KindAppid                 ObjectKind = 65
	KindDimstyleControl       ObjectKind = 66
	KindDimstyle              ObjectKind = 67
	KindVpEntHdrControl       ObjectKind = 68
	KindVpEntHdr              ObjectKind = 69
	KindGroup                 ObjectKind = 70
	KindMlineStyle            ObjectKind = 71
	KindOle2Frame             ObjectKind = 72
	KindDummy                 ObjectKind = 73
	KindLongTransaction       ObjectKind = 74
	KindLwPolyline            ObjectKind = 75
	KindHatch                 ObjectKind = 76
	KindXrecord               ObjectKind = 77
	KindPlaceholder           ObjectKind = 78
	KindVbaProject            ObjectKind = 79
	KindLayout                ObjectKind = 80

	// KindByClass marks an object dispatched through the class registry
	// (type >= 500); the concrete semantic kind lives in ObjectBody.ClassName.
	KindByClass ObjectKind = 500
)

// Supertype classifies an object's prelude shape.
type Supertype int

// Supertype values.
const (
	SupertypeUnknown Supertype = iota
	SupertypeEntity
	SupertypeObject
)

// EEDRecord is one link of an extended-entity-data chain: an application
// handle followed by its opaque payload bytes.
type EEDRecord struct {
	AppHandle Handle
	Data      []byte
}

// maxEEDRunBytes is the hard cap from §4.8: a single EED run larger than
// this is treated as corruption and the whole chain is discarded.
const maxEEDRunBytes = 10210

// decodeEED reads an extended-entity-data chain: a BS size, then that many
// raw bytes prefixed by an extended handle, repeating until a zero size
// sentinel. A run whose cumulative size exceeds maxEEDRunBytes aborts the
// chain and clears what was read so far.
func decodeEED(bs *BitStream) ([]EEDRecord, error) {
	var chain []EEDRecord
	total := 0
	for {
		size, err := bs.BS()
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return chain, nil
		}
		total += int(size)
		if total > maxEEDRunBytes {
			return nil, nil
		}
		appHandle, err := bs.H()
		if err != nil {
			return chain, err
		}
		data, err := bs.Bytes(uint32(size))
		if err != nil {
			return chain, err
		}
		chain = append(chain, EEDRecord{AppHandle: appHandle, Data: data})
	}
}

// EntityCommon is the shared prelude every entity-supertype ObjectBody
// carries, plus the handle-reference fields, which decodeEntityCommon reads
// inline right after the prelude's other fields (§3, §4.8).
type EntityCommon struct {
	Handle        Handle
	Bitsize       uint32
	ExtendedData  []EEDRecord
	PictureBlob   []byte
	EntMode       uint8
	ReactorCount  uint32
	NoLinks       bool
	Color         Color
	LinetypeScale float64
	LinetypeFlags uint8
	Lineweight    uint8
	Invisible     bool

	OwnerRef       *Reference
	ReactorRefs    []*Reference
	XDictionaryRef *Reference
	LayerRef       *Reference
	LinetypeRef    *Reference
	MaterialRef    *Reference
	PlotStyleRef   *Reference
	PrevRef        *Reference
	NextRef        *Reference
}

// ObjectCommon is the shared prelude every object-supertype (non-entity)
// ObjectBody carries.
type ObjectCommon struct {
	Handle       Handle
	Bitsize      uint32
	ExtendedData []EEDRecord
	ReactorCount uint32
	XDicMissing  bool

	OwnerRef       *Reference
	ReactorRefs    []*Reference
	XDictionaryRef *Reference
}

// ObjectBody is the closed tagged variant over every concrete entity/object
// kind this decoder understands. Exactly one of the typed payload fields is
// populated, selected by Kind (and, when Kind == KindByClass, by
// ClassName). Unknown objects retain their raw on-disk bytes and a Reason
// describing why no concrete decoder ran.
type ObjectBody struct {
	Kind      ObjectKind
	ClassName string // populated only when Kind == KindByClass

	Entity *EntityCommon
	Object *ObjectCommon

	Text      *TextEntity
	Line      *LineEntity
	Circle    *CircleEntity
	Arc       *ArcEntity
	Point     *PointEntity
	Ellipse   *EllipseEntity
	Insert    *InsertEntity
	Block     *BlockEntity
	Endblk    *EndblkEntity
	Seqend    *SeqendEntity
	Vertex2D  *Vertex2DEntity
	Polyline2D *Polyline2DEntity
	LwPolyline *LwPolylineEntity

	BlockHeader *BlockHeaderObject
	Layer       *LayerObject
	Ltype       *LtypeObject
	Style       *StyleObject
	Appid       *AppidObject
	Dictionary  *DictionaryObject
	Xrecord     *XrecordObject
	Layout      *LayoutObject
	MlineStyle  *MlineStyleObject
	UcsTable    *UcsObject
	ViewTable   *ViewObject

	// UnknownData holds the untouched on-disk bytes (from the byte right
	// after the type code to the object's declared end) for any object
	// this decoder did not fully parse.
	UnknownData []byte
	Reason      string
}

// Object is one entry in Document.Objects: a decoded (or partially
// recovered) drawing object, addressed by its stable index.
type Object struct {
	Index     ObjectIndex
	Handle    Handle
	Size      uint32
	Bitsize   uint32
	TypeCode  uint16
	Supertype Supertype
	Body      ObjectBody
}
