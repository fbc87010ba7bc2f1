// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

import "github.com/saferwall/dwg/internal/log"

// Version identifies a recognized DWG release code, read verbatim from the
// first six bytes of the file.
type Version string

// Recognized version codes. R13 through R2000 are the fully supported path;
// R2004/R2007 are acknowledged partial per spec §4.5.
const (
	VersionR13   Version = "AC1012"
	VersionR14   Version = "AC1014"
	VersionR2000 Version = "AC1015"
	VersionR2004 Version = "AC1018"
	VersionR2007 Version = "AC1021"
)

// knownVersions lists every version code this decoder recognizes, fully or
// experimentally.
var knownVersions = map[Version]bool{
	VersionR13:   true,
	VersionR14:   true,
	VersionR2000: true,
	VersionR2004: true,
	VersionR2007: true,
}

// layoutKind selects which archive layout a version uses.
type layoutKind int

const (
	layoutFlat layoutKind = iota
	layoutPaged
	layoutUnsupported
)

func (v Version) layout() layoutKind {
	switch v {
	case VersionR13, VersionR14, VersionR2000:
		return layoutFlat
	case VersionR2004:
		return layoutPaged
	case VersionR2007:
		return layoutUnsupported
	default:
		return layoutUnsupported
	}
}

// atLeast reports whether v is the same or a later release than other,
// ordered by the fixed release sequence this decoder understands.
func (v Version) atLeast(other Version) bool {
	order := map[Version]int{
		VersionR13: 0, VersionR14: 1, VersionR2000: 2, VersionR2004: 3, VersionR2007: 4,
	}
	ov, ok1 := order[v]
	oo, ok2 := order[other]
	if !ok1 || !ok2 {
		return false
	}
	return ov >= oo
}

// decodeContext threads the current version and logger into every decoder
// function, replacing the global current-version/log-level state the
// original implementation keeps.
type decodeContext struct {
	version Version
	logger  *log.Helper
	opts    *Options
	doc     *Document
}

func newDecodeContext(version Version, logger *log.Helper, opts *Options, doc *Document) *decodeContext {
	return &decodeContext{version: version, logger: logger, opts: opts, doc: doc}
}
