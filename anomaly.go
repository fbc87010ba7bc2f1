// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

// Anomalies found in a DWG drawing. These do not necessarily prevent a
// consuming application from opening the file, but are worth surfacing for
// forensic or recovery tooling.
var (
	// AnoEmptyObjectSet is reported when the object map decoded zero entries.
	AnoEmptyObjectSet = "object map produced zero entries"

	// AnoZeroHandseed is reported when HANDSEED reads back as the null handle.
	AnoZeroHandseed = "HANDSEED is the null handle"

	// AnoNoClassTable is reported when a file claims a version that carries
	// a class table but none was found between its sentinels.
	AnoNoClassTable = "class table section missing or empty"

	// AnoDanglingLayoutClass is reported when Document.DwgOtLayout never
	// got assigned despite the class table having entries, meaning layout
	// objects will fall back to the built-in KindLayout path unexpectedly.
	AnoDanglingLayoutClass = "class table has entries but never registered LAYOUT"
)

// GetAnomalies inspects the fully decoded Document for structural red flags
// beyond the per-section errors already folded into Anomalies during
// decode, and appends any it finds.
func (f *File) GetAnomalies() error {
	if f.Document == nil {
		return nil
	}

	if len(f.Objects) == 0 {
		f.addAnomaly(AnoEmptyObjectSet)
	}
	if f.Header.HandseedRaw.IsNull() {
		f.addAnomaly(AnoZeroHandseed)
	}
	if f.ClassTable == nil || f.ClassTable.Len() == 0 {
		if f.Header.Version.atLeast(VersionR13) {
			f.addAnomaly(AnoNoClassTable)
		}
	} else if f.DwgOtLayout == 0 {
		f.addAnomaly(AnoDanglingLayoutClass)
	}
	return nil
}
