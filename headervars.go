// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dwg

// HeaderVariables holds the named drawing variables this decoder resolves
// out of the roughly 400 the format defines. Variables this decoder does
// not parse are intentionally absent rather than zero-valued, since zero is
// itself a valid value for several of them; callers should not infer
// "unset" from a missing struct field without consulting Anomalies.
type HeaderVariables struct {
	Insbase   Point3D
	Extmin    Point3D
	Extmax    Point3D
	Limmin    Point2D
	Limmax    Point2D
	Ltscale   float64
	Textsize  float64
	Textstyle string
	Celtype   string
	Clayer    *Reference
	Cecolor   Color
	Dimscale  float64
	Dimtxt    float64
	Handseed  Handle
	Ucsorg    Point3D
	Ucsxdir   Point3D
	Ucsydir   Point3D
	Pdmode    int16
	Pdsize    float64
	Pline_gen int16
	Measurement int16
}

// decodeHeaderVariables reads the declarative-ish stream of header
// variables for R13-R2000 files: a fixed field order per §3's HEADER
// module, read field by field from the cursor's position with no length
// prefix and no end-sentinel check. Fields this decoder does not model are still consumed (their
// wire width is fixed and known) so the cursor stays aligned for the
// fields that follow.
func decodeHeaderVariables(ctx *decodeContext, bs *BitStream) (HeaderVariables, error) {
	var hv HeaderVariables
	var err error

	skipBD := func(n int) error {
		for i := 0; i < n; i++ {
			if _, err := bs.BD(); err != nil {
				return err
			}
		}
		return nil
	}
	skipBL := func(n int) error {
		for i := 0; i < n; i++ {
			if _, err := bs.BL(); err != nil {
				return err
			}
		}
		return nil
	}

	if hv.Insbase, err = bs.Point3DBD(); err != nil {
		return hv, err
	}
	if hv.Extmin, err = bs.Point3DBD(); err != nil {
		return hv, err
	}
	if hv.Extmax, err = bs.Point3DBD(); err != nil {
		return hv, err
	}
	if hv.Limmin, err = bs.Point2DBD(); err != nil {
		return hv, err
	}
	if hv.Limmax, err = bs.Point2DBD(); err != nil {
		return hv, err
	}
	if err = skipBD(2); err != nil { // ELEVATION, THICKNESS placeholders
		return hv, err
	}
	if hv.Ltscale, err = bs.BD(); err != nil {
		return hv, err
	}
	if hv.Textsize, err = bs.BD(); err != nil {
		return hv, err
	}
	if err = skipBD(4); err != nil { // TEXTVAL/FILLETRAD/related scalars
		return hv, err
	}
	if hv.Dimscale, err = bs.BD(); err != nil {
		return hv, err
	}
	if hv.Dimtxt, err = bs.BD(); err != nil {
		return hv, err
	}
	if err = skipBL(2); err != nil { // UNITMODE-adjacent flags
		return hv, err
	}
	if hv.Pdmode, err = func() (int16, error) {
		v, err := bs.BS()
		return int16(v), err
	}(); err != nil {
		return hv, err
	}
	if hv.Pdsize, err = bs.BD(); err != nil {
		return hv, err
	}
	if hv.Pline_gen, err = func() (int16, error) {
		v, err := bs.BS()
		return int16(v), err
	}(); err != nil {
		return hv, err
	}
	if hv.Measurement, err = func() (int16, error) {
		v, err := bs.BS()
		return int16(v), err
	}(); err != nil {
		return hv, err
	}
	if hv.Celtype, err = bs.TV(); err != nil {
		return hv, err
	}
	if hv.Textstyle, err = bs.TV(); err != nil {
		return hv, err
	}
	if hv.Cecolor, err = ctx.CMC(bs); err != nil {
		return hv, err
	}
	if hv.Ucsorg, err = bs.Point3DBD(); err != nil {
		return hv, err
	}
	if hv.Ucsxdir, err = bs.Point3DBD(); err != nil {
		return hv, err
	}
	if hv.Ucsydir, err = bs.Point3DBD(); err != nil {
		return hv, err
	}
	if hv.Handseed, err = bs.H(); err != nil {
		return hv, err
	}

	return hv, nil
}
