// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/chk"

// Sec holds the rigidities of a frame member cross-section
type Sec struct {
	EA float64 // axial rigidity = Young's modulus * area
	EI float64 // bending rigidity = Young's modulus * second moment of area
}

// DefaultSec returns a nearly rigid section. It stands in for members whose
// deformation is irrelevant to the problem; e.g. axially rigid columns.
func DefaultSec() Sec {
	return Sec{EA: 1e20, EI: 1e20}
}

// Validate checks that both rigidities are positive
func (o Sec) Validate() (err error) {
	if !(o.EA > 0) || !(o.EI > 0) {
		return chk.Err("section rigidities must be positive: EA=%g, EI=%g", o.EA, o.EI)
	}
	return
}
