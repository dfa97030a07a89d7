// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/chk"

// ShearFrame is the equivalent shear-beam model of a one-storey, one-bay
// closed frame: the distributed bending of the columns and girders is lumped
// into a single storey shear stiffness
//
//  k = 24 / (h * (h/EIc + b/EIr))
//
// where h is the storey height, b the bay width, EIc the column bending
// rigidity and EIr the girder (rafter) bending rigidity. Members are assumed
// axially rigid; the frame engine converges to this model as EA grows.
type ShearFrame struct {

	// input
	H   float64 // storey height
	B   float64 // bay width
	EIc float64 // column bending rigidity
	EIr float64 // girder bending rigidity

	// derived
	K float64 // storey shear stiffness
}

// Init initialises the model and computes the storey stiffness
func (o *ShearFrame) Init(h, b, eic, eir float64) (err error) {
	if !(h > 0) || !(b > 0) || !(eic > 0) || !(eir > 0) {
		return chk.Err("shear frame parameters must be positive: h=%g b=%g EIc=%g EIr=%g", h, b, eic, eir)
	}
	o.H, o.B, o.EIc, o.EIr = h, b, eic, eir
	o.K = 24.0 / (h * (h/eic + b/eir))
	return
}

// Drift returns the lateral storey displacement under a horizontal load H
// applied at the top
func (o *ShearFrame) Drift(load float64) float64 {
	return load / o.K
}
