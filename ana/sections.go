// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides closed-form reference solutions and section property
// calculators used to feed and to verify the frame engine.
package ana

import (
	"math"

	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes the in-plane properties of typical cross-sections
//
//   typ : rectangle
//         circle                              tw
//         I-beam                          -->| |<--
//                                     ___    | |     ___
//   ^ z       +-------+             tf |   ########   |
//   |         |       |               ---  ########   |
//   |         |       |                       ##      |
//   +---->    |       | h = hei               ##      | h = hei
//             |       |                       ##      |
//             |       |               ---  ########   |
//             +-------+             tf_|_  ########  ---
//              b = wid                      b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A float64 // cross-sectional area
	I float64 // moment of inertia about the bending (out-of-plane) axis
}

// Init initialises the structure and computes area and moment of inertia
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		o.A = b * h
		o.I = b * h * h * h / 12.0

	case "I-beam":
		b, h := wid, hei
		l := h - 2.0*tf
		o.A = b*h - l*(b-tw)
		o.I = b*h*h*h/12.0 - (b-tw)*l*l*l/12.0

	case "circle":
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I = math.Pi * r2 * r2 / 4.0

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// ToSec returns the rigidities of this cross-section for a member with
// Young's modulus E
func (o *CrossSection) ToSec(E float64) fem.Sec {
	return fem.Sec{EA: E * o.A, EI: E * o.I}
}

// String returns a one-line description of this cross-section
func (o *CrossSection) String() string {
	return io.Sf("%s: A=%g I=%g", o.Type, o.A, o.I)
}
