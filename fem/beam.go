// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Beam represents a 2D frame member combining extension and Euler-Bernoulli
// bending (linear elastic). Geometry is computed once, from the node
// coordinates at creation time.
//
//         z
//         ^
//         |                                Sec:    Nodes:
//         o-------------------------------o EA, EI  A and B
//         |                               |
//         |                               |
//        (A)-----------------------------(B)------> x
//
type Beam struct {

	// basic data
	A, B *Node // end nodes (non-owning references into the Domain)
	Sec  Sec   // section rigidities
	Nu   int   // total number of unknowns (6)

	// derived geometry
	L float64 // length

	// vectors and matrices
	T    [][]float64 // [6][6] global-to-local transformation matrix
	Kl   [][]float64 // [6][6] local stiffness matrix
	K    [][]float64 // [6][6] global stiffness matrix
	Umap []int       // [6] assembly map (global equation numbers)

	// distributed loads (local frame)
	Hasq   bool     // has distributed loads
	Qt     dbf.T // axial load intensity
	Qn     dbf.T // transverse load intensity
	qt, qn float64  // intensities evaluated at t=0
}

// newBeam allocates a beam connecting two existing nodes and computes its
// transformation and stiffness matrices. The section must be valid and the
// distance between the nodes nonzero.
func newBeam(a, b *Node, sec Sec) (o *Beam, err error) {

	// check
	if err = sec.Validate(); err != nil {
		return
	}
	dx := b.X - a.X
	dz := b.Z - a.Z
	l := math.Sqrt(dx*dx + dz*dz)
	if l < 1e-14 {
		return nil, chk.Err("beam connecting nodes %d and %d has zero length", a.Id, b.Id)
	}

	// basic data
	o = new(Beam)
	o.A, o.B = a, b
	o.Sec = sec
	o.Nu = 6
	o.L = l

	// T
	c := dx / l
	s := dz / l
	o.T = la.MatAlloc(o.Nu, o.Nu)
	o.T[0][0] = c
	o.T[0][1] = s
	o.T[1][0] = -s
	o.T[1][1] = c
	o.T[2][2] = 1
	o.T[3][3] = c
	o.T[3][4] = s
	o.T[4][3] = -s
	o.T[4][4] = c
	o.T[5][5] = 1

	// stiffness
	o.Kl = la.MatAlloc(o.Nu, o.Nu)
	o.K = la.MatAlloc(o.Nu, o.Nu)
	o.recompute()

	// assembly map
	o.Umap = make([]int, o.Nu)
	for i := 0; i < 3; i++ {
		o.Umap[i] = a.Eqs[i]
		o.Umap[3+i] = b.Eqs[i]
	}
	return
}

// SetSec replaces the section rigidities and recomputes the stiffness
// matrices. Geometry is unchanged.
func (o *Beam) SetSec(sec Sec) (err error) {
	if err = sec.Validate(); err != nil {
		return
	}
	o.Sec = sec
	o.recompute()
	return
}

// recompute computes the local stiffness matrix from the current section and
// rotates it into the global frame
func (o *Beam) recompute() {

	// aux vars
	l := o.L
	ll := l * l
	m := o.Sec.EA / l
	n := o.Sec.EI / (ll * l)

	// Kl
	o.Kl[0][0] = m
	o.Kl[0][3] = -m
	o.Kl[1][1] = 12 * n
	o.Kl[1][2] = 6 * l * n
	o.Kl[1][4] = -12 * n
	o.Kl[1][5] = 6 * l * n
	o.Kl[2][1] = 6 * l * n
	o.Kl[2][2] = 4 * ll * n
	o.Kl[2][4] = -6 * l * n
	o.Kl[2][5] = 2 * ll * n
	o.Kl[3][0] = -m
	o.Kl[3][3] = m
	o.Kl[4][1] = -12 * n
	o.Kl[4][2] = -6 * l * n
	o.Kl[4][4] = 12 * n
	o.Kl[4][5] = -6 * l * n
	o.Kl[5][1] = 6 * l * n
	o.Kl[5][2] = 2 * ll * n
	o.Kl[5][4] = -6 * l * n
	o.Kl[5][5] = 4 * ll * n

	// K := trans(T) * Kl * T
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T)
}

// Stiffness returns the 6x6 element stiffness matrix in the global frame
func (o *Beam) Stiffness() [][]float64 {
	return o.K
}

// GlobalDofs returns the 6 global equation numbers of this element, in the
// order {A.ux, A.uz, A.ry, B.ux, B.uz, B.ry}. The same set indexes both rows
// and columns of the stiffness contribution.
func (o *Beam) GlobalDofs() []int {
	return o.Umap
}

// SetDistLoads applies distributed loads along the member, given by intensity
// functions in the local frame: qt tangential (axial) and qn normal
// (transverse, along local z). The equivalent (consistent) nodal loads are
// computed with the intensities at t=0 and accumulated onto the end nodes.
// Either function may be nil.
func (o *Beam) SetDistLoads(qt, qn dbf.T) (err error) {

	// evaluate intensities
	o.Hasq, o.Qt, o.Qn = true, qt, qn
	o.qt, o.qn = 0, 0
	if qt != nil {
		o.qt = qt.F(0, nil)
	}
	if qn != nil {
		o.qn = qn.F(0, nil)
	}

	// consistent nodal loads in local frame
	l := o.L
	ll := l * l
	fxl := []float64{
		o.qt * l / 2.0,
		o.qn * l / 2.0,
		o.qn * ll / 12.0,
		o.qt * l / 2.0,
		o.qn * l / 2.0,
		-o.qn * ll / 12.0,
	}

	// rotate to global frame and accumulate onto nodes; fxg = trans(T) * fxl
	fxg := make([]float64, o.Nu)
	la.MatTrVecMulAdd(fxg, 1, o.T, fxl)
	if err = o.A.AddLoad(fxg[:3]); err != nil {
		return
	}
	return o.B.AddLoad(fxg[3:])
}

// SetUniformLoads is a convenience wrapper for constant load intensities
func (o *Beam) SetUniformLoads(qt, qn float64) (err error) {
	return o.SetDistLoads(&dbf.Cte{C: qt}, &dbf.Cte{C: qn})
}

// CalcVandM computes the shear forces and bending moments at nsta stations
// along the member, given the full global displacement vector u.
//  Output:
//   X -- station positions along the member axis: 0 ≤ x ≤ L
//   V -- shear forces at stations
//   M -- bending moments at stations
func (o *Beam) CalcVandM(u []float64, nsta int) (X, V, M []float64, err error) {

	// aligned displacements
	ua, err := o.alignedDisp(u)
	if err != nil {
		return
	}

	// auxiliary variables
	if nsta < 2 {
		return nil, nil, nil, chk.Err("at least 2 stations are required; got %d", nsta)
	}
	l := o.L
	ll := l * l
	lll := ll * l
	EI := o.Sec.EI

	// results
	X = utl.LinSpace(0, l, nsta)
	V = make([]float64, nsta)
	M = make([]float64, nsta)
	for i, x := range X {
		V[i] = EI * ((12.0*ua[1])/lll + (6.0*ua[2])/ll - (12.0*ua[4])/lll + (6.0*ua[5])/ll)
		M[i] = EI * (ua[1]*((12.0*x)/lll-6.0/ll) + ua[2]*((6.0*x)/ll-4.0/l) + ua[4]*(6.0/ll-(12.0*x)/lll) + ua[5]*((6.0*x)/ll-2.0/l))
		if o.Hasq {
			V[i] += o.qn * (2.0*x - l) / 2.0
			M[i] += o.qn * (ll - 6.0*l*x + 6.0*x*x) / 12.0
		}
	}
	return
}

// CalcUandW computes the axial (U) and transverse (W) displacements in the
// local frame at nsta stations along the member, given the full global
// displacement vector u. The homogeneous part interpolates the end DOFs;
// with distributed loads, the particular solution of a uniform load is added.
func (o *Beam) CalcUandW(u []float64, nsta int) (X, U, W []float64, err error) {

	// aligned displacements
	ua, err := o.alignedDisp(u)
	if err != nil {
		return
	}

	// auxiliary variables
	if nsta < 2 {
		return nil, nil, nil, chk.Err("at least 2 stations are required; got %d", nsta)
	}
	l := o.L
	EA := o.Sec.EA
	EI := o.Sec.EI

	// results
	X = utl.LinSpace(0, l, nsta)
	U = make([]float64, nsta)
	W = make([]float64, nsta)
	for i, x := range X {
		ξ := x / l
		N1 := 1.0 - 3.0*ξ*ξ + 2.0*ξ*ξ*ξ
		N2 := l * (ξ - 2.0*ξ*ξ + ξ*ξ*ξ)
		N3 := 3.0*ξ*ξ - 2.0*ξ*ξ*ξ
		N4 := l * (ξ*ξ*ξ - ξ*ξ)
		U[i] = ua[0]*(1.0-ξ) + ua[3]*ξ
		W[i] = ua[1]*N1 + ua[2]*N2 + ua[4]*N3 + ua[5]*N4
		if o.Hasq {
			U[i] += o.qt * x * (l - x) / (2.0 * EA)
			W[i] += o.qn * x * x * (l - x) * (l - x) / (24.0 * EI)
		}
	}
	return
}

// String returns a one-line description of this beam (debugging aid)
func (o *Beam) String() string {
	return io.Sf("beam %d-%d L=%g EA=%g EI=%g", o.A.Id, o.B.Id, o.L, o.Sec.EA, o.Sec.EI)
}

// alignedDisp extracts the element displacements from the global vector and
// rotates them into the local frame
func (o *Beam) alignedDisp(u []float64) (ua []float64, err error) {
	ue := make([]float64, o.Nu)
	for i, I := range o.Umap {
		if I < 0 || I >= len(u) {
			return nil, chk.Err("beam %d-%d: equation %d is out of range of displacement vector with length %d", o.A.Id, o.B.Id, I, len(u))
		}
		ue[i] = u[I]
	}
	ua = make([]float64, o.Nu)
	la.MatVecMul(ua, 1, o.T, ue)
	return
}
