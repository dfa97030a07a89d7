// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Constrainer records prescribed (essential) boundary conditions and reduces
// the global system by eliminating the constrained equations. It holds a map
// from global equation number to prescribed value and is consumed by
// Constrain, which is stateless with respect to prior reductions; the same
// Constrainer may be applied to different systems.
type Constrainer struct {
	vals map[int]float64 // prescribed equation => prescribed value
}

// NewConstrainer returns a constrainer with no prescribed equations
func NewConstrainer() *Constrainer {
	return &Constrainer{vals: make(map[int]float64)}
}

// FixDof fully restrains the node's DOF at local index j (0=ux, 1=uz, 2=ry);
// i.e. prescribes zero displacement. Fixing an equation that is already
// prescribed overwrites the previous value.
func (o *Constrainer) FixDof(nod *Node, j int) (err error) {
	return o.SetDof(nod, j, 0)
}

// SetDof prescribes a (possibly nonzero) support displacement at the node's
// DOF with local index j. Re-setting an equation overwrites the previous
// value; the last call wins.
func (o *Constrainer) SetDof(nod *Node, j int, value float64) (err error) {
	eq, err := nod.GetEq(j)
	if err != nil {
		return
	}
	o.vals[eq] = value
	return
}

// Npres returns the number of prescribed equations
func (o *Constrainer) Npres() int {
	return len(o.vals)
}

// Partition splits the equation range [0,ny) into free and prescribed
// subsets, both in ascending global order
func (o *Constrainer) Partition(ny int) (free, pres []int) {
	pres = make([]int, 0, len(o.vals))
	for eq := 0; eq < ny; eq++ {
		if _, ok := o.vals[eq]; ok {
			pres = append(pres, eq)
		} else {
			free = append(free, eq)
		}
	}
	return
}

// Constrain reduces the global system to the free equations:
//  Kff -- principal submatrix of K on the free set, order preserved
//  ff  -- f restricted to the free set, minus K[free][pres]*u[pres] for any
//         nonzero prescribed displacements
// K and f are not modified. With no prescribed equations, the returned
// structures are copies equal to the input.
func (o *Constrainer) Constrain(K [][]float64, f []float64) (Kff [][]float64, ff []float64, err error) {

	// check
	ny := len(f)
	if len(K) != ny {
		return nil, nil, chk.Err("stiffness matrix has %d rows but force vector has %d entries", len(K), ny)
	}
	for i := 0; i < ny; i++ {
		if len(K[i]) != ny {
			return nil, nil, chk.Err("stiffness matrix is not square: row %d has %d entries; want %d", i, len(K[i]), ny)
		}
	}
	for eq := range o.vals {
		if eq < 0 || eq >= ny {
			return nil, nil, chk.Err("prescribed equation %d is out of range [0,%d)", eq, ny)
		}
	}

	// reduce
	free, pres := o.Partition(ny)
	Kff = MatExtract(K, free, free)
	ff = VecExtract(f, free)

	// nonzero prescribed displacements
	for _, J := range pres {
		uc := o.vals[J]
		if uc == 0 {
			continue
		}
		for i, I := range free {
			ff[i] -= K[I][J] * uc
		}
	}
	return
}

// Reactions computes the support reactions at the prescribed equations:
//  r = K[pres][:]*u - f[pres]
// which is the unbalanced force at the restrained DOFs, given the full
// displacement vector u.
//  Output:
//   eqs -- prescribed equations in ascending global order
//   r   -- reaction at each equation in eqs
func (o *Constrainer) Reactions(K [][]float64, f, u []float64) (eqs []int, r []float64, err error) {

	// check
	ny := len(f)
	if len(K) != ny || len(u) != ny {
		return nil, nil, chk.Err("dimension mismatch: len(K)=%d len(f)=%d len(u)=%d", len(K), ny, len(u))
	}

	// Ku = K*u
	Ku := make([]float64, ny)
	la.MatVecMul(Ku, 1, K, u)

	// reactions
	_, eqs = o.Partition(ny)
	r = make([]float64, len(eqs))
	for i, I := range eqs {
		r[i] = Ku[I] - f[I]
	}
	return
}

// List returns a simple list of prescribed equations and values (debugging aid)
func (o *Constrainer) List() (l string) {
	eqs := make([]int, 0, len(o.vals))
	for eq := range o.vals {
		eqs = append(eqs, eq)
	}
	maxeq := 0
	for _, eq := range eqs {
		if eq > maxeq {
			maxeq = eq
		}
	}
	_, sorted := o.Partition(maxeq + 1)
	for _, eq := range sorted {
		l += io.Sf("eq %3d : u = %g\n", eq, o.vals[eq])
	}
	return
}
