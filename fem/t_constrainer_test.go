// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_constrainer01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constrainer01. empty constraint set is a no-op")

	K := [][]float64{
		{4, 1, 0},
		{1, 5, 2},
		{0, 2, 6},
	}
	f := []float64{1, 2, 3}

	con := NewConstrainer()
	Kff, ff, err := con.Constrain(K, f)
	if err != nil {
		tst.Errorf("Constrain failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "Kff == K", 1e-17, Kff, K)
	chk.Vector(tst, "ff == f", 1e-17, ff, f)

	// returned structures are copies
	Kff[0][0] = 99
	ff[0] = 99
	chk.Scalar(tst, "K untouched", 1e-17, K[0][0], 4)
	chk.Scalar(tst, "f untouched", 1e-17, f[0], 1)
}

func Test_constrainer02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constrainer02. reduction and prescribed values")

	// two nodes => 6 equations
	dom := NewDomain()
	na := dom.AddNode(0, 0)
	nb := dom.AddNode(1, 0)

	// fabricated symmetric system
	K := [][]float64{
		{10, 1, 2, 3, 4, 5},
		{1, 20, 6, 7, 8, 9},
		{2, 6, 30, 1, 2, 3},
		{3, 7, 1, 40, 4, 5},
		{4, 8, 2, 4, 50, 6},
		{5, 9, 3, 5, 6, 60},
	}
	f := []float64{1, 2, 3, 4, 5, 6}

	// fix ux and uz of the first node and uz of the second
	con := NewConstrainer()
	if err := con.FixDof(na, DofUx); err != nil {
		tst.Errorf("FixDof failed: %v\n", err)
		return
	}
	if err := con.FixDof(na, DofUz); err != nil {
		tst.Errorf("FixDof failed: %v\n", err)
		return
	}
	if err := con.FixDof(nb, DofUz); err != nil {
		tst.Errorf("FixDof failed: %v\n", err)
		return
	}
	chk.IntAssert(con.Npres(), 3)

	// partition preserves the global order
	free, pres := con.Partition(6)
	chk.Ints(tst, "free", free, []int{2, 3, 5})
	chk.Ints(tst, "pres", pres, []int{0, 1, 4})
	io.Pfyel("%v", con.List())

	// Kff is the principal submatrix on the free set
	Kff, ff, err := con.Constrain(K, f)
	if err != nil {
		tst.Errorf("Constrain failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "Kff", 1e-17, Kff, [][]float64{
		{30, 1, 3},
		{1, 40, 5},
		{3, 5, 60},
	})
	chk.Vector(tst, "ff", 1e-17, ff, []float64{3, 4, 6})

	// nonzero prescribed displacement: ff -= K[free][pres]*uc
	if err := con.SetDof(na, DofUx, 0.5); err != nil {
		tst.Errorf("SetDof failed: %v\n", err)
		return
	}
	chk.IntAssert(con.Npres(), 3) // overwrite, not a new constraint
	_, ff2, err := con.Constrain(K, f)
	if err != nil {
		tst.Errorf("Constrain failed: %v\n", err)
		return
	}
	chk.Vector(tst, "ff with support settlement", 1e-15, ff2, []float64{
		3 - 2*0.5,
		4 - 3*0.5,
		6 - 5*0.5,
	})

	// dimension mismatch
	if _, _, err := con.Constrain(K, []float64{1, 2, 3}); err == nil {
		tst.Errorf("mismatched K and f must be rejected\n")
		return
	}
	if _, _, err := con.Constrain([][]float64{{1, 2}, {3, 4}}, []float64{1, 2}); err == nil {
		tst.Errorf("prescribed equation beyond the system must be rejected\n")
	}
}

func Test_constrainer03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constrainer03. reactions balance the applied load")

	// cantilever: horizontal member fixed at the left end, transverse tip load
	l, p := 2.0, 10.0
	dom := NewDomain()
	na := dom.AddNode(0, 0)
	nb := dom.AddNode(l, 0)
	if _, err := dom.AddBeam(na, nb, Sec{EA: 1000, EI: 100}); err != nil {
		tst.Errorf("AddBeam failed: %v\n", err)
		return
	}
	if err := nb.AddLoad([]float64{0, -p, 0}); err != nil {
		tst.Errorf("AddLoad failed: %v\n", err)
		return
	}

	con := NewConstrainer()
	for j := 0; j < 3; j++ {
		if err := con.FixDof(na, j); err != nil {
			tst.Errorf("FixDof failed: %v\n", err)
			return
		}
	}

	u, err := dom.SolveStatic(con)
	if err != nil {
		tst.Errorf("SolveStatic failed: %v\n", err)
		return
	}

	// tip deflection: pl³/3EI downwards; tip rotation: pl²/2EI
	chk.Scalar(tst, "w tip", 1e-13, u[4], -p*l*l*l/(3.0*100.0))
	chk.Scalar(tst, "ry tip", 1e-13, u[5], -p*l*l/(2.0*100.0))

	// reactions: vertical force p and moment p*l at the clamped end
	eqs, r, err := dom.Reactions(con, u)
	if err != nil {
		tst.Errorf("Reactions failed: %v\n", err)
		return
	}
	chk.Ints(tst, "reaction eqs", eqs, []int{0, 1, 2})
	chk.Vector(tst, "reactions", 1e-12, r, []float64{0, p, p * l})
}
