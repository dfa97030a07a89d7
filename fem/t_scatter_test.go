// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_scatter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scatter01. scatter-add primitives")

	// overlapping blocks accumulate
	K := la.MatAlloc(4, 4)
	if err := MatAddBlock(K, []int{0, 2}, []int{0, 2}, [][]float64{{1, 2}, {3, 4}}); err != nil {
		tst.Errorf("MatAddBlock failed: %v\n", err)
		return
	}
	if err := MatAddBlock(K, []int{2, 3}, []int{2, 3}, [][]float64{{10, 20}, {30, 40}}); err != nil {
		tst.Errorf("MatAddBlock failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "K", 1e-17, K, [][]float64{
		{1, 0, 2, 0},
		{0, 0, 0, 0},
		{3, 0, 14, 20},
		{0, 0, 30, 40},
	})

	// vector scatter
	f := make([]float64, 4)
	if err := VecAddScatter(f, []int{1, 3}, []float64{5, 6}); err != nil {
		tst.Errorf("VecAddScatter failed: %v\n", err)
		return
	}
	if err := VecAddScatter(f, []int{3}, []float64{1}); err != nil {
		tst.Errorf("VecAddScatter failed: %v\n", err)
		return
	}
	chk.Vector(tst, "f", 1e-17, f, []float64{0, 5, 0, 7})

	// extraction preserves the given order
	chk.Matrix(tst, "sub", 1e-17, MatExtract(K, []int{3, 0}, []int{2, 0}), [][]float64{
		{30, 0},
		{2, 1},
	})
	chk.Vector(tst, "subv", 1e-17, VecExtract(f, []int{3, 1}), []float64{7, 5})

	// bounds and shape errors
	if err := MatAddBlock(K, []int{0, 4}, []int{0, 1}, [][]float64{{1, 1}, {1, 1}}); err == nil {
		tst.Errorf("out-of-range row index must be rejected\n")
		return
	}
	if err := MatAddBlock(K, []int{0}, []int{0, 1}, [][]float64{{1}}); err == nil {
		tst.Errorf("block/index shape mismatch must be rejected\n")
		return
	}
	if err := VecAddScatter(f, []int{0, 1}, []float64{1}); err == nil {
		tst.Errorf("values/index length mismatch must be rejected\n")
	}
}
