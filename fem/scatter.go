// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// MatAddBlock adds a dense block into K at the given row/column index sets:
//  K[rows[i]][cols[j]] += block[i][j]
// Existing entries accumulate; nothing is overwritten.
func MatAddBlock(K [][]float64, rows, cols []int, block [][]float64) (err error) {
	if len(block) != len(rows) {
		return chk.Err("block has %d rows but %d row indices were given", len(block), len(rows))
	}
	n := len(K)
	for i, I := range rows {
		if I < 0 || I >= n {
			return chk.Err("row index %d is out of range [0,%d)", I, n)
		}
		if len(block[i]) != len(cols) {
			return chk.Err("block row %d has %d columns but %d column indices were given", i, len(block[i]), len(cols))
		}
		for j, J := range cols {
			if J < 0 || J >= len(K[I]) {
				return chk.Err("column index %d is out of range [0,%d)", J, len(K[I]))
			}
			K[I][J] += block[i][j]
		}
	}
	return
}

// VecAddScatter adds values into f at the given index set:
//  f[idx[i]] += vals[i]
func VecAddScatter(f []float64, idx []int, vals []float64) (err error) {
	if len(vals) != len(idx) {
		return chk.Err("%d values but %d indices were given", len(vals), len(idx))
	}
	for i, I := range idx {
		if I < 0 || I >= len(f) {
			return chk.Err("index %d is out of range [0,%d)", I, len(f))
		}
		f[I] += vals[i]
	}
	return
}

// MatExtract returns the submatrix of K on the given row/column index sets,
// in the given order. Indices must be within range.
func MatExtract(K [][]float64, rows, cols []int) (sub [][]float64) {
	sub = la.MatAlloc(len(rows), len(cols))
	for i, I := range rows {
		for j, J := range cols {
			sub[i][j] = K[I][J]
		}
	}
	return
}

// VecExtract returns the entries of f on the given index set, in the given order
func VecExtract(f []float64, idx []int) (sub []float64) {
	sub = make([]float64, len(idx))
	for i, I := range idx {
		sub[i] = f[I]
	}
	return
}
