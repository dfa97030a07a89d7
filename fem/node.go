// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// local DOF indices at a node
const (
	DofUx = 0 // horizontal translation
	DofUz = 1 // vertical translation
	DofRy = 2 // rotation about the out-of-plane axis
)

// Node represents a point of the 2D frame with three degrees of freedom:
// horizontal translation, vertical translation and rotation. Nodes are
// allocated by a Domain, which assigns the identifier and the global
// equation numbers; see Domain.AddNode.
type Node struct {

	// essential
	Id   int     // identifier: position in the Domain's node list
	X, Z float64 // coordinates

	// degrees of freedom
	Eqs []int // [3] global equation numbers: {ux, uz, ry}

	// loads
	F []float64 // [3] accumulated nodal loads: {fx, fz, m}
}

// newNode allocates a node with the equation triple following its identifier
func newNode(id int, x, z float64) *Node {
	return &Node{
		Id:  id,
		X:   x,
		Z:   z,
		Eqs: []int{3 * id, 3*id + 1, 3*id + 2},
		F:   make([]float64, 3),
	}
}

// AddLoad accumulates the given load vector {fx, fz, m} onto this node.
// Repeated calls add up.
func (o *Node) AddLoad(p []float64) (err error) {
	if len(p) != 3 {
		return chk.Err("node %d: load vector must have 3 components {fx, fz, m}; got %d", o.Id, len(p))
	}
	for i := 0; i < 3; i++ {
		o.F[i] += p[i]
	}
	return
}

// GetEq returns the global equation number of the local DOF j (0=ux, 1=uz, 2=ry)
func (o *Node) GetEq(j int) (eq int, err error) {
	if j < 0 || j > 2 {
		return 0, chk.Err("node %d: local DOF index must be 0, 1 or 2; got %d", o.Id, j)
	}
	return o.Eqs[j], nil
}

// String returns a one-line description of this node (debugging aid)
func (o *Node) String() string {
	return io.Sf("node %d @ (%g, %g) eqs=%v f=%v", o.Id, o.X, o.Z, o.Eqs, o.F)
}
