// Copyright 2017 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements a small 2D frame structural-analysis engine based on
// the direct stiffness method: nodes with three degrees of freedom, beam
// elements combining extension and Euler-Bernoulli bending, essential
// boundary conditions by elimination, and a dense linear solve for the free
// displacements.
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"gonum.org/v1/gonum/mat"
)

// Domain owns the nodes and beams of one structural model and performs the
// global equation numbering: node i takes equations {3i, 3i+1, 3i+2}, in
// creation order. Independent models live in independent Domains; the
// numbering of one never collides with another. A Domain is not safe for
// concurrent use.
type Domain struct {
	Nodes []*Node // all nodes, in creation order
	Beams []*Beam // all beams, in creation order
}

// NewDomain returns an empty domain
func NewDomain() *Domain {
	return new(Domain)
}

// Clear drops all nodes and beams and restarts the numbering from zero, so
// the domain can host a new model. Calling Clear on an empty domain is a
// no-op.
func (o *Domain) Clear() {
	o.Nodes = nil
	o.Beams = nil
}

// AddNode creates a node at (x, z) with the next sequential identifier and
// equation triple, and registers it in this domain
func (o *Domain) AddNode(x, z float64) *Node {
	nod := newNode(len(o.Nodes), x, z)
	o.Nodes = append(o.Nodes, nod)
	return nod
}

// AddBeam creates a beam connecting two nodes of this domain, with the given
// section, and registers it. Fails if the section is invalid, the nodes
// coincide, or a node does not belong to this domain.
func (o *Domain) AddBeam(a, b *Node, sec Sec) (bm *Beam, err error) {
	if a == nil || b == nil {
		return nil, chk.Err("cannot create beam with nil end node")
	}
	for _, nod := range []*Node{a, b} {
		if nod.Id < 0 || nod.Id >= len(o.Nodes) || o.Nodes[nod.Id] != nod {
			return nil, chk.Err("node %d does not belong to this domain", nod.Id)
		}
	}
	bm, err = newBeam(a, b, sec)
	if err != nil {
		return
	}
	o.Beams = append(o.Beams, bm)
	return
}

// Ny returns the total number of equations: 3 per node
func (o *Domain) Ny() int {
	return 3 * len(o.Nodes)
}

// AssembleK builds the global stiffness matrix by scatter-adding every
// beam's 6x6 global stiffness block at its equation set
func (o *Domain) AssembleK() (K [][]float64, err error) {
	K = la.MatAlloc(o.Ny(), o.Ny())
	for _, bm := range o.Beams {
		if err = MatAddBlock(K, bm.Umap, bm.Umap, bm.K); err != nil {
			return nil, chk.Err("cannot assemble beam %d-%d: %v", bm.A.Id, bm.B.Id, err)
		}
	}
	return
}

// AssembleF builds the global force vector by scatter-adding every node's
// accumulated load vector at its equation triple
func (o *Domain) AssembleF() (f []float64, err error) {
	f = make([]float64, o.Ny())
	for _, nod := range o.Nodes {
		if err = VecAddScatter(f, nod.Eqs, nod.F); err != nil {
			return nil, chk.Err("cannot assemble loads of node %d: %v", nod.Id, err)
		}
	}
	return
}

// SolveStatic assembles the global system, applies the constrainer and
// solves the reduced linear system for the free displacements. The returned
// vector holds all equations: free DOFs carry the solution and constrained
// DOFs carry their prescribed values. A singular reduced matrix means the
// supports leave a rigid-body mode and is reported as an error.
func (o *Domain) SolveStatic(c *Constrainer) (u []float64, err error) {

	// assemble
	K, err := o.AssembleK()
	if err != nil {
		return
	}
	f, err := o.AssembleF()
	if err != nil {
		return
	}

	// reduce
	Kff, ff, err := c.Constrain(K, f)
	if err != nil {
		return
	}

	// solve reduced system
	nf := len(ff)
	uf := make([]float64, nf)
	if nf > 0 {
		A := mat.NewDense(nf, nf, nil)
		for i := 0; i < nf; i++ {
			for j := 0; j < nf; j++ {
				A.Set(i, j, Kff[i][j])
			}
		}
		var lu mat.LU
		lu.Factorize(A)
		x := mat.NewVecDense(nf, uf)
		if err = lu.SolveVecTo(x, false, mat.NewVecDense(nf, ff)); err != nil {
			return nil, chk.Err("reduced system is singular; the supports leave a rigid-body mode: %v", err)
		}
	}

	// scatter back
	ny := o.Ny()
	free, pres := c.Partition(ny)
	u = make([]float64, ny)
	for i, I := range free {
		u[I] = uf[i]
	}
	for _, I := range pres {
		u[I] = c.vals[I]
	}
	return
}

// Reactions assembles the global system and computes the support reactions
// for a previously computed displacement vector. See Constrainer.Reactions.
func (o *Domain) Reactions(c *Constrainer, u []float64) (eqs []int, r []float64, err error) {
	K, err := o.AssembleK()
	if err != nil {
		return
	}
	f, err := o.AssembleF()
	if err != nil {
		return
	}
	return c.Reactions(K, f, u)
}

// PrintSystem prints the assembled global matrix and vector (debugging aid)
func (o *Domain) PrintSystem(numfmt string) {
	K, err := o.AssembleK()
	if err != nil {
		io.Pf("cannot assemble K: %v\n", err)
		return
	}
	f, err := o.AssembleF()
	if err != nil {
		io.Pf("cannot assemble f: %v\n", err)
		return
	}
	la.PrintMat("K", K, numfmt, false)
	io.Pf("f =")
	for _, v := range f {
		io.Pf(" "+numfmt, v)
	}
	io.Pf("\n")
}
