// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"

	"github.com/kyle-tennison/magnetite/inp"
)

// Dof holds one nodal degree-of-freedom. Before the solve exactly one of
// (U, F) is known on each dof; after the solve both are known.
type Dof struct {
	Key    string  // primary variable key: "ux" or "uy"
	Eq     int     // equation number == 2*node + axis
	U      float64 // displacement value
	F      float64 // force value
	UKnown bool    // displacement is prescribed (pre-solve) or solved
	FKnown bool    // force is prescribed (pre-solve) or solved
}

// Node holds node dofs information
type Node struct {
	Vert *inp.Vert // pointer to vertex
	Dofs [2]*Dof   // x and y degrees-of-freedom
}

// NewNode allocates a new Node with free dofs loaded by zero force
func NewNode(v *inp.Vert) *Node {
	n := &Node{Vert: v}
	n.Dofs[0] = &Dof{Key: "ux", Eq: 2 * v.Id, FKnown: true}
	n.Dofs[1] = &Dof{Key: "uy", Eq: 2*v.Id + 1, FKnown: true}
	return n
}

// GetDof returns the dof with the given key or nil
func (o *Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// SetU prescribes the displacement of one dof, releasing its force
func (o *Dof) SetU(u float64) {
	o.U, o.UKnown = u, true
	o.F, o.FKnown = 0, false
}

// SetF prescribes the force of one dof, releasing its displacement
func (o *Dof) SetF(f float64) {
	o.F, o.FKnown = f, true
	o.U, o.UKnown = 0, false
}

// String returns the string representation of this Dof
func (o *Dof) String() string {
	return io.Sf("{ \"key\":%q, \"eq\":%d, \"u\":%g, \"f\":%g }", o.Key, o.Eq, o.U, o.F)
}

// String returns the string representation of this node
func (o *Node) String() string {
	l := io.Sf("{ \"id\":%d,", o.Vert.Id)
	for _, dof := range o.Dofs {
		l += " " + dof.String()
	}
	return l + " }"
}
