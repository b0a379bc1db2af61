/*
 * particle.go, part of molforge/compound.
 *
 * Copyright 2026 The molforge authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package compound

import (
	"github.com/google/uuid"

	v3 "github.com/molforge/compound/v3"
)

//NodeKind tags the three kinds of nodes a Compound can own.
type NodeKind int

const (
	KindParticle NodeKind = iota
	KindPort
	KindCompound
)

//Node is any structural unit a Compound can own: a Particle, a Port or a
//nested Compound. The containment relation over Nodes is a strict tree,
//every node has at most one parent.
type Node interface {
	NodeKind() NodeKind
	Label() string
	Parent() *Compound
	setParent(*Compound)
}

//HasPosition reports whether the node carries an intrinsic position
//(particles and ports do, a compound's position is derived).
func HasPosition(n Node) bool {
	return n.NodeKind() != KindCompound
}

//IsContainer reports whether the node can own children.
func IsContainer(n Node) bool {
	return n.NodeKind() == KindCompound
}

//IsPort reports whether the node is a port.
func IsPort(n Node) bool {
	return n.NodeKind() == KindPort
}

//Particle is the atomic-scale leaf node. Its identity is stable for the
//lifetime of the owning tree and unique within it.
type Particle struct {
	Name   string  //chemical element or role tag, mutable
	Mass   float64 //0 if the label is not a known element
	id     uuid.UUID
	coord  *v3.Matrix //1x3 row vector
	parent *Compound
}

//NewParticle returns a particle with the given label at the given position.
//If the label is a known element symbol, the particle gets its mass assigned.
//The position matrix is owned by the particle from here on.
func NewParticle(name string, position *v3.Matrix) *Particle {
	if position == nil {
		panic(ErrNilMatrix)
	}
	return &Particle{
		Name:  name,
		Mass:  SymbolMass(name),
		id:    uuid.New(),
		coord: position,
	}
}

//NewParticleXYZ is a convenience wrapper building the position from the
//three cartesian components.
func NewParticleXYZ(name string, x, y, z float64) *Particle {
	pos, _ := v3.NewMatrix([]float64{x, y, z}) //3 elements, cannot fail
	return NewParticle(name, pos)
}

//ID returns the identity of the particle.
func (P *Particle) ID() uuid.UUID {
	if P == nil {
		panic(ErrNilNode)
	}
	return P.id
}

//Coord returns a view of the particle's 1x3 position. Changes through the
//view are seen by the particle.
func (P *Particle) Coord() *v3.Matrix {
	if P == nil {
		panic(ErrNilNode)
	}
	return P.coord
}

//SetCoord copies the 1x3 vector pos into the particle's position.
func (P *Particle) SetCoord(pos *v3.Matrix) {
	if P == nil || pos == nil {
		panic(ErrNilMatrix)
	}
	P.coord.SetVec(0, pos)
}

//Copy returns a deep copy of the particle with a fresh identity, so the
//copy can be inserted into the same tree as the original.
func (P *Particle) Copy() *Particle {
	if P == nil {
		panic(ErrNilNode)
	}
	pos := v3.Zeros(1)
	pos.Copy(P.coord)
	newp := NewParticle(P.Name, pos)
	newp.Mass = P.Mass
	return newp
}

func (P *Particle) NodeKind() NodeKind { return KindParticle }

func (P *Particle) Label() string { return P.Name }

//Parent returns the compound that directly owns the particle, or nil.
func (P *Particle) Parent() *Compound { return P.parent }

func (P *Particle) setParent(c *Compound) { P.parent = c }
