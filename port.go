/*
 * port.go, part of molforge/compound.
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
	v3 "github.com/molforge/compound/v3"
)

//Port is a zero-mass anchor node marking an open valence: a position, an
//outward-facing unit direction, and the particle the valence belongs to. It
//is not a particle and carries no chemical identity. Connecting two units
//through a pair of ports consumes both.
type Port struct {
	name   string
	anchor *Particle
	pos    *v3.Matrix //1x3
	dir    *v3.Matrix //1x3, unit
	used   bool
	parent *Compound
}

//NewPort authors a port on the open valence of anchor. The port sits at
//separation along direction from the anchor's position and faces outward
//along direction. The direction is normalized (a zero direction panics, per
//the v3 conventions).
func NewPort(name string, anchor *Particle, direction *v3.Matrix, separation float64) *Port {
	if anchor == nil {
		panic(ErrNilNode)
	}
	if direction == nil {
		panic(ErrNilMatrix)
	}
	dir := v3.Zeros(1)
	dir.Unit(direction)
	pos := v3.Zeros(1)
	pos.Scale(separation, dir)
	pos.AddVec(pos, anchor.Coord())
	return &Port{name: name, anchor: anchor, pos: pos, dir: dir}
}

func (P *Port) NodeKind() NodeKind { return KindPort }

func (P *Port) Label() string { return P.name }

//Parent returns the compound that owns the port, or nil.
func (P *Port) Parent() *Compound { return P.parent }

func (P *Port) setParent(c *Compound) { P.parent = c }

//Anchor returns the particle whose open valence the port marks.
func (P *Port) Anchor() *Particle { return P.anchor }

//Coord returns a view of the port's 1x3 position.
func (P *Port) Coord() *v3.Matrix { return P.pos }

//Direction returns a view of the port's outward-facing 1x3 unit vector.
func (P *Port) Direction() *v3.Matrix { return P.dir }

//Used reports whether the port was already consumed by a connection.
func (P *Port) Used() bool { return P.used }

//OpenPorts returns the unconsumed ports owned anywhere under C, in
//traversal order.
func (C *Compound) OpenPorts() []*Port {
	var ret []*Port
	var walk func(c *Compound)
	walk = func(c *Compound) {
		for _, ch := range c.children {
			switch v := ch.(type) {
			case *Port:
				if !v.used {
					ret = append(ret, v)
				}
			case *Compound:
				walk(v)
			}
		}
	}
	walk(C)
	return ret
}

//Connect fuses the tree holding portA onto the tree holding portB: it
//rigidly moves the whole of A's tree so that portA coincides with portB
//facing it, consumes both ports, merges A's root as a child of the compound
//that owned portB, and bonds the two anchor particles. See ConnectInto for
//choosing the merge parent explicitly.
func Connect(portA, portB *Port) (*Bond, error) {
	bond, err := ConnectInto(portA, portB, nil)
	if err != nil {
		return nil, errDecorate(err, "Connect")
	}
	return bond, nil
}

//ConnectInto is Connect with an explicit policy for where subtree A is
//merged: into must be a compound of portB's tree (nil means the compound
//that owns portB). It fails with PortAlreadyUsedError if either port was
//already consumed, and with DisjointTreeError if both ports live in the
//same tree, where connecting would create a containment cycle rather than a
//fusion, or if into is outside portB's tree.
func ConnectInto(portA, portB *Port, into *Compound) (*Bond, error) {
	if portA == nil || portB == nil {
		panic(ErrNilNode)
	}
	if portA.used {
		return nil, newError(ErrPortAlreadyUsed, "port %q was already consumed", portA.name)
	}
	if portB.used {
		return nil, newError(ErrPortAlreadyUsed, "port %q was already consumed", portB.name)
	}
	if portA.parent == nil || portB.parent == nil {
		return nil, newError(ErrOwnership, "both ports must be owned by a compound before connecting")
	}
	rootA := portA.parent.Root()
	rootB := portB.parent.Root()
	if rootA == rootB {
		return nil, newError(ErrDisjointTree, "ports %q and %q belong to the same tree", portA.name, portB.name)
	}
	if into == nil {
		into = portB.parent
	}
	if into.Root() != rootB {
		return nil, newError(ErrDisjointTree, "merge target %q is not part of port %q's tree", into.Label(), portB.name)
	}
	if rootA.FindParticle(portA.anchor.ID()) == nil {
		return nil, newError(ErrUnknownParticle, "anchor of port %q is not in its tree", portA.name)
	}
	if rootB.FindParticle(portB.anchor.ID()) == nil {
		return nil, newError(ErrUnknownParticle, "anchor of port %q is not in its tree", portB.name)
	}

	//Rigid alignment: rotate A so portA faces portB, then translate portA
	//onto portB. p' = p*R + t with t = posB - posA*R.
	rot := RotatorToAntiparallel(portA.dir, portB.dir)
	trans := v3.Zeros(1)
	trans.Mul(portA.pos, rot)
	trans.SubVec(trans, portB.pos)
	trans.Scale(-1, trans)
	if err := rootA.Transform(rot, trans); err != nil {
		return nil, errDecorate(err, "ConnectInto")
	}

	//Consume the ports. Removal cannot sever bonds, ports have none.
	if _, err := portA.parent.Remove(portA); err != nil {
		return nil, errDecorate(err, "ConnectInto")
	}
	if _, err := portB.parent.Remove(portB); err != nil {
		return nil, errDecorate(err, "ConnectInto")
	}
	portA.used = true
	portB.used = true

	if err := into.Add(rootA); err != nil {
		return nil, errDecorate(err, "ConnectInto")
	}
	bond, err := rootB.AddBond(portA.anchor, portB.anchor)
	if err != nil {
		return nil, errDecorate(err, "ConnectInto")
	}
	return bond, nil
}
