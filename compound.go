/*
 * compound.go, part of molforge/compound.
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

//Compound is the hierarchical container. Every structural unit, from a
//single particle to a full molecule, is a Compound node that may own child
//nodes (particles, ports or nested compounds) and the bonds recorded at its
//level. Mutation is single-threaded: callers must serialize writers
//externally, and must not traverse concurrently with a mutation.
type Compound struct {
	name     string
	parent   *Compound
	children []Node
	bonds    []*Bond
}

//New returns an empty compound with the given label.
func New(name string) *Compound {
	return &Compound{name: name}
}

func (C *Compound) NodeKind() NodeKind { return KindCompound }

func (C *Compound) Label() string { return C.name }

//Parent returns the compound that owns C, or nil if C is a tree root.
func (C *Compound) Parent() *Compound { return C.parent }

func (C *Compound) setParent(p *Compound) { C.parent = p }

//Rename changes the label of the compound. It has no structural effect.
func (C *Compound) Rename(name string) {
	C.name = name
}

//Root returns the root of the tree C belongs to (C itself if unowned).
func (C *Compound) Root() *Compound {
	r := C
	for r.parent != nil {
		r = r.parent
	}
	return r
}

//Children returns a fresh slice with the direct children of C, in insertion
//order. The slice is the caller's, the children are not copies.
func (C *Compound) Children() []Node {
	ret := make([]Node, len(C.children))
	copy(ret, C.children)
	return ret
}

//isAncestorOf reports whether C is node itself or a (possibly indirect)
//owner of node.
func (C *Compound) isAncestorOf(n Node) bool {
	if n == nil {
		return false
	}
	if c, ok := n.(*Compound); ok && c == C {
		return true
	}
	for p := n.Parent(); p != nil; p = p.parent {
		if p == C {
			return true
		}
	}
	return false
}

//Add attaches a particle, a port or another compound (itself possibly
//populated, e.g. a reusable fragment) as a new child of C. Ownership is
//transferred, not shared: the node must not already have a parent
//(OwnershipError) and must not be an ancestor of C (CycleError). Particle
//identities must not collide with ones already in C's tree (OwnershipError).
//The child's coordinates are left unchanged: it is added in the parent's
//existing coordinate frame.
func (C *Compound) Add(node Node) error {
	if node == nil {
		panic(ErrNilNode)
	}
	if node.Parent() != nil {
		return newError(ErrOwnership, "node %q already has a parent (%q)", node.Label(), node.Parent().Label())
	}
	if c, ok := node.(*Compound); ok {
		if c.isAncestorOf(C) {
			return newError(ErrCycle, "adding %q to %q would create a containment cycle", c.name, C.name)
		}
	}
	//Identity uniqueness within the whole receiving tree, enforced here.
	have := make(map[uuid.UUID]bool)
	for it := C.Root().Particles(); it.Next(); {
		have[it.Particle().ID()] = true
	}
	for it := particlesOf(node); it.Next(); {
		if have[it.Particle().ID()] {
			return newError(ErrOwnership, "particle identity %s already present in tree %q", it.Particle().ID(), C.Root().name)
		}
	}
	C.children = append(C.children, node)
	node.setParent(C)
	return nil
}

//AddBond records a bond between two descendant particles of C. The bond is
//stored at the lowest common ancestor of the two endpoints. It fails with
//UnknownParticleError if either particle is not a descendant of C,
//SelfBondError if both references are the same particle, and
//DuplicateBondError if the unordered pair is already bonded anywhere in the
//tree.
func (C *Compound) AddBond(a, b *Particle) (*Bond, error) {
	if a == nil || b == nil {
		panic(ErrNilNode)
	}
	if a.ID() == b.ID() {
		return nil, newError(ErrSelfBond, "both endpoints are particle %q (%s)", a.Name, a.ID())
	}
	if !C.isAncestorOf(a) {
		return nil, newError(ErrUnknownParticle, "particle %q (%s) is not a descendant of %q", a.Name, a.ID(), C.name)
	}
	if !C.isAncestorOf(b) {
		return nil, newError(ErrUnknownParticle, "particle %q (%s) is not a descendant of %q", b.Name, b.ID(), C.name)
	}
	for it := C.Root().Bonds(); it.Next(); {
		if it.Bond().samePair(a, b) {
			return nil, newError(ErrDuplicateBond, "particles %q and %q are already bonded", a.Name, b.Name)
		}
	}
	owner := lca(a, b)
	if owner == nil {
		//both descend from C, so a common ancestor must exist
		panic(ErrNilNode)
	}
	bond := &Bond{At1: a, At2: b, owner: owner}
	owner.bonds = append(owner.bonds, bond)
	return bond, nil
}

//lca returns the lowest common ancestor compound of two owned particles,
//or nil if they share none.
func lca(a, b *Particle) *Compound {
	depth := make(map[*Compound]bool)
	for p := a.Parent(); p != nil; p = p.parent {
		depth[p] = true
	}
	for p := b.Parent(); p != nil; p = p.parent {
		if depth[p] {
			return p
		}
	}
	return nil
}

//Remove detaches a descendant node (and its subtree) from its parent,
//cascading removal of every bond that joins a removed particle to the rest
//of the tree. The severed bonds are returned so the caller may react, e.g.
//by authoring a fresh port on the open valence. Bonds internal to the
//detached subtree travel with it and are not severed. Fails with
//OwnershipError if node is not an owned descendant of C.
func (C *Compound) Remove(node Node) ([]*Bond, error) {
	if node == nil {
		panic(ErrNilNode)
	}
	parent := node.Parent()
	if parent == nil || !C.isAncestorOf(node) {
		return nil, newError(ErrOwnership, "node %q is not owned within compound %q", node.Label(), C.name)
	}
	removed := make(map[uuid.UUID]bool)
	for it := particlesOf(node); it.Next(); {
		removed[it.Particle().ID()] = true
	}
	//Bonds straddling the cut are owned at strict ancestors of node, the
	//lowest common ancestor of a straddling pair is never inside the subtree.
	var severed []*Bond
	for anc := parent; anc != nil; anc = anc.parent {
		var kept []*Bond
		for _, b := range anc.bonds {
			if removed[b.At1.ID()] || removed[b.At2.ID()] {
				severed = append(severed, b)
				continue
			}
			kept = append(kept, b)
		}
		anc.bonds = kept
	}
	for i, ch := range parent.children {
		if ch == node {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	node.setParent(nil)
	return severed, nil
}

//particlesOf returns a particle iterator over any node: the node's own
//subtree if it is a compound, the particle itself if it is one, and an
//empty traversal for a port.
func particlesOf(n Node) *ParticleIter {
	return &ParticleIter{stack: []Node{n}}
}

//ParticleIter is a lazy depth-first traversal over the particles of a
//subtree, in insertion order. A fresh iterator reflects the tree as it is
//walked: do not mutate the tree while iterating.
type ParticleIter struct {
	stack []Node
	curr  *Particle
}

//Particles returns a fresh iterator over all descendant particles of C in
//deterministic depth-first, insertion order. Each call yields an independent
//traversal.
func (C *Compound) Particles() *ParticleIter {
	return &ParticleIter{stack: []Node{C}}
}

//Next advances the iterator. It returns false when the traversal is done.
func (it *ParticleIter) Next() bool {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		switch v := n.(type) {
		case *Particle:
			it.curr = v
			return true
		case *Compound:
			for i := len(v.children) - 1; i >= 0; i-- {
				it.stack = append(it.stack, v.children[i])
			}
		}
	}
	return false
}

//Particle returns the particle the iterator is standing on.
func (it *ParticleIter) Particle() *Particle {
	return it.curr
}

//BondIter is a lazy traversal over all bonds reachable from a node,
//deduplicated: a bond is yielded once even if reachable at several levels.
type BondIter struct {
	stack   []Node
	pending []*Bond
	idx     int
	seen    map[*Bond]bool
	curr    *Bond
}

//Bonds returns a fresh iterator over every bond recorded at C or at any of
//its descendant compounds.
func (C *Compound) Bonds() *BondIter {
	return &BondIter{stack: []Node{C}, seen: make(map[*Bond]bool)}
}

//Next advances the iterator. It returns false when the traversal is done.
func (it *BondIter) Next() bool {
	for {
		for it.idx < len(it.pending) {
			b := it.pending[it.idx]
			it.idx++
			if it.seen[b] {
				continue
			}
			it.seen[b] = true
			it.curr = b
			return true
		}
		found := false
		for len(it.stack) > 0 {
			n := it.stack[len(it.stack)-1]
			it.stack = it.stack[:len(it.stack)-1]
			c, ok := n.(*Compound)
			if !ok {
				continue
			}
			for i := len(c.children) - 1; i >= 0; i-- {
				it.stack = append(it.stack, c.children[i])
			}
			it.pending = c.bonds
			it.idx = 0
			found = true
			break
		}
		if !found {
			return false
		}
	}
}

//Bond returns the bond the iterator is standing on.
func (it *BondIter) Bond() *Bond {
	return it.curr
}

//AllParticles collects the particle traversal into a slice.
func (C *Compound) AllParticles() []*Particle {
	var ret []*Particle
	for it := C.Particles(); it.Next(); {
		ret = append(ret, it.Particle())
	}
	return ret
}

//AllBonds collects the bond traversal into a slice.
func (C *Compound) AllBonds() []*Bond {
	var ret []*Bond
	for it := C.Bonds(); it.Next(); {
		ret = append(ret, it.Bond())
	}
	return ret
}

//Len returns the number of descendant particles.
func (C *Compound) Len() int {
	n := 0
	for it := C.Particles(); it.Next(); {
		n++
	}
	return n
}

//FindParticle returns the descendant particle with the given identity, or
//nil if there is none.
func (C *Compound) FindParticle(id uuid.UUID) *Particle {
	for it := C.Particles(); it.Next(); {
		if it.Particle().ID() == id {
			return it.Particle()
		}
	}
	return nil
}

//Coords returns a fresh Nx3 matrix with the positions of all descendant
//particles, in traversal order, or nil if the compound has no particles.
func (C *Compound) Coords() *v3.Matrix {
	n := C.Len()
	if n == 0 {
		return nil
	}
	ret := v3.Zeros(n)
	i := 0
	for it := C.Particles(); it.Next(); {
		ret.SetVec(i, it.Particle().Coord())
		i++
	}
	return ret
}

//Centroid returns the geometric center of all descendant particles as a 1x3
//vector. The position of a compound is derived, recomputed on demand. An
//empty compound sits at the origin.
func (C *Compound) Centroid() *v3.Matrix {
	center := v3.Zeros(1)
	n := 0
	for it := C.Particles(); it.Next(); {
		center.AddVec(center, it.Particle().Coord())
		n++
	}
	if n > 0 {
		center.Scale(1.0/float64(n), center)
	}
	return center
}
