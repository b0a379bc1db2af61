/*
 * loader.go, part of molforge/compound.
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

//The loader is the import contract with external structure-file readers:
//they parse whatever format they support (PDB, MOL2, XYZ...) down to these
//normalized records, and this package populates a compound from them. Bonds
//are never inferred from geometry: no bond record, no bond, no matter how
//close two atoms sit.

//AtomRecord is one normalized atom: a label and a cartesian position.
type AtomRecord struct {
	Label   string
	X, Y, Z float64
}

//BondRecord references two atom records by their position in the atom
//sequence.
type BondRecord struct {
	A, B uint
}

//Structure is the normalized shape of an external structure file, and also
//the shape this package serializes back to (persistence is the inverse of
//loading).
type Structure struct {
	Atoms []AtomRecord
	Bonds []BondRecord
}

//Load populates target from the structure records: one particle per atom
//record, preserving record order as insertion order, and one bond per bond
//record. It fails with MalformedStructureError if a bond references an atom
//index out of range, repeats an unordered pair, or bonds an atom to itself.
//On failure target keeps whatever state it had before the call.
func Load(s *Structure, target *Compound) error {
	if s == nil || target == nil {
		panic(ErrNilNode)
	}
	//validate everything before touching target
	n := uint(len(s.Atoms))
	seen := make(map[[2]uint]bool, len(s.Bonds))
	for i, b := range s.Bonds {
		if b.A >= n || b.B >= n {
			return newError(ErrMalformedStructure, "bond record %d references atom index out of range (%d-%d of %d atoms)", i, b.A, b.B, n)
		}
		if b.A == b.B {
			return newError(ErrMalformedStructure, "bond record %d bonds atom %d to itself", i, b.A)
		}
		key := [2]uint{b.A, b.B}
		if b.B < b.A {
			key = [2]uint{b.B, b.A}
		}
		if seen[key] {
			return newError(ErrMalformedStructure, "bond record %d repeats the pair %d-%d", i, b.A, b.B)
		}
		seen[key] = true
	}
	particles := make([]*Particle, 0, len(s.Atoms))
	for _, a := range s.Atoms {
		particles = append(particles, NewParticleXYZ(a.Label, a.X, a.Y, a.Z))
	}
	holder := New(target.name)
	for _, p := range particles {
		if err := holder.Add(p); err != nil {
			return errDecorate(err, "Load")
		}
	}
	for _, b := range s.Bonds {
		if _, err := holder.AddBond(particles[b.A], particles[b.B]); err != nil {
			//already validated, so this would mean a clash with previous
			//content of target once merged; report it as a structure problem.
			cerr := newError(ErrMalformedStructure, "bond %d-%d: %s", b.A, b.B, err.Error())
			return errDecorate(cerr, "Load")
		}
	}
	//commit: move everything into target, keeping the records' order. The
	//bond set is detached from the holder first so reparenting the
	//particles doesn't cascade it away.
	moved := holder.bonds
	holder.bonds = nil
	for _, ch := range holder.Children() {
		if _, err := holder.Remove(ch); err != nil {
			return errDecorate(err, "Load")
		}
		if err := target.Add(ch); err != nil {
			return errDecorate(err, "Load")
		}
	}
	for _, b := range moved {
		b.owner = target
		target.bonds = append(target.bonds, b)
	}
	return nil
}

//Export serializes the particle and bond sequences of c back to the
//normalized record shape. Load(Export(c), empty) reproduces c's labels,
//positions and bond set for any c built purely from records. It fails with
//MalformedSubtreeError if a bond endpoint is somehow not among the
//compound's particles.
func Export(c *Compound) (*Structure, error) {
	if c == nil {
		panic(ErrNilNode)
	}
	s := new(Structure)
	index := make(map[*Particle]uint)
	for it := c.Particles(); it.Next(); {
		p := it.Particle()
		pos := p.Coord()
		index[p] = uint(len(s.Atoms))
		s.Atoms = append(s.Atoms, AtomRecord{Label: p.Name, X: pos.At(0, 0), Y: pos.At(0, 1), Z: pos.At(0, 2)})
	}
	for it := c.Bonds(); it.Next(); {
		b := it.Bond()
		ia, oka := index[b.At1]
		ib, okb := index[b.At2]
		if !oka || !okb {
			return nil, newError(ErrMalformedSubtree, "bond endpoint not among the compound's particles")
		}
		if ib < ia {
			ia, ib = ib, ia
		}
		s.Bonds = append(s.Bonds, BondRecord{A: ia, B: ib})
	}
	return s, nil
}
