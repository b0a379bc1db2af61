/*
 * bond.go, part of molforge/compound.
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

//Bond is an undirected edge between exactly two distinct particles of the
//same tree. A bond is stored at the lowest common ancestor of its endpoints.
type Bond struct {
	At1 *Particle
	At2 *Particle
	//the compound whose bond set records this bond. Kept so cascade
	//removal doesn't have to search the whole tree.
	owner *Compound
}

//Cross returns the particle at the other end of the bond from origin.
//It panics if origin is not an endpoint, as that got to be a programming
//error.
func (B *Bond) Cross(origin *Particle) *Particle {
	if B.At1.ID() == origin.ID() {
		return B.At2
	}
	if B.At2.ID() == origin.ID() {
		return B.At1
	}
	panic("compound: trying to cross a bond from a particle not present in it")
}

//Touches reports whether p is one of the bond's endpoints.
func (B *Bond) Touches(p *Particle) bool {
	return B.At1.ID() == p.ID() || B.At2.ID() == p.ID()
}

//samePair reports whether the bond joins the same unordered particle pair
//as (a, b).
func (B *Bond) samePair(a, b *Particle) bool {
	if B.At1.ID() == a.ID() && B.At2.ID() == b.ID() {
		return true
	}
	return B.At1.ID() == b.ID() && B.At2.ID() == a.ID()
}
