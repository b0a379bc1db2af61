/*
 * graph_test.go, part of molforge/compound.
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

package compoundgraph

import (
	"testing"

	compound "github.com/molforge/compound"
)

//a linear chain A-B-C-D plus a lone particle E with no bonds.
func chain(Te *testing.T) (*compound.Compound, []*compound.Particle) {
	c := compound.New("chain")
	names := []string{"A", "B", "C", "D", "E"}
	parts := make([]*compound.Particle, 0, len(names))
	for i, n := range names {
		p := compound.NewParticleXYZ(n, float64(i)*0.15, 0, 0)
		if err := c.Add(p); err != nil {
			Te.Fatal(err)
		}
		parts = append(parts, p)
	}
	for i := 0; i < 3; i++ {
		if _, err := c.AddBond(parts[i], parts[i+1]); err != nil {
			Te.Fatal(err)
		}
	}
	return c, parts
}

func TestFromCompound(Te *testing.T) {
	c, parts := chain(Te)
	g := FromCompound(c, nil)
	if g.Nodes().Len() != 5 {
		Te.Errorf("expected 5 nodes, got %d", g.Nodes().Len())
	}
	nb := g.NodeFor(parts[1])
	if nb == nil {
		Te.Fatal("NodeFor returned nil for an adapted particle")
	}
	neigh := g.From(nb.ID())
	if neigh.Len() != 2 {
		Te.Errorf("the middle of a chain has 2 neighbors, got %d", neigh.Len())
	}
	na := g.NodeFor(parts[0])
	ne := g.NodeFor(parts[4])
	if !g.HasEdgeBetween(na.ID(), nb.ID()) {
		Te.Error("missing edge between bonded particles")
	}
	if g.HasEdgeBetween(na.ID(), ne.ID()) {
		Te.Error("edge between unbonded particles")
	}
	if w, ok := g.Weight(na.ID(), nb.ID()); !ok || w != 1 {
		Te.Errorf("default weight should be 1, got %g (%v)", w, ok)
	}
}

func TestConnected(Te *testing.T) {
	c, parts := chain(Te)
	if !Connected(c, parts[0], parts[3]) {
		Te.Error("ends of a chain should be connected")
	}
	if Connected(c, parts[0], parts[4]) {
		Te.Error("a lone particle should not be connected to the chain")
	}
	if !Connected(c, parts[2], parts[2]) {
		Te.Error("a particle is trivially connected to itself")
	}
}

func TestBondedPath(Te *testing.T) {
	c, parts := chain(Te)
	p := BondedPath(c, parts[0], parts[3])
	if len(p) != 4 {
		Te.Fatalf("expected a 4-particle path, got %d", len(p))
	}
	for i, want := range parts[:4] {
		if p[i] != want {
			Te.Errorf("path position %d: got %s, want %s", i, p[i].Name, want.Name)
		}
	}
	if BondedPath(c, parts[0], parts[4]) != nil {
		Te.Error("there is no bond path to a lone particle")
	}
}

func TestCustomWeights(Te *testing.T) {
	c := compound.New("square")
	parts := make([]*compound.Particle, 4)
	for i := range parts {
		parts[i] = compound.NewParticleXYZ("C", float64(i), 0, 0)
		if err := c.Add(parts[i]); err != nil {
			Te.Fatal(err)
		}
	}
	//a 4-cycle: 0-1-2-3-0
	for i := 0; i < 4; i++ {
		if _, err := c.AddBond(parts[i], parts[(i+1)%4]); err != nil {
			Te.Fatal(err)
		}
	}
	//make the 0-3 edge prohibitively heavy, so the shortest 0..3 path
	//goes the long way around
	heavy := func(e *Edge) float64 {
		if e.Touches(parts[0]) && e.Touches(parts[3]) {
			return 100
		}
		return 1
	}
	g := FromCompound(c, heavy)
	n0 := g.NodeFor(parts[0])
	n3 := g.NodeFor(parts[3])
	if w, _ := g.Weight(n0.ID(), n3.ID()); w != 100 {
		Te.Errorf("expected weight 100, got %g", w)
	}
	if w, _ := g.Weight(n0.ID(), n0.ID()); w != 0 {
		Te.Errorf("self weight should be 0, got %g", w)
	}
}
