/*
 * port_test.go, part of molforge/compound.
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
	"math"
	"testing"

	v3 "github.com/molforge/compound/v3"
)

//portedFragment builds a single-particle fragment with one open port along
//the given direction.
func portedFragment(Te *testing.T, name, element string, x, y, z float64, dir []float64) (*Compound, *Particle, *Port) {
	c := New(name)
	p := NewParticleXYZ(element, x, y, z)
	if err := c.Add(p); err != nil {
		Te.Fatal(err)
	}
	d, err := v3.NewMatrix(dir)
	if err != nil {
		Te.Fatal(err)
	}
	port := NewPort(name+"-port", p, d, 0.07)
	if err := c.Add(port); err != nil {
		Te.Fatal(err)
	}
	return c, p, port
}

func TestNewPortPlacement(Te *testing.T) {
	_, p, port := portedFragment(Te, "frag", "C", 1, 2, 3, []float64{0, 0, 2})
	if port.Anchor() != p {
		Te.Error("port anchored to the wrong particle")
	}
	if math.Abs(port.Direction().Norm(2)-1) > 1e-12 {
		Te.Error("port direction should be normalized")
	}
	want := []float64{1, 2, 3.07}
	for k := 0; k < 3; k++ {
		if math.Abs(port.Coord().At(0, k)-want[k]) > 1e-12 {
			Te.Errorf("port position component %d: got %g, want %g", k, port.Coord().At(0, k), want[k])
		}
	}
}

func TestConnect(Te *testing.T) {
	a, a1, pa := portedFragment(Te, "A", "C", 0, 0, 0, []float64{1, 0, 0})
	b, b1, pb := portedFragment(Te, "B", "N", 5, 5, 5, []float64{0, 1, 0})
	bond, err := Connect(pa, pb)
	if err != nil {
		Te.Fatal(err)
	}
	root := b.Root()
	//no open ports remain at either side
	if len(root.OpenPorts()) != 0 {
		Te.Errorf("expected no open ports after the fusion, got %d", len(root.OpenPorts()))
	}
	if !pa.Used() || !pb.Used() {
		Te.Error("both ports should be consumed")
	}
	//the anchors got bonded
	if !bond.Touches(a1) || !bond.Touches(b1) {
		Te.Error("the new bond should join the two anchors")
	}
	//A was merged under B's tree
	if a.Root() != root {
		Te.Error("subtree A should have been merged into B's tree")
	}
	if root.Len() != 2 {
		Te.Errorf("expected 2 particles in the fused tree, got %d", root.Len())
	}
	//rigid alignment: the anchors ended up facing each other across the
	//two port positions, 2*separation apart
	sep := v3.Zeros(1)
	sep.SubVec(a1.Coord(), b1.Coord())
	if d := sep.Norm(2); math.Abs(d-0.14) > 1e-9 {
		Te.Errorf("anchors should sit 0.14 apart after fusion, got %g", d)
	}
}

func TestConnectIsNotRepeatable(Te *testing.T) {
	_, _, pa := portedFragment(Te, "A", "C", 0, 0, 0, []float64{1, 0, 0})
	_, _, pb := portedFragment(Te, "B", "N", 1, 0, 0, []float64{-1, 0, 0})
	if _, err := Connect(pa, pb); err != nil {
		Te.Fatal(err)
	}
	if _, err := Connect(pa, pb); KindOf(err) != ErrPortAlreadyUsed {
		Te.Errorf("expected PortAlreadyUsedError on the second connection, got %v", err)
	}
}

func TestConnectWithinOneTree(Te *testing.T) {
	root := New("root")
	a, _, pa := portedFragment(Te, "A", "C", 0, 0, 0, []float64{1, 0, 0})
	b, _, pb := portedFragment(Te, "B", "N", 1, 0, 0, []float64{-1, 0, 0})
	if err := root.Add(a); err != nil {
		Te.Fatal(err)
	}
	if err := root.Add(b); err != nil {
		Te.Fatal(err)
	}
	if _, err := Connect(pa, pb); KindOf(err) != ErrDisjointTree {
		Te.Errorf("expected DisjointTreeError, got %v", err)
	}
}

func TestConnectUnownedPort(Te *testing.T) {
	_, _, pa := portedFragment(Te, "A", "C", 0, 0, 0, []float64{1, 0, 0})
	b1 := NewParticleXYZ("N", 1, 0, 0)
	loose := New("loose")
	loose.Add(b1)
	d, _ := v3.NewMatrix([]float64{-1, 0, 0})
	pb := NewPort("unowned", b1, d, 0.07) //authored but never added
	if _, err := Connect(pa, pb); KindOf(err) != ErrOwnership {
		Te.Errorf("expected OwnershipError for an unowned port, got %v", err)
	}
}

func TestConnectAntiparallelDirections(Te *testing.T) {
	//ports already facing each other: the transform reduces to a translation
	a, a1, pa := portedFragment(Te, "A", "C", 0, 0, 0, []float64{0, 0, 1})
	_, _, pb := portedFragment(Te, "B", "N", 0, 0, 10, []float64{0, 0, -1})
	if _, err := Connect(pa, pb); err != nil {
		Te.Fatal(err)
	}
	_ = a
	//anchor a1 ends up directly below b's anchor on the z axis
	if math.Abs(a1.Coord().At(0, 2)-9.86) > 1e-9 {
		Te.Errorf("anchor z: got %g, want 9.86", a1.Coord().At(0, 2))
	}
	if math.Abs(a1.Coord().At(0, 0)) > 1e-9 || math.Abs(a1.Coord().At(0, 1)) > 1e-9 {
		Te.Error("anchor drifted off the z axis")
	}
}

func TestConnectInto(Te *testing.T) {
	a, _, pa := portedFragment(Te, "A", "C", 0, 0, 0, []float64{1, 0, 0})
	b, _, pb := portedFragment(Te, "B", "N", 3, 0, 0, []float64{-1, 0, 0})
	shell := New("shell")
	if err := shell.Add(b); err != nil {
		Te.Fatal(err)
	}
	if _, err := ConnectInto(pa, pb, shell); err != nil {
		Te.Fatal(err)
	}
	if a.Parent() != shell {
		Te.Error("subtree A should have been merged into the chosen parent")
	}
	outside := New("outside")
	_, _, pa2 := portedFragment(Te, "A2", "C", 0, 0, 0, []float64{1, 0, 0})
	_, _, pb2 := portedFragment(Te, "B2", "N", 3, 0, 0, []float64{-1, 0, 0})
	if _, err := ConnectInto(pa2, pb2, outside); KindOf(err) != ErrDisjointTree {
		Te.Errorf("expected DisjointTreeError for a merge target outside B's tree, got %v", err)
	}
}
