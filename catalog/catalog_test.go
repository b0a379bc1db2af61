/*
 * catalog_test.go, part of molforge/compound.
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

package catalog

import (
	"strings"
	"testing"

	compound "github.com/molforge/compound"
)

func TestDefaultCatalog(Te *testing.T) {
	cat := Default()
	names := cat.Fragments()
	if len(names) == 0 {
		Te.Fatal("the embedded catalog should not be empty")
	}
	for _, want := range []string{"water", "hydroxyl", "methyl"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			Te.Errorf("default catalog is missing %q", want)
		}
	}
}

func TestBuild(Te *testing.T) {
	cat := Default()
	w, err := cat.Build("water")
	if err != nil {
		Te.Fatal(err)
	}
	if w.Len() != 3 {
		Te.Errorf("water should have 3 particles, got %d", w.Len())
	}
	if len(w.AllBonds()) != 2 {
		Te.Errorf("water should have 2 bonds, got %d", len(w.AllBonds()))
	}
	oh, err := cat.Build("hydroxyl")
	if err != nil {
		Te.Fatal(err)
	}
	if len(oh.OpenPorts()) != 1 {
		Te.Errorf("hydroxyl should expose 1 open port, got %d", len(oh.OpenPorts()))
	}
}

func TestBuildFreshIdentities(Te *testing.T) {
	cat := Default()
	a, err := cat.Build("water")
	if err != nil {
		Te.Fatal(err)
	}
	b, err := cat.Build("water")
	if err != nil {
		Te.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, p := range a.AllParticles() {
		seen[p.ID().String()] = true
	}
	for _, p := range b.AllParticles() {
		if seen[p.ID().String()] {
			Te.Fatal("two builds of the same fragment must not share particle identities")
		}
	}
	//and so both instances can live in one tree
	parent := compound.New("pair")
	if err := parent.Add(a); err != nil {
		Te.Fatal(err)
	}
	if err := parent.Add(b); err != nil {
		Te.Fatal(err)
	}
	if parent.Len() != 6 {
		Te.Errorf("expected 6 particles in the pair, got %d", parent.Len())
	}
}

func TestBuildUnknownFragment(Te *testing.T) {
	if _, err := Default().Build("unobtainium"); err == nil {
		Te.Error("building an undefined fragment must fail")
	}
}

func TestParseRejectsBadDefinitions(Te *testing.T) {
	cases := map[string]string{
		"nameless fragment": `
fragments:
  - particles:
      - {label: C, position: [0, 0, 0]}
`,
		"duplicate name": `
fragments:
  - name: x
    particles:
      - {label: C, position: [0, 0, 0]}
  - name: x
    particles:
      - {label: C, position: [0, 0, 0]}
`,
		"short position": `
fragments:
  - name: x
    particles:
      - {label: C, position: [0, 0]}
`,
		"bond out of range": `
fragments:
  - name: x
    particles:
      - {label: C, position: [0, 0, 0]}
    bonds:
      - [0, 5]
`,
		"zero port direction": `
fragments:
  - name: x
    particles:
      - {label: C, position: [0, 0, 0]}
    ports:
      - {name: up, anchor: 0, direction: [0, 0, 0], separation: 0.07}
`,
		"port anchor out of range": `
fragments:
  - name: x
    particles:
      - {label: C, position: [0, 0, 0]}
    ports:
      - {name: up, anchor: 3, direction: [0, 0, 1], separation: 0.07}
`,
		"overbonded hydrogen": `
fragments:
  - name: x
    particles:
      - {label: H, position: [0, 0, 0]}
      - {label: H, position: [0.1, 0, 0]}
      - {label: H, position: [0.2, 0, 0]}
    bonds:
      - [0, 1]
      - [1, 2]
`,
	}
	for name, src := range cases {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			Te.Errorf("%s: expected a parse error", name)
		}
	}
}

func TestParseValid(Te *testing.T) {
	src := `
fragments:
  - name: ethylene-unit
    particles:
      - {label: C, position: [0, 0, 0]}
      - {label: C, position: [0.154, 0, 0]}
    bonds:
      - [0, 1]
    ports:
      - {name: head, anchor: 0, direction: [-1, 0, 0], separation: 0.077}
      - {name: tail, anchor: 1, direction: [1, 0, 0], separation: 0.077}
`
	cat, err := Parse(strings.NewReader(src))
	if err != nil {
		Te.Fatal(err)
	}
	c, err := cat.Build("ethylene-unit")
	if err != nil {
		Te.Fatal(err)
	}
	ports := c.OpenPorts()
	if len(ports) != 2 {
		Te.Fatalf("expected 2 open ports, got %d", len(ports))
	}
	//a chain of two units closes one port on each side
	c2, err := cat.Build("ethylene-unit")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := compound.Connect(c.OpenPorts()[1], c2.OpenPorts()[0]); err != nil {
		Te.Fatal(err)
	}
	root := c2.Root()
	if root.Len() != 4 {
		Te.Errorf("the dimer should have 4 particles, got %d", root.Len())
	}
	if len(root.OpenPorts()) != 2 {
		Te.Errorf("the dimer should keep 2 open ports, got %d", len(root.OpenPorts()))
	}
}
