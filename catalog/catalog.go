/*
 * catalog.go, part of molforge/compound.
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

//Package catalog loads declarative fragment definitions from YAML and
//instantiates them as compounds. A fragment is authored once (particles,
//bonds, ports) and Build returns a freshly populated compound every call,
//so composition proceeds by plain ownership transfer instead of
//subclassing. A small default catalog is embedded.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	compound "github.com/molforge/compound"
	v3 "github.com/molforge/compound/v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

//ParticleDef is one particle of a fragment definition.
type ParticleDef struct {
	Label    string    `yaml:"label"`
	Position []float64 `yaml:"position"` //x, y, z
}

//PortDef is one port of a fragment definition. Anchor indexes the
//fragment's particle list.
type PortDef struct {
	Name       string    `yaml:"name"`
	Anchor     uint      `yaml:"anchor"`
	Direction  []float64 `yaml:"direction"`
	Separation float64   `yaml:"separation"`
}

//FragmentDef is a reusable structural unit as authored in YAML.
type FragmentDef struct {
	Name      string        `yaml:"name"`
	Particles []ParticleDef `yaml:"particles"`
	Bonds     [][]uint      `yaml:"bonds"`
	Ports     []PortDef     `yaml:"ports"`
}

type catalogFile struct {
	Fragments []FragmentDef `yaml:"fragments"`
}

//Catalog holds parsed fragment definitions by name.
type Catalog struct {
	frags map[string]*FragmentDef
	order []string
}

//Parse reads a YAML catalog.
func Parse(in io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	file := new(catalogFile)
	if err := yaml.Unmarshal(raw, file); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	cat := &Catalog{frags: make(map[string]*FragmentDef)}
	for i := range file.Fragments {
		def := &file.Fragments[i]
		if def.Name == "" {
			return nil, fmt.Errorf("catalog: fragment %d has no name", i)
		}
		if _, dup := cat.frags[def.Name]; dup {
			return nil, fmt.Errorf("catalog: fragment %q defined twice", def.Name)
		}
		if err := validate(def); err != nil {
			return nil, err
		}
		cat.frags[def.Name] = def
		cat.order = append(cat.order, def.Name)
	}
	return cat, nil
}

//ParseFile reads a YAML catalog from a file.
func ParseFile(name string) (*Catalog, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

//Default returns the embedded default catalog.
func Default() *Catalog {
	cat, err := Parse(bytes.NewReader(defaultsYAML))
	if err != nil {
		//the embedded catalog is part of the build, it can't be wrong
		panic(err.Error())
	}
	return cat
}

//Fragments returns the fragment names in definition order.
func (C *Catalog) Fragments() []string {
	ret := make([]string, len(C.order))
	copy(ret, C.order)
	return ret
}

//Build instantiates the named fragment as a fresh compound, with fresh
//particle identities on every call.
func (C *Catalog) Build(name string) (*compound.Compound, error) {
	def, ok := C.frags[name]
	if !ok {
		return nil, fmt.Errorf("catalog: no fragment named %q", name)
	}
	s := new(compound.Structure)
	for _, p := range def.Particles {
		s.Atoms = append(s.Atoms, compound.AtomRecord{Label: p.Label, X: p.Position[0], Y: p.Position[1], Z: p.Position[2]})
	}
	for _, b := range def.Bonds {
		s.Bonds = append(s.Bonds, compound.BondRecord{A: b[0], B: b[1]})
	}
	c := compound.New(def.Name)
	if err := compound.Load(s, c); err != nil {
		return nil, err
	}
	particles := c.AllParticles() //record order
	for _, p := range def.Ports {
		dir, err := v3.NewMatrix(p.Direction)
		if err != nil {
			return nil, fmt.Errorf("catalog: fragment %q port %q: %w", def.Name, p.Name, err)
		}
		port := compound.NewPort(p.Name, particles[p.Anchor], dir, p.Separation)
		if err := c.Add(port); err != nil {
			return nil, err
		}
	}
	return c, nil
}

//validate checks a definition's internal references and, for labels that
//are element symbols with a defined maximum valence, that the declared
//bonds plus ports don't exceed it.
func validate(def *FragmentDef) error {
	n := uint(len(def.Particles))
	valence := make([]int, n)
	for i, p := range def.Particles {
		if len(p.Position) != 3 {
			return fmt.Errorf("catalog: fragment %q particle %d needs a 3-component position, got %d", def.Name, i, len(p.Position))
		}
	}
	for i, b := range def.Bonds {
		if len(b) != 2 {
			return fmt.Errorf("catalog: fragment %q bond %d needs exactly 2 indexes, got %d", def.Name, i, len(b))
		}
		if b[0] >= n || b[1] >= n {
			return fmt.Errorf("catalog: fragment %q bond %d references a particle out of range", def.Name, i)
		}
		valence[b[0]]++
		valence[b[1]]++
	}
	for i, p := range def.Ports {
		if p.Anchor >= n {
			return fmt.Errorf("catalog: fragment %q port %d anchored to a particle out of range", def.Name, i)
		}
		if len(p.Direction) != 3 {
			return fmt.Errorf("catalog: fragment %q port %q needs a 3-component direction", def.Name, p.Name)
		}
		//NewPort normalizes the direction, so a zero vector must be caught here
		if math.Sqrt(p.Direction[0]*p.Direction[0]+p.Direction[1]*p.Direction[1]+p.Direction[2]*p.Direction[2]) <= 1e-12 {
			return fmt.Errorf("catalog: fragment %q port %q has a zero direction", def.Name, p.Name)
		}
		valence[p.Anchor]++
	}
	for i, p := range def.Particles {
		max := compound.SymbolMaxBonds(p.Label)
		if max > 0 && valence[i] > max {
			return fmt.Errorf("catalog: fragment %q gives %s particle %d %d bonds/ports, %s takes at most %d", def.Name, p.Label, i, valence[i], p.Label, max)
		}
	}
	return nil
}
