/*
 * csv.go, part of molforge/compound.
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

//Package compoundcsv writes and reads structures as flat CSV tables, the
//shape spreadsheet-ish analysis and plotting tools expect: one particle
//table (index, label, x, y, z) and one bond table (a, b).
package compoundcsv

import (
	"io"

	"github.com/gocarina/gocsv"

	compound "github.com/molforge/compound"
)

//ParticleRow is one line of the particle table.
type ParticleRow struct {
	Index int     `csv:"index"`
	Label string  `csv:"label"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
}

//BondRow is one line of the bond table. A and B are particle-table indexes.
type BondRow struct {
	A uint `csv:"a"`
	B uint `csv:"b"`
}

//WriteTables exports c and writes its particle and bond tables to the two
//writers. Indexes follow the compound's traversal order, matching what the
//loader record shape uses.
func WriteTables(c *compound.Compound, particles, bonds io.Writer) error {
	s, err := compound.Export(c)
	if err != nil {
		return err
	}
	prows := make([]*ParticleRow, 0, len(s.Atoms))
	for i, a := range s.Atoms {
		prows = append(prows, &ParticleRow{Index: i, Label: a.Label, X: a.X, Y: a.Y, Z: a.Z})
	}
	if err := gocsv.Marshal(&prows, particles); err != nil {
		return err
	}
	brows := make([]*BondRow, 0, len(s.Bonds))
	for _, b := range s.Bonds {
		brows = append(brows, &BondRow{A: b.A, B: b.B})
	}
	return gocsv.Marshal(&brows, bonds)
}

//ReadTables reads a particle and a bond table back into the normalized
//record shape. The particle table's own index column wins over line order,
//so a table sorted by some other column still loads correctly.
func ReadTables(particles, bonds io.Reader) (*compound.Structure, error) {
	var prows []*ParticleRow
	if err := gocsv.Unmarshal(particles, &prows); err != nil {
		return nil, err
	}
	var brows []*BondRow
	if err := gocsv.Unmarshal(bonds, &brows); err != nil {
		return nil, err
	}
	s := new(compound.Structure)
	s.Atoms = make([]compound.AtomRecord, len(prows))
	filled := make([]bool, len(prows))
	for _, r := range prows {
		if r.Index < 0 || r.Index >= len(prows) {
			return nil, &RowError{Row: r.Index, Message: "particle index out of range"}
		}
		if filled[r.Index] {
			return nil, &RowError{Row: r.Index, Message: "duplicate particle index"}
		}
		filled[r.Index] = true
		s.Atoms[r.Index] = compound.AtomRecord{Label: r.Label, X: r.X, Y: r.Y, Z: r.Z}
	}
	for _, b := range brows {
		s.Bonds = append(s.Bonds, compound.BondRecord{A: b.A, B: b.B})
	}
	return s, nil
}

//RowError reports a bad row in a table.
type RowError struct {
	Row     int
	Message string
}

func (e *RowError) Error() string {
	return e.Message
}
