/*
 * json.go, part of molforge/compound.
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

//Package compoundjson (de)serializes the normalized structure records of
//the compound package as JSON, for exchange with external readers,
//exporters and visualization tools.
package compoundjson

import (
	"encoding/json"
	"io"

	compound "github.com/molforge/compound"
)

//Atom is a ready-to-serialize container for one atom record.
type Atom struct {
	Label  string    `json:"label"`
	Coords []float64 `json:"coords"` //x, y, z
}

//Bond is a ready-to-serialize container for one bond record, referencing
//atom records by position.
type Bond struct {
	A uint `json:"a"`
	B uint `json:"b"`
}

//Structure is the JSON shape of a full normalized structure.
type Structure struct {
	Atoms []Atom `json:"atoms"`
	Bonds []Bond `json:"bonds"`
}

//FromRecords converts the compound package's record shape to the JSON shape.
func FromRecords(s *compound.Structure) *Structure {
	ret := new(Structure)
	for _, a := range s.Atoms {
		ret.Atoms = append(ret.Atoms, Atom{Label: a.Label, Coords: []float64{a.X, a.Y, a.Z}})
	}
	for _, b := range s.Bonds {
		ret.Bonds = append(ret.Bonds, Bond{A: b.A, B: b.B})
	}
	return ret
}

//ToRecords converts the JSON shape back to the compound package's record
//shape. Atoms with fewer than 3 coordinates get the missing ones as 0.
func ToRecords(s *Structure) *compound.Structure {
	ret := new(compound.Structure)
	for _, a := range s.Atoms {
		rec := compound.AtomRecord{Label: a.Label}
		if len(a.Coords) > 0 {
			rec.X = a.Coords[0]
		}
		if len(a.Coords) > 1 {
			rec.Y = a.Coords[1]
		}
		if len(a.Coords) > 2 {
			rec.Z = a.Coords[2]
		}
		ret.Atoms = append(ret.Atoms, rec)
	}
	for _, b := range s.Bonds {
		ret.Bonds = append(ret.Bonds, compound.BondRecord{A: b.A, B: b.B})
	}
	return ret
}

//Encode writes the structure records as JSON to out.
func Encode(s *compound.Structure, out io.Writer) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(FromRecords(s)); err != nil {
		return NewError("Encode", err)
	}
	return nil
}

//Decode reads one JSON structure from in and returns its records.
func Decode(in io.Reader) (*compound.Structure, error) {
	dec := json.NewDecoder(in)
	s := new(Structure)
	if err := dec.Decode(s); err != nil {
		return nil, NewError("Decode", err)
	}
	return ToRecords(s), nil
}

//EncodeCompound exports c to records and writes them as JSON to out.
func EncodeCompound(c *compound.Compound, out io.Writer) error {
	s, err := compound.Export(c)
	if err != nil {
		return err
	}
	return Encode(s, out)
}

//DecodeCompound reads one JSON structure from in and loads it into target.
func DecodeCompound(in io.Reader, target *compound.Compound) error {
	s, err := Decode(in)
	if err != nil {
		return err
	}
	return compound.Load(s, target)
}

//Error is the easily JSON-serializable error type of this package.
type Error struct {
	deco     []string
	Function string //which go function gave the error
	Message  string //the error itself
}

//Error implements the error interface.
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.deco = append(J.deco, dec)
	}
	return J.deco
}

//NewError wraps err with the name of the function that got it.
func NewError(function string, err error) *Error {
	return &Error{Function: function, Message: err.Error()}
}
