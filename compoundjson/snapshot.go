/*
 * snapshot.go, part of molforge/compound.
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

package compoundjson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	compound "github.com/molforge/compound"
)

//A snapshot is the persistent form of a structure: a zstd stream holding a
//small JSON header followed by the JSON records. Persistence is the exact
//inverse of loading, so a tree built purely from records round-trips.

const snapshotMagic = "compound-snapshot"

const snapshotVersion = 1

type snapshotHeader struct {
	Magic   string `json:"magic"`
	Version int    `json:"version"`
	Label   string `json:"label"`
	Atoms   int    `json:"atoms"`
	Bonds   int    `json:"bonds"`
}

//WriteSnapshot writes the records of s as a compressed snapshot to out.
//The label travels in the header so a loader can restore it.
func WriteSnapshot(out io.Writer, label string, s *compound.Structure) error {
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return NewError("WriteSnapshot", err)
	}
	enc := json.NewEncoder(zw)
	hdr := snapshotHeader{
		Magic:   snapshotMagic,
		Version: snapshotVersion,
		Label:   label,
		Atoms:   len(s.Atoms),
		Bonds:   len(s.Bonds),
	}
	if err := enc.Encode(hdr); err != nil {
		zw.Close()
		return NewError("WriteSnapshot", err)
	}
	if err := enc.Encode(FromRecords(s)); err != nil {
		zw.Close()
		return NewError("WriteSnapshot", err)
	}
	if err := zw.Close(); err != nil {
		return NewError("WriteSnapshot", err)
	}
	return nil
}

//ReadSnapshot reads one compressed snapshot from in, returning the label
//from the header and the records.
func ReadSnapshot(in io.Reader) (string, *compound.Structure, error) {
	zr, err := zstd.NewReader(in)
	if err != nil {
		return "", nil, NewError("ReadSnapshot", err)
	}
	defer zr.Close()
	dec := json.NewDecoder(zr)
	hdr := new(snapshotHeader)
	if err := dec.Decode(hdr); err != nil {
		return "", nil, NewError("ReadSnapshot", err)
	}
	if hdr.Magic != snapshotMagic {
		return "", nil, NewError("ReadSnapshot", fmt.Errorf("not a compound snapshot"))
	}
	if hdr.Version != snapshotVersion {
		return "", nil, NewError("ReadSnapshot", fmt.Errorf("unsupported snapshot version %d", hdr.Version))
	}
	s := new(Structure)
	if err := dec.Decode(s); err != nil {
		return "", nil, NewError("ReadSnapshot", err)
	}
	if len(s.Atoms) != hdr.Atoms || len(s.Bonds) != hdr.Bonds {
		return "", nil, NewError("ReadSnapshot", fmt.Errorf("snapshot payload doesn't match its header (%d/%d atoms, %d/%d bonds)", len(s.Atoms), hdr.Atoms, len(s.Bonds), hdr.Bonds))
	}
	return hdr.Label, ToRecords(s), nil
}

//SnapshotSave exports c and writes it as a compressed snapshot file.
func SnapshotSave(name string, c *compound.Compound) error {
	s, err := compound.Export(c)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return NewError("SnapshotSave", err)
	}
	defer f.Close()
	return WriteSnapshot(f, c.Label(), s)
}

//SnapshotLoad reads a snapshot file into a fresh compound labeled as the
//snapshot says.
func SnapshotLoad(name string) (*compound.Compound, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError("SnapshotLoad", err)
	}
	defer f.Close()
	label, s, err := ReadSnapshot(f)
	if err != nil {
		return nil, err
	}
	c := compound.New(label)
	if err := compound.Load(s, c); err != nil {
		return nil, err
	}
	return c, nil
}
