/*
 * transform.go, part of molforge/compound.
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

	v3 "github.com/molforge/compound/v3"
)

//Positions are row vectors, so a rotation operator R acts by right
//multiplication: p' = p*R + t. Every operator built by this file follows
//that convention.

//IdentityRotator returns the 3x3 identity operator.
func IdentityRotator() *v3.Matrix {
	r, _ := v3.NewMatrix([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	return r
}

//RotatorAxisAngle returns the operator that rotates row vectors by angle
//radians around the given 1x3 axis (Rodrigues formula). The axis need not
//be normalized but must not be the zero vector.
func RotatorAxisAngle(axis *v3.Matrix, angle float64) *v3.Matrix {
	if axis == nil {
		panic(ErrNilMatrix)
	}
	u := v3.Zeros(1)
	u.Unit(axis) //panics on a zero axis
	ux, uy, uz := u.At(0, 0), u.At(0, 1), u.At(0, 2)
	sin := math.Sin(angle)
	cos := math.Cos(angle)
	mcos := 1 - cos
	//column-vector Rodrigues matrix, transposed for row vectors
	op, _ := v3.NewMatrix([]float64{
		cos + ux*ux*mcos, uy*ux*mcos + uz*sin, uz*ux*mcos - uy*sin,
		ux*uy*mcos - uz*sin, cos + uy*uy*mcos, uz*uy*mcos + ux*sin,
		ux*uz*mcos + uy*sin, uy*uz*mcos - ux*sin, cos + uz*uz*mcos,
	})
	return op
}

//RotatorToAntiparallel returns the operator that maps the direction of the
//1x3 vector from onto the direction opposite to the 1x3 vector to. It is
//the alignment step of a port connection: after it, from and to face each
//other.
func RotatorToAntiparallel(from, to *v3.Matrix) *v3.Matrix {
	target := v3.Zeros(1)
	target.Scale(-1, to)
	angle := v3.Angle(from, target)
	axis := v3.Zeros(1)
	axis.Cross(from, target)
	if axis.Norm(2) <= 1e-10 {
		//from and target are parallel or antiparallel. For the latter any
		//axis perpendicular to from serves.
		if angle < math.Pi/2 {
			return IdentityRotator()
		}
		axis = perpendicularTo(from)
	}
	return RotatorAxisAngle(axis, angle)
}

//perpendicularTo returns some unit vector perpendicular to the 1x3 vector v.
func perpendicularTo(v *v3.Matrix) *v3.Matrix {
	probe, _ := v3.NewMatrix([]float64{1, 0, 0})
	if math.Abs(v.At(0, 1)) <= 1e-10 && math.Abs(v.At(0, 2)) <= 1e-10 {
		probe, _ = v3.NewMatrix([]float64{0, 1, 0})
	}
	axis := v3.Zeros(1)
	axis.Cross(v, probe)
	axis.Unit(axis)
	return axis
}

//Transform rigidly maps every descendant particle and port of C: positions
//become pos*rot + trans, port direction vectors are only rotated. The
//operation is atomic with respect to the rest of the tree: the full new
//coordinate set is computed before anything is committed, and a
//MalformedSubtreeError (raised if any descendant position is undefined)
//leaves the tree unchanged. rot must be 3x3 and trans 1x3, anything else is
//a programming error and panics.
func (C *Compound) Transform(rot, trans *v3.Matrix) error {
	if rot == nil || trans == nil {
		panic(ErrNilMatrix)
	}
	if r, c := rot.Dims(); r != 3 || c != 3 {
		panic(ErrNotRotation)
	}
	if r, c := trans.Dims(); r != 1 || c != 3 {
		panic(v3.ErrShape)
	}
	type slot struct {
		target *v3.Matrix //committed by copy, never re-pointed
		moved  *v3.Matrix //1x3, the computed new value
		rotate bool       //direction vectors are rotated, not translated
	}
	var slots []slot
	var walk func(n Node) error
	walk = func(n Node) error {
		switch v := n.(type) {
		case *Particle:
			if v.coord == nil {
				return newError(ErrMalformedSubtree, "particle %q (%s) has no position", v.Name, v.id)
			}
			slots = append(slots, slot{target: v.coord})
		case *Port:
			if v.pos == nil || v.dir == nil {
				return newError(ErrMalformedSubtree, "port %q has no position or direction", v.name)
			}
			slots = append(slots, slot{target: v.pos})
			slots = append(slots, slot{target: v.dir, rotate: true})
		case *Compound:
			for _, ch := range v.children {
				if err := walk(ch); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(C); err != nil {
		return errDecorate(err, "Transform")
	}
	//compute everything first, commit after: all-or-nothing
	for i := range slots {
		moved := v3.Zeros(1)
		moved.Mul(slots[i].target, rot)
		if !slots[i].rotate {
			moved.AddVec(moved, trans)
		}
		slots[i].moved = moved
	}
	for i := range slots {
		slots[i].target.SetVec(0, slots[i].moved)
	}
	return nil
}

//Translate moves every descendant particle and port of C by the 1x3 vector
//trans.
func (C *Compound) Translate(trans *v3.Matrix) error {
	err := C.Transform(IdentityRotator(), trans)
	if err != nil {
		return errDecorate(err, "Translate")
	}
	return nil
}

//Rotate rotates the subtree by angle radians around the given axis through
//the origin.
func (C *Compound) Rotate(axis *v3.Matrix, angle float64) error {
	err := C.Transform(RotatorAxisAngle(axis, angle), v3.Zeros(1))
	if err != nil {
		return errDecorate(err, "Rotate")
	}
	return nil
}

//RotateAbout rotates the subtree by angle radians around the axis passing
//through the 1x3 point.
func (C *Compound) RotateAbout(point, axis *v3.Matrix, angle float64) error {
	rot := RotatorAxisAngle(axis, angle)
	//p' = (p-point)*R + point  ==  p*R + (point - point*R)
	trans := v3.Zeros(1)
	trans.Mul(point, rot)
	trans.SubVec(trans, point) //this holds point*R - point... flip it
	trans.Scale(-1, trans)
	err := C.Transform(rot, trans)
	if err != nil {
		return errDecorate(err, "RotateAbout")
	}
	return nil
}
