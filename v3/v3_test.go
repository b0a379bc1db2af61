/*
 * v3_test.go, part of molforge/compound.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	if A.At(1, 2) != 6 {
		Te.Errorf("wrong element at (1,2): %g", A.At(1, 2))
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("a slice of length not divisible by 3 must be rejected")
	}
}

func TestVecView(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	v := A.VecView(1)
	v.Set(0, 0, 99)
	if A.At(1, 0) != 99 {
		Te.Error("changes in a view must be reflected in the viewed matrix")
	}
}

func TestAddSubVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	t, _ := NewMatrix([]float64{1, 1, 1})
	B := Zeros(2)
	B.AddVec(A, t)
	if B.At(0, 0) != 2 || B.At(1, 2) != 7 {
		Te.Errorf("AddVec gave %v", B)
	}
	B.SubVec(B, t)
	for i := 0; i < 2; i++ {
		for k := 0; k < 3; k++ {
			if B.At(i, k) != A.At(i, k) {
				Te.Errorf("SubVec did not undo AddVec at (%d,%d)", i, k)
			}
		}
	}
}

func TestCross(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Errorf("x cross y should be z, got %v", z)
	}
}

func TestUnit(Te *testing.T) {
	a, _ := NewMatrix([]float64{3, 0, 4})
	u := Zeros(1)
	u.Unit(a)
	if math.Abs(u.Norm(2)-1) > appzero {
		Te.Errorf("unit vector has norm %g", u.Norm(2))
	}
	if math.Abs(u.At(0, 0)-0.6) > appzero || math.Abs(u.At(0, 2)-0.8) > appzero {
		Te.Errorf("wrong direction: %v", u)
	}
	defer func() {
		if recover() == nil {
			Te.Error("normalizing the zero vector must panic")
		}
	}()
	u.Unit(Zeros(1))
}

func TestAngle(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 2, 0})
	if math.Abs(Angle(x, y)-math.Pi/2) > appzero {
		Te.Errorf("expected pi/2, got %g", Angle(x, y))
	}
	if Angle(x, x) != 0 {
		Te.Errorf("the angle of a vector with itself should be exactly 0, got %g", Angle(x, x))
	}
	minusx, _ := NewMatrix([]float64{-3, 0, 0})
	if math.Abs(Angle(x, minusx)-math.Pi) > appzero {
		Te.Errorf("expected pi, got %g", Angle(x, minusx))
	}
}

func TestMulAliasing(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 0, 0})
	R, _ := NewMatrix([]float64{0, 1, 0, -1, 0, 0, 0, 0, 1})
	A.Mul(A, R)
	if A.At(0, 0) != 0 || A.At(0, 1) != 1 {
		Te.Errorf("aliased Mul gave %v", A)
	}
}

func TestDet(Te *testing.T) {
	R, _ := NewMatrix([]float64{0, 1, 0, -1, 0, 0, 0, 0, 1})
	if math.Abs(Det(R)-1) > appzero {
		Te.Errorf("a proper rotation has determinant 1, got %g", Det(R))
	}
}
