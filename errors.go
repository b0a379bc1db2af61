/*
 * errors.go, part of molforge/compound.
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
	"errors"
	"fmt"
)

//Kind identifies which structural invariant an operation would have violated.
//A failed precondition is a caller logic error, never a transient condition,
//so the kind is all a caller needs to decide corrective action.
type Kind int

const (
	ErrNone Kind = iota
	//ErrOwnership: the node is already owned by another parent.
	ErrOwnership
	//ErrCycle: the insertion would make a node its own ancestor.
	ErrCycle
	//ErrUnknownParticle: a referenced particle is not a descendant.
	ErrUnknownParticle
	//ErrDuplicateBond: the unordered particle pair is already bonded.
	ErrDuplicateBond
	//ErrSelfBond: both bond endpoints are the same particle.
	ErrSelfBond
	//ErrPortAlreadyUsed: the port was already consumed by a connection.
	ErrPortAlreadyUsed
	//ErrDisjointTree: the ports do not belong to two separate trees.
	ErrDisjointTree
	//ErrMalformedSubtree: a descendant has no defined position.
	ErrMalformedSubtree
	//ErrMalformedStructure: the loaded records are inconsistent.
	ErrMalformedStructure
)

func (k Kind) String() string {
	switch k {
	case ErrOwnership:
		return "OwnershipError"
	case ErrCycle:
		return "CycleError"
	case ErrUnknownParticle:
		return "UnknownParticleError"
	case ErrDuplicateBond:
		return "DuplicateBondError"
	case ErrSelfBond:
		return "SelfBondError"
	case ErrPortAlreadyUsed:
		return "PortAlreadyUsedError"
	case ErrDisjointTree:
		return "DisjointTreeError"
	case ErrMalformedSubtree:
		return "MalformedSubtreeError"
	case ErrMalformedStructure:
		return "MalformedStructureError"
	}
	return "NoError"
}

//Error makes a Kind usable directly as an errors.Is target:
//errors.Is(err, ErrCycle).
func (k Kind) Error() string {
	return k.String()
}

//CError is the error type of the compound package. Aside from the message it
//keeps the kind of invariant violated and the trail of functions the error
//has passed through.
type CError struct {
	kind Kind
	msg  string
	deco []string
}

func (err CError) Error() string {
	return fmt.Sprintf("%s: %s", err.kind.String(), err.msg)
}

//Kind returns the invariant-violation kind of the error.
func (err CError) Kind() Kind {
	return err.kind
}

//Decorate will add the dec string to the decoration slice of strings of the
//error and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Trail returns the decoration trail of the error.
func (err CError) Trail() []string {
	return err.deco
}

//Is matches the error against a Kind target, so errors.Is sees through
//any fmt.Errorf("%w") wrapping a caller may have added.
func (err *CError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.kind
}

func newError(kind Kind, format string, a ...interface{}) *CError {
	return &CError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

//KindOf returns the Kind of err, unwrapping as needed, or ErrNone if err is
//nil or no *CError is in its chain.
func KindOf(err error) Kind {
	var cerr *CError
	if errors.As(err, &cerr) {
		return cerr.Kind()
	}
	return ErrNone
}

//errDecorate asserts that the error is a *CError and decorates it with the
//caller's name before returning it. Used with another error type it panics.
func errDecorate(err error, caller string) error {
	err2 := err.(*CError)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics on programmer errors (nil receivers,
//out-of-range access on fundamental accessors). For anything a caller can
//legitimately get wrong, use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilNode     = PanicMsg("compound: nil node given to a fundamental function")
	ErrNilMatrix   = PanicMsg("compound: nil coordinate matrix")
	ErrOutOfRange  = PanicMsg("compound: index out of range")
	ErrNotRotation = PanicMsg("compound: rotation operator must be 3x3")
)
