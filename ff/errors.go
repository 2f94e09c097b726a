/*
 * errors.go, part of topsynth.
 *
 * Copyright 2026 The topsynth Authors
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

package ff

import (
	"errors"
	"fmt"
)

// Sentinels for the three fatal conditions of a synthesis. The concrete errors
// below unwrap to them, so errors.Is can be used regardless of the details.
var (
	ErrUnknownLabel = errors.New("unknown atom label")
	ErrBounds       = errors.New("template index out of bounds")
	ErrNoParameter  = errors.New("no parameter for topology key")
)

// LabelError reports an atom label absent from the Template Registry.
// Pos is the position of the atom in the sequence, or -1 when not known.
type LabelError struct {
	Label string
	Pos   int
}

func (e *LabelError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: %q", ErrUnknownLabel, e.Label)
	}
	return fmt.Sprintf("%s: %q at position %d", ErrUnknownLabel, e.Label, e.Pos)
}

func (e *LabelError) Unwrap() error { return ErrUnknownLabel }

// BoundsError reports a template offset that, applied to the atom at Pos, gives
// an index outside [0,N). Label and Kind are filled by the caller expanding the
// template, they are empty/zero when the error comes straight from Tuple.Apply.
type BoundsError struct {
	Label    string
	Pos      int
	Kind     Kind
	Template Tuple
	Offset   int
	Index    int
	N        int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: atom %q at position %d, %s template %v: offset %d gives index %d, valid range is [0,%d)",
		ErrBounds, e.Label, e.Pos, e.Kind, e.Template, e.Offset, e.Index, e.N)
}

func (e *BoundsError) Unwrap() error { return ErrBounds }

// KeyError reports a type tuple for which neither the forward nor the reversed key
// exists in the parameter table of the given kind. Atoms holds the absolute indexes
// of the entity, when known.
type KeyError struct {
	Kind    Kind
	Types   []string
	Forward string
	Reverse string
	Atoms   Tuple
}

func (e *KeyError) Error() string {
	s := fmt.Sprintf("%s: %s types %v, tried %q and %q", ErrNoParameter, e.Kind, e.Types, e.Forward, e.Reverse)
	if e.Atoms != nil {
		s += fmt.Sprintf(" (atoms %v)", e.Atoms)
	}
	return s
}

func (e *KeyError) Unwrap() error { return ErrNoParameter }
