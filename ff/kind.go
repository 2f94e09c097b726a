/*
 * kind.go, part of topsynth.
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
	"fmt"
	"slices"
	"strings"
)

// Kind identifies a category of bonded entity.
type Kind int

const (
	Bond Kind = iota
	Angle
	Dihedral
)

// NKinds is the number of bonded entity categories.
const NKinds = 3

// Kinds lists every category, in the order in which they are assembled and written.
var Kinds = [NKinds]Kind{Bond, Angle, Dihedral}

// Arity returns the number of atoms in an entity of the kind.
func (k Kind) Arity() int {
	switch k {
	case Bond:
		return 2
	case Angle:
		return 3
	case Dihedral:
		return 4
	}
	panic(fmt.Sprintf("ff: invalid kind %d", int(k)))
}

func (k Kind) String() string {
	switch k {
	case Bond:
		return "bond"
	case Angle:
		return "angle"
	case Dihedral:
		return "dihedral"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Plural is the name of the kind as used for sections and tables ("bonds", "angles"...)
func (k Kind) Plural() string {
	return k.String() + "s"
}

// Tuple is an ordered list of atom positions. In a template the values are
// offsets relative to the atom that owns the template; after expansion they
// are absolute, 0-based, indexes in the atom sequence. The order encodes the
// chain direction of the interaction and is never altered.
type Tuple []int

// Apply returns the absolute tuple obtained by adding pos to every offset in
// the receiver, preserving order. Every resulting index must lie in [0,n),
// otherwise a *BoundsError is returned. Apply never wraps or clamps.
func (t Tuple) Apply(pos, n int) (Tuple, error) {
	ret := make(Tuple, len(t))
	for i, off := range t {
		ix := pos + off
		if ix < 0 || ix >= n {
			return nil, &BoundsError{Pos: pos, Template: slices.Clone(t), Offset: off, Index: ix, N: n}
		}
		ret[i] = ix
	}
	return ret, nil
}

// Reversed returns a copy of the tuple in exactly reversed order.
func (t Tuple) Reversed() Tuple {
	r := slices.Clone(t)
	slices.Reverse(r)
	return r
}

func (t Tuple) String() string {
	s := make([]string, len(t))
	for i, v := range t {
		s[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(s, ",") + ")"
}

// Key joins the particle type names, in the given order, into a table key.
func Key(types []string) string {
	return strings.Join(types, ",")
}

// ReverseKey is the key of the exactly reversed type tuple.
func ReverseKey(types []string) string {
	r := slices.Clone(types)
	slices.Reverse(r)
	return Key(r)
}

// SplitKey is the inverse of Key.
func SplitKey(key string) []string {
	return strings.Split(key, ",")
}
