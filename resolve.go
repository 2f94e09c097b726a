/*
 * resolve.go, part of topsynth.
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

package topsynth

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rmera/topsynth/ff"
)

// Resolve maps each absolute tuple of the given kind to its parameter entry. The
// particle type of every atom in the tuple is taken, in tuple order, from its label,
// and the resulting type tuple is resolved against the table for the kind (forward
// key, then reverse). The returned slice is parallel to tuples. Parameters keep
// the native, 1-based, table numbering.
func Resolve(k ff.Kind, tuples []ff.Tuple, labels []string, F *ff.ForceField) ([]*ff.Param, error) {
	tab := F.Table(k)
	ret := make([]*ff.Param, len(tuples))
	types := make([]string, k.Arity())
	for i, t := range tuples {
		if len(t) != k.Arity() {
			return nil, fmt.Errorf("%s %d: tuple %v has %d atoms, want %d", k, i, t, len(t), k.Arity())
		}
		for j, ix := range t {
			if ix < 0 || ix >= len(labels) {
				return nil, fmt.Errorf("%s %d: tuple %v: %w", k, i, t, &ff.BoundsError{Pos: -1, Kind: k, Index: ix, N: len(labels)})
			}
			p, err := F.TypeOf(labels[ix])
			if err != nil {
				return nil, labelErrorAt(err, ix)
			}
			types[j] = p.Name
		}
		p, err := tab.Resolve(types)
		if err != nil {
			var ke *ff.KeyError
			if errors.As(err, &ke) {
				ke.Atoms = slices.Clone(t)
			}
			return nil, err
		}
		ret[i] = p
	}
	return ret, nil
}
