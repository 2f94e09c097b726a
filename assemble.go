/*
 * assemble.go, part of topsynth.
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

	"github.com/rmera/topsynth/ff"
)

// Assemble walks the atom sequence once and expands, for every atom, the
// template tuples of its label, by adding the atom's position to each offset.
// The result holds, for each kind (indexed by ff.Kind), the absolute tuples in
// atom-sequence order, and in template order within one atom.
//
// Nothing is deduplicated: if the templates of two atoms produce the same
// entity, both copies are kept. The first unknown label (*ff.LabelError) or
// out-of-range index (*ff.BoundsError) aborts the assembly.
func Assemble(labels []string, reg *ff.Registry) ([ff.NKinds][]ff.Tuple, error) {
	var out [ff.NKinds][]ff.Tuple
	n := len(labels)
	for i, label := range labels {
		t, err := reg.Template(label)
		if err != nil {
			return out, labelErrorAt(err, i)
		}
		for _, k := range ff.Kinds {
			for _, off := range t.Offsets(k) {
				abs, err := off.Apply(i, n)
				if err != nil {
					var be *ff.BoundsError
					if errors.As(err, &be) {
						be.Label = label
						be.Kind = k
					}
					return out, err
				}
				out[k] = append(out[k], abs)
			}
		}
	}
	return out, nil
}

// labelErrorAt sets the sequence position of a *ff.LabelError.
func labelErrorAt(err error, pos int) error {
	var le *ff.LabelError
	if errors.As(err, &le) {
		le.Pos = pos
	}
	return err
}
