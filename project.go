/*
 * project.go, part of topsynth.
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

import "github.com/rmera/topsynth/ff"

// Attributes are the per-atom properties derived from the particle type of each
// atom label. All slices have one element per atom.
type Attributes struct {
	Types   []string //particle type names
	TypeIDs []int
	Masses  []float64
	Charges []float64
}

// Project computes the per-atom attributes. Each atom's attributes depend only on
// its own label.
func Project(labels []string, F *ff.ForceField) (*Attributes, error) {
	n := len(labels)
	A := &Attributes{
		Types:   make([]string, n),
		TypeIDs: make([]int, n),
		Masses:  make([]float64, n),
		Charges: make([]float64, n),
	}
	for i, l := range labels {
		p, err := F.TypeOf(l)
		if err != nil {
			return nil, labelErrorAt(err, i)
		}
		A.Types[i] = p.Name
		A.TypeIDs[i] = p.ID
		A.Masses[i] = p.Mass
		A.Charges[i] = p.Charge
	}
	return A, nil
}
