/*
 * snapshot.go, part of topsynth.
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

package snapshot

import (
	"fmt"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/ff"
	v3 "github.com/rmera/topsynth/v3"
	"gonum.org/v1/gonum/floats"
)

// DefaultBox is the edge of the cubic simulation box used when none is given.
const DefaultBox = 75.0

// Groups holds the bonded entities of one kind, in the layout a simulation engine
// expects: a list of type names, where the position is the (zero-based) type id,
// and per entity the atom indexes and the type id.
type Groups struct {
	Types  []string
	Group  [][]int
	TypeID []int
}

// Len returns the number of entities.
func (G *Groups) Len() int {
	return len(G.Group)
}

// Snapshot is the initial state of a simulation: the particles with their
// types, masses, charges and positions, and the bonded topology.
type Snapshot struct {
	N             int
	Box           [3]float64
	Position      *v3.Matrix
	ParticleTypes []string
	TypeID        []int
	Mass          []float64
	Charge        []float64
	FF            string //name of the force field used, informative only.
	groups        [ff.NKinds]*Groups
}

// Group returns the entities of kind k.
func (S *Snapshot) Group(k ff.Kind) *Groups {
	if S.groups[k] == nil {
		S.groups[k] = &Groups{}
	}
	return S.groups[k]
}

func (S *Snapshot) Bonds() *Groups     { return S.Group(ff.Bond) }
func (S *Snapshot) Angles() *Groups    { return S.Group(ff.Angle) }
func (S *Snapshot) Dihedrals() *Groups { return S.Group(ff.Dihedral) }

// TotalMass returns the sum of the particle masses.
func (S *Snapshot) TotalMass() float64 {
	return floats.Sum(S.Mass)
}

// NetCharge returns the sum of the particle charges.
func (S *Snapshot) NetCharge() float64 {
	return floats.Sum(S.Charge)
}

// CubicBox returns a box with all three edges equal to edge.
func CubicBox(edge float64) [3]float64 {
	return [3]float64{edge, edge, edge}
}

// New builds a snapshot from a synthesized topology, the force field it was
// synthesized with, and one coordinate per atom. Table ids, which are 1-based,
// become the 0-based type ids of the snapshot. The coordinates are copied.
func New(top *topsynth.Topology, F *ff.ForceField, coords *v3.Matrix, box [3]float64) (*Snapshot, error) {
	n := top.Len()
	if coords == nil || coords.NVecs() != n {
		got := 0
		if coords != nil {
			got = coords.NVecs()
		}
		return nil, Error{fmt.Sprintf("%d atoms but %d coordinates", n, got), "", []string{"New"}, true}
	}
	for i, b := range box {
		if b <= 0 {
			return nil, Error{fmt.Sprintf("box edge %d is %g, must be positive", i, b), "", []string{"New"}, true}
		}
	}
	S := &Snapshot{
		N:             n,
		Box:           box,
		Position:      v3.Zeros(n),
		ParticleTypes: F.ParticleNames(),
		TypeID:        append([]int(nil), top.TypeIDs...),
		Mass:          append([]float64(nil), top.Masses...),
		Charge:        append([]float64(nil), top.Charges...),
		FF:            F.Name,
	}
	S.Position.Copy(coords)
	for _, k := range ff.Kinds {
		tg := top.Group(k)
		g := &Groups{
			Types:  F.Table(k).Names(),
			Group:  make([][]int, tg.Len()),
			TypeID: make([]int, tg.Len()),
		}
		for i, t := range tg.Atoms {
			g.Group[i] = append([]int(nil), t...)
			g.TypeID[i] = tg.Params[i].TypeID()
		}
		S.groups[k] = g
	}
	return S, nil
}
