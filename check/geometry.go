/*
 * geometry.go, part of topsynth.
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

package check

import (
	"fmt"
	"math"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/ff"
	v3 "github.com/rmera/topsynth/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Deviation compares the length of one bond in the input coordinates with the
// equilibrium length of its parameters.
type Deviation struct {
	Index  int //position in the bond group
	Atoms  ff.Tuple
	Key    string
	Length float64
	Eq     float64
}

// Dev returns the difference between the actual and the equilibrium length.
func (D Deviation) Dev() float64 {
	return D.Length - D.Eq
}

func (D Deviation) String() string {
	return fmt.Sprintf("bond %d %v (%s): length %.4f, equilibrium %.4f", D.Index, D.Atoms, D.Key, D.Length, D.Eq)
}

// Geometry holds the deviations for all the bonds in a topology.
type Geometry struct {
	Deviations []Deviation
}

// Devs returns the deviation of each bond.
func (G *Geometry) Devs() []float64 {
	ret := make([]float64, len(G.Deviations))
	for i, d := range G.Deviations {
		ret[i] = d.Dev()
	}
	return ret
}

// Mean returns the mean deviation. It is NaN if there are no bonds.
func (G *Geometry) Mean() float64 {
	if len(G.Deviations) == 0 {
		return math.NaN()
	}
	return stat.Mean(G.Devs(), nil)
}

// StdDev returns the standard deviation of the deviations. It is NaN with fewer than 2 bonds.
func (G *Geometry) StdDev() float64 {
	if len(G.Deviations) < 2 {
		return math.NaN()
	}
	return stat.StdDev(G.Devs(), nil)
}

// MaxAbs returns the largest absolute deviation, or 0 if there are no bonds.
func (G *Geometry) MaxAbs() float64 {
	if len(G.Deviations) == 0 {
		return 0
	}
	d := G.Devs()
	for i, v := range d {
		d[i] = math.Abs(v)
	}
	return floats.Max(d)
}

// Outliers returns the bonds whose absolute deviation is larger than tol.
func (G *Geometry) Outliers(tol float64) []Deviation {
	var ret []Deviation
	for _, d := range G.Deviations {
		if math.Abs(d.Dev()) > tol {
			ret = append(ret, d)
		}
	}
	return ret
}

// BondGeometry measures every bond of T in coords. Coordinates are multiplied
// by scale before measuring, so they can be brought to the units of the force
// field (nm for the default one, so 0.1 for coordinates in Angstrom).
func BondGeometry(T *topsynth.Topology, coords *v3.Matrix, scale float64) (*Geometry, error) {
	if coords == nil || coords.NVecs() != T.Len() {
		return nil, fmt.Errorf("bond geometry: %d atoms in topology but coordinates don't match", T.Len())
	}
	if scale <= 0 {
		return nil, fmt.Errorf("bond geometry: scale must be positive, got %g", scale)
	}
	b := T.Bonds()
	G := &Geometry{Deviations: make([]Deviation, b.Len())}
	for i, t := range b.Atoms {
		G.Deviations[i] = Deviation{
			Index:  i,
			Atoms:  t,
			Key:    b.Params[i].Key,
			Length: coords.Distance(t[0], t[1]) * scale,
			Eq:     b.Params[i].Eq,
		}
	}
	return G, nil
}
