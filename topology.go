/*
 * topology.go, part of topsynth.
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
	"fmt"

	"github.com/rmera/topsynth/ff"
	"golang.org/x/sync/errgroup"
)

// Group holds all the bonded entities of one kind. Atoms and Params are parallel:
// the entity Atoms[i] is parametrized by Params[i].
type Group struct {
	Kind   ff.Kind
	Atoms  []ff.Tuple
	Params []*ff.Param
}

// Len returns the number of entities in the group.
func (G *Group) Len() int {
	return len(G.Atoms)
}

// IDs returns the native (1-based) parameter identifier of each entity.
func (G *Group) IDs() []int {
	ret := make([]int, len(G.Params))
	for i, p := range G.Params {
		ret[i] = p.ID
	}
	return ret
}

// Topology is the complete bonded description of a structure.
type Topology struct {
	Labels []string
	*Attributes
	groups [ff.NKinds]*Group
}

// Len returns the number of atoms.
func (T *Topology) Len() int {
	return len(T.Labels)
}

// Group returns the entities of the given kind.
func (T *Topology) Group(k ff.Kind) *Group {
	return T.groups[k]
}

// Bonds returns the bond group.
func (T *Topology) Bonds() *Group { return T.groups[ff.Bond] }

// Angles returns the angle group.
func (T *Topology) Angles() *Group { return T.groups[ff.Angle] }

// Dihedrals returns the dihedral group.
func (T *Topology) Dihedrals() *Group { return T.groups[ff.Dihedral] }

func (T *Topology) String() string {
	return fmt.Sprintf("topology: %d atoms, %d bonds, %d angles, %d dihedrals",
		T.Len(), T.Bonds().Len(), T.Angles().Len(), T.Dihedrals().Len())
}

// Synthesize builds the topology for the atom label sequence. The per-atom
// projection runs concurrently with the assembly, and the three kinds of
// entity are resolved concurrently once assembled. Any failure aborts the
// whole synthesis: either the full topology or an error is returned.
func Synthesize(labels []string, F *ff.ForceField) (*Topology, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("no atoms to synthesize a topology for")
	}
	T := &Topology{Labels: labels}
	var g errgroup.Group
	g.Go(func() error {
		var err error
		T.Attributes, err = Project(labels, F)
		return err
	})
	g.Go(func() error {
		tuples, err := Assemble(labels, F.Registry())
		if err != nil {
			return err
		}
		var rg errgroup.Group
		for _, k := range ff.Kinds {
			k := k
			rg.Go(func() error {
				params, err := Resolve(k, tuples[k], labels, F)
				if err != nil {
					return err
				}
				T.groups[k] = &Group{Kind: k, Atoms: tuples[k], Params: params}
				return nil
			})
		}
		return rg.Wait()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return T, nil
}
