/*
 * graph.go, part of topsynth.
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
	"slices"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/ff"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// BondGraph returns the undirected graph with one node per atom, with the atom
// index as ID, and one edge per bond.
func BondGraph(T *topsynth.Topology) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < T.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range T.Bonds().Atoms {
		if b[0] == b[1] {
			continue //self edges make the graph panic.
		}
		g.SetEdge(g.NewEdge(simple.Node(b[0]), simple.Node(b[1])))
	}
	return g
}

// Molecules returns the connected components of the bond graph of T. Each
// molecule is a list of atom indexes in increasing order, and the molecules
// are sorted by their first atom. Atoms without bonds are molecules by themselves.
func Molecules(T *topsynth.Topology) [][]int {
	cc := topo.ConnectedComponents(BondGraph(T))
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		m := make([]int, len(c))
		for i, n := range c {
			m[i] = int(n.ID())
		}
		slices.Sort(m)
		ret = append(ret, m)
	}
	slices.SortFunc(ret, func(a, b []int) int { return a[0] - b[0] })
	return ret
}

// Membership returns, for each atom, the index of its molecule in the
// output of Molecules.
func Membership(T *topsynth.Topology) []int {
	ret := make([]int, T.Len())
	for i, m := range Molecules(T) {
		for _, a := range m {
			ret[a] = i
		}
	}
	return ret
}

// Unbonded is an angle or dihedral with two consecutive atoms that are not bonded.
type Unbonded struct {
	Kind  ff.Kind
	Index int //position in the group
	Atoms ff.Tuple
	Pair  [2]int
}

func (U Unbonded) String() string {
	return fmt.Sprintf("%s %d %v: atoms %d and %d are not bonded", U.Kind, U.Index, U.Atoms, U.Pair[0], U.Pair[1])
}

// UnbondedTerms returns the angles and dihedrals of T that don't follow a path of
// bonds. Only the first missing bond of each entity is reported.
func UnbondedTerms(T *topsynth.Topology) []Unbonded {
	g := BondGraph(T)
	var ret []Unbonded
	for _, k := range []ff.Kind{ff.Angle, ff.Dihedral} {
		for i, t := range T.Group(k).Atoms {
			for j := 0; j < len(t)-1; j++ {
				if !g.HasEdgeBetween(int64(t[j]), int64(t[j+1])) {
					ret = append(ret, Unbonded{Kind: k, Index: i, Atoms: t, Pair: [2]int{t[j], t[j+1]}})
					break
				}
			}
		}
	}
	return ret
}
