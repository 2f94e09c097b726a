/*
 * duplicates.go, part of topsynth.
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
	"strings"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/ff"
)

// Duplicate is an entity that appears more than once in a topology, either
// with the same atom order or reversed. First and Second are the positions of
// the two copies in the group of the given kind.
type Duplicate struct {
	Kind   ff.Kind
	Atoms  ff.Tuple
	First  int
	Second int
}

func (D Duplicate) String() string {
	return fmt.Sprintf("%s %v at positions %d and %d", D.Kind, D.Atoms, D.First, D.Second)
}

// canonical returns a key that is the same for a tuple and its reverse.
func canonical(t ff.Tuple) string {
	r := t.Reversed()
	if slices.Compare(r, t) < 0 {
		t = r
	}
	s := make([]string, len(t))
	for i, v := range t {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, "-")
}

// Duplicates returns all the entities of T that repeat an earlier one. Each
// repetition is reported against the first copy.
func Duplicates(T *topsynth.Topology) []Duplicate {
	var ret []Duplicate
	for _, k := range ff.Kinds {
		seen := make(map[string]int)
		for i, t := range T.Group(k).Atoms {
			c := canonical(t)
			if first, ok := seen[c]; ok {
				ret = append(ret, Duplicate{Kind: k, Atoms: t, First: first, Second: i})
				continue
			}
			seen[c] = i
		}
	}
	return ret
}
