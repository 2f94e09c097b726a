/*
 * registry.go, part of topsynth.
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
)

// Template is the local connectivity template of an atom label: its particle type
// and the relative-offset tuples of the bonds, angles and dihedrals anchored on it.
type Template struct {
	Type      string  `yaml:"type"`
	Bonds     []Tuple `yaml:"bonds,omitempty"`
	Angles    []Tuple `yaml:"angles,omitempty"`
	Dihedrals []Tuple `yaml:"dihedrals,omitempty"`
}

// Offsets returns the template tuples of the given kind.
func (T *Template) Offsets(k Kind) []Tuple {
	switch k {
	case Bond:
		return T.Bonds
	case Angle:
		return T.Angles
	case Dihedral:
		return T.Dihedrals
	}
	panic(fmt.Sprintf("ff: invalid kind %d", int(k)))
}

func (T *Template) check(label string) error {
	for _, k := range Kinds {
		for _, t := range T.Offsets(k) {
			if len(t) != k.Arity() {
				return fmt.Errorf("label %q: %s template %v has %d offsets, want %d", label, k, t, len(t), k.Arity())
			}
			s := slices.Clone(t)
			slices.Sort(s)
			if len(slices.Compact(s)) != len(t) {
				return fmt.Errorf("label %q: %s template %v repeats an atom", label, k, t)
			}
		}
	}
	return nil
}

// Registry is the closed set of atom labels a force field knows about.
type Registry struct {
	m map[string]*Template
}

// NewRegistry returns a registry for the given label→template map. The map is
// copied, later changes to it are not seen by the registry.
func NewRegistry(m map[string]*Template) *Registry {
	R := &Registry{m: make(map[string]*Template, len(m))}
	for k, v := range m {
		R.m[k] = v
	}
	return R
}

// Template returns the template for label, or a *LabelError (Pos -1) if the
// label is not registered.
func (R *Registry) Template(label string) (*Template, error) {
	t, ok := R.m[label]
	if !ok {
		return nil, &LabelError{Label: label, Pos: -1}
	}
	return t, nil
}

// Len returns the number of registered labels.
func (R *Registry) Len() int { return len(R.m) }

// Labels returns the registered labels, sorted.
func (R *Registry) Labels() []string {
	ret := make([]string, 0, len(R.m))
	for k := range R.m {
		ret = append(ret, k)
	}
	slices.Sort(ret)
	return ret
}
