/*
 * table.go, part of topsynth.
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

// Param is one entry of a parameter table: the bonded parameters for an ordered
// tuple of particle types. Eq is the equilibrium length (nm) for bonds and the
// equilibrium angle (degrees) for angles and func-1 dihedrals. K is the
// corresponding force constant. Ryckaert-Bellemans dihedrals (func 3) use RB
// (C0..C5) instead of Eq/K/Mult.
type Param struct {
	Key  string    `yaml:"key"`
	ID   int       `yaml:"id"` //1-based, as in the source tables.
	Func int       `yaml:"func"`
	Eq   float64   `yaml:"eq,omitempty"`
	K    float64   `yaml:"k,omitempty"`
	Mult int       `yaml:"mult,omitempty"`
	RB   []float64 `yaml:"rb,omitempty"`
}

// Types returns the particle type names of the entry, in key order.
func (P *Param) Types() []string {
	return SplitKey(P.Key)
}

// TypeID is the zero-based identifier used by simulation engines.
func (P *Param) TypeID() int {
	return P.ID - 1
}

// Table maps ordered type-tuple keys to parameters, for one kind of entity.
// Entries are stored in one direction only, so lookups must also try the
// reversed key (see Resolve).
type Table struct {
	kind   Kind
	params []*Param //sorted by ID
	byKey  map[string]*Param
}

// NewTable builds a table of the given kind. IDs must be unique and cover 1..len(params),
// every key must have the arity of the kind, and no key may appear together with its
// (distinct) reverse, as that would make resolution ambiguous.
func NewTable(kind Kind, params []*Param) (*Table, error) {
	T := &Table{kind: kind, byKey: make(map[string]*Param, len(params))}
	T.params = slices.Clone(params)
	slices.SortFunc(T.params, func(a, b *Param) int { return a.ID - b.ID })
	for i, p := range T.params {
		if p == nil {
			return nil, fmt.Errorf("%s table: nil entry", kind)
		}
		if p.ID != i+1 {
			return nil, fmt.Errorf("%s table: ids must be 1..%d without gaps or repeats, found %d at rank %d", kind, len(params), p.ID, i+1)
		}
		types := p.Types()
		if len(types) != kind.Arity() {
			return nil, fmt.Errorf("%s table: key %q has %d types, want %d", kind, p.Key, len(types), kind.Arity())
		}
		if _, ok := T.byKey[p.Key]; ok {
			return nil, fmt.Errorf("%s table: repeated key %q", kind, p.Key)
		}
		if rev := ReverseKey(types); rev != p.Key {
			if _, ok := T.byKey[rev]; ok {
				return nil, fmt.Errorf("%s table: key %q and its reverse are both present", kind, p.Key)
			}
		}
		T.byKey[p.Key] = p
	}
	return T, nil
}

// Kind returns the kind of entity the table parametrizes.
func (T *Table) Kind() Kind { return T.kind }

// Len returns the number of entries.
func (T *Table) Len() int { return len(T.params) }

// Params returns the entries ordered by ID. The slice must not be modified.
func (T *Table) Params() []*Param { return T.params }

// Names returns the keys ordered by ID, so Names()[i] is the key with zero-based id i.
func (T *Table) Names() []string {
	ret := make([]string, len(T.params))
	for i, p := range T.params {
		ret[i] = p.Key
	}
	return ret
}

// ByID returns the entry with the given (1-based) ID.
func (T *Table) ByID(id int) (*Param, bool) {
	if id < 1 || id > len(T.params) {
		return nil, false
	}
	return T.params[id-1], true
}

// Lookup returns the entry stored exactly under key, without trying the reverse.
func (T *Table) Lookup(key string) (*Param, bool) {
	p, ok := T.byKey[key]
	return p, ok
}

// Resolve returns the entry for the ordered type tuple: the forward key is tried first,
// then the exactly reversed one. Partial reversals are never tried. On a miss, the
// returned error is a *KeyError with both attempted keys.
func (T *Table) Resolve(types []string) (*Param, error) {
	if len(types) != T.kind.Arity() {
		return nil, fmt.Errorf("%s table: resolving %d types, want %d", T.kind, len(types), T.kind.Arity())
	}
	p, fwd, rev, ok := lookup(T.byKey, types)
	if !ok {
		return nil, &KeyError{Kind: T.kind, Types: slices.Clone(types), Forward: fwd, Reverse: rev}
	}
	return p, nil
}

// lookup is the symmetric-key search shared by all tables, whatever the arity.
// It returns the keys it built so the caller can report them.
func lookup(m map[string]*Param, types []string) (p *Param, fwd, rev string, ok bool) {
	fwd = Key(types)
	if p, ok = m[fwd]; ok {
		return p, fwd, "", true
	}
	rev = ReverseKey(types)
	p, ok = m[rev]
	return p, fwd, rev, ok
}
