/*
 * forcefield.go, part of topsynth.
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
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var defaultYAML []byte

// Particle is a force-field atom type.
type Particle struct {
	Name   string  `yaml:"name"`
	ID     int     `yaml:"id"` //0-based
	Mass   float64 `yaml:"mass"`
	Charge float64 `yaml:"charge"`
}

// ForceField puts together the particle types, the Template Registry and the
// three parameter tables. It is immutable after construction and safe for
// concurrent use.
type ForceField struct {
	Name      string
	particles []*Particle //sorted by ID
	byName    map[string]*Particle
	reg       *Registry
	tables    [NKinds]*Table
}

// Definition is the serialized form of a force field.
type Definition struct {
	Name      string               `yaml:"name"`
	Particles []*Particle          `yaml:"particles"`
	Labels    map[string]*Template `yaml:"labels"`
	Bonds     []*Param             `yaml:"bonds"`
	Angles    []*Param             `yaml:"angles"`
	Dihedrals []*Param             `yaml:"dihedrals"`
}

// New builds and validates a force field from its serialized form.
func New(s *Definition) (*ForceField, error) {
	F := &ForceField{Name: s.Name, byName: make(map[string]*Particle, len(s.Particles))}
	F.particles = slices.Clone(s.Particles)
	slices.SortFunc(F.particles, func(a, b *Particle) int { return a.ID - b.ID })
	for i, p := range F.particles {
		if p == nil || p.Name == "" {
			return nil, fmt.Errorf("particle at rank %d has no name", i)
		}
		if p.ID != i {
			return nil, fmt.Errorf("particle ids must be 0..%d without gaps or repeats, found %d for %q", len(F.particles)-1, p.ID, p.Name)
		}
		if _, ok := F.byName[p.Name]; ok {
			return nil, fmt.Errorf("repeated particle type %q", p.Name)
		}
		F.byName[p.Name] = p
	}
	for label, t := range s.Labels {
		if t == nil {
			return nil, fmt.Errorf("label %q has no template", label)
		}
		if _, ok := F.byName[t.Type]; !ok {
			return nil, fmt.Errorf("label %q: unknown particle type %q", label, t.Type)
		}
		if err := t.check(label); err != nil {
			return nil, err
		}
	}
	F.reg = NewRegistry(s.Labels)
	var err error
	for k, params := range [NKinds][]*Param{s.Bonds, s.Angles, s.Dihedrals} {
		kind := Kind(k)
		if F.tables[k], err = NewTable(kind, params); err != nil {
			return nil, err
		}
		for _, p := range params {
			if err = F.checkParam(kind, p); err != nil {
				return nil, err
			}
		}
	}
	return F, nil
}

func (F *ForceField) checkParam(kind Kind, p *Param) error {
	for _, t := range p.Types() {
		if _, ok := F.byName[t]; !ok {
			return fmt.Errorf("%s %q: unknown particle type %q", kind, p.Key, t)
		}
	}
	if kind == Dihedral && p.Func == 3 && len(p.RB) != 6 {
		return fmt.Errorf("dihedral %q: Ryckaert-Bellemans term needs 6 coefficients, got %d", p.Key, len(p.RB))
	}
	if p.Func != 3 && len(p.RB) > 0 {
		return fmt.Errorf("%s %q: RB coefficients given for function type %d", kind, p.Key, p.Func)
	}
	return nil
}

// Load reads a YAML force field from r. Unknown fields are an error.
func Load(r io.Reader) (*ForceField, error) {
	s := new(Definition)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty force field")
		}
		return nil, fmt.Errorf("decoding force field: %w", err)
	}
	F, err := New(s)
	if err != nil {
		return nil, fmt.Errorf("invalid force field %q: %w", s.Name, err)
	}
	return F, nil
}

// LoadFile reads a YAML force field from the named file.
func LoadFile(name string) (*ForceField, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	F, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return F, nil
}

// Default returns the built-in force field (AOT, isooctane, TIP3P water and ions).
func Default() (*ForceField, error) {
	return Load(bytes.NewReader(defaultYAML))
}

// DefaultYAML returns a copy of the serialized built-in force field.
func DefaultYAML() []byte {
	return slices.Clone(defaultYAML)
}

// Particle returns the particle type with the given name.
func (F *ForceField) Particle(name string) (*Particle, error) {
	p, ok := F.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown particle type %q", name)
	}
	return p, nil
}

// Particles returns the particle types ordered by ID. The slice must not be modified.
func (F *ForceField) Particles() []*Particle { return F.particles }

// ParticleNames returns the particle type names ordered by ID.
func (F *ForceField) ParticleNames() []string {
	ret := make([]string, len(F.particles))
	for i, p := range F.particles {
		ret[i] = p.Name
	}
	return ret
}

// Registry returns the Template Registry.
func (F *ForceField) Registry() *Registry { return F.reg }

// Table returns the parameter table for the kind.
func (F *ForceField) Table(k Kind) *Table { return F.tables[k] }

// TypeOf returns the particle type of an atom label.
func (F *ForceField) TypeOf(label string) (*Particle, error) {
	t, err := F.reg.Template(label)
	if err != nil {
		return nil, err
	}
	//New guarantees that the type exists.
	return F.byName[t.Type], nil
}
