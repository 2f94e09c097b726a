/*
 * doc.go, part of topsynth.
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

/*
Package topsynth builds the bonded topology of a molecular system from the
sequence of its atom labels.

Each label names an entry in the Template Registry of a force field (package
ff), which gives the particle type of the atom and the bonds, angles and
dihedrals the atom starts, as tuples of offsets relative to its own position
in the sequence. Synthesis proceeds in three stages:

	Assemble   expands the templates of every atom into absolute index tuples.
	Resolve    maps each tuple to the parameter entry for its particle types,
	           trying the forward key first and then the reversed one.
	Project    computes the per-atom type, type id, mass and charge.

Synthesize runs the three and returns a Topology, or the first error found:
an unknown label, a template index outside the sequence, or a type tuple
with no parameters in either direction. No partial topology is ever returned.

Entities produced by more than one template are kept as they are. Package
check can report them, together with other consistency checks.

	F, err := ff.Default()
	if err != nil {
		return err
	}
	s, err := topsynth.ReadStructure("system")
	if err != nil {
		return err
	}
	T, err := topsynth.Synthesize(s.Labels, F)

The topology, together with the coordinates, can be turned into a simulation
snapshot with package snapshot, or written as a Gromacs itp file with package top.
*/
package topsynth
