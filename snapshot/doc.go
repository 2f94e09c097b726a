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
Package snapshot builds and stores the initial state of a simulation from a
synthesized topology.

Snapshots are written in a simple, zstd-compressed, text format, which is
easy to read from other programs.

# Format

The file starts with a header of key=value lines, which must include
format=topsynth-snapshot, and may include the name of the force field (ff=)
and the box edges (box=Lx Ly Lz). The header ends with a line starting with
"**" followed by a space and the number of particles.

The body is a series of sections, each starting with a line with the section
name and the number of records in it:

	particle_types T   T lines, each with a type name. The line number (from 0) is the type id.
	particles N        N lines: typeid mass charge x y z
	bond_types B       B lines with a bond key, such as "SL,O2L".
	bonds M            M lines: typeid i j
	angle_types A
	angles M           typeid i j k
	dihedral_types D
	dihedrals M        typeid i j k l

The file ends with a line containing only "end". Atom indexes and type ids
are 0-based. Numbers are written with the shortest representation that
reads back to the same value.
*/
package snapshot
