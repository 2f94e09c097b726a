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
Package top writes synthesized topologies as Gromacs molecule topologies
(itp files), so they can be inspected, or used with Gromacs.

Only the bonded terms produced by the synthesis (bonds, angles and proper
dihedrals) and the atoms section are written. Atom indexes are 1-based in
the output, as Gromacs requires.
*/
package top
