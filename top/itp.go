/*
 * itp.go, part of topsynth.
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

package top

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/ff"
)

// Options control the names written to the molecule topology.
type Options struct {
	Name    string //moleculetype name. "MOL" if empty.
	Residue string //residue name for all the atoms. The moleculetype name if empty.
	NRExcl  int    //number of bonds for non-bonded exclusions. 3 if zero.
}

func (o Options) defaults() Options {
	if o.Name == "" {
		o.Name = "MOL"
	}
	if o.Residue == "" {
		o.Residue = o.Name
	}
	if o.NRExcl == 0 {
		o.NRExcl = 3
	}
	return o
}

// Terms returns the Gromacs terms for all the entities of kind k in T.
func Terms(T *topsynth.Topology, k ff.Kind) []*Term {
	g := T.Group(k)
	ret := make([]*Term, g.Len())
	for i, t := range g.Atoms {
		ret[i] = NewTerm(k, t, g.Params[i])
	}
	return ret
}

// Write writes T as a Gromacs molecule topology to w.
func Write(w io.Writer, T *topsynth.Topology, o Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s", r)
		}
	}()
	o = o.defaults()
	b := bufio.NewWriter(w)
	_, err = b.WriteString(fmt.Sprintf("; %s\n\n[ moleculetype ]\n; name  nrexcl\n%s  %d\n", T, o.Name, o.NRExcl))
	qerr(err)
	_, err = b.WriteString("\n[ atoms ]\n;   nr   type  resnr residue  atom   cgnr     charge       mass\n")
	qerr(err)
	for i, l := range T.Labels {
		_, err = b.WriteString(fmt.Sprintf("%6d %6s %6d %7s %5s %6d %10.4f %10.4f\n",
			i+1, T.Types[i], 1, o.Residue, l, i+1, T.Charges[i], T.Masses[i]))
		qerr(err)
	}
	for _, k := range ff.Kinds {
		if T.Group(k).Len() == 0 {
			continue
		}
		_, err = b.WriteString(fmt.Sprintf("\n[ %s ]\n", k.Plural()))
		qerr(err)
		qerr(printGro(b, Terms(T, k)))
	}
	return b.Flush()
}

// WriteFile writes T as a Gromacs molecule topology to the file name.
func WriteFile(name string, T *topsynth.Topology, o Options) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, T, o); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
