/*
 * term.go, part of topsynth.
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
	"fmt"
	"io"
	"strings"

	"github.com/rmera/topsynth/ff"
)

// Term is a bonded term in a Gromacs topology.
type Term struct {
	IDs      []int
	FuncType int
	OneBased int //0 if the indexes in IDs are 0-based, 1 if they are 1-based.
	Eq       float64
	K        float64
	Mult     int       //multiplicity, only for periodic dihedrals.
	RB       []float64 //Ryckaert-Bellemans coefficients, C0 to C5.
	Comment  string
}

// NewTerm builds the term for the (0-based) atoms in t with the parameters in p.
func NewTerm(k ff.Kind, t ff.Tuple, p *ff.Param) *Term {
	T := &Term{
		IDs:      append([]int(nil), t...),
		FuncType: p.Func,
		Eq:       p.Eq,
		K:        p.K,
		RB:       p.RB,
		Comment:  p.Key,
	}
	if k == ff.Dihedral && p.Func == 1 {
		T.Mult = p.Mult
	}
	return T
}

func (T *Term) writeAtoms() string {
	add := 1 - T.OneBased
	r := make([]string, 0, len(T.IDs))
	for _, v := range T.IDs {
		r = append(r, fmt.Sprintf("%5d", v+add))
	}
	return strings.Join(r, " ")
}

// ToGro returns the term as a line in Gromacs topology format.
func (T *Term) ToGro() (string, error) {
	ret := make([]string, 0, 12)
	ret = append(ret, T.writeAtoms(), fmt.Sprintf("%2d", T.FuncType))
	switch {
	case len(T.RB) > 0:
		if len(T.RB) != 6 {
			return "", fmt.Errorf("top/Term.ToGro: R-B potential must have 6 parameters, got %d", len(T.RB))
		}
		for _, v := range T.RB {
			ret = append(ret, fmt.Sprintf("%10.5f", v))
		}
	case T.Mult > 0:
		ret = append(ret, fmt.Sprintf("%9.3f", T.Eq), fmt.Sprintf("%10.4f", T.K), fmt.Sprintf("%2d", T.Mult))
	default:
		ret = append(ret, fmt.Sprintf("%9.5f", T.Eq), fmt.Sprintf("%12.4f", T.K))
	}
	if T.Comment != "" {
		ret = append(ret, "; "+T.Comment)
	}
	return strings.Join(ret, " ") + "\n", nil
}

type groer interface {
	ToGro() (string, error)
}

func printGro[G ~[]E, E groer](r io.StringWriter, g G) error {
	for _, v := range g {
		m, e := v.ToGro()
		if e != nil {
			return e
		}
		_, e = r.WriteString(m)
		if e != nil {
			return e
		}
	}
	return nil
}

// panics on error, to be recovered by the exported functions.
func qerr(err error) {
	if err != nil {
		panic(err)
	}
}
