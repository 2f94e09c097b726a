/*
 * structure.go, part of topsynth.
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

package topsynth

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/rmera/topsynth/v3"
)

// Names of the input files expected in a structure directory.
const (
	LabelsFile = "justname.txt"
	CoordsFile = "justcoords.txt"
)

// Structure is the input of a synthesis: one label per atom, in sequence order,
// and the coordinates of each atom, in the same order.
type Structure struct {
	Labels []string
	Coords *v3.Matrix
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Labels)
}

// ReadStructure reads the labels and coordinates files from dir.
func ReadStructure(dir string) (*Structure, error) {
	lf, err := os.Open(filepath.Join(dir, LabelsFile))
	if err != nil {
		return nil, err
	}
	defer lf.Close()
	labels, err := ReadLabels(lf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", lf.Name(), err)
	}
	cf, err := os.Open(filepath.Join(dir, CoordsFile))
	if err != nil {
		return nil, err
	}
	defer cf.Close()
	coords, err := ReadCoords(cf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cf.Name(), err)
	}
	if coords.NVecs() != len(labels) {
		return nil, fmt.Errorf("structure in %s has %d labels but %d coordinates", dir, len(labels), coords.NVecs())
	}
	return &Structure{Labels: labels, Coords: coords}, nil
}

// ReadLabels reads one atom label per line. Surrounding spaces are removed and
// blank lines are skipped.
func ReadLabels(r io.Reader) ([]string, error) {
	labels := make([]string, 0, 1024)
	s := bufio.NewScanner(r)
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" {
			continue
		}
		labels = append(labels, l)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no atom labels")
	}
	return labels, nil
}

// ReadCoords reads comma-delimited x,y,z lines. Lines starting with '#' are comments.
func ReadCoords(r io.Reader) (*v3.Matrix, error) {
	c := csv.NewReader(r)
	c.Comment = '#'
	c.FieldsPerRecord = 3
	c.TrimLeadingSpace = true
	c.ReuseRecord = true
	data := make([]float64, 0, 3*1024)
	for line := 1; ; line++ {
		rec, err := c.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, f := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("coordinate record %d: %w", line, err)
			}
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no coordinates")
	}
	return v3.NewMatrix(data)
}
