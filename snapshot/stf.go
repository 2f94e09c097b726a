/*
 * stf.go, part of topsynth.
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

package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/topsynth/ff"
	v3 "github.com/rmera/topsynth/v3"
)

// Extension is the customary extension for snapshot files.
const Extension = ".stf"

const formatName = "topsynth-snapshot"
const formatVersion = 1

// Write writes S, zstd-compressed, to w.
func Write(w io.Writer, S *Snapshot) error {
	z, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return Error{"can't open compressor: " + err.Error(), "", []string{"Write"}, true}
	}
	b := bufio.NewWriter(z)
	if err := encode(b, S); err != nil {
		z.Close()
		return Error{err.Error(), "", []string{"Write"}, true}
	}
	if err := b.Flush(); err != nil {
		z.Close()
		return Error{err.Error(), "", []string{"Write"}, true}
	}
	if err := z.Close(); err != nil {
		return Error{err.Error(), "", []string{"Write"}, true}
	}
	return nil
}

// WriteFile writes S to a new file with the given name.
func WriteFile(name string, S *Snapshot) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, S); err != nil {
		f.Close()
		return errDecorate(err, name, "WriteFile")
	}
	return f.Close()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func encode(w *bufio.Writer, S *Snapshot) error {
	if S.Position == nil || S.Position.NVecs() != S.N {
		return fmt.Errorf("snapshot has %d particles but no matching positions", S.N)
	}
	if len(S.TypeID) != S.N || len(S.Mass) != S.N || len(S.Charge) != S.N {
		return fmt.Errorf("snapshot has %d particles but per-particle data of another length", S.N)
	}
	fmt.Fprintf(w, "format=%s\nversion=%d\n", formatName, formatVersion)
	if S.FF != "" {
		fmt.Fprintf(w, "ff=%s\n", S.FF)
	}
	fmt.Fprintf(w, "box=%s %s %s\n", ftoa(S.Box[0]), ftoa(S.Box[1]), ftoa(S.Box[2]))
	fmt.Fprintf(w, "** %d\n", S.N)
	fmt.Fprintf(w, "particle_types %d\n", len(S.ParticleTypes))
	for _, t := range S.ParticleTypes {
		fmt.Fprintln(w, t)
	}
	fmt.Fprintf(w, "particles %d\n", S.N)
	for i := 0; i < S.N; i++ {
		fmt.Fprintf(w, "%d %s %s %s %s %s\n", S.TypeID[i], ftoa(S.Mass[i]), ftoa(S.Charge[i]),
			ftoa(S.Position.At(i, 0)), ftoa(S.Position.At(i, 1)), ftoa(S.Position.At(i, 2)))
	}
	for _, k := range ff.Kinds {
		g := S.Group(k)
		fmt.Fprintf(w, "%s_types %d\n", k, len(g.Types))
		for _, t := range g.Types {
			fmt.Fprintln(w, t)
		}
		fmt.Fprintf(w, "%s %d\n", k.Plural(), g.Len())
		for i, t := range g.Group {
			if len(t) != k.Arity() {
				return fmt.Errorf("%s %d has %d atoms, want %d", k, i, len(t), k.Arity())
			}
			w.WriteString(strconv.Itoa(g.TypeID[i]))
			for _, v := range t {
				w.WriteByte(' ')
				w.WriteString(strconv.Itoa(v))
			}
			w.WriteByte('\n')
		}
	}
	_, err := w.WriteString("end\n")
	return err
}

// Read reads a zstd-compressed snapshot from r. It returns the snapshot and the
// header, as a map of keys to values.
func Read(r io.Reader) (*Snapshot, map[string]string, error) {
	z, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, Error{"can't open decompressor: " + err.Error(), "", []string{"Read"}, true}
	}
	defer z.Close()
	d := &decoder{s: bufio.NewScanner(z)}
	d.s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	S, m, err := d.decode()
	if err != nil {
		return nil, nil, Error{err.Error(), "", []string{"Read"}, true}
	}
	return S, m, nil
}

// ReadFile reads the snapshot in the file name.
func ReadFile(name string) (*Snapshot, map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	S, m, err := Read(f)
	if err != nil {
		return nil, nil, errDecorate(err, name, "ReadFile")
	}
	return S, m, nil
}

type decoder struct {
	s    *bufio.Scanner
	line int
}

func (d *decoder) next() (string, error) {
	if !d.s.Scan() {
		if err := d.s.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	d.line++
	return d.s.Text(), nil
}

// section reads a "name count" line.
func (d *decoder) section(name string) (int, error) {
	l, err := d.next()
	if err != nil {
		return 0, fmt.Errorf("reading section %s: %w", name, err)
	}
	f := strings.Fields(l)
	if len(f) != 2 || f[0] != name {
		return 0, fmt.Errorf("line %d: expected section %s, found %q", d.line, name, l)
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("line %d: invalid count for section %s: %q", d.line, name, f[1])
	}
	return n, nil
}

func (d *decoder) names(n int) ([]string, error) {
	ret := make([]string, n)
	for i := range ret {
		l, err := d.next()
		if err != nil {
			return nil, err
		}
		ret[i] = strings.TrimSpace(l)
	}
	return ret, nil
}

// ints reads a line with exactly n integer fields into dst.
func (d *decoder) ints(dst []int) error {
	l, err := d.next()
	if err != nil {
		return err
	}
	f := strings.Fields(l)
	if len(f) != len(dst) {
		return fmt.Errorf("line %d: %d fields, want %d", d.line, len(f), len(dst))
	}
	for i, v := range f {
		dst[i], err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", d.line, err)
		}
	}
	return nil
}

func (d *decoder) decode() (*Snapshot, map[string]string, error) {
	m := make(map[string]string)
	S := new(Snapshot)
	for {
		l, err := d.next()
		if err != nil {
			return nil, nil, fmt.Errorf("reading header: %w", err)
		}
		if strings.HasPrefix(l, "**") {
			f := strings.Fields(l)
			if len(f) != 2 {
				return nil, nil, fmt.Errorf("line %d: can't read particle number from %q", d.line, l)
			}
			S.N, err = strconv.Atoi(f[1])
			if err != nil || S.N < 0 {
				return nil, nil, fmt.Errorf("line %d: can't read particle number from %q", d.line, l)
			}
			break
		}
		k, v, ok := strings.Cut(l, "=")
		if !ok {
			return nil, nil, fmt.Errorf("line %d: malformed header %q", d.line, l)
		}
		m[k] = v
	}
	if m["format"] != formatName {
		return nil, nil, fmt.Errorf("not a %s file (format %q)", formatName, m["format"])
	}
	S.FF = m["ff"]
	if b, ok := m["box"]; ok {
		f := strings.Fields(b)
		if len(f) != 3 {
			return nil, nil, fmt.Errorf("malformed box %q", b)
		}
		for i, v := range f {
			var err error
			if S.Box[i], err = strconv.ParseFloat(v, 64); err != nil {
				return nil, nil, fmt.Errorf("malformed box %q: %w", b, err)
			}
		}
	}
	n, err := d.section("particle_types")
	if err != nil {
		return nil, nil, err
	}
	if S.ParticleTypes, err = d.names(n); err != nil {
		return nil, nil, err
	}
	if n, err = d.section("particles"); err != nil {
		return nil, nil, err
	}
	if n != S.N {
		return nil, nil, fmt.Errorf("header announces %d particles, section has %d", S.N, n)
	}
	S.TypeID = make([]int, n)
	S.Mass = make([]float64, n)
	S.Charge = make([]float64, n)
	S.Position = v3.Zeros(n)
	var fl [5]float64
	for i := 0; i < n; i++ {
		l, err := d.next()
		if err != nil {
			return nil, nil, err
		}
		f := strings.Fields(l)
		if len(f) != 6 {
			return nil, nil, fmt.Errorf("line %d: particle with %d fields, want 6", d.line, len(f))
		}
		if S.TypeID[i], err = strconv.Atoi(f[0]); err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", d.line, err)
		}
		if S.TypeID[i] < 0 || S.TypeID[i] >= len(S.ParticleTypes) {
			return nil, nil, fmt.Errorf("line %d: particle type id %d out of range", d.line, S.TypeID[i])
		}
		for j, v := range f[1:] {
			if fl[j], err = strconv.ParseFloat(v, 64); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", d.line, err)
			}
		}
		S.Mass[i], S.Charge[i] = fl[0], fl[1]
		S.Position.SetVec(i, fl[2:])
	}
	for _, k := range ff.Kinds {
		g := S.Group(k)
		if n, err = d.section(k.String() + "_types"); err != nil {
			return nil, nil, err
		}
		if g.Types, err = d.names(n); err != nil {
			return nil, nil, err
		}
		if n, err = d.section(k.Plural()); err != nil {
			return nil, nil, err
		}
		g.Group = make([][]int, n)
		g.TypeID = make([]int, n)
		rec := make([]int, k.Arity()+1)
		for i := 0; i < n; i++ {
			if err := d.ints(rec); err != nil {
				return nil, nil, err
			}
			if rec[0] < 0 || rec[0] >= len(g.Types) {
				return nil, nil, fmt.Errorf("line %d: %s type id %d out of range", d.line, k, rec[0])
			}
			for _, ix := range rec[1:] {
				if ix < 0 || ix >= S.N {
					return nil, nil, fmt.Errorf("line %d: %s atom index %d out of range", d.line, k, ix)
				}
			}
			g.TypeID[i] = rec[0]
			g.Group[i] = append([]int(nil), rec[1:]...)
		}
	}
	l, err := d.next()
	if err != nil || l != "end" {
		return nil, nil, fmt.Errorf("line %d: missing end of snapshot", d.line)
	}
	return S, m, nil
}

// Error is the error type for snapshot reading and writing.
type Error struct {
	message  string
	filename string //the file with problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("snapshot error: %s", err.message)
	}
	return fmt.Sprintf("snapshot file %s error: %s", err.filename, err.message)
}

// Decorate adds the name of a caller to the error trace and returns the trace.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error leaves the snapshot unusable. They all do.
func (err Error) Critical() bool { return err.critical }

func errDecorate(err error, filename, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.filename = filename
	e.Decorate(caller)
	return e
}
