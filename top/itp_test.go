package top

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/ff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synth(Te *testing.T, dir string) *topsynth.Topology {
	Te.Helper()
	F, err := ff.Default()
	require.NoError(Te, err)
	s, err := topsynth.ReadStructure(dir)
	require.NoError(Te, err)
	T, err := topsynth.Synthesize(s.Labels, F)
	require.NoError(Te, err)
	return T
}

// lines returns the non-comment lines of the given section.
func lines(itp, section string) []string {
	var ret []string
	in := false
	for _, l := range strings.Split(itp, "\n") {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "[") {
			in = l == "[ "+section+" ]"
			continue
		}
		if in && l != "" && !strings.HasPrefix(l, ";") {
			ret = append(ret, l)
		}
	}
	return ret
}

func TestWriteWater(Te *testing.T) {
	T := synth(Te, "../testdata/water")
	var b bytes.Buffer
	require.NoError(Te, Write(&b, T, Options{Name: "SOL"}))
	itp := b.String()
	assert.Equal(Te, []string{"SOL  3"}, lines(itp, "moleculetype"))
	atoms := lines(itp, "atoms")
	require.Len(Te, atoms, 6)
	assert.Equal(Te, []string{"1", "OT", "1", "SOL", "OW", "1", "-0.8340", "15.9994"}, strings.Fields(atoms[0]))
	bonds := lines(itp, "bonds")
	require.Len(Te, bonds, 6)
	f := strings.Fields(bonds[0])
	assert.Equal(Te, []string{"1", "2", "1"}, f[:3], "atom indexes are 1-based")
	assert.Equal(Te, "HT,OT", f[len(f)-1])
	angles := lines(itp, "angles")
	require.Len(Te, angles, 2)
	assert.Equal(Te, []string{"5", "4", "6", "1"}, strings.Fields(angles[1])[:4])
	assert.Empty(Te, lines(itp, "dihedrals"))
}

func TestWriteDihedrals(Te *testing.T) {
	T := synth(Te, "../testdata/isooctane")
	terms := Terms(T, ff.Dihedral)
	require.Len(Te, terms, 2)
	for _, t := range terms {
		assert.Equal(Te, 3, t.FuncType)
		assert.Len(Te, t.RB, 6)
	}
	var b bytes.Buffer
	require.NoError(Te, Write(&b, T, Options{}))
	d := lines(b.String(), "dihedrals")
	require.Len(Te, d, 2)
	f := strings.Fields(d[0])
	assert.Equal(Te, []string{"2", "3", "4", "5", "3"}, f[:5])
	assert.Len(Te, f, 5+6+2, "atoms, function, six coefficients and the key comment")
	assert.Equal(Te, []string{"MOL  3"}, lines(b.String(), "moleculetype"))
}

func TestTermToGro(Te *testing.T) {
	p := &ff.Param{Key: "A,B,C,D", ID: 1, Func: 1, Eq: 180, K: 0.418, Mult: 6}
	t := NewTerm(ff.Dihedral, ff.Tuple{0, 1, 2, 3}, p)
	s, err := t.ToGro()
	require.NoError(Te, err)
	assert.Equal(Te, []string{"1", "2", "3", "4", "1", "180.000", "0.4180", "6", ";", "A,B,C,D"}, strings.Fields(s))

	t = &Term{IDs: []int{1, 2, 3, 4}, OneBased: 1, FuncType: 3, RB: []float64{1, 2}}
	_, err = t.ToGro()
	assert.Error(Te, err)

	var b bytes.Buffer
	assert.Error(Te, printGro(&b, []*Term{t}))
}
