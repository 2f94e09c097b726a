package check

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/topsynth"
	"github.com/rmera/topsynth/ff"
	v3 "github.com/rmera/topsynth/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainFF = `
name: chain
particles:
  - {name: X, id: 0, mass: 1.0, charge: 0.0}
labels:
  A: {type: X, bonds: [[0,1]]}
  B: {type: X, bonds: [[0,-1]]}
  C: {type: X, angles: [[0,1,2]]}
  Z: {type: X}
bonds:
  - {key: "X,X", id: 1, func: 1, eq: 0.1, k: 1000}
angles:
  - {key: "X,X,X", id: 1, func: 1, eq: 109.5, k: 100}
`

func synthDir(Te *testing.T, dir string) (*topsynth.Topology, *topsynth.Structure) {
	Te.Helper()
	F, err := ff.Default()
	require.NoError(Te, err)
	s, err := topsynth.ReadStructure(dir)
	require.NoError(Te, err)
	T, err := topsynth.Synthesize(s.Labels, F)
	require.NoError(Te, err)
	return T, s
}

func synthChain(Te *testing.T, labels ...string) *topsynth.Topology {
	Te.Helper()
	F, err := ff.Load(strings.NewReader(chainFF))
	require.NoError(Te, err)
	T, err := topsynth.Synthesize(labels, F)
	require.NoError(Te, err)
	return T
}

func TestDuplicates(Te *testing.T) {
	T := synthChain(Te, "A", "B", "Z")
	d := Duplicates(T)
	require.Len(Te, d, 1)
	assert.Equal(Te, ff.Bond, d[0].Kind)
	assert.Equal(Te, ff.Tuple{1, 0}, d[0].Atoms)
	assert.Equal(Te, 0, d[0].First)
	assert.Equal(Te, 1, d[0].Second)
	assert.Equal(Te, 2, T.Bonds().Len(), "the check doesn't remove anything")

	for _, dir := range []string{"../testdata/water", "../testdata/isooctane", "../testdata/aot"} {
		T, _ := synthDir(Te, dir)
		assert.Empty(Te, Duplicates(T), dir)
	}
}

func TestMolecules(Te *testing.T) {
	T, _ := synthDir(Te, "../testdata/water")
	assert.Equal(Te, [][]int{{0, 1, 2}, {3, 4, 5}}, Molecules(T))
	assert.Equal(Te, []int{0, 0, 0, 1, 1, 1}, Membership(T))

	T, _ = synthDir(Te, "../testdata/aot")
	m := Molecules(T)
	require.Len(Te, m, 2)
	assert.Len(Te, m[0], 35)
	assert.Equal(Te, []int{35}, m[1], "the counterion is not bonded")

	T = synthChain(Te, "Z", "A", "Z")
	assert.Equal(Te, [][]int{{0}, {1, 2}}, Molecules(T))
}

func TestUnbondedTerms(Te *testing.T) {
	for _, dir := range []string{"../testdata/water", "../testdata/isooctane", "../testdata/aot"} {
		T, _ := synthDir(Te, dir)
		assert.Empty(Te, UnbondedTerms(T), dir)
	}
	T := synthChain(Te, "C", "A", "Z")
	u := UnbondedTerms(T)
	require.Len(Te, u, 1)
	assert.Equal(Te, ff.Angle, u[0].Kind)
	assert.Equal(Te, [2]int{0, 1}, u[0].Pair)
}

func TestBondGeometry(Te *testing.T) {
	T, s := synthDir(Te, "../testdata/water")
	G, err := BondGeometry(T, s.Coords, 0.1)
	require.NoError(Te, err)
	require.Len(Te, G.Deviations, 6)
	assert.InDelta(Te, 0.09572, G.Deviations[0].Length, 1e-9)
	assert.Less(Te, G.MaxAbs(), 1e-4)
	assert.InDelta(Te, 0, G.Mean(), 1e-4)
	assert.Empty(Te, G.Outliers(1e-3))

	G, err = BondGeometry(T, s.Coords, 1)
	require.NoError(Te, err)
	assert.Len(Te, G.Outliers(0.1), 6, "Angstrom coordinates against nm parameters")

	_, err = BondGeometry(T, v3.Zeros(2), 0.1)
	assert.Error(Te, err)
	_, err = BondGeometry(T, s.Coords, 0)
	assert.Error(Te, err)

	empty := &Geometry{}
	assert.True(Te, math.IsNaN(empty.Mean()))
	assert.Equal(Te, 0.0, empty.MaxAbs())
}

func TestPlotDeviations(Te *testing.T) {
	G := &Geometry{Deviations: []Deviation{
		{Length: 0.10, Eq: 0.1},
		{Length: 0.11, Eq: 0.1},
		{Length: 0.09, Eq: 0.1},
		{Length: 0.12, Eq: 0.1},
	}}
	assert.InDelta(Te, 0.0129, G.StdDev(), 1e-4)
	name := filepath.Join(Te.TempDir(), "devs.png")
	require.NoError(Te, PlotDeviations(G, name, 4))
	assert.FileExists(Te, name)
	assert.Error(Te, PlotDeviations(&Geometry{}, name, 4))
}
