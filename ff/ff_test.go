package ff

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallFF = `
name: small
particles:
  - {name: SL, id: 0, mass: 32.06, charge: 1.36}
  - {name: O2L, id: 1, mass: 15.9994, charge: -0.6}
  - {name: OT, id: 2, mass: 15.9994, charge: -0.834}
  - {name: HT, id: 3, mass: 1.008, charge: 0.417}
labels:
  S: {type: SL, bonds: [[0,1], [0,2], [0,3]]}
  OS1: {type: O2L}
  OW: {type: OT, bonds: [[0,1], [0,2]]}
  HW1: {type: HT}
bonds:
  - {key: "SL,O2L", id: 1, func: 1, eq: 0.1448, k: 451872}
  - {key: "HT,OT", id: 2, func: 1, eq: 0.09572, k: 376560}
angles:
  - {key: "O2L,SL,O2L", id: 1, func: 1, eq: 109.47, k: 1087.84}
  - {key: "HT,OT,HT", id: 2, func: 1, eq: 104.52, k: 460.24}
dihedrals:
  - {key: "HT,OT,SL,O2L", id: 1, func: 1, eq: 180, k: 1.0, mult: 1}
`

func loadSmall(t *testing.T) *ForceField {
	t.Helper()
	F, err := Load(strings.NewReader(smallFF))
	require.NoError(t, err)
	return F
}

func TestKind(t *testing.T) {
	assert.Equal(t, 2, Bond.Arity())
	assert.Equal(t, 3, Angle.Arity())
	assert.Equal(t, 4, Dihedral.Arity())
	assert.Equal(t, "dihedrals", Dihedral.Plural())
	assert.Panics(t, func() { Kind(7).Arity() })
}

func TestApply(t *testing.T) {
	got, err := Tuple{0, -5, -3, 13}.Apply(9, 36)
	require.NoError(t, err)
	assert.Equal(t, Tuple{9, 4, 6, 22}, got, "order must be kept, not sorted")

	_, err = Tuple{0, -1}.Apply(0, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBounds))
	var be *BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, -1, be.Offset)
	assert.Equal(t, -1, be.Index)
	assert.Equal(t, 4, be.N)

	_, err = Tuple{0, 3}.Apply(1, 4)
	assert.ErrorIs(t, err, ErrBounds, "index N itself is out of range")
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "A,B,C", Key([]string{"A", "B", "C"}))
	assert.Equal(t, "C,B,A", ReverseKey([]string{"A", "B", "C"}))
	assert.Equal(t, []string{"A", "B"}, SplitKey("A,B"))
	assert.Equal(t, Tuple{3, 2, 1}, Tuple{1, 2, 3}.Reversed())
}

func TestResolveReverse(t *testing.T) {
	F := loadSmall(t)
	p, err := F.Table(Bond).Resolve([]string{"OT", "HT"})
	require.NoError(t, err)
	assert.Equal(t, "HT,OT", p.Key)
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, 1, p.TypeID())

	p, err = F.Table(Bond).Resolve([]string{"HT", "OT"})
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)
}

func TestResolveMiss(t *testing.T) {
	F := loadSmall(t)
	_, err := F.Table(Dihedral).Resolve([]string{"SL", "O2L", "O2L", "O2L"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoParameter)
	var ke *KeyError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "SL,O2L,O2L,O2L", ke.Forward)
	assert.Equal(t, "O2L,O2L,O2L,SL", ke.Reverse)
	assert.Equal(t, Dihedral, ke.Kind)
	assert.Contains(t, err.Error(), ke.Forward)
	assert.Contains(t, err.Error(), ke.Reverse)
}

func TestNoPartialReversal(t *testing.T) {
	F := loadSmall(t)
	tab := F.Table(Dihedral)
	_, err := tab.Resolve([]string{"O2L", "SL", "OT", "HT"})
	assert.NoError(t, err, "full reversal is equivalent")
	//swapping only the outer atoms.
	_, err = tab.Resolve([]string{"O2L", "OT", "SL", "HT"})
	assert.ErrorIs(t, err, ErrNoParameter)
	//swapping only the inner pair.
	_, err = tab.Resolve([]string{"HT", "SL", "OT", "O2L"})
	assert.ErrorIs(t, err, ErrNoParameter)
}

func TestResolveWrongArity(t *testing.T) {
	F := loadSmall(t)
	_, err := F.Table(Angle).Resolve([]string{"HT", "OT"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoParameter))
}

// Every entry of the built-in tables must resolve to itself from both directions,
// and repeatedly to the same entry.
func TestDefaultSymmetric(t *testing.T) {
	F, err := Default()
	require.NoError(t, err)
	for _, k := range Kinds {
		for _, p := range F.Table(k).Params() {
			types := p.Types()
			fwd, err := F.Table(k).Resolve(types)
			require.NoError(t, err)
			reversed := slices.Clone(types)
			slices.Reverse(reversed)
			rev, err := F.Table(k).Resolve(reversed)
			require.NoError(t, err)
			assert.Same(t, fwd, rev, p.Key)
			assert.Same(t, p, fwd)
			again, _ := F.Table(k).Resolve(types)
			assert.Same(t, fwd, again)
		}
	}
}

func TestDefault(t *testing.T) {
	F, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "aot-isooctane", F.Name)
	assert.Len(t, F.Particles(), 23)
	assert.Equal(t, 32, F.Table(Bond).Len())
	assert.Equal(t, 75, F.Table(Angle).Len())
	assert.Equal(t, 21, F.Table(Dihedral).Len())
	assert.Equal(t, 49, F.Registry().Len())

	p, err := F.TypeOf("OW")
	require.NoError(t, err)
	assert.Equal(t, "OT", p.Name)
	assert.Equal(t, 14, p.ID)
	assert.InDelta(t, -0.834, p.Charge, 1e-9)

	names := F.Table(Bond).Names()
	assert.Equal(t, "CTL3,CL", names[0])
	assert.Equal(t, "CH2,C3a", names[31])
	rb, ok := F.Table(Dihedral).ByID(14)
	require.True(t, ok)
	assert.Equal(t, 3, rb.Func)
	assert.Len(t, rb.RB, 6)

	s, err := F.Registry().Template("S")
	require.NoError(t, err)
	assert.Equal(t, []Tuple{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, s.Bonds)
	assert.Equal(t, []string{"CTL1", "CTL2"}, F.ParticleNames()[:2])
}

func TestUnknownLabel(t *testing.T) {
	F := loadSmall(t)
	_, err := F.Registry().Template("XX")
	assert.ErrorIs(t, err, ErrUnknownLabel)
	_, err = F.TypeOf("XX")
	var le *LabelError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "XX", le.Label)
	assert.Contains(t, err.Error(), "XX")
}

func TestInvalid(t *testing.T) {
	small := func(old, new string) string { return strings.Replace(smallFF, old, new, 1) }
	cases := map[string]string{
		"bad arity":     small("OS1: {type: O2L}", "OS1: {type: O2L, angles: [[0,1]]}"),
		"repeated atom": small("OS1: {type: O2L}", "OS1: {type: O2L, bonds: [[0,0]]}"),
		"unknown type":  small("OS1: {type: O2L}", "OS1: {type: XYZ}"),
		"id gap":        small("id: 2, func: 1, eq: 0.09572", "id: 3, func: 1, eq: 0.09572"),
		"key arity":     small(`"HT,OT,HT"`, `"HT,OT"`),
		"key type":      small(`"HT,OT,HT"`, `"HT,OT,XX"`),
		"unknown field": smallFF + "extra: 1\n",
		"rb count":      small("func: 1, eq: 180, k: 1.0, mult: 1", "func: 3, rb: [1, 2, 3]"),
		//a key together with its reverse.
		"ambiguous": strings.Replace(small(`"HT,OT,HT"`, `"SL,O2L,O2L"`), `"O2L,SL,O2L"`, `"O2L,O2L,SL"`, 1),
	}
	for name, y := range cases {
		_, err := Load(strings.NewReader(y))
		assert.Error(t, err, name)
	}
	_, err := Load(strings.NewReader(""))
	assert.Error(t, err)
}
