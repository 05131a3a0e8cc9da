package cogs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gearshift/cogs"
)

//----------------------------------------------------------------------------//
// New / Default
//----------------------------------------------------------------------------//

// TestNew_Errors verifies each validation sentinel.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		front []int
		rear  []int
		err   error
	}{
		{"EmptyFront", nil, []int{28}, cogs.ErrEmptySide},
		{"EmptyRear", []int{38}, []int{}, cogs.ErrEmptySide},
		{"ZeroTeeth", []int{38, 0}, []int{28}, cogs.ErrNonPositiveTeeth},
		{"NegativeRear", []int{38}, []int{28, -3}, cogs.ErrNonPositiveTeeth},
		{"DuplicateFront", []int{38, 38}, []int{28}, cogs.ErrDuplicateTeeth},
		{"DuplicateRear", []int{38}, []int{16, 19, 16}, cogs.ErrDuplicateTeeth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cogs.New(tc.front, tc.rear)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the caller's slices does not
// leak into the Set, and accessors hand out copies.
func TestNew_CopiesInput(t *testing.T) {
	front := []int{50, 34}
	rear := []int{11, 13}
	s, err := cogs.New(front, rear)
	require.NoError(t, err)

	front[0] = 1
	rear[1] = 1
	assert.Equal(t, []int{50, 34}, s.Front())
	assert.Equal(t, []int{11, 13}, s.Rear())

	got := s.Front()
	got[0] = 99
	teeth, ok := s.FrontAt(0)
	assert.True(t, ok)
	assert.Equal(t, 50, teeth)
}

// TestDefault checks the reference drivetrain.
func TestDefault(t *testing.T) {
	s := cogs.Default()
	f, r := s.Dims()
	assert.Equal(t, 2, f)
	assert.Equal(t, 4, r)
	assert.Equal(t, []int{38, 30}, s.Front())
	assert.Equal(t, []int{28, 23, 19, 16}, s.Rear())
	assert.False(t, s.Empty())
	assert.True(t, cogs.Set{}.Empty())
	assert.Equal(t, "front=[38 30] rear=[28 23 19 16]", s.String())
}

// TestIndexLookups covers FrontIndex/RearIndex and the bounded accessors.
func TestIndexLookups(t *testing.T) {
	s := cogs.Default()

	i, ok := s.FrontIndex(30)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = s.RearIndex(19)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = s.FrontIndex(28)
	assert.False(t, ok, "28 is a rear count only")
	_, ok = s.RearIndex(38)
	assert.False(t, ok)

	_, ok = s.RearAt(4)
	assert.False(t, ok)
	_, ok = s.FrontAt(-1)
	assert.False(t, ok)
	teeth, ok := s.RearAt(3)
	assert.True(t, ok)
	assert.Equal(t, 16, teeth)
}

//----------------------------------------------------------------------------//
// YAML
//----------------------------------------------------------------------------//

// TestParse covers the happy path and both failure classes.
func TestParse(t *testing.T) {
	s, err := cogs.Parse([]byte("front: [53, 39]\nrear: [25, 21, 17, 14, 11]\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{53, 39}, s.Front())
	assert.Equal(t, []int{25, 21, 17, 14, 11}, s.Rear())

	_, err = cogs.Parse([]byte("front: [big]\nrear: [11]\n"))
	assert.ErrorIs(t, err, cogs.ErrDecode)

	_, err = cogs.Parse([]byte("front: [38]\n"))
	assert.ErrorIs(t, err, cogs.ErrEmptySide)

	_, err = cogs.Parse([]byte("front: [38, -1]\nrear: [11]\n"))
	assert.ErrorIs(t, err, cogs.ErrNonPositiveTeeth)
}

// TestLoadFile reads a document from disk and reports missing files.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gearing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("front: [38, 30]\nrear: [28, 23, 19, 16]\n"), 0o600))

	s, err := cogs.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cogs.Default(), s)

	_, err = cogs.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestYAMLRoundTrip embeds a Set in a larger document.
func TestYAMLRoundTrip(t *testing.T) {
	type bike struct {
		Name string   `yaml:"name"`
		Cogs cogs.Set `yaml:"cogs"`
	}
	in := bike{Name: "commuter", Cogs: cogs.Default()}

	bs, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out bike
	require.NoError(t, yaml.Unmarshal(bs, &out))
	assert.Equal(t, in, out)

	err = yaml.Unmarshal([]byte("name: x\ncogs:\n  front: [0]\n  rear: [1]\n"), &out)
	assert.ErrorIs(t, err, cogs.ErrNonPositiveTeeth)
}
