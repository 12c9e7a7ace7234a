package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bravais/cmatrix"
	"github.com/katalvlaran/bravais/lattice"
)

var (
	ex = r3.Vec{X: 1}
	ey = r3.Vec{Y: 1}
	ez = r3.Vec{Z: 1}
)

// square returns a fresh 2D unit-vector lattice.
func square(t *testing.T) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New(ex, ey)
	require.NoError(t, err)

	return l
}

func TestNew_Dimensionality(t *testing.T) {
	l1, err := lattice.New(ex)
	require.NoError(t, err)
	assert.Equal(t, 1, l1.NDim())

	l3, err := lattice.New(ex, ey, ez)
	require.NoError(t, err)
	assert.Equal(t, 3, l3.NDim())
}

func TestNew_DropsZeroVectors(t *testing.T) {
	// A 2D lattice written with a trailing zero third vector.
	l, err := lattice.New(ex, ey, r3.Vec{})
	require.NoError(t, err)
	assert.Equal(t, 2, l.NDim())
	assert.Equal(t, []r3.Vec{ex, ey}, l.Vectors())
}

func TestNew_Errors(t *testing.T) {
	_, err := lattice.New()
	assert.ErrorIs(t, err, lattice.ErrNoVectors)

	_, err = lattice.New(r3.Vec{}, ex)
	assert.ErrorIs(t, err, lattice.ErrNoVectors)

	_, err = lattice.New(ex, ey, ez, ex)
	assert.ErrorIs(t, err, lattice.ErrTooManyVectors)
}

func TestWithMinNeighbors_CopiesLattice(t *testing.T) {
	l := square(t)
	c := l.WithMinNeighbors(3)

	assert.Equal(t, 3, c.MinNeighbors())
	assert.Equal(t, 0, l.MinNeighbors())
}

func TestWithOffset_CopiesLattice(t *testing.T) {
	l := square(t)
	c, err := l.WithOffset(r3.Vec{X: 0.25})
	require.NoError(t, err)

	assert.Equal(t, r3.Vec{X: 0.25}, c.Offset())
	assert.Equal(t, r3.Vec{}, l.Offset())

	// Mutating the copy's catalogs must not leak into the original.
	require.NoError(t, c.AddSublattice("A", r3.Vec{}, cmatrix.Scalar(0)))
	assert.Equal(t, 1, c.NSub())
	assert.Equal(t, 0, l.NSub())
}

func TestPropertyQueries(t *testing.T) {
	l := square(t)
	require.NoError(t, l.AddSublattice("A", r3.Vec{}, cmatrix.Scalar(0)))

	assert.False(t, l.HasOnsiteEnergy())
	assert.False(t, l.HasMultipleOrbitals())
	assert.False(t, l.HasComplexHoppings())

	require.NoError(t, l.AddSublattice("B", r3.Vec{X: 0.5}, cmatrix.Diagonal([]float64{1, 2})))
	assert.True(t, l.HasOnsiteEnergy())
	assert.True(t, l.HasMultipleOrbitals())

	require.NoError(t, l.RegisterHoppingEnergy("t", cmatrix.Scalar(1i)))
	assert.True(t, l.HasComplexHoppings())
}

func TestNameMaps(t *testing.T) {
	l := square(t)
	require.NoError(t, l.AddSublattice("A", r3.Vec{}, cmatrix.Scalar(0)))
	require.NoError(t, l.AddSublattice("B", r3.Vec{}, cmatrix.Scalar(0)))
	require.NoError(t, l.RegisterHoppingEnergy("t", cmatrix.Scalar(-1)))

	assert.Equal(t, map[string]lattice.SubID{"A": 0, "B": 1}, l.SubNameMap())
	assert.Equal(t, map[string]lattice.HopID{"t": 0}, l.HopNameMap())

	// Returned maps are copies.
	m := l.SubNameMap()
	m["C"] = 9
	assert.Equal(t, 2, len(l.SubNameMap()))
}
