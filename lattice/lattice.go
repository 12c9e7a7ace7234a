package lattice

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bravais/cmatrix"
)

// New constructs a Lattice from one to three primitive translation vectors.
// Zero vectors after the first are dropped, so 1D and 2D lattices can be
// written with trailing zero vectors at the call site.
// Returns ErrNoVectors if no vectors are given or the first is zero,
// ErrTooManyVectors for more than three.
func New(vectors ...r3.Vec) (*Lattice, error) {
	if len(vectors) == 0 || vectors[0] == (r3.Vec{}) {
		return nil, ErrNoVectors
	}
	if len(vectors) > 3 {
		return nil, ErrTooManyVectors
	}

	kept := make([]r3.Vec, 0, len(vectors))
	kept = append(kept, vectors[0])
	for _, v := range vectors[1:] {
		if v != (r3.Vec{}) {
			kept = append(kept, v)
		}
	}

	return &Lattice{
		vectors: kept,
		subIDs:  make(map[string]SubID),
		hopIDs:  make(map[string]HopID),
	}, nil
}

// NDim returns the lattice dimensionality: the number of primitive vectors.
func (l *Lattice) NDim() int { return len(l.vectors) }

// NSub returns the number of registered sublattices.
func (l *Lattice) NSub() int { return len(l.sublattices) }

// NHop returns the number of registered hopping families.
func (l *Lattice) NHop() int { return len(l.hoppings) }

// Vectors returns a copy of the primitive translation vectors.
func (l *Lattice) Vectors() []r3.Vec { return slices.Clone(l.vectors) }

// Offset returns the Cartesian shift of the lattice origin.
func (l *Lattice) Offset() r3.Vec { return l.offset }

// MinNeighbors returns the minimum-neighbor policy hint for shape
// generation. The lattice itself attaches no meaning to it.
func (l *Lattice) MinNeighbors() int { return l.minNeighbors }

// SubNameMap returns a copy of the sublattice name→identity map.
func (l *Lattice) SubNameMap() map[string]SubID { return maps.Clone(l.subIDs) }

// HopNameMap returns a copy of the hopping family name→identity map.
func (l *Lattice) HopNameMap() map[string]HopID { return maps.Clone(l.hopIDs) }

// WithOffset returns an independent copy of the lattice with its origin
// moved to position; the receiver is unchanged. Fails like SetOffset when
// position lies further than half a primitive vector from the origin.
func (l *Lattice) WithOffset(position r3.Vec) (*Lattice, error) {
	c := l.clone()
	if err := c.SetOffset(position); err != nil {
		return nil, err
	}

	return c, nil
}

// WithMinNeighbors returns an independent copy of the lattice carrying the
// given minimum-neighbor hint; the receiver is unchanged.
func (l *Lattice) WithMinNeighbors(number int) *Lattice {
	c := l.clone()
	c.minNeighbors = number

	return c
}

// HasOnsiteEnergy reports whether any sublattice has a non-zero onsite
// diagonal.
func (l *Lattice) HasOnsiteEnergy() bool {
	for i := range l.sublattices {
		if !cmatrix.IsZeroDiagonal(l.sublattices[i].Energy) {
			return true
		}
	}

	return false
}

// HasMultipleOrbitals reports whether any sublattice has more than one
// orbital.
func (l *Lattice) HasMultipleOrbitals() bool {
	for i := range l.sublattices {
		if l.sublattices[i].NumOrbitals() != 1 {
			return true
		}
	}

	return false
}

// HasComplexHoppings reports whether any hopping family's operator has a
// non-zero imaginary part.
func (l *Lattice) HasComplexHoppings() bool {
	for i := range l.hoppings {
		if cmatrix.HasComplexElements(l.hoppings[i].Energy) {
			return true
		}
	}

	return false
}

// clone returns a deep copy of the lattice with respect to both catalogs.
// Energy operators are shared; they are immutable once registered.
func (l *Lattice) clone() *Lattice {
	c := &Lattice{
		vectors:      slices.Clone(l.vectors),
		offset:       l.offset,
		minNeighbors: l.minNeighbors,
		sublattices:  slices.Clone(l.sublattices),
		subIDs:       maps.Clone(l.subIDs),
		hoppings:     slices.Clone(l.hoppings),
		hopIDs:       maps.Clone(l.hopIDs),
	}
	for i := range c.hoppings {
		c.hoppings[i].Terms = slices.Clone(c.hoppings[i].Terms)
	}

	return c
}
