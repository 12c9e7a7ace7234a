package lattice

// This file declares the identity types, the displacement index, and the
// catalog entry types (Sublattice, HoppingFamily, HoppingTerm) together
// with the Lattice aggregate that owns them.

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// SubID densely identifies a sublattice within one Lattice. IDs are
// assigned in registration order starting at 0 and are never renumbered.
type SubID int8

// HopID densely identifies a hopping family within one Lattice, assigned
// in registration order starting at 0.
type HopID int8

// Identity-space bounds. A catalog may hold one entry per representable ID.
const (
	maxSubID = int(math.MaxInt8)
	maxHopID = int(math.MaxInt8)
)

// Index3 is an integer displacement between unit cells, expressed in units
// of the primitive lattice vectors.
type Index3 [3]int

// Neg returns the component-wise negation of i.
func (i Index3) Neg() Index3 {
	return Index3{-i[0], -i[1], -i[2]}
}

// IsZero reports whether all components of i are zero.
func (i Index3) IsZero() bool {
	return i == Index3{}
}

// Sublattice is a named basis site within the unit cell.
//
// Energy is the onsite operator over the site's internal orbital space:
// square, real-diagonal, and either upper triangular or exactly Hermitian.
// AliasID equals UniqueID for ordinary sublattices; for an alias it holds
// the UniqueID of the sublattice it is electronically equivalent to.
// Entries are immutable once registered.
type Sublattice struct {
	Name     string
	Position r3.Vec
	Energy   *mat.CDense
	UniqueID SubID
	AliasID  SubID
}

// NumOrbitals returns the dimension of the sublattice's orbital space.
func (s *Sublattice) NumOrbitals() int {
	_, c := s.Energy.Dims()

	return c
}

// HoppingTerm is one geometric instance of a hopping family: a displacement
// in primitive-vector units from the source to the destination unit cell,
// between two sublattice identities.
type HoppingTerm struct {
	RelativeIndex Index3
	From, To      SubID
}

// HoppingFamily is a named reusable hopping energy operator together with
// the geometric terms that share it. Energy rows correspond to the source
// sublattice's orbitals, columns to the destination's.
type HoppingFamily struct {
	Name     string
	Energy   *mat.CDense
	UniqueID HopID
	Terms    []HoppingTerm
}

// Lattice is the aggregate root: primitive vectors, origin offset, and the
// two append-only catalogs. The zero value is not usable; construct with New.
//
// Catalog slices are indexed by identity (the k-th registered entry has
// ID k); the maps translate user-facing names to those identities.
type Lattice struct {
	vectors      []r3.Vec
	offset       r3.Vec
	minNeighbors int

	sublattices []Sublattice
	subIDs      map[string]SubID

	hoppings []HoppingFamily
	hopIDs   map[string]HopID
}
