package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bravais/cmatrix"
)

// registerSublattice validates name and returns the next dense sublattice
// identity. It performs no insertion; the caller appends the entry.
func (l *Lattice) registerSublattice(name string) (SubID, error) {
	if name == "" {
		return 0, fmt.Errorf("lattice: sublattice name: %w", ErrBlankName)
	}
	if len(l.sublattices) > maxSubID {
		return 0, fmt.Errorf("lattice: more than %d sublattices: %w", maxSubID+1, ErrTooManySublattices)
	}
	if _, ok := l.subIDs[name]; ok {
		return 0, fmt.Errorf("lattice: sublattice %q: %w", name, ErrSublatticeExists)
	}

	return SubID(len(l.sublattices)), nil
}

// AddSublattice registers a named basis site at the given position within
// the unit cell. The onsite operator must be square with a real main
// diagonal, and either upper triangular or exactly Hermitian; a violated
// rule fails with its own sentinel and leaves the lattice unchanged.
//
// Scalar and diagonal onsite energies are expressed with cmatrix.Scalar and
// cmatrix.Diagonal.
func (l *Lattice) AddSublattice(name string, position r3.Vec, onsite *mat.CDense) error {
	if !cmatrix.IsSquare(onsite) {
		return fmt.Errorf("lattice: sublattice %q: %w", name, ErrNonSquareOnsite)
	}
	if !cmatrix.HasRealDiagonal(onsite) {
		return fmt.Errorf("lattice: sublattice %q: %w", name, ErrComplexDiagonal)
	}
	if !cmatrix.IsUpperTriangular(onsite) && !cmatrix.IsHermitian(onsite) {
		return fmt.Errorf("lattice: sublattice %q: %w", name, ErrNonHermitianOnsite)
	}

	id, err := l.registerSublattice(name)
	if err != nil {
		return err
	}
	l.sublattices = append(l.sublattices, Sublattice{
		Name:     name,
		Position: position,
		Energy:   onsite,
		UniqueID: id,
		AliasID:  id,
	})
	l.subIDs[name] = id

	return nil
}

// AddAlias registers a sublattice that is electronically equivalent to an
// existing one: it copies the original's onsite operator, takes its own
// position and identity, and records the original's identity as AliasID.
// Aliasing an alias records the immediate original, not the transitive root.
func (l *Lattice) AddAlias(aliasName, originalName string, position r3.Vec) error {
	original, err := l.Sublattice(originalName)
	if err != nil {
		return err
	}
	id, err := l.registerSublattice(aliasName)
	if err != nil {
		return err
	}
	l.sublattices = append(l.sublattices, Sublattice{
		Name:     aliasName,
		Position: position,
		Energy:   original.Energy,
		UniqueID: id,
		AliasID:  original.UniqueID,
	})
	l.subIDs[aliasName] = id

	return nil
}

// Sublattice returns a read-only view of the sublattice registered under
// name, or ErrSublatticeNotFound.
func (l *Lattice) Sublattice(name string) (*Sublattice, error) {
	id, ok := l.subIDs[name]
	if !ok {
		return nil, fmt.Errorf("lattice: no sublattice named %q: %w", name, ErrSublatticeNotFound)
	}

	return &l.sublattices[id], nil
}

// SublatticeByID returns a read-only view of the sublattice with the given
// dense identity, or ErrSublatticeNotFound. Complexity: O(1).
func (l *Lattice) SublatticeByID(id SubID) (*Sublattice, error) {
	if id < 0 || int(id) >= len(l.sublattices) {
		return nil, fmt.Errorf("lattice: no sublattice with ID %d: %w", id, ErrSublatticeNotFound)
	}

	return &l.sublattices[id], nil
}
