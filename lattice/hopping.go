package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bravais/cmatrix"
)

// anonymousFamilyFormat names autogenerated hopping families; the suffix is
// the family count at registration time.
const anonymousFamilyFormat = "__anonymous__%d"

// RegisterHoppingEnergy stores a named hopping energy operator with an
// empty term list. Scalar energies are expressed with cmatrix.Scalar.
// Fails with ErrBlankName, ErrTooManyHoppings, or ErrHoppingExists.
func (l *Lattice) RegisterHoppingEnergy(name string, energy *mat.CDense) error {
	if name == "" {
		return fmt.Errorf("lattice: hopping name: %w", ErrBlankName)
	}
	if len(l.hoppings) > maxHopID {
		return fmt.Errorf("lattice: more than %d hopping energies: %w", maxHopID+1, ErrTooManyHoppings)
	}
	if _, ok := l.hopIDs[name]; ok {
		return fmt.Errorf("lattice: hopping %q: %w", name, ErrHoppingExists)
	}

	id := HopID(len(l.hoppings))
	l.hoppings = append(l.hoppings, HoppingFamily{Name: name, Energy: energy, UniqueID: id})
	l.hopIDs[name] = id

	return nil
}

// AddHopping appends a geometric term to the named hopping family:
// a displacement in primitive-vector units from sublattice fromName to
// sublattice toName.
//
// The family operator's row count must equal the source sublattice's
// orbital count and its column count the destination's. A term whose
// (displacement, endpoints) triple - or translational conjugate thereof -
// is already registered in any family fails with ErrDuplicateHopping, so
// the hopping graph carries at most one undirected edge per displacement
// and endpoint pair.
func (l *Lattice) AddHopping(relativeIndex Index3, fromName, toName, familyName string) error {
	if fromName == toName && relativeIndex.IsZero() {
		return fmt.Errorf("lattice: hopping from %q to itself: %w", fromName, ErrZeroDisplacement)
	}

	from, err := l.Sublattice(fromName)
	if err != nil {
		return err
	}
	to, err := l.Sublattice(toName)
	if err != nil {
		return err
	}
	family, err := l.HoppingFamily(familyName)
	if err != nil {
		return err
	}

	rows, cols := family.Energy.Dims()
	if from.NumOrbitals() != rows || to.NumOrbitals() != cols {
		return fmt.Errorf(
			"lattice: from %q (%d) to %q (%d) with matrix %q (%d, %d): %w",
			fromName, from.NumOrbitals(), toName, to.NumOrbitals(),
			familyName, rows, cols, ErrSizeMismatch,
		)
	}

	if l.hoppingExists(relativeIndex, from.UniqueID, to.UniqueID) {
		return fmt.Errorf("lattice: hopping %v from %q to %q: %w",
			relativeIndex, fromName, toName, ErrDuplicateHopping)
	}

	l.hoppings[family.UniqueID].Terms = append(l.hoppings[family.UniqueID].Terms, HoppingTerm{
		RelativeIndex: relativeIndex,
		From:          from.UniqueID,
		To:            to.UniqueID,
	})

	return nil
}

// AddHoppingEnergy adds a hopping term keyed by energy value rather than
// family name. An existing family with an exactly equal operator is reused;
// otherwise a fresh autonamed family is registered first. This keeps the
// family catalog deduplicated by value while sparing callers manual family
// management.
func (l *Lattice) AddHoppingEnergy(relativeIndex Index3, fromName, toName string, energy *mat.CDense) error {
	var familyName string
	for i := range l.hoppings {
		if cmatrix.Equal(l.hoppings[i].Energy, energy) {
			familyName = l.hoppings[i].Name
			break
		}
	}
	if familyName == "" {
		familyName = fmt.Sprintf(anonymousFamilyFormat, len(l.hoppings))
		if err := l.RegisterHoppingEnergy(familyName, energy); err != nil {
			return err
		}
	}

	return l.AddHopping(relativeIndex, fromName, toName, familyName)
}

// HoppingFamily returns a read-only view of the family registered under
// name, or ErrHoppingNotFound.
func (l *Lattice) HoppingFamily(name string) (*HoppingFamily, error) {
	id, ok := l.hopIDs[name]
	if !ok {
		return nil, fmt.Errorf("lattice: no hopping named %q: %w", name, ErrHoppingNotFound)
	}

	return &l.hoppings[id], nil
}

// HoppingFamilyByID returns a read-only view of the family with the given
// dense identity, or ErrHoppingNotFound. Complexity: O(1).
func (l *Lattice) HoppingFamilyByID(id HopID) (*HoppingFamily, error) {
	if id < 0 || int(id) >= len(l.hoppings) {
		return nil, fmt.Errorf("lattice: no hopping with ID %d: %w", id, ErrHoppingNotFound)
	}

	return &l.hoppings[id], nil
}

// hoppingExists reports whether the candidate term or its translational
// conjugate (-relativeIndex, to, from) is already registered in any family.
// Linear in the total term count; runs only at construction time.
func (l *Lattice) hoppingExists(relativeIndex Index3, from, to SubID) bool {
	for i := range l.hoppings {
		for _, h := range l.hoppings[i].Terms {
			if h.RelativeIndex == relativeIndex && h.From == from && h.To == to {
				return true
			}
			if h.RelativeIndex.Neg() == relativeIndex && h.To == from && h.From == to {
				return true
			}
		}
	}

	return false
}
