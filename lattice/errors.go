package lattice

import "errors"

// Sentinel errors for lattice construction and lookup. Operations attach
// context (names, dimensions, identities) by wrapping these with
// fmt.Errorf("lattice: ...: %w", ErrX); match with errors.Is.
var (
	// ErrNoVectors indicates construction without a non-zero first primitive vector.
	ErrNoVectors = errors.New("lattice: at least one non-zero primitive vector is required")

	// ErrTooManyVectors indicates more than three primitive vectors.
	ErrTooManyVectors = errors.New("lattice: at most three primitive vectors are supported")

	// ErrBlankName indicates an empty sublattice or hopping family name.
	ErrBlankName = errors.New("lattice: name must not be blank")

	// ErrSublatticeExists indicates a duplicate sublattice name.
	ErrSublatticeExists = errors.New("lattice: sublattice already exists")

	// ErrHoppingExists indicates a duplicate hopping family name.
	ErrHoppingExists = errors.New("lattice: hopping family already exists")

	// ErrSublatticeNotFound indicates a lookup by unknown sublattice name or ID.
	ErrSublatticeNotFound = errors.New("lattice: sublattice not found")

	// ErrHoppingNotFound indicates a lookup by unknown hopping family name or ID.
	ErrHoppingNotFound = errors.New("lattice: hopping family not found")

	// ErrTooManySublattices indicates exhaustion of the sublattice identity space.
	ErrTooManySublattices = errors.New("lattice: exceeded maximum number of unique sublattices")

	// ErrTooManyHoppings indicates exhaustion of the hopping family identity space.
	ErrTooManyHoppings = errors.New("lattice: exceeded maximum number of unique hopping energies")

	// ErrNonSquareOnsite indicates an onsite operator that is not square.
	ErrNonSquareOnsite = errors.New("lattice: onsite energy must be a real vector or a square matrix")

	// ErrComplexDiagonal indicates an onsite operator with a complex main diagonal.
	ErrComplexDiagonal = errors.New("lattice: main diagonal of the onsite energy must be real")

	// ErrNonHermitianOnsite indicates an onsite operator that is neither
	// upper triangular nor exactly Hermitian.
	ErrNonHermitianOnsite = errors.New("lattice: onsite energy must be upper triangular or Hermitian")

	// ErrZeroDisplacement indicates a same-sublattice hopping with zero
	// relative index; that term belongs in the onsite energy instead.
	ErrZeroDisplacement = errors.New("lattice: hopping to the same sublattice requires a non-zero relative index; use onsite energy instead")

	// ErrSizeMismatch indicates a hopping operator whose dimensions do not
	// match the orbital counts of its endpoint sublattices.
	ErrSizeMismatch = errors.New("lattice: hopping size mismatch")

	// ErrDuplicateHopping indicates a hopping term that already exists,
	// either directly or as a translational conjugate.
	ErrDuplicateHopping = errors.New("lattice: hopping already exists")

	// ErrOffsetOutOfBounds indicates an origin offset further than half the
	// length of a primitive vector along some lattice axis.
	ErrOffsetOutOfBounds = errors.New("lattice: offset must not exceed half the length of a primitive vector")
)
