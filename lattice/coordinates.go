package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// halfCellBound limits the origin offset in lattice-vector coordinates:
// half a primitive vector plus tolerance, so every position keeps an
// unambiguous cell assignment.
const halfCellBound = 0.55

// CalcPosition returns the Cartesian position of the unit cell at index,
// shifted to the named sublattice site. An empty sublattice name addresses
// the cell origin; an unknown name fails with ErrSublatticeNotFound.
func (l *Lattice) CalcPosition(index Index3, sublatticeName string) (r3.Vec, error) {
	position := l.offset
	for i, v := range l.vectors {
		position = r3.Add(position, r3.Scale(float64(index[i]), v))
	}
	if sublatticeName != "" {
		sub, err := l.Sublattice(sublatticeName)
		if err != nil {
			return r3.Vec{}, err
		}
		position = r3.Add(position, sub.Position)
	}

	return position, nil
}

// TranslateCoordinates converts a Cartesian position into lattice-vector
// coordinates by solving basis·v = p in the least-squares sense, where the
// basis columns are the leading NDim components of the primitive vectors.
// Coordinates beyond NDim are zero.
func (l *Lattice) TranslateCoordinates(position r3.Vec) (r3.Vec, error) {
	n := l.NDim()
	basis := mat.NewDense(n, n, nil)
	for j, v := range l.vectors {
		for i := 0; i < n; i++ {
			basis.Set(i, j, vecComponent(v, i))
		}
	}
	p := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		p.SetVec(i, vecComponent(position, i))
	}

	var qr mat.QR
	qr.Factorize(basis)
	var solved mat.VecDense
	if err := qr.SolveVecTo(&solved, false, p); err != nil {
		return r3.Vec{}, fmt.Errorf("lattice: translate coordinates: %w", err)
	}

	var v r3.Vec
	for i := 0; i < n; i++ {
		setVecComponent(&v, i, solved.AtVec(i))
	}

	return v, nil
}

// SetOffset moves the lattice origin to position. The offset must resolve
// to lattice-vector coordinates of magnitude at most halfCellBound along
// every axis; otherwise fails with ErrOffsetOutOfBounds and the origin is
// unchanged.
func (l *Lattice) SetOffset(position r3.Vec) error {
	v, err := l.TranslateCoordinates(position)
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if math.Abs(vecComponent(v, i)) > halfCellBound {
			return fmt.Errorf("lattice: offset %v: %w", position, ErrOffsetOutOfBounds)
		}
	}
	l.offset = position

	return nil
}

// vecComponent returns the i-th Cartesian component of v.
func vecComponent(v r3.Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// setVecComponent sets the i-th Cartesian component of v.
func setVecComponent(v *r3.Vec, i int, value float64) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}
