// Package lattice builds a canonical, symmetry-aware description of a
// periodic crystal lattice: the skeleton consumed by a tight-binding
// Hamiltonian assembly stage.
//
// A Lattice is declared from 1-3 primitive translation vectors, then
// populated with:
//
//   - Sublattices: named basis sites inside the unit cell, each carrying an
//     onsite energy operator over its internal orbital space
//     (AddSublattice, AddAlias)
//   - Hopping families: named reusable energy operators connecting the
//     orbital spaces of two sublattice classes (RegisterHoppingEnergy)
//   - Hopping terms: geometric instances of a family, a lattice-vector
//     displacement between two sublattices (AddHopping, AddHoppingEnergy)
//
// Registration validates every declaration (Hermiticity or triangularity of
// onsite operators, dimensional consistency of hopping operators,
// translational-symmetry deduplication of edges) and assigns dense integer
// identities in insertion order. The catalogs are append-only: a failed
// call leaves the lattice exactly as it was, and nothing is ever renumbered
// or removed.
//
// OptimizedStructure folds the catalogs into a dense, identity-indexed,
// bidirectional adjacency array, the artifact downstream Hamiltonian
// assembly iterates over. CalcPosition and TranslateCoordinates convert
// between unit-cell indices, Cartesian positions, and lattice-vector
// coordinates.
//
// A Lattice is not safe for concurrent mutation. Construct it fully in one
// goroutine; afterwards all queries (lookups, OptimizedStructure,
// TranslateCoordinates) are read-only and may be shared freely.
package lattice
