package lattice

import "gonum.org/v1/gonum/spatial/r3"

// Hopping is one directed adjacency record in the optimized structure.
// When IsConjugate is set, the family's energy operator applies as its
// adjoint: the record is the reverse-direction view of a registered term.
type Hopping struct {
	RelativeIndex Index3
	To            SubID
	Family        HopID
	IsConjugate   bool
}

// Site is the optimized per-sublattice entry: position, alias identity, and
// the directed adjacency of the site.
type Site struct {
	Position r3.Vec
	Alias    SubID
	Hoppings []Hopping
}

// OptimizedStructure is the dense, identity-indexed, bidirectional
// derivation of the lattice consumed by Hamiltonian assembly. Index by
// sublattice UniqueID. It holds no identity of its own and is never
// mutated after construction.
type OptimizedStructure []Site

// OptimizedStructure folds the catalogs into adjacency form. Every hopping
// term appears twice: on its source site as stored, and on its destination
// site with negated displacement and IsConjugate set. Deterministic and
// side-effect-free; safe to call repeatedly and cache externally.
// Complexity: O(NSub + total terms).
func (l *Lattice) OptimizedStructure() OptimizedStructure {
	structure := make(OptimizedStructure, len(l.sublattices))

	for i := range l.sublattices {
		sub := &l.sublattices[i]
		structure[sub.UniqueID].Position = sub.Position
		structure[sub.UniqueID].Alias = sub.AliasID
	}

	for i := range l.hoppings {
		family := &l.hoppings[i]
		for _, term := range family.Terms {
			// The destination site sees the opposite relative index.
			structure[term.From].Hoppings = append(structure[term.From].Hoppings, Hopping{
				RelativeIndex: term.RelativeIndex,
				To:            term.To,
				Family:        family.UniqueID,
				IsConjugate:   false,
			})
			structure[term.To].Hoppings = append(structure[term.To].Hoppings, Hopping{
				RelativeIndex: term.RelativeIndex.Neg(),
				To:            term.From,
				Family:        family.UniqueID,
				IsConjugate:   true,
			})
		}
	}

	return structure
}

// MaxHoppings returns, over all sublattices, the maximum number of scalar
// hopping entries a site contributes: the destination-family column counts
// of its adjacency plus its own onsite orbital count minus one (the
// diagonal is the site's own entry). Downstream code uses it to size
// fixed-width scalar-hopping buffers.
func (l *Lattice) MaxHoppings() int {
	result := 0
	for _, site := range l.OptimizedStructure() {
		count := l.sublattices[site.Alias].NumOrbitals() - 1
		for _, h := range site.Hoppings {
			_, cols := l.hoppings[h.Family].Energy.Dims()
			count += cols
		}
		if count > result {
			result = count
		}
	}

	return result
}
