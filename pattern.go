// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Erased represents a type-erased value inside the knot types.
// Fix, Mu, Nu, Hist and Next use Erased interiors so that fixed points
// of arbitrary pattern representations stay expressible without
// higher-kinded types. Concrete types are recovered via type assertions
// at documented boundaries.
type Erased = any

// Map is one instantiation of a pattern representation's
// structure-preserving map: it applies f to every recursive position of
// fa, changing nothing else. FA is F[A], FB is F[B] for the client's
// pattern type F.
//
// A client writes a single generic map function for its pattern type
// and passes the instantiation each scheme's signature names. The
// functor laws are a trust contract: mapping the identity must be a
// no-op, and mapping a composition must equal composing the maps.
type Map[FA, FB, A, B any] func(fa FA, f func(A) B) FB

// Algebra combines one pattern layer whose recursive positions already
// hold results into a single result. FA is F[A].
type Algebra[FA, A any] func(FA) A

// Coalgebra expands a seed into one pattern layer whose recursive
// positions hold further seeds. FA is F[A].
type Coalgebra[A, FA any] func(A) FA

// Recursive is the folding capability of a recursive type T: Project
// unrolls the outermost layer into the pattern representation. The
// Base relationship Base(T) = F is carried by the instantiation
// FT = F[T] on the witness declaration itself.
//
// Project is expected to be a representation change in O(1), not a
// deep copy. Witnesses derived from the fixed-point encodings instead
// traverse (see MuProject).
type Recursive[T, FT any] interface {
	Project(t T) FT
}

// Corecursive is the dual capability: Embed rolls one pattern layer
// back up into the recursive type.
type Corecursive[T, FT any] interface {
	Embed(ft FT) T
}

// Base is the combined capability pair. When both methods exist for
// the same T and FT they must be mutually inverse:
//
//	Project(Embed(ft)) == ft and Embed(Project(t)) == t
//
// Violating the round trip is a silent correctness bug with no runtime
// detection; every scheme in the catalogue assumes it.
type Base[T, FT any] interface {
	Recursive[T, FT]
	Corecursive[T, FT]
}

// witness is the Base implementation built from two plain functions.
type witness[T, FT any] struct {
	project func(T) FT
	embed   func(FT) T
}

func (w witness[T, FT]) Project(t T) FT { return w.project(t) }
func (w witness[T, FT]) Embed(ft FT) T  { return w.embed(ft) }

// Witness builds a Base witness from a project/embed pair. The pair
// must satisfy the round-trip contract documented on Base.
func Witness[T, FT any](project func(T) FT, embed func(FT) T) Base[T, FT] {
	return witness[T, FT]{project: project, embed: embed}
}

// Pair is a value at two types at once, used by the paramorphism and
// zygomorphism families and by the pair comonad.
type Pair[A, B any] struct {
	First  A
	Second B
}

// identity is the identity function for any type.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures
// incur.
func identity[A any](a A) A { return a }
