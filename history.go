// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Histomorphism, futumorphism and chronomorphism, together with their
// two knot types: Hist remembers every previously computed result
// along the path to the root, Next lets one unfolding step declare
// several structure layers at once.

// Hist is one node of the annotated-history structure: a result that
// has already been computed, plus one pattern layer of deeper history
// nodes. The layer holds F[*Hist[A]] for the client's pattern type F
// and is recovered with HistLayer.
//
// Hist values are immutable once constructed. The history grows during
// a histomorphism's single pass and is discarded when the call
// returns.
type Hist[A any] struct {
	// Value is the result computed at this node.
	Value A

	layer Erased
}

// HistLayer returns the deeper history layer of h as the caller's
// pattern type FH = F[*Hist[A]]. It panics when FH is not the pattern
// type the history was built with.
func HistLayer[FH, A any](h *Hist[A]) FH {
	fh, ok := h.layer.(FH)
	if !ok {
		panic("rekur: history layer is not the requested pattern type")
	}
	return fh
}

// Histo folds t with an algebra that sees, at every recursive
// position, the entire history of prior results along the path rather
// than just the immediate child's result. FH is F[*Hist[A]].
//
// Typical use is a dynamic-programming recurrence: an algebra over an
// unbounded natural-number representation can reference the result two
// steps back without recomputing it.
func Histo[T, FT, FH, A any](r Recursive[T, FT], fm Map[FT, FH, T, *Hist[A]], alg Algebra[FH, A]) func(T) A {
	var h func(T) *Hist[A]
	h = func(t T) *Hist[A] {
		fh := fm(r.Project(t), h)
		return &Hist[A]{Value: alg(fh), layer: fh}
	}
	return func(t T) A { return h(t).Value }
}

// Next is the layered-future structure: either a plain seed to
// continue unfolding from, or one pattern layer wrapping further Next
// values. A futumorphism coalgebra returns pattern layers of Next,
// letting one step declare more than one layer at once.
type Next[S any] struct {
	seed  S
	layer Erased
	more  bool
}

// Continue makes a Next that resumes normal unfolding from seed.
func Continue[S any](seed S) *Next[S] {
	return &Next[S]{seed: seed}
}

// Layer makes a Next that declares one more pattern layer directly.
// FN is F[*Next[S]] for the client's pattern type F.
func Layer[S, FN any](layer FN) *Next[S] {
	return &Next[S]{layer: layer, more: true}
}

// Seed returns the plain seed and true when n resumes normal
// unfolding, or zero and false when n declares a further layer.
func (n *Next[S]) Seed() (S, bool) {
	if n.more {
		var zero S
		return zero, false
	}
	return n.seed, true
}

// NextLayer returns the declared pattern layer of n as the caller's
// pattern type FN = F[*Next[S]]. It panics when n is a plain seed or
// when FN is not the pattern type n was built with.
func NextLayer[FN, S any](n *Next[S]) FN {
	fn, ok := n.layer.(FN)
	if !ok {
		panic("rekur: future layer is not the requested pattern type")
	}
	return fn
}

// Futu unfolds a seed with a coalgebra that may emit several structure
// layers in one step: positions of the returned layer are Next values,
// each either a seed to continue from or another declared layer.
// FN is F[*Next[S]].
func Futu[S, FN, FT, T any](c Corecursive[T, FT], fm Map[FN, FT, *Next[S], T], co Coalgebra[S, FN]) func(S) T {
	var h func(S) T
	var build func(n *Next[S]) T
	build = func(n *Next[S]) T {
		if s, ok := n.Seed(); ok {
			return h(s)
		}
		return c.Embed(fm(NextLayer[FN](n), build))
	}
	h = func(s S) T {
		return c.Embed(fm(co(s), build))
	}
	return h
}

// Chrono fuses Futu and Histo into a single pass: the coalgebra may
// emit several layers on the way down, and the algebra sees the full
// history of results on the way up. No intermediate fixed-point value
// is materialized.
//
// FN is F[*Next[S]], FH is F[*Hist[B]]; fm is the single pattern map
// instantiation the fused engine needs.
func Chrono[S, FN, FH, B any](fm Map[FN, FH, *Next[S], *Hist[B]], alg Algebra[FH, B], co Coalgebra[S, FN]) func(S) B {
	var build func(n *Next[S]) *Hist[B]
	build = func(n *Next[S]) *Hist[B] {
		var fh FH
		if s, ok := n.Seed(); ok {
			fh = fm(co(s), build)
		} else {
			fh = fm(NextLayer[FN](n), build)
		}
		return &Hist[B]{Value: alg(fh), layer: fh}
	}
	return func(s S) B { return build(Continue(s)).Value }
}
