// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// The core scheme trio. Hylo is the engine; Cata and Ana are the two
// halves obtained by plugging Project in as the coalgebra or Embed in
// as the algebra.

// Hylo fuses an unfold and a fold into a single pass: every layer the
// coalgebra produces is consumed by the algebra immediately, and no
// intermediate fixed-point value is materialized.
//
// Fusion law: Hylo(fm, alg, co) computes the same result as
// Cata(alg) applied to Ana(co) whenever both sides terminate, without
// the intermediate allocation.
//
// Termination is solely the coalgebra's business: a coalgebra that
// never reaches a layer without recursive positions makes the returned
// function diverge.
func Hylo[S, FS, FR, R any](fm Map[FS, FR, S, R], alg Algebra[FR, R], co Coalgebra[S, FS]) func(S) R {
	var h func(S) R
	h = func(s S) R {
		return alg(fm(co(s), h))
	}
	return h
}

// Cata folds t bottom-up: the outermost layer is unrolled via Project,
// every recursive position is transformed first (post-order), then alg
// combines the layer with all positions already replaced by results.
//
// fm is the pattern map at positions T to R. Folding with Embed as the
// algebra is the identity on T.
func Cata[T, FT, FR, R any](r Recursive[T, FT], fm Map[FT, FR, T, R], alg Algebra[FR, R]) func(T) R {
	return Hylo(fm, alg, r.Project)
}

// Ana unfolds a seed top-down: co produces one layer, every position
// holding a new seed is expanded recursively (pre-order), and Embed
// rolls the finished layer up.
//
// On a strict target this terminates only if co eventually produces a
// layer with no recursive positions; use the Nu encoding for
// structures without a base case.
func Ana[S, FS, FT, T any](c Corecursive[T, FT], fm Map[FS, FT, S, T], co Coalgebra[S, FS]) func(S) T {
	return Hylo(fm, Algebra[FT, T](c.Embed), co)
}

// Fold is an alias spelling of Cata.
func Fold[T, FT, FR, R any](r Recursive[T, FT], fm Map[FT, FR, T, R], alg Algebra[FR, R]) func(T) R {
	return Cata(r, fm, alg)
}

// Unfold is an alias spelling of Ana.
func Unfold[S, FS, FT, T any](c Corecursive[T, FT], fm Map[FS, FT, S, T], co Coalgebra[S, FS]) func(S) T {
	return Ana(c, fm, co)
}

// Refold is an alias spelling of Hylo.
func Refold[S, FS, FR, R any](fm Map[FS, FR, S, R], alg Algebra[FR, R], co Coalgebra[S, FS]) func(S) R {
	return Hylo(fm, alg, co)
}
