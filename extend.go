// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Paramorphism, apomorphism and zygomorphism: folds and unfolds whose
// combining function sees more than the plain recursive result.

// Para folds t with an algebra that receives, at every recursive
// position, both the untouched original subterm and its folded result.
//
// fm is the pattern map at positions T to Pair[T, R]. Discarding the
// First component of every pair recovers Cata.
func Para[T, FT, FP, R any](r Recursive[T, FT], fm Map[FT, FP, T, Pair[T, R]], alg Algebra[FP, R]) func(T) R {
	var h func(T) R
	h = func(t T) R {
		return alg(fm(r.Project(t), func(sub T) Pair[T, R] {
			return Pair[T, R]{First: sub, Second: h(sub)}
		}))
	}
	return h
}

// Apo unfolds a seed with a coalgebra that may terminate any branch
// early: a Left position carries an already-built subterm embedded
// as-is, a Right position carries a seed to continue from.
//
// fm is the pattern map at positions Either[T, S] to T. Wrapping every
// seed in Right recovers Ana.
func Apo[S, FE, FT, T any](c Corecursive[T, FT], fm Map[FE, FT, Either[T, S], T], co Coalgebra[S, FE]) func(S) T {
	var h func(S) T
	h = func(s S) T {
		return c.Embed(fm(co(s), func(e Either[T, S]) T {
			if built, ok := e.GetLeft(); ok {
				return built
			}
			next, _ := e.GetRight()
			return h(next)
		}))
	}
	return h
}

// Zygo folds t with two algebras in lockstep: aux computes a helper
// value bottom-up, and alg sees at every position the pair of the
// helper value and the main result (mutual recursion in a single
// pass).
//
// fm is the pattern map at positions T to Pair[Aux, R]; fmFst projects
// a pattern layer of pairs down to its helper components for aux.
func Zygo[T, FT, FP, FAux, Aux, R any](
	r Recursive[T, FT],
	fm Map[FT, FP, T, Pair[Aux, R]],
	fmFst Map[FP, FAux, Pair[Aux, R], Aux],
	aux Algebra[FAux, Aux],
	alg Algebra[FP, R],
) func(T) R {
	var h func(T) Pair[Aux, R]
	h = func(t T) Pair[Aux, R] {
		fp := fm(r.Project(t), h)
		a := aux(fmFst(fp, func(p Pair[Aux, R]) Aux { return p.First }))
		return Pair[Aux, R]{First: a, Second: alg(fp)}
	}
	return func(t T) R { return h(t).Second }
}
