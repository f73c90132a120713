// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Mu is the Boehm–Berarducci (Church) fixed-point encoding: a value
// represented as the result of folding itself with any algebra. No
// direct structural inspection is possible — MuProject is defined in
// terms of fold and embed.
//
// The stored fold runs over erased layers F[Erased] whose positions
// hold the algebra's own results; FoldMu recovers the caller's types
// at each layer. Folding is O(1) dispatch to the captured function,
// not a project-driven traversal.
type Mu struct {
	fold func(alg func(Erased) Erased) Erased
}

// ToMu converts a value of a capability-bearing type into the Church
// encoding. fm is the pattern map at positions T to Erased, producing
// FE = F[Erased] layers for the captured fold.
func ToMu[T, FT, FE any](r Recursive[T, FT], fm Map[FT, FE, T, Erased]) func(T) Mu {
	return func(t T) Mu {
		return Mu{fold: func(alg func(Erased) Erased) Erased {
			var h func(T) Erased
			h = func(u T) Erased {
				return alg(fm(r.Project(u), h))
			}
			return h(t)
		}}
	}
}

// MuEmbed rolls one pattern layer of Mu values up into a Mu.
// FMu is F[Mu], FE is F[Erased].
func MuEmbed[FMu, FE any](fm Map[FMu, FE, Mu, Erased], layer FMu) Mu {
	return Mu{fold: func(alg func(Erased) Erased) Erased {
		return alg(fm(layer, func(m Mu) Erased { return m.fold(alg) }))
	}}
}

// FoldMu folds the Church encoding with alg. The dispatch to the
// stored fold is O(1); fm recovers the caller's layer type at each
// layer the stored fold produces. FE is F[Erased], FR is F[R].
//
// It panics when fm and alg do not match the pattern type the Mu was
// built with.
func FoldMu[FE, FR, R any](m Mu, fm Map[FE, FR, Erased, R], alg Algebra[FR, R]) R {
	out := m.fold(func(layer Erased) Erased {
		fe, ok := layer.(FE)
		if !ok {
			panic("rekur: Mu layer is not the requested pattern type")
		}
		return alg(fm(fe, func(x Erased) R {
			r, ok := x.(R)
			if !ok {
				panic("rekur: Mu position is not the requested result type")
			}
			return r
		}))
	})
	return out.(R)
}

// MuProject unrolls the outermost layer of a Mu, yielding FMu = F[Mu].
// Per Lambek's lemma it is the fold with "map Embed over the layer" as
// the algebra, so unlike the O(1) projection of a concrete recursive
// type it traverses the whole value.
func MuProject[FE, FMu any](fm Map[FE, FMu, Erased, Mu], fmE Map[FMu, FE, Mu, Erased], m Mu) FMu {
	out := m.fold(func(layer Erased) Erased {
		fe, ok := layer.(FE)
		if !ok {
			panic("rekur: Mu layer is not the requested pattern type")
		}
		return fm(fe, func(x Erased) Mu {
			inner, ok := x.(FMu)
			if !ok {
				panic("rekur: Mu position is not the requested layer type")
			}
			return MuEmbed(fmE, inner)
		})
	})
	return out.(FMu)
}

// FromMu converts the Church encoding back into a capability-bearing
// type by folding with its Embed. FE is F[Erased], FT is F[T].
func FromMu[FE, FT, T any](c Corecursive[T, FT], fm Map[FE, FT, Erased, T], m Mu) T {
	return FoldMu(m, fm, Algebra[FT, T](c.Embed))
}

// MuBase returns the ready-made capability pair for Mu at the caller's
// pattern type. Projection traverses (see MuProject); embedding is one
// layer of capture.
func MuBase[FE, FMu any](fmP Map[FE, FMu, Erased, Mu], fmE Map[FMu, FE, Mu, Erased]) Base[Mu, FMu] {
	return Witness(
		func(m Mu) FMu { return MuProject(fmP, fmE, m) },
		func(layer FMu) Mu { return MuEmbed(fmE, layer) },
	)
}
