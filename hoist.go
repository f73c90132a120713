// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Structure-changing conversions between fixed points: Hoist rewrites
// the pattern representation through a natural transformation, Refix
// changes only the representation of the fixed point itself.

// Hoist rebuilds a value of a source type under a different pattern
// representation: the source is folded with the target's Embed, with
// the natural transformation nat inserted at every layer.
//
// nat must be natural — it may rearrange a layer's shape but must not
// inspect or invent the values at recursive positions. FSS is
// Fs[S], FSD is Fs[D], FTD is Ft[D] for source pattern Fs and target
// pattern Ft.
func Hoist[S, FSS, FSD, FTD, D any](
	r Recursive[S, FSS],
	c Corecursive[D, FTD],
	fm Map[FSS, FSD, S, D],
	nat func(FSD) FTD,
) func(S) D {
	var h func(S) D
	h = func(s S) D {
		return c.Embed(nat(fm(r.Project(s), h)))
	}
	return h
}

// HoistFix is Hoist specialized to the direct encoding on both sides:
// it rebuilds a Fix of pattern F into a Fix of pattern G, applying nat
// at every layer. FF is F[Fix], GF is G[Fix].
func HoistFix[FF, GF any](fm Map[FF, FF, Fix, Fix], nat func(FF) GF) func(Fix) Fix {
	var h func(Fix) Fix
	h = func(t Fix) Fix {
		return In(nat(fm(Out[FF](t), h)))
	}
	return h
}

// Refix converts between two fixed-point representations of the same
// pattern: a pure representation change with no transformation. It is
// Hoist with the identity natural transformation, which fuses to a
// plain refold of Project into Embed.
func Refix[S, FSS, FD, D any](r Recursive[S, FSS], c Corecursive[D, FD], fm Map[FSS, FD, S, D]) func(S) D {
	return Hylo(fm, Algebra[FD, D](c.Embed), r.Project)
}
