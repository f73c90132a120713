// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Nu is the coinductive fixed-point encoding: an opaque seed paired
// with a step function from seed to one pattern layer of further
// seeds. Nothing forces full evaluation — the step runs only when
// ProjectNu is called — so Nu can represent values with no base case,
// such as an always-productive stream, as long as consumers observe
// only a finite prefix.
//
// Each Nu exclusively owns its seed and step closure; advancing never
// mutates, it produces fresh Nu values for the next positions.
type Nu struct {
	seed Erased
	step func(Erased) Erased
}

// UnfoldNu captures a coalgebra and a starting seed as a Nu. This is
// the embed-from-step constructor of the encoding: no layer is
// produced until the value is projected. FS is F[S], FNu is F[Nu].
func UnfoldNu[S, FS, FNu any](fm Map[FS, FNu, S, Nu], co Coalgebra[S, FS]) func(S) Nu {
	var step func(Erased) Erased
	step = func(s Erased) Erased {
		return fm(co(s.(S)), func(next S) Nu {
			return Nu{seed: next, step: step}
		})
	}
	return func(s S) Nu {
		return Nu{seed: s, step: step}
	}
}

// ProjectNu advances the seed by exactly one step, yielding one
// pattern layer FNu = F[Nu] whose positions are further suspended Nu
// values. It panics when FNu is not the pattern type the Nu was built
// with.
func ProjectNu[FNu any](n Nu) FNu {
	fnu, ok := n.step(n.seed).(FNu)
	if !ok {
		panic("rekur: Nu layer is not the requested pattern type")
	}
	return fnu
}

// NuEmbed rolls one already-built pattern layer of Nu values up into a
// Nu. The layer itself becomes the seed; projection returns it
// unchanged.
func NuEmbed[FNu any](layer FNu) Nu {
	return Nu{seed: layer, step: identity[Erased]}
}

// NuBase returns the ready-made capability pair for Nu at pattern
// layer type FNu = F[Nu].
func NuBase[FNu any]() Base[Nu, FNu] {
	return Witness(ProjectNu[FNu], NuEmbed[FNu])
}

// ToNu converts a value of a capability-bearing type into the
// coinductive encoding by unfolding from its own Project. The
// conversion is O(1); the source is unrolled on demand.
func ToNu[T, FT, FNu any](r Recursive[T, FT], fm Map[FT, FNu, T, Nu]) func(T) Nu {
	return UnfoldNu[T](fm, r.Project)
}

// FromNu converts the coinductive encoding back into a
// capability-bearing type, forcing full evaluation. It diverges on a
// Nu with no base case. FNu is F[Nu], FT is F[T].
func FromNu[FNu, FT, T any](c Corecursive[T, FT], fm Map[FNu, FT, Nu, T]) func(Nu) T {
	var h func(Nu) T
	h = func(n Nu) T {
		return c.Embed(fm(ProjectNu[FNu](n), h))
	}
	return h
}
