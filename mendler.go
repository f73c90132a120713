// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Mendler-style schemes: recursion without Recursive/Corecursive
// capabilities and without a pattern map. The step function receives
// the recursive call itself as a value and must treat the positions of
// the layer it is handed as abstract, consuming them only through that
// call. Abstractness is a trust contract — Go cannot quantify over the
// position type at the call site.

// MCata is Mendler-style iteration over the direct encoding. The step
// function combines one layer FF = F[Fix], folding recursive positions
// only via rec.
func MCata[FF, C any](step func(rec func(Fix) C, layer FF) C) func(Fix) C {
	var rec func(Fix) C
	rec = func(t Fix) C {
		return step(rec, Out[FF](t))
	}
	return rec
}

// MAna is Mendler-style coiteration into the direct encoding. The step
// function produces one layer FF = F[Fix], filling recursive positions
// only via emit.
func MAna[FF, S any](step func(emit func(S) Fix, seed S) FF) func(S) Fix {
	var emit func(S) Fix
	emit = func(s S) Fix {
		return In(step(emit, s))
	}
	return emit
}
