// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Elgot (co)algebras: refolds where one side can observe or preempt
// the other in a single step.

// Elgot runs a short-circuiting refold: at every step the coalgebra
// either stops the whole branch with a finished result (Left) or
// produces one more layer to expand and fold (Right).
//
// This is the early-exit form of Hylo: a plain Hylo is recovered by a
// coalgebra that always answers Right.
func Elgot[S, FS, FR, R any](fm Map[FS, FR, S, R], alg Algebra[FR, R], co func(S) Either[R, FS]) func(S) R {
	var h func(S) R
	h = func(s S) R {
		e := co(s)
		if done, ok := e.GetLeft(); ok {
			return done
		}
		fs, _ := e.GetRight()
		return alg(fm(fs, h))
	}
	return h
}

// Coelgot runs a refold whose algebra sees, at every step, both the
// original seed that produced the layer and the folded remainder.
func Coelgot[S, FS, FR, R any](fm Map[FS, FR, S, R], alg func(seed S, layer FR) R, co Coalgebra[S, FS]) func(S) R {
	var h func(S) R
	h = func(s S) R {
		return alg(s, fm(co(s), h))
	}
	return h
}
