// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// Fix is the direct fixed-point encoding: one pattern layer whose
// recursive positions hold further Fix values. It is usable for any
// pattern representation without a bespoke capability declaration —
// the layer type F[Fix] is an ordinary concrete Go type.
//
// Fix values are immutable once constructed. Equality, ordering and
// printing are whatever the client's pattern type supports
// structurally, lifted one level; reflect.DeepEqual compares two Fix
// values layer by layer.
type Fix struct {
	layer Erased
}

// In rolls one pattern layer up into a Fix. FF is F[Fix].
func In[FF any](layer FF) Fix {
	return Fix{layer: layer}
}

// Out unrolls the outermost layer of a Fix. It panics when FF is not
// the pattern type the value was built with.
func Out[FF any](t Fix) FF {
	ff, ok := t.layer.(FF)
	if !ok {
		panic("rekur: Fix layer is not the requested pattern type")
	}
	return ff
}

// FixBase returns the ready-made capability pair for Fix at pattern
// layer type FF = F[Fix]. Out and In are mutually inverse by
// construction, so the round-trip contract holds for free.
func FixBase[FF any]() Base[Fix, FF] {
	return Witness(Out[FF], In[FF])
}
