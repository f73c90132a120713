// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur

// The distributive-law framework. GCata, GAna and GHylo behave exactly
// like their plain counterparts but thread an auxiliary structure — a
// comonad for folds, a monad for unfolds — through every recursive
// step. An explicit distributive law describes how that structure
// commutes with one pattern layer.
//
// A supplied law must be a genuine natural transformation and must
// preserve the auxiliary structure's identity and composition laws;
// violations produce silently wrong results.
//
// The extended schemes are specializations: Histo is GCata with
// DistHisto and HistComonad, Futu is GAna with DistFutu and NextMonad,
// Para and Zygo are GCata with DistPara/DistZygo and PairComonad, Apo
// is GAna with DistApo and EitherMonad. DistCata and DistAna recover
// the plain trio through the identity dictionaries.

// Comonad is the dictionary of comonad operations a generalized fold
// needs, at the instantiations of one scheme run. For auxiliary
// structure W and result type A: WA is W[A], WWA is W[W[A]], WFWA is
// W[F[W[A]]], FWA is F[W[A]].
type Comonad[WA, WWA, WFWA, FWA, A any] struct {
	// Map applies the algebra under one W layer.
	Map Map[WFWA, WA, FWA, A]

	// Extract reads the focused value out of the context.
	Extract func(WA) A

	// Duplicate nests the context inside itself.
	Duplicate func(WA) WWA
}

// Monad is the dictionary of monad operations a generalized unfold
// needs, at the instantiations of one scheme run. For auxiliary
// structure M and seed type S: MS is M[S], MMS is M[M[S]], MFMS is
// M[F[M[S]]], FMS is F[M[S]].
type Monad[MS, MMS, MFMS, FMS, S any] struct {
	// Map applies the coalgebra under one M layer.
	Map Map[MS, MFMS, S, FMS]

	// Unit lifts a plain seed into the structure.
	Unit func(S) MS

	// Join collapses one level of nesting.
	Join func(MMS) MS
}

// GCata is the generalized catamorphism: a fold whose algebra sees its
// recursive positions wrapped in the auxiliary comonadic structure W,
// with dist describing how W commutes with one pattern layer.
//
// dist is used at position type W[A]: it turns F[W[W[A]]] into
// W[F[W[A]]]. fm is the pattern map at positions T to W[W[A]].
func GCata[T, FT, FWWA, WFWA, FWA, WA, WWA, A any](
	r Recursive[T, FT],
	fm Map[FT, FWWA, T, WWA],
	dist func(FWWA) WFWA,
	w Comonad[WA, WWA, WFWA, FWA, A],
	alg Algebra[FWA, A],
) func(T) A {
	var h func(T) WA
	h = func(t T) WA {
		return w.Map(dist(fm(r.Project(t), func(sub T) WWA {
			return w.Duplicate(h(sub))
		})), alg)
	}
	return func(t T) A { return w.Extract(h(t)) }
}

// GAna is the generalized anamorphism: an unfold whose coalgebra emits
// its new seeds wrapped in the auxiliary monadic structure M, with
// dist describing how M commutes with one pattern layer.
//
// dist is used at position type M[S]: it turns M[F[M[S]]] into
// F[M[M[S]]]. fm is the pattern map at positions M[M[S]] to T.
func GAna[S, MS, MMS, MFMS, FMS, FMMS, FT, T any](
	c Corecursive[T, FT],
	fm Map[FMMS, FT, MMS, T],
	dist func(MFMS) FMMS,
	m Monad[MS, MMS, MFMS, FMS, S],
	co Coalgebra[S, FMS],
) func(S) T {
	var h func(MS) T
	h = func(ms MS) T {
		return c.Embed(fm(dist(m.Map(ms, co)), func(mms MMS) T {
			return h(m.Join(mms))
		}))
	}
	return func(s S) T { return h(m.Unit(s)) }
}

// GHylo is the generalized hylomorphism, fusing GAna into GCata with
// no intermediate fixed-point value. wdist and mdist are the two
// distributive laws at the position types the fused engine needs
// (W[B] and M[S] respectively).
func GHylo[S, MS, MMS, MFMS, FMS, FMMS, WB, WWB, WFWB, FWB, FWWB, B any](
	fm Map[FMMS, FWWB, MMS, WWB],
	wdist func(FWWB) WFWB,
	mdist func(MFMS) FMMS,
	w Comonad[WB, WWB, WFWB, FWB, B],
	m Monad[MS, MMS, MFMS, FMS, S],
	alg Algebra[FWB, B],
	co Coalgebra[S, FMS],
) func(S) B {
	var h func(MS) WB
	h = func(ms MS) WB {
		return w.Map(wdist(fm(mdist(m.Map(ms, co)), func(mms MMS) WWB {
			return w.Duplicate(h(m.Join(mms)))
		})), alg)
	}
	return func(s S) B { return w.Extract(h(m.Unit(s))) }
}

// IdentityComonad is the trivial comonad dictionary: no context at
// all. GCata with IdentityComonad and DistCata is Cata.
func IdentityComonad[FA, A any]() Comonad[A, A, FA, FA, A] {
	return Comonad[A, A, FA, FA, A]{
		Map:       func(fa FA, alg func(FA) A) A { return alg(fa) },
		Extract:   identity[A],
		Duplicate: identity[A],
	}
}

// IdentityMonad is the trivial monad dictionary: no effect at all.
// GAna with IdentityMonad and DistAna is Ana.
func IdentityMonad[FS, S any]() Monad[S, S, FS, FS, S] {
	return Monad[S, S, FS, FS, S]{
		Map:  func(s S, co func(S) FS) FS { return co(s) },
		Unit: identity[S],
		Join: identity[S],
	}
}

// DistCata is the identity distributive law for the trivial comonad.
func DistCata[FA any]() func(FA) FA {
	return identity[FA]
}

// DistAna is the identity distributive law for the trivial monad.
func DistAna[FA any]() func(FA) FA {
	return identity[FA]
}

// PairComonad is the environment comonad dictionary: every value
// carries a sibling E alongside. It serves both the paramorphism
// (E is the original subterm) and the zygomorphism (E is the helper
// algebra's value). FWA is F[Pair[E, A]].
func PairComonad[E, FWA, A any]() Comonad[Pair[E, A], Pair[E, Pair[E, A]], Pair[E, FWA], FWA, A] {
	return Comonad[Pair[E, A], Pair[E, Pair[E, A]], Pair[E, FWA], FWA, A]{
		Map: func(p Pair[E, FWA], alg func(FWA) A) Pair[E, A] {
			return Pair[E, A]{First: p.First, Second: alg(p.Second)}
		},
		Extract: func(p Pair[E, A]) A { return p.Second },
		Duplicate: func(p Pair[E, A]) Pair[E, Pair[E, A]] {
			return Pair[E, Pair[E, A]]{First: p.First, Second: p}
		},
	}
}

// DistPara is the original-subterm-pairing law at position type C:
// it rebuilds the untouched subterm with Embed while passing the
// positions through. FTC is F[Pair[T, C]], FT is F[T], FC is F[C].
// GCata with DistPara and PairComonad is Para.
func DistPara[T, FT, FTC, FC, C any](
	c Corecursive[T, FT],
	fmFst Map[FTC, FT, Pair[T, C], T],
	fmSnd Map[FTC, FC, Pair[T, C], C],
) func(FTC) Pair[T, FC] {
	return func(layer FTC) Pair[T, FC] {
		return Pair[T, FC]{
			First:  c.Embed(fmFst(layer, func(p Pair[T, C]) T { return p.First })),
			Second: fmSnd(layer, func(p Pair[T, C]) C { return p.Second }),
		}
	}
}

// DistZygo is the algebra-pairing law at position type C: the helper
// algebra folds the layer's first components while the positions pass
// through. FAC is F[Pair[Aux, C]], FAux is F[Aux], FC is F[C].
// GCata with DistZygo and PairComonad is Zygo.
func DistZygo[Aux, FAux, FAC, FC, C any](
	aux Algebra[FAux, Aux],
	fmFst Map[FAC, FAux, Pair[Aux, C], Aux],
	fmSnd Map[FAC, FC, Pair[Aux, C], C],
) func(FAC) Pair[Aux, FC] {
	return func(layer FAC) Pair[Aux, FC] {
		return Pair[Aux, FC]{
			First:  aux(fmFst(layer, func(p Pair[Aux, C]) Aux { return p.First })),
			Second: fmSnd(layer, func(p Pair[Aux, C]) C { return p.Second }),
		}
	}
}

// HistComonad is the history comonad dictionary at result type A.
// FWA is F[*Hist[A]] (identical to FH; both names appear in the GCata
// instantiation), FHH is F[*Hist[*Hist[A]]], FHFWA is
// F[*Hist[F[*Hist[A]]]].
func HistComonad[FWA, FHH, FHFWA, A any](
	fmMap Map[FHFWA, FWA, *Hist[FWA], *Hist[A]],
	fmDup Map[FWA, FHH, *Hist[A], *Hist[*Hist[A]]],
) Comonad[*Hist[A], *Hist[*Hist[A]], *Hist[FWA], FWA, A] {
	var cmap func(h *Hist[FWA], alg func(FWA) A) *Hist[A]
	cmap = func(h *Hist[FWA], alg func(FWA) A) *Hist[A] {
		return &Hist[A]{
			Value: alg(h.Value),
			layer: fmMap(HistLayer[FHFWA](h), func(sub *Hist[FWA]) *Hist[A] {
				return cmap(sub, alg)
			}),
		}
	}
	var dup func(h *Hist[A]) *Hist[*Hist[A]]
	dup = func(h *Hist[A]) *Hist[*Hist[A]] {
		return &Hist[*Hist[A]]{
			Value: h,
			layer: fmDup(HistLayer[FWA](h), dup),
		}
	}
	return Comonad[*Hist[A], *Hist[*Hist[A]], *Hist[FWA], FWA, A]{
		Map:       cmap,
		Extract:   func(h *Hist[A]) A { return h.Value },
		Duplicate: dup,
	}
}

// DistHisto is the history-annotation law at position type C: every
// value of the layer is annotated with the full history beneath it.
// FHC is F[*Hist[C]], FC is F[C], FHFC is F[*Hist[F[C]]].
// GCata with DistHisto and HistComonad is Histo.
func DistHisto[FHC, FC, FHFC, C any](
	fmEx Map[FHC, FC, *Hist[C], C],
	fmRec Map[FHC, FHFC, *Hist[C], *Hist[FC]],
) func(FHC) *Hist[FC] {
	var d func(layer FHC) *Hist[FC]
	d = func(layer FHC) *Hist[FC] {
		return &Hist[FC]{
			Value: fmEx(layer, func(h *Hist[C]) C { return h.Value }),
			layer: fmRec(layer, func(h *Hist[C]) *Hist[FC] {
				return d(HistLayer[FHC](h))
			}),
		}
	}
	return d
}

// NextMonad is the layered-future monad dictionary at seed type S.
// FMS is F[*Next[S]] (both the coalgebra's layer type and the pattern
// layer inside a Next), FNFMS is F[*Next[F[*Next[S]]]], FNNS is
// F[*Next[*Next[S]]].
func NextMonad[S, FMS, FNFMS, FNNS any](
	fmMap Map[FMS, FNFMS, *Next[S], *Next[FMS]],
	fmJoin Map[FNNS, FMS, *Next[*Next[S]], *Next[S]],
) Monad[*Next[S], *Next[*Next[S]], *Next[FMS], FMS, S] {
	var nmap func(n *Next[S], co func(S) FMS) *Next[FMS]
	nmap = func(n *Next[S], co func(S) FMS) *Next[FMS] {
		if s, ok := n.Seed(); ok {
			return Continue(co(s))
		}
		return Layer[FMS](fmMap(NextLayer[FMS](n), func(sub *Next[S]) *Next[FMS] {
			return nmap(sub, co)
		}))
	}
	var join func(nn *Next[*Next[S]]) *Next[S]
	join = func(nn *Next[*Next[S]]) *Next[S] {
		if n, ok := nn.Seed(); ok {
			return n
		}
		return Layer[S](fmJoin(NextLayer[FNNS](nn), join))
	}
	return Monad[*Next[S], *Next[*Next[S]], *Next[FMS], FMS, S]{
		Map:  nmap,
		Unit: Continue[S],
		Join: join,
	}
}

// DistFutu is the layered-future law at position type C: a future
// whose seeds are pattern layers becomes one pattern layer of futures.
// FC is F[C], FNC is F[*Next[C]], FNFC is F[*Next[FC]].
// GAna with DistFutu and NextMonad is Futu.
func DistFutu[FC, FNC, FNFC, C any](
	fmPure Map[FC, FNC, C, *Next[C]],
	fmRec Map[FNFC, FNC, *Next[FC], *Next[C]],
) func(*Next[FC]) FNC {
	var d func(n *Next[FC]) FNC
	d = func(n *Next[FC]) FNC {
		if layer, ok := n.Seed(); ok {
			return fmPure(layer, Continue[C])
		}
		return fmRec(NextLayer[FNFC](n), func(sub *Next[FC]) *Next[C] {
			return Layer[C](d(sub))
		})
	}
	return d
}

// EitherMonad is the early-exit monad dictionary at seed type S: a
// Left is an already-built value of the target type passing through
// unconsumed. FMS is F[Either[T, S]].
func EitherMonad[T, FMS, S any]() Monad[Either[T, S], Either[T, Either[T, S]], Either[T, FMS], FMS, S] {
	return Monad[Either[T, S], Either[T, Either[T, S]], Either[T, FMS], FMS, S]{
		Map: func(e Either[T, S], co func(S) FMS) Either[T, FMS] {
			return MapEither(e, co)
		},
		Unit: Right[T, S],
		Join: func(ee Either[T, Either[T, S]]) Either[T, S] {
			if t, ok := ee.GetLeft(); ok {
				return Left[T, S](t)
			}
			inner, _ := ee.GetRight()
			return inner
		},
	}
}

// DistApo is the early-embedding law at position type C: an
// already-built subterm is unrolled one layer with Project so its
// positions rejoin the unfold as Lefts. FT is F[T], FC is F[C], FEC is
// F[Either[T, C]]. GAna with DistApo and EitherMonad is Apo.
func DistApo[T, FT, FC, FEC, C any](
	r Recursive[T, FT],
	fmL Map[FT, FEC, T, Either[T, C]],
	fmR Map[FC, FEC, C, Either[T, C]],
) func(Either[T, FC]) FEC {
	return func(e Either[T, FC]) FEC {
		if built, ok := e.GetLeft(); ok {
			return fmL(r.Project(built), Left[T, C])
		}
		layer, _ := e.GetRight()
		return fmR(layer, Right[T, C])
	}
}
