// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rekur provides recursion-scheme combinators in Go: named,
// composable traversal operators over self-referential data structures
// that replace hand-written recursion with law-abiding algorithms.
//
// A client declares, once per recursive type T, its pattern
// representation F — an ordinary generic type F[X] that is one unrolled
// layer of T with the recursive positions replaced by the placeholder X.
// The catalogue of schemes (fold, unfold, refold and their generalized
// variants) is then directly callable against that declaration.
//
// # Design Philosophy
//
// rekur provides:
//   - Minimal but complete interfaces for projection, embedding, and
//     structure-preserving mapping
//   - A fully typed public surface: every scheme names the exact map
//     instantiations its engine needs, and type inference recovers all
//     type arguments from the function values passed
//   - Type-erased knot types ([Fix], [Mu], [Nu], [Hist], [Next]) so that
//     fixed points of arbitrary pattern representations are expressible
//     without higher-kinded types
//
// # Pattern Representations
//
// The one capability every pattern representation must supply is a
// structure-preserving map over its recursive positions:
//
//   - [Map]: func(fa FA, f func(A) B) FB — one instantiation of the
//     client's single generic map function
//
// Mapping the identity function must be a no-op, and mapping a
// composition must equal composing the maps. Schemes silently produce
// wrong results for representations that break these laws.
//
// # Capabilities
//
// The relationship Base(T) = F is witnessed by two dual single-method
// interfaces:
//
//   - [Recursive]: Project(T) FT — unroll the outermost layer
//   - [Corecursive]: Embed(FT) T — the inverse rolling-up
//
// When both exist for the same T, Project and Embed must be mutually
// inverse (Lambek's lemma). [Witness] builds a combined [Base] witness
// from two plain functions.
//
// # Core Schemes
//
//   - [Cata]: bottom-up fold driven by Project
//   - [Ana]: top-down unfold finished by Embed
//   - [Hylo]: fused unfold-then-fold with no intermediate structure
//
// [Fold], [Unfold] and [Refold] are alias spellings of the same three
// operations.
//
// # Extended Schemes
//
//   - [Para] / [Apo]: access to, or early embedding of, the original
//     subterm ([Either] selects between an already-built value and a
//     seed to continue from)
//   - [Zygo]: a helper algebra folded in lockstep with the main one
//   - [Histo] / [Futu]: access to every previously computed result
//     ([Hist]), or emission of several structure layers at once ([Next])
//   - [Chrono]: the fusion of the previous two
//   - [MCata] / [MAna]: Mendler-style schemes that need no capability
//     declaration and operate directly on [Fix]
//   - [Elgot] / [Coelgot]: short-circuiting refolds
//
// # Distributive Laws
//
// [GCata], [GAna] and [GHylo] generalize the core trio over an auxiliary
// comonadic or monadic structure, threaded through every recursive step
// by an explicit distributive law describing how that structure commutes
// with one pattern layer. The extended schemes above are specializations
// obtained from canonical laws: [DistPara], [DistZygo], [DistHisto],
// [DistFutu], with [DistCata] and [DistAna] recovering the plain trio.
// [Comonad] and [Monad] are the operation dictionaries of the auxiliary
// structure at the instantiations a single scheme run needs.
//
// # Fixed-Point Encodings
//
// Three ready-made encodings of "the recursive closure of F", usable for
// any pattern representation without a bespoke capability declaration:
//
//   - [Fix]: direct — one layer of F whose positions hold further Fix
//     values ([In], [Out], [FixBase])
//   - [Mu]: Boehm–Berarducci — a value represented as the result of
//     folding itself; [FoldMu] is O(1) dispatch, [MuProject] is defined
//     in terms of fold and embed ([ToMu], [FromMu], [MuBase])
//   - [Nu]: coinductive — an opaque seed plus a step function advanced
//     one layer at a time, on demand; supports values with no base case
//     ([UnfoldNu], [ProjectNu], [NuBase])
//
// [Hoist] and [Refix] translate between pattern representations or
// between encodings via a natural transformation.
//
// # Contracts
//
// The package has no error values. Functor laws, the Project/Embed round
// trip, naturality of distributive laws, and termination of supplied
// coalgebras are trust contracts: violations surface as silently wrong
// results or non-termination, never as reported errors. The only
// runtime checks are the typed recovery points of the erased knot types
// ([Out], [HistLayer], [NextLayer], [ProjectNu]), which panic with a
// rekur-prefixed message when handed the wrong pattern type.
package rekur
