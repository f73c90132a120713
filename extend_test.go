// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/rekur"
)

func TestParaSuffixes(t *testing.T) {
	suffixes := rekur.Para(sliceBase[int]{}, mapListF[int, []int, rekur.Pair[[]int, [][]int]],
		func(l listF[int, rekur.Pair[[]int, [][]int]]) [][]int {
			if !l.cons {
				return [][]int{nil}
			}
			return append([][]int{append([]int{l.head}, l.tail.First...)}, l.tail.Second...)
		})
	got := suffixes([]int{1, 2, 3})
	want := [][]int{{1, 2, 3}, {2, 3}, {3}, nil}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Fatalf("suffix %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestApoZipWithMultiply(t *testing.T) {
	type seeds = rekur.Pair[[]int, []int]
	zipMul := rekur.Apo(sliceBase[int]{}, mapListF[int, rekur.Either[[]int, seeds], []int],
		func(s seeds) listF[int, rekur.Either[[]int, seeds]] {
			if len(s.First) == 0 || len(s.Second) == 0 {
				return listF[int, rekur.Either[[]int, seeds]]{}
			}
			return listF[int, rekur.Either[[]int, seeds]]{
				head: s.First[0] * s.Second[0],
				tail: rekur.Right[[]int](seeds{First: s.First[1:], Second: s.Second[1:]}),
				cons: true,
			}
		})
	got := zipMul(seeds{First: []int{1, 2, 3}, Second: []int{4, 5, 6}})
	if !slices.Equal(got, []int{4, 10, 18}) {
		t.Fatalf("got %v, want [4 10 18]", got)
	}
	// Excess elements of the longer input are dropped.
	got = zipMul(seeds{First: []int{1, 2, 3, 9, 9}, Second: []int{4, 5, 6}})
	if !slices.Equal(got, []int{4, 10, 18}) {
		t.Fatalf("uneven: got %v, want [4 10 18]", got)
	}
	got = zipMul(seeds{First: nil, Second: []int{4}})
	if got != nil {
		t.Fatalf("empty: got %v, want nil", got)
	}
}

// TestApoEarlyEmbed: a Left position splices an already-built list in
// without unfolding it further.
func TestApoEarlyEmbed(t *testing.T) {
	scale := rekur.Apo(sliceBase[int]{}, mapListF[int, rekur.Either[[]int, []int], []int],
		func(s []int) listF[int, rekur.Either[[]int, []int]] {
			if len(s) == 0 {
				return listF[int, rekur.Either[[]int, []int]]{}
			}
			return listF[int, rekur.Either[[]int, []int]]{
				head: s[0] * 10,
				tail: rekur.Left[[]int, []int](s[1:]),
				cons: true,
			}
		})
	if got := scale([]int{1, 2, 3}); !slices.Equal(got, []int{10, 2, 3}) {
		t.Fatalf("got %v, want [10 2 3]", got)
	}
}

// TestZygoEvenSuffixSums counts the suffixes whose element sum is
// even, with the helper algebra computing suffix sums in lockstep.
func TestZygoEvenSuffixSums(t *testing.T) {
	count := rekur.Zygo(sliceBase[int]{},
		mapListF[int, []int, rekur.Pair[int, int]],
		mapListF[int, rekur.Pair[int, int], int],
		sumAlg,
		func(l listF[int, rekur.Pair[int, int]]) int {
			if !l.cons {
				return 0
			}
			c := l.tail.Second
			if (l.head+l.tail.First)%2 == 0 {
				c++
			}
			return c
		})
	if got := count([]int{1, 2, 3}); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := count(nil); got != 0 {
		t.Fatalf("empty: got %d, want 0", got)
	}
}

// --- Generalization laws ---

// TestPropertyCataViaPara: Cata(alg) ≡ Para(alg ∘ discard-original).
func TestPropertyCataViaPara(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	b := sliceBase[int]{}
	direct := rekur.Cata(b, mapListF[int, []int, int], sumAlg)
	viaPara := rekur.Para(b, mapListF[int, []int, rekur.Pair[[]int, int]],
		func(l listF[int, rekur.Pair[[]int, int]]) int {
			return sumAlg(mapListF(l, func(p rekur.Pair[[]int, int]) int { return p.Second }))
		})
	for range propertyN {
		s := randSlice(rng)
		if left, right := direct(s), viaPara(s); left != right {
			t.Fatalf("cata/para: %d != %d (s=%v)", left, right, s)
		}
	}
}

// TestPropertyAnaViaApo: Ana(co) ≡ Apo(wrap-in-Right ∘ co).
func TestPropertyAnaViaApo(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	b := sliceBase[int]{}
	direct := rekur.Ana(b, mapListF[int, int, []int], countdownCo)
	viaApo := rekur.Apo(b, mapListF[int, rekur.Either[[]int, int], []int],
		func(n int) listF[int, rekur.Either[[]int, int]] {
			return mapListF(countdownCo(n), rekur.Right[[]int, int])
		})
	for range propertyN {
		n := rng.IntN(50)
		if left, right := direct(n), viaApo(n); !slices.Equal(left, right) {
			t.Fatalf("ana/apo: %v != %v (n=%d)", left, right, n)
		}
	}
}
