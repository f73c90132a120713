// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rekur_test

import (
	"reflect"
	"slices"
	"testing"

	"code.hybscloud.com/rekur"
)

func TestFixInOut(t *testing.T) {
	v := rekur.In(fixListF{head: 1, tail: rekur.In(fixListF{}), cons: true})
	l := rekur.Out[fixListF](v)
	if !l.cons || l.head != 1 {
		t.Fatalf("got %+v", l)
	}
	if inner := rekur.Out[fixListF](l.tail); inner.cons {
		t.Fatalf("tail not empty: %+v", inner)
	}
}

func TestFixBaseRoundTrip(t *testing.T) {
	b := rekur.FixBase[fixListF]()
	v := fixFromSlice([]int{1, 2})
	if got := b.Embed(b.Project(v)); !reflect.DeepEqual(got, v) {
		t.Fatalf("embed∘project: %+v != %+v", got, v)
	}
}

func TestOutWrongTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	rekur.Out[natF[rekur.Fix]](fixFromSlice([]int{1}))
}

func TestRefixSliceToFix(t *testing.T) {
	toFix := rekur.Refix(sliceBase[int]{}, rekur.FixBase[fixListF](), mapListF[int, []int, rekur.Fix])
	fromFix := rekur.Refix(rekur.FixBase[fixListF](), sliceBase[int]{}, mapListF[int, rekur.Fix, []int])
	s := []int{3, 1, 4, 1, 5}
	if got := fromFix(toFix(s)); !slices.Equal(got, s) {
		t.Fatalf("round trip: got %v, want %v", got, s)
	}
	if !reflect.DeepEqual(toFix(s), fixFromSlice(s)) {
		t.Fatal("refix and mendler builds disagree")
	}
}

// --- Church encoding ---

func TestMuRoundTrip(t *testing.T) {
	toMu := rekur.ToMu(sliceBase[int]{}, mapListF[int, []int, any])
	s := []int{10, 20, 30, 40}
	back := rekur.FromMu(sliceBase[int]{}, mapListF[int, any, []int], toMu(s))
	if !slices.Equal(back, s) {
		t.Fatalf("round trip: got %v, want %v", back, s)
	}
}

func TestFoldMu(t *testing.T) {
	toMu := rekur.ToMu(sliceBase[int]{}, mapListF[int, []int, any])
	m := toMu([]int{1, 2, 3, 4})
	if got := rekur.FoldMu(m, mapListF[int, any, int], lenAlg); got != 4 {
		t.Fatalf("length: got %d, want 4", got)
	}
	if got := rekur.FoldMu(m, mapListF[int, any, int], sumAlg); got != 10 {
		t.Fatalf("sum: got %d, want 10", got)
	}
}

func TestMuEmbedProject(t *testing.T) {
	b := rekur.MuBase(mapListF[int, any, rekur.Mu], mapListF[int, rekur.Mu, any])
	empty := b.Embed(listF[int, rekur.Mu]{})
	m := b.Embed(listF[int, rekur.Mu]{head: 9, tail: empty, cons: true})
	layer := b.Project(m)
	if !layer.cons || layer.head != 9 {
		t.Fatalf("got %+v", layer)
	}
	if got := rekur.FoldMu(layer.tail, mapListF[int, any, int], lenAlg); got != 0 {
		t.Fatalf("tail length: got %d, want 0", got)
	}
	if tailLayer := b.Project(layer.tail); tailLayer.cons {
		t.Fatalf("projected tail not empty: %+v", tailLayer)
	}
}

// --- Coinductive encoding ---

func TestNuInfiniteStreamPrefix(t *testing.T) {
	nats := rekur.UnfoldNu(mapStreamF[int, rekur.Nu],
		func(n int) streamF[int] { return streamF[int]{head: n, tail: n + 1} })
	n := nats(0)
	var prefix []int
	for range 5 {
		layer := rekur.ProjectNu[streamF[rekur.Nu]](n)
		prefix = append(prefix, layer.head)
		n = layer.tail
	}
	if !slices.Equal(prefix, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("got %v", prefix)
	}
}

func TestNuRoundTrip(t *testing.T) {
	toNu := rekur.ToNu(sliceBase[int]{}, mapListF[int, []int, rekur.Nu])
	fromNu := rekur.FromNu(sliceBase[int]{}, mapListF[int, rekur.Nu, []int])
	s := []int{5, 6, 7}
	if got := fromNu(toNu(s)); !slices.Equal(got, s) {
		t.Fatalf("round trip: got %v, want %v", got, s)
	}
}

func TestNuEmbedProject(t *testing.T) {
	b := rekur.NuBase[streamF[rekur.Nu]]()
	inner := rekur.UnfoldNu(mapStreamF[int, rekur.Nu],
		func(n int) streamF[int] { return streamF[int]{head: n, tail: n} })(1)
	layer := b.Project(b.Embed(streamF[rekur.Nu]{head: 42, tail: inner}))
	if layer.head != 42 {
		t.Fatalf("got head %d, want 42", layer.head)
	}
	if next := rekur.ProjectNu[streamF[rekur.Nu]](layer.tail); next.head != 1 {
		t.Fatalf("got inner head %d, want 1", next.head)
	}
}

// --- Hoist ---

// TestHoistListToNat forgets a list's elements layer by layer, leaving
// its length as a Peano natural.
func TestHoistListToNat(t *testing.T) {
	length := rekur.Hoist(sliceBase[int]{}, natBase{}, mapListF[int, []int, int],
		func(l listF[int, int]) natF[int] {
			return natF[int]{pred: l.tail, succ: l.cons}
		})
	if got := length([]int{7, 8, 9}); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := length(nil); got != 0 {
		t.Fatalf("empty: got %d, want 0", got)
	}
}

func TestHoistFix(t *testing.T) {
	toNat := rekur.HoistFix(mapListF[int, rekur.Fix, rekur.Fix],
		func(l fixListF) natF[rekur.Fix] {
			return natF[rekur.Fix]{pred: l.tail, succ: l.cons}
		})
	v := toNat(fixFromSlice([]int{1, 2, 3}))
	depth := rekur.MCata(func(rec func(rekur.Fix) int, l natF[rekur.Fix]) int {
		if !l.succ {
			return 0
		}
		return 1 + rec(l.pred)
	})
	if got := depth(v); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
