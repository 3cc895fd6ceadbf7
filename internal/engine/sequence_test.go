package engine_test

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"sakura/internal/engine"
)

func cards(ranks ...int) []*engine.Card {
	out := make([]*engine.Card, len(ranks))
	for i, r := range ranks {
		out[i] = engine.NewCard(r, engine.ColorBlue)
	}
	return out
}

func isAscending(ranks []int) bool {
	return sort.IntsAreSorted(ranks)
}

func TestSortAscending(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", nil, []int{}},
		{"single", []int{4}, []int{4}},
		{"reversed", []int{9, 7, 5, 3}, []int{3, 5, 7, 9}},
		{"mixed", []int{5, 3, 8, 1, 10, 2, 7, 4, 9, 6}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"duplicates", []int{4, 2, 4, 1}, []int{1, 2, 4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := engine.NewSequence(cards(tt.in...)...)
			s.SortAscending()
			if got := s.Ranks(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortAscending(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortAscendingIsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for n := 0; n < 50; n++ {
		in := make([]*engine.Card, r.Intn(12))
		for i := range in {
			in[i] = engine.NewCard(1+r.Intn(20), engine.ColorRed)
		}
		s := engine.NewSequence(in...)
		s.SortAscending()

		if !isAscending(s.Ranks()) {
			t.Fatalf("not ascending: %v", s.Ranks())
		}
		if s.Len() != len(in) {
			t.Fatalf("length changed: %d -> %d", len(in), s.Len())
		}
		seen := map[*engine.Card]bool{}
		for _, c := range s.Cards() {
			seen[c] = true
		}
		for _, c := range in {
			if !seen[c] {
				t.Fatalf("card %s lost by sort", c)
			}
		}
	}
}

func TestSortAscendingKeepsEqualRanksInOrder(t *testing.T) {
	a := engine.NewCard(3, engine.ColorRed)
	b := engine.NewCard(3, engine.ColorGreen)
	s := engine.NewSequence(engine.NewCard(5, engine.ColorBlue), a, b)
	s.SortAscending()
	got := s.Cards()
	if got[0] != a || got[1] != b {
		t.Errorf("equal ranks reordered: %s", s)
	}
}

func TestInsertSorted(t *testing.T) {
	r := rand.New(rand.NewSource(34))
	s := engine.NewSequence()
	for i := 0; i < 40; i++ {
		before := s.Len()
		s.InsertSorted(engine.NewCard(1+r.Intn(15), engine.ColorWhite))
		if s.Len() != before+1 {
			t.Fatalf("len: got %d, want %d", s.Len(), before+1)
		}
		if !isAscending(s.Ranks()) {
			t.Fatalf("not ascending after insert: %v", s.Ranks())
		}
	}
}

func TestInsertSortedTiesGoLast(t *testing.T) {
	first := engine.NewCard(5, engine.ColorRed)
	s := engine.NewSequence(engine.NewCard(3, engine.ColorBlue), first, engine.NewCard(8, engine.ColorBlue))
	tie := engine.NewCard(5, engine.ColorWhite)
	s.InsertSorted(tie)

	got := s.Cards()
	if got[1] != first || got[2] != tie {
		t.Errorf("tie inserted at wrong place: %s", s)
	}
	if s.String() != "3_b 5_r 5_w 8_b" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestFindByRankFirstMatch(t *testing.T) {
	a := engine.NewCard(7, engine.ColorRed)
	b := engine.NewCard(7, engine.ColorGreen)
	s := engine.NewSequence(engine.NewCard(2, engine.ColorBlue), a, b)

	got, ok := s.FindByRank(7)
	if !ok || got != a {
		t.Errorf("FindByRank(7) = %v, %v; want first 7", got, ok)
	}
	if _, ok := s.FindByRank(4); ok {
		t.Error("FindByRank(4) should not find anything")
	}
}

func TestRemoveByIdentity(t *testing.T) {
	a := engine.NewCard(7, engine.ColorRed)
	twin := engine.NewCard(7, engine.ColorRed)
	s := engine.NewSequence(a)

	if err := s.Remove(twin); !errors.Is(err, engine.ErrCardNotFound) {
		t.Fatalf("removing an equal but distinct card: got %v, want ErrCardNotFound", err)
	}
	if s.Len() != 1 {
		t.Fatalf("len after failed remove: %d", s.Len())
	}
	if err := s.Remove(a); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !s.IsEmpty() {
		t.Errorf("sequence should be empty, has %s", s)
	}
	if s.Head() != nil || s.Tail() != nil {
		t.Error("empty sequence should have no head or tail")
	}
}
