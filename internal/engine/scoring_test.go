package engine_test

import (
	"reflect"
	"testing"

	"sakura/internal/engine"
)

func row(cs ...*engine.Card) *engine.Sequence {
	return engine.NewSequence(cs...)
}

func TestScoreRowsEmpty(t *testing.T) {
	rs := engine.ScoreRows([engine.RowCount]*engine.Sequence{row(), row(), row()})
	if rs.Total != 0 {
		t.Errorf("total: got %d, want 0", rs.Total)
	}
	if rs.Longest != -1 {
		t.Errorf("longest: got %d, want -1", rs.Longest)
	}
}

func TestScoreRowsTieGoesToLowestIndex(t *testing.T) {
	rows := [engine.RowCount]*engine.Sequence{
		row(engine.NewCard(1, engine.ColorBlue), engine.NewCard(2, engine.ColorBlue)),
		row(engine.NewCard(3, engine.ColorRed), engine.NewCard(4, engine.ColorWhite)),
		row(),
	}
	rs := engine.ScoreRows(rows)
	if rs.Longest != 0 {
		t.Fatalf("longest: got %d, want 0", rs.Longest)
	}
	if rs.Total != 29 {
		t.Errorf("total: got %d, want 29", rs.Total)
	}
	if rs.Points != [engine.RowCount]int{6, 17, 0} {
		t.Errorf("points: got %v", rs.Points)
	}
}

func TestScoreRowsLongestDoubled(t *testing.T) {
	rows := [engine.RowCount]*engine.Sequence{
		row(engine.NewCard(1, engine.ColorRed)),
		row(),
		row(engine.NewCard(2, engine.ColorGreen), engine.NewCard(5, engine.ColorGreen), engine.NewCard(9, engine.ColorWhite)),
	}
	rs := engine.ScoreRows(rows)
	if rs.Longest != 2 {
		t.Fatalf("longest: got %d, want 2", rs.Longest)
	}
	want := 10 + 2*(4+4+7)
	if rs.Total != want {
		t.Errorf("total: got %d, want %d", rs.Total, want)
	}
}

func TestScoreRowsIgnoresInsertionOrder(t *testing.T) {
	a := engine.NewSequence()
	b := engine.NewSequence()
	for _, c := range []*engine.Card{
		engine.NewCard(5, engine.ColorRed), engine.NewCard(2, engine.ColorBlue), engine.NewCard(9, engine.ColorGreen),
	} {
		a.InsertSorted(c)
	}
	for _, c := range []*engine.Card{
		engine.NewCard(9, engine.ColorGreen), engine.NewCard(5, engine.ColorRed), engine.NewCard(2, engine.ColorBlue),
	} {
		b.InsertSorted(c)
	}
	x := engine.ScoreRows([engine.RowCount]*engine.Sequence{a, row(), row()})
	y := engine.ScoreRows([engine.RowCount]*engine.Sequence{b, row(), row()})
	if x != y {
		t.Errorf("scores differ: %+v vs %+v", x, y)
	}
}

func TestColorPoints(t *testing.T) {
	want := map[engine.Color]int{
		engine.ColorRed:   10,
		engine.ColorWhite: 7,
		engine.ColorGreen: 4,
		engine.ColorBlue:  3,
	}
	for c, p := range want {
		if c.Points() != p {
			t.Errorf("%s.Points() = %d, want %d", c, c.Points(), p)
		}
	}
}

func TestWinners(t *testing.T) {
	tests := []struct {
		totals []int
		want   []int
	}{
		{[]int{29, 17}, []int{1}},
		{[]int{3, 40}, []int{2}},
		{[]int{12, 12}, []int{1, 2}},
		{[]int{0, 0}, []int{1, 2}},
	}
	for _, tt := range tests {
		entries := make([]engine.ScoreEntry, len(tt.totals))
		for i, total := range tt.totals {
			entries[i] = engine.ScoreEntry{PlayerID: i + 1, Total: total}
		}
		if got := engine.Winners(entries); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Winners(%v) = %v, want %v", tt.totals, got, tt.want)
		}
	}
}
