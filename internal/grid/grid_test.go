package grid

import (
	"errors"
	"testing"
)

func TestContains(t *testing.T) {
	b := Bounds{Width: 10, Height: 8}
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
		{0, -1, false},
	}
	for _, c := range cases {
		got := b.Contains(Position{X: c.x, Y: c.y})
		if got != c.want {
			t.Errorf("Contains(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestOffsetClampsAtEdges(t *testing.T) {
	b := Default()
	cases := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"right in open", Position{3, 3}, Right, Position{4, 3}},
		{"left in open", Position{3, 3}, Left, Position{2, 3}},
		{"up in open", Position{3, 3}, Up, Position{3, 2}},
		{"down in open", Position{3, 3}, Down, Position{3, 4}},
		{"left at x=0", Position{0, 2}, Left, Position{0, 2}},
		{"up at y=0", Position{4, 0}, Up, Position{4, 0}},
		{"right at last column", Position{11, 2}, Right, Position{11, 2}},
		{"down at last row", Position{4, 5}, Down, Position{4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Offset(tc.from, tc.dir); got != tc.want {
				t.Errorf("Offset(%v, %v) = %v; want %v", tc.from, tc.dir, got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default bounds rejected: %v", err)
	}
	for _, b := range []Bounds{{0, 6}, {12, 0}, {-1, 3}} {
		if err := b.Validate(); !errors.Is(err, ErrEmptyBounds) {
			t.Errorf("Validate(%v) = %v; want ErrEmptyBounds", b, err)
		}
	}
}

func TestCellsCoversGridColumnMajor(t *testing.T) {
	b := Bounds{Width: 3, Height: 2}
	cells := b.Cells()
	want := []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(cells))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cells[%d] = %v; want %v", i, cells[i], want[i])
		}
	}
}

func TestPositionLess(t *testing.T) {
	if !(Position{1, 5}).Less(Position{2, 0}) {
		t.Error("x should dominate ordering")
	}
	if !(Position{1, 0}).Less(Position{1, 1}) {
		t.Error("y should break ties")
	}
	if (Position{1, 1}).Less(Position{1, 1}) {
		t.Error("equal positions are not less")
	}
}

func TestZeroDirectionIsRight(t *testing.T) {
	var d Direction
	if d != Right {
		t.Fatalf("zero Direction = %v; want right", d)
	}
}
