package geom

import "testing"

func TestRectEmptyInclusive(t *testing.T) {
	cases := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", Rect{0, 0, 10, 10}, false},
		{"zero width", Rect{5, 0, 5, 10}, false},
		{"zero height", Rect{0, 5, 10, 5}, false},
		{"zero area point", Rect{5, 5, 5, 5}, false},
		{"inverted x", Rect{10, 0, 0, 10}, true},
		{"inverted y", Rect{0, 10, 10, 0}, true},
		{"canonical empty", EmptyRect, true},
	}
	for _, c := range cases {
		if got := c.r.Empty(); got != c.want {
			t.Errorf("%s: Empty() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 20, 20}
	got := a.Union(b)
	want := Rect{0, 0, 20, 20}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	if got := a.Union(EmptyRect); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 20, 20}
	got := a.Intersect(b)
	want := Rect{5, 5, 10, 10}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := Rect{20, 20, 30, 30}
	if got := a.Intersect(c); !got.Empty() {
		t.Errorf("Intersect of disjoint rects should be empty, got %+v", got)
	}
}

func TestRectOverlapsDegenerate(t *testing.T) {
	line := Rect{5, 0, 5, 10}
	box := Rect{0, 0, 10, 10}
	if !box.Overlaps(line) {
		t.Error("box should overlap a zero-width line crossing it")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if !r.Contains(Point{0, 0}) {
		t.Error("boundary point should be contained")
	}
	if !r.Contains(Point{10, 10}) {
		t.Error("far boundary point should be contained")
	}
	if r.Contains(Point{11, 5}) {
		t.Error("outside point should not be contained")
	}
}

func TestQuadRect(t *testing.T) {
	q := Quad{
		UL: Point{0, 0}, UR: Point{10, 0},
		LL: Point{0, 5}, LR: Point{10, 5},
	}
	got := q.Rect()
	want := Rect{0, 0, 10, 5}
	if got != want {
		t.Errorf("Quad.Rect() = %+v, want %+v", got, want)
	}
}
