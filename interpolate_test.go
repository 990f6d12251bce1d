package pointset

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestInterpolateScenario(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(10, 10), Pt(20, 5)}
	tests := []struct {
		x    float64
		want float64
	}{
		{5, 5},
		{15, 7.5},
		// extrapolated
		{-5, -5},
		{25, 2.5},
		// exact
		{0, 0},
		{10, 10},
		{20, 5},
	}
	for _, tt := range tests {
		got, err := Interpolate(points, tt.x)
		if err != nil {
			t.Errorf("Interpolate(%g): %s", tt.x, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Interpolate(%g) = %g, want %g", tt.x, got, tt.want)
		}
	}
}

func TestBracketingSegment(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 4), Pt(3, 9)}
	tests := []struct {
		x     float64
		index int
		exact bool
	}{
		{-10, 0, false},
		{0.5, 0, false},
		{1.5, 1, false},
		{2.5, 2, false},
		{10, 2, false},
		{2, 2, true},
	}
	for _, tt := range tests {
		seg := BracketingSegment(points, tt.x)
		if seg.Index != tt.index || seg.Exact() != tt.exact {
			t.Errorf("x = %g: got segment %d (exact %t), want %d (exact %t)", tt.x, seg.Index, seg.Exact(), tt.index, tt.exact)
		}
		if !tt.exact {
			diff(t, Line{points[tt.index], points[tt.index+1]}, seg.Line)
		}
	}
}

func TestInterpolateTwoPoints(t *testing.T) {
	points := []Point{Pt(1, 3), Pt(3, 7)}
	for _, pt := range points {
		got, err := Interpolate(points, pt.X)
		if err != nil {
			t.Fatal(err)
		}
		if got != pt.Y {
			t.Errorf("Interpolate(%g) = %g, want %g", pt.X, got, pt.Y)
		}
	}
	// y = 2x + 1 on both sides
	for _, x := range []float64{-3, 0, 2, 5, 100} {
		got, err := Interpolate(points, x)
		if err != nil {
			t.Fatal(err)
		}
		if want := 2*x + 1; got != want {
			t.Errorf("Interpolate(%g) = %g, want %g", x, got, want)
		}
	}
}

func randomSorted(r *rand.Rand, n int) []Point {
	points := make([]Point, n)
	x := r.Float64()*10 - 5
	for i := range points {
		// strictly increasing x
		x += 0.1 + r.Float64()*3
		points[i] = Pt(x, r.Float64()*200-100)
	}
	return points
}

func TestInterpolateProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 2; n < 40; n++ {
		points := randomSorted(r, n)

		// exact matches return y unmodified
		for _, pt := range points {
			got, err := Interpolate(points, pt.X)
			if err != nil {
				t.Fatal(err)
			}
			if got != pt.Y {
				t.Fatalf("n = %d: Interpolate(%g) = %g, want %g", n, pt.X, got, pt.Y)
			}
		}

		// interior queries lie between the bracketing y values
		for i := range n - 1 {
			p0, p1 := points[i], points[i+1]
			x := p0.X + r.Float64()*(p1.X-p0.X)
			if x == p0.X || x == p1.X {
				continue
			}
			got, err := Interpolate(points, x)
			if err != nil {
				t.Fatal(err)
			}
			lo, hi := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
			if got < lo-1e-9 || got > hi+1e-9 {
				t.Fatalf("n = %d: Interpolate(%g) = %g, not in [%g, %g]", n, x, got, lo, hi)
			}
			want := p0.Y + (p1.Y-p0.Y)*(x-p0.X)/(p1.X-p0.X)
			if got != want {
				t.Fatalf("n = %d: Interpolate(%g) = %g, want %g", n, x, got, want)
			}
		}

		// extrapolation uses the first and last segments
		below := points[0].X - 1 - r.Float64()*10
		above := points[n-1].X + 1 + r.Float64()*10
		first, _ := Line{points[0], points[1]}.YByX(below)
		last, _ := Line{points[n-2], points[n-1]}.YByX(above)
		if got, _ := Interpolate(points, below); got != first {
			t.Fatalf("n = %d: Interpolate(%g) = %g, want %g", n, below, got, first)
		}
		if got, _ := Interpolate(points, above); got != last {
			t.Fatalf("n = %d: Interpolate(%g) = %g, want %g", n, above, got, last)
		}
	}
}

func TestInterpolateErrors(t *testing.T) {
	tests := []struct {
		points []Point
		x      float64
		want   error
	}{
		{nil, 0, ErrInvalidArgument},
		{[]Point{Pt(1, 1)}, 1, ErrInvalidArgument},
		{[]Point{Pt(0, 0), Pt(1, 1)}, math.NaN(), ErrInvalidArgument},
		{[]Point{Pt(0, 1), Pt(1, 1)}, math.Inf(1), ErrInvalidArgument},
		{[]Point{Pt(0, 1), Pt(1, 1)}, math.Inf(-1), ErrInvalidArgument},
		{[]Point{Pt(0, 0), Pt(1, 1)}, math.Inf(1), ErrInvalidArgument},
		// extrapolating overflows
		{[]Point{Pt(0, 0), Pt(1e-300, 1e300)}, 1e300, ErrUndefinedInterpolation},
		// vertical first segment, extrapolating below
		{[]Point{Pt(0, 0), Pt(0, 1), Pt(1, 2)}, -1, ErrUndefinedInterpolation},
		// vertical last segment, extrapolating above
		{[]Point{Pt(0, 0), Pt(1, 1), Pt(1, 2)}, 2, ErrUndefinedInterpolation},
		// all points share one x
		{[]Point{Pt(3, 0), Pt(3, 1)}, 4, ErrUndefinedInterpolation},
	}
	for _, tt := range tests {
		y, err := Interpolate(tt.points, tt.x)
		if !errors.Is(err, tt.want) {
			t.Errorf("Interpolate(%v, %g) = %g, %v; want error %v", tt.points, tt.x, y, err, tt.want)
		}
	}

	// An exact match on a repeated x is still fine.
	points := []Point{Pt(0, 0), Pt(1, 1), Pt(1, 2), Pt(2, 3)}
	if _, err := Interpolate(points, 1); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestInterpolateRepeatedX(t *testing.T) {
	// a step at x = 1
	points := []Point{Pt(0, 0), Pt(1, 1), Pt(1, 5), Pt(2, 0)}
	tests := []struct {
		x     float64
		index int
		want  float64
	}{
		{0.5, 0, 0.5},
		{1.5, 2, 2.5},
		{1.75, 2, 1.25},
		// extrapolated along the last segment
		{3, 2, -5},
	}
	for _, tt := range tests {
		seg := BracketingSegment(points, tt.x)
		if seg.Index != tt.index {
			t.Errorf("x = %g: got segment %d, want %d", tt.x, seg.Index, tt.index)
		}
		got, err := Interpolate(points, tt.x)
		if err != nil {
			t.Errorf("Interpolate(%g): %s", tt.x, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Interpolate(%g) = %g, want %g", tt.x, got, tt.want)
		}
	}
}

func TestInterpolateAll(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(10, 10), Pt(20, 5)}
	xs := []float64{25, -5, 15, 5, 10}
	got, err := InterpolateAll(points, xs)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(xs) {
		t.Fatalf("got %d results for %d queries", len(got), len(xs))
	}
	for i, x := range xs {
		want, err := Interpolate(points, x)
		if err != nil {
			t.Fatal(err)
		}
		if got[i] != want {
			t.Errorf("result %d: got %g, want %g", i, got[i], want)
		}
	}

	// no queries, no results
	if got, err := InterpolateAll(points, nil); err != nil || len(got) != 0 {
		t.Errorf("got %v, %v", got, err)
	}

	_, err = InterpolateAll(points, []float64{1, math.NaN()})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := InterpolateAll(points[:1], xs); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, ErrInvalidArgument)
	}
}

func TestInterpolateIdempotent(t *testing.T) {
	points := []Point{Pt(0, 1), Pt(1, 3), Pt(4, -2)}
	orig := slices.Clone(points)
	xs := []float64{-1, 0.5, 2, 7}
	first, err := InterpolateAll(points, xs)
	if err != nil {
		t.Fatal(err)
	}
	second, err := InterpolateAll(points, xs)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, first, second)
	diff(t, orig, points)
}

func TestInterpolator(t *testing.T) {
	if _, err := NewInterpolator([]Point{Pt(0, 0)}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, ErrInvalidArgument)
	}

	points := []Point{Pt(0, 0), Pt(10, 10), Pt(20, 5)}
	ip, err := NewInterpolator(points)
	if err != nil {
		t.Fatal(err)
	}
	y, err := ip.At(15)
	if err != nil {
		t.Fatal(err)
	}
	if y != 7.5 {
		t.Errorf("got %g, want 7.5", y)
	}
	ys, err := ip.All([]float64{5, 25})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{5, 2.5}, ys, cmpopts.EquateApprox(0, 1e-12))
}

func BenchmarkInterpolate(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{4, 64, 4096} {
		points := randomSorted(r, n)
		lo, hi := points[0].X, points[n-1].X
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for i := range b.N {
				x := lo + (hi-lo)*float64(i%1000)/1000
				if _, err := Interpolate(points, x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
