package geomengine

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"honnef.co/go/pointset"
)

// conic holds the coefficients of A·x² + B·xy + C·y² + D·x + E·y + F = 0.
type conic struct {
	A, B, C, D, E, F float64
}

// FitEllipse fits an ellipse using the direct least squares method described
// in "Numerically Stable Direct Least Squares Fitting of Ellipses" by Halír
// and Flusser. The returned box has the ellipse's full axes as its size,
// with the major axis as its width.
func (e *Engine) FitEllipse(buf *pointset.Buffer) (pointset.RotatedBox, error) {
	if buf.Count < 5 {
		return pointset.RotatedBox{}, fmt.Errorf("fitting ellipse to %d points: %w", buf.Count, ErrTooFewPoints)
	}
	points := buf.Points()

	// Work on centered and scaled points to keep the scatter matrices
	// well-conditioned.
	var mean pointset.Vec2
	for _, pt := range points {
		mean = mean.Add(pointset.Vec2(pt))
	}
	mean = mean.Div(float64(len(points)))
	var spread float64
	for _, pt := range points {
		spread += pt.Sub(pointset.Point(mean)).Hypot2()
	}
	spread = math.Sqrt(spread / float64(len(points)))
	if spread == 0 {
		return pointset.RotatedBox{}, fmt.Errorf("fitting ellipse: %w", ErrDegenerate)
	}

	n := len(points)
	d1 := mat.NewDense(n, 3, nil)
	d2 := mat.NewDense(n, 3, nil)
	for i, pt := range points {
		x := (pt.X - mean.X) / spread
		y := (pt.Y - mean.Y) / spread
		d1.SetRow(i, []float64{x * x, x * y, y * y})
		d2.SetRow(i, []float64{x, y, 1})
	}

	q, err := fitConic(d1, d2)
	if err != nil {
		return pointset.RotatedBox{}, err
	}
	box, err := q.box()
	if err != nil {
		return pointset.RotatedBox{}, err
	}

	box.Center = pointset.Pt(mean.X+box.Center.X*spread, mean.Y+box.Center.Y*spread)
	box.Size = box.Size.Scale(spread)
	e.logger().Debug("fitted ellipse", slog.Int("points", n), slog.Any("box", box))
	return box, nil
}

// fitConic solves the constrained least squares problem for the design
// matrices d1 (quadratic terms) and d2 (linear terms).
func fitConic(d1, d2 *mat.Dense) (conic, error) {
	var s1, s2, s3 mat.Dense
	s1.Mul(d1.T(), d1)
	s2.Mul(d1.T(), d2)
	s3.Mul(d2.T(), d2)

	var s3inv mat.Dense
	if err := s3inv.Inverse(&s3); err != nil {
		return conic{}, fmt.Errorf("fitting ellipse: %w: %w", ErrDegenerate, err)
	}
	// The linear coefficients follow from the quadratic ones: a2 = t·a1.
	var t mat.Dense
	t.Mul(&s3inv, s2.T())
	t.Scale(-1, &t)

	var m mat.Dense
	m.Mul(&s2, &t)
	m.Add(&s1, &m)

	// Premultiply by the inverse of the constraint matrix
	// [[0 0 2] [0 −1 0] [2 0 0]].
	red := mat.NewDense(3, 3, []float64{
		m.At(2, 0) / 2, m.At(2, 1) / 2, m.At(2, 2) / 2,
		-m.At(1, 0), -m.At(1, 1), -m.At(1, 2),
		m.At(0, 0) / 2, m.At(0, 1) / 2, m.At(0, 2) / 2,
	})

	var eig mat.Eigen
	if !eig.Factorize(red, mat.EigenRight) {
		return conic{}, fmt.Errorf("fitting ellipse: eigen decomposition failed: %w", ErrDegenerate)
	}
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	// Exactly one eigenvector satisfies the ellipse constraint 4AC − B² > 0.
	best := -1
	var bestCond float64
	for j := range 3 {
		a, b, c := real(vecs.At(0, j)), real(vecs.At(1, j)), real(vecs.At(2, j))
		if cond := 4*a*c - b*b; cond > bestCond {
			best, bestCond = j, cond
		}
	}
	if best == -1 {
		return conic{}, fmt.Errorf("fitting ellipse: points do not describe an ellipse: %w", ErrDegenerate)
	}

	a1 := mat.NewVecDense(3, []float64{
		real(vecs.At(0, best)),
		real(vecs.At(1, best)),
		real(vecs.At(2, best)),
	})
	var a2 mat.VecDense
	a2.MulVec(&t, a1)
	return conic{
		A: a1.AtVec(0), B: a1.AtVec(1), C: a1.AtVec(2),
		D: a2.AtVec(0), E: a2.AtVec(1), F: a2.AtVec(2),
	}, nil
}

// box returns the center, full axes and rotation of the ellipse described by
// q.
func (q conic) box() (pointset.RotatedBox, error) {
	if q.A+q.C < 0 {
		// The angle formula below assumes positive quadratic terms.
		q = conic{-q.A, -q.B, -q.C, -q.D, -q.E, -q.F}
	}
	A, B, C, D, E, F := q.A, q.B, q.C, q.D, q.E, q.F
	den := B*B - 4*A*C
	if den >= 0 {
		return pointset.RotatedBox{}, fmt.Errorf("fitting ellipse: conic is not an ellipse: %w", ErrDegenerate)
	}

	cx := (2*C*D - B*E) / den
	cy := (2*A*E - B*D) / den

	num := 2 * (A*E*E + C*D*D - B*D*E + den*F)
	root := math.Hypot(A-C, B)
	major := num * (A + C + root)
	minor := num * (A + C - root)
	if major < 0 || minor < 0 {
		return pointset.RotatedBox{}, fmt.Errorf("fitting ellipse: imaginary ellipse: %w", ErrDegenerate)
	}
	a := -math.Sqrt(major) / den
	b := -math.Sqrt(minor) / den
	th := 0.5 * math.Atan2(-B, C-A)

	return pointset.RotatedBox{
		Center: pointset.Pt(cx, cy),
		Size:   pointset.Sz(2*a, 2*b),
		Angle:  th * 180 / math.Pi,
	}, nil
}
