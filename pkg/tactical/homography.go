package tactical

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

//minCorrespondences is the number of point pairs needed to fix the 8 degrees of freedom of a homography
const minCorrespondences = 4

//rankTolerance is the minimum ratio between the two smallest singular values of the DLT system.
//Below it the solution is not unique (e.g. collinear points).
const rankTolerance = 1e-8

//DegenerateTransformError is returned when no projective transform can be derived from the given points
type DegenerateTransformError struct {
	Reason string
}

func (e *DegenerateTransformError) Error() string {
	return fmt.Sprintf("degenerate transform: %s", e.Reason)
}

func degenerate(format string, a ...interface{}) error {
	return &DegenerateTransformError{Reason: fmt.Sprintf(format, a...)}
}

//Homography is a 3x3 projective transform mapping pixel space to court space. Indices are [row][column].
type Homography [3][3]float64

//NewHomography solves the homography mapping src[i] to dst[i] with the normalized direct linear transform.
//With more than 4 pairs the algebraic error is minimized in the least squares sense, which tolerates mild noise.
func NewHomography(src, dst []r2.Point) (*Homography, error) {
	if len(src) != len(dst) {
		return nil, degenerate("mismatched point sets (%d source, %d target)", len(src), len(dst))
	}
	if len(src) < minCorrespondences {
		return nil, degenerate("need at least %d correspondences, got %d", minCorrespondences, len(src))
	}
	for i := range src {
		if !finite(src[i]) || !finite(dst[i]) {
			return nil, degenerate("non finite coordinate at index %d", i)
		}
	}

	srcNorm, tSrc, ok := normalizePoints(src)
	if !ok {
		return nil, degenerate("source points are coincident")
	}
	dstNorm, tDst, ok := normalizePoints(dst)
	if !ok {
		return nil, degenerate("target points are coincident")
	}

	// two rows per correspondence; with exactly 4 pairs a zero row keeps the system square for the full SVD
	rows := 2 * len(src)
	if rows < 9 {
		rows = 9
	}
	a := mat.NewDense(rows, 9, nil)
	for i := range srcNorm {
		x, y := srcNorm[i].X, srcNorm[i].Y
		u, v := dstNorm[i].X, dstNorm[i].Y
		a.SetRow(2*i, []float64{-x, -y, -1, 0, 0, 0, u * x, u * y, u})
		a.SetRow(2*i+1, []float64{0, 0, 0, -x, -y, -1, v * x, v * y, v})
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFull); !ok {
		return nil, degenerate("SVD did not converge")
	}

	values := svd.Values(nil)
	if values[0] == 0 || values[7]/values[0] < rankTolerance {
		return nil, degenerate("correspondences do not determine a unique transform")
	}

	var v mat.Dense
	svd.VTo(&v)
	h := mat.NewDense(3, 3, nil)
	for i := 0; i < 9; i++ {
		h.Set(i/3, i%3, v.At(i, 8))
	}

	if math.Abs(mat.Det(h)) < 1e-10 {
		return nil, degenerate("transform matrix is singular")
	}

	// undo the normalization: H = inv(T_dst) * Hn * T_src
	var tDstInv mat.Dense
	if err := tDstInv.Inverse(tDst); err != nil {
		return nil, degenerate("normalization is not invertible")
	}
	var partial, full mat.Dense
	partial.Mul(&tDstInv, h)
	full.Mul(&partial, tSrc)

	scale := full.At(2, 2)
	if math.Abs(scale) < 1e-12 {
		return nil, degenerate("transform maps the origin to infinity")
	}

	var out Homography
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = full.At(r, c) / scale
		}
	}
	return &out, nil
}

//Apply maps a single point. Points sent to infinity come back as NaN.
func (h *Homography) Apply(pt r2.Point) r2.Point {
	x := h[0][0]*pt.X + h[0][1]*pt.Y + h[0][2]
	y := h[1][0]*pt.X + h[1][1]*pt.Y + h[1][2]
	z := h[2][0]*pt.X + h[2][1]*pt.Y + h[2][2]
	if z == 0 {
		return r2.Point{X: math.NaN(), Y: math.NaN()}
	}
	return r2.Point{X: x / z, Y: y / z}
}

//Transform maps a batch of points; an empty batch is returned as is
func (h *Homography) Transform(pts []r2.Point) []r2.Point {
	if len(pts) == 0 {
		return pts
	}
	out := make([]r2.Point, len(pts))
	for i, p := range pts {
		out[i] = h.Apply(p)
	}
	return out
}

//ReprojectionError is the mean distance between h(src[i]) and dst[i]
func (h *Homography) ReprojectionError(src, dst []r2.Point) float64 {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += h.Apply(src[i]).Sub(dst[i]).Norm()
	}
	return sum / float64(n)
}

//normalizePoints translates the points to their centroid and scales them to a mean distance of sqrt(2),
//as described in Multiple View Geometry, Alg 4.2. It returns the normalized points and the transform used.
func normalizePoints(pts []r2.Point) ([]r2.Point, *mat.Dense, bool) {
	mu := r2.Point{}
	for _, p := range pts {
		mu = mu.Add(p)
	}
	mu = mu.Mul(1 / float64(len(pts)))

	d := 0.0
	for _, p := range pts {
		d += p.Sub(mu).Norm()
	}
	d /= float64(len(pts))
	if d == 0 {
		return nil, nil, false
	}

	s := math.Sqrt2 / d
	t := mat.NewDense(3, 3, []float64{
		s, 0, -s * mu.X,
		0, s, -s * mu.Y,
		0, 0, 1,
	})

	out := make([]r2.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Sub(mu).Mul(s)
	}
	return out, t, true
}

func finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
