// quadrature.go --  This file is part of goXC project.
// Mirzaeva Irina, 2023
//
//	goXC is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package quadrature integrates smooth functions of one variable by
// adaptive bisection with paired Gauss-Legendre rules. Failures are
// reported with the integer status codes of QUADPACK.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// Func fills fx[i] with the integrand at x[i].
type Func func(x, fx []float64)

// Scalar adapts a scalar integrand.
func Scalar(f func(float64) float64) Func {
	return func(x, fx []float64) {
		for i, xi := range x {
			fx[i] = f(xi)
		}
	}
}

type Status int

const (
	StatusOK           Status = 0
	StatusLimit        Status = 1 // subdivision limit reached
	StatusRoundoff     Status = 2 // round-off prevents the requested tolerance
	StatusBadIntegrand Status = 3 // non-finite values or a non-integrable point
	StatusDivergence   Status = 5 // the integral is probably divergent
	StatusInvalid      Status = 6 // invalid input
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusLimit:
		return "subdivision limit reached"
	case StatusRoundoff:
		return "round-off error detected"
	case StatusBadIntegrand:
		return "bad integrand behaviour"
	case StatusDivergence:
		return "integral probably divergent"
	case StatusInvalid:
		return "invalid input"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

var ErrInvalidInput = errors.New("quadrature: invalid input")

// Error carries a non-zero status together with the best estimate found.
type Error struct {
	Status Status
	Result Result
}

func (e *Error) Error() string {
	return fmt.Sprintf("quadrature: %v (status %d, estimate %g, abserr %g)",
		e.Status, int(e.Status), e.Result.Value, e.Result.AbsErr)
}

func (e *Error) Unwrap() error {
	if e.Status == StatusInvalid {
		return ErrInvalidInput
	}
	return nil
}

type Config struct {
	AbsTol float64
	RelTol float64
	// Limit is the maximum number of subintervals.
	Limit int
}

func DefaultConfig() Config {
	return Config{AbsTol: 1e-10, RelTol: 1e-10, Limit: 1000}
}

type Result struct {
	Value     float64
	AbsErr    float64
	NEval     int
	Intervals int
	Status    Status
}

type rule struct {
	x, w []float64
}

func legendre(n int) rule {
	r := rule{x: make([]float64, n), w: make([]float64, n)}
	quad.Legendre{}.FixedLocations(r.x, r.w, -1, 1)
	return r
}

var (
	coarse = legendre(10)
	fine   = legendre(21)
)

type interval struct {
	lo, hi float64
	value  float64
	err    float64
}

// estimate applies both rules to [lo, hi] in a single callback.
func estimate(f Func, lo, hi float64) interval {
	half, mid := 0.5*(hi-lo), 0.5*(hi+lo)
	nf, nc := len(fine.x), len(coarse.x)
	x := make([]float64, nf+nc)
	for i, t := range fine.x {
		x[i] = mid + half*t
	}
	for i, t := range coarse.x {
		x[nf+i] = mid + half*t
	}
	fx := make([]float64, len(x))
	f(x, fx)
	vf := half * floats.Dot(fine.w, fx[:nf])
	vc := half * floats.Dot(coarse.w, fx[nf:])
	return interval{lo: lo, hi: hi, value: vf, err: math.Abs(vf - vc)}
}

func (c Config) valid(a, b float64) bool {
	if c.Limit < 1 || math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return c.AbsTol > 0 || c.RelTol >= math.Max(50*eps, 5e-29)
}

const eps = 2.220446049250313e-16

// QAG integrates f over [a, b] until the error estimate drops below
// max(AbsTol, RelTol |I|). A non-zero status is returned both in the
// result and as an *Error.
func QAG(f Func, a, b float64, cfg Config) (Result, error) {
	if !cfg.valid(a, b) {
		res := Result{Status: StatusInvalid}
		return res, &Error{Status: StatusInvalid, Result: res}
	}
	nodes := len(fine.x) + len(coarse.x)
	ivs := []interval{estimate(f, a, b)}
	res := Result{NEval: nodes}
	var roundoff int
	for {
		res.Value, res.AbsErr = 0, 0
		errs := make([]float64, len(ivs))
		for i, iv := range ivs {
			res.Value += iv.value
			res.AbsErr += iv.err
			errs[i] = iv.err
		}
		res.Intervals = len(ivs)

		switch {
		case math.IsNaN(res.Value) || math.IsNaN(res.AbsErr):
			res.Status = StatusBadIntegrand
		case math.IsInf(res.Value, 0):
			res.Status = StatusDivergence
		case res.AbsErr <= math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(res.Value)):
			res.Status = StatusOK
			return res, nil
		case len(ivs) >= cfg.Limit:
			res.Status = StatusLimit
		case roundoff >= 10:
			res.Status = StatusRoundoff
		}
		if res.Status != StatusOK {
			return res, &Error{Status: res.Status, Result: res}
		}

		worst := floats.MaxIdx(errs)
		iv := ivs[worst]
		mid := 0.5 * (iv.lo + iv.hi)
		if math.Abs(iv.hi-iv.lo) <= 100*eps*math.Max(math.Abs(mid), math.SmallestNonzeroFloat64) {
			res.Status = StatusBadIntegrand
			return res, &Error{Status: res.Status, Result: res}
		}
		left, right := estimate(f, iv.lo, mid), estimate(f, mid, iv.hi)
		res.NEval += 2 * nodes
		if split := left.err + right.err; split >= 0.99*iv.err && math.Abs(left.value+right.value-iv.value) <= 1e-5*math.Abs(left.value+right.value) {
			roundoff++
		}
		ivs[worst] = left
		ivs = append(ivs, right)
	}
}

// Integrate computes the integral of f over [a, b] with the default
// configuration.
func Integrate(f func(float64) float64, a, b float64) (float64, error) {
	res, err := QAG(Scalar(f), a, b, DefaultConfig())
	return res.Value, err
}
