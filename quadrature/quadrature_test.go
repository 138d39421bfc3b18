// quadrature_test.go --  This file is part of goXC project.
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

package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"
)

// boys is the Boys function F_n(x) = int_0^1 t^(2n) exp(-x t^2) dt in
// closed form.
func boys(x float64, n int) float64 {
	nf := float64(n)
	if x == 0 {
		return 1.0 / (2.0*nf + 1)
	}
	return mathext.GammaIncReg(nf+0.5, x) * math.Gamma(nf+0.5) / (2.0 * math.Pow(x, nf+0.5))
}

func TestQAGPolynomialIsExact(t *testing.T) {
	calls := 0
	f := func(x, fx []float64) {
		calls++
		assert.Len(t, x, 31)
		for i, v := range x {
			fx[i] = v * v
		}
	}
	res, err := QAG(f, 0, 1, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.InDelta(t, 1.0/3.0, res.Value, 1e-15)
	assert.Equal(t, 1, res.Intervals)
	assert.Equal(t, 31, res.NEval)
	assert.Equal(t, 1, calls)
}

func TestQAGIntegrands(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"exp", math.Exp, 0, 1, math.E - 1},
		{"sin", math.Sin, 0, math.Pi, 2},
		{"runge", func(x float64) float64 { return 1 / (1 + 100*x*x) }, -1, 1, 0.2 * math.Atan(10)},
		{"reversed", math.Exp, 1, 0, 1 - math.E},
		{"inverse sqrt", func(x float64) float64 { return 1 / math.Sqrt(x) }, 0, 1, 2},
		{"log", math.Log, 0, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := QAG(Scalar(tt.f), tt.a, tt.b, DefaultConfig())
			require.NoError(t, err)
			assert.InDelta(t, tt.want, res.Value, 1e-9)
			assert.LessOrEqual(t, res.AbsErr, 1e-10*math.Max(1, math.Abs(res.Value)))
		})
	}
}

func TestQAGBoysFunction(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		for _, x := range []float64{0, 0.3, 5, 40} {
			v, err := Integrate(func(s float64) float64 {
				return math.Pow(s, float64(2*n)) * math.Exp(-x*s*s)
			}, 0, 1)
			require.NoError(t, err)
			assert.InDelta(t, boys(x, n), v, 1e-10, "n = %d, x = %g", n, x)
		}
	}
}

func TestQAGSubdivides(t *testing.T) {
	res, err := QAG(Scalar(func(x float64) float64 { return 1 / (1 + 100*x*x) }), -1, 1, DefaultConfig())
	require.NoError(t, err)
	assert.Greater(t, res.Intervals, 1)
	assert.Equal(t, 31*(2*res.Intervals-1), res.NEval)
}

func TestQAGLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limit = 1
	res, err := QAG(Scalar(func(x float64) float64 { return 1 / math.Sqrt(x) }), 0, 1, cfg)
	require.Error(t, err)
	var qe *Error
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, StatusLimit, qe.Status)
	assert.Equal(t, StatusLimit, res.Status)
	assert.InDelta(t, 2, res.Value, 0.5)
	assert.False(t, errors.Is(err, ErrInvalidInput))
}

func TestQAGBadIntegrand(t *testing.T) {
	res, err := QAG(Scalar(func(float64) float64 { return math.NaN() }), 0, 1, DefaultConfig())
	require.Error(t, err)
	assert.Equal(t, StatusBadIntegrand, res.Status)
}

func TestQAGInvalidInput(t *testing.T) {
	f := Scalar(math.Exp)
	tests := []struct {
		name string
		a, b float64
		cfg  Config
	}{
		{"no subintervals", 0, 1, Config{AbsTol: 1e-10, RelTol: 1e-10}},
		{"no tolerance", 0, 1, Config{Limit: 10}},
		{"nan bound", math.NaN(), 1, DefaultConfig()},
		{"infinite bound", 0, math.Inf(1), DefaultConfig()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := QAG(f, tt.a, tt.b, tt.cfg)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, StatusInvalid, res.Status)
			assert.Equal(t, 6, int(res.Status))
		})
	}
}

func TestIntegrate(t *testing.T) {
	v, err := Integrate(func(x float64) float64 { return x * x }, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, v, 1e-15)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "subdivision limit reached", StatusLimit.String())
	assert.Equal(t, "invalid input", StatusInvalid.String())
	assert.Equal(t, "Status(4)", Status(4).String())
}
