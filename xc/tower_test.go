// tower_test.go --  This file is part of goXC project.
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

package xc

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/num/hyperdual"
)

// towerFn is exp(x) sqrt(x y + y^2) / (1 + x) + log(y) asinh(x).
func towerFn(x, y Tower) Tower {
	root := Sqrt(Add(Mul(x, y), Mul(y, y)))
	quot := Mul(Mul(Exp(x), root), Inv(x.Shift(1)))
	return Add(quot, Mul(Log(y), Asinh(x)))
}

func hyperdualFn(x, y hyperdual.Number) hyperdual.Number {
	root := hyperdual.Sqrt(hyperdual.Add(hyperdual.Mul(x, y), hyperdual.Mul(y, y)))
	quot := hyperdual.Mul(hyperdual.Mul(hyperdual.Exp(x), root),
		hyperdual.Inv(hyperdual.Add(x, hyperdual.Number{Real: 1})))
	// asinh x = log(x + sqrt(1 + x^2))
	asinh := hyperdual.Log(hyperdual.Add(x, hyperdual.Sqrt(
		hyperdual.Add(hyperdual.Number{Real: 1}, hyperdual.Mul(x, x)))))
	return hyperdual.Add(quot, hyperdual.Mul(hyperdual.Log(y), asinh))
}

func TestTowerHessianAgainstHyperdual(t *testing.T) {
	points := [][2]float64{{0.3, 1.2}, {1.5, 0.4}, {-0.2, 2.5}}
	for _, p := range points {
		t.Run(fmt.Sprintf("x=%g,y=%g", p[0], p[1]), func(t *testing.T) {
			x := Variable(2, 0, OrderFxc, p[0])
			y := Variable(2, 1, OrderFxc, p[1])
			f := towerFn(x, y)

			seeds := [][2]int{{0, 0}, {0, 1}, {1, 1}}
			for _, s := range seeds {
				hx := hyperdual.Number{Real: p[0]}
				hy := hyperdual.Number{Real: p[1]}
				set := func(i int, e1, e2 float64) {
					if i == 0 {
						hx.E1mag += e1
						hx.E2mag += e2
					} else {
						hy.E1mag += e1
						hy.E2mag += e2
					}
				}
				set(s[0], 1, 0)
				set(s[1], 0, 1)
				want := hyperdualFn(hx, hy)
				assert.InDelta(t, want.Real, f.Val, 1e-13)
				assert.InDelta(t, want.E1mag, f.D1(s[0]), 1e-12)
				assert.InDelta(t, want.E1E2mag, f.D2(s[0], s[1]), 1e-11)
			}
		})
	}
}

func TestTowerThirdDerivatives(t *testing.T) {
	// exp(x) sqrt(y): every mixed third derivative is known in closed form.
	x0, y0 := 0.7, 1.9
	x := Variable(2, 0, OrderKxc, x0)
	y := Variable(2, 1, OrderKxc, y0)
	f := Mul(Exp(x), Sqrt(y))

	e, s := math.Exp(x0), math.Sqrt(y0)
	assert.InDelta(t, e*s, f.D3(0, 0, 0), 1e-12)
	assert.InDelta(t, e*0.5/s, f.D3(0, 0, 1), 1e-12)
	assert.InDelta(t, e*0.5/s, f.D3(1, 0, 0), 1e-12)
	assert.InDelta(t, -e*0.25/(s*y0), f.D3(0, 1, 1), 1e-12)
	assert.InDelta(t, e*0.375/(s*y0*y0), f.D3(1, 1, 1), 1e-12)
}

func TestTowerThirdOrderComposition(t *testing.T) {
	g := func(u Tower) Tower {
		return Mul(Cbrt(u), Log(Pow(u, 1.5).Shift(2)))
	}
	for _, u0 := range []float64{0.05, 0.8, 6.0} {
		u := g(Variable(1, 0, OrderKxc, u0))
		d3 := fd.Derivative(func(v float64) float64 {
			return g(Variable(1, 0, OrderFxc, v)).D2(0, 0)
		}, u0, &fd.Settings{Formula: fd.Central, Step: 1e-5 * u0})
		assert.InDelta(t, d3, u.D3(0, 0, 0), 1e-6*math.Max(1, math.Abs(d3)), "u = %g", u0)
	}
}

func TestTowerOrderTruncation(t *testing.T) {
	x := Variable(2, 0, OrderVxc, 2)
	y := Variable(2, 1, OrderFxc, 3)
	p := Mul(x, y)
	assert.Equal(t, OrderVxc, p.Order)
	assert.Equal(t, []float64{3, 2}, p.Grad)
	assert.Nil(t, p.Hess)
	assert.Nil(t, p.Third)

	c := Variable(1, 0, OrderExc, 4)
	assert.Nil(t, Sqrt(c).Grad)
	assert.Equal(t, 2.0, Sqrt(c).Val)
}

func TestTowerScaleDoesNotAlias(t *testing.T) {
	x := Variable(1, 0, OrderFxc, 2)
	sq := Mul(x, x)
	_ = sq.Scale(10)
	assert.Equal(t, 4.0, sq.Grad[0])
	assert.Equal(t, 2.0, sq.D2(0, 0))
}

func TestComposeSaturates(t *testing.T) {
	// u depends on y_0 only, so the saturated f'' must not reach y_1.
	u := Variable(2, 0, OrderKxc, 0.5).Scale(4)
	g := Apply(u, [4]float64{1, 2, Saturated, -Saturated})

	assert.Equal(t, Saturated, g.D2(0, 0))
	assert.Zero(t, g.D2(0, 1))
	assert.Zero(t, g.D2(1, 1))
	assert.Equal(t, -Saturated, g.D3(0, 0, 0))
	for _, v := range g.Third {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}

	sum := Add(g, g)
	assert.Equal(t, Saturated, sum.D2(0, 0))
	assert.Equal(t, -Saturated, sum.Scale(-3).D2(0, 0))
	assert.Zero(t, Sub(g, g).D2(0, 0))

	inf := Apply(Variable(1, 0, OrderFxc, 1), [4]float64{0, math.Inf(-1), math.Inf(1), 0})
	assert.Equal(t, -Saturated, inf.D1(0))
	assert.Equal(t, Saturated, inf.D2(0, 0))
}
