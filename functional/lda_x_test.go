// lda_x_test.go --  This file is part of goXC project.
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

package functional

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MirzaevaIV/goXC/xc"
)

// Dirac exchange per particle of the unpolarized gas at n = 1.
const diracAtUnitDensity = -0.7385587663820223

func TestSlaterExchangeValues(t *testing.T) {
	dirac, err := NewSlaterExchange(2.0/3.0, false)
	require.NoError(t, err)

	for _, n := range []float64{1e-4, 0.1, 1, 30} {
		want := diracAtUnitDensity * math.Cbrt(n)
		p := xc.LDAPoint(dirac, 1, []float64{n}, xc.OrderVxc)
		assert.InDelta(t, want, p.Zk, 1e-12*math.Abs(want), "n = %g", n)
		// vrho = 4/3 eps_x for a homogeneous function of degree 4/3.
		assert.InDelta(t, 4.0/3.0*want, p.Vrho[0], 1e-10*math.Abs(want), "n = %g", n)

		pol := xc.LDAPoint(dirac, 2, []float64{n, 0}, xc.OrderExc)
		assert.InDelta(t, xc.Cbrt2*want, pol.Zk, 1e-12*math.Abs(want), "polarized n = %g", n)
	}

	// alpha = 1 is 3/2 of Dirac exchange.
	slater, err := NewSlaterExchange(1, false)
	require.NoError(t, err)
	p := xc.LDAPoint(slater, 1, []float64{1}, xc.OrderExc)
	assert.InDelta(t, 1.5*diracAtUnitDensity, p.Zk, 1e-12)
}

func TestSlaterExchangeUnpolarizedEqualsSplit(t *testing.T) {
	f, err := NewSlaterExchange(1, false)
	require.NoError(t, err)
	for _, n := range []float64{1e-3, 0.7, 12} {
		u := xc.LDAPoint(f, 1, []float64{n}, xc.OrderKxc)
		p := xc.LDAPoint(f, 2, []float64{n / 2, n / 2}, xc.OrderKxc)
		assert.InDelta(t, u.Zk, p.Zk, 1e-12*math.Abs(u.Zk))
		assert.InDelta(t, u.Vrho[0], p.Vrho[0], 1e-10*math.Abs(u.Vrho[0]))
		// Exchange does not couple the two channels.
		assert.InDelta(t, 0, p.V2rho2[1], 1e-10*math.Abs(p.V2rho2[0]))
		assert.InDelta(t, u.V2rho2[0], (p.V2rho2[0]+p.V2rho2[1])/2, 1e-9*math.Abs(u.V2rho2[0]))
	}
}

func TestRelativisticFactor(t *testing.T) {
	// beta = 1 at this rs, where phi = sqrt(2) - asinh(1).
	rs := math.Cbrt(9*math.Pi/4) / xc.SpeedOfLight
	f := relativisticFactor(xc.Variable(1, 0, xc.OrderExc, rs))
	assert.InDelta(t, 0.574122340997839, f.Val, 1e-12)

	big := relativisticFactor(xc.Variable(1, 0, xc.OrderExc, 100))
	assert.Less(t, big.Val, 1.0)
	assert.InDelta(t, 1, big.Val, 1e-8)
}

func TestRelativisticFactorSeriesIsContinuous(t *testing.T) {
	// beta = 1e-3 switches between the series and the closed form.
	rs := math.Cbrt(9*math.Pi/4) / (xc.SpeedOfLight * 1e-3)
	lo := relativisticFactor(xc.Variable(1, 0, xc.OrderFxc, rs*(1-1e-9)))
	hi := relativisticFactor(xc.Variable(1, 0, xc.OrderFxc, rs*(1+1e-9)))
	assert.InDelta(t, lo.Val, hi.Val, 1e-13)
	assert.InDelta(t, lo.D1(0), hi.D1(0), 1e-6*math.Abs(lo.D1(0)))
}

func TestSlaterExchangeKernels(t *testing.T) {
	for _, rel := range []bool{false, true} {
		f, err := NewSlaterExchange(1, rel)
		require.NoError(t, err)
		// Relativistic effects only show at rs near 1/c.
		rho := []float64{30, 10, 1e4, 2e4, 0.2, 0.15}
		in := &xc.Input{NSpin: 2, Rho: rho}
		out, err := xc.Evaluate(f, in, xc.OrderKxc)
		require.NoError(t, err)

		v := xc.DefaultFiniteDiff()
		e := xc.LDAEnergy(f, 2)
		num := make([]float64, len(out.V2rho2))
		require.NoError(t, v.Fxc(e, 2, 3, rho, num))
		dev, err := xc.Compare(out.V2rho2, num, 3)
		require.NoError(t, err)
		assert.Less(t, dev.MaxRelErr, 1e-6, "fxc relativistic = %v", rel)

		num = make([]float64, len(out.V3rho3))
		require.NoError(t, v.Kxc(e, 2, 3, rho, num))
		dev, err = xc.Compare(out.V3rho3, num, 4)
		require.NoError(t, err)
		assert.Less(t, dev.MaxRelErr, 1e-4, "kxc relativistic = %v", rel)
	}
}

func TestSlaterExchangeFullPolarization(t *testing.T) {
	f, err := NewSlaterExchange(2.0/3.0, false)
	require.NoError(t, err)
	// Exchange separates by spin, so the up-channel kernels do not depend
	// on rho_d and the mixed ones vanish.
	ref := xc.LDAPoint(f, 2, []float64{1, 0.3}, xc.OrderKxc)
	for _, rho := range [][]float64{{1, 0}, {1, 1e-20}} {
		p := xc.LDAPoint(f, 2, rho, xc.OrderKxc)
		assert.InDelta(t, ref.Vrho[0], p.Vrho[0], 1e-10, "rho = %v", rho)
		assert.InDelta(t, ref.V2rho2[0], p.V2rho2[0], 1e-9, "rho = %v", rho)
		assert.InDelta(t, 0, p.V2rho2[1], 1e-8, "rho = %v", rho)
		// The down channel diverges and carries the saturated f''(zeta).
		assert.Less(t, p.V2rho2[2], -0.1*xc.Saturated, "rho = %v", rho)
		assert.InDelta(t, ref.V3rho3[0], p.V3rho3[0], 1e-8, "rho = %v", rho)
		assert.InDelta(t, 0, p.V3rho3[1], 1e-8, "rho = %v", rho)
	}

	rel, err := NewSlaterExchange(2.0/3.0, true)
	require.NoError(t, err)
	for _, rho := range [][]float64{{1, 0}, {0, 0.2}} {
		p := xc.LDAPoint(rel, 2, rho, xc.OrderKxc)
		for _, block := range [][]float64{p.Vrho, p.V2rho2, p.V3rho3} {
			for i, v := range block {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "[%d] = %g, rho = %v", i, v, rho)
			}
		}
	}
}

func TestNewSlaterExchangeRejectsAlpha(t *testing.T) {
	for _, alpha := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewSlaterExchange(alpha, false)
		assert.True(t, errors.Is(err, xc.ErrParam), "alpha = %g", alpha)
	}
}
