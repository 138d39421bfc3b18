// fd_test.go --  This file is part of goXC project.
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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairEnergy is rho_u^(4/3) + rho_d^(4/3) + rho_u rho_d.
func pairEnergy(_ int, rho []float64) float64 {
	return math.Pow(rho[0], 4.0/3.0) + math.Pow(rho[1], 4.0/3.0) + rho[0]*rho[1]
}

func TestFiniteDiffAcrossDecades(t *testing.T) {
	rho := []float64{1e-6, 2e-6, 0.3, 0.1, 50, 80}
	np := 3
	v := DefaultFiniteDiff()

	vrho := make([]float64, 2*np)
	require.NoError(t, v.Vxc(pairEnergy, 2, np, rho, vrho))
	v2 := make([]float64, 3*np)
	require.NoError(t, v.Fxc(pairEnergy, 2, np, rho, v2))
	v3 := make([]float64, 4*np)
	require.NoError(t, v.Kxc(pairEnergy, 2, np, rho, v3))

	for ip := 0; ip < np; ip++ {
		u, d := rho[2*ip], rho[2*ip+1]
		assertBlock(t, []float64{
			4.0 / 3.0 * math.Cbrt(u) + d,
			4.0 / 3.0 * math.Cbrt(d) + u,
		}, vrho[2*ip:2*ip+2], 1e-8, "vrho")
		assertBlock(t, []float64{
			4.0 / 9.0 / math.Pow(u, 2.0/3.0), 1, 4.0 / 9.0 / math.Pow(d, 2.0/3.0),
		}, v2[3*ip:3*ip+3], 1e-6, "v2rho2")
		assertBlock(t, []float64{
			-8.0 / 27.0 / math.Pow(u, 5.0/3.0), 0, 0, -8.0 / 27.0 / math.Pow(d, 5.0/3.0),
		}, v3[4*ip:4*ip+4], 1e-4, "v3rho3")
	}
}

func TestFiniteDiffErrors(t *testing.T) {
	v := DefaultFiniteDiff()
	err := v.Fxc(pairEnergy, 2, 1, []float64{0.3, 0}, make([]float64, 3))
	assert.True(t, errors.Is(err, ErrDensityFloor))

	err = v.Fxc(pairEnergy, 2, 2, []float64{0.3, 0.1}, make([]float64, 6))
	assert.True(t, errors.Is(err, ErrShape))

	err = v.Kxc(pairEnergy, 2, 1, []float64{0.3, 0.1}, make([]float64, 3))
	assert.True(t, errors.Is(err, ErrShape))
}

func TestFiniteDiffMatchesLDAKernel(t *testing.T) {
	in := &Input{NSpin: 2, Rho: []float64{1e-5, 3e-5, 0.02, 0.01, 0.4, 0.4, 7, 2}}
	out, err := Evaluate(toyLDA{}, in, OrderKxc)
	require.NoError(t, err)
	np := in.Points()

	v := DefaultFiniteDiff()
	v2 := make([]float64, len(out.V2rho2))
	require.NoError(t, v.Fxc(LDAEnergy(toyLDA{}, 2), 2, np, in.Rho, v2))
	dev, err := Compare(out.V2rho2, v2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3*np, dev.Count)
	assert.Less(t, dev.MaxRelErr, 1e-6)

	v3 := make([]float64, len(out.V3rho3))
	require.NoError(t, v.Kxc(LDAEnergy(toyLDA{}, 2), 2, np, in.Rho, v3))
	dev, err = Compare(out.V3rho3, v3, 4)
	require.NoError(t, err)
	assert.Less(t, dev.MaxRelErr, 1e-4)
}

func TestFiniteDiffStepTradeOff(t *testing.T) {
	// Too large a step is dominated by truncation, too small a step by
	// round-off; the default lies between.
	in := &Input{NSpin: 1, Rho: []float64{0.05, 0.7, 20}}
	out, err := Evaluate(toyLDA{}, in, OrderFxc)
	require.NoError(t, err)
	dev := func(step float64) float64 {
		num := make([]float64, 3)
		require.NoError(t, FiniteDiff{RelStep: step}.Fxc(LDAEnergy(toyLDA{}, 1), 1, 3, in.Rho, num))
		d, err := Compare(out.V2rho2, num, 1)
		require.NoError(t, err)
		return d.MaxRelErr
	}
	best := dev(DefaultFiniteDiff().RelStep)
	assert.Less(t, best, dev(5e-2))
	assert.Less(t, best, dev(1e-7))
}

func TestCompare(t *testing.T) {
	dev, err := Compare([]float64{1, 0, 2}, []float64{1, 1e-9, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, dev.Count)
	assert.InDelta(t, 5e-10, dev.MaxRelErr, 1e-20)
	assert.InDelta(t, 5e-10/math.Sqrt(3), dev.RMSRelErr, 1e-20)

	_, err = Compare([]float64{1, 2}, []float64{1}, 1)
	assert.True(t, errors.Is(err, ErrShape))

	dev, err = Compare([]float64{0, 0}, []float64{0, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, dev.Count)
}
