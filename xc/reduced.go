// reduced.go --  This file is part of goXC project.
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
)

// Reduced coordinates of a gradient-corrected point.
const (
	CoordDens = iota
	CoordZeta
	CoordSigma
	NumCoords
)

// ReducedVariables holds rs, kf, ks, phi, t and t^2 of one grid point as
// towers over (n, zeta, sigma). Derivative slots above Order are nil.
//
// T2 is built directly as sigma/(2 phi ks n)^2. It is linear in sigma, so
// its sigma derivatives stay regular at vanishing gradient where those of
// T grow like sigma^(-3/2).
type ReducedVariables struct {
	Order Order
	Dens  float64
	Zeta  float64
	Sigma float64

	Rs  Tower
	Kf  Tower
	Ks  Tower
	Phi Tower
	T   Tower
	T2  Tower
}

// seitz returns rs(n) and its first three derivatives.
func seitz(n float64) [4]float64 {
	rs := RS(n)
	return [4]float64{
		rs,
		-rs / (3 * n),
		4 * rs / (9 * n * n),
		-28 * rs / (27 * n * n * n),
	}
}

// NewReducedVariables computes the reduced variables of a point with total
// density dens, spin polarization zeta and total contracted gradient sigma.
// Inputs below the floors are clamped.
func NewReducedVariables(dens, zeta, sigma float64, order Order) (*ReducedVariables, error) {
	if err := order.Check(OrderFxc); err != nil {
		return nil, fmt.Errorf("reduced variables: %w", err)
	}
	dens = math.Max(dens, MinDens)
	sigma = math.Max(sigma, MinGrad*MinGrad)
	zeta = math.Max(-1, math.Min(1, zeta))

	n := Variable(NumCoords, CoordDens, order, dens)
	z := Variable(NumCoords, CoordZeta, order, zeta)
	s := Variable(NumCoords, CoordSigma, order, sigma)

	rv := &ReducedVariables{Order: order, Dens: dens, Zeta: zeta, Sigma: sigma}
	rv.Rs = Apply(n, seitz(dens))
	rv.Kf = Cbrt(n.Scale(3 * math.Pi * math.Pi))
	rv.Ks = Sqrt(rv.Kf.Scale(4 / math.Pi))
	rv.Phi = Apply(z, SpinScaling(zeta, order))
	denom := Mul(Mul(rv.Phi, rv.Ks), n).Scale(2)
	rv.T = Mul(Sqrt(s), Inv(denom))
	rv.T2 = Mul(s, Inv(Mul(denom, denom)))
	return rv, nil
}

// Towers lists rs, kf, ks, phi, t in Perdew index order.
func (rv *ReducedVariables) Towers() []Tower {
	return []Tower{rv.Rs, rv.Kf, rv.Ks, rv.Phi, rv.T}
}
