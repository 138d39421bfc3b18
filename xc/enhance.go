// enhance.go --  This file is part of goXC project.
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

// EnhanceResult is an exchange enhancement factor F at channel reduced
// gradient x = |grad rho_s| / rho_s^(4/3).
//
// Ldfdx = dF/d(x^2) = (dF/dx)/(2x) and Ld2fdx2 = d^2F/d(x^2)^2 are regular
// at x = 0, where they take their limiting values.
type EnhanceResult struct {
	F       float64
	Dfdx    float64
	Ldfdx   float64
	D2fdx2  float64
	Ld2fdx2 float64
}

// Enhancement is an enhancement factor with fixed constants.
type Enhancement interface {
	Enhance(x float64, order Order) EnhanceResult
}

// EnhanceFromSquare builds the result from F and its derivatives in
// y = x^2.
func EnhanceFromSquare(x, f, fy, fyy float64, order Order) EnhanceResult {
	r := EnhanceResult{F: f}
	if order < OrderVxc {
		return r
	}
	r.Ldfdx = fy
	r.Dfdx = 2 * x * fy
	if order < OrderFxc {
		return r
	}
	r.Ld2fdx2 = fyy
	r.D2fdx2 = 2*fy + 4*x*x*fyy
	return r
}

// SquareDerivs returns F and its derivatives in y = x^2, in the form
// accepted by Apply.
func (r EnhanceResult) SquareDerivs() [4]float64 {
	return [4]float64{r.F, r.Ldfdx, r.Ld2fdx2, 0}
}

// PBEEnhancement is F(x) = 1 + kappa - kappa/(1 + mu s^2/kappa), s = X2S x.
type PBEEnhancement struct {
	Kappa float64
	Mu    float64
}

// NewPBEEnhancement validates the curvature bound kappa and the gradient
// coefficient mu.
func NewPBEEnhancement(kappa, mu float64) (PBEEnhancement, error) {
	if !(kappa > 0) || math.IsInf(kappa, 0) {
		return PBEEnhancement{}, fmt.Errorf("%w: kappa = %g must be positive", ErrParam, kappa)
	}
	if !(mu >= 0) || math.IsInf(mu, 0) {
		return PBEEnhancement{}, fmt.Errorf("%w: mu = %g must be non-negative", ErrParam, mu)
	}
	return PBEEnhancement{Kappa: kappa, Mu: mu}, nil
}

func (p PBEEnhancement) Enhance(x float64, order Order) EnhanceResult {
	c := p.Mu * X2S * X2S
	a := c / p.Kappa
	y := x * x
	d := 1 + a*y
	f := 1 + p.Kappa - p.Kappa/d
	fy := c / (d * d)
	fyy := -2 * a * c / (d * d * d)
	return EnhanceFromSquare(x, f, fy, fyy, order)
}

// ExchangeChannel turns an enhancement factor into the exchange energy per
// volume of one spin channel, -XFactorC rho^(4/3) F(x).
func ExchangeChannel(enh Enhancement) ChannelFunc {
	return func(rho, sigma Tower) Tower {
		y := Mul(sigma, Pow(rho, -8.0/3.0))
		x := math.Sqrt(y.Val)
		f := Apply(y, enh.Enhance(x, y.Order).SquareDerivs())
		return Mul(Pow(rho, 4.0/3.0), f).Scale(-XFactorC)
	}
}
