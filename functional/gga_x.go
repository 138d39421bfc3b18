// gga_x.go --  This file is part of goXC project.
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
	"fmt"
	"math"

	"github.com/MirzaevaIV/goXC/xc"
)

// Constants of the PBE exchange family.
const (
	PBEKappa    = 0.8040
	PBEMu       = 0.2195149727645171
	RevPBEKappa = 1.245
	PBESolMu    = 10.0 / 81.0
	B88Beta     = 0.0042
	B88Gamma    = 6.0
)

// GGAExchange is exchange of the form -XFactorC rho_s^(4/3) F(x_s) summed
// over spin channels.
type GGAExchange struct {
	name string
	Enh  xc.Enhancement
}

func (g *GGAExchange) Name() string       { return g.name }
func (g *GGAExchange) Family() xc.Family  { return xc.FamilyGGA }
func (g *GGAExchange) MaxOrder() xc.Order { return xc.OrderFxc }

func (g *GGAExchange) Point(nspin int, rho, sigma []float64, order xc.Order) xc.Potentials {
	return xc.SpinChannelPoint(nspin, rho, sigma, order, xc.ExchangeChannel(g.Enh))
}

// NewPBEExchange configures PBE-type exchange with curvature bound kappa
// and gradient coefficient mu.
func NewPBEExchange(kappa, mu float64) (*GGAExchange, error) {
	enh, err := xc.NewPBEEnhancement(kappa, mu)
	if err != nil {
		return nil, fmt.Errorf("gga_x_pbe: %w", err)
	}
	return &GGAExchange{name: "gga_x_pbe", Enh: enh}, nil
}

// RPBEEnhancement is F(x) = 1 + kappa (1 - exp(-mu s^2/kappa)).
type RPBEEnhancement struct {
	Kappa float64
	Mu    float64
}

func (p RPBEEnhancement) Enhance(x float64, order xc.Order) xc.EnhanceResult {
	c := p.Mu * xc.X2S * xc.X2S
	a := c / p.Kappa
	ex := math.Exp(-a * x * x)
	return xc.EnhanceFromSquare(x, 1+p.Kappa*(1-ex), c*ex, -a*c*ex, order)
}

func NewRPBEExchange(kappa, mu float64) (*GGAExchange, error) {
	if _, err := xc.NewPBEEnhancement(kappa, mu); err != nil {
		return nil, fmt.Errorf("gga_x_rpbe: %w", err)
	}
	return &GGAExchange{name: "gga_x_rpbe", Enh: RPBEEnhancement{Kappa: kappa, Mu: mu}}, nil
}

// B88Enhancement is F(x) = 1 + beta/XFactorC x^2/(1 + gamma beta x asinh x).
type B88Enhancement struct {
	Beta  float64
	Gamma float64
}

// xasinh returns g = x asinh(x) and its derivatives in y = x^2.
func xasinh(x float64) [4]float64 {
	y := x * x
	if x < 1e-3 {
		return [4]float64{y - y*y/6 + 3*y*y*y/40, 1 - y/3 + 9*y*y/40, -1.0/3 + 9*y/20, 0}
	}
	s := math.Sqrt(1 + y)
	as := math.Asinh(x)
	n := as + x/s
	dn := 1/s + 1/(s*s*s)
	return [4]float64{x * as, n / (2 * x), (x*dn - n) / (4 * x * y), 0}
}

func (p B88Enhancement) Enhance(x float64, order xc.Order) xc.EnhanceResult {
	y := xc.Variable(1, 0, order, x*x)
	g := xc.Apply(y, xasinh(x))
	den := g.Scale(p.Gamma * p.Beta).Shift(1)
	f := xc.Mul(y, xc.Inv(den)).Scale(p.Beta / xc.XFactorC).Shift(1)
	var fy, fyy float64
	if order >= xc.OrderVxc {
		fy = f.D1(0)
	}
	if order >= xc.OrderFxc {
		fyy = f.D2(0, 0)
	}
	return xc.EnhanceFromSquare(x, f.Val, fy, fyy, order)
}

func NewB88(beta, gamma float64) (*GGAExchange, error) {
	if !(beta > 0) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("%w: gga_x_b88 beta = %g must be positive", xc.ErrParam, beta)
	}
	if !(gamma >= 0) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("%w: gga_x_b88 gamma = %g must be non-negative", xc.ErrParam, gamma)
	}
	return &GGAExchange{name: "gga_x_b88", Enh: B88Enhancement{Beta: beta, Gamma: gamma}}, nil
}
