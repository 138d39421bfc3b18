// lda_x.go --  This file is part of goXC project.
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

// Exchange energy per particle of the unpolarized uniform gas times rs,
// -3/4 (3/(2 pi))^(2/3).
const slaterAx = -0.458165293283142893475554485052

// SlaterExchange is local exchange scaled by 3/2 alpha (alpha = 2/3 is
// Dirac exchange), with the MacDonald-Vosko relativistic correction when
// Relativistic is set.
type SlaterExchange struct {
	Alpha        float64
	Relativistic bool
}

func NewSlaterExchange(alpha float64, relativistic bool) (*SlaterExchange, error) {
	if !(alpha > 0) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: lda_x alpha = %g must be positive", xc.ErrParam, alpha)
	}
	return &SlaterExchange{Alpha: alpha, Relativistic: relativistic}, nil
}

func (s *SlaterExchange) Name() string       { return "lda_x" }
func (s *SlaterExchange) Family() xc.Family  { return xc.FamilyLDA }
func (s *SlaterExchange) MaxOrder() xc.Order { return xc.OrderKxc }

func (s *SlaterExchange) RsZeta(r *xc.LdaRsZeta) {
	rs, z := r.Variables()
	fz := xc.Apply(z, xc.FZeta(z.Val, r.NSpin, r.Order).Derivs())
	spin := fz.Scale(0.5 * xc.FZetaFactor).Shift(1)
	e := xc.Mul(xc.Inv(rs), spin).Scale(1.5 * s.Alpha * slaterAx)
	if s.Relativistic {
		e = xc.Mul(e, relativisticFactor(rs))
	}
	r.SetTower(e)
}

// relativisticFactor is 1 - 3/2 phi(beta)^2 with
// phi = sqrt(1+beta^2)/beta - asinh(beta)/beta^2 and
// beta = (9 pi/4)^(1/3)/(rs c).
func relativisticFactor(rs xc.Tower) xc.Tower {
	beta := xc.Inv(rs).Scale(math.Cbrt(9*math.Pi/4) / xc.SpeedOfLight)
	var phi xc.Tower
	if b := beta.Val; b < 1e-3 {
		b2 := b * b
		phi = xc.Apply(beta, [4]float64{
			b * (2.0/3.0 - b2/5 + 3*b2*b2/28),
			2.0/3.0 - 3*b2/5 + 15*b2*b2/28,
			-6*b/5 + 15*b*b2/7,
			-6.0/5 + 45*b2/7,
		})
	} else {
		sq := xc.Sqrt(xc.Mul(beta, beta).Shift(1))
		inv := xc.Inv(beta)
		phi = xc.Sub(xc.Mul(sq, inv), xc.Mul(xc.Asinh(beta), xc.Mul(inv, inv)))
	}
	return xc.Mul(phi, phi).Scale(-1.5).Shift(1)
}
