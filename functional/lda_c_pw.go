// lda_c_pw.go --  This file is part of goXC project.
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

import "github.com/MirzaevaIV/goXC/xc"

// pwParams are the fitting constants of the Perdew-Wang 1992 interpolation,
// per set: unpolarized, fully polarized, spin stiffness.
type pwParams struct {
	pp     [3]float64
	a      [3]float64
	alpha1 [3]float64
	beta1  [3]float64
	beta2  [3]float64
	beta3  [3]float64
	beta4  [3]float64
	fz20   float64
}

var pwOriginal = pwParams{
	pp:     [3]float64{1, 1, 1},
	a:      [3]float64{0.031091, 0.015545, 0.016887},
	alpha1: [3]float64{0.21370, 0.20548, 0.11125},
	beta1:  [3]float64{7.5957, 14.1189, 10.357},
	beta2:  [3]float64{3.5876, 6.1977, 3.6231},
	beta3:  [3]float64{1.6382, 3.3662, 0.88026},
	beta4:  [3]float64{0.49294, 0.62517, 0.49671},
	fz20:   1.709921,
}

// pwModified carries more digits in a and f''(0), as used by PBE.
var pwModified = pwParams{
	pp:     pwOriginal.pp,
	a:      [3]float64{0.0310907, 0.01554535, 0.0168869},
	alpha1: pwOriginal.alpha1,
	beta1:  pwOriginal.beta1,
	beta2:  pwOriginal.beta2,
	beta3:  pwOriginal.beta3,
	beta4:  pwOriginal.beta4,
	fz20:   1.709920934161365617563962776245,
}

// PW92 is the Perdew-Wang 1992 correlation of the uniform electron gas.
type PW92 struct {
	Modified bool
	p        *pwParams
}

func NewPW92(modified bool) *PW92 {
	if modified {
		return &PW92{Modified: true, p: &pwModified}
	}
	return &PW92{p: &pwOriginal}
}

func (c *PW92) Name() string {
	if c.Modified {
		return "lda_c_pw_mod"
	}
	return "lda_c_pw"
}

func (c *PW92) Family() xc.Family  { return xc.FamilyLDA }
func (c *PW92) MaxOrder() xc.Order { return xc.OrderKxc }

// g evaluates the interpolation G(rs) of set k.
func (c *PW92) g(k int, rs xc.Tower) xc.Tower {
	p := c.p
	sq := xc.Sqrt(rs)
	den := xc.Add(
		sq.Scale(p.beta1[k]),
		rs.Scale(p.beta2[k]),
		xc.Mul(rs, sq).Scale(p.beta3[k]),
		xc.Pow(rs, p.pp[k]+1).Scale(p.beta4[k]),
	).Scale(2 * p.a[k])
	lg := xc.Log(xc.Inv(den).Shift(1))
	return xc.Mul(rs.Scale(p.alpha1[k]).Shift(1), lg).Scale(-2 * p.a[k])
}

func (c *PW92) RsZeta(r *xc.LdaRsZeta) {
	rs, z := r.Variables()
	ec0 := c.g(0, rs)
	if r.NSpin == 1 {
		r.SetTower(ec0)
		return
	}
	ec1 := c.g(1, rs)
	ac := c.g(2, rs)
	fz := xc.Apply(z, xc.FZeta(z.Val, r.NSpin, r.Order).Derivs())
	z2 := xc.Mul(z, z)
	z4 := xc.Mul(z2, z2)
	stiff := xc.Mul(ac, xc.Mul(fz, z4.Scale(-1).Shift(1))).Scale(-1 / c.p.fz20)
	pol := xc.Mul(xc.Sub(ec1, ec0), xc.Mul(fz, z4))
	r.SetTower(xc.Add(ec0, stiff, pol))
}
