// lda.go --  This file is part of goXC project.
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

import "math"

// Indices into LdaRsZeta.Rs.
const (
	RsTotal = iota
	RsUp
	RsDown
)

// LdaRsZeta is the local-only representation of a grid point: the Seitz
// radius of the total density and of each spin channel, zeta, and the
// energy per particle with its derivatives in (rs, zeta) through third
// order. A local functional fills the energy fields up to Order; the rest
// stay zero.
type LdaRsZeta struct {
	Order Order
	NSpin int
	Rs    [3]float64
	Zeta  float64

	Zk                                  float64
	Dedrs, Dedz                         float64
	D2edrs2, D2edrsz, D2edz2            float64
	D3edrs3, D3edrs2z, D3edrsz2, D3edz3 float64
}

// NewLdaRsZeta reduces the spin densities of one point.
func NewLdaRsZeta(nspin int, rho []float64, order Order) *LdaRsZeta {
	dens, zeta := RhoToDZeta(nspin, rho)
	r := &LdaRsZeta{Order: order, NSpin: nspin, Zeta: zeta}
	r.Rs[RsTotal] = RS(dens)
	if nspin == 1 {
		ch := RS(math.Max(MinDens, 0.5*rho[0]))
		r.Rs[RsUp], r.Rs[RsDown] = ch, ch
	} else {
		r.Rs[RsUp] = RS(math.Max(MinDens, rho[0]))
		r.Rs[RsDown] = RS(math.Max(MinDens, rho[1]))
	}
	return r
}

// Variables returns rs and zeta as independent towers of dimension 2.
func (r *LdaRsZeta) Variables() (rs, zeta Tower) {
	return Variable(2, 0, r.Order, r.Rs[RsTotal]), Variable(2, 1, r.Order, r.Zeta)
}

// SetTower copies an energy tower over (rs, zeta) into the named fields.
func (r *LdaRsZeta) SetTower(e Tower) {
	r.Zk = e.Val
	if r.Order < OrderVxc {
		return
	}
	r.Dedrs, r.Dedz = e.D1(0), e.D1(1)
	if r.Order < OrderFxc {
		return
	}
	r.D2edrs2, r.D2edrsz, r.D2edz2 = e.D2(0, 0), e.D2(0, 1), e.D2(1, 1)
	if r.Order < OrderKxc {
		return
	}
	r.D3edrs3, r.D3edrs2z = e.D3(0, 0, 0), e.D3(0, 0, 1)
	r.D3edrsz2, r.D3edz3 = e.D3(0, 1, 1), e.D3(1, 1, 1)
}

// Tower is the inverse of SetTower.
func (r *LdaRsZeta) Tower() Tower {
	e := NewTower(2, r.Order, r.Zk)
	if r.Order >= OrderVxc {
		e.Grad[0], e.Grad[1] = r.Dedrs, r.Dedz
	}
	if r.Order >= OrderFxc {
		e.Hess.SetSym(0, 0, r.D2edrs2)
		e.Hess.SetSym(0, 1, r.D2edrsz)
		e.Hess.SetSym(1, 1, r.D2edz2)
	}
	if r.Order >= OrderKxc {
		e.SetD3(0, 0, 0, r.D3edrs3)
		e.SetD3(0, 0, 1, r.D3edrs2z)
		e.SetD3(0, 1, 1, r.D3edrsz2)
		e.SetD3(1, 1, 1, r.D3edz3)
	}
	return e
}

// LDAPoint evaluates a local functional at one point and propagates the
// (rs, zeta) derivatives to the spin densities.
func LDAPoint(f LDAFunctional, nspin int, rho []float64, order Order) Potentials {
	dim := CoordDim(nspin, false)
	n, z := DensityCoords(nspin, rho, dim, order)
	r := NewLdaRsZeta(nspin, rho, order)
	f.RsZeta(r)
	rs := Apply(n, seitz(n.Val))
	e := Mul(n, Compose(r.Tower(), []Tower{rs, z}))
	return potentialsFromTower(e, nspin, false, n.Val)
}
