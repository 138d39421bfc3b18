// helpers_test.go --  This file is part of goXC project.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// toyLDA is e(rs, zeta) = -0.45/rs + 0.02 log(1 + rs) - 0.01 f(zeta) sqrt(rs).
type toyLDA struct{}

func (toyLDA) Name() string    { return "toy_lda" }
func (toyLDA) Family() Family  { return FamilyLDA }
func (toyLDA) MaxOrder() Order { return OrderKxc }
func (toyLDA) RsZeta(r *LdaRsZeta) {
	rs, z := r.Variables()
	fz := Apply(z, FZeta(z.Val, r.NSpin, r.Order).Derivs())
	r.SetTower(Add(
		Inv(rs).Scale(-0.45),
		Log(rs.Shift(1)).Scale(0.02),
		Mul(fz, Sqrt(rs)).Scale(-0.01),
	))
}

func toyLDAPerParticle(nspin int, rs, zeta float64) float64 {
	e := -0.45/rs + 0.02*math.Log(1+rs)
	if nspin == 2 {
		fz := (math.Pow(1+zeta, 4.0/3.0) + math.Pow(1-zeta, 4.0/3.0) - 2) / FZetaFactor
		e -= 0.01 * fz * math.Sqrt(rs)
	}
	return e
}

func toyLDAEnergy(nspin int, rho []float64) float64 {
	n, z := RhoToDZeta(nspin, rho)
	return n * toyLDAPerParticle(nspin, RS(n), z)
}

// toyPerdew uses every Perdew intermediate:
// e = ec (1 + 0.1 t^2 phi^3) + 0.01 kf t^2/(1 + t^2) + 0.001 ks rs.
type toyPerdew struct{}

func (toyPerdew) Name() string    { return "toy_perdew" }
func (toyPerdew) Family() Family  { return FamilyGGA }
func (toyPerdew) MaxOrder() Order { return OrderFxc }

func (toyPerdew) Point(nspin int, rho, sigma []float64, order Order) Potentials {
	pc, err := NewPerdewContext(toyLDA{}, nspin, rho, sigma, order)
	if err != nil {
		panic(err)
	}
	rs, kf, ks := pc.Var(PerdewRs), pc.Var(PerdewKf), pc.Var(PerdewKs)
	phi, t, ec := pc.Var(PerdewPhi), pc.Var(PerdewT), pc.Var(PerdewEcunif)
	t2, tt := pc.Var(PerdewT2), Mul(t, t)
	phi3 := Mul(Mul(phi, phi), phi)
	e := Add(
		Mul(ec, Mul(t2, phi3).Scale(0.1).Shift(1)),
		Mul(kf, Mul(tt, Inv(tt.Shift(1)))).Scale(0.01),
		Mul(ks, rs).Scale(0.001),
	)
	return PerdewPotentials(pc, e)
}

func toyPerdewEnergy(nspin int, rho, sigma []float64) float64 {
	n, z := RhoToDZeta(nspin, rho)
	s := TotalSigma(nspin, sigma)
	rs := RS(n)
	kf := math.Cbrt(3 * math.Pi * math.Pi * n)
	ks := math.Sqrt(4 * kf / math.Pi)
	phi := 0.5 * (math.Pow(1+z, 2.0/3.0) + math.Pow(1-z, 2.0/3.0))
	t := math.Sqrt(s) / (2 * phi * ks * n)
	ec := toyLDAPerParticle(nspin, rs, z)
	e := ec*(1+0.1*t*t*phi*phi*phi) + 0.01*kf*t*t/(1+t*t) + 0.001*ks*rs
	return n * e
}

// relDerivs differentiates f at x0 in relative coordinates and converts
// the gradient and Hessian back to x.
func relDerivs(f func(x []float64) float64, x0 []float64, step float64) ([]float64, *mat.SymDense) {
	g := func(u []float64) float64 {
		x := make([]float64, len(x0))
		for i := range x {
			x[i] = x0[i] * (1 + u[i])
		}
		return f(x)
	}
	u0 := make([]float64, len(x0))
	grad := fd.Gradient(nil, g, u0, &fd.Settings{Formula: fd.Central, Step: 1e-6})
	floats.Div(grad, x0)
	hess := mat.NewSymDense(len(x0), nil)
	fd.Hessian(hess, g, u0, &fd.Settings{Formula: fd.Central, Step: step})
	for i := range x0 {
		for j := i; j < len(x0); j++ {
			hess.SetSym(i, j, hess.At(i, j)/(x0[i]*x0[j]))
		}
	}
	return grad, hess
}

// pairs reads the upper triangle of the block [lo, hi) of h row by row.
func pairs(h *mat.SymDense, lo, hi int) []float64 {
	var p []float64
	for i := lo; i < hi; i++ {
		for j := i; j < hi; j++ {
			p = append(p, h.At(i, j))
		}
	}
	return p
}

// assertBlock compares two blocks relative to the largest entry of want.
func assertBlock(t *testing.T, want, got []float64, rel float64, msg string) {
	t.Helper()
	if !assert.Len(t, got, len(want), msg) {
		return
	}
	scale := math.Max(floats.Norm(want, math.Inf(1)), 1e-300)
	for i := range want {
		assert.InDelta(t, want[i], got[i], rel*scale, "%s[%d]", msg, i)
	}
}
