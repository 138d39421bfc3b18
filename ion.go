// ion.go --  This file is part of goXC project.
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

package main

import (
	"math"

	"github.com/MirzaevaIV/goXC/quadrature"
	"github.com/MirzaevaIV/goXC/xc"
)

// hydrogenic returns the 1s density of a one-electron ion of nuclear
// charge z at radius r, and its gradient norm.
func hydrogenic(z, r float64) (n, grad float64) {
	n = z * z * z / math.Pi * math.Exp(-2*z*r)
	return n, 2 * z * n
}

// ionInput places the 1s density on the radii r. For nspin = 2 the
// electron is spin up.
func ionInput(z float64, nspin int, gga bool, r []float64) *xc.Input {
	in := &xc.Input{NSpin: nspin}
	for _, ri := range r {
		n, g := hydrogenic(z, ri)
		if nspin == 1 {
			in.Rho = append(in.Rho, n)
			if gga {
				in.Sigma = append(in.Sigma, g*g)
			}
			continue
		}
		in.Rho = append(in.Rho, n, 0)
		if gga {
			in.Sigma = append(in.Sigma, g*g, 0, 0)
		}
	}
	return in
}

// ionEnergy integrates the energy of f over the density of a hydrogenic
// ion, 4 pi int r^2 n eps(n) dr. Each batch of quadrature nodes is one
// call to xc.Evaluate.
func ionEnergy(f xc.Functional, z float64, nspin int) (quadrature.Result, error) {
	gga := f.Family() == xc.FamilyGGA
	var evalErr error
	integrand := func(r, fx []float64) {
		in := ionInput(z, nspin, gga, r)
		out, err := xc.Evaluate(f, in, xc.OrderExc)
		if err != nil {
			evalErr = err
			for i := range fx {
				fx[i] = math.NaN()
			}
			return
		}
		for i, ri := range r {
			n, _ := xc.RhoToDZeta(nspin, in.RhoAt(i))
			fx[i] = 4 * math.Pi * ri * ri * n * out.Zk[i]
		}
	}
	// The density has decayed by e^-120 at the outer bound.
	res, err := quadrature.QAG(integrand, 0, 60/z, quadrature.DefaultConfig())
	if evalErr != nil {
		return res, evalErr
	}
	return res, err
}
