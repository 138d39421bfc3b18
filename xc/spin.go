// spin.go --  This file is part of goXC project.
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

// Saturated is reported in place of the divergent second and third
// derivatives of f(zeta) at |zeta| = 1.
const Saturated = math.MaxFloat64

// SpinInterpolation holds
//
//	f(zeta) = ((1+zeta)^(4/3) + (1-zeta)^(4/3) - 2) / (2^(4/3) - 2)
//
// and its derivatives up to Order. Slots above Order are zero.
type SpinInterpolation struct {
	Order               Order
	Fz, Dfz, D2fz, D3fz float64
	// Saturated is set when a requested derivative diverges and was
	// replaced by the ±Saturated sentinel.
	Saturated bool
}

// FZeta evaluates the spin interpolation function. Unpolarized callers
// (nspin == 1) get all zeros.
func FZeta(zeta float64, nspin int, order Order) SpinInterpolation {
	fz := SpinInterpolation{Order: order}
	if nspin == 1 {
		return fz
	}
	opz, omz := 1+zeta, 1-zeta
	c1, c2 := math.Cbrt(opz), math.Cbrt(omz)

	fz.Fz = (opz*c1 + omz*c2 - 2) / FZetaFactor
	if order < OrderVxc {
		return fz
	}
	fz.Dfz = (c1 - c2) * (4.0 / 3.0) / FZetaFactor
	if order < OrderFxc {
		return fz
	}
	edge := math.Abs(zeta) == 1
	if edge {
		fz.D2fz = Saturated
		fz.Saturated = true
	} else {
		fz.D2fz = (4.0 / 9.0) / FZetaFactor * (1/(c1*c1) + 1/(c2*c2))
	}
	if order < OrderKxc {
		return fz
	}
	if edge {
		fz.D3fz = math.Copysign(Saturated, zeta)
	} else {
		fz.D3fz = -(8.0 / 27.0) / FZetaFactor * (1/(opz*c1*c1) - 1/(omz*c2*c2))
	}
	return fz
}

// Derivs returns [f, f', f'', f'''] for use with Apply.
func (s SpinInterpolation) Derivs() [4]float64 {
	return [4]float64{s.Fz, s.Dfz, s.D2fz, s.D3fz}
}

// SpinScaling returns [phi, phi', phi'', phi'''] of the spin-scaling factor
//
//	phi(zeta) = ((1+zeta)^(2/3) + (1-zeta)^(2/3)) / 2
//
// up to order. phi is bounded between 2^(-1/3) and 1; the terms carrying
// negative powers of 1+zeta or 1-zeta are dropped once that factor falls
// below MinDens.
func SpinScaling(zeta float64, order Order) [4]float64 {
	var d [4]float64
	opz, omz := 1+zeta, 1-zeta
	c1, c2 := math.Cbrt(opz), math.Cbrt(omz)
	d[0] = 0.5 * (c1*c1 + c2*c2)
	if order < OrderVxc {
		return d
	}
	okp, okm := opz >= MinDens, omz >= MinDens
	if okp {
		d[1] += 1 / (3 * c1)
		d[2] -= 1 / (9 * opz * c1)
		d[3] += 4 / (27 * opz * opz * c1)
	}
	if okm {
		d[1] -= 1 / (3 * c2)
		d[2] -= 1 / (9 * omz * c2)
		d[3] -= 4 / (27 * omz * omz * c2)
	}
	if order < OrderFxc {
		d[2], d[3] = 0, 0
	} else if order < OrderKxc {
		d[3] = 0
	}
	return d
}
