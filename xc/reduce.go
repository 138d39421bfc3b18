// reduce.go --  This file is part of goXC project.
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

// RhoToDZeta returns the total density and the spin polarization of one
// grid point. Below MinDens the density is clamped to the floor and zeta
// is reported as zero.
func RhoToDZeta(nspin int, rho []float64) (dens, zeta float64) {
	if nspin == 1 {
		return math.Max(MinDens, rho[0]), 0
	}
	dens = math.Max(MinDens, rho[0]+rho[1])
	if dens > MinDens {
		zeta = (rho[0] - rho[1]) / dens
		zeta = math.Max(-1, math.Min(1, zeta))
	}
	return dens, zeta
}

// DZetaToRho splits a total density back into spin channels.
func DZetaToRho(dens, zeta float64) (up, down float64) {
	return 0.5 * dens * (1 + zeta), 0.5 * dens * (1 - zeta)
}

// CoordDim is the number of canonical physical coordinates of one grid
// point: the spin densities, followed for gradient-corrected functionals
// by the contracted gradients (sigma for nspin = 1; sigma_uu, sigma_ud,
// sigma_dd for nspin = 2).
func CoordDim(nspin int, gga bool) int {
	if !gga {
		return nspin
	}
	if nspin == 1 {
		return 2
	}
	return 5
}

// DensityCoords returns the towers of the total density and of zeta over
// the canonical physical coordinates of the point.
func DensityCoords(nspin int, rho []float64, dim int, order Order) (n, zeta Tower) {
	dens, z := RhoToDZeta(nspin, rho)
	if nspin == 1 {
		n = Variable(dim, 0, order, dens)
		return n, Constant(dim, order, 0)
	}
	up := Variable(dim, 0, order, rho[0])
	dn := Variable(dim, 1, order, rho[1])
	n = Add(up, dn)
	n.Val = dens
	if rho[0]+rho[1] <= MinDens {
		return n, Constant(dim, order, 0)
	}
	zeta = Mul(Sub(up, dn), Inv(n))
	zeta.Val = z
	return n, zeta
}

// TotalSigma contracts the spin-resolved gradients into
// |grad n|^2 = sigma_uu + 2 sigma_ud + sigma_dd, clamped at MinGrad^2.
func TotalSigma(nspin int, sigma []float64) float64 {
	s := sigma[0]
	if nspin == 2 {
		s += 2*sigma[1] + sigma[2]
	}
	return math.Max(s, MinGrad*MinGrad)
}

// GradientCoord returns the tower of the total sigma over the canonical
// physical coordinates of a gradient-corrected point.
func GradientCoord(nspin int, sigma []float64, dim int, order Order) Tower {
	s := NewTower(dim, order, TotalSigma(nspin, sigma))
	if order >= OrderVxc {
		if nspin == 1 {
			s.Grad[1] = 1
		} else {
			s.Grad[2], s.Grad[3], s.Grad[4] = 1, 2, 1
		}
	}
	return s
}
