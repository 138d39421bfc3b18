// const.go --  This file is part of goXC project.
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

// Package xc evaluates exchange-correlation energy densities and their
// derivatives with respect to the electron density and its gradient.
//
// Functionals are written over reduced variables (Seitz radius, spin
// polarization, reduced gradient, ...). The package converts physical
// inputs into those variables and carries the derivatives back with the
// chain rule, through third order for local functionals and through
// second order for gradient-corrected ones.
package xc

import "math"

const (
	// Densities, gradients and kinetic energy densities below these floors
	// are clamped before any division.
	MinDens = 5.0e-13
	MinGrad = 5.0e-13
	MinTau  = 5.0e-13

	// FZetaFactor = 2^(4/3) - 2 normalizes f(zeta) so that f(1) = 1.
	FZetaFactor = 0.519842099789746380

	// XFactorC = 3/8 (3/pi)^(1/3) 4^(2/3), exchange of a fully polarized channel.
	XFactorC = 0.9305257363491000250020102180716672510262
	// KFactorC = 3/10 (6 pi^2)^(2/3), Thomas-Fermi kinetic energy of a channel.
	KFactorC = 4.557799872345597137288163759599305358515
	// X2S = 1/(2 (6 pi^2)^(1/3)) converts the channel gradient x to s.
	X2S = 0.1282782438530421943003109254455883701296

	Cbrt2        = 1.259921049894873164767210607278228350570
	SpeedOfLight = 137.0359996287515
)

// RS returns the Seitz radius (3/(4 pi n))^(1/3).
func RS(n float64) float64 {
	return math.Cbrt(3.0 / (4.0 * math.Pi * n))
}

// DensFromRS inverts RS.
func DensFromRS(rs float64) float64 {
	return 3.0 / (4.0 * math.Pi * rs * rs * rs)
}
