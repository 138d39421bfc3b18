// channel.go --  This file is part of goXC project.
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

// ChannelFunc returns the energy per volume of a single spin channel with
// density rho and contracted gradient sigma.
type ChannelFunc func(rho, sigma Tower) Tower

// SpinChannelPoint evaluates a functional obeying the spin-scaling relation
// E[rho_u, rho_d] = e(rho_u, sigma_uu) + e(rho_d, sigma_dd). For nspin = 1
// the channel (rho/2, sigma/4) is counted twice. Channels below MinDens
// do not contribute.
func SpinChannelPoint(nspin int, rho, sigma []float64, order Order, channel ChannelFunc) Potentials {
	dim := CoordDim(nspin, true)
	e := Constant(dim, order, 0)
	if nspin == 1 {
		if 0.5*rho[0] >= MinDens {
			r := Variable(dim, 0, order, rho[0])
			s := Variable(dim, 1, order, math.Max(sigma[0], MinGrad*MinGrad))
			e = channel(r.Scale(0.5), s.Scale(0.25)).Scale(2)
		}
	} else {
		for ch := 0; ch < 2; ch++ {
			if rho[ch] < MinDens {
				continue
			}
			r := Variable(dim, ch, order, rho[ch])
			s := Variable(dim, 2+2*ch, order, math.Max(sigma[2*ch], MinGrad*MinGrad))
			e = Add(e, channel(r, s))
		}
	}
	dens, _ := RhoToDZeta(nspin, rho)
	return potentialsFromTower(e, nspin, true, dens)
}
