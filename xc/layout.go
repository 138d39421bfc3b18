// layout.go --  This file is part of goXC project.
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

// Potentials are the outputs of one grid point. Slices of orders that were
// not requested are nil.
//
// Index layout for nspin = 2:
//
//	vrho        u, d
//	vsigma      uu, ud, dd
//	v2rho2      u_u, u_d, d_d
//	v2rhosigma  u_uu, u_ud, u_dd, d_uu, d_ud, d_dd
//	v2sigma2    uu_uu, uu_ud, uu_dd, ud_ud, ud_dd, dd_dd
//	v3rho3      u_u_u, u_u_d, u_d_d, d_d_d
//
// Every slice has a single element for nspin = 1.
type Potentials struct {
	Zk         float64
	Vrho       []float64
	Vsigma     []float64
	V2rho2     []float64
	V2rhosigma []float64
	V2sigma2   []float64
	V3rho3     []float64
}

// Sizes of the per-point blocks.
func nSigma(nspin int) int {
	if nspin == 1 {
		return 1
	}
	return 3
}

func nPairs(n int) int { return n * (n + 1) / 2 }

func nTriples(n int) int { return n * (n + 1) * (n + 2) / 6 }

// potentialsFromTower reads the physical outputs off the energy per volume
// E over the canonical coordinates (spin densities, then sigmas).
func potentialsFromTower(e Tower, nspin int, gga bool, dens float64) Potentials {
	p := Potentials{Zk: e.Val / dens}
	ns, nsig := nspin, nSigma(nspin)
	if e.Order < OrderVxc {
		return p
	}
	p.Vrho = make([]float64, ns)
	for s := 0; s < ns; s++ {
		p.Vrho[s] = e.D1(s)
	}
	if gga {
		p.Vsigma = make([]float64, nsig)
		for j := 0; j < nsig; j++ {
			p.Vsigma[j] = e.D1(ns + j)
		}
	}
	if e.Order < OrderFxc {
		return p
	}
	p.V2rho2 = make([]float64, 0, nPairs(ns))
	for s := 0; s < ns; s++ {
		for t := s; t < ns; t++ {
			p.V2rho2 = append(p.V2rho2, e.D2(s, t))
		}
	}
	if gga {
		p.V2rhosigma = make([]float64, ns*nsig)
		for s := 0; s < ns; s++ {
			for j := 0; j < nsig; j++ {
				p.V2rhosigma[s*nsig+j] = e.D2(s, ns+j)
			}
		}
		p.V2sigma2 = make([]float64, 0, nPairs(nsig))
		for j := 0; j < nsig; j++ {
			for l := j; l < nsig; l++ {
				p.V2sigma2 = append(p.V2sigma2, e.D2(ns+j, ns+l))
			}
		}
	}
	if e.Order < OrderKxc || gga {
		return p
	}
	p.V3rho3 = make([]float64, 0, nTriples(ns))
	for s := 0; s < ns; s++ {
		for t := s; t < ns; t++ {
			for u := t; u < ns; u++ {
				p.V3rho3 = append(p.V3rho3, e.D3(s, t, u))
			}
		}
	}
	return p
}
