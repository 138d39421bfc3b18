// perdew.go --  This file is part of goXC project.
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
	"fmt"
	"math"
)

// Intermediates of Perdew-family functionals.
const (
	PerdewRs = iota
	PerdewKf
	PerdewKs
	PerdewPhi
	PerdewT
	PerdewEcunif
	PerdewT2
	NumPerdew
)

// PerdewContext is the per-point state of a Perdew-family gradient
// correction: the reduced variables, the uniform-gas reference energy
// ecunif (itself a function of rs and zeta) and gdmt = |grad n|.
type PerdewContext struct {
	NSpin  int
	Order  Order
	Dens   float64
	Zeta   float64
	Sigma  float64
	Gdmt   float64
	Ecunif float64

	Unif *LdaRsZeta
	Vars *ReducedVariables

	ecunif Tower
	rho    []float64
	sigma  []float64
}

// NewPerdewContext reduces one grid point and evaluates the uniform-gas
// reference unif on it.
func NewPerdewContext(unif LDAFunctional, nspin int, rho, sigma []float64, order Order) (*PerdewContext, error) {
	if err := checkNSpin(nspin); err != nil {
		return nil, err
	}
	if len(rho) != nspin || len(sigma) != nSigma(nspin) {
		return nil, fmt.Errorf("perdew context: %w", ErrShape)
	}
	dens, zeta := RhoToDZeta(nspin, rho)
	s := TotalSigma(nspin, sigma)
	vars, err := NewReducedVariables(dens, zeta, s, order)
	if err != nil {
		return nil, err
	}
	pc := &PerdewContext{
		NSpin: nspin,
		Order: order,
		Dens:  dens,
		Zeta:  zeta,
		Sigma: s,
		Gdmt:  math.Sqrt(s),
		Vars:  vars,
		rho:   append([]float64(nil), rho...),
		sigma: append([]float64(nil), sigma...),
	}

	pc.Unif = NewLdaRsZeta(nspin, rho, order)
	unif.RsZeta(pc.Unif)
	pc.Ecunif = pc.Unif.Zk
	z := Variable(NumCoords, CoordZeta, order, zeta)
	pc.ecunif = Compose(pc.Unif.Tower(), []Tower{vars.Rs, z})
	return pc, nil
}

// Value returns the current value of intermediate i.
func (pc *PerdewContext) Value(i int) float64 {
	switch i {
	case PerdewRs:
		return pc.Vars.Rs.Val
	case PerdewKf:
		return pc.Vars.Kf.Val
	case PerdewKs:
		return pc.Vars.Ks.Val
	case PerdewPhi:
		return pc.Vars.Phi.Val
	case PerdewT:
		return pc.Vars.T.Val
	case PerdewEcunif:
		return pc.Ecunif
	case PerdewT2:
		return pc.Vars.T2.Val
	}
	panic(fmt.Sprintf("xc: no Perdew intermediate %d", i))
}

// Var returns intermediate i as an independent variable, the building
// block of the energy tower a functional hands to PerdewPotentials.
func (pc *PerdewContext) Var(i int) Tower {
	return Variable(NumPerdew, i, pc.Order, pc.Value(i))
}

// PerdewPotentials propagates e, the energy per particle as a tower over
// the Perdew intermediates, to the physical potentials. Every path
// from the spin densities and sigmas to e is summed: through rs, kf and ks
// from n, through phi and ecunif from zeta, through t and t^2 from all
// three. Functionals that depend on t only through t^2 should use PerdewT2,
// whose sigma derivatives are regular at vanishing gradient.
func PerdewPotentials(pc *PerdewContext, e Tower) Potentials {
	vars := pc.Vars
	reduced := Compose(e, []Tower{vars.Rs, vars.Kf, vars.Ks, vars.Phi, vars.T, pc.ecunif, vars.T2})

	dim := CoordDim(pc.NSpin, true)
	n, z := DensityCoords(pc.NSpin, pc.rho, dim, pc.Order)
	s := GradientCoord(pc.NSpin, pc.sigma, dim, pc.Order)
	physical := Compose(reduced, []Tower{n, z, s})
	return potentialsFromTower(Mul(n, physical), pc.NSpin, true, n.Val)
}
