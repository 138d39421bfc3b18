// gga_c_pbe.go --  This file is part of goXC project.
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

import (
	"fmt"
	"math"

	"github.com/MirzaevaIV/goXC/xc"
)

const (
	PBEBeta  = 0.06672455060314922
	PBEGamma = (1 - math.Ln2) / (math.Pi * math.Pi)
)

// PBECorrelation is the PBE gradient correction H(phi, t, ecunif) added to
// the modified PW92 uniform-gas correlation.
type PBECorrelation struct {
	Beta  float64
	Gamma float64
	unif  xc.LDAFunctional
}

func NewPBECorrelation(beta float64) (*PBECorrelation, error) {
	if !(beta > 0) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("%w: gga_c_pbe beta = %g must be positive", xc.ErrParam, beta)
	}
	return &PBECorrelation{Beta: beta, Gamma: PBEGamma, unif: NewPW92(true)}, nil
}

func (c *PBECorrelation) Name() string       { return "gga_c_pbe" }
func (c *PBECorrelation) Family() xc.Family  { return xc.FamilyGGA }
func (c *PBECorrelation) MaxOrder() xc.Order { return xc.OrderFxc }

// Energy returns ecunif + H as a tower over the Perdew intermediates.
func (c *PBECorrelation) Energy(pc *xc.PerdewContext) xc.Tower {
	bg := c.Beta / c.Gamma
	phi := pc.Var(xc.PerdewPhi)
	t2 := pc.Var(xc.PerdewT2)
	ec := pc.Var(xc.PerdewEcunif)

	gphi3 := xc.Mul(xc.Mul(phi, phi), phi).Scale(c.Gamma)
	a := xc.Inv(xc.Exp(xc.Mul(ec, xc.Inv(gphi3)).Scale(-1)).Shift(-1)).Scale(bg)
	at2 := xc.Mul(a, t2)
	num := xc.Mul(t2, at2.Shift(1)).Scale(bg)
	den := xc.Add(at2.Shift(1), xc.Mul(at2, at2))
	h := xc.Mul(gphi3, xc.Log(xc.Mul(num, xc.Inv(den)).Shift(1)))
	return xc.Add(ec, h)
}

func (c *PBECorrelation) Point(nspin int, rho, sigma []float64, order xc.Order) xc.Potentials {
	pc, err := xc.NewPerdewContext(c.unif, nspin, rho, sigma, order)
	if err != nil {
		// xc.Evaluate validates shapes and orders before any point.
		panic(err)
	}
	return xc.PerdewPotentials(pc, c.Energy(pc))
}
