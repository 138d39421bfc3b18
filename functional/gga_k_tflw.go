// gga_k_tflw.go --  This file is part of goXC project.
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

// TFLW is the kinetic functional gamma T_TF + lambda T_vW.
type TFLW struct {
	Gamma  float64
	Lambda float64
}

// NewTFLW configures the functional. A positive electron count n replaces
// gamma by the finite-size value 1 - 1.412/n^(1/3).
func NewTFLW(gamma, lambda, n float64) (*TFLW, error) {
	if !(gamma >= 0) || !(lambda >= 0) || math.IsInf(gamma, 0) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("%w: gga_k_tflw gamma = %g, lambda = %g", xc.ErrParam, gamma, lambda)
	}
	if !(n >= 0) {
		return nil, fmt.Errorf("%w: gga_k_tflw electron count %g", xc.ErrParam, n)
	}
	if n > 0 {
		gamma = 1 - 1.412/math.Cbrt(n)
	}
	return &TFLW{Gamma: gamma, Lambda: lambda}, nil
}

func (k *TFLW) Name() string       { return "gga_k_tflw" }
func (k *TFLW) Family() xc.Family  { return xc.FamilyGGA }
func (k *TFLW) MaxOrder() xc.Order { return xc.OrderFxc }

func (k *TFLW) channel(rho, sigma xc.Tower) xc.Tower {
	tf := xc.Pow(rho, 5.0/3.0).Scale(k.Gamma * xc.KFactorC)
	vw := xc.Mul(sigma, xc.Inv(rho)).Scale(k.Lambda / 8)
	return xc.Add(tf, vw)
}

func (k *TFLW) Point(nspin int, rho, sigma []float64, order xc.Order) xc.Potentials {
	return xc.SpinChannelPoint(nspin, rho, sigma, order, k.channel)
}
