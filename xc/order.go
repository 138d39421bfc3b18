// order.go --  This file is part of goXC project.
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

import "fmt"

// Order is the highest derivative order requested from an evaluation.
type Order int

const (
	OrderExc Order = iota // energy only
	OrderVxc              // first derivatives (potentials)
	OrderFxc              // second derivatives (response kernel)
	OrderKxc              // third derivatives
)

func (o Order) String() string {
	switch o {
	case OrderExc:
		return "exc"
	case OrderVxc:
		return "vxc"
	case OrderFxc:
		return "fxc"
	case OrderKxc:
		return "kxc"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Check returns ErrOrder unless OrderExc <= o <= max.
func (o Order) Check(max Order) error {
	if o < OrderExc || o > max {
		return fmt.Errorf("%w: %v (supported up to %v)", ErrOrder, o, max)
	}
	return nil
}

func checkNSpin(nspin int) error {
	if nspin != 1 && nspin != 2 {
		return fmt.Errorf("%w: got %d", ErrNSpin, nspin)
	}
	return nil
}
