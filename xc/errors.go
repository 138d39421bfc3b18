// errors.go --  This file is part of goXC project.
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

import "errors"

// Caller errors. Numeric boundaries (tiny densities, vanishing gradients,
// full spin polarization) are handled by clamping and never reported here.
var (
	ErrNSpin        = errors.New("xc: nspin must be 1 or 2")
	ErrOrder        = errors.New("xc: derivative order not supported")
	ErrShape        = errors.New("xc: input arrays do not match the grid size")
	ErrParam        = errors.New("xc: invalid functional parameter")
	ErrFamily       = errors.New("xc: unknown functional family")
	ErrDensityFloor = errors.New("xc: density below the finite-difference floor")
)
