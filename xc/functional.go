// functional.go --  This file is part of goXC project.
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

type Family int

const (
	FamilyLDA Family = iota
	FamilyGGA
)

func (f Family) String() string {
	switch f {
	case FamilyLDA:
		return "LDA"
	case FamilyGGA:
		return "GGA"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Functional is a configured exchange-correlation plug-in. Implementations
// are immutable after construction and safe for concurrent evaluation.
type Functional interface {
	Name() string
	Family() Family
	MaxOrder() Order
}

// LDAFunctional fills the energy per particle and its (rs, zeta)
// derivatives up to r.Order.
type LDAFunctional interface {
	Functional
	RsZeta(r *LdaRsZeta)
}

// GGAFunctional evaluates one point with spin densities rho and contracted
// gradients sigma.
type GGAFunctional interface {
	Functional
	Point(nspin int, rho, sigma []float64, order Order) Potentials
}
