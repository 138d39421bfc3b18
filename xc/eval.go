// eval.go --  This file is part of goXC project.
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
	"runtime"
	"sync"
)

// Input is a grid of densities: Rho holds nspin values per point, Sigma
// (gradient-corrected functionals only) holds 1 or 3 values per point.
type Input struct {
	NSpin int
	Rho   []float64
	Sigma []float64
}

// Points returns the number of grid points.
func (in *Input) Points() int {
	if in.NSpin < 1 {
		return 0
	}
	return len(in.Rho) / in.NSpin
}

// RhoAt returns the spin densities of point ip.
func (in *Input) RhoAt(ip int) []float64 {
	return in.Rho[ip*in.NSpin : (ip+1)*in.NSpin]
}

// SigmaAt returns the contracted gradients of point ip.
func (in *Input) SigmaAt(ip int) []float64 {
	ns := nSigma(in.NSpin)
	return in.Sigma[ip*ns : (ip+1)*ns]
}

func (in *Input) check(family Family) error {
	if err := checkNSpin(in.NSpin); err != nil {
		return err
	}
	if len(in.Rho)%in.NSpin != 0 {
		return fmt.Errorf("%w: %d densities for nspin = %d", ErrShape, len(in.Rho), in.NSpin)
	}
	np := in.Points()
	if family == FamilyGGA && len(in.Sigma) != np*nSigma(in.NSpin) {
		return fmt.Errorf("%w: %d sigmas for %d points", ErrShape, len(in.Sigma), np)
	}
	return nil
}

// Output holds grid-wide results in point-major order; each field is the
// concatenation of the per-point blocks described on Potentials. Fields of
// orders that were not requested are nil.
type Output struct {
	NSpin  int
	Order  Order
	Family Family
	Points int

	Zk         []float64
	Vrho       []float64
	Vsigma     []float64
	V2rho2     []float64
	V2rhosigma []float64
	V2sigma2   []float64
	V3rho3     []float64
}

// NewOutput allocates zeroed output arrays for np points.
func NewOutput(nspin int, family Family, np int, order Order) *Output {
	out := &Output{NSpin: nspin, Order: order, Family: family, Points: np}
	gga := family == FamilyGGA
	ns, nsig := nspin, nSigma(nspin)
	out.Zk = make([]float64, np)
	if order >= OrderVxc {
		out.Vrho = make([]float64, np*ns)
		if gga {
			out.Vsigma = make([]float64, np*nsig)
		}
	}
	if order >= OrderFxc {
		out.V2rho2 = make([]float64, np*nPairs(ns))
		if gga {
			out.V2rhosigma = make([]float64, np*ns*nsig)
			out.V2sigma2 = make([]float64, np*nPairs(nsig))
		}
	}
	if order >= OrderKxc && !gga {
		out.V3rho3 = make([]float64, np*nTriples(ns))
	}
	return out
}

func (out *Output) set(ip int, p Potentials) {
	out.Zk[ip] = p.Zk
	put := func(dst, src []float64) {
		if dst == nil || src == nil {
			return
		}
		copy(dst[ip*len(src):(ip+1)*len(src)], src)
	}
	put(out.Vrho, p.Vrho)
	put(out.Vsigma, p.Vsigma)
	put(out.V2rho2, p.V2rho2)
	put(out.V2rhosigma, p.V2rhosigma)
	put(out.V2sigma2, p.V2sigma2)
	put(out.V3rho3, p.V3rho3)
}

// Point returns the outputs of point ip as a Potentials view into out.
func (out *Output) Point(ip int) Potentials {
	ns, nsig := out.NSpin, nSigma(out.NSpin)
	view := func(src []float64, size int) []float64 {
		if src == nil {
			return nil
		}
		return src[ip*size : (ip+1)*size]
	}
	return Potentials{
		Zk:         out.Zk[ip],
		Vrho:       view(out.Vrho, ns),
		Vsigma:     view(out.Vsigma, nsig),
		V2rho2:     view(out.V2rho2, nPairs(ns)),
		V2rhosigma: view(out.V2rhosigma, ns*nsig),
		V2sigma2:   view(out.V2sigma2, nPairs(nsig)),
		V3rho3:     view(out.V3rho3, nTriples(ns)),
	}
}

// Evaluate computes energies and derivatives up to order on every point
// of the grid. Points whose total density is below MinDens are left zero.
func Evaluate(f Functional, in *Input, order Order) (*Output, error) {
	if err := order.Check(f.MaxOrder()); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}
	if err := in.check(f.Family()); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}
	var point func(ip int) Potentials
	switch fn := f.(type) {
	case LDAFunctional:
		point = func(ip int) Potentials {
			return LDAPoint(fn, in.NSpin, in.RhoAt(ip), order)
		}
	case GGAFunctional:
		point = func(ip int) Potentials {
			return fn.Point(in.NSpin, in.RhoAt(ip), in.SigmaAt(ip), order)
		}
	default:
		return nil, fmt.Errorf("%s: %w", f.Name(), ErrFamily)
	}

	np := in.Points()
	out := NewOutput(in.NSpin, f.Family(), np, order)
	forEachPoint(np, func(ip int) {
		dens, _ := RhoToDZeta(in.NSpin, in.RhoAt(ip))
		if dens <= MinDens {
			return
		}
		out.set(ip, point(ip))
	})
	return out, nil
}

// forEachPoint runs fn for every point, splitting the grid into one
// contiguous chunk per GOMAXPROCS. Each point is written by one goroutine.
func forEachPoint(np int, fn func(ip int)) {
	maxGoroutines := runtime.GOMAXPROCS(-1)
	if maxGoroutines < 2 || np < 2*maxGoroutines {
		for ip := 0; ip < np; ip++ {
			fn(ip)
		}
		return
	}
	listSize := np / maxGoroutines
	var wg sync.WaitGroup
	for j := 0; j < maxGoroutines; j++ {
		start, end := j*listSize, (j+1)*listSize
		if j == maxGoroutines-1 {
			end = np
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ip := start; ip < end; ip++ {
				fn(ip)
			}
		}()
	}
	wg.Wait()
}
