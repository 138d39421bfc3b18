// fd.go --  This file is part of goXC project.
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

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// EnergyFunc returns the energy per volume of grid point ip evaluated at
// the spin densities rho. Everything else about the point (gradients) is
// held fixed by the closure.
type EnergyFunc func(ip int, rho []float64) float64

// LDAEnergy adapts a local functional to the energy-only path.
func LDAEnergy(f LDAFunctional, nspin int) EnergyFunc {
	return func(_ int, rho []float64) float64 {
		dens, _ := RhoToDZeta(nspin, rho)
		return LDAPoint(f, nspin, rho, OrderExc).Zk * dens
	}
}

// GGAEnergy adapts a gradient-corrected functional to the energy-only
// path, taking the gradients of each point from in.
func GGAEnergy(f GGAFunctional, in *Input) EnergyFunc {
	return func(ip int, rho []float64) float64 {
		dens, _ := RhoToDZeta(in.NSpin, rho)
		return f.Point(in.NSpin, rho, in.SigmaAt(ip), OrderExc).Zk * dens
	}
}

// FiniteDiff differentiates an energy-only evaluator with central
// differences in relative density coordinates rho_i = rho_i0 (1 + u_i), so
// the step follows the local density over many decades.
type FiniteDiff struct {
	// RelStep is the relative step of first and second derivatives.
	RelStep float64
	// RelStep3 is the relative step of third derivatives.
	RelStep3 float64
}

// DefaultFiniteDiff returns the steps pinned by the regression tests.
func DefaultFiniteDiff() FiniteDiff {
	return FiniteDiff{RelStep: 1e-4, RelStep3: 2e-3}
}

func (v FiniteDiff) check(nspin, np int, rho, out []float64, width int) error {
	if err := checkNSpin(nspin); err != nil {
		return err
	}
	if len(rho) != np*nspin {
		return fmt.Errorf("%w: %d densities for %d points", ErrShape, len(rho), np)
	}
	if len(out) != np*width {
		return fmt.Errorf("%w: output holds %d values, want %d", ErrShape, len(out), np*width)
	}
	for ip := 0; ip < np; ip++ {
		for s := 0; s < nspin; s++ {
			if r := rho[ip*nspin+s]; r < MinDens {
				return fmt.Errorf("%w: point %d channel %d (rho = %g)", ErrDensityFloor, ip, s, r)
			}
		}
	}
	return nil
}

// relative wraps e as a function of the relative displacements u.
func relative(e EnergyFunc, ip int, rho0 []float64) func(u []float64) float64 {
	return func(u []float64) float64 {
		rho := make([]float64, len(rho0))
		for i := range rho {
			rho[i] = rho0[i] * (1 + u[i])
		}
		return e(ip, rho)
	}
}

// Vxc fills vrho with first derivatives of the energy.
func (v FiniteDiff) Vxc(e EnergyFunc, nspin, np int, rho, vrho []float64) error {
	if err := v.check(nspin, np, rho, vrho, nspin); err != nil {
		return err
	}
	settings := &fd.Settings{Formula: fd.Central, Step: v.RelStep}
	forEachPoint(np, func(ip int) {
		rho0 := rho[ip*nspin : (ip+1)*nspin]
		g := fd.Gradient(nil, relative(e, ip, rho0), make([]float64, nspin), settings)
		floats.Div(g, rho0)
		copy(vrho[ip*nspin:], g)
	})
	return nil
}

func hessian(f func([]float64) float64, u []float64, step float64) *mat.SymDense {
	h := mat.NewSymDense(len(u), nil)
	fd.Hessian(h, f, u, &fd.Settings{Formula: fd.Central, Step: step})
	return h
}

// Fxc fills v2rho2 (layout of Potentials.V2rho2) with second derivatives
// of the energy.
func (v FiniteDiff) Fxc(e EnergyFunc, nspin, np int, rho, v2rho2 []float64) error {
	width := nPairs(nspin)
	if err := v.check(nspin, np, rho, v2rho2, width); err != nil {
		return err
	}
	forEachPoint(np, func(ip int) {
		rho0 := rho[ip*nspin : (ip+1)*nspin]
		h := hessian(relative(e, ip, rho0), make([]float64, nspin), v.RelStep)
		k := ip * width
		for s := 0; s < nspin; s++ {
			for t := s; t < nspin; t++ {
				v2rho2[k] = h.At(s, t) / (rho0[s] * rho0[t])
				k++
			}
		}
	})
	return nil
}

// Kxc fills v3rho3 (layout of Potentials.V3rho3) with third derivatives of
// the energy, as central differences of finite-difference Hessians.
func (v FiniteDiff) Kxc(e EnergyFunc, nspin, np int, rho, v3rho3 []float64) error {
	width := nTriples(nspin)
	if err := v.check(nspin, np, rho, v3rho3, width); err != nil {
		return err
	}
	h := v.RelStep3
	forEachPoint(np, func(ip int) {
		rho0 := rho[ip*nspin : (ip+1)*nspin]
		f := relative(e, ip, rho0)
		dh := make([]*mat.SymDense, nspin)
		for u := 0; u < nspin; u++ {
			plus, minus := make([]float64, nspin), make([]float64, nspin)
			plus[u], minus[u] = h, -h
			hp, hm := hessian(f, plus, h), hessian(f, minus, h)
			hm.ScaleSym(-1, hm)
			d := mat.NewSymDense(nspin, nil)
			d.AddSym(hp, hm)
			d.ScaleSym(1/(2*h), d)
			dh[u] = d
		}
		k := ip * width
		for s := 0; s < nspin; s++ {
			for t := s; t < nspin; t++ {
				for u := t; u < nspin; u++ {
					v3rho3[k] = dh[u].At(s, t) / (rho0[s] * rho0[t] * rho0[u])
					k++
				}
			}
		}
	})
	return nil
}

// Deviation summarizes the deviation of analytic values from
// finite-difference estimates. Errors are relative to the largest entry of
// the point's block, so exact zeros (the spin-crossed kernel of exchange)
// are measured against the kernel's own size.
type Deviation struct {
	Count     int
	MaxRelErr float64
	RMSRelErr float64
}

// Compare returns the deviation of analytic from numeric, both laid out as
// consecutive per-point blocks of width values.
func Compare(analytic, numeric []float64, width int) (Deviation, error) {
	if len(analytic) != len(numeric) || width < 1 || len(analytic)%width != 0 {
		return Deviation{}, fmt.Errorf("%w: %d analytic vs %d numeric values in blocks of %d",
			ErrShape, len(analytic), len(numeric), width)
	}
	sq := make([]float64, 0, len(analytic))
	for k := 0; k < len(analytic); k += width {
		a, n := analytic[k:k+width], numeric[k:k+width]
		scale := math.Max(floats.Norm(a, math.Inf(1)), floats.Norm(n, math.Inf(1)))
		if scale == 0 || math.IsNaN(scale) {
			continue
		}
		for i := range a {
			d := math.Abs(a[i]-n[i]) / scale
			sq = append(sq, d*d)
		}
	}
	if len(sq) == 0 {
		return Deviation{}, nil
	}
	dev := Deviation{Count: len(sq)}
	dev.MaxRelErr = math.Sqrt(floats.Max(sq))
	dev.RMSRelErr = math.Sqrt(stat.Mean(sq, nil))
	return dev, nil
}
