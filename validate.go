// validate.go --  This file is part of goXC project.
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

package main

import (
	"fmt"

	"github.com/MirzaevaIV/goXC/store"
	"github.com/MirzaevaIV/goXC/xc"
)

// kernelCheck is the comparison of one analytic kernel with its finite
// difference estimate.
type kernelCheck struct {
	Kernel string
	Points int
	Dev    xc.Deviation
}

// resolvable keeps the points whose every spin channel is above MinDens.
func resolvable(in *xc.Input) *xc.Input {
	sub := &xc.Input{NSpin: in.NSpin}
	for ip := 0; ip < in.Points(); ip++ {
		ok := true
		for _, r := range in.RhoAt(ip) {
			if r < xc.MinDens {
				ok = false
			}
		}
		if !ok {
			continue
		}
		sub.Rho = append(sub.Rho, in.RhoAt(ip)...)
		if in.Sigma != nil {
			sub.Sigma = append(sub.Sigma, in.SigmaAt(ip)...)
		}
	}
	return sub
}

// validate compares the analytic second (and, for local functionals, third)
// density derivatives with finite differences of the energy.
func validate(f xc.Functional, in *xc.Input) ([]kernelCheck, error) {
	sub := resolvable(in)
	np := sub.Points()
	if np == 0 {
		return nil, fmt.Errorf("no point above the density floor")
	}

	var energy xc.EnergyFunc
	maxOrder := xc.OrderFxc
	switch fn := f.(type) {
	case xc.LDAFunctional:
		energy = xc.LDAEnergy(fn, sub.NSpin)
		maxOrder = xc.OrderKxc
	case xc.GGAFunctional:
		energy = xc.GGAEnergy(fn, sub)
	default:
		return nil, xc.ErrFamily
	}
	maxOrder = min(maxOrder, f.MaxOrder())

	out, err := xc.Evaluate(f, sub, maxOrder)
	if err != nil {
		return nil, err
	}
	v := xc.DefaultFiniteDiff()
	num := make([]float64, len(out.V2rho2))
	if err := v.Fxc(energy, sub.NSpin, np, sub.Rho, num); err != nil {
		return nil, err
	}
	dev, err := xc.Compare(out.V2rho2, num, len(out.V2rho2)/np)
	if err != nil {
		return nil, err
	}
	checks := []kernelCheck{{Kernel: xc.OrderFxc.String(), Points: np, Dev: dev}}

	if maxOrder >= xc.OrderKxc {
		num = make([]float64, len(out.V3rho3))
		if err := v.Kxc(energy, sub.NSpin, np, sub.Rho, num); err != nil {
			return nil, err
		}
		dev, err := xc.Compare(out.V3rho3, num, len(out.V3rho3)/np)
		if err != nil {
			return nil, err
		}
		checks = append(checks, kernelCheck{Kernel: xc.OrderKxc.String(), Points: np, Dev: dev})
	}
	return checks, nil
}

// saveChecks stores the validation runs in the database at path.
func saveChecks(path string, f xc.Functional, nspin int, checks []kernelCheck) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	for _, c := range checks {
		run := &store.Run{
			Functional: f.Name(),
			NSpin:      nspin,
			Kernel:     c.Kernel,
			Points:     c.Points,
			Compared:   c.Dev.Count,
			MaxRelErr:  c.Dev.MaxRelErr,
			RMSRelErr:  c.Dev.RMSRelErr,
		}
		if err := db.SaveRun(run); err != nil {
			return err
		}
		InfoLogger.Println("Validation run stored with id", run.ID)
	}
	return nil
}
