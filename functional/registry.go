// registry.go --  This file is part of goXC project.
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

	"golang.org/x/exp/slices"

	"github.com/MirzaevaIV/goXC/xc"
)

type entry struct {
	defaults map[string]float64
	build    func(p map[string]float64) (xc.Functional, error)
}

func pbeLike(name string, kappa, mu float64) entry {
	return entry{
		defaults: map[string]float64{"kappa": kappa, "mu": mu},
		build: func(p map[string]float64) (xc.Functional, error) {
			g, err := NewPBEExchange(p["kappa"], p["mu"])
			if err != nil {
				return nil, err
			}
			g.name = name
			return g, nil
		},
	}
}

var registry = map[string]entry{
	"lda_x": {
		defaults: map[string]float64{"alpha": 1, "relativistic": 0},
		build: func(p map[string]float64) (xc.Functional, error) {
			f, err := NewSlaterExchange(p["alpha"], p["relativistic"] != 0)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	},
	"lda_c_pw": {
		build: func(map[string]float64) (xc.Functional, error) { return NewPW92(false), nil },
	},
	"lda_c_pw_mod": {
		build: func(map[string]float64) (xc.Functional, error) { return NewPW92(true), nil },
	},
	"gga_x_pbe":     pbeLike("gga_x_pbe", PBEKappa, PBEMu),
	"gga_x_pbe_r":   pbeLike("gga_x_pbe_r", RevPBEKappa, PBEMu),
	"gga_x_pbe_sol": pbeLike("gga_x_pbe_sol", PBEKappa, PBESolMu),
	"gga_x_rpbe": {
		defaults: map[string]float64{"kappa": PBEKappa, "mu": PBEMu},
		build: func(p map[string]float64) (xc.Functional, error) {
			f, err := NewRPBEExchange(p["kappa"], p["mu"])
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	},
	"gga_x_b88": {
		defaults: map[string]float64{"beta": B88Beta, "gamma": B88Gamma},
		build: func(p map[string]float64) (xc.Functional, error) {
			f, err := NewB88(p["beta"], p["gamma"])
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	},
	"gga_c_pbe": {
		defaults: map[string]float64{"beta": PBEBeta},
		build: func(p map[string]float64) (xc.Functional, error) {
			f, err := NewPBECorrelation(p["beta"])
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	},
	"gga_k_tflw": {
		defaults: map[string]float64{"gamma": 1, "lambda": 1, "n": 0},
		build: func(p map[string]float64) (xc.Functional, error) {
			f, err := NewTFLW(p["gamma"], p["lambda"], p["n"])
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	},
}

// Names lists the known functionals in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Params lists the parameter names accepted by a functional.
func Params(name string) ([]string, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	keys := make([]string, 0, len(e.defaults))
	for k := range e.defaults {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// New builds a functional by name. Entries of params override the
// defaults; unknown parameter names are rejected.
func New(name string, params map[string]float64) (xc.Functional, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	keys, _ := Params(name)
	p := make(map[string]float64, len(e.defaults))
	for k, v := range e.defaults {
		p[k] = v
	}
	for k, v := range params {
		if !slices.Contains(keys, k) {
			return nil, fmt.Errorf("%w: %s has no parameter %q (accepts %v)", xc.ErrParam, name, k, keys)
		}
		p[k] = v
	}
	return e.build(p)
}
