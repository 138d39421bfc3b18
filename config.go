// config.go --  This file is part of goXC project.
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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MirzaevaIV/goXC/xc"
)

var errConfig = errors.New("invalid run description")

type SyntheticGrid struct {
	Points int   `yaml:"points"`
	Seed   int64 `yaml:"seed"`
}

type GridSource struct {
	File      string         `yaml:"file"`
	Synthetic *SyntheticGrid `yaml:"synthetic"`
}

// IonCheck asks for the energy of a hydrogenic 1s density of nuclear
// charge Z.
type IonCheck struct {
	Z float64 `yaml:"z"`
}

// RunConfig is the YAML run description read from the input file.
type RunConfig struct {
	Functional string             `yaml:"functional"`
	Params     map[string]float64 `yaml:"params"`
	NSpin      int                `yaml:"nspin"`
	Order      int                `yaml:"order"`
	Grid       GridSource         `yaml:"grid"`
	Validate   bool               `yaml:"validate"`
	Database   string             `yaml:"database"`
	Ion        *IonCheck          `yaml:"ion"`
	NProcs     int                `yaml:"nprocs"`
	// Print limits the number of points written to the output table.
	Print int    `yaml:"print"`
	Dump  string `yaml:"dump"`
}

// processInput decodes the input lines. Relative file names are resolved
// against dir, the directory of the input file.
func processInput(data []string, dir string) (*RunConfig, error) {
	cfg := &RunConfig{NSpin: 1, Order: int(xc.OrderVxc), Print: 10}
	dec := yaml.NewDecoder(strings.NewReader(strings.Join(data, "\n")))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errConfig, err)
	}

	if cfg.Functional == "" {
		return nil, fmt.Errorf("%w: no functional given", errConfig)
	}
	if cfg.NSpin != 1 && cfg.NSpin != 2 {
		return nil, fmt.Errorf("%w: nspin = %d", errConfig, cfg.NSpin)
	}
	if err := xc.Order(cfg.Order).Check(xc.OrderKxc); err != nil {
		return nil, fmt.Errorf("%w: %v", errConfig, err)
	}
	switch {
	case cfg.Grid.File == "" && cfg.Grid.Synthetic == nil:
		return nil, fmt.Errorf("%w: grid needs a file or a synthetic block", errConfig)
	case cfg.Grid.File != "" && cfg.Grid.Synthetic != nil:
		return nil, fmt.Errorf("%w: grid file and synthetic grid are exclusive", errConfig)
	case cfg.Grid.Synthetic != nil && cfg.Grid.Synthetic.Points < 1:
		return nil, fmt.Errorf("%w: synthetic grid needs points > 0", errConfig)
	}
	if cfg.Ion != nil && !(cfg.Ion.Z > 0) {
		return nil, fmt.Errorf("%w: ion charge must be positive", errConfig)
	}
	if cfg.NProcs < 0 || cfg.Print < 0 {
		return nil, fmt.Errorf("%w: nprocs and print must not be negative", errConfig)
	}
	if cfg.Database != "" && !cfg.Validate {
		return nil, fmt.Errorf("%w: database stores validation runs, set validate: true", errConfig)
	}

	cfg.Grid.File = resolve(dir, cfg.Grid.File)
	cfg.Database = resolve(dir, cfg.Database)
	cfg.Dump = resolve(dir, cfg.Dump)
	return cfg, nil
}

func resolve(dir, fname string) string {
	if fname == "" || filepath.IsAbs(fname) {
		return fname
	}
	return filepath.Join(dir, fname)
}
