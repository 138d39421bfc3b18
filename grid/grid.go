// grid.go --  This file is part of goXC project.
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

// Package grid reads, writes and synthesizes density grids for xc.Evaluate.
//
// A grid file holds one point per line: the spin densities followed, for
// gradient-corrected functionals, by the contracted gradients
// (rho [sigma] for nspin = 1, rho_u rho_d [sigma_uu sigma_ud sigma_dd] for
// nspin = 2). Blank lines and text after '#' are ignored.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/MirzaevaIV/goXC/xc"
)

var ErrFormat = errors.New("grid: malformed grid file")

func ReadFileLines(fname string) ([]string, error) {
	var result []string
	var err error

	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	err = scanner.Err()

	return result, err
}

// Columns returns the number of values per point.
func Columns(nspin int, gga bool) int {
	if !gga {
		return nspin
	}
	if nspin == 1 {
		return 2
	}
	return 5
}

// Parse converts grid lines into an evaluation input.
func Parse(lines []string, nspin int, gga bool) (*xc.Input, error) {
	if nspin != 1 && nspin != 2 {
		return nil, fmt.Errorf("grid: %w", xc.ErrNSpin)
	}
	ncol := Columns(nspin, gga)
	in := &xc.Input{NSpin: nspin}
	for i, line := range lines {
		if k := strings.IndexByte(line, '#'); k >= 0 {
			line = line[:k]
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) != ncol {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrFormat, i+1, len(words), ncol)
		}
		vals := make([]float64, ncol)
		for j, w := range words {
			v, err := strconv.ParseFloat(w, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, i+1, err)
			}
			// sigma_ud is the only value allowed to be negative.
			if v < 0 && !(nspin == 2 && j == 3) {
				return nil, fmt.Errorf("%w: line %d: negative value %g", ErrFormat, i+1, v)
			}
			vals[j] = v
		}
		in.Rho = append(in.Rho, vals[:nspin]...)
		if gga {
			in.Sigma = append(in.Sigma, vals[nspin:]...)
		}
	}
	return in, nil
}

// Load reads a grid file.
func Load(fname string, nspin int, gga bool) (*xc.Input, error) {
	lines, err := ReadFileLines(fname)
	if err != nil {
		return nil, err
	}
	in, err := Parse(lines, nspin, gga)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return in, nil
}

// Save writes in to fname in the grid file format.
func Save(in *xc.Input, fname string) error {
	gga := in.Sigma != nil
	var b strings.Builder
	for ip := 0; ip < in.Points(); ip++ {
		for _, v := range in.RhoAt(ip) {
			fmt.Fprintf(&b, " %23.16e", v)
		}
		if gga {
			for _, v := range in.SigmaAt(ip) {
				fmt.Fprintf(&b, " %23.16e", v)
			}
		}
		b.WriteString("\n")
	}
	return os.WriteFile(fname, []byte(b.String()), 0644)
}

// octaveNoise layers several frequencies of smooth noise into [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// Synthetic builds a smooth pseudo-random grid of np points. Densities span
// 1e-6 to 1e2, |zeta| stays below 0.95 and the reduced gradient
// s = |grad n|/(2 kf n) below 3.
func Synthetic(np, nspin int, gga bool, seed int64) (*xc.Input, error) {
	if nspin != 1 && nspin != 2 {
		return nil, fmt.Errorf("grid: %w", xc.ErrNSpin)
	}
	if np < 0 {
		return nil, fmt.Errorf("%w: %d points", xc.ErrShape, np)
	}
	densNoise := opensimplex.NewNormalized(seed)
	spinNoise := opensimplex.NewNormalized(seed + 1)
	gradNoise := opensimplex.NewNormalized(seed + 2)

	in := &xc.Input{NSpin: nspin}
	for ip := 0; ip < np; ip++ {
		x, y := 0.37*float64(ip), 0.11*float64(ip)
		n := math.Pow(10, -6+8*octaveNoise(densNoise, x, y, 4, 0.08, 0.5))
		zeta := 0.95 * (2*octaveNoise(spinNoise, x, y, 3, 0.06, 0.5) - 1)
		s := 3 * octaveNoise(gradNoise, x, y, 3, 0.05, 0.5)
		kf := math.Cbrt(3 * math.Pi * math.Pi * n)
		sigma := math.Pow(2*kf*n*s, 2)

		if nspin == 1 {
			in.Rho = append(in.Rho, n)
			if gga {
				in.Sigma = append(in.Sigma, sigma)
			}
			continue
		}
		up, dn := xc.DZetaToRho(n, zeta)
		in.Rho = append(in.Rho, up, dn)
		if gga {
			in.Sigma = append(in.Sigma,
				0.25*sigma*(1+zeta)*(1+zeta),
				0.25*sigma*(1-zeta*zeta),
				0.25*sigma*(1-zeta)*(1-zeta))
		}
	}
	return in, nil
}
