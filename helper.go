// helper.go --  This file is part of goXC project.
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
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/mat"

	"github.com/MirzaevaIV/goXC/xc"
)

func TxtFileFrom2DSlice(header string, data [][]float64, fname string) error {
	ftext := header + "\n"
	for i := 0; i < len(data); i++ {
		for j := 0; j < len(data[i]); j++ {
			ftext += fmt.Sprintf("%24.14e", data[i][j])
		}
		ftext += "\n"
	}
	return os.WriteFile(fname, []byte(ftext), 0644)
}

func flatten(arr [][]float64) []float64 {
	if len(arr) == 0 {
		return nil
	}
	ncol := len(arr[0])
	res := make([]float64, len(arr)*ncol)
	for i := range arr {
		for j := range arr[i] {
			res[i*ncol+j] = arr[i][j]
		}
	}
	return res
}

func PrintDense(D *mat.Dense) {
	fa := mat.Formatted(D, mat.Prefix("    "), mat.Squeeze())
	OutputLogger.Printf("    %.8e\n", fa)
}

// columnNames labels the columns of resultTable.
func columnNames(in *xc.Input, out *xc.Output) []string {
	spin := func(base string, n int) []string {
		if n == 1 {
			return []string{base}
		}
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("%s[%d]", base, i)
		}
		return names
	}
	p := out.Point(0)
	var names []string
	names = append(names, spin("rho", in.NSpin)...)
	if in.Sigma != nil {
		names = append(names, spin("sigma", len(in.SigmaAt(0)))...)
	}
	names = append(names, "zk")
	names = append(names, spin("vrho", len(p.Vrho))...)
	names = append(names, spin("vsigma", len(p.Vsigma))...)
	names = append(names, spin("v2rho2", len(p.V2rho2))...)
	names = append(names, spin("v2rhosigma", len(p.V2rhosigma))...)
	names = append(names, spin("v2sigma2", len(p.V2sigma2))...)
	names = append(names, spin("v3rho3", len(p.V3rho3))...)
	return names
}

// resultTable lays out the first n points, one row per point.
func resultTable(in *xc.Input, out *xc.Output, n int) [][]float64 {
	n = min(n, out.Points)
	rows := make([][]float64, n)
	for ip := range rows {
		p := out.Point(ip)
		row := append([]float64(nil), in.RhoAt(ip)...)
		if in.Sigma != nil {
			row = append(row, in.SigmaAt(ip)...)
		}
		row = append(row, p.Zk)
		for _, block := range [][]float64{p.Vrho, p.Vsigma, p.V2rho2, p.V2rhosigma, p.V2sigma2, p.V3rho3} {
			row = append(row, block...)
		}
		rows[ip] = row
	}
	return rows
}

func MyMemDebug() {
	var memStats runtime.MemStats

	runtime.ReadMemStats(&memStats)

	InfoLogger.Printf("Alloc: %s, TotalAlloc: %s, HeapAlloc: %s, HeapSys: %s",
		humanize.Bytes(memStats.Alloc), humanize.Bytes(memStats.TotalAlloc),
		humanize.Bytes(memStats.HeapAlloc), humanize.Bytes(memStats.HeapSys))
}
