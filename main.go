// main.go --  This file is part of goXC project.
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
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/mat"

	"github.com/MirzaevaIV/goXC/functional"
	"github.com/MirzaevaIV/goXC/grid"
	"github.com/MirzaevaIV/goXC/xc"
)

var (
	WarningLogger *log.Logger
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	OutputLogger  *log.Logger
)

func initLog(fname string) {
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}

	InfoLogger = log.New(file, "INFO: ", log.Ldate|log.Ltime)
	WarningLogger = log.New(file, "WARNING: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	OutputLogger = log.New(file, "", 0)
}

func appInfo() {
	OutputLogger.Println(`
                   __  __  ____     |
                  /\ \/\ \/\  _ \   | Author: Mirzaeva Irina Valerievna
   __     ___     \ \ \ \ \ \ \/\_\ | email: dairdre@gmail.com
 /'_ '\  / __'\    \ \ \ \ \ \ \/_/_| Nikolaev Institute of Inorganic Chemistry SB RAS
/\ \L\ \/\ \L\ \    \/_/\/_/\ \ \L\ \ | Novosibirsk, Russia
\ \____ \ \____/     /\_\/\_\\ \____/ | XC stands for eXchange-Correlation
 \/___L\ \/___/      \/_/\/_/ \/___/  | derivatives through third order
   /\____/                          |
   \_/__/                           |
`)
}

func printOutputDelimiter() {
	OutputLogger.Println(strings.Repeat("-", 70))
}

func loadGrid(cfg *RunConfig, gga bool) (*xc.Input, error) {
	if cfg.Grid.Synthetic != nil {
		return grid.Synthetic(cfg.Grid.Synthetic.Points, cfg.NSpin, gga, cfg.Grid.Synthetic.Seed)
	}
	return grid.Load(cfg.Grid.File, cfg.NSpin, gga)
}

func main() {
	runtime.GOMAXPROCS(1)

	var inpFname, outFname string
	if len(os.Args) > 1 {
		inpFname = os.Args[1]
		outFname = strings.TrimSuffix(inpFname, filepath.Ext(inpFname)) + ".out"
		fmt.Println("Output file: ", outFname)
	} else {
		fmt.Println("Usage: goXC run.yaml")
		fmt.Println("Known functionals:", strings.Join(functional.Names(), ", "))
		log.Fatal("No input file.")
	}

	initLog(outFname)

	InfoLogger.Println("Starting goXC...")
	appInfo()

	OutputLogger.Println("Input file content:")
	printOutputDelimiter()
	inpData, err := grid.ReadFileLines(inpFname)
	if err != nil {
		ErrorLogger.Fatal("Cannot read input file: ", err)
	}
	for _, i := range inpData {
		OutputLogger.Println(i)
	}
	printOutputDelimiter()

	cfg, err := processInput(inpData, filepath.Dir(inpFname))
	if err != nil {
		ErrorLogger.Fatal("Parsing input. ", err)
	}
	if cfg.NProcs > 0 {
		runtime.GOMAXPROCS(cfg.NProcs)
		OutputLogger.Printf("Parsing input. Number of threads set to %d.", cfg.NProcs)
	}

	f, err := functional.New(cfg.Functional, cfg.Params)
	if err != nil {
		ErrorLogger.Fatal(err)
	}
	gga := f.Family() == xc.FamilyGGA
	order := xc.Order(cfg.Order)
	if order > f.MaxOrder() {
		WarningLogger.Printf("%s supports derivatives up to %v, order lowered from %v.", f.Name(), f.MaxOrder(), order)
		order = f.MaxOrder()
	}
	OutputLogger.Printf("Functional: %s (%v), nspin = %d, derivatives: %v", f.Name(), f.Family(), cfg.NSpin, order)

	in, err := loadGrid(cfg, gga)
	if err != nil {
		ErrorLogger.Fatal("Cannot build grid: ", err)
	}
	np := in.Points()
	OutputLogger.Printf("Grid: %s points", humanize.Comma(int64(np)))

	out, err := xc.Evaluate(f, in, order)
	if err != nil {
		ErrorLogger.Fatal(err)
	}
	printOutputDelimiter()

	if np > 0 && cfg.Print > 0 {
		names := columnNames(in, out)
		rows := resultTable(in, out, cfg.Print)
		OutputLogger.Printf("First %d points. Columns: %s", len(rows), strings.Join(names, " "))
		PrintDense(mat.NewDense(len(rows), len(names), flatten(rows)))
		printOutputDelimiter()
	}
	if cfg.Dump != "" && np > 0 {
		names := columnNames(in, out)
		if err := TxtFileFrom2DSlice("# "+strings.Join(names, " "), resultTable(in, out, np), cfg.Dump); err != nil {
			ErrorLogger.Println("Cannot write results: ", err)
		} else {
			OutputLogger.Println("Results written to", cfg.Dump)
		}
	}

	if cfg.Validate {
		checks, err := validate(f, in)
		if err != nil {
			ErrorLogger.Fatal("Validation failed: ", err)
		}
		for _, c := range checks {
			OutputLogger.Printf("Finite-difference check of %s on %s points: max rel. error = %.3e, RMS rel. error = %.3e",
				c.Kernel, humanize.Comma(int64(c.Points)), c.Dev.MaxRelErr, c.Dev.RMSRelErr)
		}
		if cfg.Database != "" {
			if err := saveChecks(cfg.Database, f, cfg.NSpin, checks); err != nil {
				ErrorLogger.Println("Cannot store validation runs: ", err)
			}
		}
		printOutputDelimiter()
	}

	if cfg.Ion != nil {
		res, err := ionEnergy(f, cfg.Ion.Z, cfg.NSpin)
		if err != nil {
			ErrorLogger.Println("Integration of the ion energy: ", err)
		}
		OutputLogger.Printf("Energy of the 1s ion, Z = %g: %.10f (abs. error %.1e, %d evaluations, %d intervals, status %d)",
			cfg.Ion.Z, res.Value, res.AbsErr, res.NEval, res.Intervals, int(res.Status))
		printOutputDelimiter()
	}

	MyMemDebug()

	InfoLogger.Println("Exiting goXC...")
	fmt.Println("goXC done.")
}
