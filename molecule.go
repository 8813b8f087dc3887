// molecule.go --  This file is part of goSCF project.
// Mirzaeva Irina, 2024
//
//  goSCF is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty
//  of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//  See the GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with this program.  If not, see http://www.gnu.org/licenses/
//------------------------------------------------
package main

import (
	"embed"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Element table and basis-set library ship inside the binary, so neither
// the program nor the tests depend on the working directory.
//
//go:embed data/mendeleev.csv data/basis
var dataFS embed.FS

type Molecule struct {
	Atoms []Atom
}

type Atom struct {
	Z      int
	Name   string
	Coords [3]float64 // Angstrom, as read from input
	Basis  []Orbital
}

type Orbital struct {
	n, l, nPrim int
	Funcs       []PrimitiveGauss
}

type PrimitiveGauss struct {
	zeta, preExp float64
}

func (m *Molecule) addAtoms(data []string, start int, end int) {
	for i := start; i < end+1; i++ {
		var atm Atom
		words := strings.Fields(data[i])
		atm.Z = slices.Index(ElemData.Symb, words[0])
		atm.Name = words[0] + strconv.Itoa(1+i-start)
		if len(words) > 3 {
			x, _ := strconv.ParseFloat(words[1], 64)
			y, _ := strconv.ParseFloat(words[2], 64)
			z, _ := strconv.ParseFloat(words[3], 64)
			atm.Coords = [3]float64{x, y, z}
		} else {
			ErrorLogger.Println("Incorrect format of coordinates for atom: ", atm.Name)
		}
		m.Atoms = append(m.Atoms, atm)
	}
}

func (m *Molecule) getBasis(bName string) {
	bFile := "data/basis/" + strings.ToLower(strings.Fields(bName)[0]) + ".txt"
	raw, err := dataFS.ReadFile(bFile)
	if err != nil {
		ErrorLogger.Println("No basis set ", bName, " in the built-in library: ", err)
		return
	}
	data := strings.Split(string(raw), "\n")
	for i, atm := range m.Atoms {
		for j, str := range data {
			words := strings.Fields(str)
			if len(words) > 1 {
				if (len(words[0]) > 2) && (words[1] == strings.ToUpper(ElemData.Symb[atm.Z])) {
					OutputLogger.Println(i+1, "Basis for atom ", atm.Name, ": ", data[j+1])
					m.Atoms[i].getBasis(data, j+2)
				}
			}
		}
	}
}

func (atm *Atom) getBasis(data []string, pos int) {
	nOrbs, _ := strconv.Atoi(strings.Fields(data[pos])[0])
	pos++
	for k := 0; k < nOrbs; k++ {
		var orb Orbital
		orb.n, _ = strconv.Atoi(strings.Fields(data[pos])[0])
		orb.l, _ = strconv.Atoi(strings.Fields(data[pos])[1])
		orb.nPrim, _ = strconv.Atoi(strings.Fields(data[pos])[2])
		pos++
		for l := 0; l < orb.nPrim; l++ {
			var pg PrimitiveGauss
			pg.zeta, _ = strconv.ParseFloat(strings.Fields(data[pos])[0], 64)
			pg.preExp, _ = strconv.ParseFloat(strings.Fields(data[pos])[1], 64)
			orb.Funcs = append(orb.Funcs, pg)
			pos++
		}
		atm.Basis = append(atm.Basis, orb)
	}
}

func (m *Molecule) getNelec() int {
	result := 0
	for _, a := range m.Atoms {
		result += a.Z
	}
	return result
}

func (m *Molecule) getNShells() int {
	result := 0
	for _, a := range m.Atoms {
		result += len(a.Basis)
	}
	return result
}

// CalculateIntegrals flattens the basis and runs the native engine: one
// pass for S, T, V and one for the repulsion tensor.
func (m *Molecule) CalculateIntegrals() (S, T, V [][]float64, G [][][][]float64, err error) {
	bas, err := m.PrimitiveBasis()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	geom := m.GeomBohr()
	tstart := time.Now()
	S, T, V, err = OEIArrays(bas, geom, m.Charges())
	if err != nil {
		return nil, nil, nil, nil, err
	}
	InfoLogger.Println("1e integrals done...", time.Since(tstart))
	tstart = time.Now()
	G, err = TEIArrays(bas, geom)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	InfoLogger.Println("2e integrals done...", time.Since(tstart))
	return S, T, V, G, nil
}

type Mendeleev struct {
	Z          []int
	Symb, Name []string
	Mass       []float64
}

func (m *Mendeleev) build() {
	raw, err := dataFS.ReadFile("data/mendeleev.csv")
	if err != nil {
		panic("cannot read built-in element table: " + err.Error())
	}
	for i, str := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if i == 0 {
			continue
		}
		words := strings.Split(str, ",")
		z, _ := strconv.Atoi(words[0])
		mass, _ := strconv.ParseFloat(words[3], 64)
		m.Z = append(m.Z, z)
		m.Mass = append(m.Mass, mass)
		m.Symb = append(m.Symb, words[1])
		m.Name = append(m.Name, words[2])
	}
}
