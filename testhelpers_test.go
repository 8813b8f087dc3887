// testhelpers_test.go --  This file is part of goSCF project.
// Mirzaeva Irina, 2024
//
//	goSCF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package main

import "testing"

// uncontractedBasis builds a basis of single-primitive shells, one shell
// per entry, with normalized unit contraction coefficients.
func uncontractedBasis(t *testing.T, ams []int, exps []float64, atoms []int, natoms int) *PrimitiveBasis {
	t.Helper()
	if len(ams) != len(exps) || len(exps) != len(atoms) {
		t.Fatalf("bad fixture: %d ams, %d exps, %d atoms", len(ams), len(exps), len(atoms))
	}
	b := &PrimitiveBasis{}
	for p := range exps {
		b.Coeffs = append(b.Coeffs, primNorm(ams[p], exps[p]))
		b.Exps = append(b.Exps, exps[p])
		b.Atoms = append(b.Atoms, atoms[p])
		b.AMs = append(b.AMs, ams[p])
		b.Indices = append(b.Indices, b.NBF)
		b.Dims = append(b.Dims, AMDim(ams[p]))
		b.NBF += AMDim(ams[p])
	}
	if err := b.Validate(natoms); err != nil {
		t.Fatalf("fixture basis invalid: %v", err)
	}
	return b
}

// h2Geom is the two-center test geometry: centers at +-0.849220457955 bohr
// on the z axis.
func h2Geom() [][3]float64 {
	return [][3]float64{
		{0, 0, -0.849220457955},
		{0, 0, 0.849220457955},
	}
}

func translated(geom [][3]float64, t [3]float64) [][3]float64 {
	res := make([][3]float64, len(geom))
	for i := range geom {
		for x := 0; x < 3; x++ {
			res[i][x] = geom[i][x] + t[x]
		}
	}
	return res
}
