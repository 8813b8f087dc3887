// basis.go --  This file is part of goSCF project.
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

import (
	"fmt"
	"math"
)

// PrimitiveBasis is the flattened per-primitive representation consumed by
// the integral engine: parallel arrays, one entry per primitive Gaussian,
// plus the shell bookkeeping needed to scatter kernel values into global
// basis-function indices. It replaces the atm/bas/env arrays the libcint
// backend used to get.
type PrimitiveBasis struct {
	Coeffs  []float64 // contraction coefficient, primitive norm included
	Exps    []float64 // orbital exponents
	Atoms   []int     // owning atomic center index
	AMs     []int     // total angular momentum of the shell
	Indices []int     // global basis-function index of the shell's first component
	Dims    []int     // Cartesian components in the shell, AMDim(am)
	NBF     int       // total number of basis functions
}

// NPrim is the number of primitive Gaussians.
func (b *PrimitiveBasis) NPrim() int { return len(b.Exps) }

// Validate fails fast on malformed basis data before any numeric work:
// mismatched array lengths, non-positive exponents, angular momenta beyond
// the compiled maximum, shell dimensions or indices inconsistent with the
// declared basis size. natoms bounds the owning-center indices.
func (b *PrimitiveBasis) Validate(natoms int) error {
	n := len(b.Exps)
	if len(b.Coeffs) != n || len(b.Atoms) != n || len(b.AMs) != n ||
		len(b.Indices) != n || len(b.Dims) != n {
		return fmt.Errorf("basis arrays disagree in length: coeffs %d, exps %d, atoms %d, ams %d, indices %d, dims %d",
			len(b.Coeffs), n, len(b.Atoms), len(b.AMs), len(b.Indices), len(b.Dims))
	}
	if n == 0 {
		return fmt.Errorf("empty basis")
	}
	for p := 0; p < n; p++ {
		if b.Exps[p] <= 0 {
			return fmt.Errorf("primitive %d: exponent %g is not positive", p, b.Exps[p])
		}
		if err := checkAM(b.AMs[p]); err != nil {
			return fmt.Errorf("primitive %d: %w", p, err)
		}
		if b.Dims[p] != AMDim(b.AMs[p]) {
			return fmt.Errorf("primitive %d: shell dimension %d does not match am %d (want %d)",
				p, b.Dims[p], b.AMs[p], AMDim(b.AMs[p]))
		}
		if b.Atoms[p] < 0 || b.Atoms[p] >= natoms {
			return fmt.Errorf("primitive %d: atom index %d out of range [0,%d)", p, b.Atoms[p], natoms)
		}
		if b.Indices[p] < 0 || b.Indices[p]+b.Dims[p] > b.NBF {
			return fmt.Errorf("primitive %d: shell indices [%d,%d) exceed basis size %d",
				p, b.Indices[p], b.Indices[p]+b.Dims[p], b.NBF)
		}
	}
	return nil
}

// primNorm is the normalization constant of a Cartesian primitive with
// angular momentum along one axis, (l,m,n) = (am,0,0):
// sqrt((2a/pi)^{3/2} (4a)^am / (2am-1)!!). Shells are normalized to their
// leading component, the usual Cartesian convention; for s and p shells
// every component is exactly normalized. Replaces the CINTgto_norm cgo
// call.
func primNorm(am int, alpha float64) float64 {
	return math.Sqrt(math.Pow(2*alpha/math.Pi, 1.5) *
		math.Pow(4*alpha, float64(am)) / oddDoubleFact(2*am-1))
}

// PrimitiveBasis flattens the parsed per-atom shell structure into the
// engine's primitive arrays, folding the primitive norms into the
// contraction coefficients and converting nothing else: coordinates stay
// with the Molecule.
func (m *Molecule) PrimitiveBasis() (*PrimitiveBasis, error) {
	b := &PrimitiveBasis{}
	for ia, a := range m.Atoms {
		for _, o := range a.Basis {
			if err := checkAM(o.l); err != nil {
				return nil, fmt.Errorf("atom %s: %w", a.Name, err)
			}
			dim := AMDim(o.l)
			for _, pg := range o.Funcs {
				b.Coeffs = append(b.Coeffs, pg.preExp*primNorm(o.l, pg.zeta))
				b.Exps = append(b.Exps, pg.zeta)
				b.Atoms = append(b.Atoms, ia)
				b.AMs = append(b.AMs, o.l)
				b.Indices = append(b.Indices, b.NBF)
				b.Dims = append(b.Dims, dim)
			}
			b.NBF += dim
		}
	}
	if err := b.Validate(len(m.Atoms)); err != nil {
		return nil, err
	}
	return b, nil
}

// GeomBohr returns the atomic centers in bohr; input coordinates are
// Angstrom.
func (m *Molecule) GeomBohr() [][3]float64 {
	geom := make([][3]float64, len(m.Atoms))
	for i, a := range m.Atoms {
		for x := 0; x < 3; x++ {
			geom[i][x] = a.Coords[x] / a_B
		}
	}
	return geom
}

// Charges returns the nuclear charges as reals.
func (m *Molecule) Charges() []float64 {
	q := make([]float64, len(m.Atoms))
	for i, a := range m.Atoms {
		q[i] = float64(a.Z)
	}
	return q
}
