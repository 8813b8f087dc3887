// tei.go --  This file is part of goSCF project.
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
//
// Two-electron repulsion integrals over Cartesian Gaussian primitives,
// THO 2.22: two Gaussian products (AB -> P, CD -> Q) reduced to per-axis
// B arrays contracted against one Boys-function evaluation per quartet.
package main

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

func b0(i, r int, g float64) float64 {
	return factRatio2(i, r) * math.Pow(4*g, float64(r-i))
}

func fB(i, l1, l2 int, pax, pbx float64, r int, g float64) float64 {
	return binomialPrefactor(i, l1, l2, pax, pbx) * b0(i, r, g)
}

func bTerm(i1, i2, r1, r2, u, l1, l2, l3, l4 int,
	pax, pbx, qcx, qdx, qpx, g1, g2, delta float64) float64 {
	return fB(i1, l1, l2, pax, pbx, r1, g1) *
		parity(i2) * fB(i2, l3, l4, qcx, qdx, r2, g2) *
		parity(u) * factRatio2(i1+i2-2*(r1+r2), u) *
		math.Pow(qpx, float64(i1+i2-2*(r1+r2)-2*u)) /
		math.Pow(delta, float64(i1+i2-2*(r1+r2)-u))
}

// bArray is the four-center analogue of aArray: one axis, indexed
// 0..l1+l2+l3+l4. As with aArray the loop bounds come straight from the
// non-negativity constraints (i1-2r1 >= 0, i2-2r2 >= 0,
// i1+i2-2(r1+r2)-2u >= 0), so no validity check is needed in the body.
func bArray(l1, l2, l3, l4 int, pax, pbx, qcx, qdx, qpx, g1, g2, delta float64) []float64 {
	B := make([]float64, l1+l2+l3+l4+1)
	for i1 := 0; i1 <= l1+l2; i1++ {
		for i2 := 0; i2 <= l3+l4; i2++ {
			for r1 := 0; r1 <= i1/2; r1++ {
				for r2 := 0; r2 <= i2/2; r2++ {
					for u := 0; u <= (i1+i2)/2-r1-r2; u++ {
						I := i1 + i2 - 2*(r1+r2) - u
						B[I] += bTerm(i1, i2, r1, r2, u, l1, l2, l3, l4,
							pax, pbx, qcx, qdx, qpx, g1, g2, delta)
					}
				}
			}
		}
	}
	return B
}

// eriKernel computes a single four-center repulsion integral. The two pair
// widths combine into delta = 1/(4 g1) + 1/(4 g2); for an s quartet every
// B array is [1] and the value collapses to the closed erf form at order
// zero.
func eriKernel(la, lb, lc, ld [3]int, p1, p2 gaussianPair) float64 {
	g1, g2 := p1.gamma, p2.gamma
	delta := 0.25 * (1/g1 + 1/g2)
	var QP [3]float64
	rpq2 := 0.0
	for x := 0; x < 3; x++ {
		QP[x] = p2.P[x] - p1.P[x]
		rpq2 += QP[x] * QP[x]
	}
	nmax := 0
	for x := 0; x < 3; x++ {
		nmax += la[x] + lb[x] + lc[x] + ld[x]
	}
	Bx := bArray(la[0], lb[0], lc[0], ld[0], p1.PA[0], p1.PB[0], p2.PA[0], p2.PB[0], QP[0], g1, g2, delta)
	By := bArray(la[1], lb[1], lc[1], ld[1], p1.PA[1], p1.PB[1], p2.PA[1], p2.PB[1], QP[1], g1, g2, delta)
	Bz := bArray(la[2], lb[2], lc[2], ld[2], p1.PA[2], p1.PB[2], p2.PA[2], p2.PB[2], QP[2], g1, g2, delta)
	F := boysArray(nmax, 0.25*rpq2/delta)
	total := 0.0
	for I := range Bx {
		for J := range By {
			for K := range Bz {
				total += Bx[I] * By[J] * Bz[K] * F[I+J+K]
			}
		}
	}
	return 2 * math.Pow(math.Pi, 2.5) / (g1 * g2 * math.Sqrt(g1+g2)) *
		p1.prefactor * p2.prefactor * total
}

// TEIArrays builds the full nbf^4 repulsion tensor. The quartet loop is
// full and non-triangular: permutational symmetry is paid for with
// recomputation, never with bookkeeping. Quartets are partitioned across
// workers by their first primitive; each worker owns a flat buffer and the
// buffers are reduced afterwards.
func TEIArrays(bas *PrimitiveBasis, geom [][3]float64) ([][][][]float64, error) {
	if err := bas.Validate(len(geom)); err != nil {
		return nil, err
	}
	nbf := bas.NBF
	nprim := bas.NPrim()

	workers := runtime.GOMAXPROCS(-1)
	if workers > nprim {
		workers = nprim
	}
	parts := make([][]float64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			buf := make([]float64, nbf*nbf*nbf*nbf)
			for q1 := w; q1 < nprim; q1 += workers {
				for q2 := 0; q2 < nprim; q2++ {
					pair1 := newGaussianPair(bas.Exps[q1], bas.Exps[q2],
						geom[bas.Atoms[q1]], geom[bas.Atoms[q2]])
					c12 := bas.Coeffs[q1] * bas.Coeffs[q2]
					for q3 := 0; q3 < nprim; q3++ {
						for q4 := 0; q4 < nprim; q4++ {
							pair2 := newGaussianPair(bas.Exps[q3], bas.Exps[q4],
								geom[bas.Atoms[q3]], geom[bas.Atoms[q4]])
							coef := c12 * bas.Coeffs[q3] * bas.Coeffs[q4]
							ld1 := AMLeadingIndices[bas.AMs[q1]]
							ld2 := AMLeadingIndices[bas.AMs[q2]]
							ld3 := AMLeadingIndices[bas.AMs[q3]]
							ld4 := AMLeadingIndices[bas.AMs[q4]]
							for a := 0; a < bas.Dims[q1]; a++ {
								i := bas.Indices[q1] + a
								for b := 0; b < bas.Dims[q2]; b++ {
									j := bas.Indices[q2] + b
									for c := 0; c < bas.Dims[q3]; c++ {
										k := bas.Indices[q3] + c
										for d := 0; d < bas.Dims[q4]; d++ {
											l := bas.Indices[q4] + d
											val := eriKernel(
												AMCombinations[ld1+a], AMCombinations[ld2+b],
												AMCombinations[ld3+c], AMCombinations[ld4+d],
												pair1, pair2)
											buf[((i*nbf+j)*nbf+k)*nbf+l] += coef * val
										}
									}
								}
							}
						}
					}
				}
			}
			parts[w] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	flat := make([]float64, nbf*nbf*nbf*nbf)
	for w := 0; w < workers; w++ {
		floats.Add(flat, parts[w])
	}

	res := make([][][][]float64, nbf)
	for i := range res {
		res[i] = make([][][]float64, nbf)
		for j := range res[i] {
			res[i][j] = make([][]float64, nbf)
			for k := range res[i][j] {
				res[i][j][k] = flat[((i*nbf+j)*nbf+k)*nbf : ((i*nbf+j)*nbf+k)*nbf+nbf]
			}
		}
	}
	return res, nil
}

// ElecElecSparse packs the nonzero unique-pair entries of the repulsion
// tensor into the linear-index/value list the RHF driver consumes: only
// entries with j <= i and l <= k are stored, the driver mirrors the rest.
func ElecElecSparse(vee [][][][]float64) ([]int, []float64) {
	nbf := len(vee)
	var idx []int
	var val []float64
	for i := 0; i < nbf; i++ {
		for j := 0; j <= i; j++ {
			for k := 0; k < nbf; k++ {
				for l := 0; l <= k; l++ {
					if math.Abs(vee[i][j][k][l]) >= 1e-18 {
						idx = append(idx, ((i*nbf+j)*nbf+k)*nbf+l)
						val = append(val, vee[i][j][k][l])
					}
				}
			}
		}
	}
	return idx, val
}
