// oei.go --  This file is part of goSCF project.
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
// One-electron integrals (overlap, kinetic, nuclear attraction) over
// Cartesian Gaussian primitives, Taketa-Hunzinaga-Oohata closed forms.
package main

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// gaussianPair holds the Gaussian-product data of one primitive pair:
// gamma = alpha+beta, product center P = (alpha*A+beta*B)/gamma, the
// product prefactor exp(-alpha*beta*|A-B|^2/gamma) and the P-A, P-B
// displacement vectors. Computed once per pair and shared by all three
// one-electron kernels.
type gaussianPair struct {
	gamma     float64
	prefactor float64
	P         [3]float64
	PA, PB    [3]float64
}

func newGaussianPair(aa, bb float64, A, B [3]float64) gaussianPair {
	var pr gaussianPair
	pr.gamma = aa + bb
	pr.prefactor = math.Exp(-aa * bb * QQ(A, B) / pr.gamma)
	for x := 0; x < 3; x++ {
		pr.P[x] = (aa*A[x] + bb*B[x]) / pr.gamma
		pr.PA[x] = pr.P[x] - A[x]
		pr.PB[x] = pr.P[x] - B[x]
	}
	return pr
}

// overlap1D is the one-axis overlap component, THO 2.12: a terminating sum
// of binomial-prefactor terms weighted by odd double factorials and powers
// of 1/(2 gamma). A negative angular momentum (kinetic -2 shifts) makes
// every term vanish.
func overlap1D(l1, l2 int, pax, pbx, gamma float64) float64 {
	total := 0.0
	for i := 0; i <= (l1+l2)/2; i++ {
		total += binomialPrefactor(2*i, l1, l2, pax, pbx) *
			oddDoubleFact(2*i-1) / math.Pow(2*gamma, float64(i))
	}
	return total
}

// overlapKernel is the full 3-D primitive overlap: the product of the three
// axis components times (pi/gamma)^{3/2} and the pair prefactor.
func overlapKernel(la, lb [3]int, pr gaussianPair) float64 {
	w := pr.prefactor * math.Pow(math.Pi/pr.gamma, 1.5)
	for x := 0; x < 3; x++ {
		w *= overlap1D(la[x], lb[x], pr.PA[x], pr.PB[x], pr.gamma)
	}
	return w
}

// kineticKernel expresses the kinetic integral through overlaps with the
// ket momentum shifted by +-2 along each axis:
//
//	T = bb(2(lb+mb+nb)+3) S(la,lb)
//	  - 2 bb^2 sum_x S(la, lb+2e_x)
//	  - 1/2 sum_x lb_x(lb_x-1) S(la, lb-2e_x)
//
// Shifted momenta below zero contribute nothing (their quantum-number
// factor is zero and overlap1D returns zero for them anyway).
func kineticKernel(la, lb [3]int, bb float64, pr gaussianPair) float64 {
	term1 := bb * float64(2*(lb[0]+lb[1]+lb[2])+3) * overlapKernel(la, lb, pr)
	term2 := 0.0
	term3 := 0.0
	for x := 0; x < 3; x++ {
		up := lb
		up[x] += 2
		term2 += overlapKernel(la, up, pr)
		down := lb
		down[x] -= 2
		term3 += float64(lb[x]*(lb[x]-1)) * overlapKernel(la, down, pr)
	}
	return term1 - 2*bb*bb*term2 - 0.5*term3
}

func parity(k int) float64 {
	if k&1 == 1 {
		return -1
	}
	return 1
}

// aTerm is one term of the nuclear-attraction Hermite-like expansion,
// THO 2.18.
func aTerm(i, r, u, l1, l2 int, pax, pbx, cpx, gamma float64) float64 {
	return parity(i) * binomialPrefactor(i, l1, l2, pax, pbx) * parity(u) *
		Factorials[i] * math.Pow(cpx, float64(i-2*r-2*u)) *
		math.Pow(0.25/gamma, float64(r+u)) /
		Factorials[r] / Factorials[u] / Factorials[i-2*r-2*u]
}

// aArray accumulates the one-axis A coefficients indexed 0..l1+l2. The
// loop bounds are the closed-form ranges of the non-negativity constraints
// i-2r >= 0 and i-2r-2u >= 0; no term inside the loops is ever invalid.
func aArray(l1, l2 int, pax, pbx, cpx, gamma float64) []float64 {
	A := make([]float64, l1+l2+1)
	for i := 0; i <= l1+l2; i++ {
		for r := 0; r <= i/2; r++ {
			for u := 0; u <= (i-2*r)/2; u++ {
				A[i-2*r-u] += aTerm(i, r, u, l1, l2, pax, pbx, cpx, gamma)
			}
		}
	}
	return A
}

// potentialKernel is the nuclear-attraction integral of one primitive pair
// summed over all nuclei: per-axis A arrays contracted against the Boys
// function at orders 0..(total am), weighted by -2 pi/gamma and the
// nuclear charge.
func potentialKernel(la, lb [3]int, pr gaussianPair, geom [][3]float64, charges []float64) float64 {
	pre := pr.prefactor * (-2 * math.Pi / pr.gamma)
	nmax := la[0] + lb[0] + la[1] + lb[1] + la[2] + lb[2]
	val := 0.0
	for at := range geom {
		var PC [3]float64
		rcp2 := 0.0
		for x := 0; x < 3; x++ {
			PC[x] = pr.P[x] - geom[at][x]
			rcp2 += PC[x] * PC[x]
		}
		Ax := aArray(la[0], lb[0], pr.PA[0], pr.PB[0], PC[0], pr.gamma)
		Ay := aArray(la[1], lb[1], pr.PA[1], pr.PB[1], PC[1], pr.gamma)
		Az := aArray(la[2], lb[2], pr.PA[2], pr.PB[2], PC[2], pr.gamma)
		F := boysArray(nmax, pr.gamma*rcp2)
		total := 0.0
		for I := range Ax {
			for J := range Ay {
				for K := range Az {
					total += Ax[I] * Ay[J] * Az[K] * F[I+J+K]
				}
			}
		}
		val += charges[at] * pre * total
	}
	return val
}

// OEIArrays builds the overlap, kinetic and nuclear-attraction matrices in
// one pass over all primitive duets. The duet loop is full and
// non-triangular; every contribution lands exactly once at
// (shell index + component). Work is partitioned across GOMAXPROCS workers
// with per-worker accumulation buffers that are summed at the end, so no
// scatter-add ever races.
func OEIArrays(bas *PrimitiveBasis, geom [][3]float64, charges []float64) (S, T, V [][]float64, err error) {
	if err := bas.Validate(len(geom)); err != nil {
		return nil, nil, nil, err
	}
	if len(charges) != len(geom) {
		return nil, nil, nil, fmt.Errorf("got %d charges for %d centers", len(charges), len(geom))
	}
	nbf := bas.NBF
	nprim := bas.NPrim()

	workers := runtime.GOMAXPROCS(-1)
	if workers > nprim {
		workers = nprim
	}
	sParts := make([][]float64, workers)
	tParts := make([][]float64, workers)
	vParts := make([][]float64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			sBuf := make([]float64, nbf*nbf)
			tBuf := make([]float64, nbf*nbf)
			vBuf := make([]float64, nbf*nbf)
			for p1 := w; p1 < nprim; p1 += workers {
				for p2 := 0; p2 < nprim; p2++ {
					coef := bas.Coeffs[p1] * bas.Coeffs[p2]
					aa, bb := bas.Exps[p1], bas.Exps[p2]
					pr := newGaussianPair(aa, bb, geom[bas.Atoms[p1]], geom[bas.Atoms[p2]])
					ld1 := AMLeadingIndices[bas.AMs[p1]]
					ld2 := AMLeadingIndices[bas.AMs[p2]]
					for a := 0; a < bas.Dims[p1]; a++ {
						la := AMCombinations[ld1+a]
						i := bas.Indices[p1] + a
						for b := 0; b < bas.Dims[p2]; b++ {
							lb := AMCombinations[ld2+b]
							j := bas.Indices[p2] + b
							sBuf[i*nbf+j] += coef * overlapKernel(la, lb, pr)
							tBuf[i*nbf+j] += coef * kineticKernel(la, lb, bb, pr)
							vBuf[i*nbf+j] += coef * potentialKernel(la, lb, pr, geom, charges)
						}
					}
				}
			}
			sParts[w], tParts[w], vParts[w] = sBuf, tBuf, vBuf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	sFlat := make([]float64, nbf*nbf)
	tFlat := make([]float64, nbf*nbf)
	vFlat := make([]float64, nbf*nbf)
	for w := 0; w < workers; w++ {
		floats.Add(sFlat, sParts[w])
		floats.Add(tFlat, tParts[w])
		floats.Add(vFlat, vParts[w])
	}
	return unflatten(sFlat, nbf), unflatten(tFlat, nbf), unflatten(vFlat, nbf), nil
}
