// fastpath.go --  This file is part of goSCF project.
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
// s-orbital fast path. For a basis of pure s shells every angular sum in
// the general engine collapses, so the pair quantities (gamma, product
// coefficient, product center) are staged once as dense primitive-pair
// matrices and reused by all integral types. Same mathematical contract as
// oei.go/tei.go, checked against it in the tests.
package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

func sOnly(bas *PrimitiveBasis) error {
	for p, am := range bas.AMs {
		if am != 0 {
			return fmt.Errorf("s-orbital fast path got am %d at primitive %d; use the general engine", am, p)
		}
	}
	return nil
}

// sPairData stages the primitive-pair quantities of an all-s basis:
// gamma, the Gaussian-product coefficient exp(-q |A-B|^2), |A-B|^2, and
// the product centers.
type sPairData struct {
	n       int
	gamma   *mat.Dense
	mu      *mat.Dense // aa*bb/(aa+bb)
	dist2   *mat.Dense // |A-B|^2
	coeff   *mat.Dense // exp(-mu * dist2)
	centers [][3]float64
	prodCtr [][][3]float64 // (aa*A + bb*B)/gamma
}

func newSPairData(bas *PrimitiveBasis, geom [][3]float64) *sPairData {
	n := bas.NPrim()
	d := &sPairData{
		n:     n,
		gamma: mat.NewDense(n, n, nil),
		mu:    mat.NewDense(n, n, nil),
		dist2: mat.NewDense(n, n, nil),
		coeff: mat.NewDense(n, n, nil),
	}
	d.centers = make([][3]float64, n)
	for p := 0; p < n; p++ {
		d.centers[p] = geom[bas.Atoms[p]]
	}
	d.prodCtr = make([][][3]float64, n)
	for p1 := 0; p1 < n; p1++ {
		d.prodCtr[p1] = make([][3]float64, n)
		aa := bas.Exps[p1]
		for p2 := 0; p2 < n; p2++ {
			bb := bas.Exps[p2]
			g := aa + bb
			q2 := QQ(d.centers[p1], d.centers[p2])
			d.gamma.Set(p1, p2, g)
			d.mu.Set(p1, p2, aa*bb/g)
			d.dist2.Set(p1, p2, q2)
			d.coeff.Set(p1, p2, math.Exp(-aa*bb*q2/g))
			for x := 0; x < 3; x++ {
				d.prodCtr[p1][p2][x] = (aa*d.centers[p1][x] + bb*d.centers[p2][x]) / g
			}
		}
	}
	return d
}

// SFastOEI is the all-s overlap/kinetic/potential evaluation. The kinetic
// integral uses the s-only identity T = S * q * (3 - 2 q |A-B|^2) instead
// of the shifted-momentum expansion.
func SFastOEI(bas *PrimitiveBasis, geom [][3]float64, charges []float64) (S, T, V [][]float64, err error) {
	if err := bas.Validate(len(geom)); err != nil {
		return nil, nil, nil, err
	}
	if err := sOnly(bas); err != nil {
		return nil, nil, nil, err
	}
	if len(charges) != len(geom) {
		return nil, nil, nil, fmt.Errorf("got %d charges for %d centers", len(charges), len(geom))
	}
	nbf := bas.NBF
	S = zeros2(nbf)
	T = zeros2(nbf)
	V = zeros2(nbf)
	d := newSPairData(bas, geom)

	for p1 := 0; p1 < d.n; p1++ {
		i := bas.Indices[p1]
		for p2 := 0; p2 < d.n; p2++ {
			j := bas.Indices[p2]
			coef := bas.Coeffs[p1] * bas.Coeffs[p2]
			g := d.gamma.At(p1, p2)
			q := d.mu.At(p1, p2)
			s := d.coeff.At(p1, p2) * math.Pow(math.Pi/g, 1.5)
			S[i][j] += coef * s
			T[i][j] += coef * s * q * (3 - 2*q*d.dist2.At(p1, p2))
			vtmp := d.coeff.At(p1, p2) * 2 * math.Pi / g
			for at := range geom {
				rpc2 := QQ(d.prodCtr[p1][p2], geom[at])
				V[i][j] -= coef * charges[at] * vtmp * boys(0, g*rpc2)
			}
		}
	}
	return S, T, V, nil
}

// SFastTEI is the all-s repulsion tensor: order is always zero, so each
// quartet is one closed-form Boys evaluation.
func SFastTEI(bas *PrimitiveBasis, geom [][3]float64) ([][][][]float64, error) {
	if err := bas.Validate(len(geom)); err != nil {
		return nil, err
	}
	if err := sOnly(bas); err != nil {
		return nil, err
	}
	nbf := bas.NBF
	res := make([][][][]float64, nbf)
	for i := range res {
		res[i] = make([][][]float64, nbf)
		for j := range res[i] {
			res[i][j] = make([][]float64, nbf)
			for k := range res[i][j] {
				res[i][j][k] = make([]float64, nbf)
			}
		}
	}
	d := newSPairData(bas, geom)

	for p1 := 0; p1 < d.n; p1++ {
		for p2 := 0; p2 < d.n; p2++ {
			g1 := d.gamma.At(p1, p2)
			c1 := d.coeff.At(p1, p2)
			for p3 := 0; p3 < d.n; p3++ {
				for p4 := 0; p4 < d.n; p4++ {
					g2 := d.gamma.At(p3, p4)
					c2 := d.coeff.At(p3, p4)
					delta := 0.25 * (1/g1 + 1/g2)
					rpq2 := QQ(d.prodCtr[p1][p2], d.prodCtr[p3][p4])
					coef := bas.Coeffs[p1] * bas.Coeffs[p2] * bas.Coeffs[p3] * bas.Coeffs[p4]
					val := 2 * math.Pow(math.Pi, 2.5) / (g1 * g2 * math.Sqrt(g1+g2)) *
						c1 * c2 * boys(0, 0.25*rpq2/delta)
					res[bas.Indices[p1]][bas.Indices[p2]][bas.Indices[p3]][bas.Indices[p4]] += coef * val
				}
			}
		}
	}
	return res, nil
}
