// angular.go --  This file is part of goSCF project.
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

// MaxAM is the highest total angular momentum the engine supports (f shells).
// The A and B expansion arrays in oei.go/tei.go are sized from it.
const MaxAM = 3

var (
	// Factorials[n] = n!, up to 2*MaxAM+1 and beyond (B-array needs up to
	// 4*MaxAM).
	Factorials [4*MaxAM + 2]float64

	// DoubleFactorials[n] = n!!. The (-1)!! = 1 convention required by the
	// overlap component is handled by oddDoubleFact.
	DoubleFactorials [4*MaxAM + 2]float64

	// AMCombinations holds every Cartesian (l,m,n) triple for total angular
	// momenta 0..MaxAM, lexicographic descending in x then y. Basis-function
	// index assignment depends on this order; it matches the CCA convention.
	AMCombinations [][3]int

	// AMLeadingIndices[am] is the offset of the first triple of a given
	// total angular momentum inside AMCombinations.
	AMLeadingIndices [MaxAM + 1]int
)

func init() {
	Factorials[0] = 1
	for n := 1; n < len(Factorials); n++ {
		Factorials[n] = Factorials[n-1] * float64(n)
	}
	DoubleFactorials[0] = 1
	DoubleFactorials[1] = 1
	for n := 2; n < len(DoubleFactorials); n++ {
		DoubleFactorials[n] = DoubleFactorials[n-2] * float64(n)
	}
	for am := 0; am <= MaxAM; am++ {
		AMLeadingIndices[am] = len(AMCombinations)
		for l := am; l >= 0; l-- {
			for m := am - l; m >= 0; m-- {
				AMCombinations = append(AMCombinations, [3]int{l, m, am - l - m})
			}
		}
	}
}

// AMDim is the number of Cartesian components of a shell with total angular
// momentum am: (am+1)(am+2)/2.
func AMDim(am int) int {
	return (am + 1) * (am + 2) / 2
}

// checkAM rejects shells beyond the compiled maximum before any numeric work.
func checkAM(am int) error {
	if am < 0 || am > MaxAM {
		return fmt.Errorf("unsupported angular momentum %d: engine is compiled for am <= %d (s,p,d,f)", am, MaxAM)
	}
	return nil
}

// oddDoubleFact returns n!! with the (-1)!! = 1 convention of the THO
// overlap expansion.
func oddDoubleFact(n int) float64 {
	if n <= 0 {
		return 1
	}
	return DoubleFactorials[n]
}

func binomial(n, k int) float64 {
	return Factorials[n] / (Factorials[k] * Factorials[n-k])
}

// binomialPrefactor is the THO Gaussian-overlap expansion coefficient
// f_s(l1,l2,PAx,PBx) = sum_t C(l1,t) C(l2,s-t) PAx^(l1-t) PBx^(l2-s+t),
// with t restricted to 0 <= t <= l1 and 0 <= s-t <= l2. The bounds are
// derived up front, so every term in the loop is valid; math.Pow(0,0) = 1
// supplies the 0^0 convention.
func binomialPrefactor(s, l1, l2 int, pax, pbx float64) float64 {
	total := 0.0
	tmin := 0
	if s-l2 > 0 {
		tmin = s - l2
	}
	tmax := s
	if l1 < s {
		tmax = l1
	}
	for t := tmin; t <= tmax; t++ {
		total += binomial(l1, t) * binomial(l2, s-t) *
			math.Pow(pax, float64(l1-t)) * math.Pow(pbx, float64(l2-s+t))
	}
	return total
}

// factRatio2 = a! / b! / (a-2b)!, the factorial ratio of the THO 2.22
// B-term.
func factRatio2(a, b int) float64 {
	return Factorials[a] / Factorials[b] / Factorials[a-2*b]
}
