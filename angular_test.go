// angular_test.go --  This file is part of goSCF project.
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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorialTables(t *testing.T) {
	require.Equal(t, 1.0, Factorials[0])
	require.Equal(t, 120.0, Factorials[5])
	require.Equal(t, 6227020800.0, Factorials[13])
	require.Equal(t, 1.0, DoubleFactorials[0])
	require.Equal(t, 1.0, DoubleFactorials[1])
	require.Equal(t, 15.0, DoubleFactorials[5])
	require.Equal(t, 48.0, DoubleFactorials[6])
	require.Equal(t, 1.0, oddDoubleFact(-1))
	require.Equal(t, 1.0, oddDoubleFact(0))
	require.Equal(t, 105.0, oddDoubleFact(7))
}

func TestAMCombinations(t *testing.T) {
	require.Equal(t, [MaxAM + 1]int{0, 1, 4, 10}, AMLeadingIndices)
	require.Len(t, AMCombinations, 20)

	require.Equal(t, [3]int{0, 0, 0}, AMCombinations[0])
	// p: x, y, z
	require.Equal(t, [3]int{1, 0, 0}, AMCombinations[1])
	require.Equal(t, [3]int{0, 1, 0}, AMCombinations[2])
	require.Equal(t, [3]int{0, 0, 1}, AMCombinations[3])
	// d: xx, xy, xz, yy, yz, zz
	require.Equal(t, [3]int{2, 0, 0}, AMCombinations[4])
	require.Equal(t, [3]int{1, 1, 0}, AMCombinations[5])
	require.Equal(t, [3]int{1, 0, 1}, AMCombinations[6])
	require.Equal(t, [3]int{0, 2, 0}, AMCombinations[7])
	require.Equal(t, [3]int{0, 1, 1}, AMCombinations[8])
	require.Equal(t, [3]int{0, 0, 2}, AMCombinations[9])
	// f starts at xxx and ends at zzz
	require.Equal(t, [3]int{3, 0, 0}, AMCombinations[10])
	require.Equal(t, [3]int{0, 0, 3}, AMCombinations[19])

	for am := 0; am <= MaxAM; am++ {
		lo := AMLeadingIndices[am]
		for i := lo; i < lo+AMDim(am); i++ {
			c := AMCombinations[i]
			require.Equal(t, am, c[0]+c[1]+c[2])
		}
	}
}

func TestAMDim(t *testing.T) {
	require.Equal(t, 1, AMDim(0))
	require.Equal(t, 3, AMDim(1))
	require.Equal(t, 6, AMDim(2))
	require.Equal(t, 10, AMDim(3))
}

func TestCheckAM(t *testing.T) {
	for am := 0; am <= MaxAM; am++ {
		require.NoError(t, checkAM(am))
	}
	require.Error(t, checkAM(-1))
	require.Error(t, checkAM(MaxAM+1))
}

func TestBinomialPrefactor(t *testing.T) {
	a, b := 0.3, -1.7
	// (x+a)(x+b) = x^2 + (a+b) x + ab
	require.InDelta(t, a*b, binomialPrefactor(0, 1, 1, a, b), 1e-14)
	require.InDelta(t, a+b, binomialPrefactor(1, 1, 1, a, b), 1e-14)
	require.InDelta(t, 1.0, binomialPrefactor(2, 1, 1, a, b), 1e-14)
	// s-s overlap has a single unit coefficient
	require.Equal(t, 1.0, binomialPrefactor(0, 0, 0, a, b))
	// 0^0 = 1 even with both displacements zero
	require.Equal(t, 1.0, binomialPrefactor(2, 1, 1, 0, 0))
	require.Equal(t, 0.0, binomialPrefactor(1, 1, 1, 0, 0))
}

func TestFactRatio2(t *testing.T) {
	require.Equal(t, 1.0, factRatio2(0, 0))
	// 4!/1!/2! = 12
	require.Equal(t, 12.0, factRatio2(4, 1))
	// 6!/2!/2! = 180
	require.Equal(t, 180.0, factRatio2(6, 2))
}
