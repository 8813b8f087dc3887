// boys_test.go --  This file is part of goSCF project.
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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoysAtZero(t *testing.T) {
	for n := 0; n <= 10; n++ {
		require.Equal(t, 1.0/float64(2*n+1), boys(n, 0), "F_%d(0)", n)
	}
}

func TestBoysBranchContinuity(t *testing.T) {
	// The series and the closed form must agree where the mask switches.
	for n := 0; n <= 6; n++ {
		lo := boysSeries(n, boysSwitch)
		hi := boysClosed(n, boysSwitch+boysShift)
		require.InDelta(t, lo, hi, 1e-10, "order %d at the threshold", n)
	}
}

func TestBoysF0ErfForm(t *testing.T) {
	// F_0(x) = erf(sqrt(x)) sqrt(pi) / (2 sqrt(x)) for x above threshold.
	for _, x := range []float64{1e-6, 0.1, 1.0, 7.5, 40.0} {
		want := math.Erf(math.Sqrt(x)) * math.Sqrt(math.Pi) / (2 * math.Sqrt(x))
		require.InDelta(t, want, boys(0, x), 1e-13, "x=%g", x)
	}
}

func TestBoysLargeArgument(t *testing.T) {
	// erf saturates; F_n must stay finite and follow the asymptotic decay.
	for n := 0; n <= 6; n++ {
		v := boys(n, 1e12)
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "F_%d(1e12) = %v", n, v)
	}
	// F_0(x) -> sqrt(pi)/(2 sqrt(x))
	x := 1e6
	require.InDelta(t, math.Sqrt(math.Pi)/(2*math.Sqrt(x)), boys(0, x), 1e-12)
}

func TestBoysArrayMatchesDirect(t *testing.T) {
	for _, x := range []float64{0, 1e-9, 0.05, 1.0, 4.2, 25.0} {
		f := boysArray(8, x)
		for n := 0; n <= 8; n++ {
			require.InDelta(t, boys(n, x), f[n], 1e-12, "order %d, x=%g", n, x)
		}
	}
}

func TestBoysUpwardConsistency(t *testing.T) {
	// The downward-filled array must satisfy the defining recursion
	// F_{n+1}(x) = ((2n+1) F_n(x) - exp(-x)) / (2x).
	x := 3.7
	f := boysArray(5, x)
	for n := 0; n < 5; n++ {
		up := (float64(2*n+1)*f[n] - math.Exp(-x)) / (2 * x)
		require.InDelta(t, f[n+1], up, 1e-12)
	}
}

func TestBoysMonotoneInOrder(t *testing.T) {
	// t^{2n} shrinks on (0,1), so F_n decreases with n for fixed x.
	for _, x := range []float64{0, 0.5, 2.0, 10.0} {
		f := boysArray(6, x)
		for n := 0; n < 6; n++ {
			require.Greater(t, f[n], f[n+1], "x=%g", x)
		}
	}
}
