// tei_test.go --  This file is part of goSCF project.
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

func TestERISameCenterS(t *testing.T) {
	// (ss|ss) = 2 sqrt(alpha/pi) when all four normalized s primitives share
	// one center and one exponent.
	for _, alpha := range []float64{0.3, 1.0, 2.5} {
		bas := uncontractedBasis(t, []int{0}, []float64{alpha}, []int{0}, 1)
		G, err := TEIArrays(bas, [][3]float64{{0, 0, 0}})
		require.NoError(t, err)
		require.InDelta(t, 2*math.Sqrt(alpha/math.Pi), G[0][0][0][0], 1e-12, "alpha=%g", alpha)
	}
}

func TestERIPermutationalSymmetry(t *testing.T) {
	geom := h2Geom()
	bas := uncontractedBasis(t,
		[]int{0, 1, 0}, []float64{0.8, 0.5, 0.4}, []int{0, 0, 1}, 2)
	G, err := TEIArrays(bas, geom)
	require.NoError(t, err)

	n := bas.NBF
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					v := G[i][j][k][l]
					require.InDelta(t, v, G[j][i][k][l], 1e-12, "bra swap %d%d%d%d", i, j, k, l)
					require.InDelta(t, v, G[i][j][l][k], 1e-12, "ket swap %d%d%d%d", i, j, k, l)
					require.InDelta(t, v, G[k][l][i][j], 1e-12, "pair swap %d%d%d%d", i, j, k, l)
				}
			}
		}
		// Coulomb self-repulsion is positive.
		require.Greater(t, G[i][i][i][i], 0.0)
	}
}

func TestERITwoCenterS(t *testing.T) {
	// (aa|bb) for two equal-exponent s primitives at distance R reduces to
	// 2 sqrt(alpha/pi) * F_0(alpha R^2).
	alpha := 0.5
	geom := h2Geom()
	bas := uncontractedBasis(t, []int{0, 0}, []float64{alpha, alpha}, []int{0, 1}, 2)
	G, err := TEIArrays(bas, geom)
	require.NoError(t, err)

	R := geom[1][2] - geom[0][2]
	want := 2 * math.Sqrt(alpha/math.Pi) * boys(0, alpha*R*R)
	require.InDelta(t, want, G[0][0][1][1], 1e-12)
}

func TestERIHigherShells(t *testing.T) {
	// d quartet on one center: finite positive self-repulsion, dxy below dxx
	// by its smaller self-overlap.
	dbas := uncontractedBasis(t, []int{2}, []float64{0.7}, []int{0}, 1)
	G, err := TEIArrays(dbas, [][3]float64{{0, 0, 0}})
	require.NoError(t, err)
	require.Greater(t, G[0][0][0][0], 0.0)
	require.Greater(t, G[0][0][0][0], G[1][1][1][1])

	// full f shell through the kernel: finite, permutation symmetric,
	// positive diagonal
	fbas := uncontractedBasis(t, []int{3}, []float64{0.9}, []int{0}, 1)
	G, err = TEIArrays(fbas, [][3]float64{{0, 0, 0}})
	require.NoError(t, err)
	n := fbas.NBF
	require.Equal(t, 10, n)
	for i := 0; i < n; i++ {
		require.Greater(t, G[i][i][i][i], 0.0)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					v := G[i][j][k][l]
					require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%d %d %d %d", i, j, k, l)
					require.InDelta(t, v, G[j][i][k][l], 1e-12)
					require.InDelta(t, v, G[i][j][l][k], 1e-12)
					require.InDelta(t, v, G[k][l][i][j], 1e-12)
				}
			}
		}
	}
}

func TestElecElecSparse(t *testing.T) {
	geom := h2Geom()
	bas := uncontractedBasis(t,
		[]int{0, 0, 1}, []float64{0.9, 0.4, 0.6}, []int{0, 1, 1}, 2)
	G, err := TEIArrays(bas, geom)
	require.NoError(t, err)

	idx, val := ElecElecSparse(G)
	require.Equal(t, len(idx), len(val))

	n := bas.NBF
	// Every stored entry decodes back to its tensor value with j <= i,
	// l <= k.
	for p, lin := range idx {
		l := lin % n
		k := (lin / n) % n
		j := (lin / (n * n)) % n
		i := lin / (n * n * n)
		require.LessOrEqual(t, j, i)
		require.LessOrEqual(t, l, k)
		require.Equal(t, G[i][j][k][l], val[p], "entry %d", p)
	}
	// Every unique-pair tensor entry above threshold is stored.
	stored := make(map[int]bool, len(idx))
	for _, lin := range idx {
		stored[lin] = true
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l <= k; l++ {
					if math.Abs(G[i][j][k][l]) >= 1e-18 {
						require.True(t, stored[((i*n+j)*n+k)*n+l], "%d %d %d %d missing", i, j, k, l)
					}
				}
			}
		}
	}
}
