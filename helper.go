// helper.go --  This file is part of goSCF project.
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
	"bufio"
	"fmt"
	"math"
	"os"
	"runtime"

	"gonum.org/v1/gonum/mat"
)

func ReadFileLines(fname string) ([]string, error) {
	var result []string
	var err error

	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	err = scanner.Err()

	return result, err
}

// QQ is the squared distance between two centers.
func QQ(v1, v2 [3]float64) float64 {
	vv1 := mat.NewVecDense(3, v1[:])
	vv2 := mat.NewVecDense(3, v2[:])
	dist := mat.NewVecDense(3, nil)
	dist.SubVec(vv2, vv1)
	dist.MulElemVec(dist, dist)
	return mat.Sum(dist)
}

func zeros2(n int) [][]float64 {
	res := make([][]float64, n)
	for i := range res {
		res[i] = make([]float64, n)
	}
	return res
}

func flatten(arr [][]float64) []float64 {
	dim := len(arr)
	res := make([]float64, dim*dim)
	for i := range arr {
		for j := range arr[i] {
			res[i*dim+j] = arr[i][j]
		}
	}
	return res
}

func unflatten(data []float64, n int) [][]float64 {
	res := make([][]float64, n)
	for i := range res {
		res[i] = data[i*n : (i+1)*n]
	}
	return res
}

func TxtFileFrom2DSlice(data [][]float64, fname string) {
	var ftext string
	for i := 0; i < len(data); i++ {
		for j := 0; j < len(data[i]); j++ {
			ftext += fmt.Sprintf("%12.6f", data[i][j])
		}
		ftext += "\n"
	}
	err := os.WriteFile(fname, []byte(ftext), 0644)
	if err != nil {
		fmt.Println(err)
	}
}

func PrintMat(M [][]float64) {
	aaa := mat.NewDense(len(M), len(M), flatten(M))
	PrintDense(aaa)
}

func PrintDense(D *mat.Dense) {
	fa := mat.Formatted(D, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("    %.8f\n", fa)
}

func MatrixSqrtInverse(S [][]float64) [][]float64 {
	n_basis := len(S)
	Smat := mat.NewSymDense(n_basis, flatten(S))
	var eigsym mat.EigenSym
	ok := eigsym.Factorize(Smat, true)
	if !ok {
		fmt.Println("S eigendecomposition failed")
	}
	var ev mat.Dense
	eigsym.VectorsTo(&ev)
	sqrtVec := make([]float64, n_basis)
	for i := range eigsym.Values(nil) {
		sqrtVec[i] = math.Sqrt(eigsym.Values(nil)[i])
	}
	diagM := mat.NewDiagDense(n_basis, sqrtVec)
	var SSqrtInv mat.Dense
	SSqrtInv.Mul(&ev, diagM)
	ev.Inverse(&ev)
	SSqrtInv.Mul(&SSqrtInv, &ev)
	SSqrtInv.Inverse(&SSqrtInv)

	result := make([][]float64, n_basis)
	for i := range result {
		result[i] = SSqrtInv.RawRowView(i)
	}
	return result
}

// MyMemDebug reports the allocator state through InfoLogger.
func MyMemDebug() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	InfoLogger.Printf("mem: Alloc %d HeapAlloc %d HeapSys %d TotalAlloc %d",
		memStats.Alloc, memStats.HeapAlloc, memStats.HeapSys, memStats.TotalAlloc)
}
