// rhf.go --  This file is part of goSCF project.
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
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

type RHF struct {
	Occupied                   int
	S, T, Ven                  [][]float64
	Vnn                        float64
	VeeIdx                     []int
	VeeVal                     []float64
	S2Inv, H1, Cij, DensMat, G [][]float64
	F_list, DIIS_R             []*mat.Dense
}

func (m *Molecule) RHFinit() (RHF, error) {
	var result RHF

	result.Occupied = m.getNelec() / 2

	S, T, Ven, vee, err := m.CalculateIntegrals()
	if err != nil {
		return result, fmt.Errorf("RHF init: %w", err)
	}
	result.S, result.T, result.Ven = S, T, Ven
	result.VeeIdx, result.VeeVal = ElecElecSparse(vee)
	// the allocator high-water mark sits right after the dense tensor
	MyMemDebug()

	result.S2Inv = MatrixSqrtInverse(result.S)

	result.BuildInitialGuess()
	result.BuildDensMat()

	result.Vnn = m.NucNuc()
	return result, nil
}

// NucNuc is the classical nuclear repulsion energy.
func (m *Molecule) NucNuc() float64 {
	res := 0.0
	for i := range m.Atoms {
		for j := 0; j < i; j++ {
			res += float64(m.Atoms[i].Z) * float64(m.Atoms[j].Z) /
				math.Sqrt(math.Pow((m.Atoms[i].Coords[0]-m.Atoms[j].Coords[0])/a_B, 2)+
					math.Pow((m.Atoms[i].Coords[1]-m.Atoms[j].Coords[1])/a_B, 2)+
					math.Pow((m.Atoms[i].Coords[2]-m.Atoms[j].Coords[2])/a_B, 2))
		}
	}
	return res
}

// BuildInitialGuess diagonalizes the core Hamiltonian in the orthogonalized
// basis for the starting MO coefficients.
func (rhf *RHF) BuildInitialGuess() {
	n_basis := len(rhf.T)
	H1 := mat.NewDense(n_basis, n_basis, flatten(rhf.T))
	H1.Add(H1, mat.NewDense(n_basis, n_basis, flatten(rhf.Ven)))

	rhf.H1 = make([][]float64, n_basis)
	for i := range rhf.H1 {
		rhf.H1[i] = make([]float64, n_basis)
		copy(rhf.H1[i], H1.RawRowView(i))
	}

	SSqrtInv := mat.NewDense(n_basis, n_basis, flatten(rhf.S2Inv))

	H1.Mul(SSqrtInv, H1)
	H1.Mul(H1, SSqrtInv)

	H1Sym := mat.NewSymDense(n_basis, H1.RawMatrix().Data)
	var eigsym mat.EigenSym
	ok := eigsym.Factorize(H1Sym, true)
	if !ok {
		ErrorLogger.Println("Transformed H1 eigendecomposition failed")
	}

	var ev mat.Dense
	eigsym.VectorsTo(&ev)

	ev.Mul(SSqrtInv, &ev)

	rhf.Cij = make([][]float64, n_basis)
	for i := range rhf.Cij {
		rhf.Cij[i] = ev.RawRowView(i)
	}
}

func (rhf *RHF) BuildDensMat() {
	if len(rhf.Cij) == 0 {
		ErrorLogger.Println("Cannot build Density matrix. No Cij.")
		return
	}
	n_basis := len(rhf.Cij)
	rhf.DensMat = zeros2(n_basis)
	occ := 1.0
	for i := 0; i < n_basis; i++ {
		for j := 0; j < n_basis; j++ {
			for oo := 0; oo < rhf.Occupied; oo++ {
				rhf.DensMat[i][j] += occ * rhf.Cij[i][oo] * rhf.Cij[j][oo]
			}
		}
	}
}

func (rhf *RHF) GetVeeIdxs(IdxVal int) (int, int, int, int) {
	n_basis := len(rhf.T)
	i := IdxVal / (n_basis * n_basis * n_basis)
	IdxVal = IdxVal % (n_basis * n_basis * n_basis)
	j := IdxVal / (n_basis * n_basis)
	IdxVal = IdxVal % (n_basis * n_basis)
	k := IdxVal / n_basis
	l := IdxVal % n_basis
	return i, j, k, l
}

// ProcessVeeVal scatters one stored unique integral into the two-electron
// matrix, expanding the index permutations the sparse list left out.
func (rhf *RHF) ProcessVeeVal(idx int, result *mat.Dense) {
	i, j, k, l := rhf.GetVeeIdxs(rhf.VeeIdx[idx])
	result.Set(i, j, result.At(i, j)+2*rhf.DensMat[k][l]*rhf.VeeVal[idx])
	result.Set(i, k, result.At(i, k)-rhf.DensMat[j][l]*rhf.VeeVal[idx])
	if i != j {
		result.Set(j, i, result.At(j, i)+2*rhf.DensMat[k][l]*rhf.VeeVal[idx])
		result.Set(j, k, result.At(j, k)-rhf.DensMat[i][l]*rhf.VeeVal[idx])
		if k != l {
			result.Set(j, i, result.At(j, i)+2*rhf.DensMat[l][k]*rhf.VeeVal[idx])
			result.Set(j, l, result.At(j, l)-rhf.DensMat[i][k]*rhf.VeeVal[idx])
		}
	}
	if k != l {
		result.Set(i, j, result.At(i, j)+2*rhf.DensMat[l][k]*rhf.VeeVal[idx])
		result.Set(i, l, result.At(i, l)-rhf.DensMat[j][k]*rhf.VeeVal[idx])
	}
}

// BuildG forms the two-electron part of the Fock matrix from the sparse
// Vee list: the index range is partitioned across workers, each
// accumulating into its own matrix, and the partial matrices are summed.
func (rhf *RHF) BuildG() {
	if len(rhf.DensMat) == 0 {
		rhf.BuildDensMat()
	}
	n_basis := len(rhf.T)
	nVee := len(rhf.VeeIdx)
	workers := runtime.GOMAXPROCS(-1)
	if workers > nVee {
		workers = nVee
	}
	parts := make([]*mat.Dense, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			part := mat.NewDense(n_basis, n_basis, nil)
			for idx := w; idx < nVee; idx += workers {
				rhf.ProcessVeeVal(idx, part)
			}
			parts[w] = part
			return nil
		})
	}
	_ = g.Wait()

	result := mat.NewDense(n_basis, n_basis, nil)
	for w := range parts {
		result.Add(result, parts[w])
	}
	rhf.G = make([][]float64, n_basis)
	for i := range rhf.G {
		rhf.G[i] = result.RawRowView(i)
	}
}

func (rhf *RHF) CalcEnergy() float64 {
	n_basis := len(rhf.T)
	res := 0.0
	for i := 0; i < n_basis; i++ {
		for j := 0; j < n_basis; j++ {
			res += rhf.DensMat[i][j] * (2*rhf.H1[i][j] + rhf.G[i][j])
		}
	}
	return res + rhf.Vnn
}

// BuildDIIS_R appends the DIIS residual A(FDS - SDF)A for the current Fock
// matrix.
func (rhf *RHF) BuildDIIS_R(F, S2inv *mat.Dense) {
	n_basis := len(rhf.T)
	term1 := mat.NewDense(n_basis, n_basis, nil)
	term2 := mat.NewDense(n_basis, n_basis, nil)
	S := mat.NewDense(n_basis, n_basis, flatten(rhf.S))
	DM := mat.NewDense(n_basis, n_basis, flatten(rhf.DensMat))
	term1.Mul(F, DM)
	term1.Mul(term1, S)
	term2.Mul(S, DM)
	term2.Mul(term2, F)
	term1.Sub(term1, term2)
	term1.Mul(S2inv, term1)
	term1.Mul(term1, S2inv)
	rhf.DIIS_R = append(rhf.DIIS_R, term1)
}

func (rhf *RHF) CalcdRMS() float64 {
	res := mat.DenseCopyOf(rhf.DIIS_R[len(rhf.DIIS_R)-1])
	res.MulElem(res, res)
	return math.Sqrt(stat.Mean(res.RawMatrix().Data, nil))
}

func (rhf *RHF) BuildB() *mat.Dense {
	B_dim := len(rhf.F_list) + 1
	r_dim := len(rhf.T)
	result := mat.NewDense(B_dim, B_dim, nil)

	for i := 0; i < (B_dim - 1); i++ {
		result.Set(i, B_dim-1, -1)
		result.Set(B_dim-1, i, -1)
	}

	for i := range rhf.F_list {
		for j := range rhf.F_list {
			b := mat.NewDense(r_dim, r_dim, nil)
			b.MulElem(rhf.DIIS_R[i], rhf.DIIS_R[j])
			result.Set(i, j, mat.Sum(b))
		}
	}
	return result
}

func (rhf *RHF) SCF_DIIS() float64 {
	TolE := 1e-8
	TolD := 1e-5
	MaxSteps := 50
	n_basis := len(rhf.H1)
	res := 0.0
	E_prev := 0.0
	dRMS := 0.0

	H1 := mat.NewDense(n_basis, n_basis, flatten(rhf.H1))
	SSqrtInv := mat.NewDense(n_basis, n_basis, flatten(rhf.S2Inv))

	for i := 0; i < MaxSteps; i++ {
		E_prev = res
		rhf.BuildG()

		res = rhf.CalcEnergy()

		F := mat.NewDense(n_basis, n_basis, flatten(rhf.G))
		F.Add(F, H1)

		rhf.F_list = append(rhf.F_list, mat.DenseCopyOf(F))
		rhf.BuildDIIS_R(F, SSqrtInv)
		dRMS = rhf.CalcdRMS()

		OutputLogger.Println("Iteration ", i+1, ". Energy = ", res, ", dE = ", E_prev-res, ", dRMS = ", dRMS)
		if (math.Abs(E_prev-res) < TolE) && (dRMS < TolD) {
			OutputLogger.Println("SCF converged after step ", i+1)
			return res
		}

		if i > 0 {
			bmat := rhf.BuildB()

			rhs := mat.NewVecDense(len(rhf.F_list)+1, nil)
			rhs.SetVec(len(rhf.F_list), -1)

			var lu mat.LU
			lu.Factorize(bmat)
			var coefs mat.VecDense
			if err := lu.SolveVecTo(&coefs, false, rhs); err != nil {
				continue
			}
			F = mat.NewDense(n_basis, n_basis, nil)
			for j := range rhf.F_list {
				fpart := mat.NewDense(n_basis, n_basis, nil)
				fpart.Scale(coefs.AtVec(j), rhf.F_list[j])
				F.Add(F, fpart)
			}
		}

		F.Mul(F, SSqrtInv)
		F.Mul(SSqrtInv, F)
		FSym := mat.NewSymDense(n_basis, F.RawMatrix().Data)
		var eigsym mat.EigenSym
		var ev mat.Dense
		ok := eigsym.Factorize(FSym, true)
		if !ok {
			ErrorLogger.Println("Transformed F eigendecomposition failed")
		}

		eigsym.VectorsTo(&ev)
		ev.Mul(SSqrtInv, &ev)

		for i := range rhf.Cij {
			rhf.Cij[i] = ev.RawRowView(i)
		}

		rhf.BuildDensMat()
	}

	WarningLogger.Println("SCF NOT converged after step ", MaxSteps)
	return res
}
