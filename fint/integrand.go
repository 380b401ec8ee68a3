// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fint

// QpIntegrand assembles the interaction integrand @ one integration
// point. All tensor/vector inputs must already be expressed in the local
// crack front frame, whose first axis (x1) is the crack extension
// direction; the directional-derivative tensor dq has ∇q as row 0 and
// zero elsewhere, which reduces the tensor products below to row-0 sums.
//
//	Input:
//	 q       -- interpolated weighting function
//	 gq      -- [3] ∇q
//	 sig     -- [3][3] real stress
//	 eps     -- [3][3] real elastic strain
//	 gradu   -- [3][3] real displacement gradient
//	 auxsig  -- [3][3] auxiliary stress
//	 auxdu   -- [3] x1-derivative of the auxiliary displacements
//	 gradT   -- [3] temperature gradient (ignored unless hastemp)
//	 alpha   -- instantaneous thermal-expansion coefficient
//	 hastemp -- temperature is coupled
//	 sym     -- a symmetry plane through the crack plane is present
//	 qavgseg -- average of forward/backward segment lengths (1 for 2D fronts)
//	Output:
//	 the pointwise integrand value
func QpIntegrand(q float64, gq []float64, sig, eps, gradu, auxsig [][]float64, auxdu, gradT []float64, alpha float64, hastemp, sym bool, qavgseg float64) float64 {

	// term1 = aux_du : (dq · σ)  =  Σ_j ∂(aux u_j)/∂x1 Σ_k ∂q/∂x_k σ_kj
	term1 := 0.0
	for j := 0; j < 3; j++ {
		tmp := 0.0
		for k := 0; k < 3; k++ {
			tmp += gq[k] * sig[k][j]
		}
		term1 += auxdu[j] * tmp
	}

	// term2 = Σ_i ∂u_i/∂x1 (dq · aux σ)_0i  =  Σ_i ∂u_i/∂x1 Σ_k ∂q/∂x_k auxσ_ki
	term2 := 0.0
	for i := 0; i < 3; i++ {
		tmp := 0.0
		for k := 0; k < 3; k++ {
			tmp += gq[k] * auxsig[k][i]
		}
		term2 += gradu[i][0] * tmp
	}

	// term3 = (∂q/∂x1) (aux σ : ε)   (= σ : aux ε by symmetry of the theory)
	term3 := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			term3 += auxsig[i][j] * eps[i][j]
		}
	}
	term3 *= gq[0]

	// term4 (thermal strain) = q tr(aux σ) α ∂T/∂x1
	// - the term including the derivative of α is not implemented
	term4 := 0.0
	if hastemp {
		term4 = q * (auxsig[0][0] + auxsig[1][1] + auxsig[2][2]) * alpha * gradT[0]
	}

	eq := term1 + term2 - term3 + term4
	if sym {
		eq *= 2.0 // the model represents only half of the physical domain
	}
	return eq / qavgseg
}
