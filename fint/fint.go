// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fint implements fracture domain integrals: the interaction
// integral is evaluated over a ring of elements surrounding a crack
// front point, weighted by a compactly supported q function, and
// converted into a stress intensity factor (or T-stress correction)
package fint

// IpState holds the solution and auxiliary field data @ one integration
// point. Stress and strain use the Mandel representation [nsig], as in
// the material models; the auxiliary quantities are already expressed in
// the local crack front frame.
type IpState struct {
	Sig    []float64   // [nsig] real stress (global frame)
	Eps    []float64   // [nsig] real elastic strain (global frame)
	GradU  [][]float64 // [ndim][ndim] real displacement gradient: GradU[i][j] = ∂u_i/∂x_j (global frame)
	GradT  []float64   // [ndim] temperature gradient (global frame); nil when temperature is not coupled
	AuxSig [][]float64 // [3][3] auxiliary stress (crack front frame)
	AuxDu  []float64   // [3] x1-derivative of the auxiliary displacements: AuxDu[i] = ∂(aux u_i)/∂x1 (crack front frame)
	Alpha  float64     // instantaneous thermal-expansion coefficient
}

// FieldProvider supplies field data at integration points. The
// integration point identity is an explicit argument, so element
// accumulation is re-entrant and has no hidden current-point state.
type FieldProvider interface {

	// At returns the state @ integration point with index idx of cell cid;
	// x holds the real coordinates of the integration point
	At(cid, idx int, x []float64) (*IpState, error)
}
