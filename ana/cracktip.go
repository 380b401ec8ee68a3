// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// CrackTip implements the Williams near-tip solution for a unit stress
// intensity factor: the auxiliary field superposed with the real solution
// to extract individual fracture-mode contributions. All quantities are
// expressed in the crack front frame: x1 = crack extension direction,
// x2 = crack plane normal, x3 = front tangent; (r,θ) are polar
// coordinates in the x1-x2 plane with θ=0 ahead of the tip.
//
//	    x2
//	     |        . (r,θ)
//	     |      .
//	     |    .   θ
//	=====o-----------> x1
//	(crack)
type CrackTip struct {

	// input
	mode    int     // fracture mode: 1, 2 or 3
	E       float64 // Young's modulus
	ν       float64 // Poisson's coefficient
	pstress bool    // plane stress

	// derived
	μ float64 // shear modulus
	κ float64 // Kolosov's constant
}

// Init initialises this structure
func (o *CrackTip) Init(prms fun.Prms) {

	// default values
	o.mode = 1
	o.E = 200000
	o.ν = 0.3

	// parameters
	for _, p := range prms {
		switch p.N {
		case "mode":
			o.mode = int(p.V)
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "pstress":
			o.pstress = p.V > 0
		}
	}

	// derived
	o.μ = o.E / (2.0 * (1.0 + o.ν))
	if o.pstress {
		o.κ = (3.0 - o.ν) / (1.0 + o.ν)
	} else {
		o.κ = 3.0 - 4.0*o.ν
	}
}

// Kfactor returns the factor converting the raw interaction-integral
// value (computed against this unit-K auxiliary field) into the stress
// intensity factor of the corresponding mode
func (o *CrackTip) Kfactor() float64 {
	if o.mode == 3 {
		return o.μ
	}
	if o.pstress {
		return o.E / 2.0
	}
	return o.E / (2.0 * (1.0 - o.ν*o.ν))
}

// Stress computes the near-tip stresses @ (r,θ) for a unit K
//
//	Output:
//	 res -- dense 3x3 stress tensor in the crack front frame
func (o *CrackTip) Stress(res [][]float64, r, θ float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = 0.0
		}
	}
	c := 1.0 / math.Sqrt(2.0*math.Pi*r)
	sh, ch := math.Sin(θ/2.0), math.Cos(θ/2.0)
	s3, c3 := math.Sin(3.0*θ/2.0), math.Cos(3.0*θ/2.0)
	switch o.mode {
	case 1:
		res[0][0] = c * ch * (1.0 - sh*s3)
		res[1][1] = c * ch * (1.0 + sh*s3)
		res[0][1] = c * ch * sh * c3
		res[1][0] = res[0][1]
		if !o.pstress {
			res[2][2] = o.ν * (res[0][0] + res[1][1])
		}
	case 2:
		res[0][0] = -c * sh * (2.0 + ch*c3)
		res[1][1] = c * sh * ch * c3
		res[0][1] = c * ch * (1.0 - sh*s3)
		res[1][0] = res[0][1]
		if !o.pstress {
			res[2][2] = o.ν * (res[0][0] + res[1][1])
		}
	case 3:
		res[0][2] = -c * sh
		res[2][0] = res[0][2]
		res[1][2] = c * ch
		res[2][1] = res[1][2]
	}
}

// Displ computes the near-tip displacements @ (r,θ) for a unit K
//
//	Output:
//	 res -- displacement vector (u1, u2, u3) in the crack front frame
func (o *CrackTip) Displ(res []float64, r, θ float64) {
	res[0], res[1], res[2] = 0.0, 0.0, 0.0
	sr := math.Sqrt(r)
	switch o.mode {
	case 1:
		C := 1.0 / (2.0 * o.μ * math.Sqrt(2.0*math.Pi))
		res[0] = C * sr * o.fI(θ)
		res[1] = C * sr * o.gI(θ)
	case 2:
		C := 1.0 / (2.0 * o.μ * math.Sqrt(2.0*math.Pi))
		res[0] = C * sr * o.fII(θ)
		res[1] = C * sr * o.gII(θ)
	case 3:
		C := 2.0 / (o.μ * math.Sqrt(2.0*math.Pi))
		res[2] = C * sr * math.Sin(θ/2.0)
	}
}

// DuDx1 computes the x1-derivatives of the near-tip displacements @ (r,θ)
// for a unit K: res[i] = ∂u_i/∂x1
//
//	Note: for u = C √r f(θ):
//	      ∂u/∂x1 = cosθ ∂u/∂r − (sinθ/r) ∂u/∂θ
//	             = (C/√r) (cosθ f/2 − sinθ f')
func (o *CrackTip) DuDx1(res []float64, r, θ float64) {
	res[0], res[1], res[2] = 0.0, 0.0, 0.0
	sr := math.Sqrt(r)
	cs, sn := math.Cos(θ), math.Sin(θ)
	switch o.mode {
	case 1:
		C := 1.0 / (2.0 * o.μ * math.Sqrt(2.0*math.Pi))
		res[0] = (C / sr) * (cs*o.fI(θ)/2.0 - sn*o.dfI(θ))
		res[1] = (C / sr) * (cs*o.gI(θ)/2.0 - sn*o.dgI(θ))
	case 2:
		C := 1.0 / (2.0 * o.μ * math.Sqrt(2.0*math.Pi))
		res[0] = (C / sr) * (cs*o.fII(θ)/2.0 - sn*o.dfII(θ))
		res[1] = (C / sr) * (cs*o.gII(θ)/2.0 - sn*o.dgII(θ))
	case 3:
		C := 2.0 / (o.μ * math.Sqrt(2.0*math.Pi))
		h := math.Sin(θ / 2.0)
		dh := math.Cos(θ/2.0) / 2.0
		res[2] = (C / sr) * (cs*h/2.0 - sn*dh)
	}
}

// Grad computes the full displacement gradient @ (r,θ) for a unit K:
// res[i][j] = ∂u_i/∂x_j. The near-tip fields do not vary along the front
// tangent, thus the third column is zero.
//
//	Note: for u = C √r f(θ):
//	      ∂u/∂x2 = sinθ ∂u/∂r + (cosθ/r) ∂u/∂θ
//	             = (C/√r) (sinθ f/2 + cosθ f')
func (o *CrackTip) Grad(res [][]float64, r, θ float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = 0.0
		}
	}
	sr := math.Sqrt(r)
	cs, sn := math.Cos(θ), math.Sin(θ)
	switch o.mode {
	case 1:
		C := 1.0 / (2.0 * o.μ * math.Sqrt(2.0*math.Pi))
		res[0][0] = (C / sr) * (cs*o.fI(θ)/2.0 - sn*o.dfI(θ))
		res[0][1] = (C / sr) * (sn*o.fI(θ)/2.0 + cs*o.dfI(θ))
		res[1][0] = (C / sr) * (cs*o.gI(θ)/2.0 - sn*o.dgI(θ))
		res[1][1] = (C / sr) * (sn*o.gI(θ)/2.0 + cs*o.dgI(θ))
	case 2:
		C := 1.0 / (2.0 * o.μ * math.Sqrt(2.0*math.Pi))
		res[0][0] = (C / sr) * (cs*o.fII(θ)/2.0 - sn*o.dfII(θ))
		res[0][1] = (C / sr) * (sn*o.fII(θ)/2.0 + cs*o.dfII(θ))
		res[1][0] = (C / sr) * (cs*o.gII(θ)/2.0 - sn*o.dgII(θ))
		res[1][1] = (C / sr) * (sn*o.gII(θ)/2.0 + cs*o.dgII(θ))
	case 3:
		C := 2.0 / (o.μ * math.Sqrt(2.0*math.Pi))
		h := math.Sin(θ / 2.0)
		dh := math.Cos(θ/2.0) / 2.0
		res[2][0] = (C / sr) * (cs*h/2.0 - sn*dh)
		res[2][1] = (C / sr) * (sn*h/2.0 + cs*dh)
	}
}

// angular functions and derivatives //////////////////////////////////////////////////////////////

func (o *CrackTip) fI(θ float64) float64 {
	return math.Cos(θ/2.0) * (o.κ - math.Cos(θ))
}

func (o *CrackTip) dfI(θ float64) float64 {
	return -0.5*math.Sin(θ/2.0)*(o.κ-math.Cos(θ)) + math.Cos(θ/2.0)*math.Sin(θ)
}

func (o *CrackTip) gI(θ float64) float64 {
	return math.Sin(θ/2.0) * (o.κ - math.Cos(θ))
}

func (o *CrackTip) dgI(θ float64) float64 {
	return 0.5*math.Cos(θ/2.0)*(o.κ-math.Cos(θ)) + math.Sin(θ/2.0)*math.Sin(θ)
}

func (o *CrackTip) fII(θ float64) float64 {
	return math.Sin(θ/2.0) * (o.κ + 2.0 + math.Cos(θ))
}

func (o *CrackTip) dfII(θ float64) float64 {
	return 0.5*math.Cos(θ/2.0)*(o.κ+2.0+math.Cos(θ)) - math.Sin(θ/2.0)*math.Sin(θ)
}

func (o *CrackTip) gII(θ float64) float64 {
	return -math.Cos(θ/2.0) * (o.κ - 2.0 + math.Cos(θ))
}

func (o *CrackTip) dgII(θ float64) float64 {
	return 0.5*math.Sin(θ/2.0)*(o.κ-2.0+math.Cos(θ)) + math.Cos(θ/2.0)*math.Sin(θ)
}

// plotting ///////////////////////////////////////////////////////////////////////////////////////

// PlotAngular plots the angular variation of the near-tip stresses at radius r
func (o *CrackTip) PlotAngular(r float64, npts int) {
	Θ := utl.LinSpace(-math.Pi, math.Pi, npts)
	S11 := make([]float64, npts)
	S22 := make([]float64, npts)
	S12 := make([]float64, npts)
	σ := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	for i := 0; i < npts; i++ {
		o.Stress(σ, r, Θ[i])
		S11[i] = σ[0][0]
		S22[i] = σ[1][1]
		S12[i] = σ[0][1]
	}
	plt.Plot(Θ, S11, "color='r',label='$\\sigma_{11}$'")
	plt.Plot(Θ, S22, "color='g',label='$\\sigma_{22}$'")
	plt.Plot(Θ, S12, "color='b',label='$\\sigma_{12}$'")
	plt.Gll("$\\theta$", "stresses", "")
}
