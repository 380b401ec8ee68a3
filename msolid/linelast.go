// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun"
)

// LinElast implements a linear thermo-elastic model for small strains
type LinElast struct {

	// parameters
	E    float64 // Young's modulus
	ν    float64 // Poisson's coefficient
	α    float64 // linear thermal-expansion coefficient
	hasα bool    // α was given

	// derived
	λ    float64 // Lamé's first parameter (plane-stress adjusted if applicable)
	μ    float64 // shear modulus
	Nsig int     // number of stress components
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, pstress bool, prms fun.Prms) (err error) {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "alpha":
			o.α = p.V
			o.hasα = true
		}
	}

	// derived
	o.Nsig = 2 * ndim
	o.μ = o.E / (2.0 * (1.0 + o.ν))
	o.λ = o.E * o.ν / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	if pstress {
		o.λ = 2.0 * o.λ * o.μ / (o.λ + 2.0*o.μ)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 200000},
		&fun.Prm{N: "nu", V: 0.3},
		&fun.Prm{N: "alpha", V: 1e-5},
	}
}

// Stress computes the Mandel stress from the Mandel strain and the
// temperature change: σ = λ tr(ε) I + 2μ ε − (3λ+2μ) α ΔT I
func (o *LinElast) Stress(σ, ε []float64, ΔT float64) {
	trε := ε[0] + ε[1] + ε[2]
	pθ := 0.0
	if o.hasα {
		pθ = (3.0*o.λ + 2.0*o.μ) * o.α * ΔT
	}
	for i := 0; i < len(σ); i++ {
		σ[i] = 2.0 * o.μ * ε[i]
		if i < 3 {
			σ[i] += o.λ*trε - pθ
		}
	}
}

// Strain computes the Mandel elastic strain from the Mandel stress:
// ε = (1+ν)/E σ − ν/E tr(σ) I
func (o *LinElast) Strain(ε, σ []float64) {
	trσ := σ[0] + σ[1] + σ[2]
	for i := 0; i < len(ε); i++ {
		ε[i] = (1.0 + o.ν) / o.E * σ[i]
		if i < 3 {
			ε[i] -= o.ν / o.E * trσ
		}
	}
}

// HasAlpha tells whether the thermal-expansion coefficient is available
func (o *LinElast) HasAlpha() bool { return o.hasα }

// AlphaInst returns the instantaneous thermal-expansion coefficient
//
//	Note: the dependence of α on position/temperature is not implemented
func (o *LinElast) AlphaInst() float64 { return o.α }
