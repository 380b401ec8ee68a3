// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements models for solids to feed the fracture
// domain-integral evaluations with stresses and material properties
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for solid material models
type Model interface {
	Init(ndim int, pstress bool, prms fun.Prms) error // initialises model
	Stress(σ, ε []float64, ΔT float64)                // computes Mandel stress from Mandel strain and temperature change
	HasAlpha() bool                                   // thermal-expansion coefficient is available
	AlphaInst() float64                               // instantaneous thermal-expansion coefficient
}

// allocators holds all available models
var allocators = make(map[string]func() Model)

// New returns a new model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find model named %q", name)
	}
	return allocator(), nil
}
