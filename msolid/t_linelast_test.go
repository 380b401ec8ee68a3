// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. Hooke's law and its inverse")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(3, false, []*fun.Prm{
		&fun.Prm{N: "E", V: 200000},
		&fun.Prm{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	le := mdl.(*LinElast)
	chk.Scalar(tst, "mu", 1e-10, le.μ, 80000)
	chk.Scalar(tst, "lam", 1e-10, le.λ, 80000)
	if le.HasAlpha() {
		tst.Errorf("alpha was not given but HasAlpha returned true")
		return
	}

	// uniaxial strain
	ε := []float64{0.001, 0, 0, 0, 0, 0}
	σ := make([]float64, 6)
	le.Stress(σ, ε, 0)
	chk.Scalar(tst, "sig11", 1e-10, σ[0], 240.0)
	chk.Scalar(tst, "sig22", 1e-10, σ[1], 80.0)
	chk.Scalar(tst, "sig33", 1e-10, σ[2], 80.0)

	// roundtrip
	εb := make([]float64, 6)
	le.Strain(εb, σ)
	chk.Vector(tst, "eps roundtrip", 1e-12, εb, ε)

	// pure shear (Mandel components carry the sqrt(2) factor)
	for i := 0; i < 6; i++ {
		ε[i] = 0
	}
	ε[3] = 0.002
	le.Stress(σ, ε, 0)
	chk.Scalar(tst, "sig12 (Mandel)", 1e-10, σ[3], 2.0*le.μ*0.002)
	le.Strain(εb, σ)
	chk.Vector(tst, "eps roundtrip (shear)", 1e-12, εb, ε)
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. thermal strain")

	var le LinElast
	err := le.Init(3, false, le.GetPrms())
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	if !le.HasAlpha() {
		tst.Errorf("alpha was given but HasAlpha returned false")
		return
	}
	chk.Scalar(tst, "alpha", 1e-15, le.AlphaInst(), 1e-5)

	// free thermal expansion: isotropic strain alpha*dT gives zero stress
	ΔT := 100.0
	a := le.AlphaInst() * ΔT
	ε := []float64{a, a, a, 0, 0, 0}
	σ := make([]float64, 6)
	le.Stress(σ, ε, ΔT)
	chk.Vector(tst, "sig (free expansion)", 1e-9, σ, []float64{0, 0, 0, 0, 0, 0})
}

func Test_linelast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast03. plane stress")

	var le LinElast
	err := le.Init(2, true, []*fun.Prm{
		&fun.Prm{N: "E", V: 3000},
		&fun.Prm{N: "nu", V: 0.2},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// with the adjusted lambda, the in-plane components must follow the
	// plane-stress constitutive matrix
	E, ν := 3000.0, 0.2
	ε := []float64{0.001, 0.0005, 0, 0, 0, 0}
	σ := make([]float64, 6)
	le.Stress(σ, ε, 0)
	chk.Scalar(tst, "sig11", 1e-9, σ[0], E/(1.0-ν*ν)*(ε[0]+ν*ε[1]))
	chk.Scalar(tst, "sig22", 1e-9, σ[1], E/(1.0-ν*ν)*(ε[1]+ν*ε[0]))
}
