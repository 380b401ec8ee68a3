// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/robseith/moose/msolid"

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

// numGrad computes the displacement gradient by central differences in
// the x1-x2 plane
func numGrad(o *CrackTip, res [][]float64, x1, x2, h float64) {
	up, um := make([]float64, 3), make([]float64, 3)
	polar := func(a, b float64) (r, θ float64) {
		return math.Sqrt(a*a + b*b), math.Atan2(b, a)
	}
	r, θ := polar(x1+h, x2)
	o.Displ(up, r, θ)
	r, θ = polar(x1-h, x2)
	o.Displ(um, r, θ)
	for i := 0; i < 3; i++ {
		res[i][0] = (up[i] - um[i]) / (2.0 * h)
	}
	r, θ = polar(x1, x2+h)
	o.Displ(up, r, θ)
	r, θ = polar(x1, x2-h)
	o.Displ(um, r, θ)
	for i := 0; i < 3; i++ {
		res[i][1] = (up[i] - um[i]) / (2.0 * h)
	}
}

func Test_cracktip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cracktip01. displacement gradients vs central differences")

	gnum := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	gana := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	dudx1 := make([]float64, 3)

	for _, mode := range []int{1, 2, 3} {
		var tip CrackTip
		tip.Init([]*fun.Prm{
			&fun.Prm{N: "mode", V: float64(mode)},
			&fun.Prm{N: "E", V: 200000},
			&fun.Prm{N: "nu", V: 0.3},
		})
		for _, pt := range [][]float64{{1.5, 0.3}, {0.2, 0.8}, {-0.5, 0.4}, {0.7, -0.6}} {
			x1, x2 := pt[0], pt[1]
			r := math.Sqrt(x1*x1 + x2*x2)
			θ := math.Atan2(x2, x1)
			tip.Grad(gana, r, θ)
			numGrad(&tip, gnum, x1, x2, 1e-5)
			for i := 0; i < 3; i++ {
				for j := 0; j < 2; j++ {
					chk.Scalar(tst, io.Sf("mode %d: du%d/dx%d @ (%g,%g)", mode, i+1, j+1, x1, x2), 1e-6, gana[i][j], gnum[i][j])
				}
			}
			tip.DuDx1(dudx1, r, θ)
			for i := 0; i < 3; i++ {
				chk.Scalar(tst, io.Sf("mode %d: DuDx1[%d]", mode, i), 1e-14, dudx1[i], gana[i][0])
			}
		}
	}
}

func Test_cracktip02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cracktip02. stresses: symmetry and traction-free crack faces")

	σ := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	for _, mode := range []int{1, 2, 3} {
		var tip CrackTip
		tip.Init([]*fun.Prm{&fun.Prm{N: "mode", V: float64(mode)}})
		for _, θ := range []float64{-2.5, -1.0, 0.0, 0.5, 2.0} {
			tip.Stress(σ, 0.75, θ)
			for i := 0; i < 3; i++ {
				for j := i + 1; j < 3; j++ {
					chk.Scalar(tst, io.Sf("mode %d: sig%d%d symmetry", mode, i+1, j+1), 1e-15, σ[i][j], σ[j][i])
				}
			}
		}

		// crack faces carry no tractions: sig22, sig12 and sig23 vanish @ θ = ±π
		for _, θ := range []float64{-math.Pi, math.Pi} {
			tip.Stress(σ, 0.75, θ)
			chk.Scalar(tst, io.Sf("mode %d: sig22 @ crack face", mode), 1e-14, σ[1][1], 0)
			chk.Scalar(tst, io.Sf("mode %d: sig12 @ crack face", mode), 1e-14, σ[0][1], 0)
			chk.Scalar(tst, io.Sf("mode %d: sig23 @ crack face", mode), 1e-14, σ[1][2], 0)
		}
	}
}

func Test_cracktip03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cracktip03. calibration factors")

	E, ν := 200000.0, 0.3
	μ := E / (2.0 * (1.0 + ν))

	var tip CrackTip
	tip.Init([]*fun.Prm{&fun.Prm{N: "mode", V: 1}, &fun.Prm{N: "E", V: E}, &fun.Prm{N: "nu", V: ν}})
	chk.Scalar(tst, "mode 1 plane strain", 1e-10, tip.Kfactor(), E/(2.0*(1.0-ν*ν)))

	tip.Init([]*fun.Prm{&fun.Prm{N: "mode", V: 1}, &fun.Prm{N: "E", V: E}, &fun.Prm{N: "nu", V: ν}, &fun.Prm{N: "pstress", V: 1}})
	chk.Scalar(tst, "mode 1 plane stress", 1e-10, tip.Kfactor(), E/2.0)

	tip.Init([]*fun.Prm{&fun.Prm{N: "mode", V: 3}, &fun.Prm{N: "E", V: E}, &fun.Prm{N: "nu", V: ν}})
	chk.Scalar(tst, "mode 3", 1e-10, tip.Kfactor(), μ)
}

func Test_cracktip04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cracktip04. stress and displacement fields obey Hooke's law")

	prms := []*fun.Prm{
		&fun.Prm{N: "E", V: 200000},
		&fun.Prm{N: "nu", V: 0.3},
	}
	var le msolid.LinElast
	err := le.Init(3, false, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	σ := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	gu := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	σm := make([]float64, 6)
	εm := make([]float64, 6)
	sq2 := math.Sqrt(2.0)

	for _, mode := range []int{1, 2} {
		var tip CrackTip
		tip.Init(append([]*fun.Prm{&fun.Prm{N: "mode", V: float64(mode)}}, prms...))
		for _, pt := range [][]float64{{1.0, 0.5}, {-0.3, 0.9}, {0.6, -0.4}} {
			r := math.Sqrt(pt[0]*pt[0] + pt[1]*pt[1])
			θ := math.Atan2(pt[1], pt[0])
			tip.Stress(σ, r, θ)
			tip.Grad(gu, r, θ)

			// strain from the inverse of Hooke's law must match the
			// symmetric part of the displacement gradient
			σm[0], σm[1], σm[2] = σ[0][0], σ[1][1], σ[2][2]
			σm[3], σm[4], σm[5] = σ[0][1]*sq2, σ[1][2]*sq2, σ[0][2]*sq2
			le.Strain(εm, σm)
			chk.Scalar(tst, io.Sf("mode %d: eps11", mode), 1e-12, εm[0], gu[0][0])
			chk.Scalar(tst, io.Sf("mode %d: eps22", mode), 1e-12, εm[1], gu[1][1])
			chk.Scalar(tst, io.Sf("mode %d: eps33 (plane strain)", mode), 1e-12, εm[2], 0)
			chk.Scalar(tst, io.Sf("mode %d: eps12", mode), 1e-12, εm[3]/sq2, (gu[0][1]+gu[1][0])/2.0)
		}
	}
}
