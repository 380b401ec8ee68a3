// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fint

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_integrand01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integrand01. term by term assembly")

	sig := la.MatAlloc(3, 3)
	eps := la.MatAlloc(3, 3)
	gu := la.MatAlloc(3, 3)
	asig := la.MatAlloc(3, 3)
	adu := make([]float64, 3)
	gq := make([]float64, 3)
	gt := make([]float64, 3)

	// all fields zero
	chk.Scalar(tst, "zero fields", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, 0, false, false, 1), 0)

	// term1 only: adu . (gq . sig)
	gq[0] = 2.0
	sig[0][0] = 3.0
	adu[0] = 4.0
	chk.Scalar(tst, "term1", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, 0, false, false, 1), 24.0)

	// term2 adds: du_i/dx1 (gq . asig)_i
	gu[0][0] = 1.0
	asig[0][0] = 5.0
	chk.Scalar(tst, "term1+term2", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, 0, false, false, 1), 34.0)

	// term3 subtracts: gq_1 (asig : eps)
	eps[0][0] = 0.5
	chk.Scalar(tst, "term1+term2-term3", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, 0, false, false, 1), 29.0)

	// symmetry plane doubles, segment length divides
	chk.Scalar(tst, "sym", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, 0, false, true, 1), 58.0)
	chk.Scalar(tst, "qavgseg", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, 0, false, true, 2), 29.0)

	// off-diagonal couplings
	la.MatFill(sig, 0)
	la.MatFill(eps, 0)
	la.MatFill(gu, 0)
	la.MatFill(asig, 0)
	adu[0], gq[0] = 0, 0
	gq[1] = 1.0
	sig[1][2] = 2.0
	adu[2] = 3.0
	chk.Scalar(tst, "term1 off-diag", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, 0, false, false, 1), 6.0)
}

func Test_integrand02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integrand02. thermal strain term gating")

	sig := la.MatAlloc(3, 3)
	eps := la.MatAlloc(3, 3)
	gu := la.MatAlloc(3, 3)
	asig := la.MatAlloc(3, 3)
	adu := make([]float64, 3)
	gq := make([]float64, 3)
	gt := make([]float64, 3)

	// term4 = q tr(asig) alpha dT/dx1
	asig[0][0], asig[1][1], asig[2][2] = 1.0, 1.0, 3.0
	gt[0] = 2.0
	α := 1.0

	chk.Scalar(tst, "temperature coupled", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, α, true, false, 1), 10.0)
	chk.Scalar(tst, "temperature not coupled", 1e-15, QpIntegrand(1, gq, sig, eps, gu, asig, adu, gt, α, false, false, 1), 0.0)

	// the weighting function scales the thermal term
	chk.Scalar(tst, "scaled by q", 1e-15, QpIntegrand(0.5, gq, sig, eps, gu, asig, adu, gt, α, true, false, 1), 5.0)
}
