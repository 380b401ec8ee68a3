// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fint

import (
	"github.com/robseith/moose/front"
	"github.com/robseith/moose/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
)

// constants
const SEGTOL = 1.0e-14 // minimum average segment length allowed for normalisation

// Integral evaluates the interaction integral for crack front points and
// one ring, over a (possibly distributed) mesh. Each processor owns the
// cells of its partition; the element loop needs no synchronisation and
// the only collective operation is the summation of the partial sums.
type Integral struct {

	// input
	Dat *inp.IntegralData // configuration (validated eagerly by New)
	Msh *inp.Mesh         // the mesh
	Fnt front.Frame       // crack front frame (read-only during a pass)
	Fld FieldProvider     // field data @ integration points

	// derived
	Rw    RingWeight // ring weighting-function strategy
	Elems []*ElemInt // [ncells] element accumulators
	Proc  int        // processor id
	Nproc int        // number of processors
}

// New returns a new interaction-integral evaluator. All configuration
// errors are detected here, before any per-element work, so a
// distributed pass never partially completes before failing.
//
//	Input:
//	 dat      -- integral configuration
//	 msh      -- mesh
//	 fnt      -- crack front frame
//	 fld      -- field provider
//	 axisym   -- axisymmetric coordinate system
//	 thick    -- thickness (plane problems)
//	 hasAlpha -- a thermal-expansion material property is available
func New(dat *inp.IntegralData, msh *inp.Mesh, fnt front.Frame, fld FieldProvider, axisym bool, thick float64, hasAlpha bool, goroutineId int) (o *Integral, err error) {

	// validate configuration
	err = dat.Validate(hasAlpha)
	if err != nil {
		return nil, err
	}

	// new evaluator
	o = new(Integral)
	o.Dat = dat
	o.Msh = msh
	o.Fnt = fnt
	o.Fld = fld

	// ring weighting-function strategy and effective ring index
	o.Rw, err = NewRingWeight(dat.Qkind)
	if err != nil {
		return nil, err
	}
	if dat.Ring-1 >= fnt.NumRings() {
		return nil, chk.Err("ring index %d is out of range for the crack front definition with %d rings", dat.Ring, fnt.NumRings())
	}

	// validate crack front point indices
	for _, p := range dat.Points {
		if p >= fnt.NumPoints() {
			return nil, chk.Err("crack front point index %d is out of range; the crack front has %d points", p, fnt.NumPoints())
		}
	}

	// multiprocessing data
	o.Nproc = 1
	if mpi.IsOn() {
		o.Proc = mpi.Rank()
		o.Nproc = mpi.Size()
	}

	// element accumulators
	o.Elems = make([]*ElemInt, 0, len(msh.Cells))
	for _, cell := range msh.Cells {
		if o.Nproc > 1 && cell.Part != o.Proc {
			continue
		}
		e, err := NewElemInt(cell, msh, fnt, fld, o.Rw, dat, axisym, thick, goroutineId)
		if err != nil {
			return nil, err
		}
		o.Elems = append(o.Elems, e)
	}
	return
}

// Evaluate computes the finalised fracture parameter @ crack front point
// p, for the configured ring: the raw interaction integral is summed over
// this processor's elements, combined across all partitions, corrected by
// the T-stress term (once, not per point/element) and scaled by the
// calibration factor.
func (o *Integral) Evaluate(p int) (res float64, err error) {

	// check point
	if p < 0 || p >= o.Fnt.NumPoints() {
		return 0, chk.Err("crack front point index %d is out of range; the crack front has %d points", p, o.Fnt.NumPoints())
	}

	// normalisation: convert the domain integral into a per-unit-front-length rate
	tas2d := o.Fnt.TreatAs2D()
	qavgseg := 1.0
	if !tas2d {
		qavgseg = (o.Fnt.ForwardSegLength(p) + o.Fnt.BackwardSegLength(p)) / 2.0
		if qavgseg < SEGTOL {
			return 0, chk.Err("zero-length crack front segments at point %d: cannot normalise the domain integral", p)
		}
	}

	// sum over this processor's elements
	ring := o.Dat.Ring - o.Rw.Offset()
	sum := 0.0
	for _, e := range o.Elems {
		contrib, err := e.Contribution(p, ring, qavgseg)
		if err != nil {
			return 0, err
		}
		sum += contrib
	}

	// combine across partitions
	if o.Nproc > 1 {
		x, w := []float64{sum}, []float64{0}
		mpi.AllReduceSum(x, w)
		sum = x[0]
	}

	// T-stress correction: not a domain integral; added exactly once
	if o.Dat.TStress && !tas2d {
		sum += o.Dat.Nu * o.Fnt.TangentialStrain(p)
	}

	// calibration: raw interaction integral => fracture parameter
	return o.Dat.Kfactor * sum, nil
}

// EvaluateAll evaluates all configured crack front points
func (o *Integral) EvaluateAll() (vals []float64, err error) {
	vals = make([]float64, len(o.Dat.Points))
	for i, p := range o.Dat.Points {
		vals[i], err = o.Evaluate(p)
		if err != nil {
			return nil, err
		}
	}
	return
}
