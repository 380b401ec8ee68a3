// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/robseith/moose/ana"
	"github.com/robseith/moose/fint"
	"github.com/robseith/moose/front"
	"github.com/robseith/moose/inp"
	"github.com/robseith/moose/msolid"
	"github.com/robseith/moose/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/tsr"
	"github.com/cpmech/gosl/utl"
)

// constants
const RMIN = 1.0e-12 // minimum distance from the crack tip for the near-tip fields

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	mode := io.ArgToInt(1, 1)
	kref := io.ArgToFloat(2, 1.0)
	verbose := io.ArgToBool(3, true)
	doplot := io.ArgToBool(4, false)

	// message
	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nFracInt -- fracture domain-integral evaluator\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"fracture mode", "mode", mode,
			"reference stress intensity factor", "kref", kref,
			"show messages", "verbose", verbose,
			"plot results", "doplot", doplot,
		))
	}

	// profiling?
	defer utl.DoProf(false)()

	// run evaluation
	err := run(fnamepath, mode, kref, verbose, doplot)
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}
}

// run evaluates the interaction integral for all configured crack front
// points, using the Williams near-tip solution as a manufactured field:
// the computed fracture parameter must recover the reference stress
// intensity factor on any mesh enclosing the tip.
func run(fnamepath string, mode int, kref float64, verbose, doplot bool) (err error) {

	// input data
	dat, err := inp.ReadSim(fnamepath)
	if err != nil {
		return
	}
	msh, err := inp.ReadMsh(dat.DirIn, dat.Mshfile, 0)
	if err != nil {
		return
	}

	// material model
	mdl, err := msolid.New(dat.Mat.Model)
	if err != nil {
		return
	}
	err = mdl.Init(msh.Ndim, dat.Pstress, dat.Mat.Prms)
	if err != nil {
		return
	}

	// crack front
	fnt, err := front.NewStraight(dat.Front.Pts, dat.Front.Dir, dat.Front.Nrm)
	if err != nil {
		return
	}
	if len(dat.Front.Rin) > 0 {
		err = fnt.SetGeomRings(dat.Front.Rin, dat.Front.Rout)
		if err != nil {
			return
		}
	}
	if len(dat.Front.Topo) > 0 {
		vidring := make(map[int]int)
		for _, pair := range dat.Front.Topo {
			vidring[pair[0]] = pair[1]
		}
		fnt.SetTopoRings(vidring)
	}
	if dat.Front.EpsT != nil {
		fnt.SetTangStrain(dat.Front.EpsT)
	}

	// manufactured near-tip fields
	fld, err := newAnaProvider(mdl, fnt, dat, mode, kref, msh.Ndim)
	if err != nil {
		return
	}
	dat.Integral.Kfactor = fld.tip.Kfactor()

	// evaluate
	itg, err := fint.New(&dat.Integral, msh, fnt, fld, dat.Axisym, dat.Thick, mdl.HasAlpha(), 0)
	if err != nil {
		return
	}
	vals, err := itg.EvaluateAll()
	if err != nil {
		return
	}

	// report
	if mpi.Rank() == 0 {
		rep := out.NewFrontReport(dat.Key, dat.Integral.Ring, dat.Integral.Points)
		for i, v := range vals {
			rep.Set(i, v)
		}
		if verbose {
			for i, p := range dat.Integral.Points {
				io.Pf("point %2d: K = %23.15e  (reference = %g)\n", p, vals[i], kref)
			}
		}
		err = rep.Save(dat.DirIn)
		if doplot {
			rep.Plot(dat.DirIn)
		}
	}
	return
}

// anaProvider manufactures field data from the Williams near-tip
// solution: the real solution is the near-tip field scaled by a reference
// stress intensity factor and expressed in the global frame; the
// auxiliary field is the same solution with a unit factor, in the crack
// front frame (as required by the integrand).
type anaProvider struct {

	// input
	mdl  *msolid.LinElast // material model
	fnt  *front.Straight  // crack front
	tip  ana.CrackTip     // near-tip solution
	kref float64          // reference stress intensity factor
	ndim int              // space dimension

	// scratchpad
	sigL, sig [][]float64   // [3][3] stress in the front/global frame
	guL, gu   [][]float64   // [3][3] displacement gradient in the front/global frame
	st        *fint.IpState // the state returned by At
}

// newAnaProvider returns a new manufactured-field provider
func newAnaProvider(mdl msolid.Model, fnt *front.Straight, dat *inp.SimData, mode int, kref float64, ndim int) (o *anaProvider, err error) {
	le, ok := mdl.(*msolid.LinElast)
	if !ok {
		return nil, chk.Err("the manufactured near-tip fields require the linear elastic model; got %q", dat.Mat.Model)
	}
	o = new(anaProvider)
	o.mdl = le
	o.fnt = fnt
	o.kref = kref
	o.ndim = ndim
	prms := fun.Prms{&fun.Prm{N: "mode", V: float64(mode)}}
	for _, p := range dat.Mat.Prms {
		if p.N == "E" || p.N == "nu" {
			prms = append(prms, p)
		}
	}
	if dat.Pstress {
		prms = append(prms, &fun.Prm{N: "pstress", V: 1})
	}
	o.tip.Init(prms)
	o.sigL = la.MatAlloc(3, 3)
	o.sig = la.MatAlloc(3, 3)
	o.guL = la.MatAlloc(3, 3)
	o.gu = la.MatAlloc(3, 3)
	o.st = &fint.IpState{
		Sig:    make([]float64, 6),
		Eps:    make([]float64, 6),
		GradU:  la.MatAlloc(ndim, ndim),
		AuxSig: la.MatAlloc(3, 3),
		AuxDu:  make([]float64, 3),
		Alpha:  le.AlphaInst(),
	}
	return
}

// At returns the manufactured state @ the integration point with real
// coordinates x
func (o *anaProvider) At(cid, idx int, x []float64) (*fint.IpState, error) {

	// polar coordinates with respect to the crack tip, in the front frame
	p0 := o.fnt.Pts[0]
	var v [3]float64
	for i := 0; i < o.ndim; i++ {
		v[i] = x[i] - p0[i]
	}
	ξ1 := v[0]*o.fnt.Dir[0] + v[1]*o.fnt.Dir[1] + v[2]*o.fnt.Dir[2]
	ξ2 := v[0]*o.fnt.Nrm[0] + v[1]*o.fnt.Nrm[1] + v[2]*o.fnt.Nrm[2]
	r := math.Sqrt(ξ1*ξ1 + ξ2*ξ2)
	θ := math.Atan2(ξ2, ξ1)
	if r < RMIN {
		return nil, chk.Err("cell {id=%d, ip=%d}: integration point lies on the crack tip; the near-tip fields are singular there", cid, idx)
	}

	// real fields: scaled near-tip solution, rotated to the global frame
	o.tip.Stress(o.sigL, r, θ)
	o.tip.Grad(o.guL, r, θ)
	R := o.fnt.R
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.sig[i][j] = 0.0
			o.gu[i][j] = 0.0
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					o.sig[i][j] += o.kref * R[k][i] * o.sigL[k][l] * R[l][j]
					o.gu[i][j] += o.kref * R[k][i] * o.guL[k][l] * R[l][j]
				}
			}
		}
	}
	tsr.Ten2Man(o.st.Sig, o.sig)
	o.mdl.Strain(o.st.Eps, o.st.Sig)
	for i := 0; i < o.ndim; i++ {
		for j := 0; j < o.ndim; j++ {
			o.st.GradU[i][j] = o.gu[i][j]
		}
	}

	// auxiliary fields: unit factor, in the crack front frame
	o.tip.Stress(o.st.AuxSig, r, θ)
	o.tip.DuDx1(o.st.AuxDu, r, θ)
	return o.st, nil
}
