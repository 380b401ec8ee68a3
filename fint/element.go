// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fint

import (
	"github.com/robseith/moose/front"
	"github.com/robseith/moose/inp"
	"github.com/robseith/moose/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ElemInt accumulates the interaction integrand over one element
type ElemInt struct {

	// basic data
	Cell *inp.Cell     // the cell structure
	X    [][]float64   // matrix of corner-node coordinates [ndim][nverts]
	Shp  *shp.Shape    // first-order shape for q interpolation
	Ips  []*shp.Ipoint // integration points of element
	Ndim int           // space dimension

	// options
	Axisym  bool    // axisymmetric coordinate system
	Thick   float64 // thickness (plane problems)
	HasTemp bool    // temperature is coupled
	Sym     bool    // symmetry plane present

	// collaborators
	Fnt front.Frame   // crack front frame (read-only during a pass)
	Fld FieldProvider // field data @ integration points
	Rw  RingWeight    // ring weighting-function strategy

	// scratchpad. computed @ each ip
	xv   [][]float64 // [nverts][ndim] corner-node coordinates (rows)
	qn   []float64   // [nverts] nodal weighting function values
	gq   []float64   // [3] ∇q (global frame)
	gqL  []float64   // [3] ∇q (crack front frame)
	gt   []float64   // [3] ∇T (global frame)
	gtL  []float64   // [3] ∇T (crack front frame)
	sig  [][]float64 // [3][3] stress (global frame)
	sigL [][]float64 // [3][3] stress (crack front frame)
	eps  [][]float64 // [3][3] strain (global frame)
	epsL [][]float64 // [3][3] strain (crack front frame)
	gu   [][]float64 // [3][3] displacement gradient (global frame)
	guL  [][]float64 // [3][3] displacement gradient (crack front frame)
}

// NewElemInt returns a new element accumulator
func NewElemInt(cell *inp.Cell, msh *inp.Mesh, fnt front.Frame, fld FieldProvider, rw RingWeight, dat *inp.IntegralData, axisym bool, thick float64, goroutineId int) (o *ElemInt, err error) {

	// basic data
	o = new(ElemInt)
	o.Cell = cell
	o.X = msh.CellCoords(cell)
	o.Shp = shp.GetBasic(cell.Type, goroutineId)
	if o.Shp == nil {
		return nil, chk.Err("cannot allocate first-order shape for cell {id=%d, type=%q}", cell.Id, cell.Type)
	}
	o.Ndim = msh.Ndim

	// integration points
	o.Ips, err = shp.GetIps(o.Shp.Type, dat.Nip)
	if err != nil {
		return nil, chk.Err("cannot get integration points for cell {id=%d, type=%q}:\n%v", cell.Id, cell.Type, err)
	}

	// options and collaborators
	o.Axisym = axisym
	o.Thick = thick
	o.HasTemp = dat.HasTemp
	o.Sym = dat.Sym != ""
	o.Fnt = fnt
	o.Fld = fld
	o.Rw = rw

	// scratchpad
	o.xv = la.MatAlloc(o.Shp.Nverts, o.Ndim)
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			o.xv[m][i] = o.X[i][m]
		}
	}
	o.qn = make([]float64, o.Shp.Nverts)
	o.gq = make([]float64, 3)
	o.gqL = make([]float64, 3)
	o.gt = make([]float64, 3)
	o.gtL = make([]float64, 3)
	o.sig = la.MatAlloc(3, 3)
	o.sigL = la.MatAlloc(3, 3)
	o.eps = la.MatAlloc(3, 3)
	o.epsL = la.MatAlloc(3, 3)
	o.gu = la.MatAlloc(3, 3)
	o.guL = la.MatAlloc(3, 3)
	return
}

// Contribution computes this element's contribution to the interaction
// integral @ crack front point p
//
//	Input:
//	 p       -- crack front point index
//	 ring    -- effective ring index (baseline offset already applied)
//	 qavgseg -- average segment length normalisation (1 for 2D fronts)
func (o *ElemInt) Contribution(p, ring int, qavgseg float64) (sum float64, err error) {

	// nodal weighting function values
	allzero := true
	for m := 0; m < o.Shp.Nverts; m++ {
		o.qn[m] = o.Rw.Nodal(o.Fnt, p, ring, o.Cell.Verts[m], o.xv[m])
		if o.qn[m] != 0 {
			allzero = false
		}
	}

	// element is outside the ring's support
	if allzero {
		return 0, nil
	}

	// for each integration point
	for idx, ip := range o.Ips {

		// interpolation functions and gradients @ ip
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return 0, chk.Err("cell {id=%d}: CalcAtIp failed:\n%v", o.Cell.Id, err)
		}

		// interpolate q and ∇q with the first-order basis
		q := 0.0
		o.gq[0], o.gq[1], o.gq[2] = 0, 0, 0
		for m := 0; m < o.Shp.Nverts; m++ {
			q += o.Shp.S[m] * o.qn[m]
			for j := 0; j < o.Shp.Gndim; j++ {
				o.gq[j] += o.Shp.G[m][j] * o.qn[m]
			}
		}

		// field data @ ip
		xip := o.Shp.IpRealCoords(o.X, ip)
		s, err := o.Fld.At(o.Cell.Id, idx, xip)
		if err != nil {
			return 0, chk.Err("cell {id=%d, ip=%d}: cannot get field data:\n%v", o.Cell.Id, idx, err)
		}
		if o.HasTemp && s.GradT == nil {
			return 0, chk.Err("cell {id=%d, ip=%d}: temperature is coupled but no temperature gradient is available", o.Cell.Id, idx)
		}

		// dense tensors (global frame)
		SymDense(o.sig, s.Sig)
		SymDense(o.eps, s.Eps)
		GradDense(o.gu, s.GradU)
		Vec3(o.gt, s.GradT)

		// rotate to the crack front frame
		o.Fnt.RotateTensor(o.sigL, o.sig, p)
		o.Fnt.RotateTensor(o.epsL, o.eps, p)
		o.Fnt.RotateTensor(o.guL, o.gu, p)
		o.Fnt.RotateVector(o.gqL, o.gq, p)
		o.Fnt.RotateVector(o.gtL, o.gt, p)

		// integrand and quadrature coefficient
		eq := QpIntegrand(q, o.gqL, o.sigL, o.epsL, o.guL, s.AuxSig, s.AuxDu, o.gtL, s.Alpha, o.HasTemp, o.Sym, qavgseg)
		coef := o.Shp.J * ip.W * o.Thick
		if o.Axisym {
			coef *= o.Shp.AxisymGetRadius(o.X)
		}
		sum += coef * eq
	}
	return
}
