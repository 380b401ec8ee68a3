// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// weighting function kinds
const (
	QkindGeometry = "geometry" // geometric ring weighting function
	QkindTopology = "topology" // topological ring weighting function
)

// IntegralData holds input data for one interaction-integral evaluation set
type IntegralData struct {

	// weighting function
	Qkind     string `json:"qkind"`     // {"geometry", "topology"} weight generator kind
	Ring      int    `json:"ring"`      // ring index
	FirstRing int    `json:"firstring"` // first ring index (topology kind only)

	// crack front
	Points []int `json:"points"` // crack front point indices to evaluate

	// options
	Sym     string  `json:"sym"`     // symmetry plane normal axis: {"", "x", "y", "z"}
	TStress bool    `json:"tstress"` // compute T-stress correction
	Nu      float64 `json:"nu"`      // Poisson's ratio (required if tstress)
	Kfactor float64 `json:"kfactor"` // calibration factor: interaction integral => K
	HasTemp bool    `json:"hastemp"` // temperature field is coupled
	Nip     int     `json:"nip"`     // number of integration points per element (0 => default)
}

// Validate checks the configuration, eagerly, before any per-element work
//
//	Input:
//	 hasAlpha -- a thermal-expansion material property is available
func (o *IntegralData) Validate(hasAlpha bool) (err error) {

	// weighting function kind and ring indices
	switch o.Qkind {
	case QkindGeometry:
		if o.Ring < 1 {
			return chk.Err("ring index must be at least 1 for the %q weighting function; got %d", o.Qkind, o.Ring)
		}
	case QkindTopology:
		if o.FirstRing < 1 {
			return chk.Err("firstring is required (and must be at least 1) for the %q weighting function; got %d", o.Qkind, o.FirstRing)
		}
		if o.Ring < o.FirstRing {
			return chk.Err("ring index (%d) must not be smaller than firstring (%d)", o.Ring, o.FirstRing)
		}
	default:
		return chk.Err("qkind must be %q or %q; got %q", QkindGeometry, QkindTopology, o.Qkind)
	}

	// crack front points
	if len(o.Points) < 1 {
		return chk.Err("at least one crack front point index is required")
	}
	for _, p := range o.Points {
		if p < 0 {
			return chk.Err("crack front point indices must be non-negative; got %d", p)
		}
	}

	// symmetry plane
	switch o.Sym {
	case "", "x", "y", "z":
	default:
		return chk.Err("symmetry plane axis must be \"x\", \"y\" or \"z\"; got %q", o.Sym)
	}

	// T-stress requires Poisson's ratio
	if o.TStress && !(o.Nu > 0) {
		return chk.Err("poissons ratio (nu) must be provided to compute the T-stress correction")
	}

	// thermal term requires the instantaneous thermal-expansion coefficient
	if o.HasTemp && !hasAlpha {
		return chk.Err("to include the thermal strain term, the temperature coupling requires a thermal-expansion material property; none is available")
	}

	// defaults
	if o.Kfactor == 0 {
		o.Kfactor = 1.0
	}
	return
}

// FrontData holds the crack front definition of a straight front
type FrontData struct {
	Pts  [][]float64 `json:"pts"`  // [npts][ndim] crack front point coordinates
	Dir  []float64   `json:"dir"`  // [3] crack extension direction (unit)
	Nrm  []float64   `json:"nrm"`  // [3] crack plane normal (unit)
	Rin  []float64   `json:"rin"`  // [nrings] geometric ring inner radii
	Rout []float64   `json:"rout"` // [nrings] geometric ring outer radii
	Topo [][]int     `json:"topo"` // [n][2] (vertex id, ring number) pairs; topological rings
	EpsT []float64   `json:"epst"` // [npts] crack-front-tangential strains (optional)
}

// MatData holds material model selection and parameters
type MatData struct {
	Model string   `json:"model"` // model name; e.g. "lin-elast"
	Prms  fun.Prms `json:"prms"`  // model parameters
}

// SimData holds all data for one fracture-parameter evaluation run
type SimData struct {

	// from JSON
	Desc     string       `json:"desc"`     // description
	Mshfile  string       `json:"mshfile"`  // mesh filename
	Axisym   bool         `json:"axisym"`   // axisymmetric coordinate system
	Pstress  bool         `json:"pstress"`  // plane-stress
	Thick    float64      `json:"thick"`    // thickness (plane problems)
	Mat      MatData      `json:"mat"`      // material data
	Front    FrontData    `json:"front"`    // crack front definition
	Integral IntegralData `json:"integral"` // interaction-integral data

	// derived
	DirIn string // directory of input files
	Key   string // simulation key; e.g. "edge_crack" from "edge_crack.sim"
}

// ReadSim reads the fracture-run input data from a JSON (.sim) file
func ReadSim(simfilepath string) (o *SimData, err error) {

	// new data
	o = new(SimData)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// derived
	o.DirIn = filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	o.Key = fn[:len(fn)-len(filepath.Ext(fn))]
	if o.Thick == 0 {
		o.Thick = 1.0
	}
	return
}
