// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.msh) JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/robseith/moose/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    // id
	Tag   int    // tag
	Type  string // geometry type (string); e.g. "qua4", "hex20"
	Part  int    // partition id
	Verts []int  // vertices

	// derived
	Shp *shp.Shape // first-order shape for q interpolation (corner nodes only)
}

// Mesh holds a mesh for fracture domain-integral analyses
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string          // complete filename path
	Ndim       int             // space dimension
	Part2cells map[int][]*Cell // partition number => set of cells
}

// ReadMsh reads a mesh for fracture domain-integral analyses
func ReadMsh(dir, fn string, goroutineId int) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// check
	if len(o.Verts) < 2 {
		return nil, chk.Err("mesh %q has not enough vertices (%d)", fn, len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return nil, chk.Err("mesh %q has no cells", fn)
	}

	// derived data
	o.Ndim = len(o.Verts[0].C)
	o.Part2cells = make(map[int][]*Cell)
	for _, c := range o.Cells {
		c.Shp = shp.GetBasic(c.Type, goroutineId)
		if c.Shp == nil {
			return nil, chk.Err("cannot allocate first-order shape for cell {id=%d, type=%q}", c.Id, c.Type)
		}
		if len(c.Verts) < c.Shp.Nverts {
			return nil, chk.Err("cell {id=%d, type=%q} has %d vertices; needs at least %d", c.Id, c.Type, len(c.Verts), c.Shp.Nverts)
		}
		o.Part2cells[c.Part] = append(o.Part2cells[c.Part], c)
	}
	return
}

// CellCoords returns the coordinates matrix [ndim][nverts] of the corner
// nodes of a cell
//
//	Note: corner nodes come first in the vertex list of higher-order cells
func (o *Mesh) CellCoords(cell *Cell) (x [][]float64) {
	x = la.MatAlloc(o.Ndim, cell.Shp.Nverts)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < cell.Shp.Nverts; j++ {
			x[i][j] = o.Verts[cell.Verts[j]].C[i]
		}
	}
	return
}
