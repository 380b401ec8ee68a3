// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output routines for fracture-parameter results
package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// FrontReport collects finalised fracture-parameter values along the
// crack front, one value per evaluated (point, ring) pair
type FrontReport struct {
	Key    string    // simulation key; used for filenames
	Ring   int       // ring index used in the evaluations
	Points []int     // crack front point indices
	Vals   []float64 // [len(Points)] finalised values
}

// NewFrontReport returns a new report structure
func NewFrontReport(key string, ring int, points []int) *FrontReport {
	return &FrontReport{key, ring, points, make([]float64, len(points))}
}

// Set stores the finalised value of the i-th evaluated point
func (o *FrontReport) Set(i int, val float64) {
	o.Vals[i] = val
}

// Save writes the report to a JSON file in dirout
func (o *FrontReport) Save(dirout string) (err error) {
	if len(o.Vals) != len(o.Points) {
		return chk.Err("report is inconsistent: %d points but %d values", len(o.Points), len(o.Vals))
	}
	var buf bytes.Buffer
	io.Ff(&buf, "{\n  \"key\":\"%s\",\n  \"ring\":%d,\n  \"points\":[", o.Key, o.Ring)
	for i, p := range o.Points {
		if i > 0 {
			io.Ff(&buf, ",")
		}
		io.Ff(&buf, "%d", p)
	}
	io.Ff(&buf, "],\n  \"values\":[")
	for i, v := range o.Vals {
		if i > 0 {
			io.Ff(&buf, ",")
		}
		io.Ff(&buf, "%g", v)
	}
	io.Ff(&buf, "]\n}\n")
	io.WriteFileVD(dirout, io.Sf("%s-front.json", o.Key), &buf)
	return
}

// Plot plots the fracture parameter distribution along the crack front
func (o *FrontReport) Plot(dirout string) {
	X := make([]float64, len(o.Points))
	for i, p := range o.Points {
		X[i] = float64(p)
	}
	plt.Plot(X, o.Vals, "color='b', marker='o', label='ring "+io.Sf("%d", o.Ring)+"'")
	plt.Gll("crack front point", "fracture parameter", "")
	plt.SaveD(dirout, io.Sf("%s-front.png", o.Key))
}
