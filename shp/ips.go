// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Ipoint holds integration point data
type Ipoint struct {
	R []float64 // natural coordinates (size==3)
	W float64   // weight
}

// ipsfactory holds all integration point sets; key = "type_nip"
var ipsfactory = make(map[string][]*Ipoint)

// GetIps returns a set of integration points
//
//	Note: with nip == 0, a default rule for the geometry type is returned
func GetIps(geoType string, nip int) (ips []*Ipoint, err error) {
	if nip == 0 {
		switch geoType {
		case "tri3":
			nip = 3
		case "qua4":
			nip = 4
		case "tet4":
			nip = 4
		case "hex8":
			nip = 8
		default:
			return nil, chk.Err("cannot get default integration points for geometry type %q", geoType)
		}
	}
	key := io.Sf("%s_%d", geoType, nip)
	ips, ok := ipsfactory[key]
	if !ok {
		return nil, chk.Err("cannot get %d integration points for geometry type %q", nip, geoType)
	}
	return
}

// sets up integration point sets
func init() {

	// auxiliary
	g := 1.0 / math.Sqrt(3.0) // 2-point Gauss coordinate
	h := math.Sqrt(3.0 / 5.0) // 3-point Gauss coordinate
	w5, w8 := 5.0/9.0, 8.0/9.0

	// tri3: 1 and 3 points
	ipsfactory["tri3_1"] = []*Ipoint{
		{[]float64{1.0 / 3.0, 1.0 / 3.0, 0}, 0.5},
	}
	ipsfactory["tri3_3"] = []*Ipoint{
		{[]float64{1.0 / 6.0, 1.0 / 6.0, 0}, 1.0 / 6.0},
		{[]float64{2.0 / 3.0, 1.0 / 6.0, 0}, 1.0 / 6.0},
		{[]float64{1.0 / 6.0, 2.0 / 3.0, 0}, 1.0 / 6.0},
	}

	// qua4: 1, 4 (2x2) and 9 (3x3) points
	ipsfactory["qua4_1"] = []*Ipoint{
		{[]float64{0, 0, 0}, 4.0},
	}
	ipsfactory["qua4_4"] = []*Ipoint{
		{[]float64{-g, -g, 0}, 1.0},
		{[]float64{g, -g, 0}, 1.0},
		{[]float64{g, g, 0}, 1.0},
		{[]float64{-g, g, 0}, 1.0},
	}
	x3 := []float64{-h, 0, h}
	w3 := []float64{w5, w8, w5}
	var qua9 []*Ipoint
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			qua9 = append(qua9, &Ipoint{[]float64{x3[i], x3[j], 0}, w3[i] * w3[j]})
		}
	}
	ipsfactory["qua4_9"] = qua9

	// tet4: 1 and 4 points
	ipsfactory["tet4_1"] = []*Ipoint{
		{[]float64{0.25, 0.25, 0.25}, 1.0 / 6.0},
	}
	a := (5.0 + 3.0*math.Sqrt(5.0)) / 20.0
	b := (5.0 - math.Sqrt(5.0)) / 20.0
	ipsfactory["tet4_4"] = []*Ipoint{
		{[]float64{b, b, b}, 1.0 / 24.0},
		{[]float64{a, b, b}, 1.0 / 24.0},
		{[]float64{b, a, b}, 1.0 / 24.0},
		{[]float64{b, b, a}, 1.0 / 24.0},
	}

	// hex8: 8 (2x2x2) and 27 (3x3x3) points
	var hex8 []*Ipoint
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				x := []float64{-g, g}
				hex8 = append(hex8, &Ipoint{[]float64{x[i], x[j], x[k]}, 1.0})
			}
		}
	}
	ipsfactory["hex8_8"] = hex8
	var hex27 []*Ipoint
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			for i := 0; i < 3; i++ {
				hex27 = append(hex27, &Ipoint{[]float64{x3[i], x3[j], x3[k]}, w3[i] * w3[j] * w3[k]})
			}
		}
	}
	ipsfactory["hex8_27"] = hex27
}
