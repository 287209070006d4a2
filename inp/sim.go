// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from the (.json) input document,
// the geometry files, and the mesh generated by Gmsh
package inp

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/kyle-tennison/magnetite/mag"
)

// Metadata holds the model parameters read from the input document
type Metadata struct {
	Elasticity float64 // Young's modulus E
	Poisson    float64 // Poisson's ratio ν
	Thickness  float64 // part thickness t
	ClMin      float64 // characteristic length min; sizing hint for the mesher
	ClMax      float64 // characteristic length max; sizing hint for the mesher
}

// rawMetadata mirrors the metadata object in the input document.
// Pointers flag missing keys.
type rawMetadata struct {
	Elasticity *float64 `json:"material_elasticity"`
	Poisson    *float64 `json:"poisson_ratio"`
	Thickness  *float64 `json:"part_thickness"`
	ClMin      *float64 `json:"characteristic_length_min"`
	ClMax      *float64 `json:"characteristic_length_max"`
}

// Region holds an axis-aligned rectangle selecting nodes for one boundary
// rule. Bounds absent from the input default to ±∞.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// rawRegion mirrors the region object in the input document
type rawRegion struct {
	Xmin *float64 `json:"x_target_min"`
	Xmax *float64 `json:"x_target_max"`
	Ymin *float64 `json:"y_target_min"`
	Ymax *float64 `json:"y_target_max"`
}

// Targets holds the prescribed values of one boundary rule. On each axis
// exactly one of (displacement, force) must be present.
type Targets struct {
	Ux *float64 `json:"ux"`
	Uy *float64 `json:"uy"`
	Fx *float64 `json:"fx"`
	Fy *float64 `json:"fy"`
}

// BcRule holds one named boundary condition: a rectangular region and the
// nodal values to prescribe inside it
type BcRule struct {
	Name   string
	Region Region
	Tgt    Targets
}

// rawBcRule mirrors one rule object in the input document
type rawBcRule struct {
	Region *rawRegion `json:"region"`
	Tgt    *Targets   `json:"targets"`
}

// Simulation holds all input data: model parameters and boundary rules
type Simulation struct {
	Data  Metadata  // model parameters
	Rules []*BcRule // boundary rules in document order
}

// Contains tells whether the vertex (x,y) is selected by this region.
// Inequalities are strict: vertices exactly on a bound are not selected.
func (o *Region) Contains(x, y float64) bool {
	return x > o.Xmin && x < o.Xmax && y > o.Ymin && y < o.Ymax
}

// String returns the string representation of a BcRule
func (o *BcRule) String() string {
	l := io.Sf("%q: region=[%g,%g]x[%g,%g] targets={", o.Name, o.Region.Xmin, o.Region.Xmax, o.Region.Ymin, o.Region.Ymax)
	add := func(key string, v *float64) {
		if v != nil {
			if l[len(l)-1] != '{' {
				l += ", "
			}
			l += io.Sf("%s:%g", key, *v)
		}
	}
	add("ux", o.Tgt.Ux)
	add("uy", o.Tgt.Uy)
	add("fx", o.Tgt.Fx)
	add("fy", o.Tgt.Fy)
	return l + "}"
}

// ReadSim reads the input document with metadata and boundary conditions
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, mag.InputErr("cannot open input file %s", simfilepath)
	}

	// top-level structure; json.RawMessage keeps the rules encoded so that
	// document order can be recovered below
	var raw struct {
		Metadata *rawMetadata    `json:"metadata"`
		Bcs      json.RawMessage `json:"boundary_conditions"`
	}
	if e := json.Unmarshal(b, &raw); e != nil {
		return nil, mag.InputErr("error in input document json: %v", e)
	}
	if raw.Metadata == nil {
		return nil, mag.InputErr("input document missing metadata field")
	}
	if raw.Bcs == nil {
		return nil, mag.InputErr("input document missing boundary_conditions field")
	}

	// metadata
	o = new(Simulation)
	o.Data, err = parseMetadata(raw.Metadata)
	if err != nil {
		return nil, err
	}

	// boundary rules
	o.Rules, err = parseRules(raw.Bcs)
	if err != nil {
		return nil, err
	}
	return
}

// parseMetadata validates the metadata section
func parseMetadata(raw *rawMetadata) (md Metadata, err error) {
	switch {
	case raw.Elasticity == nil:
		return md, mag.InputErr("input document missing material_elasticity field in metadata section")
	case raw.Poisson == nil:
		return md, mag.InputErr("input document missing poisson_ratio field in metadata section")
	case raw.Thickness == nil:
		return md, mag.InputErr("input document missing part_thickness field in metadata section")
	case raw.ClMin == nil:
		return md, mag.InputErr("input document missing characteristic_length_min field in metadata section")
	case raw.ClMax == nil:
		return md, mag.InputErr("input document missing characteristic_length_max field in metadata section")
	}
	md = Metadata{*raw.Elasticity, *raw.Poisson, *raw.Thickness, *raw.ClMin, *raw.ClMax}
	if math.Abs(md.Poisson) >= 1 {
		return md, mag.InputErr("poisson_ratio must satisfy |nu| < 1; got %g", md.Poisson)
	}
	if md.Thickness <= 0 {
		return md, mag.InputErr("part_thickness must be positive; got %g", md.Thickness)
	}
	return
}

// parseRules decodes the boundary_conditions object preserving document
// order; a json map would lose it and rule precedence depends on it
func parseRules(raw json.RawMessage) (rules []*BcRule, err error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, e := dec.Token()
	if e != nil {
		return nil, mag.InputErr("error in boundary_conditions json: %v", e)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, mag.InputErr("boundary_conditions must be an object of named rules")
	}
	for dec.More() {
		tok, e = dec.Token()
		if e != nil {
			return nil, mag.InputErr("error in boundary_conditions json: %v", e)
		}
		name := tok.(string)
		var body rawBcRule
		if e = dec.Decode(&body); e != nil {
			return nil, mag.InputErr("error in boundary rule %q: %v", name, e)
		}
		rule, err := newRule(name, &body)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return
}

// newRule validates one rule body
func newRule(name string, body *rawBcRule) (o *BcRule, err error) {

	// presence of sections
	if body.Region == nil {
		return nil, mag.InputErr("boundary rule %q is missing region field", name)
	}
	if body.Tgt == nil {
		return nil, mag.InputErr("boundary rule %q is missing targets field", name)
	}

	// region; absent bounds default to ±∞
	o = &BcRule{Name: name, Tgt: *body.Tgt}
	o.Region = Region{math.Inf(-1), math.Inf(1), math.Inf(-1), math.Inf(1)}
	if body.Region.Xmin != nil {
		o.Region.Xmin = *body.Region.Xmin
	}
	if body.Region.Xmax != nil {
		o.Region.Xmax = *body.Region.Xmax
	}
	if body.Region.Ymin != nil {
		o.Region.Ymin = *body.Region.Ymin
	}
	if body.Region.Ymax != nil {
		o.Region.Ymax = *body.Region.Ymax
	}
	if o.Region.Xmin > o.Region.Xmax {
		return nil, mag.InputErr("boundary rule %q has x_target_min greater than x_target_max", name)
	}
	if o.Region.Ymin > o.Region.Ymax {
		return nil, mag.InputErr("boundary rule %q has y_target_min greater than y_target_max", name)
	}

	// targets: exactly one of (u,f) per axis
	if o.Tgt.Ux == nil && o.Tgt.Fx == nil {
		return nil, mag.InputErr("boundary rule %q is under-constrained in x-axis", name)
	}
	if o.Tgt.Uy == nil && o.Tgt.Fy == nil {
		return nil, mag.InputErr("boundary rule %q is under-constrained in y-axis", name)
	}
	if o.Tgt.Ux != nil && o.Tgt.Fx != nil {
		return nil, mag.InputErr("boundary rule %q is over-constrained in x-axis", name)
	}
	if o.Tgt.Uy != nil && o.Tgt.Fy != nil {
		return nil, mag.InputErr("boundary rule %q is over-constrained in y-axis", name)
	}
	return
}
