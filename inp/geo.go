// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/kyle-tennison/magnetite/mag"
)

// Vertex holds a planar point of an input polyline
type Vertex struct {
	X, Y float64
}

// ReadGeometries reads geometry files into closed loops of vertices.
// The first loop is the outer boundary; subsequent loops are holes.
//  Input:
//   fnames -- one or more .csv (one loop each, first is outer) or one .svg
//   clmin  -- characteristic length min; vertices closer than this to the
//             previous one along a polyline are dropped
func ReadGeometries(fnames []string, clmin float64) (loops [][]Vertex, err error) {
	for _, fn := range fnames {
		switch io.FnExt(fn) {
		case ".svg":
			return ParseSvg(fn, clmin)
		case ".csv":
			loop, err := ParseCsv(fn)
			if err != nil {
				return nil, err
			}
			loops = append(loops, loop)
		default:
			return nil, mag.InputErr("unrecognized geometry filetype %s", fn)
		}
	}
	return
}

// ParseCsv parses a CSV file with columns including x and y into one loop of
// vertices in polyline order
func ParseCsv(csvfile string) (loop []Vertex, err error) {
	b, err := io.ReadFile(csvfile)
	if err != nil {
		return nil, mag.InputErr("unable to open csv file %s", csvfile)
	}
	ix, iy := -1, -1
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		// header row
		if ix < 0 {
			for i, h := range fields {
				switch h {
				case "x":
					ix = i
				case "y":
					iy = i
				}
			}
			if ix < 0 || iy < 0 {
				return nil, mag.InputErr("error in csv file %s: missing x and/or y field", csvfile)
			}
			continue
		}

		// vertex row
		if ix >= len(fields) || iy >= len(fields) {
			return nil, mag.InputErr("error in csv file %s: row %q has too few columns", csvfile, line)
		}
		x, e1 := strconv.ParseFloat(fields[ix], 64)
		y, e2 := strconv.ParseFloat(fields[iy], 64)
		if e1 != nil || e2 != nil {
			return nil, mag.InputErr("error in csv file %s: non-float value in row %q", csvfile, line)
		}
		loop = append(loop, Vertex{x, y})
	}
	return
}

// svgNode mirrors one element of an svg document tree
type svgNode struct {
	XMLName  xml.Name
	Id       string    `xml:"id,attr"`
	Points   string    `xml:"points,attr"`
	X        string    `xml:"x,attr"`
	Y        string    `xml:"y,attr"`
	Width    string    `xml:"width,attr"`
	Height   string    `xml:"height,attr"`
	Children []svgNode `xml:",any"`
}

// ParseSvg parses an SVG file into loops of vertices. Supported elements are
// polyline, polygon and rect; each is classified by the prefix of its id (or
// its parent's id): exactly one OUTER region is the outer boundary and zero
// or more INNER regions are holes. The svg y-axis is inverted to physical
// coordinates.
func ParseSvg(svgfile string, clmin float64) (loops [][]Vertex, err error) {
	b, err := io.ReadFile(svgfile)
	if err != nil {
		return nil, mag.InputErr("unable to open svg file %s", svgfile)
	}
	var root svgNode
	if e := xml.Unmarshal(b, &root); e != nil {
		return nil, mag.InputErr("error in svg file %s: %v", svgfile, e)
	}

	// loops[0] reserved for the outer boundary
	loops = make([][]Vertex, 1)
	skipped := 0
	err = walkSvg(&root, "", clmin, &loops, &skipped)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		io.Pfyel("warning: skipped %d vertices closer than clmin to their predecessor\n", skipped)
	}
	if len(loops[0]) == 0 {
		return nil, mag.InputErr("no OUTER geometry in svg file %s", svgfile)
	}
	return
}

// walkSvg visits the svg tree collecting loops. parentId resolves elements
// without their own id.
func walkSvg(n *svgNode, parentId string, clmin float64, loops *[][]Vertex, skipped *int) (err error) {
	var loop []Vertex
	shape := false
	switch n.XMLName.Local {
	case "polyline", "polygon":
		shape = true
		loop, err = polylineVertices(n, clmin, skipped)
	case "rect":
		shape = true
		loop, err = rectVertices(n)
	}
	if err != nil {
		return
	}
	if shape {
		id := strings.TrimSpace(n.Id)
		if id == "" {
			id = strings.TrimSpace(parentId)
		}
		if id == "" {
			return mag.InputErr("error in svg file: missing id field on %s", n.XMLName.Local)
		}
		switch {
		case strings.HasPrefix(id, "OUTER"):
			if len((*loops)[0]) > 0 {
				return mag.InputErr("multiple OUTER geometries in svg")
			}
			(*loops)[0] = loop
		case strings.HasPrefix(id, "INNER"):
			*loops = append(*loops, loop)
		default:
			io.Pfyel("warning: skipping %s geometry with id %q; only OUTER and INNER are supported\n", n.XMLName.Local, id)
		}
	}
	for i := range n.Children {
		if err = walkSvg(&n.Children[i], n.Id, clmin, loops, skipped); err != nil {
			return
		}
	}
	return
}

// polylineVertices reads the points attribute of a polyline or polygon,
// dropping duplicates and vertices closer than clmin to their predecessor
func polylineVertices(n *svgNode, clmin float64, skipped *int) (loop []Vertex, err error) {
	if strings.TrimSpace(n.Points) == "" {
		return nil, mag.InputErr("error in svg file: no points in %s element %q", n.XMLName.Local, n.Id)
	}
	var coords []float64
	for _, tok := range strings.FieldsFunc(n.Points, func(r rune) bool { return r == ' ' || r == ',' || r == '\n' || r == '\t' }) {
		v, e := strconv.ParseFloat(tok, 64)
		if e != nil {
			return nil, mag.InputErr("non-float value %q in svg points of element %q", tok, n.Id)
		}
		coords = append(coords, v)
	}
	if len(coords)%2 != 0 {
		return nil, mag.InputErr("odd number of point coordinates in svg element %q", n.Id)
	}
	for i := 0; i < len(coords); i += 2 {
		v := Vertex{coords[i], -coords[i+1]} // invert y
		dup := false
		for _, w := range loop {
			if w == v {
				dup = true
				break
			}
		}
		if dup {
			io.Pfyel("warning: duplicate point at (%g,%g) in polyline id %q\n", v.X, v.Y, n.Id)
			continue
		}
		if len(loop) > 0 {
			last := loop[len(loop)-1]
			if math.Hypot(last.X-v.X, last.Y-v.Y) < clmin {
				*skipped++
				continue
			}
		}
		loop = append(loop, v)
	}
	return
}

// rectVertices expands a rect element into its four corners starting at
// (x,-y). With the svg y-axis inverted to the physical frame the winding
// comes out clockwise; downstream consumers rely on this ordering, so do not
// reorder the corners.
func rectVertices(n *svgNode) (loop []Vertex, err error) {
	attr := func(s, what string, required bool) (float64, error) {
		if strings.TrimSpace(s) == "" {
			if required {
				return 0, mag.InputErr("error in svg file: no %s definition in rectangle %q", what, n.Id)
			}
			io.Pfyel("warning: missing %s definition in rectangle %q; assuming zero\n", what, n.Id)
			return 0, nil
		}
		v, e := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if e != nil {
			return 0, mag.InputErr("non-float value for %s in rectangle %q", what, n.Id)
		}
		return v, nil
	}
	x, err := attr(n.X, "x", false)
	if err != nil {
		return
	}
	y, err := attr(n.Y, "y", false)
	if err != nil {
		return
	}
	w, err := attr(n.Width, "width", true)
	if err != nil {
		return
	}
	h, err := attr(n.Height, "height", true)
	if err != nil {
		return
	}
	loop = []Vertex{
		{x, -y},
		{x + w, -y},
		{x + w, -y - h},
		{x, -y - h},
	}
	return
}
