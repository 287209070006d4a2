// Copyright 2024 The Magnetite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/kyle-tennison/magnetite/mag"
)

// Vert holds vertex data
type Vert struct {
	Id int       // 0-based index == gmsh tag - 1
	C  []float64 // coordinates (size==2)
}

// Cell holds triangle connectivity
type Cell struct {
	Id    int   // id
	Verts []int // 0-based vertex indices (size==3)
}

// Mesh holds a triangular mesh for FE analyses
type Mesh struct {

	// essential
	Verts []*Vert // vertices ordered by 0-based tag
	Cells []*Cell // triangles

	// derived
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
}

// parser states of the .msh reader
const (
	mshLimbo = iota
	mshNodes
	mshElements
	mshEntities
)

// ReadMsh reads a (version 4.1) .msh file produced by gmsh. Node tags are
// remapped to 0-based indices and the vertex list is ordered by remapped
// index; only 2D (triangle) elements are retained.
func ReadMsh(fn string) (o *Mesh, err error) {

	// read file
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, mag.MesherErr("unable to open auto-generated mesh file %s", fn)
	}
	lines := strings.Split(string(b), "\n")

	// parse sections
	var verts []*Vert
	var cells []*Cell
	state := mshLimbo
	sectionMeta := false
	nverts := 0
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "$End") {
			state = mshLimbo
			continue
		}
		switch state {

		case mshLimbo:
			sectionMeta = false
			switch {
			case strings.HasPrefix(line, "$Entities"):
				state = mshEntities
			case strings.HasPrefix(line, "$Node"):
				state = mshNodes
			case strings.HasPrefix(line, "$Elements"):
				state = mshElements
			}

		case mshNodes:
			if !sectionMeta {
				sectionMeta = true
				continue
			}

			// block header: entityDim entityTag parametric numNodesInBlock
			hdr, e := intFields(line)
			if e != nil || len(hdr) < 4 {
				return nil, mag.MesherErr("unreadable node block header %q in %s", line, fn)
			}
			nn := hdr[3]
			if i+2*nn >= len(lines) {
				return nil, mag.MesherErr("truncated node block in %s", fn)
			}
			tags := make([]int, nn)
			for k := 0; k < nn; k++ {
				i++
				tags[k], e = strconv.Atoi(strings.TrimSpace(lines[i]))
				if e != nil {
					return nil, mag.MesherErr("non-int node tag %q in %s", lines[i], fn)
				}
			}
			for k := 0; k < nn; k++ {
				i++
				c, e := floatFields(lines[i])
				if e != nil || len(c) < 2 {
					return nil, mag.MesherErr("unreadable node coordinates %q in %s", lines[i], fn)
				}
				verts = append(verts, &Vert{Id: tags[k] - 1, C: []float64{c[0], c[1]}})
				nverts++
			}

		case mshElements:
			if !sectionMeta {
				sectionMeta = true
				continue
			}

			// block header: entityDim entityTag elementType numElementsInBlock
			hdr, e := intFields(line)
			if e != nil || len(hdr) < 4 {
				return nil, mag.MesherErr("unreadable element block header %q in %s", line, fn)
			}
			dim, ne := hdr[0], hdr[3]
			for k := 0; k < ne; k++ {
				i++
				if i >= len(lines) {
					return nil, mag.MesherErr("truncated element block in %s", fn)
				}
				if dim != 2 {
					continue
				}
				data, e := intFields(lines[i])
				if e != nil || len(data) < 4 {
					return nil, mag.MesherErr("unreadable element %q in %s", lines[i], fn)
				}
				cells = append(cells, &Cell{
					Id:    len(cells),
					Verts: []int{data[1] - 1, data[2] - 1, data[3] - 1},
				})
			}

		case mshEntities:
			continue
		}
	}
	if nverts < 3 || len(cells) < 1 {
		return nil, mag.MesherErr("mesh must have at least 3 vertices and 1 triangle; got %d and %d", nverts, len(cells))
	}

	// order vertices by remapped index
	o = new(Mesh)
	o.Verts = make([]*Vert, nverts)
	for _, v := range verts {
		if v.Id < 0 || v.Id >= nverts {
			return nil, mag.MesherErr("node tag %d out of range in %s", v.Id+1, fn)
		}
		if o.Verts[v.Id] != nil {
			return nil, mag.MesherErr("duplicate node tag %d in %s", v.Id+1, fn)
		}
		o.Verts[v.Id] = v
	}
	o.Cells = cells
	for _, c := range o.Cells {
		for _, n := range c.Verts {
			if n < 0 || n >= nverts {
				return nil, mag.MesherErr("element %d references missing node tag %d in %s", c.Id, n+1, fn)
			}
		}
	}

	// limits
	o.Xmin, o.Ymin = o.Verts[0].C[0], o.Verts[0].C[1]
	o.Xmax, o.Ymax = o.Xmin, o.Ymin
	for _, v := range o.Verts {
		o.Xmin = min(o.Xmin, v.C[0])
		o.Xmax = max(o.Xmax, v.C[0])
		o.Ymin = min(o.Ymin, v.C[1])
		o.Ymax = max(o.Ymax, v.C[1])
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"c\":[", o.Id)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"verts\":[", o.Id)
	for i, n := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", n)
	}
	l += "] }"
	return l
}

// Draw2d draws the 2D mesh
func (o *Mesh) Draw2d() {
	for _, c := range o.Cells {
		x := make([]float64, len(c.Verts)+1)
		y := make([]float64, len(c.Verts)+1)
		for i, n := range c.Verts {
			x[i] = o.Verts[n].C[0]
			y[i] = o.Verts[n].C[1]
		}
		x[len(c.Verts)] = x[0]
		y[len(c.Verts)] = y[0]
		plt.Plot(x, y, "'k-', lw=0.7, clip_on=0")
	}
	plt.Equal()
	plt.AxisRange(o.Xmin, o.Xmax, o.Ymin, o.Ymax)
	plt.AxisOff()
}

// intFields parses a whitespace-separated list of ints
func intFields(line string) (res []int, err error) {
	for _, f := range strings.Fields(line) {
		v, e := strconv.Atoi(f)
		if e != nil {
			return nil, e
		}
		res = append(res, v)
	}
	return
}

// floatFields parses a whitespace-separated list of floats
func floatFields(line string) (res []float64, err error) {
	for _, f := range strings.Fields(line) {
		v, e := strconv.ParseFloat(f, 64)
		if e != nil {
			return nil, e
		}
		res = append(res, v)
	}
	return
}
